// Package bounds holds the index checks shared by the list types in this
// module, and the single error kind they report.
package bounds

import (
	"errors"
	"fmt"

	"github.com/Invicton-Labs/go-stackerr"
)

// ErrIndexOutOfRange is wrapped by every error returned for an index that
// falls outside the valid range of the requested operation.
var ErrIndexOutOfRange = errors.New("index out of range")

// CheckIndex verifies that 0 <= index < size, which is the valid range for
// reading, writing and removing an element.
func CheckIndex(index int, size int) stackerr.Error {
	if index >= 0 && index < size {
		return nil
	}
	return outOfRange(fmt.Sprintf("index %d not in [0, %d)", index, size), index, size)
}

// CheckInsert verifies that 0 <= index <= size, which is the valid range for
// inserting an element (index == size appends).
func CheckInsert(index int, size int) stackerr.Error {
	if index >= 0 && index <= size {
		return nil
	}
	return outOfRange(fmt.Sprintf("insert index %d not in [0, %d]", index, size), index, size)
}

// IsOutOfRange reports whether err is (or wraps) ErrIndexOutOfRange.
func IsOutOfRange(err error) bool {
	return errors.Is(err, ErrIndexOutOfRange)
}

func outOfRange(detail string, index int, bound int) stackerr.Error {
	// Skip this function and the exported check so the stack starts at
	// the list operation that was called with the bad index.
	return stackerr.WrapWithFrameSkips(
		fmt.Errorf("%w: %s", ErrIndexOutOfRange, detail), 2,
	).With(map[string]any{
		"index": index,
		"bound": bound,
	})
}
