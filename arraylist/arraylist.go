// Package arraylist implements a dynamic array of ints with amortized O(1)
// append. Storage doubles when full and is halved again (shrink-to-fit)
// once a removal leaves the list at most a quarter full.
//
// An ArrayList is not safe for concurrent use.
package arraylist

import (
	"github.com/Invicton-Labs/go-lists/bounds"
	"github.com/Invicton-Labs/go-lists/collections"
	"github.com/Invicton-Labs/go-lists/log"
	"github.com/Invicton-Labs/go-lists/numbers"
	"github.com/Invicton-Labs/go-stackerr"
	"go.uber.org/zap/zapcore"
)

// minCapacity is the capacity floor. Shrinking never goes below it, and a
// list built from an empty slice still allocates it.
const minCapacity = 1

var plog = log.ComponentLogger("arraylist")

// ArrayList is a growable array of ints. Use New or FromSlice to create one.
type ArrayList struct {
	// data is the backing storage; len(data) is the capacity. Only
	// data[:size] holds valid values.
	data   []int
	size   int
	logger log.Logger
}

// Option configures an ArrayList at construction.
type Option func(l *ArrayList)

// WithLogger makes the list log its resize events to the given logger
// instead of the package's component logger.
func WithLogger(logger log.Logger) Option {
	return func(l *ArrayList) {
		l.logger = logger
	}
}

// New returns an empty list with a capacity of 1.
func New(opts ...Option) *ArrayList {
	return build(make([]int, minCapacity), 0, opts)
}

// FromSlice returns a list holding a copy of values, with the capacity
// equal to the number of values (or 1 if values is empty).
func FromSlice(values []int, opts ...Option) *ArrayList {
	data := make([]int, numbers.Max(len(values), minCapacity))
	copy(data, values)
	return build(data, len(values), opts)
}

func build(data []int, size int, opts []Option) *ArrayList {
	l := &ArrayList{
		data: data,
		size: size,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Len returns the number of elements in the list.
func (l *ArrayList) Len() int {
	return l.size
}

// Cap returns the number of allocated slots.
func (l *ArrayList) Cap() int {
	return len(l.data)
}

// Append adds value to the end of the list, doubling the capacity first if
// the list is full.
func (l *ArrayList) Append(value int) {
	if l.size == len(l.data) {
		l.grow()
	}
	l.data[l.size] = value
	l.size++
}

// Get returns the value at index.
func (l *ArrayList) Get(index int) (int, stackerr.Error) {
	if err := bounds.CheckIndex(index, l.size); err != nil {
		return 0, err
	}
	return l.data[index], nil
}

// Set overwrites the value at index.
func (l *ArrayList) Set(index int, value int) stackerr.Error {
	if err := bounds.CheckIndex(index, l.size); err != nil {
		return err
	}
	l.data[index] = value
	return nil
}

// Ref returns a pointer to the slot at index, for in-place updates. The
// pointer is only valid until the next structural change to the list
// (Append, Insert, Remove, Pop, PopLast or ShrinkToFit); after that it may
// point into released storage.
func (l *ArrayList) Ref(index int) (*int, stackerr.Error) {
	if err := bounds.CheckIndex(index, l.size); err != nil {
		return nil, err
	}
	return &l.data[index], nil
}

// Insert places value at index, shifting the elements at index and after one
// slot to the right. An index equal to Len appends.
func (l *ArrayList) Insert(value int, index int) stackerr.Error {
	if err := bounds.CheckInsert(index, l.size); err != nil {
		return err
	}
	if l.size == len(l.data) {
		l.grow()
	}
	copy(l.data[index+1:l.size+1], l.data[index:l.size])
	l.data[index] = value
	l.size++
	return nil
}

// Remove deletes the element at index, shifting the elements after it one
// slot to the left. If the list is left at most a quarter full, it is shrunk
// with ShrinkToFit.
func (l *ArrayList) Remove(index int) stackerr.Error {
	if err := bounds.CheckIndex(index, l.size); err != nil {
		return err
	}
	copy(l.data[index:l.size-1], l.data[index+1:l.size])
	l.size--
	l.data[l.size] = 0
	if 4*l.size <= len(l.data) {
		l.ShrinkToFit()
	}
	return nil
}

// Pop removes the element at index and returns it.
func (l *ArrayList) Pop(index int) (int, stackerr.Error) {
	if err := bounds.CheckIndex(index, l.size); err != nil {
		return 0, err
	}
	value := l.data[index]
	if err := l.Remove(index); err != nil {
		return 0, err
	}
	return value, nil
}

// PopLast removes the last element and returns it. It fails with an
// out-of-range error if the list is empty.
func (l *ArrayList) PopLast() (int, stackerr.Error) {
	return l.Pop(l.size - 1)
}

// ShrinkToFit halves the capacity for as long as the list would still be at
// most half full (2*Len <= Cap), stopping at a capacity of 1, and then
// reallocates the storage at the new capacity. Calling it again without an
// intervening change does nothing.
func (l *ArrayList) ShrinkToFit() {
	capacity := len(l.data)
	for capacity > minCapacity && 2*l.size <= capacity {
		capacity /= 2
	}
	if capacity == len(l.data) {
		return
	}
	l.resize(capacity)
}

// Values returns a copy of the elements in order.
func (l *ArrayList) Values() []int {
	return collections.CopySlice(l.data[:l.size])
}

// String renders the list as "[a, b, c]", or "[]" when empty.
func (l *ArrayList) String() string {
	return collections.FormatBracketed(l.data[:l.size])
}

func (l *ArrayList) grow() {
	l.resize(2 * len(l.data))
}

func (l *ArrayList) resize(capacity int) {
	old := len(l.data)
	data := make([]int, capacity)
	copy(data, l.data[:l.size])
	l.data = data

	logger := l.logger
	if logger == nil {
		logger = plog.Logger()
	}
	if logger.Enabled(zapcore.DebugLevel) {
		logger.Debugw("Resized array list",
			"old_capacity", old,
			"new_capacity", capacity,
			"size", l.size,
		)
	}
}
