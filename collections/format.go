package collections

import (
	"fmt"
	"strings"
)

// FormatBracketed renders values as a bracketed, comma-separated list,
// e.g. "[1, 2, 3]". An empty or nil slice renders as "[]".
func FormatBracketed[T any](values []T) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range values {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprint(&sb, v)
	}
	sb.WriteByte(']')
	return sb.String()
}
