// Package must provides runtime assertions.
// Violation of these assertions indicates a program fault,
// and should cause a crash to prevent operating with invalid data.
package must

import (
	"fmt"
	"strings"
)

// Bef panics if b is false.
func Bef(b bool, format string, args ...any) {
	if !b {
		panicErrorf(format, args...)
	}
}

// NotBeNilf panics if v is nil.
func NotBeNilf(v any, format string, args ...any) {
	if v == nil {
		panicErrorf(format, args...)
	}
}

// BeEqualf panics if a != b.
func BeEqualf[T comparable](a, b T, format string, args ...any) {
	if a != b {
		msg := fmt.Sprintf(format, args...)
		panicErrorf("%s:\nwant a == b\n a = %v\n b = %v", msg, a, b)
	}
}

// NotBeEqualf panics if a == b.
func NotBeEqualf[T comparable](a, b T, format string, args ...any) {
	if a == b {
		msg := fmt.Sprintf(format, args...)
		panicErrorf("%s:\nwant a != b\na = b = %v", msg, a)
	}
}

// NotBeBlankf panics if s is empty or contains only whitespace.
func NotBeBlankf(s string, format string, args ...any) {
	if strings.TrimSpace(s) == "" {
		msg := fmt.Sprintf(format, args...)
		panicErrorf("%s: must not be blank", msg)
	}
}

// Failf panics with the given message.
func Failf(format string, args ...any) {
	panicErrorf(format, args...)
}

func panicErrorf(format string, args ...any) {
	panic(fmt.Errorf(format, args...))
}
