package oserr

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/sys/unix"
)

// Describe returns the platform description for a raw OS error code.
// Codes without an entry in the platform errno table produce a
// synthesized "Unknown OS error (<code>)" message.
func Describe(code int) string {
	if code > 0 && unix.ErrnoName(unix.Errno(code)) != "" {
		return unix.Errno(code).Error()
	}
	return fmt.Sprintf("Unknown OS error (%d)", code)
}

// OSError is a failed kernel call. The raw error code propagates unchanged;
// Unwrap exposes the errno so errors.Is(err, unix.ENOENT) and friends keep
// working through the wrapper.
type OSError struct {
	Op    string
	Errno unix.Errno
}

func (e *OSError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, Describe(int(e.Errno)))
}

func (e *OSError) Unwrap() error { return e.Errno }

// Code returns the raw numeric error code.
func (e *OSError) Code() int { return int(e.Errno) }

// Wrap converts a raw kernel-call failure into an OSError tagged with the
// failing operation. Errors that do not carry an errno are wrapped with the
// operation name only. A nil err stays nil.
func Wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	var errno unix.Errno
	if errors.As(err, &errno) {
		return &OSError{Op: op, Errno: errno}
	}
	return fmt.Errorf("%s: %w", op, err)
}

// NulError reports a key, value, or path containing an embedded NUL byte.
type NulError struct {
	Input string
}

func (e *NulError) Error() string {
	return fmt.Sprintf("invalid argument %q: embedded NUL byte", e.Input)
}

// CheckNul returns a NulError when s contains the terminator byte.
// It must be called before handing s to any kernel call.
func CheckNul(s string) error {
	if strings.IndexByte(s, 0) >= 0 {
		return &NulError{Input: s}
	}
	return nil
}
