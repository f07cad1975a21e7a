package oserr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

func TestDescribeKnownCode(t *testing.T) {
	got := Describe(int(unix.ERANGE))
	assert.Equal(t, unix.ERANGE.Error(), got)
	assert.NotContains(t, got, "Unknown OS error")
}

func TestDescribeUnknownCode(t *testing.T) {
	tests := []struct {
		code int
		want string
	}{
		{code: 99999, want: "Unknown OS error (99999)"},
		{code: 0, want: "Unknown OS error (0)"},
		{code: -1, want: "Unknown OS error (-1)"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Describe(tt.code))
	}
}

func TestOSError(t *testing.T) {
	err := Wrap("chdir", unix.ENOENT)

	var osErr *OSError
	require.ErrorAs(t, err, &osErr)
	assert.Equal(t, "chdir", osErr.Op)
	assert.Equal(t, int(unix.ENOENT), osErr.Code())

	// The raw code stays reachable through the wrapper.
	assert.ErrorIs(t, err, unix.ENOENT)
	assert.Contains(t, err.Error(), "chdir")
	assert.Contains(t, err.Error(), unix.ENOENT.Error())
}

func TestWrapNil(t *testing.T) {
	assert.NoError(t, Wrap("getcwd", nil))
}

func TestWrapNonErrno(t *testing.T) {
	cause := errors.New("not an errno")
	err := Wrap("readlink", cause)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "readlink")
}

func TestWrapWrappedErrno(t *testing.T) {
	// Providers may return errnos already wrapped with context.
	cause := fmt.Errorf("inner: %w", unix.EACCES)
	err := Wrap("getcwd", cause)

	var osErr *OSError
	require.ErrorAs(t, err, &osErr)
	assert.Equal(t, int(unix.EACCES), osErr.Code())
}

func TestCheckNul(t *testing.T) {
	assert.NoError(t, CheckNul("PATH"))
	assert.NoError(t, CheckNul(""))

	err := CheckNul("a\x00b")
	var nulErr *NulError
	require.ErrorAs(t, err, &nulErr)
	assert.Equal(t, "a\x00b", nulErr.Input)
}
