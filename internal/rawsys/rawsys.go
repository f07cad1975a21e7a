package rawsys

import (
	"os"
	"syscall"

	"golang.org/x/sys/unix"
)

// Syscalls is the raw kernel-call provider consumed by the rest of the layer.
//
// Getcwd writes the NUL-terminated current directory into buf and returns
// unix.ERANGE when buf is too small; the caller owns buffer growth and
// terminator scanning. The remaining operations follow the POSIX
// success/errno convention, surfaced as Go errors.
type Syscalls interface {
	Getcwd(buf []byte) error
	Chdir(path string) error
	ExitGroup(code int)
	Getenv(key string) (string, bool)
	Setenv(key, value string) error
	Unsetenv(key string) error
	Environ() []string
	Readlink(path string) (string, error)
}

type unixSyscalls struct{}

// New returns the provider backed by the real kernel interface.
func New() Syscalls { return unixSyscalls{} }

func (unixSyscalls) Getcwd(buf []byte) error {
	_, err := unix.Getcwd(buf)
	return err
}

func (unixSyscalls) Chdir(path string) error { return unix.Chdir(path) }

// ExitGroup issues exit_group, stopping every thread at once.
// No deferred functions run and no buffers are flushed.
func (unixSyscalls) ExitGroup(code int) { unix.Exit(code) }

func (unixSyscalls) Getenv(key string) (string, bool) { return syscall.Getenv(key) }

func (unixSyscalls) Setenv(key, value string) error { return syscall.Setenv(key, value) }

func (unixSyscalls) Unsetenv(key string) error { return syscall.Unsetenv(key) }

func (unixSyscalls) Environ() []string { return syscall.Environ() }

func (unixSyscalls) Readlink(path string) (string, error) { return os.Readlink(path) }
