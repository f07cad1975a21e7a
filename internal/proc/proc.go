// Package proc covers process-level operations: immediate termination,
// resolving the running executable, and the (unimplemented) page size.
package proc

import "github.com/hostrt/oslayer/internal/rawsys"

// selfExe is the pseudo-path whose symlink target is the running executable.
const selfExe = "/proc/self/exe"

// Control terminates and inspects the current process through a raw
// kernel-call provider.
type Control struct {
	sys rawsys.Syscalls
}

// NewControl returns a Control backed by the given raw provider.
func NewControl(sys rawsys.Syscalls) *Control {
	return &Control{sys: sys}
}

// Exit ends the process immediately with the given status. It does not
// return. No deferred functions run and no buffered output is flushed;
// callers expecting a graceful shutdown must flush state first.
func (c *Control) Exit(code int) {
	c.sys.ExitGroup(code)
	panic("unreachable") // ExitGroup does not return
}

// Executable returns the path of the running executable by resolving the
// kernel's self-exe symlink.
func (c *Control) Executable() (string, error) {
	return c.sys.Readlink(selfExe)
}

// PageSize is not implemented. It panics unconditionally rather than
// guessing a value.
func PageSize() int {
	panic("proc: page size discovery not implemented")
}
