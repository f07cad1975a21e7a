// Package workdir resolves and changes the process working directory.
//
// Resolution uses a retry loop around the raw getcwd call: the kernel
// refuses buffers that are too small with ERANGE, so the resolver grows
// its buffer and retries until the path fits. That condition is consumed
// entirely here and never surfaces to callers; every other kernel failure
// propagates unchanged.
package workdir

import (
	"bytes"
	"errors"

	"github.com/hostrt/oslayer/internal/oserr"
	"github.com/hostrt/oslayer/internal/rawsys"
	"golang.org/x/sys/unix"
)

// DefaultBufferSize is the initial getcwd buffer capacity. Most paths fit
// on the first call.
const DefaultBufferSize = 512

// GrowthPolicy computes the next buffer capacity from the current one.
// The resolver forces the result to be strictly larger regardless of what
// the policy returns, so growth is always monotonic.
type GrowthPolicy func(current int) int

// Double is the default growth policy.
func Double(current int) int { return current * 2 }

// Resolver retrieves and sets the current directory through a raw
// kernel-call provider. The zero value is not usable; use NewResolver.
type Resolver struct {
	sys     rawsys.Syscalls
	bufSize int
	grow    GrowthPolicy
}

// NewResolver returns a Resolver with the default buffer size and growth
// policy. bufSize values below 1 fall back to DefaultBufferSize.
func NewResolver(sys rawsys.Syscalls, bufSize int) *Resolver {
	if bufSize < 1 {
		bufSize = DefaultBufferSize
	}
	return &Resolver{sys: sys, bufSize: bufSize, grow: Double}
}

// SetGrowthPolicy replaces the buffer growth policy.
func (r *Resolver) SetGrowthPolicy(grow GrowthPolicy) {
	if grow != nil {
		r.grow = grow
	}
}

// Current returns the absolute current directory.
//
// The kernel NUL-terminates the result in place; the returned path is the
// prefix before the terminator and never includes it. On ERANGE the buffer
// grows and the call is retried without bound; any other failure propagates
// as an OSError carrying the raw code.
func (r *Resolver) Current() (string, error) {
	buf := make([]byte, r.bufSize)
	for {
		err := r.sys.Getcwd(buf)
		if err == nil {
			n := bytes.IndexByte(buf, 0)
			if n < 0 {
				n = len(buf)
			}
			return string(buf[:n]), nil
		}
		if !errors.Is(err, unix.ERANGE) {
			return "", oserr.Wrap("getcwd", err)
		}
		next := r.grow(len(buf))
		if next <= len(buf) {
			next = len(buf) + 1
		}
		buf = make([]byte, next)
	}
}

// Change sets the current directory to path. A path containing an embedded
// NUL byte cannot be represented by the call convention and is rejected
// before any kernel call.
func (r *Resolver) Change(path string) error {
	if err := oserr.CheckNul(path); err != nil {
		return err
	}
	return oserr.Wrap("chdir", r.sys.Chdir(path))
}
