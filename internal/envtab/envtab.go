package envtab

import (
	"iter"
	"runtime"
	"strings"
	"sync"

	"github.com/hostrt/oslayer/internal/oserr"
	"github.com/hostrt/oslayer/internal/rawsys"
)

// Var is one environment variable.
type Var struct {
	Key   string
	Value string
}

// Table serializes access to the process environment. Use NewTable.
type Table struct {
	mu  sync.Mutex
	sys rawsys.Syscalls
}

// NewTable returns a Table backed by the given raw provider.
func NewTable(sys rawsys.Syscalls) *Table {
	return &Table{sys: sys}
}

// Snapshot copies the full live table under the lock and returns the copy.
// Order is whatever the raw provider returned at the time of the call.
func (t *Table) Snapshot() *Snapshot {
	t.mu.Lock()
	raw := t.sys.Environ()
	t.mu.Unlock()

	vars := make([]Var, 0, len(raw))
	for _, entry := range raw {
		// Entries without '=' or with an empty key are kernel-side noise;
		// skip them rather than inventing a variable.
		if i := strings.IndexByte(entry, '='); i > 0 {
			vars = append(vars, Var{Key: entry[:i], Value: entry[i+1:]})
		}
	}
	return &Snapshot{vars: vars}
}

// Get looks up a single variable. A key containing an embedded NUL byte
// can never name an existing variable; the encoding error still propagates
// to the caller rather than mapping to "not found".
func (t *Table) Get(key string) (string, bool, error) {
	if err := oserr.CheckNul(key); err != nil {
		return "", false, err
	}
	t.mu.Lock()
	v, ok := t.sys.Getenv(key)
	t.mu.Unlock()
	return v, ok, nil
}

// Set inserts or replaces a variable. Neither the key nor the value may
// contain an embedded NUL byte.
func (t *Table) Set(key, value string) error {
	if err := oserr.CheckNul(key); err != nil {
		return err
	}
	if err := oserr.CheckNul(value); err != nil {
		return err
	}
	t.mu.Lock()
	err := t.sys.Setenv(key, value)
	t.mu.Unlock()
	return oserr.Wrap("setenv", err)
}

// Unset removes a variable. Removing an absent variable is not an error.
func (t *Table) Unset(key string) error {
	if err := oserr.CheckNul(key); err != nil {
		return err
	}
	t.mu.Lock()
	err := t.sys.Unsetenv(key)
	t.mu.Unlock()
	return oserr.Wrap("unsetenv", err)
}

// TempDir returns the directory for temporary files: TMPDIR when set,
// otherwise the fixed platform default.
func (t *Table) TempDir() string {
	if v, ok, err := t.Get("TMPDIR"); err == nil && ok {
		return v
	}
	if runtime.GOOS == "android" {
		return "/data/local/tmp"
	}
	return "/tmp"
}

// Snapshot is an owned point-in-time copy of the environment table.
type Snapshot struct {
	vars []Var
}

// Len returns the number of captured variables.
func (s *Snapshot) Len() int { return len(s.vars) }

// Vars returns the captured variables in capture order.
func (s *Snapshot) Vars() []Var { return s.vars }

// All iterates the captured key/value pairs. The sequence is restartable
// and requires no locking: it walks a private copy.
func (s *Snapshot) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, v := range s.vars {
			if !yield(v.Key, v.Value) {
				return
			}
		}
	}
}
