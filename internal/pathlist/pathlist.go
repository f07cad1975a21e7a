// Package pathlist encodes and decodes `:`-separated search-path lists.
//
// Paths are opaque byte sequences; the codec only interprets the single
// ASCII separator byte. Split never fails and preserves empty segments.
// Join enforces the one invariant of the format: no segment may itself
// contain the separator, because such a list could not be split back.
package pathlist

import (
	"errors"
	"iter"
	"strings"
)

// Separator delimits entries in a search-path list.
const Separator = ':'

// ErrSeparatorInPath is returned by Join when a segment contains the
// separator byte. No partial output is ever returned alongside it.
var ErrSeparatorInPath = errors.New("path segment contains separator `:`")

// Split splits a search-path list on the separator byte. The sequence is
// lazy and restartable. Consecutive, leading, and trailing separators each
// produce an empty segment; the empty list produces a single empty segment.
func Split(list string) iter.Seq[string] {
	return func(yield func(string) bool) {
		start := 0
		for i := 0; i <= len(list); i++ {
			if i == len(list) || list[i] == Separator {
				if !yield(list[start:i]) {
					return
				}
				start = i + 1
			}
		}
	}
}

// Join concatenates paths with the separator between consecutive elements,
// with no leading or trailing separator. It fails with ErrSeparatorInPath
// as soon as any segment contains the separator byte.
func Join(paths iter.Seq[string]) (string, error) {
	var b strings.Builder
	first := true
	for p := range paths {
		if !first {
			b.WriteByte(Separator)
		}
		first = false
		if strings.IndexByte(p, Separator) >= 0 {
			return "", ErrSeparatorInPath
		}
		b.WriteString(p)
	}
	return b.String(), nil
}
