// Package oserr defines the error vocabulary of the OS interaction layer.
//
// Three kinds of failure exist:
//   - OSError: a kernel call failed; carries the raw error code unchanged.
//   - NulError: a key, value, or path contains an embedded NUL byte, which
//     the kernel call convention cannot represent. Raised before any kernel
//     call is attempted.
//   - pathlist.ErrSeparatorInPath (owned by the pathlist package): a path
//     list segment contains the list separator.
//
// Describe translates a raw numeric code into a human-readable description,
// falling back to a synthesized message for codes outside the platform table.
package oserr
