// Package envtab is the process-wide access point for the environment table.
//
// Every table-touching operation brackets its raw call with a real mutex.
// The lock spans exactly one raw call; no operation calls another
// table-touching operation while holding it.
//
// Queries (read-only):
//   - Snapshot() - Owned point-in-time copy of the whole table
//   - Get(key) - Point lookup of a single variable
//   - TempDir() - TMPDIR lookup with the platform fallback
//
// Commands (mutations):
//   - Set(key, value) - Insert or replace a variable
//   - Unset(key) - Remove a variable
//
// Snapshots are private copies: iterating one never observes the live
// table, and later mutations do not leak into snapshots taken earlier.
package envtab
