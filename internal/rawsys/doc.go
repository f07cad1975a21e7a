// Package rawsys is the narrow kernel-call boundary of the OS layer.
//
// Syscalls enumerates exactly the raw operations the layer consumes:
// getcwd into a caller buffer, chdir, exit_group, the environment table
// primitives, and a generic symlink read. Everything above this boundary
// (the getcwd retry loop, the environment lock discipline, the path list
// codec) is testable by substituting a fake provider.
//
// New returns the real provider. getcwd, chdir, exit, and readlink go
// through golang.org/x/sys/unix. The environment primitives go through the
// standard syscall package: on Linux the environment table is not a kernel
// object but process memory maintained by the runtime, so syscall.Getenv
// and friends are the lowest layer reachable.
package rawsys
