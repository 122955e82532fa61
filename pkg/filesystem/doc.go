// Package filesystem provides filesystem implementations for nominal.
//
// This package contains implementations of the types.FS interface:
// the OS filesystem used for real renames and an afero-backed one used
// by tests that do not need real symlinks.
package filesystem
