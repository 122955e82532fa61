// Package rename plans and executes batches of file renames.
//
// A Renamer accumulates (source, target) requests. Plan turns them into a
// Plan: no-op requests are dropped and the rest are stably sorted by target
// under the Renamer's Collation. A Plan can be rendered, checked and
// confirmed any number of times, then applied once.
//
// Apply runs the renames in plan order and stops at the first failure.
// Renames applied before the failure stay applied: there is no rollback.
// Each rename refuses to overwrite an existing target, symlinks included,
// but the existence check and the rename are not atomic.
//
// Cyclic requests (a => b together with b => a) are not resolved; the
// first of them fails with a target-exists error. Plan.Check reports such
// conflicts ahead of time without touching the filesystem.
package rename
