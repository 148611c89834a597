// SPDX-License-Identifier: MPL-2.0

// Package discovery finds, validates, and merges tool descriptors from the
// global and project-local tools directories.
//
// The package intentionally combines two related concerns:
//   - Source scanning: enumerating one directory and loading each candidate
//     descriptor, isolating per-file failures as diagnostics
//   - Merging: combining the two independently scanned sets with
//     deterministic precedence (local wins on name collision) and
//     cross-source conflict tracking
//
// These concerns are tightly coupled because the merge depends directly on
// scan results and their ordering. Splitting them would create indirection
// without abstraction benefit.
//
// Scanning never fails: a missing directory degrades to an empty set, and a
// descriptor that fails to load or validate is skipped with a diagnostic
// while the remaining candidates proceed. Diagnostics are returned to
// callers rather than logged, so the CLI owns all rendering policy.
package discovery
