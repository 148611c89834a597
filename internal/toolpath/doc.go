// SPDX-License-Identifier: MPL-2.0

// Package toolpath resolves the tools directory from ordered sources and
// validates that the result is safe to scan.
//
// Resolution precedence is: non-empty explicit override, then a set
// environment value, then the caller-supplied default. A leading ~ expands
// to the caller-supplied home directory. The resolved path must be absolute
// and must not sit inside a protected system directory; a path outside the
// home directory that clears those checks resolves successfully with a
// non-fatal advisory.
//
// All inputs (override, environment value, home directory, default) are
// passed explicitly per call. Nothing is cached; every call recomputes the
// result, including whether the path currently exists.
package toolpath
