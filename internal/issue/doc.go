// SPDX-License-Identifier: MPL-2.0

// Package issue provides actionable error handling with user-friendly messages.
//
// Errors carry what operation failed, which resource was involved, and
// concrete remediation steps, so the CLI can render failures users can
// actually act on instead of bare error chains.
package issue
