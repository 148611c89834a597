// SPDX-License-Identifier: MPL-2.0

// Package toolfile defines the tool descriptor format and its loading and
// validation stages.
//
// A toolfile is a single CUE document (JSON is accepted, being valid CUE)
// declaring one tool: a name, an optional description, a JSON-Schema-shaped
// input schema, and a run block whose script is executed by the embedded
// shell interpreter when the tool is invoked.
//
// Loading and validation are deliberately separate stages with distinct
// failure modes:
//
//   - Parse reads and decodes a file against the embedded CUE schema. It
//     fails on unreadable files, malformed CUE, or type-level violations.
//     Fields the schema marks optional may be absent in the result.
//   - Validate checks the decoded candidate against the capability contract
//     (declared name, input schema, runnable script) and either promotes it
//     to a Tool or reports every failed check.
package toolfile
