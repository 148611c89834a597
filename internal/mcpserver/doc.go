// SPDX-License-Identifier: MPL-2.0

// Package mcpserver exposes validated tool descriptors to clients over a
// stdio transport. Each descriptor is registered with its raw input schema,
// and calls are routed to the embedded shell runner. Stdout carries the
// protocol stream, so all logging goes to stderr.
package mcpserver
