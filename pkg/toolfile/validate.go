// SPDX-License-Identifier: MPL-2.0

package toolfile

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// CheckName verifies the descriptor declares a non-empty name.
	CheckName = "name"
	// CheckInputSchema verifies the descriptor declares an input schema.
	CheckInputSchema = "inputSchema"
	// CheckRunScript verifies the descriptor declares a runnable script.
	CheckRunScript = "run.script"
)

// ErrContract is the sentinel error wrapped by ContractError.
var ErrContract = errors.New("tool descriptor violates capability contract")

type (
	// ContractIssue describes one failed capability contract check.
	ContractIssue struct {
		// Check is the failed check identifier (CheckName, CheckInputSchema
		// or CheckRunScript).
		Check string
		// Detail is the human-readable explanation.
		Detail string
	}

	// ContractError is returned when a decoded candidate fails the
	// capability contract. It enumerates every failed check rather than
	// stopping at the first, and wraps ErrContract for errors.Is().
	ContractError struct {
		// File is the descriptor's source path (optional).
		File string
		// Issues lists all failed checks, in check order.
		Issues []ContractIssue
	}
)

// Error implements the error interface.
func (e *ContractError) Error() string {
	var sb strings.Builder
	sb.WriteString(ErrContract.Error())
	if e.File != "" {
		fmt.Fprintf(&sb, " in %s", e.File)
	}
	for _, issue := range e.Issues {
		fmt.Fprintf(&sb, "\n  %s: %s", issue.Check, issue.Detail)
	}
	return sb.String()
}

// Unwrap returns ErrContract for errors.Is() compatibility.
func (e *ContractError) Unwrap() error {
	return ErrContract
}

// Validate checks a decoded candidate against the capability contract and
// promotes it to a Tool. On failure it returns a ContractError listing every
// failed check; the candidate is never partially promoted.
func Validate(tf *ToolFile) (*Tool, error) {
	var issues []ContractIssue

	if strings.TrimSpace(tf.Name) == "" {
		issues = append(issues, ContractIssue{
			Check:  CheckName,
			Detail: "descriptor must declare a non-empty name",
		})
	}
	if tf.InputSchema == nil {
		issues = append(issues, ContractIssue{
			Check:  CheckInputSchema,
			Detail: "descriptor must declare an inputSchema object",
		})
	}
	if tf.Run == nil || strings.TrimSpace(tf.Run.Script) == "" {
		issues = append(issues, ContractIssue{
			Check:  CheckRunScript,
			Detail: "descriptor must declare a run block with a non-empty script",
		})
	}

	if len(issues) > 0 {
		return nil, &ContractError{File: tf.FilePath, Issues: issues}
	}

	return &Tool{
		Name:        tf.Name,
		Description: tf.Description,
		InputSchema: tf.InputSchema,
		Run:         *tf.Run,
	}, nil
}
