// Package config provides configuration types for the cursor-agent SDK.
package config

import "context"

// RunResult carries the captured output of one run-to-completion invocation.
type RunResult struct {
	// Stdout is the complete standard output of the process.
	Stdout string

	// Stderr is the complete diagnostic output of the process.
	Stderr string

	// ExitCode is the process exit status. Zero means success.
	ExitCode int
}

// Runner abstracts run-to-completion execution of the agent binary.
// Implement this to provide custom runners for testing, mocking, or
// alternative execution methods (e.g. remote invocation).
//
// The default implementation spawns a subprocess and performs binary
// discovery on every call. Custom runners can be injected via
// Options.Runner, in which case discovery is skipped.
type Runner interface {
	// Run executes the agent with the given arguments to completion,
	// writing input to its stdin and then closing it. The args slice
	// excludes the binary itself.
	//
	// A non-zero exit status is reported through RunResult.ExitCode,
	// not as an error. Errors are reserved for launch failures and
	// expired deadlines.
	Run(ctx context.Context, args []string, input string) (*RunResult, error)
}
