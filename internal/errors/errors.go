package errors

import (
	"errors"
	"fmt"
)

// AgentSDKError is the base interface for all SDK errors.
type AgentSDKError interface {
	error
	IsAgentSDKError() bool
}

// Compile-time verification that all error types implement AgentSDKError.
var (
	_ AgentSDKError = (*AgentNotFoundError)(nil)
	_ AgentSDKError = (*ProcessLaunchError)(nil)
	_ AgentSDKError = (*ProcessExitError)(nil)
	_ AgentSDKError = (*PayloadDecodeError)(nil)
)

// Sentinel errors for commonly checked conditions.
var (
	// ErrQueryTimeout indicates a single-shot query exceeded its deadline.
	ErrQueryTimeout = errors.New("request timed out")

	// ErrPoolClosed indicates the worker pool has been shut down.
	ErrPoolClosed = errors.New("pool closed")

	// ErrEmptySessionID indicates create-chat produced no session identifier.
	ErrEmptySessionID = errors.New("create-chat returned an empty session id")
)

// AgentNotFoundError indicates the cursor-agent binary was not found.
type AgentNotFoundError struct {
	SearchedPaths []string
}

func (e *AgentNotFoundError) Error() string {
	return fmt.Sprintf("cursor-agent not found in: %v", e.SearchedPaths)
}

// IsAgentSDKError implements AgentSDKError.
func (e *AgentNotFoundError) IsAgentSDKError() bool { return true }

// ProcessLaunchError indicates the agent process could not be spawned.
type ProcessLaunchError struct {
	Err error
}

func (e *ProcessLaunchError) Error() string {
	return fmt.Sprintf("failed to launch cursor-agent: %v", e.Err)
}

func (e *ProcessLaunchError) Unwrap() error {
	return e.Err
}

// IsAgentSDKError implements AgentSDKError.
func (e *ProcessLaunchError) IsAgentSDKError() bool { return true }

// ProcessExitError indicates the agent process exited unsuccessfully.
type ProcessExitError struct {
	ExitCode int
	Stderr   string
	Err      error
}

func (e *ProcessExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("cursor-agent failed (exit %d): %v", e.ExitCode, e.Err)
	}

	return fmt.Sprintf("cursor-agent failed (exit %d): %s", e.ExitCode, e.Stderr)
}

func (e *ProcessExitError) Unwrap() error {
	return e.Err
}

// IsAgentSDKError implements AgentSDKError.
func (e *ProcessExitError) IsAgentSDKError() bool { return true }

// PayloadDecodeError indicates JSON decoding failed for agent output.
// This error preserves the original raw text that failed to parse.
type PayloadDecodeError struct {
	RawData string
	Err     error
}

func (e *PayloadDecodeError) Error() string {
	return fmt.Sprintf("failed to decode agent payload: %v", e.Err)
}

func (e *PayloadDecodeError) Unwrap() error {
	return e.Err
}

// IsAgentSDKError implements AgentSDKError.
func (e *PayloadDecodeError) IsAgentSDKError() bool { return true }
