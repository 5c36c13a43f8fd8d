package cursoragent

import "github.com/yidong72/cursor-agent-sdk-go/internal/errors"

// Re-export error types from internal package

// AgentNotFoundError indicates the cursor-agent binary was not found.
type AgentNotFoundError = errors.AgentNotFoundError

// ProcessLaunchError indicates the agent process could not be started.
type ProcessLaunchError = errors.ProcessLaunchError

// ProcessExitError indicates the agent process exited unsuccessfully.
type ProcessExitError = errors.ProcessExitError

// PayloadDecodeError indicates JSON decoding failed for agent output.
type PayloadDecodeError = errors.PayloadDecodeError

// AgentSDKError is the base interface for all SDK errors.
type AgentSDKError = errors.AgentSDKError

// Re-export sentinel errors from internal package.
var (
	// ErrQueryTimeout indicates a single-shot query exceeded its deadline.
	ErrQueryTimeout = errors.ErrQueryTimeout

	// ErrPoolClosed indicates the worker pool has been shut down.
	ErrPoolClosed = errors.ErrPoolClosed

	// ErrEmptySessionID indicates create-chat produced no session identifier.
	ErrEmptySessionID = errors.ErrEmptySessionID
)
