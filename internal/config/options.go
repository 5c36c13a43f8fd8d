package config

import (
	"log/slog"
	"time"
)

// OutputFormat selects the shape of agent output.
type OutputFormat string

const (
	// OutputText requests plain text output with no structure.
	OutputText OutputFormat = "text"
	// OutputJSON requests a single JSON payload once the run completes.
	OutputJSON OutputFormat = "json"
	// OutputStreamJSON requests newline-delimited JSON events as they happen.
	OutputStreamJSON OutputFormat = "stream-json"
)

// DefaultBinary is the executable name searched when BinaryPath is empty.
// The cursor-agent installer links the CLI under this name.
const DefaultBinary = "agent"

// Options configures the behavior of the agent client.
type Options struct {
	// Logger is the slog logger for debug output.
	// If nil, logging is disabled (silent operation).
	Logger *slog.Logger

	// Workspace is the directory the agent operates in.
	// Passed as --workspace and used as the working directory of the
	// agent process.
	Workspace string

	// Model specifies which model the agent should use (e.g. "gpt-5",
	// "sonnet-4.5"). If empty, the agent picks its own default.
	Model string

	// ForceApprove auto-approves every command the agent wants to run (-f).
	ForceApprove bool

	// ApproveMCPs auto-approves configured MCP servers (--approve-mcps).
	ApproveMCPs bool

	// APIKey authenticates the agent without an interactive login
	// (--api-key). If empty, the agent falls back to its stored
	// credentials.
	APIKey string

	// Headers are extra HTTP headers forwarded to the agent backend,
	// one "Name: value" string per entry (-H, repeatable).
	Headers []string

	// BinaryPath is the explicit path to the agent binary.
	// If empty, the binary is searched in PATH and common install
	// locations.
	BinaryPath string

	// SkipVersionCheck disables the best-effort version probe that runs
	// after the binary is discovered.
	SkipVersionCheck bool

	// Env provides additional environment variables for the agent process.
	Env map[string]string

	// Stderr is a callback invoked for each line of agent stderr output.
	Stderr func(string)

	// KillOnTimeout terminates the agent process when a query deadline
	// fires. When disabled the process is left to finish on its own and
	// the query still returns a timed-out Result.
	// The root package enables this by default.
	KillOnTimeout bool

	// ModelCacheTTL caches ListModels output for this duration.
	// Zero disables caching.
	ModelCacheTTL time.Duration

	// Runner allows injecting a custom command runner implementation.
	// If nil, run-to-completion invocations spawn real subprocesses.
	Runner Runner
}
