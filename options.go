package cursoragent

import (
	"log/slog"
	"time"

	"github.com/yidong72/cursor-agent-sdk-go/internal/config"
)

// Options holds the full configuration for a client.
// Most callers should use the functional options below instead of
// constructing this directly.
type Options = config.Options

// Option configures Options using the functional options pattern.
// This is the primary option type for configuring clients.
type Option func(*Options)

// applyOptions applies functional options to an Options struct.
// Timeout kills are on unless explicitly disabled.
func applyOptions(opts []Option) *Options {
	options := &Options{KillOnTimeout: true}
	for _, opt := range opts {
		opt(options)
	}

	return options
}

// ===== Basic Configuration =====

// WithLogger sets the logger for debug output.
// If not set, logging is disabled (silent operation).
func WithLogger(logger *slog.Logger) Option {
	return func(o *Options) {
		o.Logger = logger
	}
}

// WithModel specifies which model the agent should use (e.g. "gpt-5",
// "sonnet-4.5"). If not set, the agent picks its own default.
func WithModel(model string) Option {
	return func(o *Options) {
		o.Model = model
	}
}

// WithWorkspace sets the working directory for the agent process.
func WithWorkspace(dir string) Option {
	return func(o *Options) {
		o.Workspace = dir
	}
}

// WithBinaryPath sets the explicit path to the cursor-agent binary.
// If not set, the binary will be searched in PATH and the usual
// install locations.
func WithBinaryPath(path string) Option {
	return func(o *Options) {
		o.BinaryPath = path
	}
}

// WithEnv provides additional environment variables for the agent process.
func WithEnv(env map[string]string) Option {
	return func(o *Options) {
		o.Env = env
	}
}

// ===== Authentication =====

// WithAPIKey authenticates the agent with an API key instead of the
// interactive login. Prefer the CURSOR_API_KEY environment variable when
// the key should not appear in process listings.
func WithAPIKey(key string) Option {
	return func(o *Options) {
		o.APIKey = key
	}
}

// WithHeaders forwards extra HTTP headers to the agent backend.
// Each entry is a "Name: Value" string.
func WithHeaders(headers ...string) Option {
	return func(o *Options) {
		o.Headers = append(o.Headers, headers...)
	}
}

// ===== Approval Behavior =====

// WithForceApprove makes the agent auto-approve every action it proposes.
// Only use this in sandboxed or disposable workspaces.
func WithForceApprove(approve bool) Option {
	return func(o *Options) {
		o.ForceApprove = approve
	}
}

// WithApproveMCPs makes the agent auto-approve MCP tool invocations.
func WithApproveMCPs(approve bool) Option {
	return func(o *Options) {
		o.ApproveMCPs = approve
	}
}

// ===== Process Control =====

// WithKillOnTimeout controls whether a query that exceeds its deadline
// gets its agent process killed. Enabled by default; disabling it
// restores the legacy behavior where the deadline abandons the process
// and leaves it running.
func WithKillOnTimeout(kill bool) Option {
	return func(o *Options) {
		o.KillOnTimeout = kill
	}
}

// WithSkipVersionCheck disables the best-effort version probe that runs
// after the binary is discovered.
func WithSkipVersionCheck(skip bool) Option {
	return func(o *Options) {
		o.SkipVersionCheck = skip
	}
}

// WithStderr registers a callback for agent stderr lines.
// Useful for surfacing agent-side diagnostics in real time.
func WithStderr(callback func(string)) Option {
	return func(o *Options) {
		o.Stderr = callback
	}
}

// WithRunner replaces the subprocess runner used for single-shot
// invocations. Intended for tests and custom process supervision.
func WithRunner(runner config.Runner) Option {
	return func(o *Options) {
		o.Runner = runner
	}
}

// WithModelListCache caches ListModels results for the given TTL.
// A zero TTL disables caching, which is the default.
func WithModelListCache(ttl time.Duration) Option {
	return func(o *Options) {
		o.ModelCacheTTL = ttl
	}
}

// ===== Per-Query Options =====

// Mode selects how the agent approaches a prompt.
type Mode = config.Mode

const (
	// ModePlan makes the agent produce an implementation plan without
	// executing it.
	ModePlan = config.ModePlan
	// ModeAsk restricts the agent to answering questions about the
	// workspace without making changes.
	ModeAsk = config.ModeAsk
)

// queryConfig holds the per-call knobs of a single query.
type queryConfig struct {
	sessionID string
	mode      string
	timeout   time.Duration
	partial   bool
}

// QueryOption configures a single query or stream.
type QueryOption func(*queryConfig)

// applyQueryOptions applies per-call options.
// Partial output is on unless explicitly disabled.
func applyQueryOptions(opts []QueryOption) *queryConfig {
	q := &queryConfig{partial: true}
	for _, opt := range opts {
		opt(q)
	}

	return q
}

// WithSession resumes an existing conversation by its session identifier.
func WithSession(sessionID string) QueryOption {
	return func(q *queryConfig) {
		q.sessionID = sessionID
	}
}

// WithTimeout bounds a single-shot query. On expiry the query returns a
// failure result rather than an error. Streams ignore this option; cancel
// the stream or its context instead.
func WithTimeout(timeout time.Duration) QueryOption {
	return func(q *queryConfig) {
		q.timeout = timeout
	}
}

// WithMode selects an agent execution mode, typically ModePlan or
// ModeAsk. The mode is normalized before it reaches the agent, so
// "Plan" and " ask " work too; unknown modes are passed through for
// newer agent versions to interpret.
func WithMode(mode Mode) QueryOption {
	return func(q *queryConfig) {
		q.mode = config.NormalizeMode(string(mode))
	}
}

// WithPartialOutput controls whether a stream carries incremental delta
// events. Enabled by default; single-shot queries ignore it.
func WithPartialOutput(include bool) QueryOption {
	return func(q *queryConfig) {
		q.partial = include
	}
}
