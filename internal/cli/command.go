package cli

import (
	"fmt"
	"os"

	"github.com/yidong72/cursor-agent-sdk-go/internal/config"
)

// Invocation describes one agent invocation to build arguments for.
// The prompt is never part of the arguments; callers write it to the
// process stdin and close it.
type Invocation struct {
	// OutputFormat selects the shape of agent output.
	OutputFormat config.OutputFormat

	// StreamPartial requests incremental partial output fragments.
	// Only honored when OutputFormat is stream-json; silently dropped
	// for every other format.
	StreamPartial bool

	// SessionID resumes an existing conversation when non-empty.
	SessionID string

	// Mode selects an execution mode ("plan" or "ask") when non-empty.
	Mode string
}

// BuildArgs constructs the agent command arguments for one invocation.
// The returned slice excludes the binary itself.
//
// Flag order is fixed: output shape first, then per-invocation flags,
// then the persistent configuration flags.
func BuildArgs(inv *Invocation, options *config.Options) []string {
	args := []string{
		"--print",
		"--output-format", string(inv.OutputFormat),
	}

	// Hard precondition: partial delivery exists only in stream-json.
	if inv.StreamPartial && inv.OutputFormat == config.OutputStreamJSON {
		args = append(args, "--stream-partial-output")
	}

	if inv.SessionID != "" {
		args = append(args, "--resume", inv.SessionID)
	}

	if options.Workspace != "" {
		args = append(args, "--workspace", options.Workspace)
	}

	if options.Model != "" {
		args = append(args, "--model", options.Model)
	}

	if options.ForceApprove {
		args = append(args, "-f")
	}

	if options.ApproveMCPs {
		args = append(args, "--approve-mcps")
	}

	if options.APIKey != "" {
		args = append(args, "--api-key", options.APIKey)
	}

	for _, header := range options.Headers {
		args = append(args, "-H", header)
	}

	if inv.Mode != "" {
		args = append(args, "--mode", inv.Mode)
	}

	return args
}

// BuildCreateChatArgs constructs the arguments for the create-chat
// subcommand, which prints a fresh session id and exits.
func BuildCreateChatArgs() []string {
	return []string{"create-chat"}
}

// BuildListModelsArgs constructs the arguments for the model listing
// subcommand, which prints one model id per line and exits.
func BuildListModelsArgs() []string {
	return []string{"--list-models"}
}

// BuildEnvironment constructs the environment variables for the agent
// process: the current environment plus any user-provided overrides.
func BuildEnvironment(options *config.Options) []string {
	env := os.Environ()

	for key, value := range options.Env {
		env = append(env, fmt.Sprintf("%s=%s", key, value))
	}

	return env
}
