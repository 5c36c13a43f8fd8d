package cursoragent

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/oklog/ulid/v2"

	"github.com/yidong72/cursor-agent-sdk-go/internal/cli"
	"github.com/yidong72/cursor-agent-sdk-go/internal/config"
	"github.com/yidong72/cursor-agent-sdk-go/internal/errors"
	"github.com/yidong72/cursor-agent-sdk-go/internal/event"
	"github.com/yidong72/cursor-agent-sdk-go/internal/models"
	"github.com/yidong72/cursor-agent-sdk-go/internal/subprocess"
)

// Client drives the cursor-agent binary in non-interactive mode.
//
// Every call spawns a fresh agent process, so the client holds no
// connection state and is safe for concurrent use. Conversation state
// lives in the agent's own session store and is addressed by session
// identifiers; use Session for a convenience wrapper that threads the
// identifier automatically.
//
// Example usage:
//
//	client := cursoragent.New(
//	    cursoragent.WithModel("gpt-5"),
//	    cursoragent.WithLogger(slog.Default()),
//	)
//
//	result, err := client.Query(ctx, "What is 2+2?")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if !result.Success {
//	    log.Fatal(result.ErrorMessage)
//	}
//	fmt.Println(result.Text)
type Client struct {
	options    *Options
	log        *slog.Logger
	runner     config.Runner
	modelCache *models.ListCache
}

// New creates a client. The zero configuration is usable: the binary is
// discovered on PATH and logging is disabled.
func New(opts ...Option) *Client {
	options := applyOptions(opts)

	runner := options.Runner
	if runner == nil {
		runner = subprocess.NewExecRunner(loggerWithComponent(options.Logger, "runner"), options)
	}

	var cache *models.ListCache
	if options.ModelCacheTTL > 0 {
		cache = models.NewListCache(options.ModelCacheTTL)
	}

	return &Client{
		options:    options,
		log:        loggerWithComponent(options.Logger, "client"),
		runner:     runner,
		modelCache: cache,
	}
}

// Query runs a single prompt to completion and decodes the agent's final
// JSON payload.
//
// Agent-side failures come back as a Result with Success false rather
// than an error: a non-zero exit carries the agent's stderr in
// ErrorMessage, undecodable output preserves the raw stdout in Text, and
// an expired WithTimeout deadline reports a timeout. An error return
// means the process could not be run at all.
func (c *Client) Query(ctx context.Context, prompt string, opts ...QueryOption) (*Result, error) {
	q := applyQueryOptions(opts)

	log := c.log.With("invocation_id", ulid.Make().String())
	log.Debug("starting query",
		"prompt_len", len(prompt),
		"session_id", q.sessionID,
		"timeout", q.timeout)

	if q.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, q.timeout)
		defer cancel()
	}

	inv := cli.Invocation{
		OutputFormat: config.OutputJSON,
		SessionID:    q.sessionID,
		Mode:         q.mode,
	}

	res, err := c.runner.Run(ctx, cli.BuildArgs(&inv, c.options), prompt)
	if err != nil {
		if stderrors.Is(err, context.DeadlineExceeded) {
			log.Warn("query deadline elapsed", "timeout", q.timeout)
			return failureResult(q.sessionID, errors.ErrQueryTimeout.Error()), nil
		}

		return nil, err
	}

	if res.ExitCode != 0 {
		msg := strings.TrimSpace(res.Stderr)
		if msg == "" {
			msg = fmt.Sprintf("exit code: %d", res.ExitCode)
		}

		log.Debug("agent exited non-zero", "exit_code", res.ExitCode)

		return failureResult(q.sessionID, msg), nil
	}

	decoded, err := event.DecodeResult(res.Stdout)
	if err != nil {
		decodeErr := &errors.PayloadDecodeError{RawData: res.Stdout, Err: err}
		log.Debug("agent output was not valid JSON", "stdout_len", len(res.Stdout))

		failure := failureResult(q.sessionID, decodeErr.Error())
		failure.Text = res.Stdout

		return failure, nil
	}

	log.Debug("query complete",
		"success", decoded.Success,
		"session_id", decoded.SessionID,
		"duration_ms", decoded.DurationMS)

	return &decoded, nil
}

// CreateSession asks the agent to allocate a fresh conversation and
// returns its identifier. The identifier can seed Session values or be
// passed to WithSession directly.
func (c *Client) CreateSession(ctx context.Context) (string, error) {
	res, err := c.runner.Run(ctx, cli.BuildCreateChatArgs(), "")
	if err != nil {
		return "", err
	}

	if res.ExitCode != 0 {
		return "", &errors.ProcessExitError{ExitCode: res.ExitCode, Stderr: strings.TrimSpace(res.Stderr)}
	}

	sessionID := strings.TrimSpace(res.Stdout)
	if sessionID == "" {
		return "", errors.ErrEmptySessionID
	}

	c.log.Debug("created session", "session_id", sessionID)

	return sessionID, nil
}

// ListModels returns the model identifiers the installed agent accepts.
// Results are cached when WithModelListCache is configured.
func (c *Client) ListModels(ctx context.Context) ([]string, error) {
	if c.modelCache != nil {
		if cached, ok := c.modelCache.Get(); ok {
			c.log.Debug("model list served from cache", "count", len(cached))
			return cached, nil
		}
	}

	res, err := c.runner.Run(ctx, cli.BuildListModelsArgs(), "")
	if err != nil {
		return nil, err
	}

	if res.ExitCode != 0 {
		return nil, &errors.ProcessExitError{ExitCode: res.ExitCode, Stderr: strings.TrimSpace(res.Stderr)}
	}

	list := parseModelLines(res.Stdout)
	if c.modelCache != nil {
		c.modelCache.Put(list)
	}

	c.log.Debug("listed models", "count", len(list))

	return list, nil
}

// failureResult builds the Result shape all agent-side failures share.
func failureResult(sessionID, message string) *Result {
	return &Result{
		Success:      false,
		SessionID:    sessionID,
		ErrorMessage: message,
	}
}

// parseModelLines splits list-models output into one identifier per
// non-blank line.
func parseModelLines(output string) []string {
	var list []string
	for line := range strings.SplitSeq(strings.TrimSpace(output), "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			list = append(list, trimmed)
		}
	}

	return list
}
