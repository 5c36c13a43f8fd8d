package subprocess

import (
	"bytes"
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
	"syscall"

	"github.com/yidong72/cursor-agent-sdk-go/internal/cli"
	"github.com/yidong72/cursor-agent-sdk-go/internal/config"
	"github.com/yidong72/cursor-agent-sdk-go/internal/errors"
)

// ExecRunner is the production Runner: each call discovers the agent
// binary, executes one run-to-completion invocation with input on stdin,
// and captures stdout and stderr in full.
type ExecRunner struct {
	log  *slog.Logger
	opts *config.Options
}

// Compile-time verification that ExecRunner implements the Runner interface.
var _ config.Runner = (*ExecRunner)(nil)

// NewExecRunner creates a runner bound to the given options.
func NewExecRunner(log *slog.Logger, options *config.Options) *ExecRunner {
	return &ExecRunner{
		log:  log.With("component", "runner"),
		opts: options,
	}
}

// Run executes the agent with args, writing input to its stdin. A non-zero
// exit is reported through RunResult.ExitCode, not as an error; errors are
// reserved for failing to locate or launch the binary and for context
// expiry.
//
// When the options enable kill-on-timeout (the default), context expiry
// interrupts the process and force-kills it after a short grace period.
// Otherwise the deadline only abandons the wait: the caller gets
// ctx.Err() while the process is left to finish on its own.
func (r *ExecRunner) Run(ctx context.Context, args []string, input string) (*config.RunResult, error) {
	discoverer := cli.NewDiscoverer(&cli.Config{
		BinaryPath:       r.opts.BinaryPath,
		SkipVersionCheck: r.opts.SkipVersionCheck,
		Logger:           r.log,
	})

	binPath, err := discoverer.Discover(ctx)
	if err != nil {
		return nil, fmt.Errorf("discover agent: %w", err)
	}

	r.log.Debug("running agent", "args", args)

	if r.opts.KillOnTimeout {
		return r.runManaged(ctx, binPath, args, input)
	}

	return r.runDetached(ctx, binPath, args, input)
}

// runManaged runs the process under the context: on expiry it is
// interrupted, given cancelGracePeriod to exit, then force-killed.
func (r *ExecRunner) runManaged(ctx context.Context, binPath string, args []string, input string) (*config.RunResult, error) {
	//nolint:gosec // G204: subprocess launching with dynamic args is the point here
	cmd := exec.CommandContext(ctx, binPath, args...)
	cmd.Env = cli.BuildEnvironment(r.opts)
	if r.opts.Workspace != "" {
		cmd.Dir = r.opts.Workspace
	}
	cmd.Stdin = strings.NewReader(input)

	var stdout, stderr bytes.Buffer

	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.Cancel = func() error {
		return signalProcess(cmd.Process, syscall.SIGTERM)
	}
	cmd.WaitDelay = cancelGracePeriod

	err := cmd.Run()
	if err != nil {
		// Deadline and cancellation take precedence: the process was
		// terminated on our initiative, so its exit status means nothing.
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		if exitErr, ok := stderrors.AsType[*exec.ExitError](err); ok {
			return &config.RunResult{
				Stdout:   stdout.String(),
				Stderr:   stderr.String(),
				ExitCode: exitErr.ExitCode(),
			}, nil
		}

		return nil, &errors.ProcessLaunchError{Err: err}
	}

	return &config.RunResult{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}, nil
}

// runDetached preserves the legacy timeout shape: the process is started
// without a context and the deadline only bounds the wait. The reaper
// goroutine collects the exit status whenever the process finishes.
func (r *ExecRunner) runDetached(ctx context.Context, binPath string, args []string, input string) (*config.RunResult, error) {
	//nolint:gosec // G204: subprocess launching with dynamic args is the point here
	cmd := exec.Command(binPath, args...)
	cmd.Env = cli.BuildEnvironment(r.opts)
	if r.opts.Workspace != "" {
		cmd.Dir = r.opts.Workspace
	}
	cmd.Stdin = strings.NewReader(input)

	var stdout, stderr bytes.Buffer

	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Start(); err != nil {
		return nil, &errors.ProcessLaunchError{Err: err}
	}

	done := make(chan error, 1)
	go func() {
		done <- cmd.Wait()
	}()

	select {
	case err := <-done:
		if err != nil {
			if exitErr, ok := stderrors.AsType[*exec.ExitError](err); ok {
				return &config.RunResult{
					Stdout:   stdout.String(),
					Stderr:   stderr.String(),
					ExitCode: exitErr.ExitCode(),
				}, nil
			}

			return nil, &errors.ProcessLaunchError{Err: err}
		}

		return &config.RunResult{
			Stdout: stdout.String(),
			Stderr: stderr.String(),
		}, nil

	case <-ctx.Done():
		r.log.Warn("deadline elapsed, abandoning agent process", "pid", cmd.Process.Pid)

		return nil, ctx.Err()
	}
}
