package subprocess

import (
	"bufio"
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"iter"
	"log/slog"
	"os"
	"os/exec"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/yidong72/cursor-agent-sdk-go/internal/cli"
	"github.com/yidong72/cursor-agent-sdk-go/internal/config"
	"github.com/yidong72/cursor-agent-sdk-go/internal/errors"
	"github.com/yidong72/cursor-agent-sdk-go/internal/event"
)

const (
	// maxScanTokenSize is the maximum buffer size for reading agent output lines.
	maxScanTokenSize = 1024 * 1024 // 1MB
	// maxStderrBufferSize is the maximum size for the stderr buffer.
	// Stderr reading continues indefinitely (the callback receives all lines),
	// but the buffer stops growing after this limit to prevent unbounded memory usage.
	maxStderrBufferSize = 10 * 1024 * 1024 // 10MB
	// cancelGracePeriod is how long a signalled process gets to exit on its
	// own before being force-killed.
	cancelGracePeriod = 2 * time.Second
)

// Stream owns one running agent process and exposes its output as a lazily
// decoded, forward-only event sequence.
//
// Lifecycle: Start spawns the process and delivers the prompt; Events
// consumes stdout until it is exhausted, the consumer breaks out, or the
// stream is cancelled; the process is reaped exactly once on whichever of
// those paths runs first to finish. Close is safe to defer and releases the
// process on every exit path from consumption.
type Stream struct {
	log    *slog.Logger
	opts   *config.Options
	inv    cli.Invocation
	prompt string

	cmd    *exec.Cmd
	stdout io.ReadCloser

	mu        sync.Mutex // protects cancelled, events, exit state
	cancelled bool
	events    []event.Event
	exited    bool
	exitCode  int

	stderrMu  sync.Mutex
	stderrBuf strings.Builder
	stderrWg  sync.WaitGroup

	reapOnce sync.Once
	done     chan struct{} // closed once the process is reaped
}

// NewStream creates a stream for one agent invocation. The prompt is held
// until Start, where it is written to the process over stdin; it never
// appears in argv.
func NewStream(log *slog.Logger, prompt string, inv cli.Invocation, options *config.Options) *Stream {
	return &Stream{
		log:    log.With("component", "stream"),
		opts:   options,
		inv:    inv,
		prompt: prompt,
		done:   make(chan struct{}),
	}
}

// Start discovers the agent binary, spawns the process with stdin, stdout,
// and stderr pipes, writes the prompt, and closes stdin to signal
// end-of-input. It returns as soon as the process is running; output is
// consumed via Events.
//
// Returns AgentNotFoundError if the binary cannot be located, or
// ProcessLaunchError if the process fails to start or refuses the prompt.
func (s *Stream) Start(ctx context.Context) error {
	discoverer := cli.NewDiscoverer(&cli.Config{
		BinaryPath:       s.opts.BinaryPath,
		SkipVersionCheck: s.opts.SkipVersionCheck,
		Logger:           s.log,
	})

	binPath, err := discoverer.Discover(ctx)
	if err != nil {
		return fmt.Errorf("discover agent: %w", err)
	}

	args := cli.BuildArgs(&s.inv, s.opts)
	s.log.Debug("built command arguments", "args", args)

	//nolint:gosec // G204: subprocess launching with dynamic args is the point here
	cmd := exec.CommandContext(ctx, binPath, args...)
	cmd.Env = cli.BuildEnvironment(s.opts)
	if s.opts.Workspace != "" {
		cmd.Dir = s.opts.Workspace
	}
	// Context cancellation interrupts gracefully first; WaitDelay covers a
	// process that ignores the interrupt.
	cmd.Cancel = func() error {
		return signalProcess(cmd.Process, syscall.SIGTERM)
	}
	cmd.WaitDelay = cancelGracePeriod

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return &errors.ProcessLaunchError{Err: fmt.Errorf("stdin pipe: %w", err)}
	}

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return &errors.ProcessLaunchError{Err: fmt.Errorf("stdout pipe: %w", err)}
	}

	stderr, err := cmd.StderrPipe()
	if err != nil {
		return &errors.ProcessLaunchError{Err: fmt.Errorf("stderr pipe: %w", err)}
	}

	if err := cmd.Start(); err != nil {
		return &errors.ProcessLaunchError{Err: fmt.Errorf("start process: %w", err)}
	}

	s.cmd = cmd
	s.stdout = stdout
	s.log.Debug("agent process started", "pid", cmd.Process.Pid)

	s.stderrWg.Go(func() {
		s.drainStderr(stderr)
	})

	// Prompt over stdin, then close: end-of-input is what tells the agent
	// to start working.
	if _, err := io.WriteString(stdin, s.prompt); err != nil {
		_ = signalProcess(cmd.Process, os.Kill)
		s.reap()

		return &errors.ProcessLaunchError{Err: fmt.Errorf("write prompt: %w", err)}
	}

	if err := stdin.Close(); err != nil {
		s.log.Debug("closing stdin failed", "error", err)
	}

	return nil
}

// Events returns the decoded event sequence. The sequence is lazy, finite,
// forward-only, and single-use: it suspends only when pulling the next
// line, ends when output is exhausted or the stream is cancelled, and must
// not be ranged over twice.
//
// Lines that decode to no event are skipped. Once cancellation is
// requested, no further events are appended or yielded even if more output
// is already buffered.
func (s *Stream) Events() iter.Seq[event.Event] {
	return func(yield func(event.Event) bool) {
		scanner := bufio.NewScanner(s.stdout)
		buf := make([]byte, maxScanTokenSize)
		scanner.Buffer(buf, maxScanTokenSize)

		for scanner.Scan() {
			ev, ok := event.Decode(scanner.Text())
			if !ok {
				s.log.Debug("skipping undecodable line")

				continue
			}

			// Flag check and append share one critical section so a
			// concurrent Cancel can never slip an event in afterward.
			s.mu.Lock()
			if s.cancelled {
				s.mu.Unlock()

				break
			}
			s.events = append(s.events, ev)
			s.mu.Unlock()

			if !yield(ev) {
				return
			}
		}

		if err := scanner.Err(); err != nil && !s.Cancelled() {
			s.log.Debug("stdout scanner error", "error", err)
		}

		// Output exhausted or cancelled: collect the exit status. On the
		// cancel path Cancel is already reaping and this is a no-op.
		s.reap()
	}
}

// Cancel requests termination of the running process. A nil sig means
// SIGTERM. The first call wins; later calls are no-ops. Blocks until the
// process has exited: the interrupt gets a bounded grace period, then the
// process is force-killed and waited on unboundedly.
//
// Cancelling a stream whose process already exited only sets the flag.
func (s *Stream) Cancel(sig os.Signal) {
	s.mu.Lock()
	if s.cancelled {
		s.mu.Unlock()

		return
	}
	s.cancelled = true
	s.mu.Unlock()

	if sig == nil {
		sig = syscall.SIGTERM
	}

	s.log.Debug("cancelling stream", "signal", sig)

	if err := signalProcess(s.cmd.Process, sig); err != nil {
		s.log.Debug("signal delivery failed", "error", err)
	}

	go s.reap()

	select {
	case <-s.done:
	case <-time.After(cancelGracePeriod):
		s.log.Warn("process did not exit after interrupt, force killing")
		_ = signalProcess(s.cmd.Process, os.Kill)
		<-s.done
	}
}

// Close releases the process: if the stream has not finished it is
// cancelled (interrupt, grace, force kill), and in every case the process
// is reaped before Close returns. Safe to defer and to call repeatedly.
func (s *Stream) Close() error {
	if s.cmd == nil {
		return nil
	}

	select {
	case <-s.done:
		return nil
	default:
	}

	s.Cancel(nil)
	<-s.done

	return nil
}

// Cancelled reports whether cancellation has been requested.
func (s *Stream) Cancelled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cancelled
}

// Collected returns a copy of the events observed so far.
func (s *Stream) Collected() []event.Event {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]event.Event, len(s.events))
	copy(out, s.events)

	return out
}

// ExitCode returns the process exit code. ok is false while the process
// has not been reaped yet.
func (s *Stream) ExitCode() (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.exitCode, s.exited
}

// drainStderr buffers stderr for failure diagnostics (capped) and tees
// each line to the configured callback.
func (s *Stream) drainStderr(r io.Reader) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()

		s.stderrMu.Lock()
		if s.stderrBuf.Len() < maxStderrBufferSize {
			if s.stderrBuf.Len() > 0 {
				s.stderrBuf.WriteString("\n")
			}

			s.stderrBuf.WriteString(line)
		}
		s.stderrMu.Unlock()

		if s.opts.Stderr != nil {
			s.opts.Stderr(line)
		}
	}

	if err := scanner.Err(); err != nil {
		s.log.Debug("stderr scanner error", "error", err)
	}
}

// reap waits for the process exactly once: stderr is drained first so the
// pipe is not closed under its reader, then the exit status is collected
// and done is closed.
func (s *Stream) reap() {
	s.reapOnce.Do(func() {
		s.stderrWg.Wait()

		err := s.cmd.Wait()

		s.mu.Lock()
		s.exited = true
		if s.cmd.ProcessState != nil {
			s.exitCode = s.cmd.ProcessState.ExitCode()
		}
		exitCode := s.exitCode
		s.mu.Unlock()

		if err != nil && !s.Cancelled() {
			s.log.Debug("agent process exited with error",
				"error", err,
				"exit_code", exitCode,
				"stderr", s.stderrSnapshot(),
			)
		}

		close(s.done)
	})
}

func (s *Stream) stderrSnapshot() string {
	s.stderrMu.Lock()
	defer s.stderrMu.Unlock()

	return s.stderrBuf.String()
}

// signalProcess sends sig to p, treating an already-finished process as
// success.
func signalProcess(p *os.Process, sig os.Signal) error {
	if p == nil {
		return nil
	}

	if err := p.Signal(sig); err != nil && !stderrors.Is(err, os.ErrProcessDone) {
		return err
	}

	return nil
}
