package cursoragent

import (
	"context"
	"iter"
	"os"

	"github.com/oklog/ulid/v2"

	"github.com/yidong72/cursor-agent-sdk-go/internal/cli"
	"github.com/yidong72/cursor-agent-sdk-go/internal/config"
	"github.com/yidong72/cursor-agent-sdk-go/internal/subprocess"
)

// Stream is a live agent invocation delivering events as they arrive.
//
// Streams are single-use: iterate Events once, then inspect Collected or
// ExitCode. Cancel stops the agent mid-run; Close releases the process if
// the stream was abandoned before draining. A Stream must not be shared
// across goroutines without external synchronization.
//
// Example usage:
//
//	stream, err := client.QueryStream(ctx, "Write a long story")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer stream.Close()
//
//	for ev := range stream.Events() {
//	    fmt.Print(ev.Text)
//	    if tooLong(stream.Collected()) {
//	        stream.Cancel(syscall.SIGTERM)
//	        break
//	    }
//	}
type Stream struct {
	proc *subprocess.Stream
}

// QueryStream starts a streaming invocation of prompt and returns once
// the agent process is running. Decoded events are pulled through
// Events; the final outcome arrives as the last terminal event rather
// than a Result.
//
// WithTimeout has no effect on streams. Cancel the context or call
// Cancel to bound one. Cancelling the context signals the process and
// ends iteration early.
func (c *Client) QueryStream(ctx context.Context, prompt string, opts ...QueryOption) (*Stream, error) {
	q := applyQueryOptions(opts)

	log := c.log.With("invocation_id", ulid.Make().String())
	log.Debug("starting stream",
		"prompt_len", len(prompt),
		"session_id", q.sessionID,
		"partial_output", q.partial)

	inv := cli.Invocation{
		OutputFormat:  config.OutputStreamJSON,
		StreamPartial: q.partial,
		SessionID:     q.sessionID,
		Mode:          q.mode,
	}

	proc := subprocess.NewStream(log, prompt, inv, c.options)
	if err := proc.Start(ctx); err != nil {
		return nil, err
	}

	return &Stream{proc: proc}, nil
}

// Events returns the event iterator. Breaking out of the loop leaves the
// process running; resume the same iterator or Cancel. After the agent
// closes its output the iterator ends and the exit status becomes
// available through ExitCode.
func (s *Stream) Events() iter.Seq[Event] {
	return s.proc.Events()
}

// Cancel terminates the agent with sig, escalating to SIGKILL if it
// ignores the signal. A nil sig means SIGTERM. Events observed after
// cancellation are dropped. Safe to call multiple times; only the first
// call signals.
func (s *Stream) Cancel(sig os.Signal) {
	s.proc.Cancel(sig)
}

// Cancelled reports whether Cancel was called. A stream that drained
// naturally reports false.
func (s *Stream) Cancelled() bool {
	return s.proc.Cancelled()
}

// Collected returns a copy of every event delivered so far. Useful for
// CollectText and for inspecting a run after cancellation.
func (s *Stream) Collected() []Event {
	return s.proc.Collected()
}

// ExitCode returns the agent's exit status. The boolean is false until
// the process has been reaped.
func (s *Stream) ExitCode() (int, bool) {
	return s.proc.ExitCode()
}

// Close releases the stream. A finished stream is a no-op; an abandoned
// one is cancelled with SIGTERM first. Always returns nil and is safe to
// defer alongside explicit Cancel calls.
func (s *Stream) Close() error {
	return s.proc.Close()
}
