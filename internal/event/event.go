// Package event defines the typed model for cursor-agent output and the
// decoder that turns raw output lines into it.
//
// The agent emits one JSON object per line. Decode classifies each line into
// a closed set of kinds and extracts the fields callers actually consume
// (display text, session token, emission timestamp) so that downstream code
// never re-inspects raw payloads for routine work. The full payload is kept
// on every Event for callers that need tool arguments or other
// kind-specific detail.
package event

// Kind classifies an agent event.
//
// The set is closed: every line the agent emits maps to exactly one Kind,
// with KindUnknown absorbing anything unrecognized so that new agent
// releases degrade gracefully instead of breaking consumers.
type Kind string

const (
	// KindSystemInit is the banner event opening every invocation. Its
	// payload carries the model, working directory, and session token.
	KindSystemInit Kind = "system:init"

	// KindUser echoes the prompt back as the agent received it.
	KindUser Kind = "user"

	// KindThinkingDelta is an incremental fragment of reasoning text.
	KindThinkingDelta Kind = "thinking:delta"

	// KindThinkingComplete marks the end of a reasoning block.
	KindThinkingComplete Kind = "thinking:completed"

	// KindAssistantDelta is a partial chunk of the assistant reply,
	// emitted only when partial output streaming is enabled.
	KindAssistantDelta Kind = "assistant:delta"

	// KindAssistant is the full assistant reply (non-streaming, or the
	// final consolidated message of a stream).
	KindAssistant Kind = "assistant"

	// KindToolCallStarted reports that the agent began executing a tool.
	KindToolCallStarted Kind = "tool-call-started"

	// KindToolCallCompleted reports that a tool execution finished.
	KindToolCallCompleted Kind = "tool-call-completed"

	// KindResultSuccess is the terminal event of a successful run.
	KindResultSuccess Kind = "result:success"

	// KindResultError is the terminal event of a failed run.
	KindResultError Kind = "result:error"

	// KindUnknown covers event shapes this package does not recognize.
	// The raw payload is preserved so callers can still inspect it.
	KindUnknown Kind = "unknown"
)

// Event is one decoded line of agent output. Events are immutable once
// decoded; consumers receive them by value.
type Event struct {
	// Kind is the classified event kind.
	Kind Kind

	// RawKind is the agent's own type tag, preserved verbatim. For
	// KindUnknown this is the only hint at what the agent meant.
	RawKind string

	// SubKind is the agent's subtype tag, empty when absent.
	SubKind string

	// Payload is the full decoded JSON object.
	Payload map[string]any

	// Text is the display text extracted from the payload, empty when the
	// event carries none. See Decode for the extraction order.
	Text string

	// SessionID is the session token, when the event carries one.
	SessionID string

	// TimestampMS is the emission timestamp in Unix milliseconds. Valid
	// only when HasTimestamp is true.
	TimestampMS int64

	// HasTimestamp records whether the line carried a timestamp field at
	// all. Presence, not value, distinguishes a streamed assistant delta
	// from the final assistant message.
	HasTimestamp bool
}

// IsDelta reports whether the event is an incremental fragment
// (assistant or thinking) rather than a complete message.
func (e Event) IsDelta() bool {
	return e.Kind == KindAssistantDelta || e.Kind == KindThinkingDelta
}

// IsTerminal reports whether the event ends the invocation.
func (e Event) IsTerminal() bool {
	return e.Kind == KindResultSuccess || e.Kind == KindResultError
}

// Result is the outcome of one completed agent invocation.
//
// A Result is produced either by decoding the single JSON object a
// full-output invocation prints, or by reconstructing the outcome from the
// terminal event of a stream. Failures the agent itself reports (non-zero
// exit, timeout, undecodable output) become a Result with Success false
// rather than a Go error; only failures to launch the process at all
// surface as errors.
type Result struct {
	// Success reports whether the agent completed the request.
	Success bool

	// Text is the agent's final answer. On a decode failure it holds the
	// raw undecodable output so nothing is silently dropped.
	Text string

	// SessionID is the session token for resuming this conversation.
	SessionID string

	// RequestID identifies the request on the agent side, when reported.
	RequestID string

	// DurationMS is the total wall-clock duration reported by the agent.
	DurationMS int64

	// DurationAPIMS is the model-API portion of the duration.
	DurationAPIMS int64

	// ErrorMessage describes the failure when Success is false. Empty on
	// success.
	ErrorMessage string

	// Events holds the full decoded event sequence for results
	// reconstructed from a stream. Nil for single-shot invocations.
	Events []Event
}
