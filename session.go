package cursoragent

import (
	"context"

	"github.com/yidong72/cursor-agent-sdk-go/internal/event"
)

// Turn is one prompt/result exchange in a conversation.
type Turn struct {
	Prompt string
	Result *Result
}

// Session threads a conversation identifier through successive queries so
// the agent sees them as one dialogue.
//
// The identifier is learned lazily: the first Send runs without one, and
// every result or event that carries a session identifier updates the
// session. An empty identifier on a later result never clears an
// established one.
//
// Sessions record their exchanges in History. They are not safe for
// concurrent use; one conversation is one goroutine's worth of state.
//
// Example usage:
//
//	session := cursoragent.NewSession(client)
//
//	reply, err := session.Send(ctx, "My name is Alice.")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	reply, err = session.Send(ctx, "What is my name?")
type Session struct {
	client    *Client
	sessionID string
	history   []Turn
}

// NewSession creates a conversation on client. A nil client gets the
// default configuration.
func NewSession(client *Client) *Session {
	if client == nil {
		client = New()
	}

	return &Session{client: client}
}

// ResumeSession creates a conversation that continues an existing agent
// session, such as one from Client.CreateSession or a previous run.
func ResumeSession(client *Client, sessionID string) *Session {
	s := NewSession(client)
	s.sessionID = sessionID

	return s
}

// Send runs one prompt inside the conversation and records the exchange.
// Per-call options apply as in Client.Query, except the session
// identifier, which the conversation manages itself.
//
// Failed results are recorded too; only a launch error leaves the
// history untouched.
func (s *Session) Send(ctx context.Context, prompt string, opts ...QueryOption) (*Result, error) {
	result, err := s.client.Query(ctx, prompt, s.withOwnSession(opts)...)
	if err != nil {
		return nil, err
	}

	if result.SessionID != "" {
		s.sessionID = result.SessionID
	}

	s.history = append(s.history, Turn{Prompt: prompt, Result: result})

	return result, nil
}

// SendStream starts a streaming exchange inside the conversation. The
// exchange is not recorded until the drained stream is handed to
// FinalizeStream.
func (s *Session) SendStream(ctx context.Context, prompt string, opts ...QueryOption) (*Stream, error) {
	return s.client.QueryStream(ctx, prompt, s.withOwnSession(opts)...)
}

// FinalizeStream absorbs a drained stream into the conversation. Session
// identifiers observed in the events update the conversation, and the
// last terminal event is synthesized into a Result carrying the full
// event log.
//
// The boolean is false when the stream produced no terminal event, as
// after an early cancel. Identifier updates stick even then; only the
// history entry is withheld.
func (s *Session) FinalizeStream(prompt string, stream *Stream) (*Result, bool) {
	events := stream.Collected()

	for _, ev := range events {
		if ev.SessionID != "" {
			s.sessionID = ev.SessionID
		}
	}

	outcome, ok := event.LastOutcome(events)
	if !ok {
		return nil, false
	}

	result := &Result{
		Success:   outcome.Kind == KindResultSuccess,
		Text:      outcome.Text,
		SessionID: s.sessionID,
		Events:    events,
	}

	s.history = append(s.history, Turn{Prompt: prompt, Result: result})

	return result, true
}

// SessionID returns the current conversation identifier, or "" before
// the agent has assigned one.
func (s *Session) SessionID() string {
	return s.sessionID
}

// History returns a copy of the recorded exchanges in order.
func (s *Session) History() []Turn {
	history := make([]Turn, len(s.history))
	copy(history, s.history)

	return history
}

// Reset forgets the identifier and history. The next Send starts a new
// conversation; the old one remains resumable via its identifier.
func (s *Session) Reset() {
	s.sessionID = ""
	s.history = nil
}

// withOwnSession appends the conversation's identifier after the
// caller's options so it wins over a stray WithSession.
func (s *Session) withOwnSession(opts []QueryOption) []QueryOption {
	merged := make([]QueryOption, 0, len(opts)+1)
	merged = append(merged, opts...)
	merged = append(merged, WithSession(s.sessionID))

	return merged
}
