package config

import "strings"

// Mode selects how the agent approaches a prompt.
type Mode string

const (
	// ModePlan makes the agent produce an implementation plan without
	// executing it.
	ModePlan Mode = "plan"
	// ModeAsk restricts the agent to answering questions about the
	// workspace without making changes.
	ModeAsk Mode = "ask"
)

// NormalizeMode canonicalizes a user-supplied mode to its CLI value:
// surrounding whitespace is dropped and known modes are lowercased, so
// "Plan" and " ASK " select plan and ask. Unknown modes pass through
// trimmed, letting newer agent versions accept modes this package does
// not know about.
func NormalizeMode(mode string) string {
	trimmed := strings.TrimSpace(mode)

	switch lower := strings.ToLower(trimmed); Mode(lower) {
	case ModePlan, ModeAsk:
		return lower
	}

	return trimmed
}
