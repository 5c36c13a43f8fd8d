// Package models provides a catalog of models known to cursor-agent and a
// TTL cache for the list the agent itself reports. The static catalog is
// the source of truth for model metadata within the SDK; the live list
// from the agent may contain entries the catalog has never heard of.
package models

import (
	"slices"
	"strings"
)

// Capability represents a model capability such as vision or tool use.
type Capability string

const (
	// CapToolUse indicates the model can drive agent tools.
	CapToolUse Capability = "tool-use"
	// CapVision indicates the model supports image inputs.
	CapVision Capability = "vision"
	// CapThinking indicates the model emits reasoning events before
	// answering.
	CapThinking Capability = "thinking"
)

// Provider identifies which vendor serves a model.
type Provider string

const (
	// ProviderCursor covers Cursor's own models and the auto router.
	ProviderCursor Provider = "cursor"
	// ProviderOpenAI covers the GPT family.
	ProviderOpenAI Provider = "openai"
	// ProviderAnthropic covers the Claude family.
	ProviderAnthropic Provider = "anthropic"
	// ProviderXAI covers the Grok family.
	ProviderXAI Provider = "xai"
)

// Model holds metadata for a single model the agent can run with.
type Model struct {
	// ID is the identifier passed to --model (e.g. "sonnet-4.5").
	ID string
	// Name is the human-readable display name.
	Name string
	// Aliases are shorthand names the agent also accepts (e.g. "sonnet").
	Aliases []string
	// Provider is the vendor serving this model.
	Provider Provider
	// Capabilities lists what the model supports.
	Capabilities []Capability
	// ContextWindow is the context window size in tokens.
	ContextWindow int
}

// HasCapability reports whether the model supports the given capability.
func (m Model) HasCapability(capability Capability) bool {
	return slices.Contains(m.Capabilities, capability)
}

// CapabilityStrings returns capabilities as a string slice for interop
// with string-based systems.
func (m Model) CapabilityStrings() []string {
	out := make([]string, 0, len(m.Capabilities))
	for _, c := range m.Capabilities {
		out = append(out, string(c))
	}

	return out
}

// All returns a copy of every known model in the catalog.
func All() []Model {
	out := make([]Model, len(registry))
	copy(out, registry)

	return out
}

// ByID looks up a model by its identifier. It checks in order:
//  1. Exact match on ID
//  2. Alias match
//  3. Prefix match (for suffixed variants like "gpt-5-2026-03")
//
// Returns nil if no model is found.
func ByID(id string) *Model {
	for i := range registry {
		if registry[i].ID == id {
			m := registry[i]

			return &m
		}
	}

	for i := range registry {
		if slices.Contains(registry[i].Aliases, id) {
			m := registry[i]

			return &m
		}
	}

	for i := range registry {
		if strings.HasPrefix(id, registry[i].ID) {
			m := registry[i]

			return &m
		}
	}

	return nil
}

// ByProvider returns all models served by the given provider.
func ByProvider(provider Provider) []Model {
	var out []Model

	for _, m := range registry {
		if m.Provider == provider {
			out = append(out, m)
		}
	}

	return out
}

// Capabilities is a convenience function that returns capability strings
// for the given model ID. Returns nil if the model is not found.
func Capabilities(modelID string) []string {
	m := ByID(modelID)
	if m == nil {
		return nil
	}

	return m.CapabilityStrings()
}
