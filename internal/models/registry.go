package models

// baseCapabilities is the set every agent-capable model supports.
var baseCapabilities = []Capability{
	CapToolUse,
	CapVision,
}

// thinkingCapabilities extends the base set for models that stream
// reasoning before answering.
var thinkingCapabilities = []Capability{
	CapToolUse,
	CapVision,
	CapThinking,
}

// registry is the internal list of all known models.
// Only the latest model per family gets the short alias.
var registry = []Model{
	{
		// Not a model of its own: the agent routes each request to
		// whatever it considers the best fit.
		ID:            "auto",
		Name:          "Auto",
		Provider:      ProviderCursor,
		Capabilities:  baseCapabilities,
		ContextWindow: 200_000,
	},
	{
		ID:            "composer-1",
		Name:          "Composer 1",
		Aliases:       []string{"composer"},
		Provider:      ProviderCursor,
		Capabilities:  baseCapabilities,
		ContextWindow: 200_000,
	},
	{
		ID:            "gpt-5",
		Name:          "GPT-5",
		Aliases:       []string{"gpt5"},
		Provider:      ProviderOpenAI,
		Capabilities:  thinkingCapabilities,
		ContextWindow: 272_000,
	},
	{
		ID:            "gpt-5-fast",
		Name:          "GPT-5 Fast",
		Provider:      ProviderOpenAI,
		Capabilities:  baseCapabilities,
		ContextWindow: 272_000,
	},
	{
		ID:            "gpt-5-codex",
		Name:          "GPT-5 Codex",
		Provider:      ProviderOpenAI,
		Capabilities:  thinkingCapabilities,
		ContextWindow: 272_000,
	},
	{
		ID:            "sonnet-4.5",
		Name:          "Claude Sonnet 4.5",
		Aliases:       []string{"sonnet"},
		Provider:      ProviderAnthropic,
		Capabilities:  baseCapabilities,
		ContextWindow: 200_000,
	},
	{
		ID:            "sonnet-4.5-thinking",
		Name:          "Claude Sonnet 4.5 Thinking",
		Provider:      ProviderAnthropic,
		Capabilities:  thinkingCapabilities,
		ContextWindow: 200_000,
	},
	{
		ID:            "opus-4.1",
		Name:          "Claude Opus 4.1",
		Aliases:       []string{"opus"},
		Provider:      ProviderAnthropic,
		Capabilities:  thinkingCapabilities,
		ContextWindow: 200_000,
	},
	{
		ID:            "haiku-4.5",
		Name:          "Claude Haiku 4.5",
		Aliases:       []string{"haiku"},
		Provider:      ProviderAnthropic,
		Capabilities:  baseCapabilities,
		ContextWindow: 200_000,
	},
	{
		ID:            "grok-4",
		Name:          "Grok 4",
		Aliases:       []string{"grok"},
		Provider:      ProviderXAI,
		Capabilities:  thinkingCapabilities,
		ContextWindow: 256_000,
	},
}
