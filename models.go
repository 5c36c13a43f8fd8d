package cursoragent

import "github.com/yidong72/cursor-agent-sdk-go/internal/models"

// Re-export model types from internal/models.
//
// The catalog is a static snapshot of the models the agent commonly
// serves; ListModels asks the installed binary for the live list.

// Model holds metadata for a single agent model.
type Model = models.Model

// ModelCapability represents a model capability such as vision or tool use.
type ModelCapability = models.Capability

// ModelProvider identifies which vendor serves a model.
type ModelProvider = models.Provider

// Model capability constants.
const (
	// ModelCapToolUse indicates the model can drive agent tools.
	ModelCapToolUse = models.CapToolUse
	// ModelCapVision indicates the model supports image inputs.
	ModelCapVision = models.CapVision
	// ModelCapThinking indicates the model emits reasoning events.
	ModelCapThinking = models.CapThinking
)

// Model provider constants.
const (
	// ModelProviderCursor covers Cursor's own models and the auto router.
	ModelProviderCursor = models.ProviderCursor
	// ModelProviderOpenAI covers the GPT family.
	ModelProviderOpenAI = models.ProviderOpenAI
	// ModelProviderAnthropic covers the Claude family.
	ModelProviderAnthropic = models.ProviderAnthropic
	// ModelProviderXAI covers the Grok family.
	ModelProviderXAI = models.ProviderXAI
)

// Models returns a copy of the known model catalog.
func Models() []Model {
	return models.All()
}

// ModelByID looks up a model by ID, alias, or versioned prefix.
// Returns nil if no model is found.
func ModelByID(id string) *Model {
	return models.ByID(id)
}

// ModelsByProvider returns all catalog models served by the given vendor.
func ModelsByProvider(provider ModelProvider) []Model {
	return models.ByProvider(provider)
}

// ModelCapabilities returns capability strings for the given model ID.
// Returns nil if the model is not found.
func ModelCapabilities(modelID string) []string {
	return models.Capabilities(modelID)
}
