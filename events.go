package cursoragent

import "github.com/yidong72/cursor-agent-sdk-go/internal/event"

// Re-export event types from internal package

// Event is a single decoded line of agent output.
type Event = event.Event

// Kind classifies an event.
type Kind = event.Kind

// Result is the final outcome of a query.
type Result = event.Result

// Event kind constants.
const (
	// KindSystemInit is the banner event opening every agent run.
	KindSystemInit = event.KindSystemInit

	// KindUser echoes the prompt back.
	KindUser = event.KindUser

	// KindThinkingDelta is an incremental fragment of reasoning text.
	KindThinkingDelta = event.KindThinkingDelta

	// KindThinkingComplete closes a reasoning block.
	KindThinkingComplete = event.KindThinkingComplete

	// KindAssistant is the final form of an answer message.
	KindAssistant = event.KindAssistant

	// KindAssistantDelta is an incremental fragment of answer text.
	KindAssistantDelta = event.KindAssistantDelta

	// KindToolCallStarted marks the start of a tool invocation.
	KindToolCallStarted = event.KindToolCallStarted

	// KindToolCallCompleted marks the end of a tool invocation.
	KindToolCallCompleted = event.KindToolCallCompleted

	// KindResultSuccess is the terminal event of a successful run.
	KindResultSuccess = event.KindResultSuccess

	// KindResultError is the terminal event of a failed run.
	KindResultError = event.KindResultError

	// KindUnknown covers event shapes this package does not recognize.
	KindUnknown = event.KindUnknown
)
