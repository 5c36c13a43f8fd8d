package cursoragent

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCollectText_JoinsAnswerDeltas(t *testing.T) {
	events := []Event{
		{Kind: KindSystemInit},
		{Kind: KindAssistantDelta, Text: "Hel"},
		{Kind: KindAssistantDelta, Text: "lo"},
		{Kind: KindAssistantDelta, Text: ""},
		{Kind: KindResultSuccess, Text: "Hello"},
	}

	require.Equal(t, "Hello", CollectText(events, false))
}

func TestCollectText_ThinkingInterleaved(t *testing.T) {
	events := []Event{
		{Kind: KindThinkingDelta, Text: "Hmm"},
		{Kind: KindAssistantDelta, Text: "Hi"},
	}

	require.Equal(t, "[thinking: Hmm]Hi", CollectText(events, true))
	require.Equal(t, "Hi", CollectText(events, false))
}

func TestCollectText_FallsBackToResultText(t *testing.T) {
	// A run with partial output disabled has no deltas at all; the
	// terminal success text stands in.
	events := []Event{
		{Kind: KindSystemInit},
		{Kind: KindAssistant, Text: "The answer is 4."},
		{Kind: KindResultSuccess, Text: "The answer is 4."},
	}

	require.Equal(t, "The answer is 4.", CollectText(events, false))
}

func TestCollectText_DeltasWinOverResultText(t *testing.T) {
	events := []Event{
		{Kind: KindAssistantDelta, Text: "streamed"},
		{Kind: KindResultSuccess, Text: "finalized"},
	}

	require.Equal(t, "streamed", CollectText(events, false))
}

func TestCollectText_EmptyInputs(t *testing.T) {
	require.Empty(t, CollectText(nil, true))
	require.Empty(t, CollectText([]Event{{Kind: KindResultError, Text: "boom"}}, true))
}
