package cursoragent

import (
	"fmt"
	"strings"
)

// CollectText folds an event log into the answer text.
//
// Incremental answer fragments are concatenated in arrival order. With
// includeThinking, reasoning fragments are interleaved as
// "[thinking: ...]" markers. When a run produced no fragments at all,
// for example with partial output disabled, the text of the terminal
// success event stands in for them.
//
// Typical use is over Stream.Collected after draining, or over
// Result.Events from a finalized conversation exchange.
func CollectText(events []Event, includeThinking bool) string {
	var parts strings.Builder
	for _, ev := range events {
		switch {
		case ev.Kind == KindAssistantDelta && ev.Text != "":
			parts.WriteString(ev.Text)
		case ev.Kind == KindThinkingDelta && includeThinking && ev.Text != "":
			fmt.Fprintf(&parts, "[thinking: %s]", ev.Text)
		case ev.Kind == KindResultSuccess && parts.Len() == 0 && ev.Text != "":
			return ev.Text
		}
	}

	return parts.String()
}
