package event

import (
	"encoding/json"
	"strings"
)

// Decode classifies one raw line of agent output.
//
// Blank lines and lines that do not decode to a JSON object yield
// (Event{}, false). The agent can interleave noise with its event stream,
// so a bad line is skipped rather than treated as fatal. Classification is
// a pure function of the line: the same input always yields the same Event.
func Decode(line string) (Event, bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return Event{}, false
	}

	var payload map[string]any
	if err := json.Unmarshal([]byte(trimmed), &payload); err != nil || payload == nil {
		return Event{}, false
	}

	rawKind := "unknown"
	if s, ok := payload["type"].(string); ok {
		rawKind = s
	}
	subKind, _ := payload["subtype"].(string)

	tsRaw, hasTimestamp := payload["timestamp_ms"]
	var timestampMS int64
	if f, ok := tsRaw.(float64); ok {
		timestampMS = int64(f)
	}

	kind := KindUnknown
	switch {
	case rawKind == "system" && subKind == "init":
		kind = KindSystemInit
	case rawKind == "user":
		kind = KindUser
	case rawKind == "thinking" && subKind == "delta":
		kind = KindThinkingDelta
	case rawKind == "thinking":
		kind = KindThinkingComplete
	case rawKind == "assistant" && hasTimestamp:
		// Streamed partial assistant messages carry timestamp_ms; the
		// final consolidated message does not.
		kind = KindAssistantDelta
	case rawKind == "assistant":
		kind = KindAssistant
	case rawKind == "result" && subKind == "success":
		kind = KindResultSuccess
	case rawKind == "result":
		kind = KindResultError
	case rawKind == "tool-call-started":
		kind = KindToolCallStarted
	case rawKind == "tool-call-completed":
		kind = KindToolCallCompleted
	}

	sessionID, _ := payload["session_id"].(string)

	return Event{
		Kind:         kind,
		RawKind:      rawKind,
		SubKind:      subKind,
		Payload:      payload,
		Text:         displayText(payload),
		SessionID:    sessionID,
		TimestampMS:  timestampMS,
		HasTimestamp: hasTimestamp,
	}, true
}

// displayText extracts the human-readable text of a payload. Priority:
// top-level "text", then top-level "result", then the first
// message.content block whose type is "text". Presence of an earlier key
// wins even when its value is empty.
func displayText(payload map[string]any) string {
	if raw, ok := payload["text"]; ok {
		s, _ := raw.(string)
		return s
	}
	if raw, ok := payload["result"]; ok {
		s, _ := raw.(string)
		return s
	}
	message, ok := payload["message"].(map[string]any)
	if !ok {
		return ""
	}
	content, ok := message["content"].([]any)
	if !ok {
		return ""
	}
	for _, item := range content {
		block, ok := item.(map[string]any)
		if !ok {
			continue
		}
		if block["type"] != "text" {
			continue
		}
		text, _ := block["text"].(string)
		return text
	}
	return ""
}

// DecodeResult decodes the single JSON object a full-output invocation
// prints on stdout. The caller is responsible for wrapping undecodable
// output into a failure Result so the raw text is preserved.
func DecodeResult(output string) (Result, error) {
	var payload map[string]any
	if err := json.Unmarshal([]byte(strings.TrimSpace(output)), &payload); err != nil {
		return Result{}, err
	}

	subKind, _ := payload["subtype"].(string)
	text, _ := payload["result"].(string)
	sessionID, _ := payload["session_id"].(string)
	requestID, _ := payload["request_id"].(string)

	res := Result{
		Success:       subKind == "success",
		Text:          text,
		SessionID:     sessionID,
		RequestID:     requestID,
		DurationMS:    int64Field(payload, "duration_ms"),
		DurationAPIMS: int64Field(payload, "duration_api_ms"),
	}
	if isErr, _ := payload["is_error"].(bool); isErr {
		res.ErrorMessage, _ = payload["error"].(string)
	}
	return res, nil
}

// LastOutcome returns the last terminal event in events, scanning
// backwards so a retried run reports its final outcome.
func LastOutcome(events []Event) (Event, bool) {
	for i := len(events) - 1; i >= 0; i-- {
		if events[i].IsTerminal() {
			return events[i], true
		}
	}
	return Event{}, false
}

func int64Field(payload map[string]any, key string) int64 {
	if f, ok := payload[key].(float64); ok {
		return int64(f)
	}
	return 0
}
