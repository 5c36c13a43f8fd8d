//go:build integration

package integration

import (
	"errors"
	"strings"
	"testing"

	cursoragent "github.com/yidong72/cursor-agent-sdk-go"
)

// skipIfAgentNotInstalled skips the test when err says the cursor-agent
// binary is missing, so the suite degrades to a no-op on machines
// without it.
func skipIfAgentNotInstalled(t *testing.T, err error) {
	t.Helper()

	if _, ok := errors.AsType[*cursoragent.AgentNotFoundError](err); ok {
		t.Skip("cursor-agent not installed")
	}
}

// contains4 checks whether an answer contains "4" in some spelling.
func contains4(s string) bool {
	lower := strings.ToLower(s)

	return strings.Contains(lower, "4") || strings.Contains(lower, "four")
}
