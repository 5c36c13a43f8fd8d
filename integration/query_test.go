//go:build integration

package integration

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	cursoragent "github.com/yidong72/cursor-agent-sdk-go"
)

// TestQueryIntegration runs one real query end to end.
func TestQueryIntegration(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	result, err := cursoragent.Query(ctx, "What is 2+2? Reply with just the number.")
	if err != nil {
		skipIfAgentNotInstalled(t, err)
		t.Fatalf("Query failed: %v", err)
	}

	t.Logf("Result: success=%v duration=%dms text=%q session=%s",
		result.Success, result.DurationMS, result.Text, result.SessionID)

	require.True(t, result.Success, "query should succeed: %s", result.ErrorMessage)
	require.True(t, contains4(result.Text), "answer should contain 4: %q", result.Text)
	require.NotEmpty(t, result.SessionID)
}

// TestQueryTimeoutIntegration checks that a deadline surfaces as a
// failure result rather than an error.
func TestQueryTimeoutIntegration(t *testing.T) {
	result, err := cursoragent.Query(context.Background(),
		"Count slowly from one to one million.",
		cursoragent.WithTimeout(50*time.Millisecond))
	if err != nil {
		skipIfAgentNotInstalled(t, err)
		t.Fatalf("Query failed: %v", err)
	}

	require.False(t, result.Success)
	require.Equal(t, cursoragent.ErrQueryTimeout.Error(), result.ErrorMessage)
}

// TestQueryInvalidBinaryIntegration checks the not-found error path
// without requiring an installed agent.
func TestQueryInvalidBinaryIntegration(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	client := cursoragent.New(
		cursoragent.WithBinaryPath(filepath.Join(t.TempDir(), "missing-agent")),
	)

	_, err := client.Query(ctx, "hello")

	var notFound *cursoragent.AgentNotFoundError
	require.ErrorAs(t, err, &notFound)
	require.NotEmpty(t, notFound.SearchedPaths)
}
