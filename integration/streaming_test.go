//go:build integration

package integration

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	cursoragent "github.com/yidong72/cursor-agent-sdk-go"
)

// TestStreamingIntegration drains one real stream and folds its text.
func TestStreamingIntegration(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	client := cursoragent.New()

	stream, err := client.QueryStream(ctx, "Say hello in exactly three words.")
	if err != nil {
		skipIfAgentNotInstalled(t, err)
		t.Fatalf("QueryStream failed: %v", err)
	}
	defer stream.Close()

	counts := map[cursoragent.Kind]int{}
	for ev := range stream.Events() {
		counts[ev.Kind]++
	}

	text := cursoragent.CollectText(stream.Collected(), false)
	t.Logf("Collected %d events (%v), text=%q", len(stream.Collected()), counts, text)

	require.NotEmpty(t, stream.Collected())
	require.NotEmpty(t, text)

	code, reaped := stream.ExitCode()
	require.True(t, reaped)
	require.Zero(t, code)
}

// TestStreamingCancellationIntegration interrupts a stream mid-flight.
func TestStreamingCancellationIntegration(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	client := cursoragent.New()

	stream, err := client.QueryStream(ctx, "Write a very long story about a lighthouse keeper.")
	if err != nil {
		skipIfAgentNotInstalled(t, err)
		t.Fatalf("QueryStream failed: %v", err)
	}
	defer stream.Close()

	seen := 0
	for range stream.Events() {
		seen++
		if seen == 1 {
			stream.Cancel(nil)

			break
		}
	}

	require.True(t, stream.Cancelled())

	_, reaped := stream.ExitCode()
	require.True(t, reaped, "cancel should block until the process is reaped")

	t.Logf("Cancelled after %d events", seen)
}
