//go:build integration

package integration

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	cursoragent "github.com/yidong72/cursor-agent-sdk-go"
)

// TestSessionContinuityIntegration carries one conversation across two
// real turns and checks the agent remembers the first.
func TestSessionContinuityIntegration(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 240*time.Second)
	defer cancel()

	session := cursoragent.NewSession(nil)

	first, err := session.Send(ctx, "My favorite number is 17. Reply with just OK.")
	if err != nil {
		skipIfAgentNotInstalled(t, err)
		t.Fatalf("Send failed: %v", err)
	}

	require.True(t, first.Success, "first turn failed: %s", first.ErrorMessage)
	require.NotEmpty(t, session.SessionID(), "first exchange should learn the session id")

	second, err := session.Send(ctx, "What is my favorite number? Reply with just the number.")
	require.NoError(t, err)
	require.True(t, second.Success, "second turn failed: %s", second.ErrorMessage)
	require.Contains(t, second.Text, "17")
	require.Len(t, session.History(), 2)
}

// TestCreateSessionIntegration creates a conversation ahead of time and
// resumes it.
func TestCreateSessionIntegration(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	client := cursoragent.New()

	sessionID, err := client.CreateSession(ctx)
	if err != nil {
		skipIfAgentNotInstalled(t, err)
		t.Fatalf("CreateSession failed: %v", err)
	}

	require.NotEmpty(t, sessionID)
	t.Logf("Created session %s", sessionID)

	session := cursoragent.ResumeSession(client, sessionID)
	result, err := session.Send(ctx, "Reply with just OK.")
	require.NoError(t, err)
	require.True(t, result.Success, result.ErrorMessage)
	require.Equal(t, sessionID, session.SessionID())
}
