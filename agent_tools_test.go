package cursoragent

import (
	"context"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/require"

	"github.com/yidong72/cursor-agent-sdk-go/internal/config"
)

// toolText extracts the single text block of a tool result.
func toolText(t *testing.T, result *CallToolResult) string {
	t.Helper()

	require.Len(t, result.Content, 1)
	text, ok := result.Content[0].(*mcp.TextContent)
	require.True(t, ok)

	return text.Text
}

func TestAgentTools_Definitions(t *testing.T) {
	server := CreateMCPServer("cursor", "1.0.0",
		AgentTools(New(WithRunner(newFakeRunner(nil))))...)

	tools := server.ListTools()
	require.Len(t, tools, 4)

	var names []string
	for _, tool := range tools {
		names = append(names, tool.Name)
	}
	require.Equal(t, []string{
		"cursor_query",
		"cursor_query_stream",
		"cursor_list_models",
		"cursor_create_session",
	}, names)

	require.Equal(t, []string{"prompt"}, tools[0].InputSchema.(*Schema).Required)
	require.Equal(t, []string{"prompt"}, tools[1].InputSchema.(*Schema).Required)

	require.NotNil(t, tools[2].Annotations)
	require.True(t, tools[2].Annotations.ReadOnlyHint)
}

func TestAgentTools_QueryTool(t *testing.T) {
	t.Run("returns the agent answer", func(t *testing.T) {
		runner := newFakeRunner(respondStdout(successPayload("4", "sess-1")))
		server := CreateMCPServer("cursor", "1.0.0", AgentTools(New(WithRunner(runner)))...)

		result, err := server.CallTool(context.Background(), "cursor_query",
			map[string]any{"prompt": "What is 2+2?"})

		require.NoError(t, err)
		require.False(t, result.IsError)
		require.Equal(t, "4", toolText(t, result))
		require.Equal(t, "What is 2+2?", runner.call(0).input)
	})

	t.Run("session and mode arguments become flags", func(t *testing.T) {
		runner := newFakeRunner(respondStdout(successPayload("ok", "sess-1")))
		server := CreateMCPServer("cursor", "1.0.0", AgentTools(New(WithRunner(runner)))...)

		_, err := server.CallTool(context.Background(), "cursor_query",
			map[string]any{"prompt": "continue", "session_id": "sess-1", "mode": "plan"})

		require.NoError(t, err)
		require.Contains(t, runner.call(0).args, "--resume")
		require.Contains(t, runner.call(0).args, "sess-1")
		require.Contains(t, runner.call(0).args, "--mode")
		require.Contains(t, runner.call(0).args, "plan")
	})

	t.Run("missing prompt is an error result", func(t *testing.T) {
		runner := newFakeRunner(nil)
		server := CreateMCPServer("cursor", "1.0.0", AgentTools(New(WithRunner(runner)))...)

		result, err := server.CallTool(context.Background(), "cursor_query", map[string]any{})

		require.NoError(t, err)
		require.True(t, result.IsError)
		require.Equal(t, "prompt is required", toolText(t, result))
		require.Zero(t, runner.callCount(), "the agent must not be invoked without a prompt")
	})

	t.Run("agent failure becomes an error result", func(t *testing.T) {
		runner := newFakeRunner(func(_ context.Context, _ []string, _ string) (*config.RunResult, error) {
			return &config.RunResult{Stderr: "agent blew up", ExitCode: 1}, nil
		})
		server := CreateMCPServer("cursor", "1.0.0", AgentTools(New(WithRunner(runner)))...)

		result, err := server.CallTool(context.Background(), "cursor_query",
			map[string]any{"prompt": "hello"})

		require.NoError(t, err)
		require.True(t, result.IsError)
		require.Equal(t, "agent blew up", toolText(t, result))
	})
}

func TestAgentTools_QueryStreamTool(t *testing.T) {
	t.Run("returns collected text", func(t *testing.T) {
		client := scriptClient(t, `#!/bin/sh
echo '{"type":"thinking","subtype":"delta","timestamp_ms":1,"text":"Hmm"}'
echo '{"type":"assistant","timestamp_ms":2,"text":"Hi"}'
echo '{"type":"result","subtype":"success","result":"Hi"}'
`)
		server := CreateMCPServer("cursor", "1.0.0", AgentTools(client)...)

		result, err := server.CallTool(context.Background(), "cursor_query_stream",
			map[string]any{"prompt": "greet"})

		require.NoError(t, err)
		require.False(t, result.IsError)
		require.Equal(t, "Hi", toolText(t, result))
	})

	t.Run("include_thinking interleaves reasoning", func(t *testing.T) {
		client := scriptClient(t, `#!/bin/sh
echo '{"type":"thinking","subtype":"delta","timestamp_ms":1,"text":"Hmm"}'
echo '{"type":"assistant","timestamp_ms":2,"text":"Hi"}'
echo '{"type":"result","subtype":"success","result":"Hi"}'
`)
		server := CreateMCPServer("cursor", "1.0.0", AgentTools(client)...)

		result, err := server.CallTool(context.Background(), "cursor_query_stream",
			map[string]any{"prompt": "greet", "include_thinking": true})

		require.NoError(t, err)
		require.Equal(t, "[thinking: Hmm]Hi", toolText(t, result))
	})

	t.Run("error outcome becomes an error result", func(t *testing.T) {
		client := scriptClient(t, `#!/bin/sh
echo '{"type":"assistant","timestamp_ms":1,"text":"partial"}'
echo '{"type":"result","subtype":"error","result":"quota exhausted"}'
`)
		server := CreateMCPServer("cursor", "1.0.0", AgentTools(client)...)

		result, err := server.CallTool(context.Background(), "cursor_query_stream",
			map[string]any{"prompt": "hello"})

		require.NoError(t, err)
		require.True(t, result.IsError)
		require.Equal(t, "quota exhausted", toolText(t, result))
	})

	t.Run("error outcome without text gets a fallback message", func(t *testing.T) {
		client := scriptClient(t, `#!/bin/sh
echo '{"type":"result","subtype":"error","is_error":true}'
`)
		server := CreateMCPServer("cursor", "1.0.0", AgentTools(client)...)

		result, err := server.CallTool(context.Background(), "cursor_query_stream",
			map[string]any{"prompt": "hello"})

		require.NoError(t, err)
		require.True(t, result.IsError)
		require.Equal(t, "agent run failed", toolText(t, result))
	})

	t.Run("missing prompt is an error result", func(t *testing.T) {
		server := CreateMCPServer("cursor", "1.0.0",
			AgentTools(New(WithRunner(newFakeRunner(nil))))...)

		result, err := server.CallTool(context.Background(), "cursor_query_stream", map[string]any{})

		require.NoError(t, err)
		require.True(t, result.IsError)
		require.Equal(t, "prompt is required", toolText(t, result))
	})
}

func TestAgentTools_ListModelsTool(t *testing.T) {
	runner := newFakeRunner(respondStdout("gpt-5\nsonnet-4.5\nopus-4.1\n"))
	server := CreateMCPServer("cursor", "1.0.0", AgentTools(New(WithRunner(runner)))...)

	result, err := server.CallTool(context.Background(), "cursor_list_models", map[string]any{})

	require.NoError(t, err)
	require.False(t, result.IsError)
	require.Equal(t, "gpt-5\nsonnet-4.5\nopus-4.1", toolText(t, result))
}

func TestAgentTools_CreateSessionTool(t *testing.T) {
	runner := newFakeRunner(respondStdout(" sess-42 \n"))
	server := CreateMCPServer("cursor", "1.0.0", AgentTools(New(WithRunner(runner)))...)

	result, err := server.CallTool(context.Background(), "cursor_create_session", map[string]any{})

	require.NoError(t, err)
	require.False(t, result.IsError)
	require.Equal(t, "sess-42", toolText(t, result))
}

func TestAgentTools_NilClientGetsDefaults(t *testing.T) {
	tools := AgentTools(nil)

	require.Len(t, tools, 4)
	for _, tool := range tools {
		require.NotNil(t, tool.ToolHandler)
	}
}
