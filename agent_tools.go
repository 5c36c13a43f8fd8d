package cursoragent

import (
	"context"
	"strings"
	"time"

	"github.com/google/jsonschema-go/jsonschema"

	"github.com/yidong72/cursor-agent-sdk-go/internal/event"
)

// AgentTools returns ready-made MCP tools that drive client, so any MCP
// host can run agent queries through CreateMCPServer.
//
// The tools are cursor_query, cursor_query_stream, cursor_list_models,
// and cursor_create_session. Agent-side failures surface as error
// results carrying the agent's message.
func AgentTools(client *Client) []*Tool {
	if client == nil {
		client = New()
	}

	return []*Tool{
		queryTool(client),
		queryStreamTool(client),
		listModelsTool(client),
		createSessionTool(client),
	}
}

func queryTool(client *Client) *Tool {
	schema := &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"prompt":      {Type: "string", Description: "The prompt to send to the agent"},
			"session_id":  {Type: "string", Description: "Resume an existing conversation"},
			"mode":        {Type: "string", Description: `Agent execution mode such as "plan" or "ask"`},
			"timeout_sec": {Type: "number", Description: "Deadline in seconds for this query"},
		},
		Required: []string{"prompt"},
	}

	handler := func(ctx context.Context, req *CallToolRequest) (*CallToolResult, error) {
		args, err := ParseArguments(req)
		if err != nil {
			return ErrorResult(err.Error()), nil
		}

		prompt, _ := args["prompt"].(string)
		if prompt == "" {
			return ErrorResult("prompt is required"), nil
		}

		result, err := client.Query(ctx, prompt, queryOptionsFromArgs(args)...)
		if err != nil {
			return ErrorResult(err.Error()), nil
		}
		if !result.Success {
			return ErrorResult(result.ErrorMessage), nil
		}

		return TextResult(result.Text), nil
	}

	return NewTool("cursor_query", "Run a single prompt through cursor-agent and return its answer",
		schema, handler)
}

func queryStreamTool(client *Client) *Tool {
	schema := &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"prompt":           {Type: "string", Description: "The prompt to send to the agent"},
			"session_id":       {Type: "string", Description: "Resume an existing conversation"},
			"include_thinking": {Type: "boolean", Description: "Interleave reasoning fragments in the collected text"},
		},
		Required: []string{"prompt"},
	}

	handler := func(ctx context.Context, req *CallToolRequest) (*CallToolResult, error) {
		args, err := ParseArguments(req)
		if err != nil {
			return ErrorResult(err.Error()), nil
		}

		prompt, _ := args["prompt"].(string)
		if prompt == "" {
			return ErrorResult("prompt is required"), nil
		}

		includeThinking, _ := args["include_thinking"].(bool)

		stream, err := client.QueryStream(ctx, prompt, queryOptionsFromArgs(args)...)
		if err != nil {
			return ErrorResult(err.Error()), nil
		}
		defer stream.Close()

		for range stream.Events() {
		}

		events := stream.Collected()
		if outcome, ok := event.LastOutcome(events); ok && outcome.Kind == KindResultError {
			message := outcome.Text
			if message == "" {
				message = "agent run failed"
			}

			return ErrorResult(message), nil
		}

		return TextResult(CollectText(events, includeThinking)), nil
	}

	return NewTool("cursor_query_stream", "Run a prompt through cursor-agent, draining the stream and returning the collected text",
		schema, handler)
}

func listModelsTool(client *Client) *Tool {
	schema := &jsonschema.Schema{Type: "object"}

	handler := func(ctx context.Context, req *CallToolRequest) (*CallToolResult, error) {
		models, err := client.ListModels(ctx)
		if err != nil {
			return ErrorResult(err.Error()), nil
		}

		return TextResult(strings.Join(models, "\n")), nil
	}

	return NewTool("cursor_list_models", "List the model identifiers the installed cursor-agent accepts",
		schema, handler,
		WithToolAnnotations(&ToolAnnotations{ReadOnlyHint: true}))
}

func createSessionTool(client *Client) *Tool {
	schema := &jsonschema.Schema{Type: "object"}

	handler := func(ctx context.Context, req *CallToolRequest) (*CallToolResult, error) {
		sessionID, err := client.CreateSession(ctx)
		if err != nil {
			return ErrorResult(err.Error()), nil
		}

		return TextResult(sessionID), nil
	}

	return NewTool("cursor_create_session", "Create a fresh cursor-agent conversation and return its session identifier",
		schema, handler)
}

// queryOptionsFromArgs maps shared tool arguments onto query options.
func queryOptionsFromArgs(args map[string]any) []QueryOption {
	var opts []QueryOption

	if sessionID, _ := args["session_id"].(string); sessionID != "" {
		opts = append(opts, WithSession(sessionID))
	}

	if mode, _ := args["mode"].(string); mode != "" {
		opts = append(opts, WithMode(Mode(mode)))
	}

	if sec, ok := args["timeout_sec"].(float64); ok && sec > 0 {
		opts = append(opts, WithTimeout(time.Duration(sec*float64(time.Second))))
	}

	return opts
}
