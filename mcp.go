package cursoragent

import (
	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	internalmcp "github.com/yidong72/cursor-agent-sdk-go/internal/mcp"
)

// Re-export MCP SDK types for public API.
// These are the official MCP protocol types.
type (
	// CallToolResult is a tool's response. Use TextResult, ErrorResult,
	// or ImageResult helpers to create results.
	CallToolResult = mcp.CallToolResult

	// CallToolRequest is the request passed to tool handlers.
	CallToolRequest = mcp.CallToolRequest

	// ToolHandler is the function signature for tool handlers.
	//
	// Use ParseArguments to extract input as map[string]any from the
	// request.
	ToolHandler = mcp.ToolHandler

	// ToolAnnotations describes optional hints about tool behavior,
	// such as ReadOnlyHint, DestructiveHint, IdempotentHint.
	ToolAnnotations = mcp.ToolAnnotations

	// Schema is a JSON Schema object for tool input validation.
	Schema = jsonschema.Schema

	// MCPServer is an in-process Model Context Protocol server.
	// Call CallTool/ListTools to drive it programmatically or Run to
	// serve it over stdio.
	MCPServer = internalmcp.Server
)

// Tool is a tool definition for CreateMCPServer.
type Tool struct {
	ToolName        string
	ToolDescription string
	ToolSchema      *jsonschema.Schema
	ToolHandler     ToolHandler
	ToolAnnotations *ToolAnnotations
}

// ToolOption configures a Tool during construction.
type ToolOption func(*Tool)

// WithToolAnnotations sets MCP tool annotations (hints about tool
// behavior such as read-only or destructive).
func WithToolAnnotations(annotations *ToolAnnotations) ToolOption {
	return func(t *Tool) {
		t.ToolAnnotations = annotations
	}
}

// NewTool creates a Tool.
//
// The inputSchema should be a *Schema. Use SimpleSchema for convenience
// or build a full Schema struct for optional properties.
//
// Example:
//
//	upper := cursoragent.NewTool("upper", "Uppercase text",
//	    cursoragent.SimpleSchema(map[string]string{"text": "string"}),
//	    func(ctx context.Context, req *cursoragent.CallToolRequest) (*cursoragent.CallToolResult, error) {
//	        args, _ := cursoragent.ParseArguments(req)
//	        text, _ := args["text"].(string)
//	        return cursoragent.TextResult(strings.ToUpper(text)), nil
//	    },
//	)
func NewTool(
	name, description string,
	inputSchema *jsonschema.Schema,
	handler ToolHandler,
	opts ...ToolOption,
) *Tool {
	t := &Tool{
		ToolName:        name,
		ToolDescription: description,
		ToolSchema:      inputSchema,
		ToolHandler:     handler,
	}

	for _, opt := range opts {
		opt(t)
	}

	return t
}

// CreateMCPServer creates an in-process MCP server carrying the given
// tools. The server runs inside your application; hand it to an MCP
// host with Run or drive it directly with CallTool.
//
// Combine custom tools with AgentTools to serve the agent alongside
// your own logic:
//
//	server := cursoragent.CreateMCPServer("cursor", "1.0.0",
//	    append(cursoragent.AgentTools(client), upper)...)
//
//	if err := server.Run(ctx); err != nil {
//	    log.Fatal(err)
//	}
func CreateMCPServer(name, version string, tools ...*Tool) *MCPServer {
	server := internalmcp.NewServer(name, version)

	for _, tool := range tools {
		mcpTool := internalmcp.NewTool(tool.ToolName, tool.ToolDescription, tool.ToolSchema)
		mcpTool.Annotations = tool.ToolAnnotations
		server.AddTool(mcpTool, tool.ToolHandler)
	}

	return server
}

// SimpleSchema creates a Schema from a simple type map.
//
// Input format: {"a": "float64", "b": "string"}
//
// Type mappings:
//   - "string"           → {"type": "string"}
//   - "int", "int64"     → {"type": "integer"}
//   - "float64", "float" → {"type": "number"}
//   - "bool"             → {"type": "boolean"}
//   - "[]string"         → {"type": "array", "items": {"type": "string"}}
//   - "any", "object"    → {"type": "object"}
//
// Every property becomes required.
func SimpleSchema(props map[string]string) *jsonschema.Schema {
	return internalmcp.SimpleSchema(props)
}

// TextResult creates a CallToolResult with text content.
func TextResult(text string) *mcp.CallToolResult {
	return internalmcp.TextResult(text)
}

// ErrorResult creates a CallToolResult indicating an error.
func ErrorResult(message string) *mcp.CallToolResult {
	return internalmcp.ErrorResult(message)
}

// ImageResult creates a CallToolResult with image content.
func ImageResult(data []byte, mimeType string) *mcp.CallToolResult {
	return internalmcp.ImageResult(data, mimeType)
}

// ParseArguments unmarshals CallToolRequest arguments into a map.
// This is a convenience function for extracting tool input.
func ParseArguments(req *mcp.CallToolRequest) (map[string]any, error) {
	return internalmcp.ParseArguments(req)
}
