package mcp

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Server is a tool registry that can be served to Model Context Protocol
// hosts or invoked programmatically.
//
// The official SDK's server is transport-bound, so the registry is kept
// separately: CallTool and ListTools work without any transport, which is
// what in-process hosts and tests use, while Build assembles a servable
// SDK server from the same registration.
type Server struct {
	name    string
	version string

	mu    sync.RWMutex
	order []string
	tools map[string]*registeredTool
}

// registeredTool pairs a tool definition with its handler.
type registeredTool struct {
	tool    *mcp.Tool
	handler mcp.ToolHandler
}

// NewServer creates an empty tool registry.
func NewServer(name, version string) *Server {
	return &Server{
		name:    name,
		version: version,
		tools:   make(map[string]*registeredTool, 8),
	}
}

// AddTool registers a tool. Re-registering a name replaces the previous
// tool but keeps its position.
func (s *Server) AddTool(tool *mcp.Tool, handler mcp.ToolHandler) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.tools[tool.Name]; !exists {
		s.order = append(s.order, tool.Name)
	}

	s.tools[tool.Name] = &registeredTool{
		tool:    tool,
		handler: handler,
	}
}

// Name returns the server name.
func (s *Server) Name() string {
	return s.name
}

// Version returns the server version.
func (s *Server) Version() string {
	return s.version
}

// ListTools returns the registered tool definitions in registration order.
func (s *Server) ListTools() []*mcp.Tool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*mcp.Tool, 0, len(s.tools))
	for _, name := range s.order {
		result = append(result, s.tools[name].tool)
	}

	return result
}

// CallTool executes a registered tool by name. Failures are encoded in
// the result rather than the error return, so hosts receive them as tool
// output instead of protocol faults.
func (s *Server) CallTool(ctx context.Context, name string, input map[string]any) (*mcp.CallToolResult, error) {
	s.mu.RLock()
	t, exists := s.tools[name]
	s.mu.RUnlock()

	if !exists {
		return ErrorResult("tool not found: " + name), nil
	}

	inputBytes, err := json.Marshal(input)
	if err != nil {
		return ErrorResult("failed to marshal input: " + err.Error()), nil
	}

	req := &mcp.CallToolRequest{
		Params: &mcp.CallToolParamsRaw{
			Name:      name,
			Arguments: inputBytes,
		},
	}

	result, err := t.handler(ctx, req)
	if err != nil {
		return ErrorResult("tool execution failed: " + err.Error()), nil
	}

	return result, nil
}

// Build assembles an SDK server carrying every registered tool. The
// returned server can be connected to any SDK transport.
func (s *Server) Build() *mcp.Server {
	srv := mcp.NewServer(&mcp.Implementation{Name: s.name, Version: s.version}, nil)

	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, name := range s.order {
		t := s.tools[name]
		srv.AddTool(t.tool, t.handler)
	}

	return srv
}

// Run serves the registry over stdio until ctx is cancelled or the host
// disconnects. Registrations after Run is called are not picked up.
func (s *Server) Run(ctx context.Context) error {
	return s.Build().Run(ctx, &mcp.StdioTransport{})
}
