package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Server serves benchmark tools over MCP.
type Server struct {
	log    *slog.Logger
	server *mcp.Server
	mu     sync.RWMutex
	tools  map[string]*tool
}

// tool holds tool metadata and handler for the local registry.
type tool struct {
	tool    *mcp.Tool
	handler mcp.ToolHandler
}

// New creates an MCP server with the given implementation name and version.
func New(log *slog.Logger, name, version string) *Server {
	return &Server{
		log:    log.With("component", "mcp_server"),
		server: mcp.NewServer(&mcp.Implementation{Name: name, Version: version}, nil),
		tools:  make(map[string]*tool, 4),
	}
}

// AddTool registers a tool with the SDK server and the local registry.
func (s *Server) AddTool(t *mcp.Tool, handler mcp.ToolHandler) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tools[t.Name] = &tool{tool: t, handler: handler}
	s.server.AddTool(t, handler)

	s.log.Debug("Registered tool", "tool", t.Name)
}

// ToolNames returns the names of all registered tools, sorted.
func (s *Server) ToolNames() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.tools))
	for name := range s.tools {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}

// CallTool executes a registered tool in-process.
//
// Unknown tools and handler failures are reported as error results rather
// than Go errors, the way an MCP client would see them.
func (s *Server) CallTool(ctx context.Context, name string, input map[string]any) (*mcp.CallToolResult, error) {
	s.mu.RLock()
	t, exists := s.tools[name]
	s.mu.RUnlock()

	if !exists {
		return ErrorResult("Tool not found: " + name), nil
	}

	inputBytes, err := json.Marshal(input)
	if err != nil {
		return nil, fmt.Errorf("marshal tool input: %w", err)
	}

	req := &mcp.CallToolRequest{
		Params: &mcp.CallToolParamsRaw{
			Name:      name,
			Arguments: inputBytes,
		},
	}

	result, err := t.handler(ctx, req)
	if err != nil {
		//nolint:nilerr // Intentionally return nil error - error is encoded in the result
		return ErrorResult("Tool execution failed: " + err.Error()), nil
	}

	return result, nil
}

// Connect serves a single session over transport without blocking.
func (s *Server) Connect(ctx context.Context, transport mcp.Transport) (*mcp.ServerSession, error) {
	return s.server.Connect(ctx, transport, nil)
}

// Run serves over transport until the client disconnects or ctx is done.
func (s *Server) Run(ctx context.Context, transport mcp.Transport) error {
	s.log.Info("Serving MCP", "tools", s.ToolNames())

	return s.server.Run(ctx, transport)
}
