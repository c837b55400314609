package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/bekkevard/chatgpt-toggle/internal/config"
	"github.com/bekkevard/chatgpt-toggle/internal/focus"
	"github.com/bekkevard/chatgpt-toggle/internal/platform"
	"github.com/bekkevard/chatgpt-toggle/internal/version"
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"gopkg.in/yaml.v3"
)

// mcpServer wraps the MCP server with the platform provider.
type mcpServer struct {
	provider   *platform.Provider
	cfg        config.Config
	logger     *slog.Logger
	providerMu sync.Mutex
	mcp        *mcpserver.MCPServer
}

// MCPConfig holds MCP transport configuration.
type MCPConfig struct {
	Transport string
	Port      int
}

// newMCPServer creates and configures an MCP server with the toggle tools.
func newMCPServer(cfg config.Config, logger *slog.Logger) (*mcpServer, error) {
	provider, err := platform.NewProvider(cfg.Backend)
	if err != nil {
		return nil, err
	}

	s := &mcpServer{
		provider: provider,
		cfg:      cfg,
		logger:   logger,
	}
	s.mcp = mcpserver.NewMCPServer("chatgpt-toggle", version.Version)
	s.registerTools()
	return s, nil
}

// serve starts the MCP server with the configured transport.
func (s *mcpServer) serve(cfg MCPConfig) error {
	switch cfg.Transport {
	case "stdio":
		return mcpserver.ServeStdio(s.mcp)
	case "streamable-http":
		httpServer := mcpserver.NewStreamableHTTPServer(s.mcp)
		return httpServer.Start(fmt.Sprintf(":%d", cfg.Port))
	default:
		return fmt.Errorf("unsupported transport: %s (use stdio or streamable-http)", cfg.Transport)
	}
}

func (s *mcpServer) registerTools() {
	s.mcp.AddTool(
		mcp.NewTool("toggle",
			mcp.WithDescription("Toggle the target window: launch, raise, cycle to the next window, or hide, depending on current focus"),
		),
		s.handleToggle,
	)

	s.mcp.AddTool(
		mcp.NewTool("status",
			mcp.WithDescription("Report the target window's focus state and the action a toggle would take, without acting"),
		),
		s.handleStatus,
	)

	s.mcp.AddTool(
		mcp.NewTool("list",
			mcp.WithDescription("List an application's windows front to back"),
			mcp.WithString("app", mcp.Description("Application name (default: configured app)")),
			mcp.WithBoolean("on-screen", mcp.Description("Only list on-screen windows")),
		),
		s.handleList,
	)
}

func (s *mcpServer) toggler() *focus.Toggler {
	return focus.NewToggler(s.provider, s.cfg.FocusOptions(), s.logger)
}

// toolText serializes v to YAML for an MCP response.
func toolText(v interface{}) string {
	b, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	return string(b)
}

func (s *mcpServer) handleToggle(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.providerMu.Lock()
	defer s.providerMu.Unlock()

	ctx, cancel := withTimeout(ctx, s.cfg.Timeout)
	defer cancel()

	res := s.toggler().Toggle(ctx)
	if !res.OK {
		return mcp.NewToolResultError(toolText(res)), nil
	}
	return mcp.NewToolResultText(toolText(res)), nil
}

func (s *mcpServer) handleStatus(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.providerMu.Lock()
	defer s.providerMu.Unlock()

	ctx, cancel := withTimeout(ctx, s.cfg.Timeout)
	defer cancel()

	action, obs, err := s.toggler().Plan(ctx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(toolText(StatusResult{
		Backend:  s.provider.Name,
		Observed: obs,
		Action:   action,
	})), nil
}

func (s *mcpServer) handleList(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	appName := request.GetString("app", s.cfg.App)
	onScreen := request.GetBool("on-screen", false)

	s.providerMu.Lock()
	defer s.providerMu.Unlock()

	if s.provider.Lister == nil {
		return mcp.NewToolResultError("window listing not available on this platform"), nil
	}

	ctx, cancel := withTimeout(ctx, s.cfg.Timeout)
	defer cancel()
	windows, err := s.provider.Lister.ListWindows(ctx, platform.ListOptions{App: appName, OnScreenOnly: onScreen})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(toolText(windows)), nil
}
