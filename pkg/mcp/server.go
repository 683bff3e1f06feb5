// Package mcp exposes the scan engine over the Model Context Protocol so
// editor agents can query a project's design tokens and components.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/driftlens/driftlens/pkg/scan"
)

// Server wraps an MCP stdio server around a scan engine.
type Server struct {
	engine *scan.Engine
	mcp    *server.MCPServer
	log    *slog.Logger
}

// NewServer builds the server and registers the scan tools.
func NewServer(engine *scan.Engine, version string, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	s := &Server{
		engine: engine,
		log:    log,
		mcp: server.NewMCPServer(
			"driftlens",
			version,
			server.WithToolCapabilities(true),
		),
	}
	s.registerTools()
	return s
}

// Serve blocks, handling MCP requests over stdin/stdout.
func (s *Server) Serve() error {
	s.log.Info("serving MCP over stdio")
	return server.ServeStdio(s.mcp)
}

func (s *Server) registerTools() {
	s.mcp.AddTool(scanTokensTool(), s.scanTokensHandler())
	s.mcp.AddTool(scanComponentsTool(), s.scanComponentsHandler())
	s.mcp.AddTool(listSignalsTool(), s.listSignalsHandler())
}

func scanTokensTool() mcp.Tool {
	return mcp.NewTool("scan_tokens",
		mcp.WithDescription("Extract design tokens (colors, spacing, typography, ...) from CSS, SCSS, JSON, and TS/JS sources under a project root."),
		mcp.WithString("project_root",
			mcp.Required(),
			mcp.Description("Absolute path of the project to scan."),
		),
		mcp.WithString("css_variable_prefix",
			mcp.Description("Only keep CSS/SCSS variables whose name starts with this prefix (compared without leading -- or $)."),
		),
	)
}

func (s *Server) scanTokensHandler() server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cfg := scan.Config{
			ProjectRoot:       req.GetString("project_root", ""),
			CSSVariablePrefix: req.GetString("css_variable_prefix", ""),
		}
		res, err := s.engine.ScanTokens(ctx, cfg)
		if err != nil {
			return toolError(err)
		}
		return jsonResult(res)
	}
}

func scanComponentsTool() mcp.Tool {
	return mcp.NewTool("scan_components",
		mcp.WithDescription("Detect web components (Lit, Stencil, FAST, vanilla, Haunted, Hybrids) and their props under a project root."),
		mcp.WithString("project_root",
			mcp.Required(),
			mcp.Description("Absolute path of the project to scan."),
		),
		mcp.WithString("framework",
			mcp.Description("Force a framework instead of per-file sniffing: lit, stencil, fast, haunted, or hybrids."),
		),
	)
}

func (s *Server) scanComponentsHandler() server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cfg := scan.Config{
			ProjectRoot: req.GetString("project_root", ""),
			Framework:   req.GetString("framework", ""),
		}
		res, err := s.engine.ScanComponents(ctx, cfg)
		if err != nil {
			return toolError(err)
		}
		return jsonResult(res)
	}
}

func listSignalsTool() mcp.Tool {
	return mcp.NewTool("list_signals",
		mcp.WithDescription("Run both scans and return only the drift signals (compact per-observation records for a downstream comparator)."),
		mcp.WithString("project_root",
			mcp.Required(),
			mcp.Description("Absolute path of the project to scan."),
		),
		mcp.WithString("type",
			mcp.Description("Filter to one signal type: token or component."),
		),
	)
}

func (s *Server) listSignalsHandler() server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cfg := scan.Config{ProjectRoot: req.GetString("project_root", "")}
		filter := req.GetString("type", "")

		tokens, err := s.engine.ScanTokens(ctx, cfg)
		if err != nil {
			return toolError(err)
		}
		comps, err := s.engine.ScanComponents(ctx, cfg)
		if err != nil {
			return toolError(err)
		}

		signals := append(tokens.Signals, comps.Signals...)
		if filter != "" {
			filtered := signals[:0:0]
			for _, sig := range signals {
				if sig.Type == filter {
					filtered = append(filtered, sig)
				}
			}
			signals = filtered
		}
		return jsonResult(signals)
	}
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return toolError(fmt.Errorf("encoding result: %w", err))
	}
	return mcp.NewToolResultText(string(raw)), nil
}

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}
