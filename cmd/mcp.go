package cmd

import (
	"fmt"
	"time"

	"github.com/mj1618/uibridge/internal/observability"
	"github.com/mj1618/uibridge/internal/relay"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Expose a running uibridge server to MCP clients",
	Long: `Start a Model Context Protocol (MCP) server that relays to a running
uibridge server. Every command in the server's catalog becomes one tool
(dots become underscores, e.g. widget_click), plus a generic "uibridge" tool.

Supported transports:
  stdio             Standard I/O (default, for MCP clients)
  streamable-http   Streamable HTTP transport (for remote agents)

Examples:
  uibridge mcp
  uibridge mcp --transport streamable-http --port 8080
  uibridge mcp --catalog-ttl 0`,
	RunE: runMCP,
}

func init() {
	rootCmd.AddCommand(mcpCmd)
	mcpCmd.Flags().String("transport", "stdio", "Transport: stdio, streamable-http")
	mcpCmd.Flags().Int("port", 8080, "HTTP port for streamable-http transport")
	mcpCmd.Flags().Int("catalog-ttl", 30000, "Command catalog cache TTL in milliseconds (0 to disable)")
}

func runMCP(cmd *cobra.Command, args []string) error {
	transport, _ := cmd.Flags().GetString("transport")
	port, _ := cmd.Flags().GetInt("port")
	ttlMs, _ := cmd.Flags().GetInt("catalog-ttl")

	rcfg := relay.Config{
		Transport:  transport,
		Addr:       fmt.Sprintf(":%d", port),
		CatalogTTL: time.Duration(ttlMs) * time.Millisecond,
	}

	// stdout carries the protocol on stdio, so logs always go to stderr.
	logger := observability.NewStderrLogger(cfg.Logger)
	defer observability.Sync(logger)

	r := relay.New(newClient(), rcfg, logger)
	if err := r.Register(cmd.Context()); err != nil {
		return fmt.Errorf("failed to create MCP relay: %w", err)
	}
	return r.Serve(rcfg)
}
