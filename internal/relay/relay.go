// Package relay exposes a uibridge server to MCP clients. Each catalog
// command becomes one tool; calls are forwarded over HTTP unchanged.
package relay

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/mj1618/uibridge/internal/command"
	"github.com/mj1618/uibridge/internal/dispatch"
	"github.com/mj1618/uibridge/internal/output"
	"github.com/mj1618/uibridge/internal/version"
	"go.uber.org/zap"
)

// GenericTool accepts any {command, params} pair, including help.
const GenericTool = "uibridge"

// Caller forwards commands to the server.
type Caller interface {
	Call(ctx context.Context, name string, params command.Params) (command.Result, error)
	Help(ctx context.Context) (map[string]any, error)
}

// Config holds relay configuration.
type Config struct {
	Transport string
	Addr      string
	// CatalogTTL is how long the help document is reused. 0 disables caching.
	CatalogTTL time.Duration
}

type Relay struct {
	caller Caller
	cache  *catalogCache
	logger *zap.Logger
	mcp    *mcpserver.MCPServer
	tools  []string
}

func New(caller Caller, cfg Config, logger *zap.Logger) *Relay {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Relay{
		caller: caller,
		cache:  newCatalogCache(cfg.CatalogTTL),
		logger: logger.Named("relay"),
		mcp:    mcpserver.NewMCPServer("uibridge", version.Version),
	}
}

// ToolName maps a command name onto the MCP tool name charset.
func ToolName(commandName string) string {
	return strings.ReplaceAll(commandName, ".", "_")
}

// Register fetches the catalog and adds one tool per command plus the
// generic tool.
func (r *Relay) Register(ctx context.Context) error {
	catalog, err := r.catalog(ctx)
	if err != nil {
		return fmt.Errorf("fetching command catalog: %w", err)
	}

	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		entry, _ := catalog[name].(map[string]any)
		r.addTool(toolFor(name, entry), r.forward(name))
	}

	r.addTool(mcp.NewTool(GenericTool,
		mcp.WithDescription("Run any uibridge command. Use {command: 'category.action', params: {...}}; command 'help' returns the full reference."),
		mcp.WithString("command", mcp.Description("Command name, e.g. widget.click or help"), mcp.Required()),
		mcp.WithObject("params", mcp.Description("Command parameters")),
	), r.handleGeneric)

	r.logger.Info("Registered tools", zap.Int("count", len(r.tools)))
	return nil
}

// Tools returns the registered tool names in registration order.
func (r *Relay) Tools() []string { return append([]string(nil), r.tools...) }

// Serve starts the MCP server with the configured transport.
func (r *Relay) Serve(cfg Config) error {
	switch cfg.Transport {
	case "stdio", "":
		return mcpserver.ServeStdio(r.mcp)
	case "streamable-http":
		return mcpserver.NewStreamableHTTPServer(r.mcp).Start(cfg.Addr)
	default:
		return fmt.Errorf("unsupported transport: %s (use stdio or streamable-http)", cfg.Transport)
	}
}

func (r *Relay) addTool(tool mcp.Tool, h mcpserver.ToolHandlerFunc) {
	r.mcp.AddTool(tool, h)
	r.tools = append(r.tools, tool.Name)
}

func (r *Relay) catalog(ctx context.Context) (map[string]any, error) {
	return r.cache.get(ctx, r.caller.Help)
}

// toolFor builds a tool from a help entry. Parameter descriptions have the
// form "type (required|optional)[: doc]".
func toolFor(name string, entry map[string]any) mcp.Tool {
	desc, _ := entry["description"].(string)
	opts := []mcp.ToolOption{mcp.WithDescription(fmt.Sprintf("%s (%s)", desc, name))}

	params, _ := entry["params"].(map[string]any)
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		spec, _ := params[k].(string)
		typ, rest, _ := strings.Cut(spec, " ")
		props := []mcp.PropertyOption{}
		if _, doc, ok := strings.Cut(rest, ": "); ok {
			props = append(props, mcp.Description(doc))
		}
		if strings.HasPrefix(rest, "(required)") {
			props = append(props, mcp.Required())
		}
		switch typ {
		case "int", "float":
			opts = append(opts, mcp.WithNumber(k, props...))
		case "bool":
			opts = append(opts, mcp.WithBoolean(k, props...))
		default:
			opts = append(opts, mcp.WithString(k, props...))
		}
	}
	return mcp.NewTool(ToolName(name), opts...)
}

func (r *Relay) forward(name string) mcpserver.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return r.call(ctx, name, command.Params(request.GetArguments()))
	}
}

func (r *Relay) handleGeneric(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	name, _ := args["command"].(string)
	params, _ := args["params"].(map[string]any)
	if name == dispatch.HelpCommand && len(params) == 0 {
		catalog, err := r.catalog(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText(output.YAMLText(map[string]any{
			"success": true, "commands": catalog, "count": len(catalog),
		})), nil
	}
	return r.call(ctx, name, command.Params(params))
}

// call forwards one command and renders its result as YAML. Failed commands
// become tool errors; transport failures are reported the same way so the
// agent sees them.
func (r *Relay) call(ctx context.Context, name string, params command.Params) (*mcp.CallToolResult, error) {
	res, err := r.caller.Call(ctx, name, params)
	if err != nil {
		r.logger.Warn("Forwarding failed", zap.String("command", name), zap.Error(err))
		return mcp.NewToolResultError(fmt.Sprintf("success: false\nerror: %s\n", err)), nil
	}
	text := output.YAMLText(res)
	if !res.Success {
		if res.Code == command.UnknownCommand {
			r.cache.invalidate()
		}
		return mcp.NewToolResultError(text), nil
	}
	return mcp.NewToolResultText(text), nil
}
