package relay

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mj1618/uibridge/internal/command"
	"github.com/mj1618/uibridge/internal/dispatch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCaller struct {
	calls    []string
	helps    int
	catalog  map[string]any
	result   command.Result
	err      error
	lastArgs command.Params
}

func (f *fakeCaller) Call(_ context.Context, name string, params command.Params) (command.Result, error) {
	f.calls = append(f.calls, name)
	f.lastArgs = params
	return f.result, f.err
}

func (f *fakeCaller) Help(context.Context) (map[string]any, error) {
	f.helps++
	if f.err != nil {
		return nil, f.err
	}
	return f.catalog, nil
}

func testCatalog() map[string]any {
	return map[string]any{
		"widget.click": map[string]any{
			"description": "Click a widget",
			"params": map[string]any{
				"objectName": "str (required): widget objectName",
				"button":     "str (optional)",
				"timeout":    "float (optional)",
				"double":     "bool (optional)",
			},
		},
		"crash.list": map[string]any{"description": "List checkpoints"},
	}
}

func callRequest(name string, args map[string]any) mcp.CallToolRequest {
	var req mcp.CallToolRequest
	req.Params.Name = name
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, res.Content)
	text, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok)
	return text.Text
}

func TestToolName(t *testing.T) {
	assert.Equal(t, "widget_click", ToolName("widget.click"))
	assert.Equal(t, "help", ToolName("help"))
}

func TestToolFor_MapsParamTypes(t *testing.T) {
	entry := testCatalog()["widget.click"].(map[string]any)
	tool := toolFor("widget.click", entry)

	assert.Equal(t, "widget_click", tool.Name)
	assert.Contains(t, tool.Description, "Click a widget")
	assert.Equal(t, []string{"objectName"}, tool.InputSchema.Required)

	props := tool.InputSchema.Properties
	require.Len(t, props, 4)
	assert.Equal(t, "string", props["objectName"].(map[string]any)["type"])
	assert.Equal(t, "widget objectName", props["objectName"].(map[string]any)["description"])
	assert.Equal(t, "number", props["timeout"].(map[string]any)["type"])
	assert.Equal(t, "boolean", props["double"].(map[string]any)["type"])
}

func TestRegister(t *testing.T) {
	caller := &fakeCaller{catalog: testCatalog()}
	r := New(caller, Config{CatalogTTL: time.Minute}, nil)

	require.NoError(t, r.Register(context.Background()))
	assert.Equal(t, []string{"crash_list", "widget_click", GenericTool}, r.Tools())
}

func TestRegister_HelpFails(t *testing.T) {
	r := New(&fakeCaller{err: errors.New("connection refused")}, Config{}, nil)
	err := r.Register(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestForward(t *testing.T) {
	caller := &fakeCaller{result: command.OK(command.Fields{"clicked": true})}
	r := New(caller, Config{}, nil)

	res, err := r.forward("widget.click")(context.Background(), callRequest("widget_click", map[string]any{"objectName": "okButton"}))
	require.NoError(t, err)
	assert.False(t, res.IsError)
	assert.Contains(t, resultText(t, res), "clicked: true")
	assert.Equal(t, []string{"widget.click"}, caller.calls)
	assert.Equal(t, "okButton", caller.lastArgs["objectName"])
}

func TestForward_FailedCommandIsToolError(t *testing.T) {
	caller := &fakeCaller{result: command.Fail(command.Errorf(command.NotFound, "Widget not found: nope"))}
	r := New(caller, Config{}, nil)

	res, err := r.forward("widget.click")(context.Background(), callRequest("widget_click", nil))
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Contains(t, resultText(t, res), "Widget not found: nope")
}

func TestGeneric_HelpUsesCache(t *testing.T) {
	caller := &fakeCaller{catalog: testCatalog()}
	r := New(caller, Config{CatalogTTL: time.Minute}, nil)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		res, err := r.handleGeneric(ctx, callRequest(GenericTool, map[string]any{"command": dispatch.HelpCommand}))
		require.NoError(t, err)
		assert.Contains(t, resultText(t, res), "widget.click")
	}
	assert.Equal(t, 1, caller.helps)
	assert.Empty(t, caller.calls)
}

func TestGeneric_Forwards(t *testing.T) {
	caller := &fakeCaller{result: command.OK(command.Fields{"count": 0})}
	r := New(caller, Config{}, nil)

	_, err := r.handleGeneric(context.Background(), callRequest(GenericTool, map[string]any{
		"command": "crash.list",
		"params":  map[string]any{"limit": 5},
	}))
	require.NoError(t, err)
	assert.Equal(t, []string{"crash.list"}, caller.calls)
	assert.Equal(t, 5, caller.lastArgs["limit"])
}

func TestCatalogCache_TTL(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	c := newCatalogCache(time.Second)
	c.now = func() time.Time { return now }
	fetches := 0
	fetch := func(context.Context) (map[string]any, error) {
		fetches++
		return map[string]any{}, nil
	}
	ctx := context.Background()

	_, _ = c.get(ctx, fetch)
	_, _ = c.get(ctx, fetch)
	assert.Equal(t, 1, fetches)

	now = now.Add(2 * time.Second)
	_, _ = c.get(ctx, fetch)
	assert.Equal(t, 2, fetches)

	c.invalidate()
	_, _ = c.get(ctx, fetch)
	assert.Equal(t, 3, fetches)
}

func TestCatalogCache_Disabled(t *testing.T) {
	c := newCatalogCache(0)
	fetches := 0
	fetch := func(context.Context) (map[string]any, error) { fetches++; return nil, nil }
	_, _ = c.get(context.Background(), fetch)
	_, _ = c.get(context.Background(), fetch)
	assert.Equal(t, 2, fetches)
}

func TestUnknownCommandDropsCachedCatalog(t *testing.T) {
	caller := &fakeCaller{
		catalog: testCatalog(),
		result:  command.Fail(command.Errorf(command.UnknownCommand, "Unknown command: widget.gone")),
	}
	r := New(caller, Config{CatalogTTL: time.Hour}, nil)
	ctx := context.Background()
	help := callRequest(GenericTool, map[string]any{"command": dispatch.HelpCommand})

	_, err := r.handleGeneric(ctx, help)
	require.NoError(t, err)
	_, err = r.handleGeneric(ctx, callRequest(GenericTool, map[string]any{"command": "widget.gone"}))
	require.NoError(t, err)
	_, err = r.handleGeneric(ctx, help)
	require.NoError(t, err)

	assert.Equal(t, 2, caller.helps)
}
