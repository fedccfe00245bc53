package handlers

import (
	"github.com/mj1618/uibridge/internal/command"
	"github.com/mj1618/uibridge/internal/dispatch"
	"github.com/mj1618/uibridge/internal/locator"
	"github.com/mj1618/uibridge/internal/platform"
	"github.com/mj1618/uibridge/internal/wait"
)

var targetParams = []dispatch.Param{
	{Name: "objectName", Type: "str", Doc: "widget objectName"},
	{Name: "type", Type: "str", Doc: "objectName, title, class or text, used with value"},
	{Name: "value", Type: "str", Doc: "search value, used with type"},
	{Name: "exact", Type: "bool", Doc: "exact match, defaults to false"},
	{Name: "parent", Type: "str", Doc: "top-level window objectName to search within"},
}

type findParams struct {
	Type        string `mapstructure:"type"`
	Value       string `mapstructure:"value"`
	Parent      string `mapstructure:"parent"`
	Exact       bool   `mapstructure:"exact"`
	VisibleOnly bool   `mapstructure:"visible_only"`
}

func (s *Services) widgetCommands() []dispatch.Command {
	return []dispatch.Command{
		{
			Name:        "widget.list_windows",
			Description: "List top-level windows",
			Params:      []dispatch.Param{{Name: "visible_only", Type: "bool", Doc: "defaults to true"}},
			Returns:     map[string]string{"windows": "list", "count": "int"},
			Handler:     s.listWindows,
		},
		{
			Name:        "widget.find",
			Description: "Find widgets by objectName, title, class or text",
			Params: []dispatch.Param{
				{Name: "type", Type: "str", Required: true, Doc: "objectName, title, class or text"},
				{Name: "value", Type: "str", Required: true},
				{Name: "parent", Type: "str", Doc: "top-level window objectName"},
				{Name: "exact", Type: "bool", Doc: "defaults to false"},
				{Name: "visible_only", Type: "bool", Doc: "defaults to false"},
			},
			Returns: map[string]string{"widgets": "list", "count": "int", "search": "dict"},
			Example: command.Params{"type": "title", "value": "New"},
			Handler: s.find,
		},
		{
			Name:        "widget.inspect",
			Description: "Read every available property of a widget",
			Params: []dispatch.Param{
				{Name: "objectName", Type: "str", Required: true},
				{Name: "include_children", Type: "bool", Doc: "defaults to false"},
			},
			Returns: map[string]string{"widget": "dict", "children": "list", "child_count": "int"},
			Example: command.Params{"objectName": "mActionNewProject"},
			Handler: s.inspect,
		},
		{
			Name:        "widget.click",
			Description: "Click a visible, enabled widget",
			Params:      append(append([]dispatch.Param{}, targetParams...), dispatch.Param{Name: "button", Type: "str", Doc: "left, right or middle"}),
			Returns:     map[string]string{"clicked": "bool", "widget_class": "str", "objectName": "str", "button": "str"},
			Example:     command.Params{"objectName": "mActionNewProject"},
			Handler:     s.click,
		},
		{
			Name:        "widget.wait_for",
			Description: "Wait until a widget reaches a state",
			Params: append(append([]dispatch.Param{}, targetParams...),
				dispatch.Param{Name: "state", Type: "str", Required: true, Doc: "visible, hidden, enabled, disabled, exists or gone"},
				dispatch.Param{Name: "timeout", Type: "float", Doc: "seconds, defaults to 5"}),
			Returns: map[string]string{"condition_met": "bool", "elapsed_time": "float", "state": "str", "timeout": "bool"},
			Example: command.Params{"objectName": "QgsDataSourceManagerDialog", "state": "visible", "timeout": 5},
			Handler: s.waitFor,
		},
		{
			Name:        "widget.set_text",
			Description: "Type text into an input widget",
			Params: append(append([]dispatch.Param{}, targetParams...),
				dispatch.Param{Name: "text", Type: "str", Required: true},
				dispatch.Param{Name: "clear_first", Type: "bool", Doc: "defaults to true"}),
			Returns: map[string]string{"text_set": "str", "widget_class": "str", "objectName": "str"},
			Example: command.Params{"objectName": "mQgsFileWidget", "text": "/data/rivers.shp"},
			Handler: s.setText,
		},
		{
			Name:        "widget.select_item",
			Description: "Select an item in a combo box or list",
			Params: []dispatch.Param{
				{Name: "objectName", Type: "str", Required: true},
				{Name: "value", Type: "str|int", Required: true, Doc: "item text, or index with by_index"},
				{Name: "by_index", Type: "bool", Doc: "defaults to false"},
			},
			Returns: map[string]string{"selected": "str", "current_text": "str", "widget_class": "str", "objectName": "str"},
			Example: command.Params{"objectName": "mEncodingComboBox", "value": "UTF-8"},
			Handler: s.selectItem,
		},
		{
			Name:        "widget.send_keys",
			Description: "Send a key combination or literal text to a widget or the focused window",
			Params: []dispatch.Param{
				{Name: "keys", Type: "str", Required: true, Doc: "e.g. Ctrl+S, Enter or literal text"},
				{Name: "objectName", Type: "str", Doc: "target widget, defaults to the focused widget"},
				{Name: "delay", Type: "float", Doc: "seconds between strokes, defaults to 0.1"},
			},
			Returns: map[string]string{"keys_sent": "str", "target": "str"},
			Example: command.Params{"keys": "Ctrl+S"},
			Handler: s.sendKeys,
		},
	}
}

func (s *Services) listWindows(p command.Params) (command.Fields, error) {
	windows := s.locator.Windows(p.Bool("visible_only", true))
	return command.Fields{"windows": windows, "count": len(windows)}, nil
}

func (s *Services) find(p command.Params) (command.Fields, error) {
	if !p.Has("type") || !p.Has("value") {
		return nil, command.Errorf(command.MissingParameter, "Missing required parameters: type and value")
	}
	var fp findParams
	if err := p.Decode(&fp); err != nil {
		return nil, err
	}
	field, err := locator.ParseField(fp.Type)
	if err != nil {
		return nil, err
	}
	matches, err := s.locator.Find(locator.Criteria{
		Field:       field,
		Value:       fp.Value,
		Exact:       fp.Exact,
		Parent:      fp.Parent,
		VisibleOnly: fp.VisibleOnly,
	})
	if err != nil {
		return nil, err
	}
	return command.Fields{
		"widgets": matches,
		"count":   len(matches),
		"search":  map[string]any{"type": fp.Type, "value": fp.Value, "exact": fp.Exact},
	}, nil
}

func (s *Services) inspect(p command.Params) (command.Fields, error) {
	if err := p.Require("objectName"); err != nil {
		return nil, err
	}
	in, err := s.locator.Inspect(p.String("objectName", ""), p.Bool("include_children", false))
	if err != nil {
		return nil, err
	}
	return in.Fields(), nil
}

func (s *Services) click(p command.Params) (command.Fields, error) {
	t, err := locator.TargetFromParams(p)
	if err != nil {
		return nil, err
	}
	button, err := platform.ParseMouseButton(p.String("button", "left"))
	if err != nil {
		return nil, command.Errorf(command.InvalidParameter, "%v", err)
	}
	return s.actions.Click(t, button)
}

func (s *Services) waitFor(p command.Params) (command.Fields, error) {
	if err := p.Require("state"); err != nil {
		return nil, err
	}
	state, err := wait.ParseState(p.String("state", ""))
	if err != nil {
		return nil, err
	}
	t, err := locator.TargetFromParams(p)
	if err != nil {
		return nil, err
	}
	out, err := s.wait.WaitFor(t, state, p.Seconds("timeout", s.cfg.Wait.DefaultTimeout))
	if err != nil {
		return nil, err
	}
	return out.Fields(), nil
}

func (s *Services) setText(p command.Params) (command.Fields, error) {
	if err := p.Require("text"); err != nil {
		return nil, err
	}
	t, err := locator.TargetFromParams(p)
	if err != nil {
		return nil, err
	}
	return s.actions.SetText(t, p.String("text", ""), p.Bool("clear_first", true))
}

func (s *Services) selectItem(p command.Params) (command.Fields, error) {
	// value is the item, so the target is addressed by objectName only.
	if err := p.Require("objectName", "value"); err != nil {
		return nil, err
	}
	sel := platform.Selection{Value: p.String("value", "")}
	if p.Bool("by_index", false) {
		sel.ByIndex = true
		sel.Index = p.Int("value", -1)
	}
	return s.actions.SelectItem(locator.Target{ObjectName: p.String("objectName", "")}, sel)
}

func (s *Services) sendKeys(p command.Params) (command.Fields, error) {
	if err := p.Require("keys"); err != nil {
		return nil, err
	}
	var t locator.Target
	if p.String("objectName", "") != "" || p.Has("type") {
		var err error
		if t, err = locator.TargetFromParams(p); err != nil {
			return nil, err
		}
	}
	return s.actions.SendKeys(t, p.String("keys", ""), p.Seconds("delay", s.cfg.Keys.DefaultDelay))
}
