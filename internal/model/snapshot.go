package model

// ElementSnapshot is the full property set of one element. Optional
// properties are nil when the element type does not carry them.
type ElementSnapshot struct {
	Class           string    `yaml:"class"                      json:"class"`
	ObjectName      string    `yaml:"objectName"                 json:"objectName"`
	Visible         bool      `yaml:"visible"                    json:"visible"`
	Enabled         bool      `yaml:"enabled"                    json:"enabled"`
	Geometry        Rect      `yaml:"geometry"                   json:"geometry"`
	ScreenPosition  *Point    `yaml:"screenPosition,omitempty"   json:"screenPosition,omitempty"`
	Size            *SizeInfo `yaml:"size,omitempty"             json:"size,omitempty"`
	Title           *string   `yaml:"title,omitempty"            json:"title,omitempty"`
	Text            *string   `yaml:"text,omitempty"             json:"text,omitempty"`
	Checked         *bool     `yaml:"checked,omitempty"          json:"checked,omitempty"`
	CurrentText     *string   `yaml:"currentText,omitempty"      json:"currentText,omitempty"`
	PlaceholderText *string   `yaml:"placeholderText,omitempty"  json:"placeholderText,omitempty"`
	ToolTip         *string   `yaml:"toolTip,omitempty"          json:"toolTip,omitempty"`
}

type SizeInfo struct {
	Width         int `yaml:"width"         json:"width"`
	Height        int `yaml:"height"        json:"height"`
	MinimumWidth  int `yaml:"minimumWidth"  json:"minimumWidth"`
	MinimumHeight int `yaml:"minimumHeight" json:"minimumHeight"`
}

// ChildSnapshot is the minimal view of an immediate child.
type ChildSnapshot struct {
	Class      string `yaml:"class"      json:"class"`
	ObjectName string `yaml:"objectName" json:"objectName"`
	Visible    bool   `yaml:"visible"    json:"visible"`
	Enabled    bool   `yaml:"enabled"    json:"enabled"`
}

// Match is one locator hit.
type Match struct {
	Class      string `yaml:"class"      json:"class"`
	ObjectName string `yaml:"objectName" json:"objectName"`
	Title      string `yaml:"title"      json:"title"`
	Text       string `yaml:"text"       json:"text"`
	Visible    bool   `yaml:"visible"    json:"visible"`
	Enabled    bool   `yaml:"enabled"    json:"enabled"`
	Depth      int    `yaml:"depth"      json:"depth"`
	Path       string `yaml:"path"       json:"path"`
}

// WindowInfo describes a top-level window.
type WindowInfo struct {
	Class      string `yaml:"class"      json:"class"`
	Title      string `yaml:"title"      json:"title"`
	ObjectName string `yaml:"objectName" json:"objectName"`
	Visible    bool   `yaml:"visible"    json:"visible"`
	Enabled    bool   `yaml:"enabled"    json:"enabled"`
	Modal      bool   `yaml:"modal"      json:"modal"`
	Geometry   Rect   `yaml:"geometry"   json:"geometry"`
}

// Snapshot reads every property el exposes.
func Snapshot(el Element) ElementSnapshot {
	g := el.Geometry()
	snap := ElementSnapshot{
		Class:      el.ClassName(),
		ObjectName: el.ObjectName(),
		Visible:    el.IsVisible(),
		Enabled:    el.IsEnabled(),
		Geometry:   g,
	}
	if m, ok := el.(ScreenMapper); ok {
		if p, ok := m.MapToGlobal(Point{}); ok {
			snap.ScreenPosition = &p
		}
	}
	if s, ok := el.(SizeConstrained); ok {
		if mw, mh, ok := s.MinimumSize(); ok {
			snap.Size = &SizeInfo{Width: g.Width, Height: g.Height, MinimumWidth: mw, MinimumHeight: mh}
		}
	}
	if t, ok := el.(Titled); ok {
		snap.Title = optString(t.Title())
	}
	if t, ok := el.(Texted); ok {
		snap.Text = optString(t.Text())
	}
	if c, ok := el.(Checkable); ok {
		if v, ok := c.Checked(); ok {
			snap.Checked = &v
		}
	}
	if c, ok := el.(CurrentTexted); ok {
		snap.CurrentText = optString(c.CurrentText())
	}
	if p, ok := el.(Placeholdered); ok {
		snap.PlaceholderText = optString(p.PlaceholderText())
	}
	if t, ok := el.(ToolTipped); ok {
		snap.ToolTip = optString(t.ToolTip())
	}
	return snap
}

func ChildOf(el Element) ChildSnapshot {
	return ChildSnapshot{
		Class:      el.ClassName(),
		ObjectName: el.ObjectName(),
		Visible:    el.IsVisible(),
		Enabled:    el.IsEnabled(),
	}
}

func MatchOf(el Element, depth int, path string) Match {
	return Match{
		Class:      el.ClassName(),
		ObjectName: el.ObjectName(),
		Title:      TitleOf(el),
		Text:       TextOf(el),
		Visible:    el.IsVisible(),
		Enabled:    el.IsEnabled(),
		Depth:      depth,
		Path:       path,
	}
}

func WindowOf(el Element) WindowInfo {
	return WindowInfo{
		Class:      el.ClassName(),
		Title:      TitleOf(el),
		ObjectName: el.ObjectName(),
		Visible:    el.IsVisible(),
		Enabled:    el.IsEnabled(),
		Modal:      IsModal(el),
		Geometry:   el.Geometry(),
	}
}

func optString(s string, ok bool) *string {
	if !ok {
		return nil
	}
	return &s
}
