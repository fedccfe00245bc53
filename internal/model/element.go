package model

// Rect is a geometry in parent-relative coordinates.
type Rect struct {
	X      int `yaml:"x"      json:"x"`
	Y      int `yaml:"y"      json:"y"`
	Width  int `yaml:"width"  json:"width"`
	Height int `yaml:"height" json:"height"`
}

// Point is a screen position.
type Point struct {
	X int `yaml:"x" json:"x"`
	Y int `yaml:"y" json:"y"`
}

// Element is a live handle into the host toolkit's widget tree. A handle is
// only valid until the host destroys the widget; callers re-resolve elements
// rather than holding them across event-loop iterations.
type Element interface {
	ObjectName() string
	ClassName() string
	Geometry() Rect
	IsVisible() bool
	IsEnabled() bool
	// Parent returns nil for top-level windows.
	Parent() Element
	Children() []Element
}

// Optional capabilities. Widgets expose these inconsistently, so every read
// reports whether the property exists on this element at all.

type Titled interface {
	Title() (string, bool)
}

type Texted interface {
	Text() (string, bool)
}

type Checkable interface {
	Checked() (bool, bool)
}

type CurrentTexted interface {
	CurrentText() (string, bool)
}

type Placeholdered interface {
	PlaceholderText() (string, bool)
}

type ToolTipped interface {
	ToolTip() (string, bool)
}

type Modal interface {
	IsModal() bool
}

// ScreenMapper maps a parent-relative position to screen coordinates.
type ScreenMapper interface {
	MapToGlobal(p Point) (Point, bool)
}

// SizeConstrained exposes minimum size hints.
type SizeConstrained interface {
	MinimumSize() (width, height int, ok bool)
}

// TitleOf returns the element's title, or "" when it has none.
func TitleOf(el Element) string {
	if t, ok := el.(Titled); ok {
		if s, ok := t.Title(); ok {
			return s
		}
	}
	return ""
}

// TextOf returns the element's text, or "" when it has none.
func TextOf(el Element) string {
	if t, ok := el.(Texted); ok {
		if s, ok := t.Text(); ok {
			return s
		}
	}
	return ""
}

func IsModal(el Element) bool {
	if m, ok := el.(Modal); ok {
		return m.IsModal()
	}
	return false
}

// Window returns the top-level ancestor of el (el itself for a window).
func Window(el Element) Element {
	for el != nil {
		p := el.Parent()
		if p == nil {
			return el
		}
		el = p
	}
	return nil
}
