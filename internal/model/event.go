package model

// EventKind is a raw host event type delivered to observers.
type EventKind int

const (
	EventPress EventKind = iota
	EventRelease
	EventShow
	EventHide
	EventFocusIn
	EventFocusOut
	EventKeyPress
	EventPaint
)

var eventKindNames = map[EventKind]string{
	EventPress:    "press",
	EventRelease:  "release",
	EventShow:     "show",
	EventHide:     "hide",
	EventFocusIn:  "focus_in",
	EventFocusOut: "focus_out",
	EventKeyPress: "key_press",
	EventPaint:    "paint",
}

func (k EventKind) String() string {
	if s, ok := eventKindNames[k]; ok {
		return s
	}
	return "unknown"
}

// RawEvent is one event as the host delivers it to installed observers.
type RawEvent struct {
	Kind   EventKind
	Target Element
	// Button is set for press events: "left", "right" or "middle".
	Button string
	// Text is the typed character for key presses.
	Text string
}
