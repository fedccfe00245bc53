package action

import (
	"strings"
	"unicode/utf8"

	"github.com/mj1618/uibridge/internal/command"
	"github.com/mj1618/uibridge/internal/platform"
)

// namedKeys maps accepted key names to the toolkit key name and the text
// the key produces.
var namedKeys = map[string]platform.KeyStroke{
	"return": {Key: "Return", Text: "\r"}, "enter": {Key: "Return", Text: "\r"},
	"tab": {Key: "Tab", Text: "\t"}, "space": {Key: "Space", Text: " "},
	"backspace": {Key: "Backspace", Text: "\b"}, "delete": {Key: "Delete"}, "del": {Key: "Delete"},
	"escape": {Key: "Escape"}, "esc": {Key: "Escape"},
	"up": {Key: "Up"}, "down": {Key: "Down"}, "left": {Key: "Left"}, "right": {Key: "Right"},
	"home": {Key: "Home"}, "end": {Key: "End"}, "pageup": {Key: "PageUp"}, "pagedown": {Key: "PageDown"},
	"insert": {Key: "Insert"},
	"f1": {Key: "F1"}, "f2": {Key: "F2"}, "f3": {Key: "F3"}, "f4": {Key: "F4"},
	"f5": {Key: "F5"}, "f6": {Key: "F6"}, "f7": {Key: "F7"}, "f8": {Key: "F8"},
	"f9": {Key: "F9"}, "f10": {Key: "F10"}, "f11": {Key: "F11"}, "f12": {Key: "F12"},
}

var modifierMap = map[string]platform.Modifier{
	"ctrl": platform.ModCtrl, "control": platform.ModCtrl,
	"shift": platform.ModShift,
	"alt": platform.ModAlt, "opt": platform.ModAlt, "option": platform.ModAlt,
	"meta": platform.ModMeta, "cmd": platform.ModMeta, "command": platform.ModMeta, "win": platform.ModMeta,
}

// ParseKeys turns a key specification into key strokes. A specification is
// one of:
//
//	a combination  "Ctrl+S", "Ctrl+Shift+Z"
//	a named key    "Enter", "Tab", "F5"
//	literal text   "hello world", typed one character at a time
func ParseKeys(spec string) ([]platform.KeyStroke, error) {
	if spec == "" {
		return nil, command.Missing("keys")
	}
	if named, ok := namedKeys[strings.ToLower(spec)]; ok {
		return []platform.KeyStroke{named}, nil
	}
	if combo, ok, err := parseCombo(spec); ok || err != nil {
		if err != nil {
			return nil, err
		}
		return []platform.KeyStroke{combo}, nil
	}
	strokes := make([]platform.KeyStroke, 0, utf8.RuneCountInString(spec))
	for _, r := range spec {
		strokes = append(strokes, charStroke(r))
	}
	return strokes, nil
}

// parseCombo reports ok=false when spec does not start with a modifier and
// so should be typed literally.
func parseCombo(spec string) (platform.KeyStroke, bool, error) {
	parts := strings.Split(spec, "+")
	if len(parts) < 2 {
		return platform.KeyStroke{}, false, nil
	}
	if _, isMod := modifierMap[strings.ToLower(strings.TrimSpace(parts[0]))]; !isMod {
		return platform.KeyStroke{}, false, nil
	}

	var stroke platform.KeyStroke
	found := false
	for _, part := range parts {
		k := strings.ToLower(strings.TrimSpace(part))
		if mod, ok := modifierMap[k]; ok {
			stroke.Modifiers |= mod
			continue
		}
		if k == "" {
			continue
		}
		if found {
			return stroke, true, command.Errorf(command.InvalidParameter, "unknown key: %q", part)
		}
		if named, ok := namedKeys[k]; ok {
			stroke.Key = named.Key
		} else if utf8.RuneCountInString(k) == 1 {
			stroke.Key = strings.ToUpper(k)
		} else {
			return stroke, true, command.Errorf(command.InvalidParameter, "unknown key: %q", part)
		}
		found = true
	}
	if !found {
		return stroke, true, command.Errorf(command.InvalidParameter, "no key specified in combo, only modifiers")
	}
	if stroke.Modifiers == platform.ModShift && utf8.RuneCountInString(stroke.Key) == 1 {
		stroke.Text = stroke.Key
	}
	return stroke, true, nil
}

func charStroke(r rune) platform.KeyStroke {
	switch r {
	case '\n', '\r':
		return namedKeys["return"]
	case '\t':
		return namedKeys["tab"]
	}
	s := string(r)
	return platform.KeyStroke{Key: strings.ToUpper(s), Text: s}
}
