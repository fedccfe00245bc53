package locator

import (
	"strings"

	"github.com/mj1618/uibridge/internal/command"
	"github.com/mj1618/uibridge/internal/model"
)

// ErrorDialog describes a visible top-level window reporting a problem.
type ErrorDialog struct {
	Class      string `yaml:"class"          json:"class"`
	ObjectName string `yaml:"objectName"     json:"objectName"`
	Title      string `yaml:"title"          json:"title"`
	Type       string `yaml:"type"           json:"type"`
	Text       string `yaml:"text,omitempty" json:"text,omitempty"`
}

// DetectErrors finds visible message boxes, and dialogs whose title carries
// an error keyword.
func (l *Locator) DetectErrors() []ErrorDialog {
	found := []ErrorDialog{}
	for _, w := range l.tree.TopLevelWindows() {
		if !w.IsVisible() {
			continue
		}
		class := w.ClassName()
		info := ErrorDialog{Class: class, ObjectName: w.ObjectName(), Title: model.TitleOf(w)}
		switch {
		case model.MessageBoxClasses[class]:
			info.Type = class
			info.Text = model.TextOf(w)
		case model.DialogClasses[class] && model.HasErrorKeyword(info.Title):
			info.Type = "Dialog with error keyword"
		default:
			continue
		}
		found = append(found, info)
	}
	return found
}

// TopLevel returns the first top-level window with an exact objectName or a
// title containing title.
func (l *Locator) TopLevel(objectName, title string) (model.Element, error) {
	for _, w := range l.tree.TopLevelWindows() {
		if objectName != "" && w.ObjectName() == objectName {
			return w, nil
		}
		if title != "" && strings.Contains(model.TitleOf(w), title) {
			return w, nil
		}
	}
	label := objectName
	if label == "" {
		label = title
	}
	return nil, command.Errorf(command.NotFound, "Dialog not found: %s", label)
}
