package handlers

import (
	"github.com/mj1618/uibridge/internal/command"
	"github.com/mj1618/uibridge/internal/dispatch"
	"github.com/mj1618/uibridge/internal/platform"
)

func (s *Services) dialogCommands() []dispatch.Command {
	return []dispatch.Command{
		{
			Name:        "error.detect",
			Description: "Detect visible error dialogs and message boxes",
			Returns:     map[string]string{"errors": "list", "count": "int", "has_errors": "bool"},
			Handler:     s.detectErrors,
		},
		{
			Name:        "dialog.close",
			Description: "Close a top-level dialog by objectName or title",
			Params: []dispatch.Param{
				{Name: "objectName", Type: "str", Doc: "exact objectName"},
				{Name: "title", Type: "str", Doc: "title substring"},
				{Name: "force", Type: "bool", Doc: "defaults to false"},
			},
			Returns: map[string]string{"closed": "bool", "method": "str", "dialog": "str"},
			Example: command.Params{"title": "Invalid Data Source"},
			Handler: s.closeDialog,
		},
	}
}

func (s *Services) detectErrors(command.Params) (command.Fields, error) {
	found := s.locator.DetectErrors()
	return command.Fields{"errors": found, "count": len(found), "has_errors": len(found) > 0}, nil
}

func (s *Services) closeDialog(p command.Params) (command.Fields, error) {
	name, title := p.String("objectName", ""), p.String("title", "")
	if name == "" && title == "" {
		return nil, command.Errorf(command.MissingParameter, "Must provide either objectName or title")
	}
	dialog, err := s.locator.TopLevel(name, title)
	if err != nil {
		return nil, err
	}
	if s.provider.Closer == nil {
		return nil, command.Wrap(platform.ErrUnsupported, "close dialog")
	}
	method, err := s.provider.Closer.Close(dialog, p.Bool("force", false))
	if err != nil {
		return nil, command.Wrap(err, "close dialog")
	}
	s.provider.Loop.ProcessEvents()

	label := name
	if label == "" {
		label = title
	}
	return command.Fields{"closed": true, "method": method, "dialog": label}, nil
}
