package handlers

import (
	"github.com/mj1618/uibridge/internal/command"
	"github.com/mj1618/uibridge/internal/dispatch"
)

func (s *Services) crashCommands() []dispatch.Command {
	return []dispatch.Command{
		{
			Name:        "crash.save",
			Description: "Record a checkpoint before a risky operation",
			Params:      []dispatch.Param{{Name: "operation", Type: "str", Required: true}},
			Returns:     map[string]string{"checkpoint_id": "str", "project_path": "str", "operation": "str"},
			Example:     command.Params{"operation": "run buffer analysis"},
			Handler:     s.saveCheckpoint,
		},
		{
			Name:        "crash.restore",
			Description: "Return the project recorded by a checkpoint",
			Params:      []dispatch.Param{{Name: "checkpoint_id", Type: "str", Required: true}},
			Returns:     map[string]string{"restored": "bool", "project_path": "str", "is_dirty": "bool"},
			Example:     command.Params{"checkpoint_id": "checkpoint_20260501_143009"},
			Handler:     s.restoreCheckpoint,
		},
		{
			Name:        "crash.list",
			Description: "List checkpoints in save order",
			Returns:     map[string]string{"checkpoints": "list", "count": "int"},
			Handler:     s.listCheckpoints,
		},
	}
}

func (s *Services) saveCheckpoint(p command.Params) (command.Fields, error) {
	if err := p.Require("operation"); err != nil {
		return nil, err
	}
	cp := s.checkpoints.Save(p.String("operation", ""))
	return command.Fields{
		"checkpoint_id": cp.ID,
		"project_path":  cp.ProjectPath,
		"operation":     cp.Operation,
		"timestamp":     cp.Timestamp,
	}, nil
}

func (s *Services) restoreCheckpoint(p command.Params) (command.Fields, error) {
	if err := p.Require("checkpoint_id"); err != nil {
		return nil, err
	}
	cp, err := s.checkpoints.Restore(p.String("checkpoint_id", ""))
	if err != nil {
		return nil, err
	}
	return command.Fields{"restored": true, "project_path": cp.ProjectPath, "is_dirty": cp.Dirty}, nil
}

func (s *Services) listCheckpoints(command.Params) (command.Fields, error) {
	list := s.checkpoints.List()
	return command.Fields{"checkpoints": list, "count": len(list)}, nil
}
