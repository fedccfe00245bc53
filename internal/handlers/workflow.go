package handlers

import (
	"github.com/mj1618/uibridge/internal/command"
	"github.com/mj1618/uibridge/internal/dispatch"
)

func (s *Services) workflowCommands() []dispatch.Command {
	name := dispatch.Param{Name: "workflow_name", Type: "str", Required: true}
	return []dispatch.Command{
		{
			Name:        "workflow.record_start",
			Description: "Start recording user interactions into a workflow",
			Params:      []dispatch.Param{name, {Name: "description", Type: "str"}},
			Returns:     map[string]string{"recording": "bool", "workflow_name": "str", "start_time": "str", "session_id": "str"},
			Example:     command.Params{"workflow_name": "add_vector_layer", "description": "Load a shapefile"},
			Handler:     s.recordStart,
		},
		{
			Name:        "workflow.record_stop",
			Description: "Stop recording and write the workflow documents",
			Returns: map[string]string{
				"workflow_name": "str", "event_count": "int", "step_count": "int",
				"duration": "float", "file_path": "str", "json_path": "str",
			},
			Handler: s.recordStop,
		},
		{
			Name:        "workflow.add_note",
			Description: "Add a note to the active recording",
			Params:      []dispatch.Param{{Name: "note", Type: "str", Required: true}},
			Returns:     map[string]string{"note": "str", "elapsed": "float"},
			Example:     command.Params{"note": "Pick the rivers shapefile"},
			Handler:     s.addNote,
		},
		{
			Name:        "workflow.status",
			Description: "Report whether a recording is active",
			Returns:     map[string]string{"recording": "bool", "workflow_name": "str", "event_count": "int", "elapsed": "float"},
			Handler:     func(command.Params) (command.Fields, error) { return s.recorder.Status(), nil },
		},
		{
			Name:        "workflow.list",
			Description: "List recorded workflows",
			Returns:     map[string]string{"workflows": "list", "count": "int"},
			Handler:     s.listWorkflows,
		},
		{
			Name:        "workflow.get",
			Description: "Read a recorded workflow document",
			Params:      []dispatch.Param{name},
			Returns:     map[string]string{"workflow_name": "str", "content": "str", "file_path": "str"},
			Example:     command.Params{"workflow_name": "add_vector_layer"},
			Handler:     s.getWorkflow,
		},
	}
}

func (s *Services) recordStart(p command.Params) (command.Fields, error) {
	if err := p.Require("workflow_name"); err != nil {
		return nil, err
	}
	fields, err := s.recorder.Start(p.String("workflow_name", ""), p.String("description", ""))
	if err != nil {
		return nil, err
	}
	s.metrics.SetRecording(true)
	return fields, nil
}

func (s *Services) recordStop(command.Params) (command.Fields, error) {
	fields, err := s.recorder.Stop()
	if err != nil {
		return nil, err
	}
	s.metrics.SetRecording(false)
	return fields, nil
}

func (s *Services) addNote(p command.Params) (command.Fields, error) {
	if err := p.Require("note"); err != nil {
		return nil, err
	}
	return s.recorder.AddNote(p.String("note", ""))
}

func (s *Services) listWorkflows(command.Params) (command.Fields, error) {
	list, err := s.recorder.Store().List()
	if err != nil {
		return nil, err
	}
	return command.Fields{"workflows": list, "count": len(list)}, nil
}

func (s *Services) getWorkflow(p command.Params) (command.Fields, error) {
	if err := p.Require("workflow_name"); err != nil {
		return nil, err
	}
	name := p.String("workflow_name", "")
	content, path, err := s.recorder.Store().Get(name)
	if err != nil {
		return nil, err
	}
	return command.Fields{"workflow_name": name, "content": content, "file_path": path}, nil
}
