package handlers

import (
	"github.com/mj1618/uibridge/internal/command"
	"github.com/mj1618/uibridge/internal/dispatch"
	"github.com/mj1618/uibridge/internal/observability"
)

type readLogParams struct {
	Category string `mapstructure:"category"`
	Limit    int    `mapstructure:"limit"`
}

func (s *Services) logCommands() []dispatch.Command {
	return []dispatch.Command{
		{
			Name:        "log.read",
			Description: "Read recent messages from the in-memory log",
			Params: []dispatch.Param{
				{Name: "category", Type: "str", Doc: "defaults to every category"},
				{Name: "limit", Type: "int", Doc: "defaults to 20"},
			},
			Returns: map[string]string{"messages": "list", "count": "int", "category": "str"},
			Example: command.Params{"limit": 10},
			Quiet:   true,
			Handler: s.readLog,
		},
	}
}

func (s *Services) readLog(p command.Params) (command.Fields, error) {
	rp := readLogParams{Limit: observability.DefaultReadLimit}
	if err := p.Decode(&rp); err != nil {
		return nil, err
	}
	msgs := s.logs.Messages(rp.Category, rp.Limit)
	return command.Fields{"messages": msgs, "count": len(msgs), "category": rp.Category}, nil
}
