// Package handlers binds the automation components to the command catalog.
package handlers

import (
	"time"

	"github.com/mj1618/uibridge/internal/action"
	"github.com/mj1618/uibridge/internal/checkpoint"
	"github.com/mj1618/uibridge/internal/config"
	"github.com/mj1618/uibridge/internal/dispatch"
	"github.com/mj1618/uibridge/internal/locator"
	"github.com/mj1618/uibridge/internal/observability"
	"github.com/mj1618/uibridge/internal/platform"
	"github.com/mj1618/uibridge/internal/recorder"
	"github.com/mj1618/uibridge/internal/wait"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// Options carries the collaborators that are not part of the host.
type Options struct {
	Fs      afero.Fs
	Logger  *zap.Logger
	Logs    *observability.LogBuffer
	Metrics *observability.Metrics
	// Now and Sleep default to the real clock.
	Now   func() time.Time
	Sleep func(time.Duration)
}

// Services owns the process-scoped automation state for one host.
type Services struct {
	provider *platform.Provider
	cfg      *config.Config

	locator     *locator.Locator
	wait        *wait.Engine
	actions     *action.Executor
	recorder    *recorder.Recorder
	checkpoints *checkpoint.Registry
	logs        *observability.LogBuffer
	metrics     *observability.Metrics
	logger      *zap.Logger
}

func New(p *platform.Provider, cfg *config.Config, opts Options) (*Services, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if cfg == nil {
		cfg = config.NewDefaultConfig()
	}
	if opts.Fs == nil {
		opts.Fs = afero.NewOsFs()
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Logs == nil {
		opts.Logs = observability.NewLogBuffer(cfg.LogBuffer.Size)
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Sleep == nil {
		opts.Sleep = time.Sleep
	}

	loc := locator.New(p.Tree)
	store := recorder.NewStore(opts.Fs, cfg.Workflow.Dir)
	return &Services{
		provider: p,
		cfg:      cfg,
		locator:  loc,
		wait:     wait.New(loc, p.Loop, cfg.Wait.PollInterval, wait.WithClock(opts.Now, opts.Sleep)),
		actions:  action.New(loc, p.Inputter, p.Loop).WithSleep(opts.Sleep),
		recorder: recorder.New(p.Events, store,
			recorder.WithClock(opts.Now),
			recorder.WithTextInputClasses(cfg.Recorder.TextInputClasses),
			recorder.WithLogger(opts.Logger.Named("recorder"))),
		checkpoints: checkpoint.New(p.Document, opts.Now),
		logs:        opts.Logs,
		metrics:     opts.Metrics,
		logger:      opts.Logger,
	}, nil
}

// Register adds every command to c.
func (s *Services) Register(c *dispatch.Catalog) error {
	var all []dispatch.Command
	all = append(all, s.widgetCommands()...)
	all = append(all, s.dialogCommands()...)
	all = append(all, s.workflowCommands()...)
	all = append(all, s.crashCommands()...)
	all = append(all, s.logCommands()...)
	return c.Register(all...)
}

// Catalog returns a new catalog holding every command.
func (s *Services) Catalog() (*dispatch.Catalog, error) {
	c := dispatch.NewCatalog()
	if err := s.Register(c); err != nil {
		return nil, err
	}
	return c, nil
}

// Recorder exposes the session recorder, e.g. for stopping on shutdown.
func (s *Services) Recorder() *recorder.Recorder { return s.recorder }

// Dispatcher returns a dispatcher over the full catalog that logs into the
// same ring log.read serves.
func (s *Services) Dispatcher() (*dispatch.Dispatcher, error) {
	c, err := s.Catalog()
	if err != nil {
		return nil, err
	}
	return dispatch.New(c,
		dispatch.WithLogger(s.logger),
		dispatch.WithLogBuffer(s.logs),
		dispatch.WithMetrics(s.metrics)), nil
}
