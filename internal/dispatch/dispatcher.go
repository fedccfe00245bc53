package dispatch

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/mj1618/uibridge/internal/command"
	"github.com/mj1618/uibridge/internal/observability"
	"go.uber.org/zap"
)

// HelpCommand returns the catalog instead of running a handler.
const HelpCommand = "help"

// LogCategory tags ring buffer entries written by the dispatcher.
const LogCategory = "uibridge"

// Request is the transport payload.
type Request struct {
	Command string         `json:"command"`
	Params  command.Params `json:"params,omitempty"`
}

type Dispatcher struct {
	catalog *Catalog
	logger  *zap.Logger
	buffer  *observability.LogBuffer
	metrics *observability.Metrics
	now     func() time.Time
}

type Option func(*Dispatcher)

func WithLogger(l *zap.Logger) Option { return func(d *Dispatcher) { d.logger = l } }

// WithLogBuffer mirrors command log lines into the in-memory ring.
func WithLogBuffer(b *observability.LogBuffer) Option { return func(d *Dispatcher) { d.buffer = b } }

func WithMetrics(m *observability.Metrics) Option { return func(d *Dispatcher) { d.metrics = m } }

func WithClock(now func() time.Time) Option { return func(d *Dispatcher) { d.now = now } }

func New(catalog *Catalog, opts ...Option) *Dispatcher {
	d := &Dispatcher{catalog: catalog, logger: zap.NewNop(), now: time.Now}
	for _, o := range opts {
		o(d)
	}
	d.logger = d.logger.Named("dispatch")
	return d
}

func (d *Dispatcher) Catalog() *Catalog { return d.catalog }

// Dispatch validates name, runs its handler and returns the handler's
// outcome. It never panics.
func (d *Dispatcher) Dispatch(name string, params command.Params) command.Result {
	if params == nil {
		params = command.Params{}
	}
	if name == HelpCommand {
		return d.help(params)
	}

	if err := ValidateName(name); err != nil {
		d.warn(fmt.Sprintf("❌ Invalid command: %s", name))
		return command.Fail(err)
	}
	cmd, ok := d.catalog.Lookup(name)
	if !ok {
		d.warn(fmt.Sprintf("❌ Invalid command: %s", name))
		return command.Fail(command.Errorf(command.UnknownCommand,
			"Unknown command: %s. Available: %s", name, strings.Join(d.catalog.Names(), ", ")))
	}

	start := d.now()
	result := run(cmd, params)
	if cmd.Quiet {
		return result
	}

	d.metrics.ObserveCommand(name, result.Success, d.now().Sub(start))
	if result.Success {
		msg := "✓ " + name
		if len(params) > 0 {
			msg += " | params: " + formatParams(params)
		}
		d.logger.Info(msg)
		d.record("info", msg)
	} else {
		msg := fmt.Sprintf("✗ %s failed: %s", name, result.Error)
		d.logger.Warn(msg, zap.String("code", string(result.Code)))
		d.record("warning", msg)
	}
	return result
}

func (d *Dispatcher) help(params command.Params) command.Result {
	name := params.String("command", "")
	if name == "" {
		return command.OK(d.catalog.Help())
	}
	cmd, ok := d.catalog.Lookup(name)
	if !ok {
		return command.Fail(command.Errorf(command.UnknownCommand,
			"Command not found: %s. Available: %s", name, strings.Join(d.catalog.Names(), ", ")))
	}
	fields := command.Fields{"command": name}
	for k, v := range cmd.Help() {
		fields[k] = v
	}
	return command.OK(fields)
}

func run(cmd *Command, params command.Params) (result command.Result) {
	defer func() {
		if r := recover(); r != nil {
			result = command.Fail(command.Errorf(command.HostError, "%s panicked: %v", cmd.Name, r))
		}
	}()
	return command.Handle(cmd.Handler, params)
}

func (d *Dispatcher) warn(msg string) {
	d.logger.Warn(msg)
	d.record("warning", msg)
}

func (d *Dispatcher) record(level, msg string) {
	if d.buffer != nil {
		d.buffer.Append(level, LogCategory, msg)
	}
}

func formatParams(p command.Params) string {
	data, err := json.Marshal(map[string]any(p))
	if err != nil {
		return fmt.Sprintf("%v", map[string]any(p))
	}
	return string(data)
}
