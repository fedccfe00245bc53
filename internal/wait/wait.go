// Package wait polls the live widget tree until an element reaches a state.
//
// The loop runs on the UI context. Each iteration re-resolves the target,
// evaluates the condition, then yields to the host event loop before
// sleeping, so pending UI work is always drained before the next check.
package wait

import (
	"time"

	"github.com/mj1618/uibridge/internal/command"
	"github.com/mj1618/uibridge/internal/locator"
	"github.com/mj1618/uibridge/internal/model"
	"github.com/mj1618/uibridge/internal/platform"
)

const (
	DefaultPollInterval = 100 * time.Millisecond
	DefaultTimeout      = 5 * time.Second
)

// State is a condition an element can be waited into.
type State string

const (
	Visible  State = "visible"
	Hidden   State = "hidden"
	Enabled  State = "enabled"
	Disabled State = "disabled"
	Exists   State = "exists"
	Gone     State = "gone"
)

func ParseState(s string) (State, error) {
	switch st := State(s); st {
	case Visible, Hidden, Enabled, Disabled, Exists, Gone:
		return st, nil
	}
	return "", command.Errorf(command.InvalidParameter,
		"Invalid state: %q (expected visible, hidden, enabled, disabled, exists, or gone)", s)
}

// Satisfied evaluates the state against a resolution result. A nil element
// satisfies only gone.
func (s State) Satisfied(el model.Element) bool {
	switch s {
	case Exists:
		return el != nil
	case Gone:
		return el == nil
	}
	if el == nil {
		return false
	}
	switch s {
	case Visible:
		return el.IsVisible()
	case Hidden:
		return !el.IsVisible()
	case Enabled:
		return el.IsEnabled()
	case Disabled:
		return !el.IsEnabled()
	}
	return false
}

// Target identifies what to wait on.
type Target = locator.Target

// Outcome reports how a wait ended. A timeout is an outcome, not an error.
type Outcome struct {
	ConditionMet bool
	Elapsed      time.Duration
	State        State
	TimedOut     bool
}

func (o Outcome) Fields() command.Fields {
	f := command.Fields{
		"condition_met": o.ConditionMet,
		"elapsed_time":  o.Elapsed.Seconds(),
		"state":         string(o.State),
	}
	if o.TimedOut {
		f["timeout"] = true
	}
	return f
}

// Engine runs wait loops against a locator and event loop.
type Engine struct {
	loc          *locator.Locator
	loop         platform.EventLoop
	pollInterval time.Duration

	now   func() time.Time
	sleep func(time.Duration)
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock replaces the time source and sleep function.
func WithClock(now func() time.Time, sleep func(time.Duration)) Option {
	return func(e *Engine) {
		e.now, e.sleep = now, sleep
	}
}

func New(loc *locator.Locator, loop platform.EventLoop, pollInterval time.Duration, opts ...Option) *Engine {
	if pollInterval <= 0 {
		pollInterval = DefaultPollInterval
	}
	e := &Engine{
		loc:          loc,
		loop:         loop,
		pollInterval: pollInterval,
		now:          time.Now,
		sleep:        time.Sleep,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// WaitFor polls until target reaches state or timeout elapses. The
// condition is always evaluated at least once, even with a zero timeout.
func (e *Engine) WaitFor(target Target, state State, timeout time.Duration) (Outcome, error) {
	if target.IsZero() {
		return Outcome{}, command.Errorf(command.MissingParameter, "Must provide either objectName OR (type and value)")
	}
	start := e.now()
	for {
		// Handles are never kept between polls.
		el, err := e.loc.Resolve(target)
		if err != nil {
			return Outcome{}, err
		}
		elapsed := e.now().Sub(start)
		if state.Satisfied(el) {
			return Outcome{ConditionMet: true, Elapsed: elapsed, State: state}, nil
		}
		if elapsed >= timeout {
			return Outcome{Elapsed: elapsed, State: state, TimedOut: true}, nil
		}
		e.loop.ProcessEvents()
		e.sleep(e.pollInterval)
	}
}
