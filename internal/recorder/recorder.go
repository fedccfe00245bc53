// Package recorder captures a live interaction session and turns it into a
// replayable procedure document.
//
// A Recorder is either idle or recording one session. While recording it
// holds a subscription on the host's event source; OnEvent filters each raw
// event against a fixed allow-list and buffers a copy of the target's
// identity. Stop segments the buffer into steps and writes the document and
// the raw event log to the Store.
package recorder

import (
	"math"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mj1618/uibridge/internal/command"
	"github.com/mj1618/uibridge/internal/model"
	"github.com/mj1618/uibridge/internal/platform"
)

type session struct {
	id          string
	name        string
	description string
	startedAt   time.Time
	events      []Event
	cancel      func()
}

// Recorder owns at most one active session.
type Recorder struct {
	events     platform.EventSource
	store      *Store
	textInputs map[string]bool
	logger     *zap.Logger
	now        func() time.Time

	// mu guards active; events arrive on the UI context, status may be read
	// from elsewhere.
	mu     sync.Mutex
	active *session
}

// Option configures a Recorder.
type Option func(*Recorder)

func WithClock(now func() time.Time) Option {
	return func(r *Recorder) { r.now = now }
}

// WithTextInputClasses sets the classes whose key presses are recorded.
func WithTextInputClasses(classes []string) Option {
	return func(r *Recorder) { r.textInputs = model.ClassSet(classes) }
}

func WithLogger(l *zap.Logger) Option {
	return func(r *Recorder) { r.logger = l }
}

func New(events platform.EventSource, store *Store, opts ...Option) *Recorder {
	r := &Recorder{
		events:     events,
		store:      store,
		textInputs: model.ClassSet(model.DefaultTextInputClasses),
		logger:     zap.NewNop(),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Start begins a session and installs the event observer.
func (r *Recorder) Start(name, description string) (command.Fields, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}
	r.mu.Lock()
	if r.active != nil {
		r.mu.Unlock()
		return nil, command.Errorf(command.AlreadyRecording,
			"Already recording. Stop current recording first with workflow.record_stop")
	}
	s := &session{
		id:          uuid.NewString(),
		name:        name,
		description: description,
		startedAt:   r.now(),
	}
	r.active = s
	r.mu.Unlock()

	// Subscribe outside the lock: hosts may deliver synchronously.
	s.cancel = r.events.Subscribe(r.OnEvent)
	r.logger.Info("Recording started", zap.String("workflow", name), zap.String("session_id", s.id))
	return command.Fields{
		"recording":     true,
		"workflow_name": name,
		"start_time":    s.startedAt.Format(time.RFC3339Nano),
		"session_id":    s.id,
	}, nil
}

// OnEvent buffers allow-listed events while recording. It is the single
// entry point the host's observer calls, synchronously on the UI context.
func (r *Recorder) OnEvent(ev model.RawEvent) {
	if ev.Target == nil {
		return
	}
	var kind Kind
	switch ev.Kind {
	case model.EventPress:
		kind = KindClick
	case model.EventShow:
		kind = KindShow
	case model.EventHide:
		kind = KindHide
	case model.EventFocusIn:
		kind = KindFocus
	case model.EventKeyPress:
		if !r.textInputs[ev.Target.ClassName()] {
			return
		}
		kind = KindKeyPress
	default:
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	s := r.active
	if s == nil {
		return
	}
	rec := r.newEvent(s, kind)
	rec.Widget = snapshotWidget(ev.Target)
	rec.ParentWindow = snapshotWindow(ev.Target)
	switch kind {
	case KindClick:
		rec.Button = ev.Button
		if rec.Button == "" {
			rec.Button = "unknown"
		}
	case KindKeyPress:
		rec.Key = ev.Text
	}
	s.events = append(s.events, rec)
}

func (r *Recorder) newEvent(s *session, kind Kind) Event {
	now := r.now()
	return Event{
		Timestamp: now,
		Elapsed:   roundTo(now.Sub(s.startedAt).Seconds(), 3),
		Kind:      kind,
	}
}

// AddNote appends a manual annotation.
func (r *Recorder) AddNote(note string) (command.Fields, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.active == nil {
		return nil, command.Errorf(command.NotRecording,
			"Not currently recording. Start recording with workflow.record_start")
	}
	ev := r.newEvent(r.active, KindNote)
	ev.Note = note
	r.active.events = append(r.active.events, ev)
	return command.Fields{"note": note, "elapsed": ev.Elapsed}, nil
}

// Stop ends the session, writes its artifacts and returns to idle. If the
// write fails the session stays active so stop can be retried.
func (r *Recorder) Stop() (command.Fields, error) {
	r.mu.Lock()
	s := r.active
	if s == nil {
		r.mu.Unlock()
		return nil, command.Errorf(command.NotRecording,
			"Not currently recording. Start recording with workflow.record_start")
	}
	events := append([]Event(nil), s.events...)
	r.mu.Unlock()

	doc := Document{
		Name:        s.name,
		Description: s.description,
		StartedAt:   s.startedAt,
		Duration:    r.now().Sub(s.startedAt),
		Events:      events,
		Steps:       Segment(events),
	}
	raw, err := doc.JSON()
	if err != nil {
		return nil, command.Wrap(err, "encode events")
	}
	mdPath, jsonPath, err := r.store.Save(s.name, doc.Markdown(), raw)
	if err != nil {
		r.logger.Error("Failed to write workflow", zap.String("workflow", s.name), zap.Error(err))
		return nil, err
	}

	if s.cancel != nil {
		s.cancel()
	}
	r.mu.Lock()
	r.active = nil
	r.mu.Unlock()

	r.logger.Info("Recording stopped",
		zap.String("workflow", s.name),
		zap.Int("events", len(events)),
		zap.Int("steps", len(doc.Steps)))
	return command.Fields{
		"workflow_name": s.name,
		"event_count":   len(events),
		"step_count":    len(doc.Steps),
		"duration":      roundTo(doc.Duration.Seconds(), 2),
		"file_path":     mdPath,
		"json_path":     jsonPath,
	}, nil
}

// Status describes the current session, if any.
func (r *Recorder) Status() command.Fields {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.active == nil {
		return command.Fields{"recording": false}
	}
	s := r.active
	return command.Fields{
		"recording":     true,
		"workflow_name": s.name,
		"description":   s.description,
		"session_id":    s.id,
		"event_count":   len(s.events),
		"elapsed":       roundTo(r.now().Sub(s.startedAt).Seconds(), 3),
	}
}

// Recording reports whether a session is active.
func (r *Recorder) Recording() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.active != nil
}

// Store returns the workflow store.
func (r *Recorder) Store() *Store { return r.store }

func roundTo(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
