package platform

import (
	"errors"
)

// Provider bundles the host UI backends.
type Provider struct {
	Tree     Tree
	Loop     EventLoop
	Events   EventSource
	Inputter Inputter
	Closer   WindowCloser
	Document Document
}

// ErrUnsupported is returned when no host toolkit is attached.
var ErrUnsupported = errors.New("no host UI toolkit is attached; embed uibridge in the host application or run with --demo")

// ErrUnsupportedInteraction is returned by backends for interactions a
// widget class cannot perform.
var ErrUnsupportedInteraction = errors.New("interaction not supported by widget")

// NewProviderFunc is set by the host integration before the server starts.
// See internal/platform/memory for the in-process toolkit.
var NewProviderFunc func() (*Provider, error)

// NewProvider returns the Provider for the attached host.
func NewProvider() (*Provider, error) {
	if NewProviderFunc == nil {
		return nil, ErrUnsupported
	}
	p, err := NewProviderFunc()
	if err != nil {
		return nil, err
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Validate checks that the backends every command relies on are present.
func (p *Provider) Validate() error {
	switch {
	case p.Tree == nil:
		return errors.New("provider is missing a Tree backend")
	case p.Loop == nil:
		return errors.New("provider is missing an EventLoop backend")
	case p.Events == nil:
		return errors.New("provider is missing an EventSource backend")
	case p.Inputter == nil:
		return errors.New("provider is missing an Inputter backend")
	}
	return nil
}
