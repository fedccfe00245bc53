package platform

import (
	"context"
	"testing"

	"github.com/mj1618/uibridge/internal/model"
)

type stubTree struct{}

func (stubTree) TopLevelWindows() []model.Element { return nil }

type stubLoop struct{}

func (stubLoop) ProcessEvents() {}
func (stubLoop) Invoke(_ context.Context, fn func()) error {
	fn()
	return nil
}

type stubEvents struct{}

func (stubEvents) Subscribe(func(model.RawEvent)) func() { return func() {} }

type stubInput struct{}

func (stubInput) Click(model.Element, MouseButton) error              { return nil }
func (stubInput) SetText(model.Element, string, bool) error           { return nil }
func (stubInput) KeyPress(model.Element, KeyStroke) error             { return nil }
func (stubInput) SelectItem(model.Element, Selection) (string, error) { return "", nil }

func TestNewProvider_Unattached(t *testing.T) {
	orig := NewProviderFunc
	NewProviderFunc = nil
	defer func() { NewProviderFunc = orig }()

	_, err := NewProvider()
	if err == nil {
		t.Fatal("expected error with no host attached")
	}
	if err != ErrUnsupported {
		t.Errorf("expected ErrUnsupported, got: %v", err)
	}
}

func TestNewProvider_ValidatesBackends(t *testing.T) {
	orig := NewProviderFunc
	defer func() { NewProviderFunc = orig }()

	NewProviderFunc = func() (*Provider, error) {
		return &Provider{Tree: stubTree{}, Loop: stubLoop{}}, nil
	}
	if _, err := NewProvider(); err == nil {
		t.Fatal("expected validation error for missing backends")
	}

	NewProviderFunc = func() (*Provider, error) {
		return &Provider{Tree: stubTree{}, Loop: stubLoop{}, Events: stubEvents{}, Inputter: stubInput{}}, nil
	}
	p, err := NewProvider()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Closer != nil || p.Document != nil {
		t.Error("optional backends should stay nil")
	}
}
