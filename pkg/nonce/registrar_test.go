package nonce

import (
	"testing"

	"github.com/recera/restyle/pkg/sheet"
)

func TestRegistrar_CaptureAndErase(t *testing.T) {
	doc := sheet.NewMemoryDocument()
	doc.SetAttribute(DefaultSelector, DefaultAttribute, "abc123")

	r := NewRegistrar(doc)
	r.Capture()

	token, ok := r.Token()
	if !ok || token != "abc123" {
		t.Fatalf("Token() = %q, %v, want %q, true", token, ok, "abc123")
	}
	if _, present := doc.Attribute(DefaultSelector, DefaultAttribute); present {
		t.Error("token attribute should be erased after capture")
	}
}

func TestRegistrar_NoTokenIsNoOp(t *testing.T) {
	doc := sheet.NewMemoryDocument()

	r := NewRegistrar(doc)
	r.Capture()

	if _, ok := r.Token(); ok {
		t.Error("expected no token when source attribute is absent")
	}
}

func TestRegistrar_EmptyTokenIsNoOp(t *testing.T) {
	doc := sheet.NewMemoryDocument()
	doc.SetAttribute(DefaultSelector, DefaultAttribute, "")

	r := NewRegistrar(doc)
	r.Capture()

	if _, ok := r.Token(); ok {
		t.Error("expected no token for empty attribute value")
	}
}

func TestRegistrar_SecondCaptureDoesNotOverwrite(t *testing.T) {
	doc := sheet.NewMemoryDocument()
	doc.SetAttribute(DefaultSelector, DefaultAttribute, "first")

	r := NewRegistrar(doc)
	r.Capture()

	doc.SetAttribute(DefaultSelector, DefaultAttribute, "second")
	r.Capture()

	token, _ := r.Token()
	if token != "first" {
		t.Errorf("Token() = %q, want the originally captured %q", token, "first")
	}
	// The second value must stay untouched; capture already happened.
	if v, ok := doc.Attribute(DefaultSelector, DefaultAttribute); !ok || v != "second" {
		t.Errorf("second attribute = %q, %v, want untouched %q", v, ok, "second")
	}
}

func TestRegistrar_FeedsContainerCreation(t *testing.T) {
	doc := sheet.NewMemoryDocument()
	doc.SetAttribute(DefaultSelector, DefaultAttribute, "abc123")

	r := NewRegistrar(doc)
	r.Capture()

	m := sheet.New(doc, sheet.WithTokenSource(r))
	m.Apply(":root", "color: red")

	c := m.EnsureContainer("").(*sheet.MemoryContainer)
	if c.Nonce() != "abc123" {
		t.Errorf("container nonce = %q, want %q", c.Nonce(), "abc123")
	}
}

func TestRegistrar_CaptureAfterCreationLeavesContainerBare(t *testing.T) {
	doc := sheet.NewMemoryDocument()
	doc.SetAttribute(DefaultSelector, DefaultAttribute, "abc123")

	r := NewRegistrar(doc)
	m := sheet.New(doc, sheet.WithTokenSource(r))

	m.Apply(":root", "color: red")
	r.Capture()
	m.Apply(":root", "color: blue")

	c := m.EnsureContainer("").(*sheet.MemoryContainer)
	if c.Nonce() != "" {
		t.Errorf("container created before capture must not gain a nonce, got %q", c.Nonce())
	}
}
