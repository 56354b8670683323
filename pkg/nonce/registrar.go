// Package nonce captures a one-time security token exposed through a DOM
// attribute and holds it in process memory for the lifetime of the page. The
// token authorizes dynamically created style elements under a restrictive
// content policy; once captured it is erased from its source attribute and
// never written back to the DOM except as the nonce of a managed container.
package nonce

const (
	// DefaultSelector addresses the element that carries the token.
	DefaultSelector = "meta[web_author]"
	// DefaultAttribute is the data attribute the token is exposed through.
	DefaultAttribute = "data-nonce"
)

// Source finds the first element matching a selector and removes the named
// attribute from it, returning its value. ok is false when no element matches
// or the attribute is absent.
type Source interface {
	TakeAttribute(selector, attr string) (value string, ok bool)
}

// Registrar captures the token at most once and serves it to container
// creation. The zero value is not usable; construct with NewRegistrar.
type Registrar struct {
	src       Source
	attribute string
	token     string
	captured  bool
}

// NewRegistrar creates a Registrar reading from src.
func NewRegistrar(src Source) *Registrar {
	return &Registrar{src: src, attribute: DefaultAttribute}
}

// Capture reads the token from the default selector. See CaptureFrom.
func (r *Registrar) Capture() {
	r.CaptureFrom(DefaultSelector)
}

// CaptureFrom reads the token attribute from the first element matching
// selector and erases it there. A missing element or an empty token is a
// no-op. Once a token has been captured, further calls do nothing, so the
// token cannot be overwritten later in the page's life.
//
// Capture must happen before the first container is created; containers
// created earlier silently lack the token.
func (r *Registrar) CaptureFrom(selector string) {
	if r.captured {
		return
	}
	value, ok := r.src.TakeAttribute(selector, r.attribute)
	if !ok || value == "" {
		return
	}
	r.token = value
	r.captured = true
}

// Token returns the captured token. ok is false before a successful capture.
// Implements sheet.TokenSource.
func (r *Registrar) Token() (string, bool) {
	return r.token, r.captured
}
