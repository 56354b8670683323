// Package sheet maintains a dynamically created stylesheet and reconciles
// incoming CSS rules against it. A rule is replaced in place (delete then
// re-append) when an existing rule has the same selector and the same set of
// declared property names; otherwise the new rule is appended so the cascade
// resolves overlaps in favor of the most recent write.
package sheet

// DefaultContainerID is the element id used for the managed style container
// when the caller does not choose one.
const DefaultContainerID = "restyle-styles"

// Container is one managed style resource: an ordered sequence of CSS rules.
// Indices follow insertion order; later indices win on cascade.
type Container interface {
	// ID returns the container's identifier.
	ID() string

	// RuleCount returns the number of rules currently in the container.
	RuleCount() int

	// Selector returns the selector text of the rule at index i.
	Selector(i int) string

	// PropertyNames returns the declared property names of the rule at
	// index i, in declaration order. Values are not exposed.
	PropertyNames(i int) []string

	// InsertRule inserts a complete rule ("selector { body }") at index i.
	InsertRule(rule string, i int) error

	// DeleteRule removes the rule at index i.
	DeleteRule(i int) error
}

// Document is the capability boundary to the host page. The manager never
// touches the DOM directly; it goes through this interface so the
// reconciliation logic can run against an in-memory document in tests and
// server-side renders.
type Document interface {
	// LookupContainer finds an existing container by identifier.
	LookupContainer(id string) (Container, bool)

	// CreateContainer creates a new style container with the given
	// identifier, carrying nonce as an attribute when non-empty, and
	// attaches it to the document head.
	CreateContainer(id, nonce string) Container
}

// TokenSource supplies a previously captured security token for newly
// created containers. See package nonce.
type TokenSource interface {
	// Token returns the captured token, or ok=false when none was captured.
	Token() (token string, ok bool)
}
