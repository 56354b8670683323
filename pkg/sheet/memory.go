package sheet

import (
	"fmt"
	"strings"
)

// MemoryDocument is a pure-Go Document used in tests and server-side renders.
// It also keeps a flat selector->attributes store so token capture can be
// exercised without a browser; its TakeAttribute method satisfies the
// nonce.Source interface.
type MemoryDocument struct {
	containers map[string]*MemoryContainer
	order      []string
	attrs      map[string]map[string]string
}

// NewMemoryDocument creates an empty in-memory document.
func NewMemoryDocument() *MemoryDocument {
	return &MemoryDocument{
		containers: make(map[string]*MemoryContainer),
		attrs:      make(map[string]map[string]string),
	}
}

// LookupContainer implements Document.
func (d *MemoryDocument) LookupContainer(id string) (Container, bool) {
	c, ok := d.containers[id]
	return c, ok
}

// CreateContainer implements Document.
func (d *MemoryDocument) CreateContainer(id, nonce string) Container {
	c := &MemoryContainer{id: id, nonce: nonce}
	d.containers[id] = c
	d.order = append(d.order, id)
	return c
}

// ContainerCount returns how many containers have been created.
func (d *MemoryDocument) ContainerCount() int {
	return len(d.order)
}

// SetAttribute places an attribute on the pseudo-element addressed by
// selector. Test setup helper for token capture.
func (d *MemoryDocument) SetAttribute(selector, attr, value string) {
	if d.attrs[selector] == nil {
		d.attrs[selector] = make(map[string]string)
	}
	d.attrs[selector][attr] = value
}

// Attribute reads an attribute without removing it.
func (d *MemoryDocument) Attribute(selector, attr string) (string, bool) {
	v, ok := d.attrs[selector][attr]
	return v, ok
}

// TakeAttribute reads and erases an attribute in one step.
func (d *MemoryDocument) TakeAttribute(selector, attr string) (string, bool) {
	v, ok := d.attrs[selector][attr]
	if ok {
		delete(d.attrs[selector], attr)
	}
	return v, ok
}

// MemoryContainer is the in-memory Container implementation. Rules are stored
// as their full inserted text.
type MemoryContainer struct {
	id    string
	nonce string
	rules []string
}

// ID implements Container.
func (c *MemoryContainer) ID() string { return c.id }

// Nonce returns the token the container was created with.
func (c *MemoryContainer) Nonce() string { return c.nonce }

// RuleCount implements Container.
func (c *MemoryContainer) RuleCount() int { return len(c.rules) }

// Rule returns the full text of the rule at index i.
func (c *MemoryContainer) Rule(i int) string { return c.rules[i] }

// Selector implements Container. Unlike a real CSSOM this does not
// canonicalize selector text, which matches the manager's expectation of
// comparing normalized text exactly.
func (c *MemoryContainer) Selector(i int) string {
	rule := c.rules[i]
	if brace := strings.IndexByte(rule, '{'); brace >= 0 {
		return strings.TrimSpace(rule[:brace])
	}
	return strings.TrimSpace(rule)
}

// PropertyNames implements Container.
func (c *MemoryContainer) PropertyNames(i int) []string {
	rule := c.rules[i]
	if brace := strings.IndexByte(rule, '{'); brace >= 0 {
		rule = rule[brace:]
	}
	return PropertyNames(rule)
}

// InsertRule implements Container.
func (c *MemoryContainer) InsertRule(rule string, i int) error {
	if i < 0 || i > len(c.rules) {
		return fmt.Errorf("insert index %d out of range (%d rules)", i, len(c.rules))
	}
	c.rules = append(c.rules, "")
	copy(c.rules[i+1:], c.rules[i:])
	c.rules[i] = rule
	return nil
}

// DeleteRule implements Container.
func (c *MemoryContainer) DeleteRule(i int) error {
	if i < 0 || i >= len(c.rules) {
		return fmt.Errorf("delete index %d out of range (%d rules)", i, len(c.rules))
	}
	c.rules = append(c.rules[:i], c.rules[i+1:]...)
	return nil
}

// CSSText returns the container's rules as a stylesheet snapshot, one rule
// per line. Useful when rendering server-side.
func (c *MemoryContainer) CSSText() string {
	return strings.Join(c.rules, "\n")
}
