package sheet

// Manager owns the managed style containers of a document. All rule
// reconciliation goes through a single Manager instance; constructing one per
// document (or per test) replaces the ambient module state a naive
// implementation would use.
//
// Operations are fire-and-forget: malformed CSS that the backend rejects is
// dropped silently, and a Manager never panics for normal inputs.
type Manager struct {
	doc        Document
	tokens     TokenSource
	defaultID  string
	containers map[string]Container
}

// Option configures a Manager.
type Option func(*Manager)

// WithTokenSource attaches a security-token source. Containers created after
// the source has captured a token carry it as their nonce attribute.
func WithTokenSource(ts TokenSource) Option {
	return func(m *Manager) { m.tokens = ts }
}

// WithDefaultContainer overrides the identifier used by Apply.
func WithDefaultContainer(id string) Option {
	return func(m *Manager) { m.defaultID = id }
}

// New creates a Manager over the given document.
func New(doc Document, opts ...Option) *Manager {
	m := &Manager{
		doc:        doc,
		defaultID:  DefaultContainerID,
		containers: make(map[string]Container),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// EnsureContainer returns the container for id, creating it on first use.
// Creation attaches the currently captured token, if any. Repeated calls with
// the same identifier are no-ops after the first.
//
// An id that collides with a foreign element already in the document is the
// caller's problem; behavior is undefined in that case.
func (m *Manager) EnsureContainer(id string) Container {
	if id == "" {
		id = m.defaultID
	}
	if c, ok := m.containers[id]; ok {
		return c
	}
	c, ok := m.doc.LookupContainer(id)
	if !ok {
		var token string
		if m.tokens != nil {
			token, _ = m.tokens.Token()
		}
		c = m.doc.CreateContainer(id, token)
	}
	m.containers[id] = c
	return c
}

// Apply reconciles one rule into the default container. See ApplyTo.
func (m *Manager) Apply(selector, declarations string) {
	m.ApplyTo(m.defaultID, selector, declarations)
}

// ApplyTo reconciles one rule into the container named by id.
//
// The selector and declarations are normalized first. If an existing rule has
// the same selector and declares the same set of property names (values are
// ignored for the comparison), that rule is deleted and the new rule is
// appended at the end, so an update always moves its rule to the highest
// cascade position. When the property sets differ, the old rule is kept and
// the new rule is appended alongside it. A rule identical down to its values
// still goes through delete+append: the resulting move to the end is
// observable against third-party rules and is intentional.
func (m *Manager) ApplyTo(id, selector, declarations string) {
	c := m.EnsureContainer(id)

	sel := NormalizeSelector(selector)
	block := NormalizeDeclarations(declarations)
	candidate := PropertyNames(block)

	// Last match wins: scan the whole container so repeated applies never
	// accumulate logically identical rules.
	stale := -1
	for i := 0; i < c.RuleCount(); i++ {
		if c.Selector(i) != sel {
			continue
		}
		if samePropertySet(candidate, c.PropertyNames(i)) {
			stale = i
		}
	}
	if stale >= 0 {
		_ = c.DeleteRule(stale)
	}

	// Invalid CSS is rejected by the backend without effect; accepted.
	_ = c.InsertRule(sel+" "+block, c.RuleCount())
}
