// Package theme loads declarative style overrides from a YAML manifest. A
// theme is a list of rules a project wants applied at runtime on top of its
// static stylesheets; the dev server pushes them through the style stream
// like any other rule source.
package theme

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/recera/restyle/pkg/stream"
)

// Theme is a parsed theme manifest.
type Theme struct {
	// Name identifies the theme in logs.
	Name string `yaml:"name,omitempty"`

	// Container is the default managed container for the theme's rules.
	// Empty means the client default.
	Container string `yaml:"container,omitempty"`

	// Rules are applied in order; later rules win on cascade.
	Rules []Rule `yaml:"rules"`
}

// Rule is one theme entry.
type Rule struct {
	Selector     string `yaml:"selector"`
	Declarations string `yaml:"declarations"`

	// Container overrides the theme-level container for this rule.
	Container string `yaml:"container,omitempty"`
}

// Load reads and parses a theme manifest.
func Load(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read theme %s: %w", path, err)
	}
	return Parse(data)
}

// Parse parses manifest bytes.
func Parse(data []byte) (*Theme, error) {
	var t Theme
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("failed to parse theme: %w", err)
	}
	for i, r := range t.Rules {
		if r.Selector == "" {
			return nil, fmt.Errorf("theme rule %d has no selector", i)
		}
	}
	return &t, nil
}

// StreamRules converts the theme into stream frames, resolving per-rule
// container overrides.
func (t *Theme) StreamRules() []stream.Rule {
	rules := make([]stream.Rule, 0, len(t.Rules))
	for _, r := range t.Rules {
		container := r.Container
		if container == "" {
			container = t.Container
		}
		rules = append(rules, stream.Rule{
			Container:    container,
			Selector:     r.Selector,
			Declarations: r.Declarations,
		})
	}
	return rules
}
