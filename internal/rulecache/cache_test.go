package rulecache

import (
	"testing"
)

func TestCache_DetectsChanges(t *testing.T) {
	c := New()

	rules, changed := c.Update("app.css", []byte(`.card { color: red; }`))
	if !changed {
		t.Fatal("first Update must report a change")
	}
	if len(rules) != 1 || rules[0].Selector != ".card" {
		t.Fatalf("unexpected rules: %+v", rules)
	}

	// Same content: no change, served from cache.
	if _, changed := c.Update("app.css", []byte(`.card { color: red; }`)); changed {
		t.Error("identical content must not report a change")
	}

	// New content: change again.
	rules, changed = c.Update("app.css", []byte(`.card { color: blue; }`))
	if !changed {
		t.Error("modified content must report a change")
	}
	if rules[0].Declarations != " color: blue; " {
		t.Errorf("rules not rescanned: %+v", rules)
	}
}

func TestCache_TracksPathsIndependently(t *testing.T) {
	c := New()

	c.Update("a.css", []byte(`body { margin: 0; }`))
	c.Update("b.css", []byte(`body { margin: 0; }`))

	if c.Len() != 2 {
		t.Errorf("Len() = %d, want 2", c.Len())
	}
	if _, ok := c.Rules("a.css"); !ok {
		t.Error("expected rules for a.css")
	}
	if _, ok := c.Rules("missing.css"); ok {
		t.Error("expected no rules for unknown path")
	}
}

func TestCache_Invalidate(t *testing.T) {
	c := New()

	c.Update("app.css", []byte(`body { margin: 0; }`))
	c.Invalidate("app.css")

	if _, changed := c.Update("app.css", []byte(`body { margin: 0; }`)); !changed {
		t.Error("Update after Invalidate must report a change")
	}
}

func TestCache_Stats(t *testing.T) {
	c := New()

	c.Update("app.css", []byte(`body { margin: 0; }`)) // miss
	c.Update("app.css", []byte(`body { margin: 0; }`)) // hit
	c.Update("app.css", []byte(`body { margin: 1px; }`)) // miss

	stats := c.GetStats()
	if stats.Hits != 1 || stats.Misses != 2 {
		t.Errorf("stats = %+v, want 1 hit, 2 misses", stats)
	}
}
