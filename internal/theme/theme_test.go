package theme

import (
	"os"
	"path/filepath"
	"testing"
)

const sampleTheme = `name: midnight
container: theme-styles
rules:
  - selector: ":root"
    declarations: "--bg: black; --fg: white"
  - selector: ".card"
    declarations: "background: var(--bg)"
    container: card-styles
`

func TestParse(t *testing.T) {
	th, err := Parse([]byte(sampleTheme))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if th.Name != "midnight" {
		t.Errorf("Name = %q, want %q", th.Name, "midnight")
	}
	if len(th.Rules) != 2 {
		t.Fatalf("expected 2 rules, got %d", len(th.Rules))
	}
	if th.Rules[0].Selector != ":root" {
		t.Errorf("rule 0 selector = %q", th.Rules[0].Selector)
	}
}

func TestParse_RejectsMissingSelector(t *testing.T) {
	_, err := Parse([]byte("rules:\n  - declarations: \"color: red\"\n"))
	if err == nil {
		t.Error("expected error for rule without selector")
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.yaml")
	if err := os.WriteFile(path, []byte(sampleTheme), 0644); err != nil {
		t.Fatal(err)
	}

	th, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(th.Rules) != 2 {
		t.Errorf("expected 2 rules, got %d", len(th.Rules))
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestStreamRules_ContainerResolution(t *testing.T) {
	th, err := Parse([]byte(sampleTheme))
	if err != nil {
		t.Fatal(err)
	}

	rules := th.StreamRules()
	if rules[0].Container != "theme-styles" {
		t.Errorf("rule 0 container = %q, want theme default", rules[0].Container)
	}
	if rules[1].Container != "card-styles" {
		t.Errorf("rule 1 container = %q, want per-rule override", rules[1].Container)
	}
}
