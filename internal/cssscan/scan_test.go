package cssscan

import (
	"reflect"
	"testing"
)

func TestScan(t *testing.T) {
	tests := []struct {
		name     string
		css      string
		expected []Rule
	}{
		{
			name:     "single rule",
			css:      `.card { color: red; }`,
			expected: []Rule{{Selector: ".card", Declarations: " color: red; "}},
		},
		{
			name: "multiple rules in order",
			css: `:root { --bg: white; }
body { margin: 0; }`,
			expected: []Rule{
				{Selector: ":root", Declarations: " --bg: white; "},
				{Selector: "body", Declarations: " margin: 0; "},
			},
		},
		{
			name:     "comments stripped",
			css:      `/* header */ h1 { /* inline */ font-size: 2rem; }`,
			expected: []Rule{{Selector: "h1", Declarations: "  font-size: 2rem; "}},
		},
		{
			name: "media query skipped",
			css: `@media (min-width: 768px) { .card { width: 50%; } }
.card { width: 100%; }`,
			expected: []Rule{{Selector: ".card", Declarations: " width: 100%; "}},
		},
		{
			name:     "import discarded",
			css:      `@import "base.css"; body { margin: 0; }`,
			expected: []Rule{{Selector: "body", Declarations: " margin: 0; "}},
		},
		{
			name:     "empty input",
			css:      "",
			expected: nil,
		},
		{
			name:     "unterminated block",
			css:      `.card { color: red;`,
			expected: []Rule{{Selector: ".card", Declarations: " color: red;"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Scan(tt.css)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Scan(%q) = %#v, want %#v", tt.css, got, tt.expected)
			}
		})
	}
}
