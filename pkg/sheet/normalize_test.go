package sheet

import (
	"reflect"
	"testing"
)

func TestNormalizeSelector(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"already normal", "a b", "a b"},
		{"collapses runs", "  a   b", "a b"},
		{"tabs and newlines", "div\t>\n.card", "div > .card"},
		{"single token", ":root", ":root"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeSelector(tt.input)
			if got != tt.expected {
				t.Errorf("NormalizeSelector(%q) = %q, want %q", tt.input, got, tt.expected)
			}
			// Normalization must be idempotent
			if again := NormalizeSelector(got); again != got {
				t.Errorf("not idempotent: %q -> %q", got, again)
			}
		})
	}
}

func TestNormalizeDeclarations(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			"missing semicolon",
			"color:red;box-shadow:1px 1px",
			"{ color:red;box-shadow:1px 1px; }",
		},
		{
			"already wrapped",
			"{ color: red; }",
			"{ color: red; }",
		},
		{
			"extra whitespace",
			"  color:   red ;  ",
			"{ color: red ; }",
		},
		{
			"multiple declarations",
			"color: red; font-size: 12px",
			"{ color: red; font-size: 12px; }",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeDeclarations(tt.input)
			if got != tt.expected {
				t.Errorf("NormalizeDeclarations(%q) = %q, want %q", tt.input, got, tt.expected)
			}
			if again := NormalizeDeclarations(got); again != got {
				t.Errorf("not idempotent: %q -> %q", got, again)
			}
		})
	}
}

func TestPropertyNames(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			"spaced declarations",
			"{ color: red; font-size: 12px; }",
			[]string{"color", "font-size"},
		},
		{
			"colon glued to value is not a property",
			"{ color:red; }",
			nil,
		},
		{
			"url value colon ignored",
			"{ background: url(http://example.com/x.png); }",
			[]string{"background"},
		},
		{
			"encounter order preserved",
			"{ z-index: 1; color: red; }",
			[]string{"z-index", "color"},
		},
		{
			"empty block",
			"{ ; }",
			nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PropertyNames(tt.input)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("PropertyNames(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestSamePropertySet(t *testing.T) {
	tests := []struct {
		name      string
		candidate []string
		existing  []string
		same      bool
	}{
		{"equal in order", []string{"color", "width"}, []string{"color", "width"}, true},
		{"equal out of order", []string{"width", "color"}, []string{"color", "width"}, true},
		{"candidate missing one", []string{"color"}, []string{"color", "width"}, false},
		{"existing missing one", []string{"color", "width"}, []string{"color"}, false},
		{"disjoint", []string{"color"}, []string{"width"}, false},
		{"both empty", nil, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := samePropertySet(tt.candidate, tt.existing); got != tt.same {
				t.Errorf("samePropertySet(%v, %v) = %v, want %v", tt.candidate, tt.existing, got, tt.same)
			}
		})
	}
}
