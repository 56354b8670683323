// Package cssscan splits stylesheet source into top-level rules for
// streaming. It is not a CSS parser: it strips comments, tracks brace depth,
// and hands each flat rule over as raw selector and declaration text. At-rules
// and their nested blocks are skipped; the reconciliation core only deals in
// flat rules.
package cssscan

import "strings"

// Rule is one top-level rule found in a stylesheet source.
type Rule struct {
	Selector     string
	Declarations string
}

// Scan extracts the top-level rules of css in source order.
func Scan(css string) []Rule {
	css = stripComments(css)

	var rules []Rule
	var selector strings.Builder

	i := 0
	for i < len(css) {
		switch css[i] {
		case '{':
			block, next := readBlock(css, i)
			sel := strings.TrimSpace(selector.String())
			selector.Reset()
			if sel != "" && !strings.HasPrefix(sel, "@") {
				rules = append(rules, Rule{Selector: sel, Declarations: block})
			}
			i = next

		case ';':
			// Block-less at-rule such as @import; discard.
			selector.Reset()
			i++

		case '}':
			// Stray closing brace
			i++

		default:
			selector.WriteByte(css[i])
			i++
		}
	}

	return rules
}

// readBlock consumes a brace-balanced block starting at the '{' at position
// start and returns its inner text plus the index after the closing brace.
func readBlock(css string, start int) (string, int) {
	depth := 0
	for i := start; i < len(css); i++ {
		switch css[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return css[start+1 : i], i + 1
			}
		}
	}
	// Unterminated block; take what is there.
	return css[start+1:], len(css)
}

// stripComments removes /* ... */ comments.
func stripComments(css string) string {
	var result strings.Builder
	i := 0
	for i < len(css) {
		if i < len(css)-1 && css[i] == '/' && css[i+1] == '*' {
			i += 2
			for i < len(css)-1 {
				if css[i] == '*' && css[i+1] == '/' {
					i += 2
					break
				}
				i++
			}
		} else {
			result.WriteByte(css[i])
			i++
		}
	}
	return result.String()
}
