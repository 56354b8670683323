package sheet

import "strings"

// NormalizeSelector collapses every run of whitespace in selector to a single
// space and trims outer whitespace. It is idempotent and performs no other
// transformation.
func NormalizeSelector(selector string) string {
	return strings.Join(strings.Fields(selector), " ")
}

// NormalizeDeclarations formats a declaration list into a canonical block:
// literal braces are stripped, outer whitespace is trimmed, a terminating
// semicolon is appended if the final declaration lacks one, internal
// whitespace runs collapse to single spaces, and the result is wrapped as
// "{ body }" with exactly one space inside each brace. It is idempotent.
//
// Malformed CSS is not validated, only whitespace/brace normalized.
func NormalizeDeclarations(declarations string) string {
	body := strings.NewReplacer("{", "", "}", "").Replace(declarations)
	body = strings.TrimSpace(body)
	if !strings.HasSuffix(body, ";") {
		body += ";"
	}
	body = strings.Join(strings.Fields(body), " ")
	return "{ " + body + " }"
}

// PropertyNames extracts the declared property names from a declaration
// block, in encounter order. A property name is a run of non-whitespace
// terminated by a colon that is itself followed by whitespace or the end of
// input; a colon glued to its value (as in url schemes) does not qualify.
// Values are never inspected.
func PropertyNames(declarations string) []string {
	var names []string
	for _, field := range strings.Fields(declarations) {
		if len(field) > 1 && strings.HasSuffix(field, ":") {
			names = append(names, strings.TrimSuffix(field, ":"))
		}
	}
	return names
}

// samePropertySet reports whether two property-name lists describe the same
// set: equal length and every candidate name present in existing. Order is
// ignored.
func samePropertySet(candidate, existing []string) bool {
	if len(candidate) != len(existing) {
		return false
	}
	for _, name := range candidate {
		found := false
		for _, other := range existing {
			if name == other {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
