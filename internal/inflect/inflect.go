// Package inflect provides the English singularization used when deriving
// resource and parameter names from path segments.
package inflect

import "strings"

// Irregular plurals that appear in API route vocabulary.
// Keys are plural, values are singular.
var irregulars = map[string]string{
	"statuses":     "status",
	"branches":     "branch",
	"searches":     "search",
	"repositories": "repository",
	"indices":      "index",
	"media":        "medium",
	"people":       "person",
	"children":     "child",
}

// Singularize returns the singular form of a word. Compound snake_case
// words are singularized on their final component, so "issue_comments"
// becomes "issue_comment".
func Singularize(word string) string {
	if word == "" {
		return ""
	}

	if i := strings.LastIndex(word, "_"); i >= 0 {
		return word[:i+1] + Singularize(word[i+1:])
	}

	lower := strings.ToLower(word)

	if singular, ok := irregulars[lower]; ok {
		if word[0] >= 'A' && word[0] <= 'Z' {
			return strings.ToUpper(singular[:1]) + singular[1:]
		}
		return singular
	}

	// "ies" → "y" (repositories handled above; policies → policy)
	if strings.HasSuffix(lower, "ies") && len(word) > 3 {
		return word[:len(word)-3] + "y"
	}

	// "es" after s, x, z: statuses and branches are in the irregular
	// table; "caches" must fall through to the plain "s" rule below
	if strings.HasSuffix(lower, "ses") ||
		strings.HasSuffix(lower, "xes") ||
		strings.HasSuffix(lower, "zes") {
		return word[:len(word)-2]
	}

	if strings.HasSuffix(lower, "s") && !strings.HasSuffix(lower, "ss") {
		return word[:len(word)-1]
	}

	return word
}
