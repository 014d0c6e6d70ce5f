package render

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Module wraps rendered stanzas in a namespace module file. docURL is the
// namespace's reference documentation link; its #fragment, which anchors
// a single endpoint, is stripped for the module-level link.
func Module(namespace, docURL string, stanzas []string) string {
	var b strings.Builder

	b.WriteString("# frozen_string_literal: true\n\n")
	b.WriteString("module Octogen\n")
	b.WriteString("  class Client\n")
	b.WriteString("    # Methods for the " + moduleName(namespace) + " API\n")
	if base := stripFragment(docURL); base != "" {
		b.WriteString("    #\n")
		b.WriteString("    # @see " + base + "\n")
	}
	b.WriteString("    module " + moduleName(namespace) + "\n")

	for i, stanza := range stanzas {
		if i > 0 {
			b.WriteString("\n")
		}
		for _, line := range strings.Split(strings.TrimRight(stanza, "\n"), "\n") {
			if line == "" {
				b.WriteString("\n")
				continue
			}
			b.WriteString("      " + line + "\n")
		}
	}

	b.WriteString("    end\n")
	b.WriteString("  end\n")
	b.WriteString("end\n")
	return b.String()
}

// moduleName converts a namespace directory name to CamelCase:
// "issue_comments" becomes "IssueComments".
func moduleName(namespace string) string {
	caser := cases.Title(language.English)
	parts := strings.Split(namespace, "_")
	for i, part := range parts {
		parts[i] = caser.String(part)
	}
	return strings.Join(parts, "")
}

func stripFragment(url string) string {
	if i := strings.Index(url, "#"); i >= 0 {
		return url[:i]
	}
	return url
}
