// Package rules implements the rule-based manuscript checks. Each check is a
// pure scan over the document that annotates offending paragraphs and returns
// its own report fragment; checks do not communicate with each other.
package rules

import (
	"strings"

	ahocorasick "github.com/cloudflare/ahocorasick"
)

// Matcher answers "does this text contain any of the configured keywords" in
// a single pass, with an optional case fold. A matcher built from an empty
// keyword list matches nothing, which the checks report as "no issues".
type Matcher struct {
	matcher *ahocorasick.Matcher
	fold    bool
}

// NewMatcher builds a substring matcher over the keywords. Blank entries are
// dropped. With foldCase set, matching is case-insensitive.
func NewMatcher(keywords []string, foldCase bool) *Matcher {
	cleaned := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		kw = strings.TrimSpace(kw)
		if kw == "" {
			continue
		}
		if foldCase {
			kw = strings.ToLower(kw)
		}
		cleaned = append(cleaned, kw)
	}
	m := &Matcher{fold: foldCase}
	if len(cleaned) > 0 {
		m.matcher = ahocorasick.NewStringMatcher(cleaned)
	}
	return m
}

// Matches reports whether any keyword occurs in text as a substring.
func (m *Matcher) Matches(text string) bool {
	if m == nil || m.matcher == nil {
		return false
	}
	if m.fold {
		text = strings.ToLower(text)
	}
	return len(m.matcher.Match([]byte(text))) > 0
}
