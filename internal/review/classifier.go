// Package review runs the LLM pass over a manuscript: a keyword pre-filter
// selects suspicious paragraphs, an external text classifier judges each one,
// and verdicts are applied as annotations.
package review

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// maxTypoExamples bounds how many example tokens a verdict carries.
const maxTypoExamples = 3

// Verdict is the structured result of one classification call for one
// paragraph. Consumed immediately to decide annotation, not retained.
type Verdict struct {
	B2BAsBasic       bool     `json:"b2b_as_basic"`
	FreeB2BMix       bool     `json:"free_b2b_mix"`
	HaedreamMislabel bool     `json:"haedream_mislabel"`
	TypoExists       bool     `json:"typo_exists"`
	TypoExamples     []string `json:"typo_examples"`
}

// TextClassifier is the capability the reviewer depends on. Implementations
// judge one paragraph of text and return a verdict, or an error when no
// verdict could be obtained. Errors are recovered per paragraph and never
// abort the scan.
type TextClassifier interface {
	Classify(ctx context.Context, text string) (*Verdict, error)
}

// ErrBadResponse indicates the classifier responded with something that is
// not a verdict. Treated the same as a transport failure: skip the paragraph.
var ErrBadResponse = errors.New("unparseable classifier response")

// parseVerdict extracts a Verdict from raw model output. Models sometimes
// wrap the JSON in a markdown code fence; that wrapper is tolerated.
func parseVerdict(raw string) (*Verdict, error) {
	s := strings.TrimSpace(raw)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSuffix(strings.TrimSpace(s), "```")
		s = strings.TrimSpace(s)
	}

	var v Verdict
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadResponse, err)
	}
	if len(v.TypoExamples) > maxTypoExamples {
		v.TypoExamples = v.TypoExamples[:maxTypoExamples]
	}
	return &v, nil
}
