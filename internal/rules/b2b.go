package rules

import (
	"fmt"

	"github.com/catnipandroid/blog-checker/internal/annotate"
	"github.com/catnipandroid/blog-checker/internal/docx"
)

// CheckB2BBasicFeature flags paragraphs where a B2B keyword and a
// "basic feature" phrasing keyword co-occur, which can read as if paid B2B
// functionality came built in. Both lists match case-sensitively and the
// co-occurrence must be within a single paragraph.
func CheckB2BBasicFeature(doc *docx.Document, b2bKeywords, basicKeywords []string) []string {
	b2b := NewMatcher(b2bKeywords, false)
	basic := NewMatcher(basicKeywords, false)

	count := 0
	for _, para := range doc.Paragraphs() {
		text := para.Text()
		if b2b.Matches(text) && basic.Matches(text) {
			annotate.CommentBelow(doc, para, "B2B 기능이 기본 제공된다는 오해를 줄 수 있는 표현입니다.", true)
			count++
		}
	}

	if count > 0 {
		return []string{fmt.Sprintf("- [룰] B2B를 기본 기능처럼 표현한 문단 %d개", count)}
	}
	return []string{"- [룰] B2B 기본 기능 오해 표현 없음"}
}
