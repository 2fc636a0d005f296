package rules

import (
	"fmt"

	"github.com/catnipandroid/blog-checker/internal/annotate"
	"github.com/catnipandroid/blog-checker/internal/docx"
)

// CheckHaedream flags paragraphs mentioning the 해드림 partner program, whose
// labeling is policy-sensitive. Case-sensitive.
func CheckHaedream(doc *docx.Document, keywords []string) []string {
	m := NewMatcher(keywords, false)
	count := 0
	for _, para := range doc.Paragraphs() {
		if m.Matches(para.Text()) {
			annotate.CommentBelow(doc, para, "해드림 표기 방식이 정책에 맞는지 확인이 필요합니다.", true)
			count++
		}
	}

	if count > 0 {
		return []string{fmt.Sprintf("- [룰] 해드림 언급 문단 %d개", count)}
	}
	return []string{"- [룰] 해드림 언급 없음"}
}
