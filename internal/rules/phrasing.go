package rules

import (
	"fmt"

	"github.com/catnipandroid/blog-checker/internal/annotate"
	"github.com/catnipandroid/blog-checker/internal/docx"
)

// CheckAvoidedPhrases flags paragraphs using internally discouraged wording
// ("쇼핑몰호스팅사", "전자상거래 플랫폼", "반응형 스킨" and the like).
// Case-insensitive.
func CheckAvoidedPhrases(doc *docx.Document, phrases []string) []string {
	m := NewMatcher(phrases, true)
	count := 0
	for _, para := range doc.Paragraphs() {
		if m.Matches(para.Text()) {
			annotate.CommentBelow(doc, para, "내부에서 지양하는 표현이 포함되어 있습니다. 문구 수정 필요.", true)
			count++
		}
	}

	return []string{fmt.Sprintf("- [룰] 지양 표현이 포함된 문단: %d개", count)}
}
