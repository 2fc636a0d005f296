package rules

import (
	"fmt"

	"github.com/catnipandroid/blog-checker/internal/annotate"
	"github.com/catnipandroid/blog-checker/internal/docx"
)

// CheckShopby flags any paragraph mentioning Shopby. Shopby content is not
// allowed in client blog manuscripts at all. Case-insensitive.
func CheckShopby(doc *docx.Document, keywords []string) []string {
	m := NewMatcher(keywords, true)
	count := 0
	for _, para := range doc.Paragraphs() {
		if m.Matches(para.Text()) {
			annotate.CommentBelow(doc, para, "샵바이(Shopby) 관련 내용은 블로그에 포함될 수 없습니다.", true)
			count++
		}
	}

	if count > 0 {
		return []string{fmt.Sprintf("- [룰] 샵바이 언급 문단 %d개", count)}
	}
	return []string{"- [룰] 샵바이 언급 없음"}
}
