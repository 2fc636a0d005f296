package rules

import (
	"fmt"

	"github.com/catnipandroid/blog-checker/internal/annotate"
	"github.com/catnipandroid/blog-checker/internal/docx"
)

// CheckForbiddenTerms flags paragraphs mentioning client brand names or
// competitor names, each counted separately. A paragraph hitting both lists
// gets two comments. Case-insensitive.
func CheckForbiddenTerms(doc *docx.Document, clientBrands, competitors []string) []string {
	brandMatcher := NewMatcher(clientBrands, true)
	compMatcher := NewMatcher(competitors, true)

	clientCount := 0
	compCount := 0
	for _, para := range doc.Paragraphs() {
		text := para.Text()
		if brandMatcher.Matches(text) {
			annotate.CommentBelow(doc, para, "고객사 브랜드명 언급 금지 대상이 포함되어 있습니다.", true)
			clientCount++
		}
		if compMatcher.Matches(text) {
			annotate.CommentBelow(doc, para, "타사(경쟁사) 언급이 포함되어 있습니다.", true)
			compCount++
		}
	}

	return []string{
		fmt.Sprintf("- [룰] 고객사 브랜드 언급 문단: %d개", clientCount),
		fmt.Sprintf("- [룰] 타사/경쟁사 언급 문단: %d개", compCount),
	}
}
