package rules

import (
	"fmt"
	"strings"

	"github.com/catnipandroid/blog-checker/internal/annotate"
	"github.com/catnipandroid/blog-checker/internal/docx"
)

// CheckUTMLinks flags paragraphs that contain a link without UTM tracking
// parameters: "http" present, "utm_" absent. Case-sensitive by policy.
func CheckUTMLinks(doc *docx.Document) []string {
	count := 0
	for _, para := range doc.Paragraphs() {
		text := para.Text()
		if strings.Contains(text, "http") && !strings.Contains(text, "utm_") {
			annotate.CommentBelow(doc, para, "UTM 파라미터가 누락되었습니다. (예: ?utm_source=...)", true)
			count++
		}
	}

	if count > 0 {
		return []string{fmt.Sprintf("- [룰] UTM 누락 문단 %d개", count)}
	}
	return []string{"- [룰] UTM 관련 문제 없음"}
}
