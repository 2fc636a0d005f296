package rules

import (
	"fmt"
	"strings"

	"github.com/catnipandroid/blog-checker/internal/annotate"
	"github.com/catnipandroid/blog-checker/internal/docx"
)

// CheckHashtags verifies every recommended hashtag appears somewhere in the
// document. Missing tags produce one document-level note, not per-paragraph
// annotations. Case-sensitive: hashtags are exact strings.
func CheckHashtags(doc *docx.Document, recommended []string) []string {
	fullText := doc.FullText()

	var missing []string
	for _, tag := range recommended {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		if !strings.Contains(fullText, tag) {
			missing = append(missing, tag)
		}
	}

	if len(missing) > 0 {
		annotate.NoticeAppend(doc, "아래 해시태그가 부족합니다: "+strings.Join(missing, ", "))
		return []string{fmt.Sprintf("- [룰] 해시태그 부족: %d개 (권장 해시태그 일부 누락)", len(missing))}
	}
	return []string{"- [룰] 해시태그 모두 포함됨"}
}
