package rules

import (
	"fmt"
	"strings"

	"github.com/catnipandroid/blog-checker/internal/annotate"
	"github.com/catnipandroid/blog-checker/internal/docx"
)

// CheckTitleKeyword verifies the first paragraph contains the configured
// required keyword. An unset keyword or an empty document is a valid
// "nothing to check" state, never an error. This check relies on the
// append-only invariant: paragraph index 0 stays the title for the whole
// processing pass.
func CheckTitleKeyword(doc *docx.Document, requiredKeyword string) []string {
	requiredKeyword = strings.TrimSpace(requiredKeyword)
	if requiredKeyword == "" {
		return []string{"- [룰] 제목 키워드 기준 미설정 (수동 체크)"}
	}

	paras := doc.Paragraphs()
	if len(paras) == 0 {
		return []string{"- [룰] 문단이 없어 제목을 확인할 수 없음"}
	}

	title := paras[0]
	if !strings.Contains(title.Text(), requiredKeyword) {
		annotate.CommentBelow(doc, title,
			fmt.Sprintf("제목에 지정된 키워드('%s')가 포함되어 있지 않습니다.", requiredKeyword), true)
		return []string{"- [룰] 제목 키워드 미포함"}
	}
	return []string{"- [룰] 제목에 지정 키워드 포함"}
}
