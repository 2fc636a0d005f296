package annotate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/catnipandroid/blog-checker/internal/docx"
)

func TestHighlightMarksAllRuns(t *testing.T) {
	doc := docx.New()
	p := doc.AppendParagraph("앞부분")
	p.AddRun(" 뒷부분")

	Highlight(p)

	for _, r := range p.Runs() {
		assert.Equal(t, HighlightColor, r.Highlight())
	}
}

func TestCommentBelowInsertsAfterTarget(t *testing.T) {
	doc := docx.New()
	first := doc.AppendParagraph("문제 문단")
	doc.AppendParagraph("다음 문단")

	CommentBelow(doc, first, "UTM 파라미터가 누락되었습니다.", true)

	paras := doc.Paragraphs()
	require.Len(t, paras, 3)
	assert.Equal(t, "문제 문단", paras[0].Text())
	assert.True(t, strings.HasPrefix(paras[1].Text(), CommentPrefix))
	assert.Contains(t, paras[1].Text(), "UTM 파라미터가 누락되었습니다.")
	assert.Equal(t, "다음 문단", paras[2].Text())

	// The flagged paragraph is highlighted, the comment styled.
	assert.Equal(t, HighlightColor, paras[0].Runs()[0].Highlight())
	comment := paras[1].Runs()[0]
	assert.True(t, comment.Bold())
	assert.Equal(t, CommentColor, comment.Color())
	assert.Equal(t, HighlightColor, comment.Highlight())
}

func TestCommentBelowWithoutHighlight(t *testing.T) {
	doc := docx.New()
	target := doc.AppendParagraph("맞춤법 문단")

	CommentBelow(doc, target, "맞춤법 문제가 있습니다.", false)

	assert.Empty(t, target.Runs()[0].Highlight())
	assert.Contains(t, doc.Paragraphs()[1].Text(), "맞춤법 문제가 있습니다.")
}

func TestRepeatedAnnotationsAccumulateInOrder(t *testing.T) {
	doc := docx.New()
	target := doc.AppendParagraph("여러 규칙 위반 문단")

	CommentBelow(doc, target, "첫 번째 지적", true)
	CommentBelow(doc, target, "두 번째 지적", true)

	paras := doc.Paragraphs()
	require.Len(t, paras, 3)
	assert.Contains(t, paras[1].Text(), "첫 번째 지적")
	assert.Contains(t, paras[2].Text(), "두 번째 지적")
}

func TestNoticeAppendAddsTrailingComment(t *testing.T) {
	doc := docx.New()
	doc.AppendParagraph("본문")

	NoticeAppend(doc, "아래 해시태그가 부족합니다: #자사몰제작")

	paras := doc.Paragraphs()
	require.Len(t, paras, 2)
	assert.Equal(t, CommentPrefix+"아래 해시태그가 부족합니다: #자사몰제작", paras[1].Text())
}
