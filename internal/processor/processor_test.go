package processor

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/catnipandroid/blog-checker/internal/annotate"
	"github.com/catnipandroid/blog-checker/internal/config"
	"github.com/catnipandroid/blog-checker/internal/docx"
	"github.com/catnipandroid/blog-checker/internal/logging"
	"github.com/catnipandroid/blog-checker/internal/review"
	"github.com/catnipandroid/blog-checker/internal/telemetry"
)

func buildDoc(t *testing.T, texts ...string) []byte {
	t.Helper()
	doc := docx.New()
	for _, txt := range texts {
		doc.AppendParagraph(txt)
	}
	data, err := doc.Save()
	require.NoError(t, err)
	return data
}

func baseRules() config.ReviewConfig {
	// empty lists so only the checks under test fire
	return config.ReviewConfig{
		MinImages:            1,
		RecommendedHashtags:  []string{},
		B2BKeywords:          []string{},
		BasicFeatureKeywords: []string{},
		ShopbyKeywords:       []string{},
		HaedreamKeywords:     []string{},
		ClientBrands:         []string{},
		CompetitorKeywords:   []string{},
		AvoidedPhrases:       []string{},
		SuspiciousKeywords:   []string{},
	}
}

func newProcessor() *Processor {
	reviewer := review.NewReviewer(nil, logging.Nop())
	return New(reviewer, logging.Nop(), telemetry.New("test"))
}

func TestProcessAnnotatesAndReports(t *testing.T) {
	data := buildDoc(t, "자사몰 창업 안내", "자세한 내용은 http://shop.example.com/a 에서 확인하세요.")

	res, err := newProcessor().Process(context.Background(), data, baseRules(), false)
	require.NoError(t, err)
	require.NotEmpty(t, res.ReviewID)

	assert.Contains(t, res.Report, "- [룰] UTM 누락 문단 1개")
	assert.Contains(t, res.Report, "- [LLM] LLM 검수 옵션이 꺼져 있습니다.")

	out, err := docx.Open(res.Document)
	require.NoError(t, err)

	var commentaries, summaries int
	var highlighted bool
	for _, p := range out.Paragraphs() {
		text := p.Text()
		if strings.HasPrefix(text, annotate.CommentPrefix) {
			commentaries++
		}
		if text == "[자동검수 요약]" {
			summaries++
		}
		if strings.Contains(text, "http://shop.example.com/a") {
			for _, r := range p.Runs() {
				if r.Highlight() == annotate.HighlightColor {
					highlighted = true
				}
			}
		}
	}
	assert.Equal(t, 1, commentaries, "one inline commentary for the UTM finding")
	assert.Equal(t, 1, summaries)
	assert.True(t, highlighted, "flagged paragraph should be highlighted")
}

func TestProcessSummaryContainsEveryReportLine(t *testing.T) {
	data := buildDoc(t, "평범한 제목", "평범한 본문입니다.")

	res, err := newProcessor().Process(context.Background(), data, baseRules(), false)
	require.NoError(t, err)

	out, err := docx.Open(res.Document)
	require.NoError(t, err)

	texts := make(map[string]bool)
	for _, p := range out.Paragraphs() {
		texts[p.Text()] = true
	}
	for _, line := range res.Report {
		assert.True(t, texts[line], "summary should contain %q", line)
	}
}

func TestProcessSummaryHeadingIsBold(t *testing.T) {
	data := buildDoc(t, "제목")

	res, err := newProcessor().Process(context.Background(), data, baseRules(), false)
	require.NoError(t, err)

	out, err := docx.Open(res.Document)
	require.NoError(t, err)

	found := false
	for _, p := range out.Paragraphs() {
		if p.Text() != "[자동검수 요약]" {
			continue
		}
		found = true
		for _, r := range p.Runs() {
			assert.True(t, r.Bold())
		}
	}
	assert.True(t, found)
}

func TestProcessNeverRemovesSourceParagraphs(t *testing.T) {
	texts := []string{"제목 문단", "카페24와 비교", "http://example.com 링크", "#해시태그 없음"}
	data := buildDoc(t, texts...)

	cfg := baseRules()
	cfg.CompetitorKeywords = []string{"카페24"}

	res, err := newProcessor().Process(context.Background(), data, cfg, false)
	require.NoError(t, err)

	out, err := docx.Open(res.Document)
	require.NoError(t, err)

	got := make([]string, 0, len(out.Paragraphs()))
	for _, p := range out.Paragraphs() {
		got = append(got, p.Text())
	}
	for _, want := range texts {
		assert.Contains(t, got, want)
	}
	assert.Greater(t, len(got), len(texts))
}

func TestProcessRejectsMalformedInput(t *testing.T) {
	p := newProcessor()

	_, err := p.Process(context.Background(), []byte("not a document"), baseRules(), false)
	require.Error(t, err)
	assert.ErrorIs(t, err, docx.ErrNotWordDocument)
}

func TestProcessWithoutCredentialReportsLLMSkipped(t *testing.T) {
	data := buildDoc(t, "제목", "본문")

	res, err := newProcessor().Process(context.Background(), data, baseRules(), true)
	require.NoError(t, err)

	assert.Contains(t, res.Report, "- [LLM] OPENAI_API_KEY 미설정으로 LLM 검수는 수행되지 않았습니다.")
}
