package review

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/catnipandroid/blog-checker/internal/annotate"
	"github.com/catnipandroid/blog-checker/internal/docx"
	"github.com/catnipandroid/blog-checker/internal/logging"
	"github.com/catnipandroid/blog-checker/internal/rules"
)

// minParagraphRunes is the absolute lower bound of the pre-filter: shorter
// paragraphs are never sent to the classifier, whatever they contain.
const minParagraphRunes = 15

// typoFallback is used when the verdict flags spelling errors but carries no
// example tokens.
const typoFallback = "대표적인 오류 예시를 확인해 주세요."

// Reviewer applies LLM verdicts to suspicious paragraphs.
type Reviewer struct {
	classifier TextClassifier
	log        logging.Logger
}

// NewReviewer creates a reviewer. A nil classifier means no credential is
// configured; Review then reports that and does nothing else.
func NewReviewer(classifier TextClassifier, log logging.Logger) *Reviewer {
	return &Reviewer{classifier: classifier, log: log}
}

// Review scans the document, classifies eligible paragraphs, annotates per
// verdict flag, and returns the report fragment. Disabled or credential-less
// runs return exactly one explanatory line and touch nothing. Classifier
// failures are logged and skipped per paragraph; the scan always finishes.
func (r *Reviewer) Review(ctx context.Context, doc *docx.Document, suspiciousKeywords []string, enabled bool) []string {
	if !enabled || r.classifier == nil {
		if r.classifier == nil {
			return []string{"- [LLM] OPENAI_API_KEY 미설정으로 LLM 검수는 수행되지 않았습니다."}
		}
		return []string{"- [LLM] LLM 검수 옵션이 꺼져 있습니다."}
	}

	suspicious := rules.NewMatcher(suspiciousKeywords, true)

	var b2bBasicCount, freeB2BMixCount, haedreamCount, typoCount int

	// Snapshot so commentary inserted along the way is not re-scanned.
	paragraphs := doc.Paragraphs()
	total := len(paragraphs)

	for idx, para := range paragraphs {
		text := strings.TrimSpace(para.Text())
		if text == "" || utf8.RuneCountInString(text) < minParagraphRunes {
			continue
		}
		if !suspicious.Matches(text) {
			continue
		}

		r.log.Debug("classifying paragraph", "index", idx+1, "total", total)

		verdict, err := r.classifier.Classify(ctx, text)
		if err != nil {
			r.log.Warn("paragraph classification failed, skipping", "index", idx+1, "error", err)
			continue
		}

		if verdict.B2BAsBasic {
			annotate.CommentBelow(doc, para,
				"LLM: B2B 기능이 '기본 제공'처럼 보이는 표현입니다. 커스터마이징이 필요하다는 점을 명시해야 합니다.", true)
			b2bBasicCount++
		}
		if verdict.FreeB2BMix {
			annotate.CommentBelow(doc, para,
				"LLM: 무료/0원 프로모션과 B2B 튜닝 내용이 섞여, B2B도 무료로 시작 가능한 것처럼 보일 수 있습니다.", true)
			freeB2BMixCount++
		}
		if verdict.HaedreamMislabel {
			annotate.CommentBelow(doc, para,
				"LLM: 해드림을 공식 에이전시/제작 대행사처럼 표현한 부분이 있습니다. ‘맞춤 제작 상담을 통해 공식 에이전시를 연결’하는 역할로 표시해야 합니다.", true)
			haedreamCount++
		}
		if verdict.TypoExists {
			// The typo path comments without highlighting the paragraph.
			exampleText := typoFallback
			if len(verdict.TypoExamples) > 0 {
				exampleText = strings.Join(verdict.TypoExamples, ", ")
			}
			annotate.CommentBelow(doc, para,
				fmt.Sprintf("LLM: 이 문단에 맞춤법/띄어쓰기/오탈자 문제가 있습니다. 예시: %s", exampleText), false)
			typoCount++
		}
	}

	return []string{
		fmt.Sprintf("- [LLM] B2B 기본기능처럼 보이는 문단: %d개", b2bBasicCount),
		fmt.Sprintf("- [LLM] 무료 프로모션과 B2B 튜닝이 혼용된 문단: %d개", freeB2BMixCount),
		fmt.Sprintf("- [LLM] 해드림 표기 오해 소지가 있는 문단: %d개", haedreamCount),
		fmt.Sprintf("- [LLM] 맞춤법/오탈자 지적된 문단: %d개", typoCount),
	}
}
