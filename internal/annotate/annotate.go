// Package annotate marks reviewed paragraphs and inserts reviewer commentary
// into the document.
package annotate

import (
	"strings"

	"github.com/catnipandroid/blog-checker/internal/docx"
)

// Visual styling for reviewer output.
const (
	// HighlightColor is the highlight applied to flagged paragraphs and
	// commentary text.
	HighlightColor = "yellow"
	// CommentColor is the text color of commentary paragraphs.
	CommentColor = "FF0000"
	// CommentPrefix tags every commentary paragraph the reviewer inserts.
	CommentPrefix = "[자동검수] "
)

// Highlight marks every run of the paragraph. Re-applying has no additional
// effect, so checks that flag the same paragraph stack safely.
func Highlight(p *docx.Paragraph) {
	for _, r := range p.Runs() {
		r.SetHighlight(HighlightColor)
	}
}

// CommentBelow inserts a styled commentary paragraph after the flagged one.
// Comments for the same paragraph accumulate in call order: insertion skips
// past commentary already attached below the target. When highlight is true
// the flagged paragraph itself is highlighted as well; the spelling-error
// path passes false.
func CommentBelow(doc *docx.Document, after *docx.Paragraph, msg string, highlight bool) {
	if highlight {
		Highlight(after)
	}
	p := doc.InsertAfter(lastCommentBelow(doc, after), "")
	styleComment(p.AddRun(CommentPrefix + msg))
}

func lastCommentBelow(doc *docx.Document, target *docx.Paragraph) *docx.Paragraph {
	paras := doc.Paragraphs()
	for i, p := range paras {
		if p != target {
			continue
		}
		last := p
		for j := i + 1; j < len(paras); j++ {
			if !strings.HasPrefix(paras[j].Text(), CommentPrefix) {
				break
			}
			last = paras[j]
		}
		return last
	}
	return target
}

// NoticeAppend adds a document-level commentary paragraph at the end of the
// body, used for findings that have no single offending paragraph.
func NoticeAppend(doc *docx.Document, msg string) {
	p := doc.AppendParagraph("")
	styleComment(p.AddRun(CommentPrefix + msg))
}

func styleComment(r *docx.Run) {
	r.SetBold(true)
	r.SetColor(CommentColor)
	r.SetHighlight(HighlightColor)
}
