// Package docx reads, mutates, and writes Word documents (OPC packages with
// a WordprocessingML main part). Only the subset the review engine needs is
// modelled: body-level paragraphs, their runs, run formatting (bold, color,
// highlight), and inline drawings. Everything else round-trips untouched as
// raw XML so the output stays a structural copy of the input.
package docx

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Document is one opened package. It is owned by a single review request and
// must not be shared across goroutines.
type Document struct {
	parts   []part // every package part in original order
	docPath string // name of the main document part within the package

	// Parsed word/document.xml.
	src     []byte // original main part bytes
	prolog  []byte // everything before the root element (XML declaration)
	rootTag []byte // raw root start tag with its namespace declarations
	bodyTag []byte // raw body start tag
	body    []bodyItem

	inlineMedia int
}

type part struct {
	name string
	data []byte
}

// bodyItem is one body-level child: either a modelled paragraph or a raw
// element preserved verbatim (tables, sectPr, bookmarks).
type bodyItem struct {
	para *Paragraph
	raw  []byte
}

// Paragraph is the addressable unit for annotation. Identity is positional
// within the document body.
type Paragraph struct {
	doc     *Document
	raw     []byte // original element bytes; nil for paragraphs created here
	openTag []byte // raw start tag; nil for new paragraphs
	pPr     []byte // raw paragraph properties element, preserved verbatim
	kids    []pChild
	dirty   bool
}

type pChild struct {
	run  *Run
	link *hyperlink
	raw  []byte
}

// hyperlink wraps runs nested under w:hyperlink so link text participates in
// matching and highlighting.
type hyperlink struct {
	raw     []byte
	openTag []byte
	runs    []*Run
}

// Run is a contiguous formatted span within a paragraph.
type Run struct {
	para *Paragraph
	raw  []byte // original element bytes; nil for runs created here

	content  []runChild
	rprExtra [][]byte // rPr children other than b/color/highlight, kept as-is

	boldSet   bool
	bold      bool
	color     string // hex RGB like "FF0000", empty means inherited
	highlight string // highlight color name like "yellow", empty means none

	dirty bool
}

type runChild struct {
	text  *string
	raw   []byte
	isTab bool
}

// Paragraphs returns the body-level paragraphs in document order.
func (d *Document) Paragraphs() []*Paragraph {
	out := make([]*Paragraph, 0, len(d.body))
	for _, item := range d.body {
		if item.para != nil {
			out = append(out, item.para)
		}
	}
	return out
}

// InlineMediaCount returns the number of inline drawings (embedded images)
// found in the main document part.
func (d *Document) InlineMediaCount() int {
	return d.inlineMedia
}

// FullText returns all paragraph texts joined by newlines.
func (d *Document) FullText() string {
	paras := d.Paragraphs()
	texts := make([]string, len(paras))
	for i, p := range paras {
		texts[i] = p.Text()
	}
	return strings.Join(texts, "\n")
}

// AppendParagraph adds a new paragraph at the end of the body, before a
// trailing section break if one exists, and returns it. Pass an empty string
// to create a paragraph without runs.
func (d *Document) AppendParagraph(text string) *Paragraph {
	p := d.newParagraph(text)
	idx := len(d.body)
	if idx > 0 && isSectPr(d.body[idx-1].raw) {
		idx--
	}
	d.body = append(d.body[:idx], append([]bodyItem{{para: p}}, d.body[idx:]...)...)
	return p
}

// InsertAfter adds a new paragraph immediately following the given one.
// If after is not part of this document the paragraph is appended instead.
func (d *Document) InsertAfter(after *Paragraph, text string) *Paragraph {
	for i, item := range d.body {
		if item.para == after {
			p := d.newParagraph(text)
			d.body = append(d.body[:i+1], append([]bodyItem{{para: p}}, d.body[i+1:]...)...)
			return p
		}
	}
	return d.AppendParagraph(text)
}

func (d *Document) newParagraph(text string) *Paragraph {
	p := &Paragraph{doc: d, dirty: true}
	if text != "" {
		p.AddRun(text)
	}
	return p
}

func isSectPr(raw []byte) bool {
	if raw == nil {
		return false
	}
	s := string(raw)
	return strings.HasPrefix(s, "<w:sectPr") || strings.HasPrefix(s, "<sectPr")
}

// Text returns the concatenated run text of the paragraph, NFC-normalized so
// keyword matching behaves consistently for Korean input.
func (p *Paragraph) Text() string {
	var sb strings.Builder
	for _, kid := range p.kids {
		switch {
		case kid.run != nil:
			sb.WriteString(kid.run.Text())
		case kid.link != nil:
			for _, r := range kid.link.runs {
				sb.WriteString(r.Text())
			}
		}
	}
	return norm.NFC.String(sb.String())
}

// Runs returns every run in the paragraph, including runs nested inside
// hyperlinks, in document order.
func (p *Paragraph) Runs() []*Run {
	var out []*Run
	for _, kid := range p.kids {
		switch {
		case kid.run != nil:
			out = append(out, kid.run)
		case kid.link != nil:
			out = append(out, kid.link.runs...)
		}
	}
	return out
}

// AddRun appends a new run with the given text and returns it.
func (p *Paragraph) AddRun(text string) *Run {
	r := &Run{para: p, dirty: true}
	if text != "" {
		t := text
		r.content = append(r.content, runChild{text: &t})
	}
	p.kids = append(p.kids, pChild{run: r})
	p.markDirty()
	return r
}

func (p *Paragraph) markDirty() {
	p.dirty = true
}

// Text returns the concatenated text of the run.
func (r *Run) Text() string {
	var sb strings.Builder
	for _, c := range r.content {
		if c.text != nil {
			sb.WriteString(*c.text)
		}
	}
	return sb.String()
}

// Bold reports whether bold is explicitly set on the run.
func (r *Run) Bold() bool {
	return r.boldSet && r.bold
}

// Color returns the explicit run color (hex RGB) or "".
func (r *Run) Color() string {
	return r.color
}

// Highlight returns the run highlight color name or "".
func (r *Run) Highlight() string {
	return r.highlight
}

// SetBold sets or clears bold on the run.
func (r *Run) SetBold(b bool) {
	if r.boldSet && r.bold == b {
		return
	}
	r.boldSet = true
	r.bold = b
	r.markDirty()
}

// SetColor sets the run text color as hex RGB, e.g. "FF0000".
func (r *Run) SetColor(hex string) {
	if r.color == hex {
		return
	}
	r.color = hex
	r.markDirty()
}

// SetHighlight sets the run highlight color, e.g. "yellow". Idempotent.
func (r *Run) SetHighlight(color string) {
	if r.highlight == color {
		return
	}
	r.highlight = color
	r.markDirty()
}

func (r *Run) markDirty() {
	r.dirty = true
	if r.para != nil {
		r.para.markDirty()
	}
}
