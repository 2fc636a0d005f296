package docx

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

const mainPartName = "word/document.xml"

// ErrNotWordDocument indicates the input bytes are not a usable .docx package.
var ErrNotWordDocument = errors.New("not a word document")

// Open parses raw .docx bytes into a Document. Malformed input fails the
// whole call; no partially parsed document is returned.
func Open(data []byte) (*Document, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotWordDocument, err)
	}

	doc := &Document{docPath: mainPartName}
	for _, f := range zr.File {
		rc, openErr := f.Open()
		if openErr != nil {
			return nil, fmt.Errorf("open package part %s: %w", f.Name, openErr)
		}
		content, readErr := io.ReadAll(rc)
		rc.Close()
		if readErr != nil {
			return nil, fmt.Errorf("read package part %s: %w", f.Name, readErr)
		}
		doc.parts = append(doc.parts, part{name: f.Name, data: content})
		if f.Name == mainPartName {
			doc.src = content
		}
	}
	if doc.src == nil {
		return nil, fmt.Errorf("%w: missing %s", ErrNotWordDocument, mainPartName)
	}

	if err := doc.parseMainPart(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotWordDocument, err)
	}
	return doc, nil
}

// parser walks the main part token by token. Subtrees the model does not
// cover are captured as raw byte slices via decoder input offsets, so they
// re-serialize byte-for-byte.
type parser struct {
	dec *xml.Decoder
	src []byte
	doc *Document
}

func (d *Document) parseMainPart() error {
	p := &parser{
		dec: xml.NewDecoder(bytes.NewReader(d.src)),
		src: d.src,
		doc: d,
	}
	return p.parseDocument()
}

func (p *parser) parseDocument() error {
	// Scan to the root element, preserving the prolog verbatim.
	for {
		off := p.dec.InputOffset()
		tok, err := p.dec.Token()
		if err != nil {
			return fmt.Errorf("parse document root: %w", err)
		}
		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		if start.Name.Local != "document" {
			return fmt.Errorf("unexpected root element %q", start.Name.Local)
		}
		p.doc.prolog = p.src[:off]
		p.doc.rootTag = p.src[off:p.dec.InputOffset()]
		break
	}

	// Expect the body next.
	for {
		off := p.dec.InputOffset()
		tok, err := p.dec.Token()
		if err != nil {
			return fmt.Errorf("parse document body: %w", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local != "body" {
				if err := p.dec.Skip(); err != nil {
					return err
				}
				continue
			}
			p.doc.bodyTag = p.src[off:p.dec.InputOffset()]
			return p.parseBody()
		case xml.EndElement:
			return errors.New("document has no body")
		}
	}
}

func (p *parser) parseBody() error {
	for {
		off := p.dec.InputOffset()
		tok, err := p.dec.Token()
		if err != nil {
			return fmt.Errorf("parse body: %w", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "p" {
				para, perr := p.parseParagraph(off)
				if perr != nil {
					return perr
				}
				p.doc.body = append(p.doc.body, bodyItem{para: para})
				continue
			}
			raw, rerr := p.rawElement(off)
			if rerr != nil {
				return rerr
			}
			p.countMedia(raw)
			p.doc.body = append(p.doc.body, bodyItem{raw: raw})
		case xml.EndElement:
			// </w:body>; the rest of the part is regenerated on save.
			return nil
		}
	}
}

func (p *parser) parseParagraph(off int64) (*Paragraph, error) {
	para := &Paragraph{doc: p.doc, openTag: p.src[off:p.dec.InputOffset()]}
	for {
		coff := p.dec.InputOffset()
		tok, err := p.dec.Token()
		if err != nil {
			return nil, fmt.Errorf("parse paragraph: %w", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "pPr":
				raw, rerr := p.rawElement(coff)
				if rerr != nil {
					return nil, rerr
				}
				para.pPr = raw
			case "r":
				run, rerr := p.parseRun(para, coff)
				if rerr != nil {
					return nil, rerr
				}
				para.kids = append(para.kids, pChild{run: run})
			case "hyperlink":
				link, rerr := p.parseHyperlink(para, coff)
				if rerr != nil {
					return nil, rerr
				}
				para.kids = append(para.kids, pChild{link: link})
			default:
				raw, rerr := p.rawElement(coff)
				if rerr != nil {
					return nil, rerr
				}
				p.countMedia(raw)
				para.kids = append(para.kids, pChild{raw: raw})
			}
		case xml.EndElement:
			para.raw = p.src[off:p.dec.InputOffset()]
			return para, nil
		}
	}
}

func (p *parser) parseHyperlink(para *Paragraph, off int64) (*hyperlink, error) {
	link := &hyperlink{openTag: p.src[off:p.dec.InputOffset()]}
	for {
		coff := p.dec.InputOffset()
		tok, err := p.dec.Token()
		if err != nil {
			return nil, fmt.Errorf("parse hyperlink: %w", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "r" {
				run, rerr := p.parseRun(para, coff)
				if rerr != nil {
					return nil, rerr
				}
				link.runs = append(link.runs, run)
				continue
			}
			if _, rerr := p.rawElement(coff); rerr != nil {
				return nil, rerr
			}
		case xml.EndElement:
			link.raw = p.src[off:p.dec.InputOffset()]
			return link, nil
		}
	}
}

func (p *parser) parseRun(para *Paragraph, off int64) (*Run, error) {
	run := &Run{para: para}
	for {
		coff := p.dec.InputOffset()
		tok, err := p.dec.Token()
		if err != nil {
			return nil, fmt.Errorf("parse run: %w", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "rPr":
				if rerr := p.parseRunProps(run); rerr != nil {
					return nil, rerr
				}
			case "t":
				text, terr := p.elementText()
				if terr != nil {
					return nil, terr
				}
				run.content = append(run.content, runChild{text: &text})
			default:
				raw, rerr := p.rawElement(coff)
				if rerr != nil {
					return nil, rerr
				}
				p.countMedia(raw)
				run.content = append(run.content, runChild{raw: raw})
			}
		case xml.EndElement:
			run.raw = p.src[off:p.dec.InputOffset()]
			return run, nil
		}
	}
}

func (p *parser) parseRunProps(run *Run) error {
	for {
		coff := p.dec.InputOffset()
		tok, err := p.dec.Token()
		if err != nil {
			return fmt.Errorf("parse run properties: %w", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "b":
				run.boldSet = true
				run.bold = boolAttr(t, true)
				if err := p.dec.Skip(); err != nil {
					return err
				}
			case "color":
				run.color = valAttr(t)
				if err := p.dec.Skip(); err != nil {
					return err
				}
			case "highlight":
				run.highlight = valAttr(t)
				if err := p.dec.Skip(); err != nil {
					return err
				}
			default:
				raw, rerr := p.rawElement(coff)
				if rerr != nil {
					return rerr
				}
				run.rprExtra = append(run.rprExtra, raw)
			}
		case xml.EndElement:
			return nil
		}
	}
}

// elementText consumes an element already opened and returns its character
// data. Used for w:t.
func (p *parser) elementText() (string, error) {
	var sb strings.Builder
	for {
		tok, err := p.dec.Token()
		if err != nil {
			return "", fmt.Errorf("parse text element: %w", err)
		}
		switch t := tok.(type) {
		case xml.CharData:
			sb.Write(t)
		case xml.EndElement:
			return sb.String(), nil
		case xml.StartElement:
			if err := p.dec.Skip(); err != nil {
				return "", err
			}
		}
	}
}

// rawElement skips over an element whose start tag was just consumed and
// returns its exact source bytes, start tag included.
func (p *parser) rawElement(off int64) ([]byte, error) {
	if err := p.dec.Skip(); err != nil {
		return nil, fmt.Errorf("skip element: %w", err)
	}
	return p.src[off:p.dec.InputOffset()], nil
}

// countMedia bumps the inline media counter for preserved drawing subtrees.
// Anchored (floating) drawings are not counted, matching how inline shapes
// are reported to reviewers.
func (p *parser) countMedia(raw []byte) {
	if bytes.Contains(raw, []byte("<w:drawing")) || bytes.HasPrefix(raw, []byte("<w:drawing")) {
		if bytes.Contains(raw, []byte(":inline")) {
			p.doc.inlineMedia++
		}
	}
}

func valAttr(start xml.StartElement) string {
	for _, a := range start.Attr {
		if a.Name.Local == "val" {
			return a.Value
		}
	}
	return ""
}

func boolAttr(start xml.StartElement, def bool) bool {
	v := valAttr(start)
	switch strings.ToLower(v) {
	case "":
		return def
	case "0", "false", "none", "off":
		return false
	default:
		return true
	}
}
