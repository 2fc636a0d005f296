package docx

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
)

// Save serializes the document back into a .docx byte buffer. Untouched
// paragraphs and all non-document package parts are copied byte-for-byte;
// only paragraphs that were annotated or inserted are regenerated.
func (d *Document) Save() ([]byte, error) {
	docXML := d.buildMainPart()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, pt := range d.parts {
		w, err := zw.Create(pt.name)
		if err != nil {
			return nil, fmt.Errorf("create package part %s: %w", pt.name, err)
		}
		data := pt.data
		if pt.name == d.docPath {
			data = docXML
		}
		if _, err := w.Write(data); err != nil {
			return nil, fmt.Errorf("write package part %s: %w", pt.name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("finalize package: %w", err)
	}
	return buf.Bytes(), nil
}

func (d *Document) buildMainPart() []byte {
	var b bytes.Buffer
	b.Write(d.prolog)
	b.Write(d.rootTag)
	b.Write(d.bodyTag)
	for _, item := range d.body {
		if item.para != nil {
			writeParagraph(&b, item.para)
			continue
		}
		b.Write(item.raw)
	}
	b.Write(closingTag(d.bodyTag))
	b.Write(closingTag(d.rootTag))
	return b.Bytes()
}

func writeParagraph(b *bytes.Buffer, p *Paragraph) {
	if !p.dirty && p.raw != nil {
		b.Write(p.raw)
		return
	}

	openTag := normalizeOpenTag(p.openTag)
	if openTag == nil {
		openTag = []byte("<w:p>")
	}
	b.Write(openTag)
	if p.pPr != nil {
		b.Write(p.pPr)
	}
	for _, kid := range p.kids {
		switch {
		case kid.run != nil:
			writeRun(b, kid.run)
		case kid.link != nil:
			writeHyperlink(b, kid.link)
		default:
			b.Write(kid.raw)
		}
	}
	b.Write(closingTag(openTag))
}

func writeHyperlink(b *bytes.Buffer, link *hyperlink) {
	dirty := false
	for _, r := range link.runs {
		if r.dirty {
			dirty = true
			break
		}
	}
	if !dirty && link.raw != nil {
		b.Write(link.raw)
		return
	}
	openTag := normalizeOpenTag(link.openTag)
	b.Write(openTag)
	for _, r := range link.runs {
		writeRun(b, r)
	}
	b.Write(closingTag(openTag))
}

func writeRun(b *bytes.Buffer, r *Run) {
	if !r.dirty && r.raw != nil {
		b.Write(r.raw)
		return
	}

	b.WriteString("<w:r>")
	if r.boldSet || r.color != "" || r.highlight != "" || len(r.rprExtra) > 0 {
		b.WriteString("<w:rPr>")
		for _, extra := range r.rprExtra {
			b.Write(extra)
		}
		if r.boldSet {
			if r.bold {
				b.WriteString(`<w:b/>`)
			} else {
				b.WriteString(`<w:b w:val="0"/>`)
			}
		}
		if r.color != "" {
			fmt.Fprintf(b, `<w:color w:val=%q/>`, r.color)
		}
		if r.highlight != "" {
			fmt.Fprintf(b, `<w:highlight w:val=%q/>`, r.highlight)
		}
		b.WriteString("</w:rPr>")
	}
	for _, c := range r.content {
		if c.text != nil {
			b.WriteString(`<w:t xml:space="preserve">`)
			_ = xml.EscapeText(b, []byte(*c.text))
			b.WriteString("</w:t>")
			continue
		}
		b.Write(c.raw)
	}
	b.WriteString("</w:r>")
}

// normalizeOpenTag turns a self-closed start tag into an open one so
// children can be written inside it.
func normalizeOpenTag(openTag []byte) []byte {
	if openTag == nil {
		return nil
	}
	if bytes.HasSuffix(openTag, []byte("/>")) {
		out := make([]byte, 0, len(openTag)-1)
		out = append(out, openTag[:len(openTag)-2]...)
		out = append(out, '>')
		return out
	}
	return openTag
}

// closingTag derives the matching end tag from a raw start tag, so the
// original namespace prefix is kept whatever it was.
func closingTag(openTag []byte) []byte {
	name := openTag[1:]
	for i, c := range name {
		if c == ' ' || c == '>' || c == '/' || c == '\t' || c == '\n' || c == '\r' {
			name = name[:i]
			break
		}
	}
	out := make([]byte, 0, len(name)+3)
	out = append(out, '<', '/')
	out = append(out, name...)
	out = append(out, '>')
	return out
}
