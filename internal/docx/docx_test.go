package docx

import (
	"archive/zip"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildPackage assembles a minimal docx package with the given main part.
func buildPackage(t *testing.T, documentXML string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	files := map[string]string{
		"[Content_Types].xml": contentTypesXML,
		"_rels/.rels":         rootRelsXML,
		"word/document.xml":   documentXML,
	}
	for name, data := range files {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(data))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

const wrapperPrefix = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
	`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main" ` +
	`xmlns:wp="http://schemas.openxmlformats.org/drawingml/2006/wordprocessingDrawing">` +
	`<w:body>`

func wrapBody(inner string) string {
	return wrapperPrefix + inner + `<w:sectPr/></w:body></w:document>`
}

func TestOpenRejectsMalformedInput(t *testing.T) {
	_, err := Open([]byte("this is not a zip archive"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotWordDocument)
}

func TestOpenRejectsZipWithoutDocument(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("hello.txt")
	require.NoError(t, err)
	_, err = w.Write([]byte("hi"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	_, err = Open(buf.Bytes())
	assert.ErrorIs(t, err, ErrNotWordDocument)
}

func TestParagraphTextAndOrder(t *testing.T) {
	data := buildPackage(t, wrapBody(
		`<w:p><w:r><w:t>첫 번째 문단</w:t></w:r></w:p>`+
			`<w:p><w:r><w:t>second </w:t></w:r><w:r><w:t>paragraph</w:t></w:r></w:p>`))
	doc, err := Open(data)
	require.NoError(t, err)

	paras := doc.Paragraphs()
	require.Len(t, paras, 2)
	assert.Equal(t, "첫 번째 문단", paras[0].Text())
	assert.Equal(t, "second paragraph", paras[1].Text())
}

func TestHyperlinkTextIsVisible(t *testing.T) {
	data := buildPackage(t, wrapBody(
		`<w:p><w:r><w:t>링크: </w:t></w:r>`+
			`<w:hyperlink r:id="rId4" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships">`+
			`<w:r><w:t>http://shop.example.com/a</w:t></w:r></w:hyperlink></w:p>`))
	doc, err := Open(data)
	require.NoError(t, err)

	paras := doc.Paragraphs()
	require.Len(t, paras, 1)
	assert.Equal(t, "링크: http://shop.example.com/a", paras[0].Text())
	assert.Len(t, paras[0].Runs(), 2)
}

func TestInlineMediaCount(t *testing.T) {
	drawing := `<w:p><w:r><w:drawing><wp:inline><wp:extent cx="1" cy="1"/></wp:inline></w:drawing></w:r></w:p>`
	anchored := `<w:p><w:r><w:drawing><wp:anchor><wp:extent cx="1" cy="1"/></wp:anchor></w:drawing></w:r></w:p>`
	data := buildPackage(t, wrapBody(drawing+drawing+anchored))
	doc, err := Open(data)
	require.NoError(t, err)

	assert.Equal(t, 2, doc.InlineMediaCount())
}

func TestAppendOnlyGrowth(t *testing.T) {
	data := buildPackage(t, wrapBody(`<w:p><w:r><w:t>본문</w:t></w:r></w:p>`))
	doc, err := Open(data)
	require.NoError(t, err)
	before := len(doc.Paragraphs())

	doc.AppendParagraph("요약 한 줄")
	doc.InsertAfter(doc.Paragraphs()[0], "코멘트")

	assert.Equal(t, before+2, len(doc.Paragraphs()))
	// Original paragraph keeps its position.
	assert.Equal(t, "본문", doc.Paragraphs()[0].Text())
	assert.Equal(t, "코멘트", doc.Paragraphs()[1].Text())
}

func TestRoundTripPreservesUntouchedParagraphs(t *testing.T) {
	original := `<w:p w:rsidR="00AB1234"><w:pPr><w:jc w:val="center"/></w:pPr><w:r><w:rPr><w:sz w:val="28"/></w:rPr><w:t>그대로 유지</w:t></w:r></w:p>`
	data := buildPackage(t, wrapBody(original))
	doc, err := Open(data)
	require.NoError(t, err)

	doc.AppendParagraph("새 문단")
	out, err := doc.Save()
	require.NoError(t, err)

	reopened, err := Open(out)
	require.NoError(t, err)
	assert.Contains(t, string(reopened.src), original)
	require.Len(t, reopened.Paragraphs(), 2)
	assert.Equal(t, "그대로 유지", reopened.Paragraphs()[0].Text())
	assert.Equal(t, "새 문단", reopened.Paragraphs()[1].Text())
}

func TestRunFormattingSurvivesSave(t *testing.T) {
	data := buildPackage(t, wrapBody(
		`<w:p><w:r><w:rPr><w:sz w:val="28"/></w:rPr><w:t>형광펜 대상</w:t></w:r></w:p>`))
	doc, err := Open(data)
	require.NoError(t, err)

	run := doc.Paragraphs()[0].Runs()[0]
	run.SetHighlight("yellow")
	run.SetBold(true)
	run.SetColor("FF0000")

	out, err := doc.Save()
	require.NoError(t, err)
	reopened, err := Open(out)
	require.NoError(t, err)

	r := reopened.Paragraphs()[0].Runs()[0]
	assert.Equal(t, "yellow", r.Highlight())
	assert.True(t, r.Bold())
	assert.Equal(t, "FF0000", r.Color())
	assert.Equal(t, "형광펜 대상", r.Text())
	// The pre-existing size property is kept next to the new formatting.
	assert.Contains(t, string(reopened.src), `<w:sz w:val="28"/>`)
}

func TestSetHighlightIsIdempotent(t *testing.T) {
	doc := New()
	p := doc.AppendParagraph("하이라이트")
	r := p.Runs()[0]
	r.SetHighlight("yellow")
	r.SetHighlight("yellow")

	out, err := doc.Save()
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(string(mainPart(t, out)), `<w:highlight`))
}

func TestTextIsEscapedOnSave(t *testing.T) {
	doc := New()
	doc.AppendParagraph(`특수문자 <>&"`)

	out, err := doc.Save()
	require.NoError(t, err)
	reopened, err := Open(out)
	require.NoError(t, err)
	assert.Equal(t, `특수문자 <>&"`, reopened.Paragraphs()[0].Text())
}

func TestNewParagraphsInsertBeforeSectPr(t *testing.T) {
	doc := New()
	doc.AppendParagraph("마지막")

	out, err := doc.Save()
	require.NoError(t, err)
	xml := string(mainPart(t, out))
	assert.Less(t, strings.Index(xml, "마지막"), strings.Index(xml, "<w:sectPr"))
}

func mainPart(t *testing.T, pkg []byte) []byte {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(pkg), int64(len(pkg)))
	require.NoError(t, err)
	for _, f := range zr.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		require.NoError(t, err)
		defer rc.Close()
		var buf bytes.Buffer
		_, err = buf.ReadFrom(rc)
		require.NoError(t, err)
		return buf.Bytes()
	}
	t.Fatal("word/document.xml not found")
	return nil
}
