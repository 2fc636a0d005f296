package docx

const (
	contentTypesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		`<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">` +
		`<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>` +
		`<Default Extension="xml" ContentType="application/xml"/>` +
		`<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>` +
		`</Types>`

	rootRelsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
		`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>` +
		`</Relationships>`

	emptyDocumentXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">` +
		`<w:body><w:sectPr/></w:body></w:document>`
)

// New creates an empty document with a minimal valid package skeleton.
// Mostly useful for building fixtures and for the end of pipelines that
// produce reports without an uploaded source.
func New() *Document {
	doc := &Document{
		docPath: mainPartName,
		parts: []part{
			{name: "[Content_Types].xml", data: []byte(contentTypesXML)},
			{name: "_rels/.rels", data: []byte(rootRelsXML)},
			{name: mainPartName, data: []byte(emptyDocumentXML)},
		},
		src: []byte(emptyDocumentXML),
	}
	// The skeleton is well-formed; parsing it cannot fail.
	if err := doc.parseMainPart(); err != nil {
		panic("docx: invalid built-in skeleton: " + err.Error())
	}
	return doc
}
