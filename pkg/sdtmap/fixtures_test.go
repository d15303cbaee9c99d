// fixtures_test.go contains in-memory document builders shared by the tests.

package sdtmap

import (
	"archive/zip"
	"bytes"
)

type fixturePart struct {
	name    string
	content string
}

// buildPackage zips the given parts in order.
func buildPackage(parts []fixturePart) []byte {
	buf := new(bytes.Buffer)
	w := zip.NewWriter(buf)
	for _, part := range parts {
		fw, _ := w.Create(part.name)
		fw.Write([]byte(part.content))
	}
	w.Close()
	return buf.Bytes()
}

// documentXML wraps body markup in a minimal main document part.
func documentXML(body string) string {
	return `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main" xmlns:w14="http://schemas.microsoft.com/office/word/2010/wordml" xmlns:w15="http://schemas.microsoft.com/office/word/2012/wordml"><w:body>` + body + `</w:body></w:document>`
}

// buildDocx assembles a complete container around the given body markup,
// with the surrounding parts laid out the way word processors emit them.
func buildDocx(body string) []byte {
	return buildPackage([]fixturePart{
		{"_rels/.rels", `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
  <Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`},
		{"word/_rels/document.xml.rels", `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
</Relationships>`},
		{"word/document.xml", documentXML(body)},
		{"word/styles.xml", `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:styles xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"/>`},
		{"[Content_Types].xml", `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
  <Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
  <Default Extension="xml" ContentType="application/xml"/>
  <Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
</Types>`},
	})
}

// sdtXML builds one content control. marker is raw property markup such as
// "<w:text/>" or "<w15:repeatingSection/>"; inner is the sdtContent markup.
func sdtXML(tag, id, marker, inner string) string {
	pr := `<w:sdtPr>`
	if id != "" {
		pr += `<w:id w:val="` + id + `"/>`
	}
	pr += `<w:tag w:val="` + tag + `"/>` + marker + `</w:sdtPr>`
	return `<w:sdt>` + pr + `<w:sdtContent>` + inner + `</w:sdtContent></w:sdt>`
}

// paraXML wraps run markup in a paragraph.
func paraXML(runs string) string {
	return `<w:p>` + runs + `</w:p>`
}

// runXML builds a plain run holding text.
func runXML(text string) string {
	return `<w:r><w:t>` + text + `</w:t></w:r>`
}

// scenarioDocx is the document used across the integration tests: a
// plain-text control "Name" and a repeating section "Hauptbefund" holding a
// nested text control "Gen".
func scenarioDocx() []byte {
	gen := sdtXML("Gen", "103", `<w:text/>`, paraXML(runXML("GENE")))
	section := sdtXML("Hauptbefund", "102", `<w15:repeatingSection/>`, gen)
	name := sdtXML("Name", "101", `<w:text/>`, paraXML(runXML("NAME")))
	return buildDocx(paraXML("") + name + section)
}
