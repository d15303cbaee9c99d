package sdtmap

import (
	"archive/zip"
	"bytes"
	"io"
)

// MainDocumentPart is the entry holding the main document markup. Its
// presence distinguishes a DOCX container from an arbitrary zip archive.
const MainDocumentPart = "word/document.xml"

// Package is the opened document container: an ordered collection of named
// parts. Parts untouched by a mapping operation are written back
// byte-identical by Rebuild.
type Package struct {
	names []string
	parts map[string][]byte
}

// OpenPackage opens a document container from raw bytes. It reads every part
// into memory, preserving archive order, and fails with a CorruptPackageError
// if the bytes are not a valid container or the main document part is absent.
func OpenPackage(data []byte) (*Package, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, NewCorruptPackageError("not a zip container", err)
	}

	p := &Package{
		parts: make(map[string][]byte, len(zr.File)),
	}
	for _, file := range zr.File {
		rc, err := file.Open()
		if err != nil {
			return nil, NewCorruptPackageError("cannot open part "+file.Name, err)
		}
		content, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, NewCorruptPackageError("cannot read part "+file.Name, err)
		}
		if _, seen := p.parts[file.Name]; !seen {
			p.names = append(p.names, file.Name)
		}
		p.parts[file.Name] = content
	}

	if _, ok := p.parts[MainDocumentPart]; !ok {
		return nil, NewCorruptPackageError("missing "+MainDocumentPart, nil)
	}

	return p, nil
}

// Part returns the content of a named part.
func (p *Package) Part(name string) ([]byte, bool) {
	content, ok := p.parts[name]
	return content, ok
}

// PartNames returns all part names in archive order.
func (p *Package) PartNames() []string {
	names := make([]string, len(p.names))
	copy(names, p.names)
	return names
}

// HasContentControls reports whether the main document part contains at
// least one structured document tag. This is a cheap probe that avoids
// parsing when a document carries no controls at all.
func (p *Package) HasContentControls() bool {
	return bytes.Contains(p.parts[MainDocumentPart], []byte("<w:sdt"))
}

// Rebuild produces a new container with every original part in original
// order. Parts named in overrides are replaced with the supplied bytes;
// everything else is written back unchanged. Some format consumers are
// order-sensitive, so part ordering is never altered.
func (p *Package) Rebuild(overrides map[string][]byte) ([]byte, error) {
	buf := new(bytes.Buffer)
	w := zip.NewWriter(buf)

	for _, name := range p.names {
		content := p.parts[name]
		if replacement, ok := overrides[name]; ok {
			content = replacement
		}

		fw, err := w.Create(name)
		if err != nil {
			return nil, NewPackagingError(name, err)
		}
		if _, err := fw.Write(content); err != nil {
			return nil, NewPackagingError(name, err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, NewPackagingError("", err)
	}

	return buf.Bytes(), nil
}
