package sdtmap

import (
	"bytes"
	"testing"
)

func TestOpenPackage(t *testing.T) {
	tests := []struct {
		name    string
		input   func() []byte
		wantErr bool
		check   func(t *testing.T, p *Package)
	}{
		{
			name:  "valid document container",
			input: func() []byte { return buildDocx(paraXML(runXML("hello"))) },
			check: func(t *testing.T, p *Package) {
				if got := len(p.PartNames()); got != 5 {
					t.Errorf("expected 5 parts, got %d", got)
				}
				if _, ok := p.Part(MainDocumentPart); !ok {
					t.Error("expected main document part to be present")
				}
			},
		},
		{
			name: "zip without main document part",
			input: func() []byte {
				return buildPackage([]fixturePart{
					{"word/styles.xml", "<w:styles/>"},
				})
			},
			wantErr: true,
		},
		{
			name:    "empty zip",
			input:   func() []byte { return buildPackage(nil) },
			wantErr: true,
		},
		{
			name:    "not a zip container",
			input:   func() []byte { return []byte("plain text, no archive here") },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := OpenPackage(tt.input())
			if (err != nil) != tt.wantErr {
				t.Fatalf("OpenPackage() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				if !IsCorruptPackage(err) {
					t.Errorf("expected CorruptPackageError, got %T", err)
				}
				return
			}
			if tt.check != nil {
				tt.check(t, p)
			}
		})
	}
}

func TestPackage_PartNamesOrder(t *testing.T) {
	input := buildDocx(paraXML(runXML("x")))
	p, err := OpenPackage(input)
	if err != nil {
		t.Fatal(err)
	}

	want := []string{
		"_rels/.rels",
		"word/_rels/document.xml.rels",
		"word/document.xml",
		"word/styles.xml",
		"[Content_Types].xml",
	}
	got := p.PartNames()
	if len(got) != len(want) {
		t.Fatalf("expected %d parts, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("part %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestPackage_Rebuild(t *testing.T) {
	input := buildDocx(paraXML(runXML("original")))
	p, err := OpenPackage(input)
	if err != nil {
		t.Fatal(err)
	}

	replacement := []byte(documentXML(paraXML(runXML("rewritten"))))
	out, err := p.Rebuild(map[string][]byte{MainDocumentPart: replacement})
	if err != nil {
		t.Fatal(err)
	}

	rebuilt, err := OpenPackage(out)
	if err != nil {
		t.Fatalf("rebuilt container did not reopen: %v", err)
	}

	// Overridden part carries the replacement.
	main, _ := rebuilt.Part(MainDocumentPart)
	if !bytes.Equal(main, replacement) {
		t.Error("main document part was not replaced")
	}

	// Every untouched part is byte-identical and order is preserved.
	origNames := p.PartNames()
	gotNames := rebuilt.PartNames()
	if len(origNames) != len(gotNames) {
		t.Fatalf("part count changed: %d -> %d", len(origNames), len(gotNames))
	}
	for i, name := range origNames {
		if gotNames[i] != name {
			t.Errorf("part order changed at %d: %q -> %q", i, name, gotNames[i])
		}
		if name == MainDocumentPart {
			continue
		}
		before, _ := p.Part(name)
		after, _ := rebuilt.Part(name)
		if !bytes.Equal(before, after) {
			t.Errorf("untouched part %q changed", name)
		}
	}
}

func TestPackage_RebuildWithoutOverrides(t *testing.T) {
	p, err := OpenPackage(buildDocx(paraXML(runXML("x"))))
	if err != nil {
		t.Fatal(err)
	}

	out, err := p.Rebuild(nil)
	if err != nil {
		t.Fatal(err)
	}

	rebuilt, err := OpenPackage(out)
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range p.PartNames() {
		before, _ := p.Part(name)
		after, _ := rebuilt.Part(name)
		if !bytes.Equal(before, after) {
			t.Errorf("part %q changed in a no-override rebuild", name)
		}
	}
}

func TestPackage_HasContentControls(t *testing.T) {
	plain, err := OpenPackage(buildDocx(paraXML(runXML("no controls"))))
	if err != nil {
		t.Fatal(err)
	}
	if plain.HasContentControls() {
		t.Error("expected no content controls")
	}

	tagged, err := OpenPackage(scenarioDocx())
	if err != nil {
		t.Fatal(err)
	}
	if !tagged.HasContentControls() {
		t.Error("expected content controls to be detected")
	}
}
