package sdtmap

import (
	"github.com/beevik/etree"
)

// wordprocessingml main namespace, required on the document root.
const wordNamespaceURI = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"

// parseDocumentPart parses the main document part into a mutable element
// tree. The tree keeps attribute order, processing instructions and elements
// the engine does not understand, so everything not explicitly rewritten
// survives a round trip.
func parseDocumentPart(data []byte) (*etree.Document, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, NewMalformedDocumentError(MainDocumentPart, "not well-formed", err)
	}

	root := doc.Root()
	if root == nil {
		return nil, NewMalformedDocumentError(MainDocumentPart, "no root element", nil)
	}
	if root.Space != "w" || root.Tag != "document" {
		return nil, NewMalformedDocumentError(MainDocumentPart, "root element is not w:document", nil)
	}
	if root.SelectAttrValue("xmlns:w", "") != wordNamespaceURI {
		return nil, NewMalformedDocumentError(MainDocumentPart, "missing wordprocessingml namespace declaration", nil)
	}

	return doc, nil
}

// renderDocumentPart serializes a (possibly mutated) tree back to bytes.
// Re-parsing the output yields a structurally equivalent tree; only
// whitespace-level formatting may differ from the input.
func renderDocumentPart(doc *etree.Document) ([]byte, error) {
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, NewPackagingError(MainDocumentPart, err)
	}
	return out, nil
}

// treeDepth measures the maximum element nesting depth iteratively, so a
// maliciously deep document cannot exhaust the call stack before the ceiling
// check runs. Traversals elsewhere in the package recurse, which is safe
// only because every tree passes through this guard first.
func treeDepth(root *etree.Element) int {
	type frame struct {
		el    *etree.Element
		depth int
	}

	max := 0
	stack := []frame{{root, 1}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if f.depth > max {
			max = f.depth
		}
		for _, child := range f.el.ChildElements() {
			stack = append(stack, frame{child, f.depth + 1})
		}
	}
	return max
}

// checkDepth fails with a DepthExceededError when the tree is nested beyond
// the configured ceiling.
func checkDepth(root *etree.Element, limit int) error {
	if depth := treeDepth(root); depth > limit {
		return NewDepthExceededError(depth, limit)
	}
	return nil
}
