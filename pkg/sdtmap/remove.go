package sdtmap

import (
	"github.com/beevik/etree"
)

// removeControls unwraps every structured document tag below el in place.
// The w:sdt wrapper and its w:sdtPr properties are dropped; the children of
// w:sdtContent are spliced into the wrapper's position, so the visible
// content survives without its control chrome. A control without a
// w:sdtContent has nothing to retain and disappears entirely. Returns the
// number of controls removed.
func removeControls(el *etree.Element) int {
	removed := 0
	for i := 0; i < len(el.Child); i++ {
		child, ok := el.Child[i].(*etree.Element)
		if !ok {
			continue
		}

		if isControl(child) {
			content := child.SelectElement("w:sdtContent")
			el.RemoveChildAt(i)
			if content != nil {
				// Copy the token list first: inserting reparents each token,
				// which mutates content.Child underneath an iteration.
				kids := append([]etree.Token(nil), content.Child...)
				for j, tok := range kids {
					el.InsertChildAt(i+j, tok)
				}
			}
			removed++
			// Re-examine position i. It now holds the first spliced token,
			// which may itself be a control, or the next sibling.
			i--
			continue
		}

		removed += removeControls(child)
	}
	return removed
}
