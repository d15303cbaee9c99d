package sdtmap

import (
	"github.com/beevik/etree"
)

// scanControls walks the tree in pre-order and returns one ContentControl
// per structured document tag, in traversal order. Nested controls produce
// their own entries in addition to appearing in their ancestors'
// ChildrenTags. The caller is responsible for running the tree through
// checkDepth first; the walk recurses.
func scanControls(root *etree.Element) []ContentControl {
	var controls []ContentControl
	var walk func(el *etree.Element)
	walk = func(el *etree.Element) {
		if isControl(el) {
			controls = append(controls, newContentControl(el))
		}
		for _, child := range el.ChildElements() {
			walk(child)
		}
	}
	walk(root)
	return controls
}

// indexControls aggregates scan results into the tag lookup returned to
// callers. When two controls share a tag, the one scanned later overwrites
// the earlier entry, so the index holds exactly one record per distinct tag
// string. Pure aggregation; nothing here can fail.
func indexControls(controls []ContentControl) map[string]ContentControl {
	index := make(map[string]ContentControl, len(controls))
	for _, cc := range controls {
		index[cc.Tag] = cc
	}
	return index
}
