package sdtmap

import (
	"sort"

	"github.com/beevik/etree"
)

// ControlType classifies a content control by the marker elements found in
// its properties. The set is closed; markers the engine does not recognize
// map to ControlTypeUnknown.
type ControlType string

const (
	ControlTypeText                 ControlType = "text"
	ControlTypeRichText             ControlType = "rich-text"
	ControlTypeComboBox             ControlType = "combo-box"
	ControlTypeDropdown             ControlType = "dropdown"
	ControlTypeDate                 ControlType = "date"
	ControlTypePicture              ControlType = "picture"
	ControlTypeCheckbox             ControlType = "checkbox"
	ControlTypeGroup                ControlType = "group"
	ControlTypeRepeatingSection     ControlType = "repeating-section"
	ControlTypeRepeatingSectionItem ControlType = "repeating-section-item"
	ControlTypeUnknown              ControlType = "unknown"
)

// ContentControl is the logical view over one structured document tag,
// derived transiently during a scan.
type ContentControl struct {
	// Tag is the control's identity. Tags may collide within a document;
	// the enumeration index resolves collisions last-write-wins.
	Tag string
	// ChildrenTags lists the distinct tags of nested content controls,
	// sorted for deterministic output.
	ChildrenTags []string
	// Types holds the classification labels in marker order. A control
	// carrying several recognized markers gets several entries.
	Types []ControlType
}

// HasType reports whether the control carries the given classification.
func (cc ContentControl) HasType(t ControlType) bool {
	for _, have := range cc.Types {
		if have == t {
			return true
		}
	}
	return false
}

// isControl recognizes a structured document tag element by its reserved
// qualified name.
func isControl(el *etree.Element) bool {
	return el.Space == "w" && el.Tag == "sdt"
}

// controlTag reads the control's tag from its properties sub-element.
// A control without a tag yields the empty string, which is still a valid
// (if unhelpful) lookup key.
func controlTag(el *etree.Element) string {
	pr := el.SelectElement("w:sdtPr")
	if pr == nil {
		return ""
	}
	tagEl := pr.SelectElement("w:tag")
	if tagEl == nil {
		return ""
	}
	return tagEl.SelectAttrValue("w:val", "")
}

// controlTypes inspects the properties sub-element for known type markers.
// Plain markers live in the w namespace, checkboxes in w14 and repeating
// sections in w15; classification goes by local name so documents produced
// with differing prefix conventions still classify.
func controlTypes(el *etree.Element) []ControlType {
	pr := el.SelectElement("w:sdtPr")
	if pr == nil {
		return []ControlType{ControlTypeUnknown}
	}

	var types []ControlType
	seen := make(map[ControlType]bool)
	add := func(t ControlType) {
		if !seen[t] {
			seen[t] = true
			types = append(types, t)
		}
	}

	for _, child := range pr.ChildElements() {
		switch child.Tag {
		case "text":
			add(ControlTypeText)
		case "richText":
			add(ControlTypeRichText)
		case "comboBox":
			add(ControlTypeComboBox)
		case "dropDownList":
			add(ControlTypeDropdown)
		case "date":
			add(ControlTypeDate)
		case "picture":
			add(ControlTypePicture)
		case "checkbox":
			add(ControlTypeCheckbox)
		case "group":
			add(ControlTypeGroup)
		case "repeatingSection":
			add(ControlTypeRepeatingSection)
		case "repeatingSectionItem":
			add(ControlTypeRepeatingSectionItem)
		}
	}

	if len(types) == 0 {
		return []ControlType{ControlTypeUnknown}
	}
	return types
}

// childrenTags collects the distinct tags of all content controls nested
// below el, each recorded exactly once.
func childrenTags(el *etree.Element) []string {
	seen := make(map[string]bool)
	var collect func(parent *etree.Element)
	collect = func(parent *etree.Element) {
		for _, child := range parent.ChildElements() {
			if isControl(child) {
				seen[controlTag(child)] = true
			}
			collect(child)
		}
	}
	collect(el)

	if len(seen) == 0 {
		return nil
	}
	tags := make([]string, 0, len(seen))
	for tag := range seen {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// newContentControl builds the logical view over one w:sdt element.
func newContentControl(el *etree.Element) ContentControl {
	return ContentControl{
		Tag:          controlTag(el),
		ChildrenTags: childrenTags(el),
		Types:        controlTypes(el),
	}
}
