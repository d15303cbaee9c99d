package sdtmap

import (
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/beevik/etree"
)

// SubstitutionPlan carries the caller's replacement data.
//
// Simple maps a control tag to its replacement text; the control is mutated
// in place. Repeating maps a control tag to an ordered sequence of rows; the
// control's subtree is removed and replaced by one clone per row, each clone
// substituted only against its own row. A tag with an empty row sequence is
// removed entirely. Keys matching no control in the document are ignored.
type SubstitutionPlan struct {
	Simple    map[string]string
	Repeating map[string][]map[string]string
}

// IsEmpty reports whether the plan requests no substitution at all.
func (p SubstitutionPlan) IsEmpty() bool {
	return len(p.Simple) == 0 && len(p.Repeating) == 0
}

// mapper holds the per-call state of one plan application. A fresh mapper is
// built for every apply; nothing is shared across calls.
type mapper struct {
	plan    SubstitutionPlan
	maxRows int
	nextID  int64
	log     *zap.Logger
}

// applyPlan mutates the tree according to the plan. The tree must already
// have passed the depth guard; traversal recursion is bounded by it, and
// clones never nest deeper than the subtree they copy.
func applyPlan(root *etree.Element, plan SubstitutionPlan, cfg *Config, log *zap.Logger) error {
	m := &mapper{
		plan:    plan,
		maxRows: cfg.MaxSectionRows,
		nextID:  maxControlID(root) + 1,
		log:     log,
	}
	return m.applyElement(root)
}

// applyElement walks one element's children in document order, handling
// matched controls and descending into everything else. Children inserted by
// a clone expansion are skipped: each clone has already been substituted
// against its own row and must not see another row's data.
func (m *mapper) applyElement(el *etree.Element) error {
	for i := 0; i < len(el.Child); i++ {
		child, ok := el.Child[i].(*etree.Element)
		if !ok {
			continue
		}

		if isControl(child) {
			tag := controlTag(child)
			if rows, ok := m.plan.Repeating[tag]; ok {
				inserted, err := m.expandRepeating(el, child, i, tag, rows)
				if err != nil {
					return err
				}
				// Resume after the inserted clones. With zero rows the
				// subtree is gone and the next sibling now sits at i.
				i += inserted - 1
				continue
			}
			if value, ok := m.plan.Simple[tag]; ok {
				m.setControlText(child, value)
				m.log.Debug("substituted control text", zap.String("tag", tag))
			}
		}

		if err := m.applyElement(child); err != nil {
			return err
		}
	}
	return nil
}

// expandRepeating removes the matched control from parent at index idx and
// inserts one independent deep clone per row at the same position. Returns
// the number of tokens inserted.
func (m *mapper) expandRepeating(parent, control *etree.Element, idx int, tag string, rows []map[string]string) (int, error) {
	if len(rows) > m.maxRows {
		return 0, NewMappingError(tag, "row count "+strconv.Itoa(len(rows))+" exceeds ceiling "+strconv.Itoa(m.maxRows))
	}
	for _, row := range rows {
		if row == nil {
			return 0, NewMappingError(tag, "nil row in repeating sequence")
		}
	}

	parent.RemoveChildAt(idx)

	for j, row := range rows {
		// Copy allocates a fresh, exclusively-owned subtree. Two clones
		// never share nodes, so mutating one cannot corrupt another.
		clone := control.Copy()
		m.renumberControlIDs(clone)
		m.substituteRow(clone, row)
		parent.InsertChildAt(idx+j, clone)
	}

	m.log.Debug("expanded repeating section",
		zap.String("tag", tag),
		zap.Int("rows", len(rows)))
	return len(rows), nil
}

// substituteRow applies one row's values to the controls nested below the
// clone root. A nested tag absent from the row is left unmodified.
func (m *mapper) substituteRow(clone *etree.Element, row map[string]string) {
	var walk func(el *etree.Element)
	walk = func(el *etree.Element) {
		for _, child := range el.ChildElements() {
			if isControl(child) {
				if value, ok := row[controlTag(child)]; ok {
					m.setControlText(child, value)
				}
			}
			walk(child)
		}
	}
	walk(clone)
}

// setControlText replaces the visible text of a control with value. The
// first text-bearing descendant keeps its run and formatting wrappers and
// receives the whole value; any further text elements are removed, together
// with runs that end up holding nothing but properties. A control without
// any text element gets a minimal run so the value is not lost.
func (m *mapper) setControlText(control *etree.Element, value string) {
	content := control.SelectElement("w:sdtContent")
	if content == nil {
		return
	}

	texts := textElements(content)
	if len(texts) == 0 {
		run := content.CreateElement("w:r")
		setText(run.CreateElement("w:t"), value)
		return
	}

	setText(texts[0], value)
	for _, t := range texts[1:] {
		run := t.Parent()
		run.RemoveChild(t)
		if run.Space == "w" && run.Tag == "r" && runIsEmpty(run) {
			if p := run.Parent(); p != nil {
				p.RemoveChild(run)
			}
		}
	}
}

// renumberControlIDs rewrites every control identifier below el (and on el
// itself) with a fresh value. Word treats duplicate sdt ids as corruption,
// and cloning would otherwise duplicate every id in the subtree. The
// sequence continues from the highest id seen in the source document, so
// identical inputs always produce identical output.
func (m *mapper) renumberControlIDs(el *etree.Element) {
	if isControl(el) {
		if pr := el.SelectElement("w:sdtPr"); pr != nil {
			if idEl := pr.SelectElement("w:id"); idEl != nil {
				idEl.CreateAttr("w:val", strconv.FormatInt(m.nextID, 10))
				m.nextID++
			}
		}
	}
	for _, child := range el.ChildElements() {
		m.renumberControlIDs(child)
	}
}

// maxControlID finds the highest numeric control id in the tree. Ids that
// do not parse as integers are ignored.
func maxControlID(root *etree.Element) int64 {
	var max int64
	var walk func(el *etree.Element)
	walk = func(el *etree.Element) {
		if isControl(el) {
			if pr := el.SelectElement("w:sdtPr"); pr != nil {
				if idEl := pr.SelectElement("w:id"); idEl != nil {
					if id, err := strconv.ParseInt(idEl.SelectAttrValue("w:val", ""), 10, 64); err == nil && id > max {
						max = id
					}
				}
			}
		}
		for _, child := range el.ChildElements() {
			walk(child)
		}
	}
	walk(root)
	return max
}

// textElements collects every w:t below el in document order.
func textElements(el *etree.Element) []*etree.Element {
	var texts []*etree.Element
	var walk func(parent *etree.Element)
	walk = func(parent *etree.Element) {
		for _, child := range parent.ChildElements() {
			if child.Space == "w" && child.Tag == "t" {
				texts = append(texts, child)
				continue
			}
			walk(child)
		}
	}
	walk(el)
	return texts
}

// setText writes the replacement value into a w:t element. Significant
// leading or trailing whitespace needs xml:space="preserve" or Word will
// collapse it on load.
func setText(t *etree.Element, value string) {
	t.SetText(value)
	if value != strings.TrimSpace(value) {
		t.CreateAttr("xml:space", "preserve")
	}
}

// runIsEmpty reports whether a run holds nothing but run properties. Empty
// runs left behind by text removal can make Word refuse the document.
func runIsEmpty(run *etree.Element) bool {
	for _, child := range run.ChildElements() {
		if child.Tag != "rPr" {
			return false
		}
	}
	return strings.TrimSpace(run.Text()) == ""
}
