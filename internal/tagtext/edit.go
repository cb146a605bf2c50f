package tagtext

import (
	"slices"
	"strings"
)

// Caret returns the remembered caret and whether one was ever recorded since
// the document was built or last reset.
func (d *Document) Caret() (Position, bool) {
	return d.caret, d.hasCaret
}

// CaretOffset returns the caret as a unit index. Without a remembered caret
// it is the end of the document.
func (d *Document) CaretOffset() int {
	if !d.hasCaret {
		return d.Len()
	}
	return d.unitOf(d.caret)
}

// SetCaret records p as the caret and clears any selection. Offsets are
// clamped to the node; unknown nodes resolve to the end of the document.
func (d *Document) SetCaret(p Position) {
	d.setCaretUnit(d.unitOf(p))
	d.clearAnchor()
}

// SetCaretOffset records the caret at unit index u (clamped).
func (d *Document) SetCaretOffset(u int) {
	d.setCaretUnit(u)
	d.clearAnchor()
}

func (d *Document) setCaretUnit(u int) {
	d.caret = d.positionAt(u)
	d.hasCaret = true
}

// placeAfter records the caret so that unitsAfter units follow it.
func (d *Document) placeAfter(unitsAfter int) {
	d.setCaretUnit(d.Len() - unitsAfter)
}

// Selection returns the selected unit range [from, to) when one is active.
func (d *Document) Selection() (from, to int, ok bool) {
	if !d.hasAnchor {
		return 0, 0, false
	}
	a, c := d.unitOf(d.anchor), d.CaretOffset()
	if a == c {
		return 0, 0, false
	}
	return min(a, c), max(a, c), true
}

// Select sets a selection from anchor to caret; the caret moves to caret.
func (d *Document) Select(anchor, caret Position) {
	a := d.unitOf(anchor)
	d.setCaretUnit(d.unitOf(caret))
	d.anchor = d.positionAt(a)
	d.hasAnchor = true
}

// SelectAll selects the whole document, leaving the caret at the end.
func (d *Document) SelectAll() {
	d.anchor = d.positionAt(0)
	d.hasAnchor = true
	d.setCaretUnit(d.Len())
}

// ClearSelection drops the selection anchor, keeping the caret.
func (d *Document) ClearSelection() {
	d.clearAnchor()
}

func (d *Document) clearAnchor() {
	d.anchor = Position{}
	d.hasAnchor = false
}

// SelectedText returns the serialized form of the selection.
func (d *Document) SelectedText() string {
	from, to, ok := d.Selection()
	if !ok {
		return ""
	}
	var b strings.Builder
	for _, u := range d.units()[from:to] {
		b.WriteString(u.text)
	}
	return b.String()
}

// removeUnits deletes units [from, to). Tokens are always removed whole
// because each one is a single unit.
func (d *Document) removeUnits(from, to int) {
	if from >= to {
		return
	}
	i := d.splitAt(from)
	j := d.splitAt(to)
	d.nodes = slices.Delete(d.nodes, i, j)
	d.normalize()
}

// insertNodes places nodes at unit index u.
func (d *Document) insertNodes(u int, nodes []Node) {
	if len(nodes) == 0 {
		return
	}
	i := d.splitAt(u)
	d.nodes = slices.Insert(d.nodes, i, nodes...)
	d.normalize()
}

// takeSelection deletes the active selection and returns the unit index the
// next insertion should use.
func (d *Document) takeSelection() (int, bool) {
	from, to, ok := d.Selection()
	d.clearAnchor()
	if !ok {
		return d.CaretOffset(), false
	}
	d.removeUnits(from, to)
	d.setCaretUnit(from)
	return from, true
}

// insert replaces the selection with nodes and leaves the caret right after
// them. It reports whether the document changed.
func (d *Document) insert(nodes []Node) bool {
	u, removed := d.takeSelection()
	if len(nodes) == 0 {
		return removed
	}
	after := d.Len() - u
	d.insertNodes(u, nodes)
	d.placeAfter(after)
	return true
}

// InsertTag inserts a token for tag at the remembered caret, or at the end
// when no caret was recorded, replacing any selection. The caret ends up
// immediately after the token. Tags outside the document's set are refused.
func (d *Document) InsertTag(tag Tag) bool {
	known, ok := d.tags.Lookup(tag.Value)
	if !ok {
		return false
	}
	return d.insert([]Node{d.newToken(known)})
}

// InsertText inserts typed characters as literal text; placeholder syntax is
// not interpreted. CRLF and CR are normalized to LF.
func (d *Document) InsertText(s string) bool {
	s = normalizeNewlines(s)
	if s == "" {
		return d.insert(nil)
	}
	return d.insert([]Node{d.newText(s)})
}

// Paste inserts s, turning placeholders for known tags into tokens.
func (d *Document) Paste(s string) bool {
	return d.insert(d.parse(normalizeNewlines(s)))
}

// DeleteSelection removes the selected units.
func (d *Document) DeleteSelection() bool {
	_, removed := d.takeSelection()
	return removed
}

// DeleteBackward removes the selection, or the unit before the caret.
func (d *Document) DeleteBackward() bool {
	if d.DeleteSelection() {
		return true
	}
	u := d.CaretOffset()
	if u == 0 {
		d.setCaretUnit(0)
		return false
	}
	after := d.Len() - u
	d.removeUnits(u-1, u)
	d.placeAfter(after)
	return true
}

// DeleteForward removes the selection, or the unit after the caret.
func (d *Document) DeleteForward() bool {
	if d.DeleteSelection() {
		return true
	}
	u := d.CaretOffset()
	if u >= d.Len() {
		d.setCaretUnit(u)
		return false
	}
	after := d.Len() - u - 1
	d.removeUnits(u, u+1)
	d.placeAfter(after)
	return true
}

func normalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
