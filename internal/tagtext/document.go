package tagtext

import (
	"slices"
	"strings"
)

// NodeKind distinguishes text runs from tokens.
type NodeKind int

const (
	// TextNode is a run of editable characters (newlines included).
	TextNode NodeKind = iota
	// TokenNode is an atomic reference to a Tag.
	TokenNode
)

func (k NodeKind) String() string {
	switch k {
	case TextNode:
		return "text"
	case TokenNode:
		return "token"
	default:
		return "unknown"
	}
}

// Node is one element of a Document.
type Node struct {
	ID   int
	Kind NodeKind
	Text string // TextNode only
	Tag  Tag    // TokenNode only
}

// width returns how many caret units the node spans: one per grapheme
// cluster for text, exactly one for a token.
func (n Node) width() int {
	if n.Kind == TokenNode {
		return 1
	}
	return graphemeCount(n.Text)
}

func (n Node) serialize() string {
	if n.Kind == TokenNode {
		return n.Tag.Placeholder()
	}
	return n.Text
}

// Position addresses a caret location. For text nodes Offset counts grapheme
// clusters from the start of the run; for tokens 0 is before and 1 is after.
// A caret on the boundary between two nodes is stored as the end of the
// earlier node. The zero Position (NodeID 0) addresses an empty document.
type Position struct {
	NodeID int
	Offset int
}

// Document is the editable model behind a template: a normalized node list
// (no empty text runs, no two adjacent text runs) plus the remembered caret
// and optional selection anchor.
type Document struct {
	tags   TagSet
	nodes  []Node
	nextID int

	caret     Position
	hasCaret  bool
	anchor    Position
	hasAnchor bool
}

// Render builds a document from a serialized template. Placeholders naming a
// known tag become tokens; everything else, unknown placeholders included,
// stays literal text. The new document has no remembered caret.
func Render(serialized string, tags []Tag) *Document {
	d := &Document{tags: NewTagSet(tags)}
	d.nodes = d.parse(serialized)
	return d
}

// parse tokenizes s against the document's tag set, allocating node IDs.
func (d *Document) parse(s string) []Node {
	var (
		nodes []Node
		text  strings.Builder
		last  int
	)
	flush := func() {
		if text.Len() > 0 {
			nodes = append(nodes, d.newText(text.String()))
			text.Reset()
		}
	}
	for _, m := range placeholderPattern.FindAllStringSubmatchIndex(s, -1) {
		tag, ok := d.tags.Lookup(s[m[2]:m[3]])
		if !ok {
			continue
		}
		text.WriteString(s[last:m[0]])
		flush()
		nodes = append(nodes, d.newToken(tag))
		last = m[1]
	}
	text.WriteString(s[last:])
	flush()
	return nodes
}

func (d *Document) allocID() int {
	d.nextID++
	return d.nextID
}

func (d *Document) newText(s string) Node {
	return Node{ID: d.allocID(), Kind: TextNode, Text: s}
}

func (d *Document) newToken(t Tag) Node {
	return Node{ID: d.allocID(), Kind: TokenNode, Tag: t}
}

// Serialize returns the canonical template string. Tokens contribute their
// placeholder; labels are never written.
func (d *Document) Serialize() string {
	var b strings.Builder
	for _, n := range d.nodes {
		b.WriteString(n.serialize())
	}
	return b.String()
}

// Sync rebuilds the document from serialized when it differs from the
// current serialization, and reports whether it did. A rebuild forgets the
// caret and selection.
func (d *Document) Sync(serialized string) bool {
	if serialized == d.Serialize() {
		return false
	}
	d.Reset(serialized)
	return true
}

// Reset replaces the content with serialized, keeping the tag set.
func (d *Document) Reset(serialized string) {
	d.nodes = d.parse(serialized)
	d.hasCaret = false
	d.caret = Position{}
	d.clearAnchor()
}

// Tags returns the document's tag set in definition order.
func (d *Document) Tags() []Tag {
	return d.tags.All()
}

// Lookup finds a tag of this document by value.
func (d *Document) Lookup(value string) (Tag, bool) {
	return d.tags.Lookup(value)
}

// Nodes returns a copy of the node list.
func (d *Document) Nodes() []Node {
	return slices.Clone(d.nodes)
}

// Tokens returns the token nodes in document order.
func (d *Document) Tokens() []Node {
	var out []Node
	for _, n := range d.nodes {
		if n.Kind == TokenNode {
			out = append(out, n)
		}
	}
	return out
}

// Len returns the number of caret units in the document.
func (d *Document) Len() int {
	total := 0
	for _, n := range d.nodes {
		total += n.width()
	}
	return total
}

// Empty reports whether the document has no content.
func (d *Document) Empty() bool {
	return len(d.nodes) == 0
}

// unitOf converts a position to a unit index. Positions naming a node that
// no longer exists resolve to the end of the document.
func (d *Document) unitOf(p Position) int {
	base := 0
	for _, n := range d.nodes {
		if n.ID == p.NodeID {
			return base + min(max(p.Offset, 0), n.width())
		}
		base += n.width()
	}
	return base
}

// positionAt converts a unit index to its canonical position.
func (d *Document) positionAt(u int) Position {
	if len(d.nodes) == 0 {
		return Position{}
	}
	u = min(max(u, 0), d.Len())
	if u == 0 {
		return Position{NodeID: d.nodes[0].ID}
	}
	base := 0
	for _, n := range d.nodes {
		w := n.width()
		if u <= base+w {
			return Position{NodeID: n.ID, Offset: u - base}
		}
		base += w
	}
	last := d.nodes[len(d.nodes)-1]
	return Position{NodeID: last.ID, Offset: last.width()}
}

// splitAt makes u a node boundary, splitting a text run if needed, and
// returns the index of the first node at or after u.
func (d *Document) splitAt(u int) int {
	base := 0
	for i, n := range d.nodes {
		if u <= base {
			return i
		}
		w := n.width()
		if u < base+w {
			left, right := splitGraphemes(n.Text, u-base)
			d.nodes[i].Text = left
			d.nodes = slices.Insert(d.nodes, i+1, d.newText(right))
			return i + 1
		}
		base += w
	}
	return len(d.nodes)
}

// normalize drops empty text runs and merges neighbouring ones, keeping the
// ID of the earlier run.
func (d *Document) normalize() {
	out := d.nodes[:0]
	for _, n := range d.nodes {
		if n.Kind == TextNode && n.Text == "" {
			continue
		}
		if n.Kind == TextNode && len(out) > 0 && out[len(out)-1].Kind == TextNode {
			out[len(out)-1].Text += n.Text
			continue
		}
		out = append(out, n)
	}
	d.nodes = out
}

// unit is one caret step: a grapheme cluster or a whole token.
type unit struct {
	text  string
	token bool
}

func (d *Document) units() []unit {
	var out []unit
	for _, n := range d.nodes {
		if n.Kind == TokenNode {
			out = append(out, unit{text: n.serialize(), token: true})
			continue
		}
		for _, g := range graphemes(n.Text) {
			out = append(out, unit{text: g})
		}
	}
	return out
}

// Cell is one caret unit as displayed: a grapheme cluster of a text run, or
// a token carrying its Tag.
type Cell struct {
	Text  string
	Token bool
	Tag   Tag
}

// LineBreak reports whether the cell ends a line.
func (c Cell) LineBreak() bool {
	return !c.Token && isLineBreak(c.Text)
}

// Cells returns the document's caret units in order. Index i is the unit
// between caret offsets i and i+1.
func (d *Document) Cells() []Cell {
	var out []Cell
	for _, n := range d.nodes {
		if n.Kind == TokenNode {
			out = append(out, Cell{Token: true, Tag: n.Tag})
			continue
		}
		for _, g := range graphemes(n.Text) {
			out = append(out, Cell{Text: g})
		}
	}
	return out
}
