// Package tagtext models message templates that mix free text with atomic
// tag tokens.
//
// The canonical external form of a template is a string in which tokens
// appear as [[value]] placeholders. Inside the editor the template lives as a
// Document: an ordered list of text runs and token nodes plus a remembered
// caret. Render and Serialize convert between the two forms and satisfy
//
//	Render(s, tags).Serialize() == s
//
// for every s, including strings whose placeholders name unknown tags (those
// stay literal text).
package tagtext

import "regexp"

// Tag is a placeholder the user can insert. Value is the identifier written
// between the double brackets; Label is what the token shows.
type Tag struct {
	Value string `yaml:"value" mapstructure:"value"`
	Label string `yaml:"label" mapstructure:"label"`
}

// Placeholder returns the serialized form of the tag.
func (t Tag) Placeholder() string {
	return "[[" + t.Value + "]]"
}

// DisplayLabel returns Label, or Value when Label is empty.
func (t Tag) DisplayLabel() string {
	if t.Label != "" {
		return t.Label
	}
	return t.Value
}

// placeholderPattern matches the shortest [[...]] run on a single line.
var placeholderPattern = regexp.MustCompile(`\[\[(.*?)\]\]`)

// TagSet is an immutable, ordered set of tags keyed by value.
type TagSet struct {
	order   []Tag
	byValue map[string]Tag
}

// NewTagSet builds a set from tags. Tags with an empty value are skipped and
// the first definition of a repeated value wins.
func NewTagSet(tags []Tag) TagSet {
	set := TagSet{byValue: make(map[string]Tag, len(tags))}
	for _, t := range tags {
		if t.Value == "" {
			continue
		}
		if _, dup := set.byValue[t.Value]; dup {
			continue
		}
		set.byValue[t.Value] = t
		set.order = append(set.order, t)
	}
	return set
}

// Lookup returns the tag registered under value.
func (s TagSet) Lookup(value string) (Tag, bool) {
	t, ok := s.byValue[value]
	return t, ok
}

// All returns the tags in definition order.
func (s TagSet) All() []Tag {
	out := make([]Tag, len(s.order))
	copy(out, s.order)
	return out
}

// Len returns the number of tags.
func (s TagSet) Len() int {
	return len(s.order)
}
