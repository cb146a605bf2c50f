package tagtext

// Expand substitutes values for known placeholders in serialized. Known tags
// without a value render as "<label>"; unknown placeholders are left as-is.
func Expand(serialized string, tags []Tag, values map[string]string) string {
	set := NewTagSet(tags)
	return placeholderPattern.ReplaceAllStringFunc(serialized, func(m string) string {
		value := m[2 : len(m)-2]
		tag, ok := set.Lookup(value)
		if !ok {
			return m
		}
		if v, ok := values[value]; ok {
			return v
		}
		return "<" + tag.DisplayLabel() + ">"
	})
}

// Placeholders returns the known tag values referenced by serialized, in
// order of appearance and with repeats.
func Placeholders(serialized string, tags []Tag) []string {
	set := NewTagSet(tags)
	var out []string
	for _, m := range placeholderPattern.FindAllStringSubmatch(serialized, -1) {
		if _, ok := set.Lookup(m[1]); ok {
			out = append(out, m[1])
		}
	}
	return out
}
