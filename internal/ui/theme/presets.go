package theme

// CustomName is the registry name of the theme derived from a user seed.
const CustomName = "custom"

// presets are the named seeds offered out of the box.
var presets = []struct {
	name string
	seed string
}{
	{"ocean", "#1877F2"},
	{"amber", "#F5A524"},
	{"forest", "#2F855A"},
	{"rose", "#E11D48"},
	{"violet", "#7C3AED"},
	{"graphite", "#808080"},
	{"midnight", "#000000"},
}

func init() {
	for _, p := range presets {
		RegisterTheme(p.name, Derive(p.seed))
	}
}

// PresetSeed returns the seed colour of a named preset.
func PresetSeed(name string) (string, bool) {
	for _, p := range presets {
		if p.name == name {
			return p.seed, true
		}
	}
	return "", false
}

func presetFor(seed string) string {
	for _, p := range presets {
		if p.seed == seed {
			return p.name
		}
	}
	return CustomName
}

// Presets returns the preset names in the order they are offered.
func Presets() []string {
	names := make([]string, len(presets))
	for i, p := range presets {
		names[i] = p.name
	}
	return names
}
