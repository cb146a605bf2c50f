package theme

import (
	"slices"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
	gocache "github.com/patrickmn/go-cache"

	"reviewdesk/internal/colors"
)

const (
	derivedExpiration = 30 * time.Minute
	derivedCleanup    = 10 * time.Minute
)

var globalManager = &manager{
	themes:  make(map[string]Theme),
	derived: gocache.New(derivedExpiration, derivedCleanup),
}

type manager struct {
	mu           sync.RWMutex
	themes       map[string]Theme
	currentName  string
	currentTheme Theme
	derived      *gocache.Cache
}

// RegisterTheme adds a theme to the registry.
// The first registered theme becomes the default.
func RegisterTheme(name string, t Theme) {
	globalManager.mu.Lock()
	defer globalManager.mu.Unlock()
	globalManager.themes[name] = t
	if globalManager.currentTheme == nil {
		globalManager.currentName = name
		globalManager.currentTheme = t
	}
}

// Current returns the active theme.
func Current() Theme {
	globalManager.mu.RLock()
	defer globalManager.mu.RUnlock()
	return globalManager.currentTheme
}

// CurrentName returns the name of the active theme.
func CurrentName() string {
	globalManager.mu.RLock()
	defer globalManager.mu.RUnlock()
	return globalManager.currentName
}

// NextPreset returns the preset offered after the active theme. A custom
// theme restarts the cycle at the first preset.
func NextPreset() (name, seed string) {
	globalManager.mu.RLock()
	current := globalManager.currentName
	globalManager.mu.RUnlock()

	names := Presets()
	idx := slices.Index(names, current)
	name = names[(idx+1)%len(names)]
	seed, _ = PresetSeed(name)
	return name, seed
}

// Derive returns the theme for a seed colour, reusing a previously derived
// one when the same seed was seen recently.
func Derive(seed string) *Derived {
	key, err := colors.NormalizeHex(seed)
	if err != nil {
		key = colors.Black
	}
	if v, ok := globalManager.derived.Get(key); ok {
		if d, ok := v.(*Derived); ok {
			return d
		}
	}
	d := NewDerived(key)
	globalManager.derived.SetDefault(key, d)
	return d
}

// Apply derives a theme from seed and makes it current. A seed equal to a
// preset's activates that preset; any other seed is registered as
// CustomName. It rejects seeds that are not hex colours.
func Apply(seed string) (*Derived, error) {
	normalized, err := colors.NormalizeHex(seed)
	if err != nil {
		return nil, err
	}
	d := Derive(normalized)
	name := presetFor(normalized)
	globalManager.mu.Lock()
	globalManager.themes[name] = d
	globalManager.currentName = name
	globalManager.currentTheme = d
	globalManager.mu.Unlock()
	return d, nil
}

// SetDark forces the dark or light side of every AdaptiveColor instead of
// relying on terminal background detection.
func SetDark(dark bool) {
	lipgloss.SetHasDarkBackground(dark)
}
