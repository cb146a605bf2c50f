package theme

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reviewdesk/internal/colors"
)

// TestPresetsRegistered verifies that every preset is in the registry.
func TestPresetsRegistered(t *testing.T) {
	globalManager.mu.RLock()
	defer globalManager.mu.RUnlock()
	for _, p := range presets {
		assert.Contains(t, globalManager.themes, p.name)
	}
}

// TestThemeColorsNotEmpty verifies that all theme methods return colors.
func TestThemeColorsNotEmpty(t *testing.T) {
	for _, name := range Presets() {
		seed, _ := PresetSeed(name)
		th := Derive(seed)

		checkColor := func(colorName string, color lipgloss.AdaptiveColor) {
			if color.Dark == "" || color.Light == "" {
				t.Errorf("theme %q: %s has empty Dark or Light value", name, colorName)
			}
		}

		checkColor("Primary", th.Primary())
		checkColor("PrimaryText", th.PrimaryText())
		checkColor("Secondary", th.Secondary())
		checkColor("Accent", th.Accent())
		checkColor("Error", th.Error())
		checkColor("Warning", th.Warning())
		checkColor("Success", th.Success())
		checkColor("Info", th.Info())
		checkColor("Text", th.Text())
		checkColor("TextMuted", th.TextMuted())
		checkColor("TextEmphasized", th.TextEmphasized())
		checkColor("Background", th.Background())
		checkColor("BackgroundSecondary", th.BackgroundSecondary())
		checkColor("BackgroundDarker", th.BackgroundDarker())
		checkColor("BorderNormal", th.BorderNormal())
		checkColor("BorderFocused", th.BorderFocused())
		checkColor("BorderDim", th.BorderDim())
	}
}

func TestDerivedFollowsPalette(t *testing.T) {
	d := NewDerived("#1877F2")
	p := colors.GeneratePalette("#1877F2")

	assert.Equal(t, p.Get(colors.RolePrimary).Hex(), d.Primary().Light)
	assert.Equal(t, d.Primary().Light, d.Primary().Dark, "accent roles keep their colour on dark terminals")
	assert.Equal(t, p.Get(colors.RoleBackground).Hex(), d.Background().Light)
	assert.NotEqual(t, d.Background().Light, d.Background().Dark)
	assert.Equal(t, colors.White, d.PrimaryText().Light)
}

func TestDeriveCachesBySeed(t *testing.T) {
	a := Derive("#e11d48")
	b := Derive("E11D48")
	assert.Same(t, a, b)
	assert.Equal(t, "#E11D48", a.Seed())

	invalid := Derive("not a colour")
	assert.Equal(t, colors.Black, invalid.Seed())
}

func TestApply(t *testing.T) {
	t.Cleanup(func() { _, _ = Apply("#1877F2") })

	d, err := Apply("#123456")
	require.NoError(t, err)
	assert.Equal(t, CustomName, CurrentName())
	assert.Same(t, d, Current())

	_, err = Apply("#12345")
	assert.Error(t, err)
	assert.Equal(t, CustomName, CurrentName(), "a rejected seed leaves the theme alone")
}

func TestApplyPresetSeedActivatesPreset(t *testing.T) {
	t.Cleanup(func() { _, _ = Apply("#1877F2") })

	d, err := Apply("#e11d48")
	require.NoError(t, err)
	assert.Equal(t, "rose", CurrentName())
	assert.Same(t, Derive("#E11D48"), d)
}

func TestNextPreset(t *testing.T) {
	t.Cleanup(func() { _, _ = Apply("#1877F2") })
	names := Presets()

	_, err := Apply("#123456")
	require.NoError(t, err)
	name, seed := NextPreset()
	assert.Equal(t, names[0], name, "a custom theme restarts at the first preset")
	assert.Equal(t, "#1877F2", seed)

	for i := range names {
		want := names[(i+1)%len(names)]
		current, _ := PresetSeed(names[i])
		_, err := Apply(current)
		require.NoError(t, err)
		name, seed := NextPreset()
		assert.Equal(t, want, name)
		wantSeed, _ := PresetSeed(want)
		assert.Equal(t, wantSeed, seed)
	}
}

func TestPresetSeed(t *testing.T) {
	seed, ok := PresetSeed("ocean")
	assert.True(t, ok)
	assert.Equal(t, "#1877F2", seed)

	_, ok = PresetSeed("nope")
	assert.False(t, ok)
}

func TestPresetsOrder(t *testing.T) {
	names := Presets()
	require.Len(t, names, len(presets))
	assert.Equal(t, "ocean", names[0])
}
