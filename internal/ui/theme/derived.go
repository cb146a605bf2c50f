package theme

import (
	"github.com/charmbracelet/lipgloss"

	"reviewdesk/internal/colors"
)

// Status hues are not part of a derived palette; they stay fixed so that
// warnings and successes read the same under every seed.
var (
	warningColor = colors.OKLCH{L: 0.75, C: 0.15, H: 70}
	successColor = colors.OKLCH{L: 0.65, C: 0.15, H: 145}
)

// Derived is a Theme computed from a seed colour. The light side of every
// AdaptiveColor is the palette itself; the dark side mirrors the neutral
// lightness around the middle of the scale and keeps accent roles as they are.
type Derived struct {
	palette colors.Palette
	light   map[colors.Role]string
	dark    map[colors.Role]string
}

// accentRoles keep their colour on dark terminals.
var accentRoles = map[colors.Role]bool{
	colors.RolePrimary:               true,
	colors.RolePrimaryForeground:     true,
	colors.RoleDestructive:           true,
	colors.RoleDestructiveForeground: true,
	colors.RoleRing:                  true,
}

// NewDerived builds a theme from a seed hex colour. Invalid seeds behave
// like black, as in colors.GeneratePalette.
func NewDerived(seed string) *Derived {
	p := colors.GeneratePalette(seed)
	d := &Derived{
		palette: p,
		light:   make(map[colors.Role]string, len(colors.Roles)),
		dark:    make(map[colors.Role]string, len(colors.Roles)),
	}
	for _, role := range colors.Roles {
		c := p.Get(role)
		d.light[role] = c.Hex()
		if !accentRoles[role] {
			c.L = mirror(c.L)
		}
		d.dark[role] = c.Hex()
	}
	return d
}

func mirror(l float64) float64 {
	m := 1 - l
	if m < 0.05 {
		return 0.05
	}
	return m
}

// Palette returns the palette the theme was derived from.
func (d *Derived) Palette() colors.Palette {
	return d.palette
}

// Seed returns the normalized seed colour.
func (d *Derived) Seed() string {
	return d.palette.Seed
}

func (d *Derived) role(r colors.Role) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: d.light[r], Dark: d.dark[r]}
}

func fixed(c colors.OKLCH) lipgloss.AdaptiveColor {
	h := c.Hex()
	return lipgloss.AdaptiveColor{Light: h, Dark: h}
}

func (d *Derived) Primary() lipgloss.AdaptiveColor   { return d.role(colors.RolePrimary) }
func (d *Derived) Secondary() lipgloss.AdaptiveColor { return d.role(colors.RoleRing) }
func (d *Derived) Accent() lipgloss.AdaptiveColor    { return d.role(colors.RoleSecondaryForeground) }

// PrimaryText is the WCAG-picked black or white for text on Primary.
func (d *Derived) PrimaryText() lipgloss.AdaptiveColor {
	fg := colors.PickForeground(d.light[colors.RolePrimary])
	return lipgloss.AdaptiveColor{Light: fg, Dark: fg}
}

func (d *Derived) Error() lipgloss.AdaptiveColor   { return d.role(colors.RoleDestructive) }
func (d *Derived) Warning() lipgloss.AdaptiveColor { return fixed(warningColor) }
func (d *Derived) Success() lipgloss.AdaptiveColor { return fixed(successColor) }
func (d *Derived) Info() lipgloss.AdaptiveColor    { return d.role(colors.RoleRing) }

func (d *Derived) Text() lipgloss.AdaptiveColor      { return d.role(colors.RoleForeground) }
func (d *Derived) TextMuted() lipgloss.AdaptiveColor { return d.role(colors.RoleMutedForeground) }
func (d *Derived) TextEmphasized() lipgloss.AdaptiveColor {
	return d.role(colors.RoleCardForeground)
}

func (d *Derived) Background() lipgloss.AdaptiveColor { return d.role(colors.RoleBackground) }
func (d *Derived) BackgroundSecondary() lipgloss.AdaptiveColor {
	return d.role(colors.RoleSecondary)
}
func (d *Derived) BackgroundDarker() lipgloss.AdaptiveColor { return d.role(colors.RoleMuted) }

func (d *Derived) BorderNormal() lipgloss.AdaptiveColor  { return d.role(colors.RoleBorder) }
func (d *Derived) BorderFocused() lipgloss.AdaptiveColor { return d.role(colors.RoleRing) }
func (d *Derived) BorderDim() lipgloss.AdaptiveColor     { return d.role(colors.RoleInput) }
