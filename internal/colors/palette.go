package colors

import (
	"fmt"
	"math"
	"strings"
)

// Role names a semantic colour slot of the UI theme.
type Role string

const (
	RolePrimary               Role = "primary"
	RolePrimaryForeground     Role = "primary-foreground"
	RoleBackground            Role = "background"
	RoleForeground            Role = "foreground"
	RoleCard                  Role = "card"
	RoleCardForeground        Role = "card-foreground"
	RolePopover               Role = "popover"
	RolePopoverForeground     Role = "popover-foreground"
	RoleBorder                Role = "border"
	RoleInput                 Role = "input"
	RoleSecondary             Role = "secondary"
	RoleSecondaryForeground   Role = "secondary-foreground"
	RoleMuted                 Role = "muted"
	RoleMutedForeground       Role = "muted-foreground"
	RoleAccent                Role = "accent"
	RoleAccentForeground      Role = "accent-foreground"
	RoleDestructive           Role = "destructive"
	RoleDestructiveForeground Role = "destructive-foreground"
	RoleRing                  Role = "ring"
)

// Roles lists every role in output order.
var Roles = []Role{
	RolePrimary,
	RolePrimaryForeground,
	RoleBackground,
	RoleForeground,
	RoleCard,
	RoleCardForeground,
	RolePopover,
	RolePopoverForeground,
	RoleBorder,
	RoleInput,
	RoleSecondary,
	RoleSecondaryForeground,
	RoleMuted,
	RoleMutedForeground,
	RoleAccent,
	RoleAccentForeground,
	RoleDestructive,
	RoleDestructiveForeground,
	RoleRing,
}

// Variable returns the CSS custom property name for the role.
func (r Role) Variable() string {
	return "--" + string(r)
}

// Tuning constants for palette generation.
const (
	achromaticSaturation = 5 // percent
	lightnessThreshold   = 0.5
	lightForegroundL     = 0.98
	darkForegroundL      = 0.15
	foregroundChroma     = 0.01
	veryLowChroma        = 0.005
	chromaticPrimaryL    = 0.45
	chromaticPrimaryC    = 0.2
	achromaticPrimaryC   = 0.01
	luminosityScale      = 0.04
	minNeutralL          = 0.05
	maxNeutralL          = 1.0
)

var destructive = OKLCH{L: 0.59, C: 0.2, H: 29.5}

// Palette is the full role mapping derived from one seed colour.
type Palette struct {
	// Seed is the normalized seed ("#RRGGBB"). Invalid seeds normalize to black.
	Seed string
	// Achromatic is true when the seed's HSL saturation is below 5%.
	Achromatic bool
	// BaseHue is the hue shared by every derived role.
	BaseHue float64
	// LuminosityFactor is the lightness shift applied to neutral roles.
	LuminosityFactor float64

	roles map[Role]OKLCH
}

// GeneratePalette derives the role palette for seed. Unparseable seeds are
// treated as black.
func GeneratePalette(seed string) Palette {
	rgb, err := ParseHex(seed)
	if err != nil {
		rgb = RGB{}
	}

	// HSL components are rounded to whole degrees and percents before use.
	// A hue just below 360 rounds up to 360 and is kept there.
	h, s, l := rgb.toColorful().Hsl()
	hue := math.Round(h)
	saturation := math.Round(s * 100)
	lightness := math.Round(l*100) / 100

	achromatic := saturation < achromaticSaturation
	baseHue := hue
	if achromatic {
		baseHue = 0
	}

	factor := 0.0
	if !achromatic {
		direction := 1.0
		if lightness > 0.5 {
			direction = -1.0
		}
		factor = direction * math.Abs(lightness-0.5) * luminosityScale
	}
	adjust := func(v float64) float64 {
		return clamp(v+factor, minNeutralL, maxNeutralL)
	}

	var primaryL, primaryC float64
	if achromatic {
		switch {
		case lightness < 0.2:
			primaryL = 0.1
		case lightness > 0.8:
			primaryL = 0.98
		default:
			primaryL = lightness
		}
		primaryC = achromaticPrimaryC
	} else {
		primaryL = chromaticPrimaryL
		primaryC = chromaticPrimaryC
	}

	ringC := 0.15
	if achromatic {
		ringC = 0.05
	}

	oklch := func(l, c float64) OKLCH {
		return OKLCH{L: l, C: c, H: baseHue}
	}

	roles := map[Role]OKLCH{
		RolePrimary:           oklch(primaryL, primaryC),
		RolePrimaryForeground: oklch(ForegroundLightness(primaryL), foregroundChroma),
		RoleRing:              oklch(0.65, ringC),

		RoleBackground: oklch(adjust(1.0), veryLowChroma),
		RoleForeground: oklch(adjust(0.15), veryLowChroma),

		RoleCard:              oklch(adjust(0.98), veryLowChroma),
		RoleCardForeground:    oklch(adjust(0.15), veryLowChroma),
		RolePopover:           oklch(adjust(0.98), veryLowChroma),
		RolePopoverForeground: oklch(adjust(0.15), veryLowChroma),

		RoleBorder: oklch(adjust(0.92), 0.02),
		RoleInput:  oklch(adjust(0.9), 0.03),

		RoleSecondary:           oklch(adjust(0.95), 0.05),
		RoleSecondaryForeground: oklch(adjust(0.2), 0.05),
		RoleMuted:               oklch(adjust(0.96), 0.03),
		RoleMutedForeground:     oklch(adjust(0.5), 0.05),
		RoleAccent:              oklch(adjust(0.95), 0.05),
		RoleAccentForeground:    oklch(adjust(0.2), 0.05),

		RoleDestructive:           destructive,
		RoleDestructiveForeground: oklch(lightForegroundL, foregroundChroma),
	}

	return Palette{
		Seed:             rgb.Hex(),
		Achromatic:       achromatic,
		BaseHue:          baseHue,
		LuminosityFactor: factor,
		roles:            roles,
	}
}

// ForegroundLightness returns the text lightness paired with a surface of
// lightness l: near white below the 0.5 threshold, near black otherwise.
func ForegroundLightness(l float64) float64 {
	if l < lightnessThreshold {
		return lightForegroundL
	}
	return darkForegroundL
}

// Get returns the colour assigned to role. Unknown roles yield the zero value.
func (p Palette) Get(role Role) OKLCH {
	return p.roles[role]
}

// Variables returns the palette keyed by CSS custom property name
// ("--primary") with "L C H" values.
func (p Palette) Variables() map[string]string {
	vars := make(map[string]string, len(p.roles))
	for role, c := range p.roles {
		vars[role.Variable()] = c.String()
	}
	return vars
}

// CSS renders the palette as a :root block with oklch() values, in role order.
func (p Palette) CSS() string {
	var b strings.Builder
	b.WriteString(":root {\n")
	for _, role := range Roles {
		fmt.Fprintf(&b, "  %s: oklch(%s);\n", role.Variable(), p.roles[role])
	}
	b.WriteString("}\n")
	return b.String()
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
