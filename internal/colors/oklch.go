package colors

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// OKLCH is a colour in the OKLCH space: lightness 0..1, chroma, hue in degrees.
type OKLCH struct {
	L, C, H float64
}

// String formats the colour as "L C H" with three decimals for L and C and
// one for H. Callers wrap the result in oklch() verbatim.
func (c OKLCH) String() string {
	return fmt.Sprintf("%.3f %.3f %.1f", c.L, c.C, c.H)
}

// Hex converts the colour to the nearest in-gamut sRGB hex string.
func (c OKLCH) Hex() string {
	return colorful.OkLch(c.L, c.C, c.H).Clamped().Hex()
}

// Foreground returns the black or white text colour for this surface.
func (c OKLCH) Foreground() string {
	return PickForeground(c.Hex())
}
