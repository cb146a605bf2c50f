package colors

import "math"

const (
	// Black is the dark foreground choice.
	Black = "#000000"
	// White is the light foreground choice.
	White = "#FFFFFF"
)

var fallbackBackground = RGB{R: 255, G: 255, B: 255}

func channelToLinear(v uint8) float64 {
	c := float64(v) / 255.0
	if c <= 0.03928 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

// RelativeLuminance returns the WCAG relative luminance of c in [0, 1].
func RelativeLuminance(c RGB) float64 {
	return 0.2126*channelToLinear(c.R) + 0.7152*channelToLinear(c.G) + 0.0722*channelToLinear(c.B)
}

// ContrastRatio returns the WCAG contrast ratio between two luminances.
// The result is symmetric in its arguments and lies in [1, 21].
func ContrastRatio(l1, l2 float64) float64 {
	hi, lo := math.Max(l1, l2), math.Min(l1, l2)
	return (hi + 0.05) / (lo + 0.05)
}

// PickForeground returns Black or White, whichever contrasts more with the
// background. Ties go to White. Unparseable input is treated as a white
// background.
func PickForeground(background string) string {
	bg, err := ParseHex(background)
	if err != nil {
		bg = fallbackBackground
	}
	l := RelativeLuminance(bg)
	if ContrastRatio(l, 1) >= ContrastRatio(l, 0) {
		return White
	}
	return Black
}

// Contrast returns the contrast ratio between two hex colours.
func Contrast(a, b string) (float64, error) {
	ca, err := ParseHex(a)
	if err != nil {
		return 0, err
	}
	cb, err := ParseHex(b)
	if err != nil {
		return 0, err
	}
	return ContrastRatio(RelativeLuminance(ca), RelativeLuminance(cb)), nil
}

// Level names the WCAG conformance level a contrast ratio reaches for
// normal text: "AAA" (7:1), "AA" (4.5:1), "AA Large" (3:1) or "Fail".
func Level(ratio float64) string {
	switch {
	case ratio >= 7:
		return "AAA"
	case ratio >= 4.5:
		return "AA"
	case ratio >= 3:
		return "AA Large"
	default:
		return "Fail"
	}
}
