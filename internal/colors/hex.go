package colors

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	apperrors "reviewdesk/internal/errors"
)

// RGB is an 8-bit sRGB colour.
type RGB struct {
	R, G, B uint8
}

var hexPattern = regexp.MustCompile(`^#?([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// ParseHex parses "#RGB" or "#RRGGBB" (case-insensitive). The leading '#' is
// optional and surrounding whitespace is ignored.
func ParseHex(s string) (RGB, error) {
	m := hexPattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return RGB{}, apperrors.New(apperrors.CodeInvalidColor, fmt.Sprintf("invalid hex color %q", s), nil)
	}
	digits := strings.ToLower(m[1])
	if len(digits) == 3 {
		digits = string([]byte{digits[0], digits[0], digits[1], digits[1], digits[2], digits[2]})
	}
	c, err := colorful.Hex("#" + digits)
	if err != nil {
		return RGB{}, apperrors.New(apperrors.CodeInvalidColor, fmt.Sprintf("invalid hex color %q", s), err)
	}
	r, g, b := c.RGB255()
	return RGB{R: r, G: g, B: b}, nil
}

// IsHex reports whether s parses as a hex colour.
func IsHex(s string) bool {
	_, err := ParseHex(s)
	return err == nil
}

// NormalizeHex returns s as upper-case "#RRGGBB".
func NormalizeHex(s string) (string, error) {
	c, err := ParseHex(s)
	if err != nil {
		return "", err
	}
	return c.Hex(), nil
}

// Hex formats the colour as upper-case "#RRGGBB".
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

func (c RGB) toColorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}
