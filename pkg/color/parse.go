package color

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// Parse parses a colour literal.
// Supported forms:
//   - CSS named colours: "red", "orange", "transparent" (case-insensitive)
//   - Hex: "#RGB", "#RGBA", "#RRGGBB", "#RRGGBBAA", with or without the #
//   - Functions: "rgb(255, 0, 0)", "rgba(255, 0, 0, 0.5)",
//     "hsl(120, 100%, 50%)", "hsla(120, 100%, 50%, 0.5)"
//
// RGB components may be numbers in [0, 255] or percentages; alpha may be a
// number in [0, 1] or a percentage.
func Parse(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Color{}, invalidf("empty color string")
	}

	lower := strings.ToLower(s)
	if lower == "transparent" {
		return Color{}, nil
	}
	if named, ok := colornames.Map[lower]; ok {
		return FromColor(named), nil
	}

	if strings.HasPrefix(s, "#") || isHexString(s) {
		return parseHex(s)
	}

	switch {
	case strings.HasPrefix(lower, "rgba("):
		return parseFunc(s, "rgba(", 4, parseRGBArgs)
	case strings.HasPrefix(lower, "rgb("):
		return parseFunc(s, "rgb(", 3, parseRGBArgs)
	case strings.HasPrefix(lower, "hsla("):
		return parseFunc(s, "hsla(", 4, parseHSLArgs)
	case strings.HasPrefix(lower, "hsl("):
		return parseFunc(s, "hsl(", 3, parseHSLArgs)
	}

	return Color{}, invalidf("unrecognized color format: %q", s)
}

// MustParse parses a colour literal and panics if parsing fails.
// Use this only for known-good literals in initialization code and tests.
func MustParse(s string) Color {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

func isHexString(s string) bool {
	if len(s) != 3 && len(s) != 4 && len(s) != 6 && len(s) != 8 {
		return false
	}
	for _, c := range s {
		if !isHexDigit(c) {
			return false
		}
	}
	return true
}

func isHexDigit(c rune) bool {
	return (c >= '0' && c <= '9') ||
		(c >= 'a' && c <= 'f') ||
		(c >= 'A' && c <= 'F')
}

// parseHex handles the opaque forms through go-colorful and the forms that
// carry an alpha digit pair by hand, since go-colorful has no alpha.
func parseHex(s string) (Color, error) {
	digits := strings.TrimPrefix(s, "#")
	for _, c := range digits {
		if !isHexDigit(c) {
			return Color{}, invalidf("invalid hex digit %q in %q", c, s)
		}
	}

	switch len(digits) {
	case 3, 6:
		c, err := colorful.Hex("#" + digits)
		if err != nil {
			return Color{}, invalidf("%q: %v", s, err)
		}
		return FromColorful(c), nil

	case 4, 8:
		width := len(digits) / 4
		var ch [4]float64
		for i := range ch {
			part := digits[i*width : (i+1)*width]
			if width == 1 {
				part += part
			}
			v, err := strconv.ParseUint(part, 16, 8)
			if err != nil {
				return Color{}, invalidf("%q: %v", s, err)
			}
			ch[i] = float64(v)
		}
		return FromRGBA(ch[0], ch[1], ch[2], ch[3]/255), nil

	default:
		return Color{}, invalidf("invalid hex color length: %d", len(digits))
	}
}

type argsFunc func(parts []string) (Color, error)

func parseFunc(s, prefix string, want int, build argsFunc) (Color, error) {
	if !strings.HasSuffix(s, ")") {
		return Color{}, invalidf("invalid %s) format: %q", prefix, s)
	}

	content := s[len(prefix) : len(s)-1]
	parts := strings.Split(content, ",")
	if len(parts) != want {
		return Color{}, invalidf("%s) requires exactly %d values, got %d", prefix, want, len(parts))
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return build(parts)
}

func parseRGBArgs(parts []string) (Color, error) {
	var ch [3]float64
	for i := range ch {
		v, err := parseComponent(parts[i], 255)
		if err != nil {
			return Color{}, invalidf("invalid %s value: %v", channelNames[i], err)
		}
		ch[i] = v
	}

	alpha := 1.0
	if len(parts) == 4 {
		a, err := parseComponent(parts[3], 1)
		if err != nil {
			return Color{}, invalidf("invalid alpha value: %v", err)
		}
		alpha = a
	}
	return FromRGBA(ch[0], ch[1], ch[2], alpha), nil
}

func parseHSLArgs(parts []string) (Color, error) {
	h, err := parseFinite(strings.TrimSuffix(parts[0], "deg"))
	if err != nil {
		return Color{}, invalidf("invalid hue value: %v", err)
	}
	s, err := parsePercent(parts[1])
	if err != nil {
		return Color{}, invalidf("invalid saturation value: %v", err)
	}
	l, err := parsePercent(parts[2])
	if err != nil {
		return Color{}, invalidf("invalid lightness value: %v", err)
	}

	alpha := 1.0
	if len(parts) == 4 {
		a, err := parseComponent(parts[3], 1)
		if err != nil {
			return Color{}, invalidf("invalid alpha value: %v", err)
		}
		alpha = a
	}
	return FromHSL(h, s, l, alpha), nil
}

var channelNames = [...]string{"red", "green", "blue"}

// parseComponent reads a plain number or a percentage of scale.
func parseComponent(s string, scale float64) (float64, error) {
	if strings.HasSuffix(s, "%") {
		p, err := parseFinite(strings.TrimSuffix(s, "%"))
		if err != nil {
			return 0, err
		}
		return p / 100 * scale, nil
	}
	return parseFinite(s)
}

func parsePercent(s string) (float64, error) {
	if !strings.HasSuffix(s, "%") {
		return 0, strconv.ErrSyntax
	}
	return parseFinite(strings.TrimSuffix(s, "%"))
}

// parseFinite is strconv.ParseFloat without the NaN and Inf spellings.
func parseFinite(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if !isFinite(v) {
		return 0, fmt.Errorf("%q is not a finite number", s)
	}
	return v, nil
}
