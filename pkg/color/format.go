package color

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// Format names a serialisation understood by Color.Format.
type Format string

const (
	// FormatHex is "#RRGGBB" in upper case. Alpha is ignored.
	FormatHex Format = "hex"
	// FormatHexA is "#RRGGBBAA" in upper case.
	FormatHexA Format = "hexa"
	// FormatRGB is "rgb(r, g, b)", or "rgba(r, g, b, a)" for translucent colours.
	FormatRGB Format = "rgb"
	// FormatHSL is "hsl(h, s%, l%)", or "hsla(h, s%, l%, a)" for translucent colours.
	FormatHSL Format = "hsl"
	// FormatKeyword is the CSS name of the colour, or of the nearest named
	// colour when there is no exact match.
	FormatKeyword Format = "keyword"
)

// Formats returns every supported format in a stable order.
func Formats() []Format {
	return []Format{FormatHex, FormatHexA, FormatRGB, FormatHSL, FormatKeyword}
}

// ParseFormat resolves a format name case-insensitively.
func ParseFormat(name string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Formats() {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
}

// Format serialises the colour. Channel values in the rgb and hsl forms are
// rounded to one decimal place.
func (c Color) Format(f Format) (string, error) {
	f, err := ParseFormat(string(f))
	if err != nil {
		return "", err
	}

	switch f {
	case FormatHex:
		return c.hex(), nil
	case FormatHexA:
		return c.hex() + fmt.Sprintf("%02X", to8(c.a*255)), nil
	case FormatRGB:
		if c.a < 1 {
			return fmt.Sprintf("rgba(%s, %s, %s, %s)",
				place1(c.r), place1(c.g), place1(c.b), trim(c.a)), nil
		}
		return fmt.Sprintf("rgb(%s, %s, %s)", place1(c.r), place1(c.g), place1(c.b)), nil
	case FormatHSL:
		h, s, l := c.HSL()
		if c.a < 1 {
			return fmt.Sprintf("hsla(%s, %s%%, %s%%, %s)",
				place1(h), place1(s), place1(l), trim(c.a)), nil
		}
		return fmt.Sprintf("hsl(%s, %s%%, %s%%)", place1(h), place1(s), place1(l)), nil
	default:
		return c.keyword(), nil
	}
}

func (c Color) hex() string {
	return fmt.Sprintf("#%02X%02X%02X", to8(c.r), to8(c.g), to8(c.b))
}

// keyword walks colornames.Names, which is sorted, so ties resolve to the
// alphabetically first name.
func (c Color) keyword() string {
	n := c.NRGBA()
	best := ""
	bestDist := math.MaxInt
	for _, name := range colornames.Names {
		ref := colornames.Map[name]
		dr := int(ref.R) - int(n.R)
		dg := int(ref.G) - int(n.G)
		db := int(ref.B) - int(n.B)
		dist := dr*dr + dg*dg + db*db
		if dist < bestDist {
			best, bestDist = name, dist
			if dist == 0 {
				break
			}
		}
	}
	return best
}

func place1(v float64) string {
	return trim(math.Round(v*10) / 10)
}

func trim(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
