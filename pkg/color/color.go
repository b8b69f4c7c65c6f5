// Package color provides the colour value used by the gradient engine.
// It implements literal parsing, channel access in both RGB and HSL terms,
// and serialisation to the textual formats gradient consumers ask for.
package color

import (
	imgcolor "image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Model identifies the channel layout of a tuple passed to FromValues.
type Model int

const (
	// ModelRGB is red, green, blue in [0, 255] with optional alpha in [0, 1].
	ModelRGB Model = iota
	// ModelHSL is hue in degrees, saturation and lightness in [0, 100],
	// with optional alpha in [0, 1].
	ModelHSL
)

// String returns the lower-case model name.
func (m Model) String() string {
	switch m {
	case ModelRGB:
		return "rgb"
	case ModelHSL:
		return "hsl"
	default:
		return "unknown"
	}
}

// Color is an immutable colour value.
//
// Red, green and blue are kept as unrounded floats in [0, 255] so that a
// colour produced by interpolation reports exactly the channel values it was
// built from; rounding happens only on serialisation. Alpha is in [0, 1].
// The zero value is transparent black.
type Color struct {
	r, g, b float64
	a       float64
}

// FromRGB returns an opaque colour. Channels are clamped to [0, 255].
func FromRGB(r, g, b float64) Color {
	return FromRGBA(r, g, b, 1)
}

// FromRGBA returns a colour with the given alpha. Channels are clamped to
// [0, 255] and alpha to [0, 1].
func FromRGBA(r, g, b, a float64) Color {
	return Color{
		r: clamp(r, 0, 255),
		g: clamp(g, 0, 255),
		b: clamp(b, 0, 255),
		a: clamp(a, 0, 1),
	}
}

// FromHSL returns a colour from hue in degrees, saturation and lightness in
// percent, and alpha in [0, 1]. Hue wraps into [0, 360), so -60 and 300 are
// the same hue; saturation and lightness are clamped to [0, 100].
func FromHSL(h, s, l, a float64) Color {
	h = math.Mod(math.Mod(h, 360)+360, 360)
	s = clamp(s, 0, 100)
	l = clamp(l, 0, 100)

	c := colorful.Hsl(h, s/100, l/100)
	return FromRGBA(c.R*255, c.G*255, c.B*255, a)
}

// FromValues builds a colour from a channel tuple in the given model.
// Three values are required; a fourth is taken as alpha.
func FromValues(model Model, values ...float64) (Color, error) {
	if len(values) != 3 && len(values) != 4 {
		return Color{}, invalidf("%s tuple requires 3 or 4 values, got %d", model, len(values))
	}

	for i, v := range values {
		if !isFinite(v) {
			return Color{}, invalidf("%s tuple value %d is not a finite number: %v", model, i+1, v)
		}
	}

	var c Color
	switch model {
	case ModelRGB:
		c = FromRGB(values[0], values[1], values[2])
	case ModelHSL:
		c = FromHSL(values[0], values[1], values[2], 1)
	default:
		return Color{}, invalidf("unknown colour model %d", int(model))
	}

	if len(values) == 4 {
		c = c.WithAlpha(values[3])
	}
	return c, nil
}

// FromColor converts any image/color value, undoing alpha premultiplication.
func FromColor(c imgcolor.Color) Color {
	n := imgcolor.NRGBAModel.Convert(c).(imgcolor.NRGBA)
	return FromRGBA(float64(n.R), float64(n.G), float64(n.B), float64(n.A)/255)
}

// FromColorful converts a go-colorful colour, rounding each channel to the
// nearest 8-bit step so parsed literals report whole channel values.
func FromColorful(c colorful.Color) Color {
	return FromRGB(math.Round(c.R*255), math.Round(c.G*255), math.Round(c.B*255))
}

// Red returns the red channel in [0, 255].
func (c Color) Red() float64 { return c.r }

// Green returns the green channel in [0, 255].
func (c Color) Green() float64 { return c.g }

// Blue returns the blue channel in [0, 255].
func (c Color) Blue() float64 { return c.b }

// Alpha returns the alpha channel in [0, 1].
func (c Color) Alpha() float64 { return c.a }

// Hue returns the HSL hue in degrees, in [0, 360). Achromatic colours
// report 0.
func (c Color) Hue() float64 {
	h, _, _ := c.HSL()
	return h
}

// Saturation returns the HSL saturation in percent.
func (c Color) Saturation() float64 {
	_, s, _ := c.HSL()
	return s
}

// Lightness returns the HSL lightness in percent.
func (c Color) Lightness() float64 {
	_, _, l := c.HSL()
	return l
}

// HSL returns hue in degrees plus saturation and lightness in percent.
func (c Color) HSL() (h, s, l float64) {
	h, s, l = c.Colorful().Hsl()
	return h, s * 100, l * 100
}

// Colorful returns the colour as a go-colorful value. Alpha is dropped.
func (c Color) Colorful() colorful.Color {
	return colorful.Color{R: c.r / 255, G: c.g / 255, B: c.b / 255}
}

// NRGBA returns the colour rounded to 8 bits per channel.
func (c Color) NRGBA() imgcolor.NRGBA {
	return imgcolor.NRGBA{
		R: to8(c.r),
		G: to8(c.g),
		B: to8(c.b),
		A: to8(c.a * 255),
	}
}

// RGBA implements image/color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

// WithAlpha returns a copy of the colour with alpha replaced.
func (c Color) WithAlpha(a float64) Color {
	return FromRGBA(c.r, c.g, c.b, a)
}

// String returns the colour as upper-case #RRGGBB.
func (c Color) String() string {
	return c.hex()
}

func to8(v float64) uint8 {
	return uint8(math.Round(clamp(v, 0, 255)))
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
