package gradient

import "github.com/opd-ai/go-gradient/pkg/color"

// interpolator produces count colours strictly between start and end,
// evenly spaced in its colour space. Neither endpoint is included.
type interpolator interface {
	between(start, end color.Color, count int) []color.Color
}

func interpolatorFor(m Model) interpolator {
	if m == ModelHSL {
		return hslInterpolator{}
	}
	return rgbInterpolator{}
}

type rgbInterpolator struct{}

// between steps red, green and blue linearly. Alpha is not carried: every
// produced colour is opaque regardless of the endpoints.
func (rgbInterpolator) between(start, end color.Color, count int) []color.Color {
	if count <= 0 {
		return nil
	}

	n := float64(count + 1)
	dr := (end.Red() - start.Red()) / n
	dg := (end.Green() - start.Green()) / n
	db := (end.Blue() - start.Blue()) / n

	out := make([]color.Color, 0, count)
	for k := 1; k <= count; k++ {
		f := float64(k)
		out = append(out, color.FromRGB(
			start.Red()+dr*f,
			start.Green()+dg*f,
			start.Blue()+db*f,
		))
	}
	return out
}

type hslInterpolator struct{}

// between steps saturation, lightness and alpha linearly and hue along the
// shorter way round the wheel.
func (hslInterpolator) between(start, end color.Color, count int) []color.Color {
	if count <= 0 {
		return nil
	}

	h0, s0, l0 := start.HSL()
	h1, s1, l1 := end.HSL()
	a0, a1 := start.Alpha(), end.Alpha()

	n := float64(count + 1)
	dh := hueDelta(h0, h1) / n
	ds := (s1 - s0) / n
	dl := (l1 - l0) / n
	da := (a1 - a0) / n

	out := make([]color.Color, 0, count)
	for k := 1; k <= count; k++ {
		f := float64(k)
		out = append(out, color.FromHSL(h0+dh*f, s0+ds*f, l0+dl*f, a0+da*f))
	}
	return out
}

// hueDelta returns the signed hue change from start to end, taking the
// other way round the wheel when the direct difference exceeds 180 degrees.
func hueDelta(start, end float64) float64 {
	switch d := start - end; {
	case d > 180:
		return end - start + 360
	case d < -180:
		return end - start - 360
	default:
		return end - start
	}
}
