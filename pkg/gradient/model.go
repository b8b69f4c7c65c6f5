package gradient

import (
	"fmt"
	"strings"
)

// Model selects the colour space in which stops are interpolated.
type Model int

const (
	// ModelRGB interpolates red, green and blue linearly. It is the default.
	ModelRGB Model = iota
	// ModelHSL interpolates hue along the shorter arc of the colour wheel and
	// saturation, lightness and alpha linearly.
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
		return fmt.Sprintf("Model(%d)", int(m))
	}
}

func (m Model) valid() bool {
	return m == ModelRGB || m == ModelHSL
}

// ParseModel resolves a model name case-insensitively. The empty string
// selects ModelRGB.
func ParseModel(name string) (Model, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "rgb":
		return ModelRGB, nil
	case "hsl":
		return ModelHSL, nil
	default:
		return ModelRGB, fmt.Errorf("%w: %q", ErrInvalidModel, name)
	}
}
