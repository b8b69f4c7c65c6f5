package gradient

import (
	"fmt"
	"math"

	"github.com/opd-ai/go-gradient/pkg/color"
)

// Stop is a colour pinned to a position on the 0-100 scale.
type Stop struct {
	Color color.Color
	Pos   float64
}

// Stops is the set of anchor colours of a gradient. It is either
// PlainColors, spread evenly, or PositionedColors, pinned to positions.
type Stops interface {
	// Len returns the number of stops as supplied.
	Len() int
	isStops()
}

// PlainColors are stops without positions.
type PlainColors []color.Color

// Len implements Stops.
func (p PlainColors) Len() int { return len(p) }

func (PlainColors) isStops() {}

// PositionedColors are stops with explicit positions.
type PositionedColors []Stop

// Len implements Stops.
func (p PositionedColors) Len() int { return len(p) }

func (PositionedColors) isStops() {}

// StopInput is a stop whose shape is only known at run time, such as one
// decoded from a script. Pos is nil for a stop without a position.
type StopInput struct {
	Color color.Color
	Pos   *float64
}

// ResolveStops turns dynamically shaped input into a Stops value. Every
// input must carry a position or none may; anything else fails with
// ErrInconsistentStopShape.
func ResolveStops(in []StopInput) (Stops, error) {
	if len(in) == 0 {
		return PlainColors(nil), nil
	}

	positioned := in[0].Pos != nil
	for i, s := range in {
		if (s.Pos != nil) != positioned {
			return nil, fmt.Errorf("%w: stop %d", ErrInconsistentStopShape, i)
		}
	}

	if !positioned {
		colors := make(PlainColors, len(in))
		for i, s := range in {
			colors[i] = s.Color
		}
		return colors, nil
	}

	stops := make(PositionedColors, len(in))
	for i, s := range in {
		stops[i] = Stop{Color: s.Color, Pos: *s.Pos}
	}
	return stops, nil
}

// normalized holds the stop colours ready for allocation. positions is nil
// unless the stops were positioned, in which case it runs from 0 to 100.
type normalized struct {
	colors    []color.Color
	positions []int
}

func (n normalized) positional() bool {
	return n.positions != nil
}

// normalize validates cfg and returns its stops in allocation-ready form.
func normalize(cfg Config) (normalized, error) {
	if cfg.Steps == 0 && cfg.Stops == nil {
		return normalized{}, ErrMissingArguments
	}
	if cfg.Steps <= 0 {
		return normalized{}, fmt.Errorf("%w: got %d", ErrMissingSteps, cfg.Steps)
	}
	if cfg.Stops == nil || cfg.Stops.Len() < 2 {
		n := 0
		if cfg.Stops != nil {
			n = cfg.Stops.Len()
		}
		return normalized{}, fmt.Errorf("%w: got %d", ErrInsufficientStops, n)
	}
	if cfg.Stops.Len() > cfg.Steps {
		return normalized{}, fmt.Errorf("%w: %d stops, %d steps", ErrTooManyStops, cfg.Stops.Len(), cfg.Steps)
	}
	if !cfg.Model.valid() {
		return normalized{}, fmt.Errorf("%w: %v", ErrInvalidModel, cfg.Model)
	}

	var n normalized
	switch stops := cfg.Stops.(type) {
	case PlainColors:
		n.colors = append([]color.Color(nil), stops...)
	case PositionedColors:
		var err error
		if n, err = normalizePositioned(stops); err != nil {
			return normalized{}, err
		}
	default:
		return normalized{}, fmt.Errorf("%w: unknown stops type %T", ErrInconsistentStopShape, cfg.Stops)
	}

	// Boundary stops can push the count past the step budget.
	if len(n.colors) > cfg.Steps {
		return normalized{}, fmt.Errorf("%w: %d stops after adding boundary stops, %d steps",
			ErrTooManyStops, len(n.colors), cfg.Steps)
	}
	return n, nil
}

func normalizePositioned(stops PositionedColors) (normalized, error) {
	colors := make([]color.Color, 0, len(stops)+2)
	pos := make([]float64, 0, len(stops)+2)
	for _, s := range stops {
		colors = append(colors, s.Color)
		pos = append(pos, s.Pos)
	}

	if pos[0] != 0 {
		colors = append([]color.Color{colors[0]}, colors...)
		pos = append([]float64{0}, pos...)
	}
	if last := len(pos) - 1; pos[last] < 100 {
		colors = append(colors, colors[last])
		pos = append(pos, 100)
	}

	// Ordering and equality are only compared from index 2 onward; index 1
	// is checked for range and integrality only.
	for i, p := range pos {
		if i > 1 && p < pos[i-1] {
			return normalized{}, &StopError{Err: ErrPositionsOutOfOrder, Index: i, Position: p}
		}
		if i > 1 && p == pos[i-1] {
			return normalized{}, &StopError{Err: ErrPositionsEqual, Index: i, Position: p}
		}
		if p < 0 || p > 100 {
			return normalized{}, &StopError{Err: ErrPositionOutOfRange, Index: i, Position: p}
		}
		if math.Trunc(p) != p {
			return normalized{}, &StopError{Err: ErrNonIntegerPosition, Index: i, Position: p}
		}
	}

	positions := make([]int, len(pos))
	for i, p := range pos {
		positions[i] = int(p)
	}
	return normalized{colors: colors, positions: positions}, nil
}
