package gradient

import (
	imgcolor "image/color"
	"time"

	"github.com/opd-ai/go-gradient/pkg/color"
)

// Config describes a gradient to build.
type Config struct {
	// Steps is the number of colours in the result. Required.
	Steps int
	// Stops are the anchor colours; at least two and no more than Steps.
	Stops Stops
	// Model is the interpolation space. The zero value is ModelRGB.
	Model Model
}

// Gradient is a fixed sequence of colours computed once by New.
// It is never modified afterwards and is safe for concurrent reads.
type Gradient struct {
	steps     int
	model     Model
	stops     []color.Color
	positions []int
	colors    []color.Color
}

// New validates cfg and computes the gradient. Any validation failure
// aborts construction and no Gradient is returned. opts may be nil.
func New(cfg Config, opts *Options) (*Gradient, error) {
	log := opts.logger()
	metrics := opts.metrics()
	start := time.Now()

	n, err := normalize(cfg)
	if err != nil {
		log.Debug("gradient rejected", "steps", cfg.Steps, "error", err)
		metrics.recordRejected()
		return nil, err
	}

	g := &Gradient{
		steps:     cfg.Steps,
		model:     cfg.Model,
		stops:     n.colors,
		positions: n.positions,
	}

	passthrough := len(n.colors) == cfg.Steps
	if passthrough {
		log.Warn("number of stops equals steps, no extra colors generated", "steps", cfg.Steps)
		g.colors = append([]color.Color(nil), n.colors...)
	} else {
		g.colors = build(n, cfg.Steps, interpolatorFor(cfg.Model))
	}

	log.Debug("gradient built",
		"steps", cfg.Steps,
		"stops", len(n.colors),
		"model", cfg.Model.String(),
		"positioned", n.positional(),
	)
	metrics.recordBuilt(cfg.Steps, passthrough, time.Since(start))
	return g, nil
}

// build lays out each span as its start colour followed by its interpolated
// colours; the end colour of one span is the start of the next, and the last
// stop closes the sequence.
func build(n normalized, steps int, interp interpolator) []color.Color {
	counts := allocate(n, steps).counts()

	out := make([]color.Color, 0, steps)
	for i, count := range counts {
		out = append(out, n.colors[i])
		out = append(out, interp.between(n.colors[i], n.colors[i+1], count)...)
	}
	return append(out, n.colors[len(n.colors)-1])
}

// Colors returns a copy of the computed colours.
func (g *Gradient) Colors() []color.Color {
	return append([]color.Color(nil), g.colors...)
}

// Strings returns every colour serialised in the given format, such as
// color.FormatHex. An unknown format fails with ErrUnsupportedFormat.
func (g *Gradient) Strings(format color.Format) ([]string, error) {
	out := make([]string, len(g.colors))
	for i, c := range g.colors {
		s, err := c.Format(format)
		if err != nil {
			return nil, err
		}
		out[i] = s
	}
	return out, nil
}

// NRGBA returns the colours rounded to 8 bits per channel.
func (g *Gradient) NRGBA() []imgcolor.NRGBA {
	out := make([]imgcolor.NRGBA, len(g.colors))
	for i, c := range g.colors {
		out[i] = c.NRGBA()
	}
	return out
}

// At returns the i-th colour. It panics if i is out of range.
func (g *Gradient) At(i int) color.Color {
	return g.colors[i]
}

// Len returns the number of colours, which always equals the configured steps.
func (g *Gradient) Len() int {
	return len(g.colors)
}

// Steps returns the configured step count.
func (g *Gradient) Steps() int {
	return g.steps
}

// Model returns the interpolation model.
func (g *Gradient) Model() Model {
	return g.model
}

// Stops returns the stop colours after boundary stops were added.
func (g *Gradient) Stops() []color.Color {
	return append([]color.Color(nil), g.stops...)
}

// Positions returns the stop positions after boundary stops were added,
// or nil when the stops were not positioned.
func (g *Gradient) Positions() []int {
	if g.positions == nil {
		return nil
	}
	return append([]int(nil), g.positions...)
}
