package config

import (
	"fmt"
	"math"

	rt "github.com/arnodel/golua/runtime"

	"github.com/opd-ai/go-gradient/pkg/color"
	"github.com/opd-ai/go-gradient/pkg/gradient"
)

// DecodeTable decodes a single gradient definition:
//
//	{
//	    steps = 5,
//	    model = "hsl",
//	    colors = { "#f00", { 0, 255, 0 }, { color = "#00f", pos = 100 } },
//	}
//
// steps must be a whole number and colors a table. Each colour is a literal
// string, an {r, g, b[, a]} tuple or a {color = ..., pos = ...} stop. The
// result still has to pass gradient.New; DecodeTable only checks shape.
func DecodeTable(table *rt.Table) (gradient.Config, error) {
	return decoder{}.decode(table)
}

// decoder turns Lua values into gradient types.
type decoder struct {
	expandEnv bool
}

func (d decoder) decode(table *rt.Table) (gradient.Config, error) {
	if table == nil {
		return gradient.Config{}, gradient.ErrMissingArguments
	}

	steps, err := decodeSteps(table.Get(rt.StringValue("steps")))
	if err != nil {
		return gradient.Config{}, err
	}

	model, err := decodeModel(table.Get(rt.StringValue("model")))
	if err != nil {
		return gradient.Config{}, err
	}

	colorsTable, ok := table.Get(rt.StringValue("colors")).TryTable()
	if !ok {
		return gradient.Config{}, fmt.Errorf("%w: colors must be a table", gradient.ErrInsufficientStops)
	}

	inputs, err := d.decodeStops(colorsTable)
	if err != nil {
		return gradient.Config{}, err
	}

	stops, err := gradient.ResolveStops(inputs)
	if err != nil {
		return gradient.Config{}, err
	}

	return gradient.Config{Steps: steps, Stops: stops, Model: model}, nil
}

func decodeSteps(val rt.Value) (int, error) {
	if n, ok := val.TryInt(); ok {
		return int(n), nil
	}
	if f, ok := val.TryFloat(); ok && f == math.Trunc(f) && !math.IsInf(f, 0) {
		return int(f), nil
	}
	return 0, fmt.Errorf("%w: steps must be a whole number", gradient.ErrMissingSteps)
}

// decodeModel accepts a model name or one of the numeric MODEL_* constants.
func decodeModel(val rt.Value) (gradient.Model, error) {
	if val == rt.NilValue {
		return DefaultModel, nil
	}
	if s, ok := val.TryString(); ok {
		return gradient.ParseModel(s)
	}
	if n, ok := val.TryInt(); ok {
		m := gradient.Model(n)
		if m == gradient.ModelRGB || m == gradient.ModelHSL {
			return m, nil
		}
		return 0, fmt.Errorf("%w: %d", gradient.ErrInvalidModel, n)
	}
	return 0, fmt.Errorf("%w: model must be a string", gradient.ErrInvalidModel)
}

func (d decoder) decodeStops(table *rt.Table) ([]gradient.StopInput, error) {
	n := int(table.Len())
	inputs := make([]gradient.StopInput, 0, n)
	for i := 1; i <= n; i++ {
		in, err := d.decodeStop(table.Get(rt.IntValue(int64(i))))
		if err != nil {
			return nil, fmt.Errorf("colors[%d]: %w", i, err)
		}
		inputs = append(inputs, in)
	}
	return inputs, nil
}

func (d decoder) decodeStop(val rt.Value) (gradient.StopInput, error) {
	table, ok := val.TryTable()
	if !ok {
		c, err := d.decodeColor(val)
		return gradient.StopInput{Color: c}, err
	}

	colorVal := table.Get(rt.StringValue("color"))
	if colorVal == rt.NilValue {
		c, err := decodeTuple(table)
		return gradient.StopInput{Color: c}, err
	}

	c, err := d.decodeColor(colorVal)
	if err != nil {
		return gradient.StopInput{}, err
	}

	in := gradient.StopInput{Color: c}
	if posVal := table.Get(rt.StringValue("pos")); posVal != rt.NilValue {
		pos, ok := toFloat(posVal)
		if !ok || math.IsNaN(pos) {
			return gradient.StopInput{}, gradient.ErrInvalidPosition
		}
		in.Pos = &pos
	}
	return in, nil
}

func (d decoder) decodeColor(val rt.Value) (color.Color, error) {
	if s, ok := val.TryString(); ok {
		if d.expandEnv {
			s = ExpandEnv(s)
		}
		return color.Parse(s)
	}
	if table, ok := val.TryTable(); ok {
		return decodeTuple(table)
	}
	return color.Color{}, fmt.Errorf("%w: expected a string or a channel table", gradient.ErrInvalidColor)
}

// decodeTuple reads an {r, g, b[, a]} array.
func decodeTuple(table *rt.Table) (color.Color, error) {
	n := int(table.Len())
	values := make([]float64, 0, n)
	for i := 1; i <= n; i++ {
		v, ok := toFloat(table.Get(rt.IntValue(int64(i))))
		if !ok {
			return color.Color{}, fmt.Errorf("%w: channel %d is not a number", gradient.ErrInvalidColor, i)
		}
		values = append(values, v)
	}
	return color.FromValues(color.ModelRGB, values...)
}

// getTableString retrieves a string value from a Lua table.
// Returns nil if the key doesn't exist or is not a string.
func getTableString(table *rt.Table, key string) *string {
	val := table.Get(rt.StringValue(key))
	if val == rt.NilValue {
		return nil
	}

	if s, ok := val.TryString(); ok {
		return &s
	}

	return nil
}

func toFloat(val rt.Value) (float64, bool) {
	if f, ok := val.TryFloat(); ok {
		return f, true
	}
	if n, ok := val.TryInt(); ok {
		return float64(n), true
	}
	return 0, false
}
