package lua

import (
	"fmt"

	rt "github.com/arnodel/golua/runtime"

	"github.com/opd-ai/go-gradient/internal/config"
	"github.com/opd-ai/go-gradient/pkg/color"
	"github.com/opd-ai/go-gradient/pkg/gradient"
)

// ModuleName is the global and package.loaded name of the gradient module.
const ModuleName = "gradient"

// bytesPerStep approximates the memory one gradient step costs a script:
// the colour value, its formatted string and the result table slot.
const bytesPerStep = 96

// GradientModule exposes gradient building to Lua scripts:
//
//	local colors = gradient.build{ steps = 5, model = "hsl", colors = { "#f00", "#00f" } }
//	local mid = gradient.parse("orange", "rgb")
//	local ch = gradient.channels("#ff8800")  -- ch.r, ch.h, ch.a ...
//
// build and parse take an optional trailing format name; the default is hex.
type GradientModule struct {
	runtime *Runtime
	options gradient.Options
}

// GradientModuleOption configures a GradientModule at construction time.
type GradientModuleOption func(*GradientModule)

// WithLogger sets the logger passed to every gradient built from Lua.
func WithLogger(logger gradient.Logger) GradientModuleOption {
	return func(gm *GradientModule) {
		if logger != nil {
			gm.options.Logger = logger
		}
	}
}

// WithMetrics records every gradient built from Lua in m.
func WithMetrics(m *gradient.Metrics) GradientModuleOption {
	return func(gm *GradientModule) {
		gm.options.Metrics = m
	}
}

// NewGradientModule creates the gradient module and registers it as a
// global table and in package.loaded.
func NewGradientModule(runtime *Runtime, opts ...GradientModuleOption) (*GradientModule, error) {
	if runtime == nil {
		return nil, ErrNilRuntime
	}

	gm := &GradientModule{
		runtime: runtime,
		options: gradient.DefaultOptions(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(gm)
		}
	}

	gm.registerModule()
	return gm, nil
}

func (gm *GradientModule) registerModule() {
	table := rt.NewTable()

	gm.setTableGoFunction(table, "build", gm.build, 2)
	gm.setTableGoFunction(table, "parse", gm.parse, 2)
	gm.setTableGoFunction(table, "channels", gm.channels, 1)

	table.Set(rt.StringValue("MODEL_RGB"), rt.IntValue(int64(gradient.ModelRGB)))
	table.Set(rt.StringValue("MODEL_HSL"), rt.IntValue(int64(gradient.ModelHSL)))

	formats := rt.NewTable()
	for i, f := range color.Formats() {
		formats.Set(rt.IntValue(int64(i+1)), rt.StringValue(string(f)))
	}
	table.Set(rt.StringValue("FORMATS"), rt.TableValue(formats))

	module := rt.TableValue(table)
	gm.runtime.SetGlobal(ModuleName, module)
	gm.runtime.registerLoaded(ModuleName, module)
}

func (gm *GradientModule) setTableGoFunction(table *rt.Table, name string, fn rt.GoFunctionFunc, nArgs int) {
	table.Set(rt.StringValue(name), rt.FunctionValue(newGoFunction(name, fn, nArgs, false)))
}

// Build decodes a definition table and builds the gradient with the
// module's options.
func (gm *GradientModule) Build(def *rt.Table) (*gradient.Gradient, error) {
	cfg, err := config.DecodeTable(def)
	if err != nil {
		return nil, err
	}
	return gradient.New(cfg, &gm.options)
}

// build handles gradient.build(def [, format]) and returns an array of
// formatted colours.
func (gm *GradientModule) build(t *rt.Thread, c *rt.GoCont) (rt.Cont, error) {
	args := c.Args()
	if len(args) == 0 {
		return nil, fmt.Errorf("gradient.build: %w", gradient.ErrMissingArguments)
	}
	def, ok := args[0].TryTable()
	if !ok {
		return nil, fmt.Errorf("gradient.build: %w: definition must be a table", ErrBadArgument)
	}

	format, err := formatArg(args, 1)
	if err != nil {
		return nil, fmt.Errorf("gradient.build: %w", err)
	}

	cfg, err := config.DecodeTable(def)
	if err != nil {
		return nil, fmt.Errorf("gradient.build: %w", err)
	}
	if cfg.Steps > 0 {
		// Panics when the script's limits cannot cover the result.
		t.RequireCPU(uint64(cfg.Steps))
		t.RequireMem(uint64(cfg.Steps) * bytesPerStep)
	}

	g, err := gradient.New(cfg, &gm.options)
	if err != nil {
		return nil, fmt.Errorf("gradient.build: %w", err)
	}

	strs, err := g.Strings(format)
	if err != nil {
		return nil, fmt.Errorf("gradient.build: %w", err)
	}

	result := rt.NewTable()
	for i, s := range strs {
		result.Set(rt.IntValue(int64(i+1)), rt.StringValue(s))
	}
	return c.PushingNext1(t.Runtime, rt.TableValue(result)), nil
}

// parse handles gradient.parse(literal [, format]).
func (gm *GradientModule) parse(t *rt.Thread, c *rt.GoCont) (rt.Cont, error) {
	literal, err := c.StringArg(0)
	if err != nil {
		return nil, fmt.Errorf("gradient.parse: %w", err)
	}

	format, err := formatArg(c.Args(), 1)
	if err != nil {
		return nil, fmt.Errorf("gradient.parse: %w", err)
	}

	col, err := color.Parse(literal)
	if err != nil {
		return nil, fmt.Errorf("gradient.parse: %w", err)
	}

	s, err := col.Format(format)
	if err != nil {
		return nil, fmt.Errorf("gradient.parse: %w", err)
	}
	return c.PushingNext1(t.Runtime, rt.StringValue(s)), nil
}

// channels handles gradient.channels(literal), returning a table with the
// r, g, b, a, h, s and l channels of the colour.
func (gm *GradientModule) channels(t *rt.Thread, c *rt.GoCont) (rt.Cont, error) {
	literal, err := c.StringArg(0)
	if err != nil {
		return nil, fmt.Errorf("gradient.channels: %w", err)
	}

	col, err := color.Parse(literal)
	if err != nil {
		return nil, fmt.Errorf("gradient.channels: %w", err)
	}

	h, s, l := col.HSL()
	result := rt.NewTable()
	for _, ch := range []struct {
		key   string
		value float64
	}{
		{"r", col.Red()},
		{"g", col.Green()},
		{"b", col.Blue()},
		{"a", col.Alpha()},
		{"h", h},
		{"s", s},
		{"l", l},
	} {
		result.Set(rt.StringValue(ch.key), rt.FloatValue(ch.value))
	}
	return c.PushingNext1(t.Runtime, rt.TableValue(result)), nil
}

// formatArg reads an optional format name at args[idx].
func formatArg(args []rt.Value, idx int) (color.Format, error) {
	if idx >= len(args) || args[idx].IsNil() {
		return color.FormatHex, nil
	}
	name, ok := args[idx].TryString()
	if !ok {
		return "", fmt.Errorf("%w: format must be a string", ErrBadArgument)
	}
	return color.ParseFormat(name)
}
