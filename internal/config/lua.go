// Package config loads gradient definitions from Lua configuration chunks.
//
// A chunk assigns its definitions to the gradients global:
//
//	gradients = {
//	    sunset = { steps = 8, model = "hsl", colors = { "#ff5e3a", "#2a1b6e" } },
//	    meter = {
//	        steps = 10,
//	        format = "rgb",
//	        colors = { { color = "green", pos = 0 }, { color = "red", pos = 100 } },
//	    },
//	}
package config

import (
	"fmt"
	"io"
	"os"
	"sort"
	"sync"

	"github.com/arnodel/golua/lib"
	rt "github.com/arnodel/golua/runtime"

	"github.com/opd-ai/go-gradient/pkg/color"
	"github.com/opd-ai/go-gradient/pkg/gradient"
)

// NamedConfig is one gradient definition read from a configuration chunk.
type NamedConfig struct {
	// Name is the key the definition was assigned to.
	Name string
	// Config is ready to pass to gradient.New.
	Config gradient.Config
	// Format is the output format requested by the definition.
	Format color.Format
}

// LuaConfigParser evaluates Lua configuration chunks and extracts the
// gradient definitions they declare.
type LuaConfigParser struct {
	runtime *rt.Runtime
	cleanup func()
	opts    parserOptions
	mu      sync.Mutex
}

// NewLuaConfigParser creates a new LuaConfigParser with a fresh Lua runtime.
func NewLuaConfigParser(opts ...ParserOption) (*LuaConfigParser, error) {
	return NewLuaConfigParserWithOutput(io.Discard, opts...)
}

// NewLuaConfigParserWithOutput creates a LuaConfigParser with custom output.
func NewLuaConfigParserWithOutput(stdout io.Writer, opts ...ParserOption) (*LuaConfigParser, error) {
	if stdout == nil {
		stdout = os.Stdout
	}

	options := defaultParserOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&options)
		}
	}

	runtime := rt.New(stdout)
	cleanup := lib.LoadAll(runtime)

	return &LuaConfigParser{
		runtime: runtime,
		cleanup: cleanup,
		opts:    options,
	}, nil
}

// Parse executes a Lua configuration chunk and returns its gradient
// definitions sorted by name. A chunk that never assigns gradients yields
// no definitions.
func (p *LuaConfigParser) Parse(content []byte) (defs []NamedConfig, err error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	// golua panics when a hard limit is exceeded
	defer func() {
		if r := recover(); r != nil {
			defs, err = nil, fmt.Errorf("Lua configuration exceeded resource limits: %v", r)
		}
	}()

	// Start from an empty table so definitions from an earlier chunk do not leak
	p.runtime.GlobalEnv().Set(rt.StringValue(GradientsGlobal), rt.TableValue(rt.NewTable()))

	closure, err := p.runtime.CompileAndLoadLuaChunk(
		"config",
		content,
		rt.TableValue(p.runtime.GlobalEnv()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to compile Lua configuration: %w", err)
	}

	// Execute with resource limits
	ctx := rt.RuntimeContextDef{
		HardLimits: rt.RuntimeResources{
			Cpu:    p.opts.cpuLimit,
			Memory: p.opts.memoryLimit,
		},
	}
	p.runtime.PushContext(ctx)
	defer p.runtime.PopContext()

	thread := p.runtime.MainThread()
	if _, err = rt.Call1(thread, rt.FunctionValue(closure)); err != nil {
		return nil, fmt.Errorf("failed to execute Lua configuration: %w", err)
	}

	return p.extractDefinitions()
}

// extractDefinitions decodes every entry of the gradients global.
func (p *LuaConfigParser) extractDefinitions() ([]NamedConfig, error) {
	val := p.runtime.GlobalEnv().Get(rt.StringValue(GradientsGlobal))
	if val == rt.NilValue {
		return nil, nil
	}

	table, ok := val.TryTable()
	if !ok {
		return nil, fmt.Errorf("%s is not a table", GradientsGlobal)
	}

	d := decoder{expandEnv: p.opts.expandEnv}
	var defs []NamedConfig
	for k, v, ok := table.Next(rt.NilValue); ok && !k.IsNil(); k, v, ok = table.Next(k) {
		name, isString := k.TryString()
		if !isString {
			return nil, fmt.Errorf("%s: keys must be names", GradientsGlobal)
		}

		def, err := d.decodeDefinition(name, v)
		if err != nil {
			return nil, err
		}
		defs = append(defs, def)
	}

	sort.Slice(defs, func(i, j int) bool { return defs[i].Name < defs[j].Name })
	return defs, nil
}

func (d decoder) decodeDefinition(name string, val rt.Value) (NamedConfig, error) {
	table, ok := val.TryTable()
	if !ok {
		return NamedConfig{}, fmt.Errorf("gradient %q: definition is not a table", name)
	}

	cfg, err := d.decode(table)
	if err != nil {
		return NamedConfig{}, fmt.Errorf("gradient %q: %w", name, err)
	}

	format := DefaultFormat
	if s := getTableString(table, "format"); s != nil {
		if format, err = color.ParseFormat(*s); err != nil {
			return NamedConfig{}, fmt.Errorf("gradient %q: %w", name, err)
		}
	}

	return NamedConfig{Name: name, Config: cfg, Format: format}, nil
}

// Close releases resources associated with the parser.
func (p *LuaConfigParser) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.cleanup != nil {
		p.cleanup()
		p.cleanup = nil
	}
	return nil
}
