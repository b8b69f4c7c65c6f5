package config

import (
	"github.com/opd-ai/go-gradient/pkg/color"
	"github.com/opd-ai/go-gradient/pkg/gradient"
)

// Default values for configuration options.
const (
	// GradientsGlobal is the Lua global a configuration chunk assigns its
	// definitions to.
	GradientsGlobal = "gradients"
	// DefaultCPULimit is the instruction budget for one configuration chunk.
	DefaultCPULimit = 10_000_000
	// DefaultMemoryLimit is the memory budget for one configuration chunk (50 MB).
	DefaultMemoryLimit = 50 * 1024 * 1024
	// DefaultModel is the interpolation model of a definition without one.
	DefaultModel = gradient.ModelRGB
	// DefaultFormat is the output format of a definition without one.
	DefaultFormat = color.FormatHex
)

// ParserOption configures a LuaConfigParser at construction time.
type ParserOption func(*parserOptions)

type parserOptions struct {
	expandEnv   bool
	cpuLimit    uint64
	memoryLimit uint64
}

// defaultParserOptions returns the default options: environment expansion
// on and the default resource limits.
func defaultParserOptions() parserOptions {
	return parserOptions{
		expandEnv:   true,
		cpuLimit:    DefaultCPULimit,
		memoryLimit: DefaultMemoryLimit,
	}
}

// WithExpandEnv controls whether colour literals have environment
// references expanded before parsing.
func WithExpandEnv(expand bool) ParserOption {
	return func(o *parserOptions) {
		o.expandEnv = expand
	}
}

// WithLimits sets the CPU instruction and memory limits applied while a
// configuration chunk runs. 0 means unlimited.
func WithLimits(cpu, memory uint64) ParserOption {
	return func(o *parserOptions) {
		o.cpuLimit = cpu
		o.memoryLimit = memory
	}
}
