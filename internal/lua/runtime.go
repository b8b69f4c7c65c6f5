// Package lua embeds a sandboxed Golua runtime and exposes gradient
// building to Lua scripts through the gradient module.
package lua

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"os"
	"sync"

	"github.com/arnodel/golua/lib"
	rt "github.com/arnodel/golua/runtime"
)

// RuntimeConfig contains configuration options for the Lua runtime.
type RuntimeConfig struct {
	// CPULimit is the CPU instruction limit for Lua execution.
	// 0 means unlimited.
	CPULimit uint64
	// MemoryLimit is the maximum memory in bytes that Lua can allocate.
	// 0 means unlimited.
	MemoryLimit uint64
	// Stdout is the writer for Lua print output.
	// If nil, output is only captured.
	Stdout io.Writer
}

// DefaultConfig returns a RuntimeConfig with sensible default values.
// CPU limit: 10,000,000 instructions
// Memory limit: 50 MB
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		CPULimit:    10_000_000,
		MemoryLimit: 50 * 1024 * 1024, // 50 MB
		Stdout:      os.Stdout,
	}
}

// Runtime wraps a Golua runtime. Every call into Lua runs under the
// configured resource limits and is serialised by a mutex.
type Runtime struct {
	config  RuntimeConfig
	runtime *rt.Runtime
	output  *bytes.Buffer
	cleanup func()
	mu      sync.RWMutex
}

// New creates a Runtime with the Lua standard libraries loaded.
func New(config RuntimeConfig) (*Runtime, error) {
	output := &bytes.Buffer{}
	var stdout io.Writer = output
	if config.Stdout != nil {
		// Capture output while also writing to configured stdout
		stdout = io.MultiWriter(config.Stdout, output)
	}

	runtime := rt.New(stdout)
	cleanup := lib.LoadAll(runtime)

	return &Runtime{
		config:  config,
		runtime: runtime,
		output:  output,
		cleanup: cleanup,
	}, nil
}

// LoadString compiles a Lua chunk. The returned Closure can be run with Execute.
func (r *Runtime) LoadString(name, code string) (*rt.Closure, error) {
	return r.load(name, []byte(code))
}

// LoadFile reads and compiles a Lua file from disk.
func (r *Runtime) LoadFile(path string) (*rt.Closure, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read Lua file %s: %w", path, err)
	}
	return r.load(path, content)
}

// LoadFileFromFS reads and compiles a Lua file from fsys, such as one
// embedded with go:embed.
func (r *Runtime) LoadFileFromFS(fsys fs.FS, path string) (*rt.Closure, error) {
	content, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read Lua file from FS %s: %w", path, err)
	}
	return r.load(path, content)
}

func (r *Runtime) load(name string, content []byte) (*rt.Closure, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	closure, err := r.runtime.CompileAndLoadLuaChunk(
		name,
		content,
		rt.TableValue(r.runtime.GlobalEnv()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load Lua chunk %s: %w", name, err)
	}

	return closure, nil
}

// Execute runs a compiled Lua closure within resource limits and returns
// its first result.
func (r *Runtime) Execute(closure *rt.Closure) (rt.Value, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	result, err := r.call(rt.FunctionValue(closure))
	if err != nil {
		return rt.NilValue, fmt.Errorf("Lua execution error: %w", err)
	}
	return result, nil
}

// ExecuteString compiles and executes a Lua code string.
func (r *Runtime) ExecuteString(name, code string) (rt.Value, error) {
	closure, err := r.LoadString(name, code)
	if err != nil {
		return rt.NilValue, err
	}
	return r.Execute(closure)
}

// ExecuteFile loads and executes a Lua file.
func (r *Runtime) ExecuteFile(path string) (rt.Value, error) {
	closure, err := r.LoadFile(path)
	if err != nil {
		return rt.NilValue, err
	}
	return r.Execute(closure)
}

// CallFunction calls a global Lua function by name.
func (r *Runtime) CallFunction(name string, args ...rt.Value) (rt.Value, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	fn := r.runtime.GlobalEnv().Get(rt.StringValue(name))
	if fn == rt.NilValue {
		return rt.NilValue, fmt.Errorf("%w: %s", ErrFunctionNotFound, name)
	}

	result, err := r.call(fn, args...)
	if err != nil {
		return rt.NilValue, fmt.Errorf("failed to call function %s: %w", name, err)
	}
	return result, nil
}

// call runs fn on the main thread under the configured limits. The caller
// must hold r.mu.
func (r *Runtime) call(fn rt.Value, args ...rt.Value) (result rt.Value, err error) {
	r.runtime.PushContext(rt.RuntimeContextDef{
		HardLimits: rt.RuntimeResources{
			Cpu:    r.config.CPULimit,
			Memory: r.config.MemoryLimit,
		},
	})
	defer r.runtime.PopContext()

	// golua panics when a hard limit is exceeded
	defer func() {
		if p := recover(); p != nil {
			result, err = rt.NilValue, fmt.Errorf("%w: %v", ErrResourceLimit, p)
		}
	}()

	return rt.Call1(r.runtime.MainThread(), fn, args...)
}

// GetGlobal retrieves a global variable from the Lua environment.
func (r *Runtime) GetGlobal(name string) rt.Value {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.runtime.GlobalEnv().Get(rt.StringValue(name))
}

// SetGlobal sets a global variable in the Lua environment.
func (r *Runtime) SetGlobal(name string, value rt.Value) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.runtime.GlobalEnv().Set(rt.StringValue(name), value)
}

// SetGoFunction registers a Go function in the Lua global environment.
// The function is declared memory and CPU safe so it can run under limits.
func (r *Runtime) SetGoFunction(name string, fn rt.GoFunctionFunc, nArgs int, hasVarArgs bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.runtime.GlobalEnv().Set(rt.StringValue(name), rt.FunctionValue(newGoFunction(name, fn, nArgs, hasVarArgs)))
}

func newGoFunction(name string, fn rt.GoFunctionFunc, nArgs int, hasVarArgs bool) *rt.GoFunction {
	goFunc := rt.NewGoFunction(fn, name, nArgs, hasVarArgs)
	rt.SolemnlyDeclareCompliance(rt.ComplyMemSafe|rt.ComplyCpuSafe, goFunc)
	return goFunc
}

// registerLoaded stores a module table in package.loaded so that require
// returns it. It does nothing when the package library is not loaded.
func (r *Runtime) registerLoaded(name string, module rt.Value) {
	r.mu.Lock()
	defer r.mu.Unlock()

	pkgTable, ok := r.runtime.GlobalEnv().Get(rt.StringValue("package")).TryTable()
	if !ok {
		return
	}
	if loaded, ok := pkgTable.Get(rt.StringValue("loaded")).TryTable(); ok {
		loaded.Set(rt.StringValue(name), module)
	}
}

// Output returns the captured output from Lua print statements.
func (r *Runtime) Output() string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.output.String()
}

// ClearOutput clears the captured output buffer.
func (r *Runtime) ClearOutput() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.output.Reset()
}

// Lua returns the underlying Golua runtime.
// Use with caution as this bypasses thread-safety protections.
func (r *Runtime) Lua() *rt.Runtime {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.runtime
}

// Config returns the runtime configuration.
func (r *Runtime) Config() RuntimeConfig {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.config
}

// Close releases resources associated with the runtime.
// The runtime should not be used after calling Close.
func (r *Runtime) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.cleanup != nil {
		r.cleanup()
		r.cleanup = nil
	}

	return nil
}
