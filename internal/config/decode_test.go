package config

import (
	"errors"
	"io"
	"testing"

	rt "github.com/arnodel/golua/runtime"

	"github.com/opd-ai/go-gradient/pkg/color"
	"github.com/opd-ai/go-gradient/pkg/gradient"
)

// evalTable evaluates a Lua table constructor.
func evalTable(t *testing.T, expr string) *rt.Table {
	t.Helper()
	r := rt.New(io.Discard)
	closure, err := r.CompileAndLoadLuaChunk("test", []byte("return "+expr), rt.TableValue(r.GlobalEnv()))
	if err != nil {
		t.Fatalf("compile %s: %v", expr, err)
	}
	v, err := rt.Call1(r.MainThread(), rt.FunctionValue(closure))
	if err != nil {
		t.Fatalf("eval %s: %v", expr, err)
	}
	table, ok := v.TryTable()
	if !ok {
		t.Fatalf("%s did not evaluate to a table", expr)
	}
	return table
}

func TestDecodeTable(t *testing.T) {
	cfg, err := DecodeTable(evalTable(t, `{
		steps = 6.0,
		model = "HSL",
		colors = { "#f00", { 0, 0, 255, 0.5 }, "rgb(0, 255, 0)" },
	}`))
	if err != nil {
		t.Fatalf("DecodeTable() error = %v", err)
	}

	if cfg.Steps != 6 {
		t.Errorf("Steps = %d, want 6", cfg.Steps)
	}
	if cfg.Model != gradient.ModelHSL {
		t.Errorf("Model = %v, want hsl", cfg.Model)
	}

	stops, ok := cfg.Stops.(gradient.PlainColors)
	if !ok || len(stops) != 3 {
		t.Fatalf("Stops = %#v, want three plain colours", cfg.Stops)
	}
	want := []color.Color{
		color.MustParse("#f00"),
		color.FromRGBA(0, 0, 255, 0.5),
		color.MustParse("#0f0"),
	}
	for i := range want {
		if stops[i] != want[i] {
			t.Errorf("Stops[%d] = %v, want %v", i, stops[i], want[i])
		}
	}
}

func TestDecodeTablePositioned(t *testing.T) {
	cfg, err := DecodeTable(evalTable(t, `{
		steps = 5,
		model = 1,
		colors = { { color = "red", pos = 10 }, { color = { 0, 0, 255 }, pos = 90.0 } },
	}`))
	if err != nil {
		t.Fatalf("DecodeTable() error = %v", err)
	}
	if cfg.Model != gradient.ModelHSL {
		t.Errorf("Model = %v, want hsl", cfg.Model)
	}

	stops, ok := cfg.Stops.(gradient.PositionedColors)
	if !ok || len(stops) != 2 {
		t.Fatalf("Stops = %#v, want two positioned stops", cfg.Stops)
	}
	if stops[0].Pos != 10 || stops[1].Pos != 90 {
		t.Errorf("positions = %v, %v, want 10, 90", stops[0].Pos, stops[1].Pos)
	}
	if stops[1].Color != color.FromRGB(0, 0, 255) {
		t.Errorf("Stops[1].Color = %v, want #0000FF", stops[1].Color)
	}
}

func TestDecodeTableDefaultModel(t *testing.T) {
	cfg, err := DecodeTable(evalTable(t, `{ steps = 2, colors = { "#000", "#fff" } }`))
	if err != nil {
		t.Fatalf("DecodeTable() error = %v", err)
	}
	if cfg.Model != DefaultModel {
		t.Errorf("Model = %v, want %v", cfg.Model, DefaultModel)
	}
}

func TestDecodeTableErrors(t *testing.T) {
	tests := []struct {
		name    string
		expr    string
		wantErr error
	}{
		{"no steps", `{ colors = { "#000", "#fff" } }`, gradient.ErrMissingSteps},
		{"fractional steps", `{ steps = 4.5, colors = { "#000", "#fff" } }`, gradient.ErrMissingSteps},
		{"string steps", `{ steps = "5", colors = { "#000", "#fff" } }`, gradient.ErrMissingSteps},
		{"no colors", `{ steps = 5 }`, gradient.ErrInsufficientStops},
		{"colors not a table", `{ steps = 5, colors = "#000" }`, gradient.ErrInsufficientStops},
		{"unknown model name", `{ steps = 5, model = "cmyk", colors = { "#000", "#fff" } }`, gradient.ErrInvalidModel},
		{"unknown model number", `{ steps = 5, model = 7, colors = { "#000", "#fff" } }`, gradient.ErrInvalidModel},
		{"boolean model", `{ steps = 5, model = true, colors = { "#000", "#fff" } }`, gradient.ErrInvalidModel},
		{"mixed shapes", `{ steps = 5, colors = { "#000", { color = "#fff", pos = 100 } } }`, gradient.ErrInconsistentStopShape},
		{"short tuple", `{ steps = 5, colors = { { 1, 2 }, "#fff" } }`, gradient.ErrInvalidColor},
		{"non-numeric channel", `{ steps = 5, colors = { { 1, "x", 3 }, "#fff" } }`, gradient.ErrInvalidColor},
		{"numeric colour", `{ steps = 5, colors = { 5, "#fff" } }`, gradient.ErrInvalidColor},
		{"bad literal", `{ steps = 5, colors = { "#ggg", "#fff" } }`, gradient.ErrInvalidColor},
		{"unexpanded reference", `{ steps = 5, colors = { "$ACCENT", "#fff" } }`, gradient.ErrInvalidColor},
		{"string position", `{ steps = 5, colors = { { color = "#000", pos = "0" }, { color = "#fff", pos = 100 } } }`, gradient.ErrInvalidPosition},
		{"nan position", `{ steps = 5, colors = { { color = "#000", pos = 0/0 }, { color = "#fff", pos = 100 } } }`, gradient.ErrInvalidPosition},
		{"nan channel", `{ steps = 5, colors = { { 0/0, 0, 0 }, "#fff" } }`, gradient.ErrInvalidColor},
		{"infinite channel", `{ steps = 5, colors = { { 0, 1/0, 0 }, "#fff" } }`, gradient.ErrInvalidColor},
		{"nan literal", `{ steps = 5, colors = { "rgb(nan, 0, 0)", "#fff" } }`, gradient.ErrInvalidColor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeTable(evalTable(t, tt.expr))
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("DecodeTable() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestDecodeTableNil(t *testing.T) {
	if _, err := DecodeTable(nil); !errors.Is(err, gradient.ErrMissingArguments) {
		t.Errorf("DecodeTable(nil) error = %v, want ErrMissingArguments", err)
	}
}

func TestDecodeTableBuilds(t *testing.T) {
	cfg, err := DecodeTable(evalTable(t, `{
		steps = 5,
		colors = { { color = "#f00", pos = 0 }, { color = "#00f", pos = 90 } },
	}`))
	if err != nil {
		t.Fatalf("DecodeTable() error = %v", err)
	}

	g, err := gradient.New(cfg, nil)
	if err != nil {
		t.Fatalf("gradient.New() error = %v", err)
	}
	got, _ := g.Strings(color.FormatHex)
	want := []string{"#FF0000", "#AA0055", "#5500AA", "#0000FF", "#0000FF"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("color %d = %s, want %s", i, got[i], want[i])
		}
	}
}
