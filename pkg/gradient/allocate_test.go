package gradient

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/opd-ai/go-gradient/pkg/color"
)

func stopsOf(n int) []color.Color {
	return make([]color.Color, n)
}

func TestAllocateUniform(t *testing.T) {
	tests := []struct {
		name     string
		stops    int
		steps    int
		spans    []int
		overflow int
		counts   []int
	}{
		{"even split", 3, 7, []int{2, 2}, 0, []int{2, 2}},
		{"one left over", 3, 8, []int{2, 2}, 1, []int{3, 2}},
		{"one left over across three spans", 4, 11, []int{2, 2, 2}, 1, []int{3, 2, 2}},
		{"two left over", 4, 12, []int{2, 2, 2}, 2, []int{3, 3, 2}},
		{"no free steps", 3, 3, []int{0, 0}, 0, []int{0, 0}},
		{"fewer free steps than spans", 5, 7, []int{0, 0, 0, 0}, 2, []int{1, 1, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := allocate(normalized{colors: stopsOf(tt.stops)}, tt.steps)
			if diff := cmp.Diff(tt.spans, a.spans); diff != "" {
				t.Errorf("spans mismatch (-want +got):\n%s", diff)
			}
			if a.overflow != tt.overflow {
				t.Errorf("overflow = %d, want %d", a.overflow, tt.overflow)
			}
			if diff := cmp.Diff(tt.counts, a.counts()); diff != "" {
				t.Errorf("counts mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestAllocateProportional(t *testing.T) {
	tests := []struct {
		name      string
		positions []int
		steps     int
		spans     []int
		overflow  int
		counts    []int
	}{
		{"two stops", []int{0, 100}, 3, []int{1}, 0, []int{1}},
		{"short first span", []int{0, 10, 100}, 5, []int{0, 1}, 1, []int{1, 1}},
		{"short last span", []int{0, 90, 100}, 5, []int{1, 0}, 1, []int{2, 0}},
		{"quarters", []int{0, 25, 50, 100}, 24, []int{5, 5, 10}, 0, []int{5, 5, 10}},
		{"uneven", []int{0, 33, 100}, 13, []int{3, 7}, 1, []int{4, 7}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := normalized{colors: stopsOf(len(tt.positions)), positions: tt.positions}
			a := allocate(n, tt.steps)
			if diff := cmp.Diff(tt.spans, a.spans); diff != "" {
				t.Errorf("spans mismatch (-want +got):\n%s", diff)
			}
			if a.overflow != tt.overflow {
				t.Errorf("overflow = %d, want %d", a.overflow, tt.overflow)
			}
			if diff := cmp.Diff(tt.counts, a.counts()); diff != "" {
				t.Errorf("counts mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestAllocateCountsFillSteps(t *testing.T) {
	for steps := 4; steps <= 60; steps++ {
		n := normalized{colors: stopsOf(4), positions: []int{0, 7, 61, 100}}
		total := len(n.colors)
		for _, c := range allocate(n, steps).counts() {
			total += c
		}
		if total != steps {
			t.Errorf("steps %d: stops plus counts = %d", steps, total)
		}
	}
}
