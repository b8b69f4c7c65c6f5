package gradient

import "math"

// allocation is the number of interpolated colours per span plus the steps
// that did not divide evenly and still need a home.
type allocation struct {
	spans    []int
	overflow int
}

// allocate splits the free steps (steps minus stop count) across the spans
// between consecutive stops. Without positions every span gets the same
// share; with positions each span gets a share proportional to its width.
func allocate(n normalized, steps int) allocation {
	stops := len(n.colors)
	sets := stops - 1
	free := steps - stops

	if !n.positional() {
		spans := make([]int, sets)
		base := free / sets
		for i := range spans {
			spans[i] = base
		}
		return allocation{spans: spans, overflow: free % sets}
	}

	spans := make([]int, sets)
	total := 0
	for i := range spans {
		share := float64(n.positions[i+1]-n.positions[i]) / 100
		spans[i] = int(math.Floor(share * float64(free)))
		total += spans[i]
	}
	return allocation{spans: spans, overflow: free - total}
}

// counts hands out one overflow step to each span from the left until the
// overflow is used up.
func (a allocation) counts() []int {
	counts := make([]int, len(a.spans))
	overflow := a.overflow
	for i, span := range a.spans {
		counts[i] = span
		if overflow > 0 {
			counts[i]++
			overflow--
		}
	}
	return counts
}
