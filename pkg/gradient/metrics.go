package gradient

import (
	"expvar"
	"sync/atomic"
	"time"
)

// Metrics counts gradient builds. Pass it in Options to have New record
// every call. Values can be exposed through expvar with RegisterExpvar.
//
// Thread-safe for concurrent use.
//
//	m := gradient.NewMetrics()
//	m.RegisterExpvar()
//	g, err := gradient.New(cfg, &gradient.Options{Metrics: m})
type Metrics struct {
	built           atomic.Int64
	rejected        atomic.Int64
	passthrough     atomic.Int64
	colorsGenerated atomic.Int64

	buildLatencyNs    atomic.Int64
	buildLatencyCount atomic.Int64

	registered atomic.Bool
}

// NewMetrics creates a new Metrics instance.
func NewMetrics() *Metrics {
	return &Metrics{}
}

// RegisterExpvar publishes the metrics under gradient_* names, making them
// available at /debug/vars when an HTTP server is running. expvar names are
// process-wide: the first Metrics to register a name keeps it. Subsequent
// calls are no-ops.
func (m *Metrics) RegisterExpvar() {
	if m.registered.Swap(true) {
		return
	}

	publish("gradient_built_total", func() any { return m.built.Load() })
	publish("gradient_rejected_total", func() any { return m.rejected.Load() })
	publish("gradient_passthrough_total", func() any { return m.passthrough.Load() })
	publish("gradient_colors_generated_total", func() any { return m.colorsGenerated.Load() })
	publish("gradient_build_latency_avg_ms", func() any {
		return float64(safeDivide(m.buildLatencyNs.Load(), m.buildLatencyCount.Load())) / 1e6
	})
}

func publish(name string, f func() any) {
	if expvar.Get(name) == nil {
		expvar.Publish(name, expvar.Func(f))
	}
}

// MetricsSnapshot is a point-in-time copy of all metrics.
type MetricsSnapshot struct {
	Built           int64
	Rejected        int64
	Passthrough     int64
	ColorsGenerated int64
	BuildLatencyAvg time.Duration
}

// Snapshot returns a point-in-time copy of all metrics.
func (m *Metrics) Snapshot() MetricsSnapshot {
	return MetricsSnapshot{
		Built:           m.built.Load(),
		Rejected:        m.rejected.Load(),
		Passthrough:     m.passthrough.Load(),
		ColorsGenerated: m.colorsGenerated.Load(),
		BuildLatencyAvg: safeDivide(m.buildLatencyNs.Load(), m.buildLatencyCount.Load()),
	}
}

// recordBuilt records a successful build of steps colours.
func (m *Metrics) recordBuilt(steps int, passthrough bool, d time.Duration) {
	if m == nil {
		return
	}
	m.built.Add(1)
	m.colorsGenerated.Add(int64(steps))
	if passthrough {
		m.passthrough.Add(1)
	}
	m.buildLatencyNs.Add(d.Nanoseconds())
	m.buildLatencyCount.Add(1)
}

// recordRejected records a configuration that failed validation.
func (m *Metrics) recordRejected() {
	if m == nil {
		return
	}
	m.rejected.Add(1)
}

// Reset clears all metrics. Useful for testing.
func (m *Metrics) Reset() {
	m.built.Store(0)
	m.rejected.Store(0)
	m.passthrough.Store(0)
	m.colorsGenerated.Store(0)
	m.buildLatencyNs.Store(0)
	m.buildLatencyCount.Store(0)
}

func safeDivide(total, count int64) time.Duration {
	if count == 0 {
		return 0
	}
	return time.Duration(total / count)
}
