// Package status collects runtime counters of a game session for the debug log.
package status

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Metric names recorded by the game binary
const (
	Ticks          = "ticks"
	TickMillis     = "tick_ms"
	TickMillisPeak = "tick_ms_peak"
	FramesRendered = "frames_rendered"
	FramesStreamed = "frames_streamed"
	EventsRouted   = "events_routed"
	EventsDropped  = "events_dropped"
)

// Registry groups counters and gauges
type Registry struct {
	Ints   *MetricMap[atomic.Int64]
	Floats *MetricMap[AtomicFloat]
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		Ints:   NewMetricMap[atomic.Int64](),
		Floats: NewMetricMap[AtomicFloat](),
	}
}

// TotalCount returns the number of metrics of every kind
func (r *Registry) TotalCount() int {
	return r.Ints.Count() + r.Floats.Count()
}

// String renders every metric as name=value pairs in registration order, counters first
func (r *Registry) String() string {
	var parts []string
	r.Ints.Each(func(k string, v *atomic.Int64) {
		parts = append(parts, fmt.Sprintf("%s=%d", k, v.Load()))
	})
	r.Floats.Each(func(k string, v *AtomicFloat) {
		parts = append(parts, fmt.Sprintf("%s=%.3f", k, v.Get()))
	})
	return strings.Join(parts, " ")
}
