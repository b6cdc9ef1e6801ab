package metrics

import (
	"sync/atomic"

	"github.com/heyvito/rounding/internal/metrics"
)

var hasDelegate atomic.Bool

// InstallDelegate starts forwarding readings to del. Only the first call has
// any effect; readings produced before it are discarded.
func InstallDelegate(del *Delegates) {
	if hasDelegate.Swap(true) {
		return
	}
	go metrics.Dispatch(del)
}

// Delegates groups the instrumentation receivers. Nil members are skipped.
type Delegates struct {
	Rounder   RounderInstrumentationDelegate
	Broadcast BroadcastInstrumentationDelegate
	Quantum   QuantumInstrumentationDelegate
}

func (d *Delegates) Dispatch(kind metrics.MetricKind, value float64) {
	switch kind {
	case metrics.RoundCalls:
		if d.Rounder != nil {
			d.Rounder.RoundCalls(value)
		}
	case metrics.RoundLatency:
		if d.Rounder != nil {
			d.Rounder.RoundLatency(value)
		}
	case metrics.RoundFailures:
		if d.Rounder != nil {
			d.Rounder.RoundFailures(value)
		}
	case metrics.BroadcastElements:
		if d.Broadcast != nil {
			d.Broadcast.Elements(value)
		}
	case metrics.BroadcastParallelRuns:
		if d.Broadcast != nil {
			d.Broadcast.ParallelRuns(value)
		}
	case metrics.QuantumCacheMisses:
		if d.Quantum != nil {
			d.Quantum.CacheMisses(value)
		}
	}
}

type RounderInstrumentationDelegate interface {
	RoundCalls(float64)
	// RoundLatency receives the duration of a Round call, in microseconds.
	RoundLatency(float64)
	RoundFailures(float64)
}

type BroadcastInstrumentationDelegate interface {
	// Elements receives the amount of scalars rounded by a single collection
	// call.
	Elements(float64)
	ParallelRuns(float64)
}

type QuantumInstrumentationDelegate interface {
	CacheMisses(float64)
}
