package metrics

import (
	"sync"
	"sync/atomic"
	"time"
)

var metricsCh = make(chan *metricReading, 1024)
var readingsPool = sync.Pool{
	New: func() interface{} {
		return &metricReading{}
	},
}
var dispatching atomic.Bool

// Simple records a reading. Readings are dropped when no delegate has been
// installed, or when the dispatcher is lagging behind.
func Simple(kind MetricKind, value float64) {
	if !dispatching.Load() {
		return
	}
	r := readingsPool.Get().(*metricReading)
	r.Kind = kind
	r.Value = value
	select {
	case metricsCh <- r:
	default:
		readingsPool.Put(r)
	}
}

// Measure returns a function that records the microseconds elapsed since
// Measure was called.
func Measure(kind MetricKind) func() {
	if !dispatching.Load() {
		return func() {}
	}
	start := time.Now()
	return func() {
		Simple(kind, float64(time.Since(start).Microseconds()))
	}
}

type metricReading struct {
	Kind  MetricKind
	Value float64
}

type delegate interface {
	Dispatch(kind MetricKind, value float64)
}

func Dispatch(del delegate) {
	dispatching.Store(true)
	for msg := range metricsCh {
		del.Dispatch(msg.Kind, msg.Value)
		readingsPool.Put(msg)
	}
}
