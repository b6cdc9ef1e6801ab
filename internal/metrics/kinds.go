package metrics

type MetricKind uint8

const (
	RoundCalls MetricKind = iota
	RoundLatency
	RoundFailures
	BroadcastElements
	BroadcastParallelRuns
	QuantumCacheMisses
)

func (m MetricKind) String() string {
	switch m {
	case RoundCalls:
		return "RoundCalls"
	case RoundLatency:
		return "RoundLatency"
	case RoundFailures:
		return "RoundFailures"
	case BroadcastElements:
		return "BroadcastElements"
	case BroadcastParallelRuns:
		return "BroadcastParallelRuns"
	case QuantumCacheMisses:
		return "QuantumCacheMisses"
	default:
		return "Unknown"
	}
}
