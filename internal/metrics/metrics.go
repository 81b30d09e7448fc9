// Package metrics exposes Prometheus instruments for the inference engine.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/HenrikKronborg/Fuzzy-Logic/internal/models"
)

const (
	InferencesH   = "The total number of inferences, by dominant action"
	InferencesN   = "fuzzy_inferences_total"
	ZeroStrengthH = "The total number of inferences whose aggregated output had zero strength"
	ZeroStrengthN = "fuzzy_zero_strength_total"
	FallbacksH    = "The total number of inferences answered with the configured fallback output"
	FallbacksN    = "fuzzy_fallbacks_total"
	CrispOutputH  = "Distribution of crisp outputs on the [-10, 10] action axis"
	CrispOutputN  = "fuzzy_crisp_output"
)

// Recorder counts inference outcomes. A nil Recorder is safe to use.
type Recorder struct {
	inferences   *prometheus.CounterVec
	zeroStrength prometheus.Counter
	fallbacks    prometheus.Counter
	crispOutput  prometheus.Histogram
}

// NewRecorder registers the inference instruments with reg.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	f := promauto.With(reg)
	return &Recorder{
		inferences: f.NewCounterVec(prometheus.CounterOpts{
			Name: InferencesN,
			Help: InferencesH,
		}, []string{"action"}),
		zeroStrength: f.NewCounter(prometheus.CounterOpts{
			Name: ZeroStrengthN,
			Help: ZeroStrengthH,
		}),
		fallbacks: f.NewCounter(prometheus.CounterOpts{
			Name: FallbacksN,
			Help: FallbacksH,
		}),
		crispOutput: f.NewHistogram(prometheus.HistogramOpts{
			Name:    CrispOutputN,
			Help:    CrispOutputH,
			Buckets: prometheus.LinearBuckets(-10, 2.5, 9),
		}),
	}
}

// ObserveResult records a successful inference.
func (r *Recorder) ObserveResult(res models.Result) {
	if r == nil {
		return
	}
	r.inferences.WithLabelValues(string(res.Action)).Inc()
	if res.Fallback {
		r.fallbacks.Inc()
		return
	}
	r.crispOutput.Observe(res.CrispOutput)
}

// ObserveZeroStrength records an inference whose aggregate was empty.
func (r *Recorder) ObserveZeroStrength() {
	if r == nil {
		return
	}
	r.zeroStrength.Inc()
}
