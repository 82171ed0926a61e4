// Package metrics records run statistics in a private Prometheus registry
// and can export them in the text exposition format, e.g. for the
// node_exporter textfile collector.
package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"collatz/internal/runner"
	"collatz/pkg/collatz"
)

// Failure reasons used as the "reason" label.
const (
	ReasonOverflow  = "overflow"
	ReasonStepLimit = "step_limit"
	ReasonWidth     = "width"
	ReasonOther     = "other"
)

// Recorder implements runner.Observer.
type Recorder struct {
	reg *prometheus.Registry

	trajectories prometheus.Counter
	steps        prometheus.Counter
	stepHist     prometheus.Histogram
	peak         prometheus.Gauge
	failures     *prometheus.CounterVec

	maxPeak float64
}

var _ runner.Observer = (*Recorder)(nil)

// New returns a Recorder with its own registry.
func New() *Recorder {
	r := &Recorder{
		reg: prometheus.NewRegistry(),
		trajectories: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "collatz",
			Name:      "trajectories_total",
			Help:      "Trajectories that reached 1.",
		}),
		steps: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "collatz",
			Name:      "steps_total",
			Help:      "Step-function applications across completed trajectories.",
		}),
		stepHist: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "collatz",
			Name:      "trajectory_steps",
			Help:      "Steps needed to reach 1, per trajectory.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 12), // 1 to 2048
		}),
		peak: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "collatz",
			Name:      "peak_value",
			Help:      "Largest value seen in any completed trajectory.",
		}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "collatz",
			Name:      "failures_total",
			Help:      "Trajectories that did not reach 1, by reason.",
		}, []string{"reason"}),
	}
	r.reg.MustRegister(r.trajectories, r.steps, r.stepHist, r.peak, r.failures)
	return r
}

// Registry exposes the underlying registry.
func (r *Recorder) Registry() *prometheus.Registry { return r.reg }

func (r *Recorder) TrajectoryDone(final collatz.Status[uint64]) {
	r.trajectories.Inc()
	r.steps.Add(float64(final.N))
	r.stepHist.Observe(float64(final.N))
	if h := float64(final.Highest); h > r.maxPeak {
		r.maxPeak = h
		r.peak.Set(h)
	}
}

func (r *Recorder) TrajectoryFailed(_ uint64, err error) {
	r.failures.WithLabelValues(Reason(err)).Inc()
}

// Reason maps a trajectory error to a failure label.
func Reason(err error) string {
	switch {
	case errors.Is(err, collatz.ErrOverflow):
		return ReasonOverflow
	case errors.Is(err, runner.ErrStepLimit):
		return ReasonStepLimit
	case errors.Is(err, runner.ErrWidth):
		return ReasonWidth
	default:
		return ReasonOther
	}
}

// WriteFile writes all metrics to path in the Prometheus text format.
func (r *Recorder) WriteFile(path string) error {
	return prometheus.WriteToTextfile(path, r.reg)
}
