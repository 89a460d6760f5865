package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "meeting_analyzer"

// Recorder exposes analysis counters and latencies as Prometheus metrics
type Recorder struct {
	registry  *prometheus.Registry
	completed *prometheus.CounterVec
	failed    *prometheus.CounterVec
	fallbacks prometheus.Counter
	duration  *prometheus.HistogramVec
}

// NewRecorder registers the analysis metrics plus Go runtime and process
// collectors on a private registry.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		completed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "analyses_completed_total",
			Help:      "Transcripts analyzed and stored, by provider.",
		}, []string{"provider"}),
		failed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "analyses_failed_total",
			Help:      "Analyze requests that failed, by error kind.",
		}, []string{"reason"}),
		fallbacks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "llm_fallbacks_total",
			Help:      "Times the fallback provider was tried after the primary failed.",
		}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "analysis_duration_seconds",
			Help:      "Time from first provider call to stored analysis.",
			Buckets:   []float64{0.5, 1, 2, 5, 10, 20, 30, 60},
		}, []string{"provider"}),
	}

	r.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		r.completed,
		r.failed,
		r.fallbacks,
		r.duration,
	)
	return r
}

func (r *Recorder) AnalysisCompleted(provider string, elapsed time.Duration) {
	r.completed.WithLabelValues(provider).Inc()
	r.duration.WithLabelValues(provider).Observe(elapsed.Seconds())
}

func (r *Recorder) AnalysisFailed(reason string) {
	r.failed.WithLabelValues(reason).Inc()
}

func (r *Recorder) FallbackUsed() {
	r.fallbacks.Inc()
}

// Handler serves the registry in the Prometheus text format
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
