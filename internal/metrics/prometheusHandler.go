package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var HttpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "http_requests_total",
	Help: "Total number of requests labelled by path and status",
}, []string{"path", "status"})

var chatRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "chat_request_duration_seconds",
	Help:    "Total time spent answering one chat query.",
	Buckets: []float64{.1, .5, 1, 2, 5, 10, 30, 60, 120},
}, []string{"outcome"})

var dependencyLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "dependency_latency_seconds",
	Help:    "Latency of external service calls.",
	Buckets: []float64{.05, .1, .25, .5, 1, 2, 5, 10},
}, []string{"service"})

var fallbackResponses = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "fallback_responses_total",
	Help: "Degraded answers served instead of remote generations, by reason",
}, []string{"reason"})

var pollIterations = promauto.NewHistogram(prometheus.HistogramOpts{
	Name:    "generation_poll_iterations",
	Help:    "Poll loop iterations per prediction before a terminal state",
	Buckets: []float64{0, 1, 2, 5, 10, 30, 60, 90},
})

var answerCacheHits = promauto.NewCounter(prometheus.CounterOpts{
	Name: "answer_cache_hits_total",
	Help: "Chat answers served from the answer cache",
})

type HttpStatusRecorder struct {
	http.ResponseWriter
	Status int
}

func (r *HttpStatusRecorder) WriteHeader(code int) {
	r.Status = code
	r.ResponseWriter.WriteHeader(code)
}

func CaptureExecutionMetrics(label string, timeElapsed time.Duration) {
	dependencyLatency.WithLabelValues(label).Observe(timeElapsed.Seconds())
}

func CaptureChatMetrics(outcome string, timeElapsed time.Duration) {
	chatRequestDuration.WithLabelValues(outcome).Observe(timeElapsed.Seconds())
}

func IncrementFallback(reason string) {
	fallbackResponses.WithLabelValues(reason).Inc()
}

func ObservePollIterations(count int) {
	pollIterations.Observe(float64(count))
}

func IncrementCacheHit() {
	answerCacheHits.Inc()
}
