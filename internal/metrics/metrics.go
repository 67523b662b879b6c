package metrics

import (
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	AnalyzeRuns = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "kindred_analyze_runs_total",
		Help: "Total analysis pipeline runs",
	})
	AnalyzeErrors = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "kindred_analyze_errors_total",
		Help: "Total analysis pipeline failures",
	})
	AnalyzeDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "kindred_analyze_duration_seconds",
		Help:    "Analysis pipeline duration seconds",
		Buckets: prometheus.DefBuckets,
	})
	RecordFailures = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "kindred_record_failures_total",
		Help: "Records that fell back to a per-record default",
	}, []string{"stage"})
	MatchRequests = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "kindred_match_requests_total",
		Help: "Total match ranking requests",
	})
	CommandRuns = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "kindred_command_runs_total",
		Help: "CLI command invocations",
	}, []string{"command"})
	CommandErrors = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "kindred_command_errors_total",
		Help: "CLI command failures",
	}, []string{"command"})
)

func init() {
	prometheus.MustRegister(AnalyzeRuns, AnalyzeErrors, AnalyzeDuration,
		RecordFailures, MatchRequests, CommandRuns, CommandErrors)
}

// StartServer starts a metrics HTTP server on addr (e.g., ":9090").
func StartServer(addr string) {
	if addr == "" {
		addr = os.Getenv("METRICS_ADDR")
	}
	if addr == "" {
		return
	}
	http.Handle("/metrics", promhttp.Handler())
	http.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	go func() { _ = http.ListenAndServe(addr, nil) }()
}

// ObserveAnalyzeDuration records a run duration.
func ObserveAnalyzeDuration(start time.Time) {
	AnalyzeDuration.Observe(time.Since(start).Seconds())
}

// IncRecordFailure counts one record-level default in a pipeline stage.
func IncRecordFailure(stage string) { RecordFailures.WithLabelValues(stage).Inc() }

// IncCommandRun counts a CLI command invocation.
func IncCommandRun(cmd string) { CommandRuns.WithLabelValues(cmd).Inc() }

// IncCommandError counts a CLI command failure.
func IncCommandError(cmd string) { CommandErrors.WithLabelValues(cmd).Inc() }
