package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var PhotoBotEventsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "photobot_events_total",
	Help: "Total number of inbound events processed by Photo-Bot",
}, []string{"kind"})
var PhotoBotRepliesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "photobot_replies_total",
	Help: "Total number of replies emitted by Photo-Bot",
}, []string{"kind"})
var PhotoBotErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "photobot_errors_total",
	Help: "Total number of errors encountered by Photo-Bot",
}, []string{"error_type"})
var PhotoBotDBQueriesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "photobot_db_queries_total",
	Help: "Total number of queries executed on the photo store",
}, []string{"query_type"})
var PhotoBotDBQueryDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "photobot_db_query_duration_seconds",
	Help:    "Histogram for the query duration in seconds to the photo store",
	Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1},
}, []string{"query_type"})
var PhotoBotCacheHitsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "photobot_cache_hits_total",
	Help: "Total number of date-bucket cache hits",
}, []string{"place"})
var PhotoBotCacheMissesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "photobot_cache_misses_total",
	Help: "Total number of date-bucket cache misses",
}, []string{"place"})
var PhotoBotTaskQueueSize = promauto.NewGauge(prometheus.GaugeOpts{
	Name: "photobot_task_queue_size",
	Help: "Current size of the background task queue",
})
