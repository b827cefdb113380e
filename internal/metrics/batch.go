package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	batchJobsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ckb_tx_dumper",
		Subsystem: "batch",
		Name:      "jobs_total",
		Help:      "Count of batch jobs by outcome.",
	}, []string{"status"})

	batchJobDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "ckb_tx_dumper",
		Subsystem: "batch",
		Name:      "job_duration_seconds",
		Help:      "Duration of a batch job, bundle load included.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"status"})

	batchSize = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "ckb_tx_dumper",
		Subsystem: "batch",
		Name:      "size",
		Help:      "Number of jobs per batch run.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 12), // 1..2048
	})
)

// Batch tracks metrics for batch runs.
type Batch struct{}

// NewBatch constructs a Batch.
func NewBatch() *Batch {
	return &Batch{}
}

// ObserveJob records one batch job outcome and duration.
func (Batch) ObserveJob(err error, started time.Time) {
	status := statusOf(err)
	batchJobsTotal.WithLabelValues(status).Inc()
	batchJobDuration.WithLabelValues(status).Observe(time.Since(started).Seconds())
}

// ObserveBatch records the size of a batch run.
func (Batch) ObserveBatch(jobs int) {
	batchSize.Observe(float64(jobs))
}
