// Package metrics exposes application metrics collectors.
package metrics

import (
	"errors"
	"time"

	"github.com/goodnatureofminers/ckb-transaction-dumper/internal/dumperr"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	dumpStageTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ckb_tx_dumper",
		Subsystem: "dump",
		Name:      "stage_total",
		Help:      "Count of dump pipeline stage runs.",
	}, []string{"mode", "stage", "status"})

	dumpStageDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "ckb_tx_dumper",
		Subsystem: "dump",
		Name:      "stage_duration_seconds",
		Help:      "Duration of dump pipeline stages.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"mode", "stage", "status"})

	dumpTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ckb_tx_dumper",
		Subsystem: "dump",
		Name:      "requests_total",
		Help:      "Count of dump requests by outcome.",
	}, []string{"mode", "status", "kind"})

	dumpDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "ckb_tx_dumper",
		Subsystem: "dump",
		Name:      "request_duration_seconds",
		Help:      "Duration of dump requests.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"mode", "status"})
)

// Dumper tracks metrics for the dump pipeline.
type Dumper struct {
	mode string
}

// NewDumper constructs a Dumper labelled with the debugger command form.
func NewDumper(mode string) *Dumper {
	if mode == "" {
		mode = "unknown"
	}
	return &Dumper{mode: mode}
}

// ObserveStage records one pipeline stage outcome and duration.
func (m Dumper) ObserveStage(stage dumperr.Stage, err error, started time.Time) {
	status := statusOf(err)
	dumpStageTotal.WithLabelValues(m.mode, string(stage), status).Inc()
	dumpStageDuration.WithLabelValues(m.mode, string(stage), status).Observe(time.Since(started).Seconds())
}

// ObserveDump records a whole dump request outcome and duration.
func (m Dumper) ObserveDump(err error, started time.Time) {
	status := statusOf(err)
	dumpTotal.WithLabelValues(m.mode, status, kindOf(err)).Inc()
	dumpDuration.WithLabelValues(m.mode, status).Observe(time.Since(started).Seconds())
}

func statusOf(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}

func kindOf(err error) string {
	switch {
	case err == nil:
		return "none"
	case errors.Is(err, dumperr.ErrLookup):
		return "lookup"
	case errors.Is(err, dumperr.ErrEncoding):
		return "encoding"
	case errors.Is(err, dumperr.ErrIO):
		return "io"
	case errors.Is(err, dumperr.ErrConsistency):
		return "consistency"
	default:
		return "other"
	}
}
