package docstore

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	statusSuccess = "success"
	statusError   = "error"
)

// Metrics holds the Prometheus metrics for a store. Each store owns its own
// registry so that multiple stores in one process do not collide.
type Metrics struct {
	docOperationsTotal *prometheus.CounterVec
	updateEntriesTotal *prometheus.CounterVec
	crcFailuresTotal   prometheus.Counter
}

// NewMetrics creates and registers the store metrics on the given registerer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		docOperationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "edda_doc_operations_total",
				Help: "Total number of document operations",
			},
			[]string{"operation", "status"},
		),
		updateEntriesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "edda_update_entries_total",
				Help: "Total number of batch update entries applied",
			},
			[]string{"type", "status"},
		),
		crcFailuresTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "edda_document_crc_failures_total",
				Help: "Total number of stored documents failing CRC validation",
			},
		),
	}
}

// RecordOperation records the outcome of a document operation.
func (m *Metrics) RecordOperation(operation string, err error) {
	status := statusSuccess
	if err != nil {
		status = statusError
	}
	m.docOperationsTotal.WithLabelValues(operation, status).Inc()
}

// RecordUpdateEntry records the outcome of one batch update entry.
func (m *Metrics) RecordUpdateEntry(t UpdateType, err error) {
	status := statusSuccess
	if err != nil {
		status = statusError
	}
	m.updateEntriesTotal.WithLabelValues(string(t), status).Inc()
}

// RecordCRCFailure records a document failing integrity validation.
func (m *Metrics) RecordCRCFailure() {
	m.crcFailuresTotal.Inc()
}
