// Package metrics exposes Prometheus counters for the check-in flows.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// ScansTotal counts scan events by outcome: attended, duplicated, conflict,
// forbidden, not_found.
var ScansTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "lunchscan_scans_total",
	Help: "Scan events processed, labeled by outcome.",
}, []string{"outcome"})

// ImportedRowsTotal counts spreadsheet rows upserted during bulk imports.
var ImportedRowsTotal = promauto.NewCounter(prometheus.CounterOpts{
	Name: "lunchscan_imported_rows_total",
	Help: "Spreadsheet rows imported.",
})

// MailsTotal counts outbound mail attempts by result.
var MailsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "lunchscan_mails_total",
	Help: "Outbound emails, labeled by result.",
}, []string{"result"})
