// Package metrics declares the Prometheus collectors of the service. They are
// registered on the default registry and served by the HTTP adapter at /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	OrdersCreatedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "selfstorage_orders_created_total",
		Help: "Orders booked, by unit size.",
	},
		[]string{"size"},
	)

	OrdersCompletedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "selfstorage_orders_completed_total",
		Help: "Orders closed by an explicit pickup.",
	})

	UnitsReleasedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "selfstorage_units_released_total",
		Help: "Release requests that actually freed a unit.",
	})

	BookingRejectionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "selfstorage_booking_rejections_total",
		Help: "Bookings refused, by reason (scheduling_conflict, no_units_available).",
	},
		[]string{"reason"},
	)

	StatusTransitionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "selfstorage_status_transitions_total",
		Help: "Time driven order transitions applied by the sweep, by target status.",
	},
		[]string{"status"},
	)

	RemindersTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "selfstorage_reminders_total",
		Help: "Reminder notifications, by result (sent, failed).",
	},
		[]string{"result"},
	)

	SweepUnitsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "selfstorage_sweep_units_total",
		Help: "Units processed by the sweep, by result (ok, failed).",
	},
		[]string{"result"},
	)

	SweepRunsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "selfstorage_sweep_runs_total",
		Help: "Sweep runs, by outcome (completed, partial, skipped, failed).",
	},
		[]string{"outcome"},
	)

	SweepDurationSeconds = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "selfstorage_sweep_duration_seconds",
		Help:    "Wall time of one sweep run.",
		Buckets: prometheus.DefBuckets,
	})
)
