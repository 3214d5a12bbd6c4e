package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Appearance override metrics
var (
	LooksApplied = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "transmog_looks_applied_total",
			Help: "Total number of appearance overrides applied",
		},
	)

	LooksRemoved = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "transmog_looks_removed_total",
			Help: "Total number of appearance overrides removed",
		},
	)

	LooksRejected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "transmog_looks_rejected_total",
			Help: "Appearance override requests rejected, by reason",
		},
		[]string{"reason"},
	)

	PresetsSaved = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "transmog_presets_saved_total",
			Help: "Total number of appearance presets saved",
		},
	)

	PresetsApplied = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "transmog_presets_applied_total",
			Help: "Total number of appearance presets applied",
		},
	)

	PresetsDeleted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "transmog_presets_deleted_total",
			Help: "Total number of appearance presets deleted",
		},
	)

	OrphanRowsSwept = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "transmog_orphan_rows_swept_total",
			Help: "Orphaned durable rows deleted by the startup sweep, by table",
		},
		[]string{"table"},
	)

	MoneyCharged = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "transmog_money_charged_copper_total",
			Help: "Total copper charged for appearance overrides",
		},
	)
)
