package calculator

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	calculationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "calculator_calculations_total",
			Help: "Total number of compute attempts by operator and outcome",
		},
		[]string{"operator", "outcome"},
	)

	historyWriteFailuresTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "calculator_history_write_failures_total",
			Help: "Number of calculations that could not be persisted to history",
		},
	)
)
