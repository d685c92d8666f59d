// Package metrics defines the Prometheus instruments for the parking command
// loop. It is the single source of truth for metric names, labels and help
// strings; everything registers on the default registry at init time. The
// process has no scrape endpoint, so these are in-process operational
// counters only.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "parking"

// CommandsTotal counts processed command lines.
// Label:
//   - verb: the single-letter command verb (p, e, s, v, f, r, q)
var CommandsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "commands_total",
		Help:      "Total number of command lines processed, by verb.",
	},
	[]string{"verb"},
)

// RejectionsTotal counts commands rejected by validation.
// Label:
//   - reason: short rejection cause (e.g. "parking_full", "invalid_date")
var RejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rejections_total",
		Help:      "Total number of rejected commands, by reason.",
	},
	[]string{"reason"},
)

// VehiclesParked tracks the number of currently open parking events.
var VehiclesParked = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "vehicles_parked",
		Help:      "Number of vehicles currently parked across all lots.",
	},
)

// RevenueTotal accumulates the fees charged on vehicle exits.
var RevenueTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "revenue_total",
		Help:      "Sum of all parking fees charged.",
	},
)
