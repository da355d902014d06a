// Package metrics defines and registers all custom Prometheus metrics for
// the resume builder API. It is the single source of truth for metric names,
// labels, and help strings.
//
// All metrics register with the default Prometheus registry at package init
// via promauto; the /metrics route exposes them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "resumebuilder"

// SignupsTotal counts successfully registered users.
var SignupsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signups_total",
		Help:      "Total number of successful signups.",
	},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "ok", "invalid_credential", or "unregistered"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// ResumeSavesTotal counts resume documents replaced or created.
var ResumeSavesTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "resume_saves_total",
		Help:      "Total number of resume save operations that succeeded.",
	},
)

// RendersTotal counts PDF render attempts.
// Label:
//   - result: "ok" or "error"
var RendersTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "renders_total",
		Help:      "Total number of PDF render attempts, labelled by result.",
	},
	[]string{"result"},
)

// RenderDuration measures how long a single PDF render takes.
var RenderDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "render_duration_seconds",
		Help:      "Duration of resume PDF rendering.",
		Buckets:   prometheus.DefBuckets, // .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10
	},
)
