package freshness

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// decisions counts freshness evaluations of conditional requests by
// outcome ("fresh" or "stale").
var decisions = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "freshness_decisions_total",
	Help: "Conditional request freshness decisions by outcome.",
}, []string{"decision"})
