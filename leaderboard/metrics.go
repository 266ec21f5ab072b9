package leaderboard

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	refreshRuns = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "leaderboard_refresh_runs_total",
		Help: "Leaderboard refresh runs by result.",
	}, []string{"result"})

	refreshDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "leaderboard_refresh_duration_seconds",
		Help:    "Duration of a single leaderboard refresh.",
		Buckets: prometheus.DefBuckets,
	})
)
