package intervsrvc

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	interviewsStarted = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "sortify",
			Subsystem: "interview",
			Name:      "started_total",
			Help:      "Total number of interviews started",
		},
		[]string{"mode"},
	)

	interviewsCompleted = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "sortify",
			Subsystem: "interview",
			Name:      "completed_total",
			Help:      "Total number of interviews completed",
		},
		[]string{"mode"},
	)

	interviewsSuspended = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "sortify",
			Subsystem: "interview",
			Name:      "suspended_total",
			Help:      "Total number of interviews suspended for proctoring violations",
		},
	)

	answerEvalDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "sortify",
			Subsystem: "interview",
			Name:      "answer_evaluation_duration_seconds",
			Help:      "Duration of a single answer evaluation round trip",
			Buckets:   prometheus.DefBuckets,
		},
	)

	finalScores = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "sortify",
			Subsystem: "interview",
			Name:      "final_score",
			Help:      "Distribution of final interview scores",
			Buckets:   []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10},
		},
	)
)

func init() {
	prometheus.MustRegister(interviewsStarted, interviewsCompleted,
		interviewsSuspended, answerEvalDuration, finalScores)
}
