package recording

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	jobsAccepted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "audio_recorder_jobs_accepted_total",
		Help: "Payloads accepted for conversion, by source kind.",
	}, []string{"source"})

	jobsRejected = promauto.NewCounter(prometheus.CounterOpts{
		Name: "audio_recorder_jobs_rejected_total",
		Help: "Payloads rejected because the job queue was full or closed.",
	})

	conversions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "audio_recorder_conversions_total",
		Help: "Finished conversion attempts, by result.",
	}, []string{"result"})

	conversionDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "audio_recorder_conversion_duration_seconds",
		Help:    "Wall time of a single conversion, decode through rename.",
		Buckets: prometheus.DefBuckets,
	})

	queueDepth = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "audio_recorder_queue_depth",
		Help: "Jobs waiting in the conversion queue.",
	})
)
