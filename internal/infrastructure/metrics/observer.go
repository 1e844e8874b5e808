package metrics

import (
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"rodut/internal/domain/ingest"
)

const namespace = "rodut_ingest"

// OutcomeSuccess labels requests that completed without an ingest error.
const OutcomeSuccess = "success"

// Observer exports gateway request metrics to Prometheus.
type Observer struct {
	requests      *prometheus.CounterVec
	duration      *prometheus.HistogramVec
	uploadedBytes prometheus.Counter
}

// NewObserver registers the ingest collectors on reg, or on the default
// registerer when reg is nil. Collectors that already exist are reused.
func NewObserver(reg prometheus.Registerer) (*Observer, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	o := &Observer{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "requests_total",
			Help:      "Ingest requests by operation and outcome.",
		}, []string{"operation", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "request_duration_seconds",
			Help:      "Latency of ingest operations.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation"}),
		uploadedBytes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "uploaded_bytes_total",
			Help:      "Cumulative media bytes accepted by the content host.",
		}),
	}

	var err error
	if o.requests, err = register(reg, o.requests); err != nil {
		return nil, fmt.Errorf("register request counter: %w", err)
	}

	if o.duration, err = register(reg, o.duration); err != nil {
		return nil, fmt.Errorf("register duration histogram: %w", err)
	}

	if o.uploadedBytes, err = register(reg, o.uploadedBytes); err != nil {
		return nil, fmt.Errorf("register uploaded bytes counter: %w", err)
	}

	return o, nil
}

func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	err := reg.Register(c)
	if err == nil {
		return c, nil
	}

	var are prometheus.AlreadyRegisteredError
	if errors.As(err, &are) {
		if existing, ok := are.ExistingCollector.(C); ok {
			return existing, nil
		}
	}

	return c, err
}

// RecordRequest tracks one finished operation. The outcome label is the ingest
// error kind, or "success" when err is nil.
func (o *Observer) RecordRequest(operation string, duration time.Duration, err error) {
	if o == nil {
		return
	}

	outcome := OutcomeSuccess
	if err != nil {
		outcome = ingest.As(err).Kind.String()
	}

	o.duration.WithLabelValues(operation).Observe(duration.Seconds())
	o.requests.WithLabelValues(operation, outcome).Inc()
}

func (o *Observer) RecordUploadedBytes(n int64) {
	if o == nil || n <= 0 {
		return
	}

	o.uploadedBytes.Add(float64(n))
}
