package metrics

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "homesite"

// Metrics is a Prometheus-backed implementation of clientip.Metrics and
// iprange.Metrics, plus HTTP request counters.
type Metrics struct {
	resolutions     *prom.CounterVec
	lookups         *prom.CounterVec
	lookupDuration  *prom.HistogramVec
	requests        *prom.CounterVec
	requestDuration *prom.HistogramVec
}

// New creates Metrics and registers its collectors on prom.DefaultRegisterer.
func New() (*Metrics, error) {
	return NewWithRegisterer(prom.DefaultRegisterer)
}

// NewWithRegisterer creates Metrics and registers its collectors on
// registerer. If registerer is nil, prom.DefaultRegisterer is used. Collectors
// that are already registered with a compatible type are reused.
func NewWithRegisterer(registerer prom.Registerer) (*Metrics, error) {
	if registerer == nil {
		registerer = prom.DefaultRegisterer
	}

	resolutions, err := register(registerer, prom.NewCounterVec(
		prom.CounterOpts{
			Namespace: namespace,
			Name:      "client_resolutions_total",
			Help:      "Client address resolutions by peer trust and whether a forwarded address was used.",
		},
		[]string{"trusted", "forwarded"},
	))
	if err != nil {
		return nil, err
	}

	lookups, err := register(registerer, prom.NewCounterVec(
		prom.CounterOpts{
			Namespace: namespace,
			Name:      "relay_lookups_total",
			Help:      "Relay range lookups by source (remote, local) and result (match, miss, error).",
		},
		[]string{"source", "result"},
	))
	if err != nil {
		return nil, err
	}

	lookupDuration, err := register(registerer, prom.NewHistogramVec(
		prom.HistogramOpts{
			Namespace: namespace,
			Name:      "relay_lookup_duration_seconds",
			Help:      "Relay range lookup latency, including the fetch for remote lookups.",
			Buckets:   prom.DefBuckets,
		},
		[]string{"source"},
	))
	if err != nil {
		return nil, err
	}

	requests, err := register(registerer, prom.NewCounterVec(
		prom.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route pattern and status code.",
		},
		[]string{"method", "route", "code"},
	))
	if err != nil {
		return nil, err
	}

	requestDuration, err := register(registerer, prom.NewHistogramVec(
		prom.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route pattern.",
			Buckets:   prom.DefBuckets,
		},
		[]string{"route"},
	))
	if err != nil {
		return nil, err
	}

	return &Metrics{
		resolutions:     resolutions,
		lookups:         lookups,
		lookupDuration:  lookupDuration,
		requests:        requests,
		requestDuration: requestDuration,
	}, nil
}

func register[C prom.Collector](registerer prom.Registerer, collector C) (C, error) {
	if err := registerer.Register(collector); err != nil {
		var alreadyRegistered prom.AlreadyRegisteredError
		if errors.As(err, &alreadyRegistered) {
			if existing, ok := alreadyRegistered.ExistingCollector.(C); ok {
				return existing, nil
			}
			var zero C
			return zero, fmt.Errorf("%w: incompatible collector type %T", ErrRegister, alreadyRegistered.ExistingCollector)
		}
		var zero C
		return zero, errors.Join(ErrRegister, err)
	}
	return collector, nil
}

// RecordResolution counts one client address resolution.
func (m *Metrics) RecordResolution(trusted, forwarded bool) {
	m.resolutions.WithLabelValues(strconv.FormatBool(trusted), strconv.FormatBool(forwarded)).Inc()
}

// ObserveLookup counts one relay range lookup and records its latency.
func (m *Metrics) ObserveLookup(source, result string, d time.Duration) {
	m.lookups.WithLabelValues(source, result).Inc()
	m.lookupDuration.WithLabelValues(source).Observe(d.Seconds())
}

// ObserveRequest counts one served HTTP request.
// route should be a pattern, not the raw path, to bound label cardinality.
func (m *Metrics) ObserveRequest(method, route string, code int, d time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	m.requests.WithLabelValues(method, route, strconv.Itoa(code)).Inc()
	m.requestDuration.WithLabelValues(route).Observe(d.Seconds())
}

// Handler serves the metrics gathered by gatherer in the Prometheus
// exposition format. Nil uses prom.DefaultGatherer.
func Handler(gatherer prom.Gatherer) http.Handler {
	if gatherer == nil {
		gatherer = prom.DefaultGatherer
	}
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
