package rpc

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus instruments for daemon calls. Attach a
// Metrics to a client through ClientConfig; a nil Metrics disables
// instrumentation entirely.
type Metrics struct {
	// RequestsTotal counts calls issued, per daemon method.
	RequestsTotal *prometheus.CounterVec
	// DaemonErrors counts calls the daemon rejected with a JSON-RPC
	// error object, per daemon method.
	DaemonErrors *prometheus.CounterVec
	// DecodeFailures counts responses that failed envelope or result
	// decoding, per daemon method.
	DecodeFailures *prometheus.CounterVec
	// TransportFailures counts calls that never produced response
	// bytes (dial errors, cancellations), per daemon method.
	TransportFailures *prometheus.CounterVec
}

// NewMetrics initializes and registers call metrics on the default
// registerer.
func NewMetrics() *Metrics {
	return NewMetricsWithRegistry(nil)
}

// NewMetricsWithRegistry initializes and registers call metrics on the
// given registerer. A nil registerer falls back to the default one.
func NewMetricsWithRegistry(registry prometheus.Registerer) *Metrics {
	if registry == nil {
		registry = prometheus.DefaultRegisterer
	}
	factory := promauto.With(registry)

	return &Metrics{
		RequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "coinrpc_requests_total",
			Help: "Number of daemon RPC calls issued",
		}, []string{"method"}),
		DaemonErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "coinrpc_daemon_errors_total",
			Help: "Number of calls rejected by the daemon with a JSON-RPC error",
		}, []string{"method"}),
		DecodeFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "coinrpc_decode_failures_total",
			Help: "Number of daemon responses that failed envelope or result decoding",
		}, []string{"method"}),
		TransportFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "coinrpc_transport_failures_total",
			Help: "Number of calls that failed before response bytes arrived",
		}, []string{"method"}),
	}
}

func (m *Metrics) observeRequest(method string) {
	if m == nil {
		return
	}
	m.RequestsTotal.WithLabelValues(method).Inc()
}

func (m *Metrics) observeOutcome(method string, err error) {
	if m == nil || err == nil {
		return
	}
	switch {
	case AsError(err) != nil:
		m.DaemonErrors.WithLabelValues(method).Inc()
	case AsResultTypeError(err) != nil:
		m.DecodeFailures.WithLabelValues(method).Inc()
	default:
		m.TransportFailures.WithLabelValues(method).Inc()
	}
}
