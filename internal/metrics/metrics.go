package metrics

import "github.com/prometheus/client_golang/prometheus"

// Metrics counts booking activity and RPC latency. A nil *Metrics is valid
// and records nothing.
type Metrics struct {
	booked     *prometheus.CounterVec
	cancelled  *prometheus.CounterVec
	rpcLatency *prometheus.HistogramVec
}

func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		booked: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "medicomeet",
			Subsystem: "booking",
			Name:      "appointments_booked_total",
			Help:      "Booking attempts by outcome",
		}, []string{"result"}),
		cancelled: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "medicomeet",
			Subsystem: "booking",
			Name:      "appointments_cancelled_total",
			Help:      "Cancellation attempts by outcome",
		}, []string{"result"}),
		rpcLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "medicomeet",
			Subsystem: "rpc",
			Name:      "latency_seconds",
			Help:      "Handler latency per method and status code",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "code"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.booked, m.cancelled, m.rpcLatency)
	return m
}

// ObserveBooking records one Book call; result is "ok" or "invalid".
func (m *Metrics) ObserveBooking(result string) {
	if m == nil {
		return
	}
	m.booked.WithLabelValues(result).Inc()
}

// ObserveCancel records one Cancel call by whether the id was known.
func (m *Metrics) ObserveCancel(found bool) {
	if m == nil {
		return
	}
	label := "not_found"
	if found {
		label = "ok"
	}
	m.cancelled.WithLabelValues(label).Inc()
}

func (m *Metrics) ObserveRPC(method, code string, seconds float64) {
	if m == nil {
		return
	}
	m.rpcLatency.WithLabelValues(method, code).Observe(seconds)
}
