package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rotisserie/eris"
)

// Collector bundles the engine's Prometheus metrics. A nil *Collector is
// valid and records nothing.
type Collector struct {
	gatherer prometheus.Gatherer

	Calculations         *prometheus.CounterVec
	CalculationDurations prometheus.Histogram
	NetBudgetImpact      *prometheus.GaugeVec
	HTTPRequests         *prometheus.CounterVec
}

// NewCollector registers the metrics against reg, defaulting to the global
// registry when nil. Registering twice against the same registry reuses
// the existing collectors.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	calculations, err := register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "reform_calculations_total",
		Help: "Scenario calculations processed, labeled by outcome.",
	}, []string{"outcome"}), "reform_calculations_total")
	if err != nil {
		return nil, err
	}

	durations, err := register(reg, prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "reform_calculation_duration_seconds",
		Help:    "Time to fold mutations and evaluate one scenario.",
		Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
	}), "reform_calculation_duration_seconds")
	if err != nil {
		return nil, err
	}

	net, err := register(reg, prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "reform_net_budget_impact_billions",
		Help: "Net budget impact of the most recent scenario evaluated per state.",
	}, []string{"state"}), "reform_net_budget_impact_billions")
	if err != nil {
		return nil, err
	}

	requests, err := register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "reform_http_requests_total",
		Help: "HTTP requests handled, labeled by method, route and status code.",
	}, []string{"method", "route", "code"}), "reform_http_requests_total")
	if err != nil {
		return nil, err
	}

	return &Collector{
		gatherer:             gatherer,
		Calculations:         calculations,
		CalculationDurations: durations,
		NetBudgetImpact:      net,
		HTTPRequests:         requests,
	}, nil
}

func (c *Collector) ObserveCalculation(outcome string, elapsed time.Duration) {
	if c == nil {
		return
	}
	c.Calculations.WithLabelValues(outcome).Inc()
	c.CalculationDurations.Observe(elapsed.Seconds())
}

func (c *Collector) ObserveNetImpact(state string, billions float64) {
	if c == nil || state == "" {
		return
	}
	c.NetBudgetImpact.WithLabelValues(state).Set(billions)
}

func (c *Collector) ObserveRequest(method, route string, code int) {
	if c == nil {
		return
	}
	c.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(code)).Inc()
}

// Handler exposes a ready-to-use /metrics handler.
func (c *Collector) Handler() http.Handler {
	gatherer := prometheus.DefaultGatherer
	if c != nil && c.gatherer != nil {
		gatherer = c.gatherer
	}
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

func register[T prometheus.Collector](reg prometheus.Registerer, col T, name string) (T, error) {
	if err := reg.Register(col); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(T); ok {
				return existing, nil
			}
			var zero T
			return zero, eris.Errorf("collector %s already registered with incompatible type", name)
		}
		var zero T
		return zero, eris.Wrapf(err, "register %s", name)
	}
	return col, nil
}
