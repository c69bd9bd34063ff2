package metrics

import (
	"strconv"
	"time"

	"thirupugazh_pos/internal/domain/entities"
	"thirupugazh_pos/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

// BillingMetrics counts counter activity: holds, resume outcomes and finalized payments.
type BillingMetrics struct {
	holdsCreated     prometheus.Counter
	resumeAttempts   *prometheus.CounterVec
	paymentsTotal    *prometheus.CounterVec
	paymentsAmount   *prometheus.CounterVec
	httpRequests     *prometheus.CounterVec
	httpRequestDelay *prometheus.HistogramVec
}

var _ interfaces.IBillingMetrics = (*BillingMetrics)(nil)

func NewBillingMetrics(registerer prometheus.Registerer) *BillingMetrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	m := &BillingMetrics{
		holdsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "pos_holds_created_total",
			Help: "Bills parked under a customer name.",
		}),
		resumeAttempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "pos_resume_attempts_total",
			Help: "Resume attempts that found a hold, by outcome and override use.",
		}, []string{"outcome", "override"}),
		paymentsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "pos_payments_finalized_total",
			Help: "Finalized payments by payment mode.",
		}, []string{"mode"}),
		paymentsAmount: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "pos_payments_amount_cents_total",
			Help: "Finalized payment amounts in minor units by payment mode.",
		}, []string{"mode"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "pos_http_requests_total",
			Help: "HTTP requests by route and status.",
		}, []string{"method", "route", "status"}),
		httpRequestDelay: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "pos_http_request_duration_seconds",
			Help:    "HTTP request latency by route.",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}, []string{"method", "route"}),
	}

	registerer.MustRegister(
		m.holdsCreated,
		m.resumeAttempts,
		m.paymentsTotal,
		m.paymentsAmount,
		m.httpRequests,
		m.httpRequestDelay,
	)
	return m
}

func (m *BillingMetrics) HoldCreated() {
	m.holdsCreated.Inc()
}

func (m *BillingMetrics) ResumeAttempt(outcome entities.ResumeOutcome, overrideUsed bool) {
	m.resumeAttempts.WithLabelValues(string(outcome), strconv.FormatBool(overrideUsed)).Inc()
}

func (m *BillingMetrics) PaymentFinalized(mode entities.PaymentMode, totalCents int64) {
	m.paymentsTotal.WithLabelValues(string(mode)).Inc()
	m.paymentsAmount.WithLabelValues(string(mode)).Add(float64(totalCents))
}

// GinMiddleware records request counts and latency keyed by the matched route template.
func (m *BillingMetrics) GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.httpRequests.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		m.httpRequestDelay.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}
