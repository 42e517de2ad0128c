package middlewares

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const metricsNamespace = "calcpad"

var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Keypad and history requests by route and status.",
	}, []string{"method", "route", "status"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: metricsNamespace,
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "Keypad and history request latency.",
		Buckets:   []float64{.0005, .001, .005, .01, .05, .1, .5, 1},
	}, []string{"method", "route"})

	requestsInFlight = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: metricsNamespace,
		Subsystem: "http",
		Name:      "requests_in_flight",
		Help:      "Requests currently being processed.",
	})
)

// systemRoutes не учитываются: пробы и сбор метрик зашумляют счётчики событий клавиатуры.
var systemRoutes = map[string]struct{}{
	"/metrics":   {},
	"/liveness":  {},
	"/readyness": {},
}

// PrometheusMetrics считает запросы по шаблону маршрута (c.FullPath), неизвестные пути — как "unmatched".
func PrometheusMetrics(c *gin.Context) {
	if _, ok := systemRoutes[c.Request.URL.Path]; ok {
		c.Next()
		return
	}

	requestsInFlight.Inc()
	defer requestsInFlight.Dec()
	start := time.Now()

	c.Next()

	route := c.FullPath()
	if route == "" {
		route = "unmatched"
	}
	method := c.Request.Method
	requestsTotal.WithLabelValues(method, route, strconv.Itoa(c.Writer.Status())).Inc()
	requestDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
}
