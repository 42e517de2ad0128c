package middlewares

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestLogger(slog.New(slog.NewTextHandler(io.Discard, nil))), PrometheusMetrics)
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	return r
}

func TestRequestLogger_GeneratesRequestID(t *testing.T) {
	r := newRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Len(t, w.Header().Get(RequestIDHeader), 36, "uuid в каноническом виде")
}

func TestRequestLogger_KeepsClientRequestID(t *testing.T) {
	r := newRouter()

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
}

func TestPrometheusMetrics_CountsByRoute(t *testing.T) {
	r := newRouter()
	before := testutil.ToFloat64(requestsTotal.WithLabelValues(http.MethodGet, "/ping", "204"))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	after := testutil.ToFloat64(requestsTotal.WithLabelValues(http.MethodGet, "/ping", "204"))
	assert.Equal(t, before+1, after)
}
