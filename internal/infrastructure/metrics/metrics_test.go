package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

func counterValue(t *testing.T, reg *prometheus.Registry, name string, labels map[string]string) float64 {
	t.Helper()
	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather failed: %v", err)
	}
	for _, f := range families {
		if f.GetName() != name {
			continue
		}
	next:
		for _, m := range f.GetMetric() {
			for _, lp := range m.GetLabel() {
				if want, ok := labels[lp.GetName()]; ok && want != lp.GetValue() {
					continue next
				}
			}
			return m.GetCounter().GetValue()
		}
	}
	return 0
}

func TestHTTPMetricsMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	reg := prometheus.NewRegistry()
	m := NewHTTPMetrics(reg)

	r := gin.New()
	r.Use(m.Middleware())
	r.GET("/v1/services/:id", func(c *gin.Context) { c.Status(http.StatusNotFound) })

	for _, id := range []string{"1", "2"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/services/"+id, nil))
	}

	got := counterValue(t, reg, "barberapp_http_requests_total", map[string]string{
		"method": "GET", "route": "/v1/services/:id", "status": "404",
	})
	if got != 2 {
		t.Fatalf("expected 2 requests on the route template, got %v", got)
	}
}

func TestStoreMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewStoreMetrics(reg)
	m.ObserveSimulatedCall(200*time.Millisecond, false)
	m.ObserveSimulatedCall(300*time.Millisecond, true)
	m.ObserveSimulatedCall(0, true)

	if got := counterValue(t, reg, "barberapp_store_simulated_calls_total", map[string]string{"outcome": "failed"}); got != 2 {
		t.Fatalf("expected 2 failed calls, got %v", got)
	}
}

func TestMetricsNilSafe(t *testing.T) {
	var h *HTTPMetrics
	h.Observe("GET", "/", 200, time.Millisecond)
	var s *StoreMetrics
	s.ObserveSimulatedCall(time.Millisecond, false)
}
