package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMiddlewareCountsRequests(t *testing.T) {
	registry := prometheus.NewRegistry()
	collector := NewCollector(registry)

	handler := collector.Middleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/user_info", nil)
		handler.ServeHTTP(httptest.NewRecorder(), req)
	}
	req := httptest.NewRequest(http.MethodPost, "/missing", nil)
	handler.ServeHTTP(httptest.NewRecorder(), req)

	ok := testutil.ToFloat64(collector.requestsTotal.WithLabelValues("GET", "/user_info", "200"))
	if ok != 3 {
		t.Errorf("Expected 3 successful requests, got %v", ok)
	}

	notFound := testutil.ToFloat64(collector.requestsTotal.WithLabelValues("POST", "/missing", "404"))
	if notFound != 1 {
		t.Errorf("Expected 1 not-found request, got %v", notFound)
	}
}

func TestHandlerExposesMetrics(t *testing.T) {
	registry := prometheus.NewRegistry()
	collector := NewCollector(registry)

	inner := collector.Middleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	inner.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))

	rr := httptest.NewRecorder()
	Handler(registry).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("Expected status 200 from /metrics, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "gatekit_http_requests_total") {
		t.Error("Expected request counter in exposition output")
	}
	if !strings.Contains(rr.Body.String(), "gatekit_http_request_duration_seconds") {
		t.Error("Expected duration histogram in exposition output")
	}
}
