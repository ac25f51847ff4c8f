package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestCollector_RecordHTTPStatus(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.RecordHTTPStatus(200)
	c.RecordHTTPStatus(200)
	c.RecordHTTPStatus(404)

	if got := testutil.ToFloat64(c.httpStatus.WithLabelValues("200")); got != 2 {
		t.Errorf("status 200 count = %v, want 2", got)
	}
	if got := testutil.ToFloat64(c.httpStatus.WithLabelValues("404")); got != 1 {
		t.Errorf("status 404 count = %v, want 1", got)
	}
}

func TestCollector_DomainCounters(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.RecordJobCreated()
	c.RecordJobCreated()
	c.RecordJobUpdated()
	c.RecordJobDeleted()
	c.RecordLoginFailure()

	if got := testutil.ToFloat64(c.jobsCreated); got != 2 {
		t.Errorf("jobs created = %v, want 2", got)
	}
	if got := testutil.ToFloat64(c.jobsUpdated); got != 1 {
		t.Errorf("jobs updated = %v, want 1", got)
	}
	if got := testutil.ToFloat64(c.jobsDeleted); got != 1 {
		t.Errorf("jobs deleted = %v, want 1", got)
	}
	if got := testutil.ToFloat64(c.loginFailures); got != 1 {
		t.Errorf("login failures = %v, want 1", got)
	}
}

func TestHandler_ExposesRegisteredMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)
	c.RecordHTTPStatus(200)
	c.RecordRequestDuration(10 * time.Millisecond)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()
	Handler(reg).ServeHTTP(w, req)

	resp := w.Result()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusOK)
	}

	body, _ := io.ReadAll(resp.Body)
	output := string(body)
	if !strings.Contains(output, "jobboard_http_status_total") {
		t.Error("output missing jobboard_http_status_total")
	}
	if !strings.Contains(output, "jobboard_http_request_duration_seconds") {
		t.Error("output missing jobboard_http_request_duration_seconds")
	}
}
