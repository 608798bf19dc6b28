//go:build unit

package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"bulk-cleanup/internal/domain/record"
	"bulk-cleanup/internal/infra/metrics"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scrape(t *testing.T, m *metrics.Metrics) string {
	t.Helper()
	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	return w.Body.String()
}

func TestMetrics(t *testing.T) {
	m := metrics.New()

	m.ObserveScanPage(record.KindUser, 1000, 12)
	m.ObserveScanPage(record.KindUser, 400, 3)
	m.ObserveDeletion(record.KindOrder, "deleted")
	m.ObserveDeletion(record.KindOrder, "deleted")
	m.ObserveDeletion(record.KindOrder, "not_found")
	m.ObserveBatchDuration("delete", 250*time.Millisecond)
	m.ObserveRequest("/api/cleanup/status", http.MethodGet, http.StatusOK)

	body := scrape(t, m)
	for _, line := range []string{
		`cleanup_records_scanned_total{kind="users"} 1400`,
		`cleanup_records_matched_total{kind="users"} 15`,
		`cleanup_deletions_total{kind="orders",outcome="deleted"} 2`,
		`cleanup_deletions_total{kind="orders",outcome="not_found"} 1`,
		`cleanup_batch_duration_seconds_count{action="delete"} 1`,
		`cleanup_http_requests_total{method="GET",route="/api/cleanup/status",status="200"} 1`,
	} {
		assert.Contains(t, body, line)
	}
}

func TestMetrics_IndependentRegistries(t *testing.T) {
	a := metrics.New()
	b := metrics.New()

	a.ObserveDeletion(record.KindUser, "deleted")

	assert.Contains(t, scrape(t, a), `cleanup_deletions_total{kind="users",outcome="deleted"} 1`)
	assert.NotContains(t, scrape(t, b), `cleanup_deletions_total{kind="users"`)
}
