package telemetry

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scrape(t *testing.T, m *Metrics) string {
	t.Helper()
	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	return string(body)
}

func TestMetricsExposition(t *testing.T) {
	m := New("blog-checker")

	m.ObserveReview("ok", 120*time.Millisecond)
	m.ObserveReview("invalid", time.Millisecond)
	m.AddFindings("utm_links", 3)
	m.AddFindings("hashtags", 0) // no-op
	m.ObserveLLMCall("ok")

	body := scrape(t, m)

	assert.Contains(t, body, `blog_checker_reviews_total{service="blog-checker",status="ok"} 1`)
	assert.Contains(t, body, `blog_checker_reviews_total{service="blog-checker",status="invalid"} 1`)
	assert.Contains(t, body, `blog_checker_findings_total{check="utm_links",service="blog-checker"} 3`)
	assert.NotContains(t, body, `check="hashtags"`)
	assert.Contains(t, body, `blog_checker_llm_calls_total{service="blog-checker",status="ok"} 1`)
	assert.True(t, strings.Contains(body, "blog_checker_review_duration_seconds_bucket"))
}

func TestNilMetricsAreSafe(t *testing.T) {
	var m *Metrics
	m.ObserveReview("ok", time.Second)
	m.AddFindings("utm_links", 1)
	m.ObserveLLMCall("error")
}
