package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder(t *testing.T) {
	r := NewRecorder()

	r.AnalysisCompleted("openai", 2*time.Second)
	r.AnalysisCompleted("openai", time.Second)
	r.AnalysisCompleted("anthropic", time.Second)
	r.AnalysisFailed("validation")
	r.FallbackUsed()

	assert.Equal(t, float64(2), testutil.ToFloat64(r.completed.WithLabelValues("openai")))
	assert.Equal(t, float64(1), testutil.ToFloat64(r.completed.WithLabelValues("anthropic")))
	assert.Equal(t, float64(1), testutil.ToFloat64(r.failed.WithLabelValues("validation")))
	assert.Equal(t, float64(1), testutil.ToFloat64(r.fallbacks))
}

func TestHandler(t *testing.T) {
	r := NewRecorder()
	r.FallbackUsed()

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "meeting_analyzer_llm_fallbacks_total 1")
	assert.Contains(t, string(body), "go_goroutines")
}
