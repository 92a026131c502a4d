package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecomputeCounters(t *testing.T) {
	t.Parallel()
	m := New()

	m.ObserveRecompute(20*time.Millisecond, nil)
	m.ObserveRecompute(5*time.Millisecond, errors.New("db down"))
	m.ObserveRecompute(8*time.Millisecond, nil)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.recomputeRuns))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.recomputeFailures))
}

func TestNilMetricsIsNoop(t *testing.T) {
	t.Parallel()
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveRecompute(time.Second, nil)
		m.OverSaved()
		m.MilestoneFired("50")
	})
}

func TestHandlerExposesCollectors(t *testing.T) {
	t.Parallel()
	m := New()
	m.OverSaved()
	m.MilestoneFired("100")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.True(t, strings.Contains(body, "scorebook_overs_saved_total 1"))
	assert.True(t, strings.Contains(body, `scorebook_milestones_fired_total{kind="100"} 1`))
}
