package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRequiresServiceName(t *testing.T) {
	m, err := New("")
	assert.Error(t, err)
	assert.Nil(t, m)
}

func TestObserveRequest(t *testing.T) {
	m, err := New("ruva-backend")
	require.NoError(t, err)

	m.ObserveRequest(http.MethodGet, "/api/hello", http.StatusOK, 0.01)
	m.ObserveRequest(http.MethodGet, "/missing", http.StatusNotFound, 0.01)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.requestsTotal.WithLabelValues(http.MethodGet, "/api/hello", "200")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.errorsTotal.WithLabelValues(http.MethodGet, "/api/hello", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.errorsTotal.WithLabelValues(http.MethodGet, "/missing", "404")))
}

func TestObserveProbeAndHandler(t *testing.T) {
	m, err := New("ruva-backend")
	require.NoError(t, err)

	m.ObserveProbe("working")
	m.ObserveProbe("working")
	assert.Equal(t, 2.0, testutil.ToFloat64(m.probeOutcomes.WithLabelValues("working")))

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `diagnostic_probe_outcomes_total{service="ruva-backend",status="working"} 2`)
}
