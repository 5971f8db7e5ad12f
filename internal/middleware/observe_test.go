package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type observed struct {
	method, path string
	status       int
}

type recordingObserver struct{ calls []observed }

func (r *recordingObserver) ObserveRequest(method, path string, status int, _ float64) {
	r.calls = append(r.calls, observed{method, path, status})
}

func TestMetricsRecordsRoutePattern(t *testing.T) {
	obs := &recordingObserver{}
	e := echo.New()
	e.Use(Metrics(obs))
	e.GET("/api/hello", func(c echo.Context) error { return c.String(http.StatusOK, "hi") })
	e.GET("/boom", func(c echo.Context) error { return errors.New("boom") })

	for _, path := range []string{"/api/hello", "/boom"} {
		e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	require.Len(t, obs.calls, 2)
	assert.Equal(t, observed{http.MethodGet, "/api/hello", http.StatusOK}, obs.calls[0])
	assert.Equal(t, observed{http.MethodGet, "/boom", http.StatusInternalServerError}, obs.calls[1])
}

func TestRequestLog(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	e := echo.New()
	e.Use(RequestLog(zap.New(core)))
	e.GET("/", func(c echo.Context) error { return c.String(http.StatusOK, "ok") })
	e.GET("/fail", func(c echo.Context) error { return echo.NewHTTPError(http.StatusTeapot, "nope") })

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/fail", nil))
	assert.Equal(t, http.StatusTeapot, rec.Code)

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "request", entries[0].Message)
	assert.Equal(t, int64(http.StatusOK), entries[0].ContextMap()["status"])
	assert.Equal(t, zap.WarnLevel, entries[1].Level)
	assert.Equal(t, int64(http.StatusTeapot), entries[1].ContextMap()["status"])
}
