package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ruva-app/ruva-backend/internal/handler"
)

// RegisterRoutes registers the operational endpoints: a liveness check at
// /healthz and, when a metrics handler is given, the Prometheus scrape
// endpoint at /metrics.
func RegisterRoutes(e *echo.Echo, metrics http.Handler) {
	e.GET("/healthz", handler.Health)
	if metrics != nil {
		e.GET("/metrics", echo.WrapHandler(metrics))
	}
}

// RegisterContent registers the static content endpoints.  Their bodies
// never change, so the optional cache middleware is applied to this group
// only.
func RegisterContent(e *echo.Echo, cache echo.MiddlewareFunc) {
	var mw []echo.MiddlewareFunc
	if cache != nil {
		mw = append(mw, cache)
	}
	e.GET("/", handler.Root, mw...)
	e.GET("/api/hello", handler.Hello, mw...)
	e.GET("/api/prompts", handler.Prompts, mw...)
}

// RegisterDiagnostic registers GET /test.  It is never cached: each call
// probes the database again.
func RegisterDiagnostic(e *echo.Echo, d *handler.DiagnosticHandler) {
	e.GET("/test", d.Test)
}
