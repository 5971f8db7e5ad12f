package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Health is a liveness endpoint for load balancers and orchestrators.  It
// never touches the database; use /test for the dependency report.
func Health(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}
