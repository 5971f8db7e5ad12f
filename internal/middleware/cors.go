package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// CORS allows every origin, method and request header with credentials.
// The request origin is echoed back because browsers refuse a literal "*"
// on credentialed requests.  Only suitable for a non-sensitive surface.
func CORS() echo.MiddlewareFunc {
	return echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{
			http.MethodGet,
			http.MethodHead,
			http.MethodPost,
			http.MethodPut,
			http.MethodPatch,
			http.MethodDelete,
			http.MethodOptions,
		},
		// Empty AllowHeaders reflects Access-Control-Request-Headers.
		AllowHeaders:     nil,
		AllowCredentials: true,

		UnsafeWildcardOriginWithAllowCredentials: true,
	})
}
