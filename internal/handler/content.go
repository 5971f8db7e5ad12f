package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ruva-app/ruva-backend/internal/content"
)

// Root answers GET / with a fixed running message.
func Root(c echo.Context) error {
	return c.JSON(http.StatusOK, content.RootMessage())
}

// Hello answers GET /api/hello.
func Hello(c echo.Context) error {
	return c.JSON(http.StatusOK, content.HelloMessage())
}

// Prompts returns all AI workflow prompt templates used by the app.
func Prompts(c echo.Context) error {
	return c.JSON(http.StatusOK, content.Prompts())
}
