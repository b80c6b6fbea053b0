package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/ritmdance/studio/container"
	"github.com/ritmdance/studio/services"
)

// NewServer builds the echo instance with middleware and every route
func NewServer(c *container.Container, content *services.ContentService, submissions *services.SubmissionService) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.JSONSerializer = JSONSerializer{}

	e.Use(middleware.RequestID())
	e.Use(RequestLogger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: c.Config.CORSAllowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
	}))

	e.GET("/healthz", func(ctx echo.Context) error {
		return ctx.JSON(http.StatusOK, map[string]any{
			"status":         "ok",
			"cms_configured": c.CMS.Configured(),
			"cache":          c.Redis.Status(ctx.Request().Context()),
		})
	})

	RegisterRoutes(e, c, content, submissions)

	return e
}
