package v1

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/ritmdance/studio/cms"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Freshness marks the request context so CMS reads skip the response cache
// and rewrite it. Triggered by ?fresh=1 only: browser Cache-Control headers
// are ignored so ordinary reloads keep hitting the cache.
func Freshness() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			if wantsFresh(req) {
				c.SetRequest(req.WithContext(cms.WithFresh(req.Context())))
			}
			return next(c)
		}
	}
}

func wantsFresh(r *http.Request) bool {
	fresh, err := strconv.ParseBool(r.URL.Query().Get("fresh"))
	return err == nil && fresh
}

// RequestLogger writes one zerolog event per request
func RequestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			var event *zerolog.Event
			switch {
			case v.Status >= http.StatusInternalServerError:
				event = log.Error().Err(v.Error)
			case v.Status >= http.StatusBadRequest:
				event = log.Warn().Err(v.Error)
			default:
				event = log.Info()
			}

			event.
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("Handled request")

			return nil
		},
	})
}
