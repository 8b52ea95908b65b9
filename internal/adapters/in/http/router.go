package http

import (
	"log/slog"
	"net/http"

	"orderdesk/internal/generated/servers"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter builds the echo instance serving the API, the OpenAPI document and the metrics endpoint.
func NewRouter(s *Server, doc *openapi3.T, gatherer prometheus.Gatherer, logger *slog.Logger) *echo.Echo {
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("component", "HTTPRouter")

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []any{
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
			}
			if v.Error != nil {
				logger.ErrorContext(c.Request().Context(), "request failed", append(attrs, "error", v.Error)...)
				return nil
			}
			logger.InfoContext(c.Request().Context(), "request handled", attrs...)
			return nil
		},
	}))

	servers.RegisterHandlers(e, s)
	e.GET("/orderstatus", s.MissingOrderID)
	e.GET("/orderstatus/", s.MissingOrderID)

	if doc != nil {
		e.GET("/openapi.json", func(c echo.Context) error {
			return c.JSON(http.StatusOK, doc)
		})
	}
	if gatherer != nil {
		e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	}

	return e
}
