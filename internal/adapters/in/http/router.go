package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"dispatch/internal/adapters/in/http/openapi"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/legacy"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// Options configures the echo instance built by NewEcho.
type Options struct {
	// CORSOrigins lists the origins allowed to call the API. Empty allows any.
	CORSOrigins []string
}

// NewEcho builds the echo instance serving server: middleware, request
// validation against the embedded OpenAPI document, health and Swagger UI.
func NewEcho(ctx context.Context, server *Server, logger *slog.Logger, opts Options) (*echo.Echo, error) {
	doc, err := openapi.Load(ctx)
	if err != nil {
		return nil, err
	}
	if err = openapi.RegisterSwagger(doc); err != nil {
		return nil, err
	}

	validator, err := RequestValidator(doc)
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = errorHandler

	e.Use(middleware.Recover())
	e.Use(requestLogger(logger))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: corsOrigins(opts.CORSOrigins),
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodOptions},
	}))

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	server.Register(e.Group("", validator))

	return e, nil
}

// RequestValidator checks the shape of requests whose route is described in
// doc. Requests for undocumented routes pass through untouched.
func RequestValidator(doc *openapi3.T) (echo.MiddlewareFunc, error) {
	router, err := legacy.NewRouter(doc)
	if err != nil {
		return nil, fmt.Errorf("build openapi router: %w", err)
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()

			route, pathParams, findErr := router.FindRoute(req)
			if findErr != nil {
				var routeErr *routers.RouteError
				if errors.As(findErr, &routeErr) {
					return next(c)
				}
				return findErr
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      route,
				Options: &openapi3filter.Options{
					AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
				},
			}
			if err := openapi3filter.ValidateRequest(req.Context(), input); err != nil {
				return c.JSON(http.StatusBadRequest, ErrorResponse{Error: validationMessage(err)})
			}

			return next(c)
		}
	}, nil
}

func validationMessage(err error) string {
	var requestErr *openapi3filter.RequestError
	if errors.As(err, &requestErr) {
		if requestErr.Err != nil {
			return requestErr.Err.Error()
		}
		return requestErr.Reason
	}
	return err.Error()
}

func requestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	logger = logger.With("component", "http")

	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			level := slog.LevelInfo
			if v.Status >= http.StatusInternalServerError {
				level = slog.LevelError
			}

			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
			}
			if v.Error != nil {
				attrs = append(attrs, slog.String("error", v.Error.Error()))
			}

			logger.LogAttrs(c.Request().Context(), level, "request", attrs...)
			return nil
		},
	})
}

// errorHandler renders echo's own errors (unknown route, bad method, panics)
// in the API error format.
func errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	message := http.StatusText(status)

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		status = httpErr.Code
		message = fmt.Sprint(httpErr.Message)
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(status)
		return
	}
	_ = c.JSON(status, ErrorResponse{Error: message})
}

func corsOrigins(origins []string) []string {
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}
