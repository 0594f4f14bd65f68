package middleware

import (
	"log/slog"

	"washify/config"
	deliverycontext "washify/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// RequestScopeMiddleware tags every request with a request id and puts
// a request-scoped logger on the context for the layers below.
type RequestScopeMiddleware struct {
	logger *slog.Logger
	debug  bool
}

// NewRequestScopeMiddleware creates the request scope middleware.
func NewRequestScopeMiddleware(logger *slog.Logger, config *config.Config) *RequestScopeMiddleware {
	return &RequestScopeMiddleware{
		logger: logger,
		debug:  config.Env.Debug,
	}
}

// Handle attaches the request id and scoped logger.
func (m *RequestScopeMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := c.Request().Header.Get(deliverycontext.HeaderXRequestID)
		if requestID == "" {
			requestID = deliverycontext.GetRequestID(c)
		}
		deliverycontext.SetRequestID(c, requestID)
		c.Response().Header().Set(deliverycontext.HeaderXRequestID, requestID)

		scoped := m.logger.With(slog.String("request_id", requestID))
		ctx := deliverycontext.WithRequestID(c.Request().Context(), requestID)
		ctx = deliverycontext.WithLogger(ctx, scoped)
		c.SetRequest(c.Request().WithContext(ctx))

		if m.debug {
			scoped.Debug("request received",
				slog.String("method", c.Request().Method),
				slog.String("path", c.Request().URL.Path))
		}

		return next(c)
	}
}
