package middleware

import (
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo"
	"go.uber.org/zap"
)

const requestIdHeader = "X-Request-ID"

// RequestLogger logs one line per request with a propagated request id.
func RequestLogger(log *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			requestId := c.Request().Header.Get(requestIdHeader)
			if requestId == "" {
				requestId = uuid.NewString()
			}
			c.Response().Header().Set(requestIdHeader, requestId)

			started := time.Now()
			err := next(c)

			log.Info("request",
				zap.String("id", requestId),
				zap.String("method", c.Request().Method),
				zap.String("path", c.Request().URL.Path),
				zap.Int("status", c.Response().Status),
				zap.Duration("duration", time.Since(started)),
			)

			return err
		}
	}
}
