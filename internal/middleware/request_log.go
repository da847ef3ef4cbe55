package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"streetart-capture/internal/logger"
)

const (
	RequestIDKey    = "request_id"
	RequestIDHeader = "X-Request-ID"
)

// RequestLogger stamps every request with an id and writes one access log
// line per request. Requests slower than slow are logged at warn level.
func RequestLogger(log logger.Logger, slow time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		reqID := c.GetHeader(RequestIDHeader)
		if reqID == "" {
			reqID = uuid.New().String()
		}
		c.Set(RequestIDKey, reqID)
		c.Header(RequestIDHeader, reqID)

		start := time.Now()
		c.Next()
		elapsed := time.Since(start)

		evt := log.Info()
		switch {
		case c.Writer.Status() >= 500:
			evt = log.Error()
		case slow > 0 && elapsed >= slow:
			evt = log.Warn()
		}
		if len(c.Errors) > 0 {
			evt = evt.Str("errors", c.Errors.String())
		}
		evt.Str("request_id", reqID).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Int("bytes", c.Writer.Size()).
			Dur("elapsed", elapsed).
			Msg("request done")
	}
}
