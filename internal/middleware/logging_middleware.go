package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/vitrine/marketplace-backend/pkg/logger"
)

const RequestIDHeader = "X-Request-ID"

const (
	RequestIDKey = "request_id"
	loggerKey    = "request_logger"
)

// LoggingMiddleware assigns a request id, stores a request-scoped logger on
// the context and logs one completion line per request.
func LoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		started := time.Now()

		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(RequestIDKey, requestID)
		c.Header(RequestIDHeader, requestID)

		reqLog := logger.WithContext(logger.Fields{
			RequestIDKey: requestID,
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"ip":         c.ClientIP(),
		})
		reqLog.Debug("Incoming request", logger.Fields{
			"user_agent": c.Request.UserAgent(),
			"query":      c.Request.URL.RawQuery,
		})
		c.Set(loggerKey, reqLog)

		c.Next()

		status := c.Writer.Status()
		fields := completionFields(c, time.Since(started))
		switch {
		case status >= 500:
			reqLog.Error("Request completed", nil, fields)
		case status >= 400:
			reqLog.Warn("Request completed", fields)
		default:
			reqLog.Info("Request completed", fields)
		}
	}
}

func completionFields(c *gin.Context, latency time.Duration) logger.Fields {
	fields := logger.Fields{
		"status_code": c.Writer.Status(),
		"latency_ms":  latency.Milliseconds(),
		"body_size":   c.Writer.Size(),
	}
	if userID, ok := GetUserID(c); ok {
		fields["user_id"] = userID
	}
	if len(c.Errors) > 0 {
		fields["errors"] = c.Errors.String()
	}
	return fields
}

// GetLoggerFromContext returns the request logger, or the global one outside
// LoggingMiddleware.
func GetLoggerFromContext(c *gin.Context) *logger.Logger {
	if l, ok := c.Get(loggerKey); ok {
		if reqLog, ok := l.(*logger.Logger); ok {
			return reqLog
		}
	}
	return logger.Get()
}
