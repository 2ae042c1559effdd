package middleware

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"bookshelf/internal/domain"
)

// LogWriter persists one request-log row.
type LogWriter interface {
	Create(ctx context.Context, entry *domain.RequestLog) error
}

// RequestLogger records every request to the log store after the response
// is written. Store failures are logged and never surfaced to the client.
func RequestLogger(logs LogWriter, appLog zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		status := c.Writer.Status()
		elapsed := time.Since(start)

		var userID *int64
		if id := c.GetInt64(CtxUserID); id != 0 {
			userID = &id
		}

		entry := &domain.RequestLog{
			Method:       c.Request.Method,
			Route:        c.Request.URL.Path,
			StatusCode:   status,
			ResponseTime: elapsed.Milliseconds(),
			IP:           c.ClientIP(),
			UserID:       userID,
			Feature:      featureOf(c.Request.URL.Path),
			Timestamp:    time.Now(),
		}
		if status >= 400 {
			entry.Error = fmt.Sprintf("HTTP %d", status)
		}

		// The response is already gone; the request context may be
		// canceled, so the write uses its own.
		if err := logs.Create(context.Background(), entry); err != nil {
			appLog.Error().Err(err).Msg("failed to persist request log")
		}

		if status >= 500 {
			appLog.Error().
				Str("method", c.Request.Method).
				Str("path", c.Request.URL.Path).
				Int("status", status).
				Dur("latency", elapsed).
				Msg("server error")
		}
	}
}

func featureOf(path string) string {
	switch {
	case strings.Contains(path, "/books"):
		return "books"
	case strings.Contains(path, "/auth"):
		return "auth"
	case strings.Contains(path, "/user"):
		return "users"
	default:
		return "system"
	}
}
