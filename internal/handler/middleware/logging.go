package middleware

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"peershare/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func NewLogger(cfg config.LogConfig) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
}

func LoggingMiddleware(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		startTime := time.Now()
		requestID := uuid.NewString()
		c.Set("request_id", requestID)

		c.Next()

		attrs := []any{
			"request_id", requestID,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"client_ip", c.ClientIP(),
			"duration_ms", time.Since(startTime).Milliseconds(),
		}
		if sharerID, ok := GetSharerID(c); ok {
			attrs = append(attrs, "sharer_user_id", sharerID)
		}

		if c.Writer.Status() >= 500 {
			logger.Error("request failed", attrs...)
		} else {
			logger.Info("request handled", attrs...)
		}
	}
}
