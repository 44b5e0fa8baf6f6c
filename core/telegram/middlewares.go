package telegram

import (
	"github.com/m3rciful/menubot/core/telegram/middleware"
)

// DefaultMiddlewares builds the shared middleware chain for bots:
// panic recovery, update logging and outbound message metrics.
func DefaultMiddlewares() []Middleware {
	return []Middleware{
		{Name: "recover", Use: middleware.RecoverMiddleware},
		{Name: "logger", Use: middleware.LoggerMiddleware},
		{Name: "metrics", Use: middleware.MessageMetricsMiddleware},
	}
}
