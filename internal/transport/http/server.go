package http

import (
	stdhttp "net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/zes0-cmd/chat-appv2/internal/config"
	"github.com/zes0-cmd/chat-appv2/internal/core"
)

// NewServer builds the HTTP server with the health and WebSocket routes.
func NewServer(hub *core.Hub, gateway *Gateway, cfg config.Config, logger *zerolog.Logger) *stdhttp.Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	ws := NewWSHandler(hub, gateway, cfg.MessageRate, cfg.MessageBurst, logger)

	router.GET("/health", func(c *gin.Context) {
		c.String(stdhttp.StatusOK, "ok")
	})
	router.GET("/ws", func(c *gin.Context) {
		ws.ServeHTTP(c.Writer, c.Request)
	})

	return &stdhttp.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}
}
