package server

import (
	"net/http"

	"github.com/destars/debox-chat-go/internal/handler"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (h *HTTPServer) setupRoutes() {
	h.router.Use(handler.RequestID(), h.httpMetrics.Middleware())

	h.router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "server is running",
		})
	})
	h.router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	h.router.POST(h.handler.Path(),
		handler.RequireWebhookKey(h.webhookKey, h.handler.UnauthorizedStatus()),
		h.handler.Handle,
	)
}
