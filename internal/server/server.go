package server

import (
	"context"
	"errors"
	"net"
	"net/http"

	"github.com/destars/debox-chat-go/internal/handler"
	"github.com/destars/debox-chat-go/internal/metrics"
	"github.com/gin-gonic/gin"
	"github.com/kelseyhightower/envconfig"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("http_server",
	fx.Provide(
		NewHTTP,
		NewConfig,
	),
)

type HTTPParams struct {
	fx.In

	Config      HTTPConfig
	AuthConfig  handler.WebhookAuthConfig
	Handler     handler.WebhookHandler
	HTTPMetrics *metrics.HTTPServerCollector
	Logger      *zap.Logger
}

type HTTPServer struct {
	router *gin.Engine
	srv    *http.Server

	handler     handler.WebhookHandler
	webhookKey  string
	httpMetrics *metrics.HTTPServerCollector
	logger      *zap.Logger
}

func NewHTTP(lc fx.Lifecycle, params HTTPParams) *HTTPServer {
	httpServer := newHTTPServer(params)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", httpServer.srv.Addr)
			if err != nil {
				return err
			}
			httpServer.logger.Info("starting HTTP server",
				zap.String("addr", ln.Addr().String()),
				zap.String("webhook", httpServer.handler.Path()),
			)
			go func() {
				if err := httpServer.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					httpServer.logger.Error("HTTP server stopped", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return httpServer.srv.Shutdown(ctx)
		},
	})

	return httpServer
}

func newHTTPServer(params HTTPParams) *HTTPServer {
	router := gin.New()
	router.Use(gin.Recovery())

	httpServer := &HTTPServer{
		router: router,
		srv: &http.Server{
			Addr:    params.Config.Port,
			Handler: router,
		},
		handler:     params.Handler,
		webhookKey:  params.AuthConfig.Key,
		httpMetrics: params.HTTPMetrics,
		logger:      params.Logger,
	}

	httpServer.setupRoutes()

	return httpServer
}

type HTTPConfig struct {
	Port string `envconfig:"HTTP_SERVER_PORT" default:":3001"`
}

func NewConfig() HTTPConfig {
	var cfg HTTPConfig
	envconfig.MustProcess("", &cfg)

	return cfg
}
