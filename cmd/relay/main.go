package main

import (
	"github.com/destars/debox-chat-go/internal/client"
	"github.com/destars/debox-chat-go/internal/handler"
	"github.com/destars/debox-chat-go/internal/llm"
	"github.com/destars/debox-chat-go/internal/metrics"
	"github.com/destars/debox-chat-go/internal/repository"
	"github.com/destars/debox-chat-go/internal/server"
	"github.com/destars/debox-chat-go/internal/service"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	fx.New(
		fx.Provide(func() *zap.Logger { return logger }),
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log}
		}),
		metrics.Module,
		server.Module,
		handler.RelayModule,
		service.RelayModule,
		repository.Module,
		llm.Module,
		client.Module,
		fx.Invoke(func(*server.HTTPServer) {}),
	).Run()
}
