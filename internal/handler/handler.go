package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

var EchoModule = fx.Module("echo_handler",
	fx.Provide(
		fx.Annotate(
			NewEchoHandler,
			fx.As(new(WebhookHandler)),
		),
		NewWebhookAuthConfig,
	),
)

var RelayModule = fx.Module("relay_handler",
	fx.Provide(
		fx.Annotate(
			NewRelayHandler,
			fx.As(new(WebhookHandler)),
		),
		NewWebhookAuthConfig,
	),
)

// WebhookHandler serves the single POST route the DeBox platform delivers
// bot messages to.
type WebhookHandler interface {
	Path() string
	// UnauthorizedStatus is the status returned for a bad webhook key.
	UnauthorizedStatus() int
	Handle(c *gin.Context)
}
