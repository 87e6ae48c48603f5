package service

import (
	"context"

	"github.com/destars/debox-chat-go/debox"
	"go.uber.org/fx"
)

var EchoModule = fx.Module("echo_service",
	fx.Provide(
		fx.Annotate(
			NewEchoService,
			fx.As(new(EchoProvider)),
		),
		NewEchoConfig,
	),
)

var RelayModule = fx.Module("relay_service",
	fx.Provide(
		fx.Annotate(
			NewRelayService,
			fx.As(new(RelayProvider)),
		),
	),
)

// InboundMessage is a message a DeBox user sent to the bot, as delivered by
// the platform webhook. GroupID is empty for direct messages.
type InboundMessage struct {
	FromUserID string
	ToUserID   string
	GroupID    string
	Message    string
	Language   string
}

func (m InboundMessage) IsGroup() bool {
	return m.GroupID != ""
}

//go:generate mockgen -package mockservice -destination ./mock/mockservice.go . EchoProvider,RelayProvider
type EchoProvider interface {
	Echo(ctx context.Context, msg InboundMessage) (*debox.Response, error)
}

type RelayProvider interface {
	Relay(ctx context.Context, msg InboundMessage) (string, error)
}
