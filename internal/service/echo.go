package service

import (
	"context"
	"fmt"

	"github.com/destars/debox-chat-go/debox"
	"github.com/destars/debox-chat-go/internal/client"
	"github.com/kelseyhightower/envconfig"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var _ EchoProvider = (*EchoService)(nil)

// EchoService answers every message with a graphic card repeating it.
type EchoService struct {
	deboxClient client.DeBoxProvider
	config      EchoConfig
	logger      *zap.Logger
}

type EchoConfig struct {
	Title    string `envconfig:"ECHO_TITLE" default:"Echo Message"`
	ImageURL string `envconfig:"ECHO_IMAGE_URL" default:"https://data.debox.space/dao/newpic/one.png"`
	Href     string `envconfig:"ECHO_HREF" default:"https://data.debox.space/dao/newpic/one.png"`
}

type EchoServiceParams struct {
	fx.In

	DeBoxClient client.DeBoxProvider
	Config      EchoConfig
	Logger      *zap.Logger
}

func NewEchoService(params EchoServiceParams) *EchoService {
	return &EchoService{
		deboxClient: params.DeBoxClient,
		config:      params.Config,
		logger:      params.Logger,
	}
}

func NewEchoConfig() EchoConfig {
	var cfg EchoConfig
	envconfig.MustProcess("", &cfg)

	return cfg
}

func (s *EchoService) Echo(ctx context.Context, msg InboundMessage) (*debox.Response, error) {
	var (
		resp *debox.Response
		err  error
	)

	if msg.IsGroup() {
		resp, err = s.deboxClient.SendGroupGraphicMessage(ctx,
			msg.GroupID, msg.FromUserID, s.config.Title, msg.Message, s.config.ImageURL, s.config.Href)
	} else {
		resp, err = s.deboxClient.SendGraphicMessage(ctx,
			msg.FromUserID, s.config.Title, msg.Message, s.config.ImageURL, s.config.Href)
	}
	if err != nil {
		return nil, fmt.Errorf("echo to user '%s': %w", msg.FromUserID, err)
	}

	s.logger.Info("echo sent",
		zap.String("from_user_id", msg.FromUserID),
		zap.String("group_id", msg.GroupID),
	)
	return resp, nil
}
