package client

import (
	"context"
	"time"

	"github.com/destars/debox-chat-go/debox"
	"github.com/destars/debox-chat-go/internal/metrics"
	"github.com/kelseyhightower/envconfig"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

//go:generate mockgen -package mockclient -destination ./mock/mockclient.go . DeBoxProvider
type DeBoxProvider interface {
	GetUserInfo(ctx context.Context, userID string) (*debox.Response, error)
	GetGroupInfo(ctx context.Context, groupID string) (*debox.Response, error)
	SendMessage(ctx context.Context, toUserID string, message string) (*debox.Response, error)
	SendGraphicMessage(ctx context.Context, toUserID string, title string, content string, imageURL string, href string) (*debox.Response, error)
	SendGroupTextMessage(ctx context.Context, groupID string, toUserID string, title string, content string) (*debox.Response, error)
	SendGroupGraphicMessage(ctx context.Context, groupID string, toUserID string, title string, content string, imageURL string, href string) (*debox.Response, error)
}

var _ DeBoxProvider = (*debox.Client)(nil)

type DeBoxConfig struct {
	APIKey  string        `envconfig:"DEBOX_API_KEY"`
	BaseURL string        `envconfig:"DEBOX_BASE_URL" default:"https://open.debox.pro"`
	Timeout time.Duration `envconfig:"HTTP_CLIENT_TIMEOUT" default:"10s"`
}

type DeBoxParams struct {
	fx.In

	Config           DeBoxConfig
	MetricsCollector *metrics.HTTPClientCollector
	Logger           *zap.Logger
}

// NewDeBoxClient builds the SDK client from the environment. An empty
// DEBOX_API_KEY fails with debox.ErrMissingAPIKey and stops the app.
func NewDeBoxClient(params DeBoxParams) (*debox.Client, error) {
	opts := []debox.Option{
		debox.WithAPIKeyProvider(nil),
		debox.WithBaseURL(params.Config.BaseURL),
		debox.WithTimeout(params.Config.Timeout),
	}
	if params.MetricsCollector != nil {
		opts = append(opts, debox.WithRecorder(params.MetricsCollector))
	}
	if params.Logger != nil {
		opts = append(opts, debox.WithLogger(params.Logger.Named("debox")))
	}

	return debox.New(params.Config.APIKey, opts...)
}

func NewDeBoxConfig() DeBoxConfig {
	var cfg DeBoxConfig
	envconfig.MustProcess("", &cfg)

	return cfg
}
