package handler

import (
	"fmt"
	"net/http"

	"github.com/destars/debox-chat-go/internal/service"
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const EchoPath = "/api/destars"

var _ WebhookHandler = (*Echo)(nil)

type Echo struct {
	service service.EchoProvider
	logger  *zap.Logger
}

type EchoParams struct {
	fx.In

	Service service.EchoProvider
	Logger  *zap.Logger
}

func NewEchoHandler(params EchoParams) *Echo {
	return &Echo{
		service: params.Service,
		logger:  params.Logger,
	}
}

func (e *Echo) Path() string {
	return EchoPath
}

func (e *Echo) UnauthorizedStatus() int {
	return http.StatusUnauthorized
}

func (e *Echo) Handle(c *gin.Context) {
	ctx := c.Request.Context()

	var req WebhookRequest
	if err := c.ShouldBindBodyWithJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, GetRequestError(err))
		return
	}

	e.logger.Info("webhook received",
		zap.String("request_id", requestIDFrom(c)),
		zap.String("from_user_id", req.FromUserID),
		zap.String("to_user_id", req.ToUserID),
		zap.String("group_id", req.GroupID),
		zap.String("language", req.Language),
	)

	resp, err := e.service.Echo(ctx, req.InboundMessage())
	if err != nil {
		e.logger.Error("echo failed",
			zap.String("from_user_id", req.FromUserID),
			zap.String("request_id", requestIDFrom(c)),
			zap.Error(err),
		)
		c.JSON(http.StatusBadGateway, GetInternalError(err))
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status": fmt.Sprintf("Message processed successfully: %s", resp),
	})
}
