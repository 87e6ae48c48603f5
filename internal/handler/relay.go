package handler

import (
	"net/http"

	"github.com/destars/debox-chat-go/internal/service"
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const RelayPath = "/v1/webhook"

var _ WebhookHandler = (*Relay)(nil)

type Relay struct {
	service service.RelayProvider
	logger  *zap.Logger
}

type RelayParams struct {
	fx.In

	Service service.RelayProvider
	Logger  *zap.Logger
}

func NewRelayHandler(params RelayParams) *Relay {
	return &Relay{
		service: params.Service,
		logger:  params.Logger,
	}
}

func (r *Relay) Path() string {
	return RelayPath
}

func (r *Relay) UnauthorizedStatus() int {
	return http.StatusForbidden
}

func (r *Relay) Handle(c *gin.Context) {
	ctx := c.Request.Context()

	var req WebhookRequest
	if err := c.ShouldBindBodyWithJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, GetRequestError(err))
		return
	}

	answer, err := r.service.Relay(ctx, req.InboundMessage())
	if err != nil {
		r.logger.Error("relay failed",
			zap.String("from_user_id", req.FromUserID),
			zap.String("request_id", requestIDFrom(c)),
			zap.Error(err),
		)
		c.JSON(http.StatusBadGateway, GetInternalError(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"response": answer,
	})
}
