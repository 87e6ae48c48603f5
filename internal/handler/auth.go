package handler

import (
	"crypto/subtle"
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/kelseyhightower/envconfig"
)

const WebhookKeyHeader = "X-API-KEY"

var ErrInvalidWebhookKey = errors.New("missing or invalid webhook key")

type WebhookAuthConfig struct {
	Key string `envconfig:"WEBHOOK_KEY" required:"true"`
}

func NewWebhookAuthConfig() WebhookAuthConfig {
	var cfg WebhookAuthConfig
	envconfig.MustProcess("", &cfg)

	return cfg
}

// RequireWebhookKey aborts with rejectStatus unless the request carries key
// in the X-API-KEY header.
func RequireWebhookKey(key string, rejectStatus int) gin.HandlerFunc {
	return func(c *gin.Context) {
		got := c.GetHeader(WebhookKeyHeader)
		if got == "" || subtle.ConstantTimeCompare([]byte(got), []byte(key)) != 1 {
			c.AbortWithStatusJSON(rejectStatus, GetUnauthorizedError(ErrInvalidWebhookKey))
			return
		}
		c.Next()
	}
}
