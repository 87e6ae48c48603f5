package handler

import "github.com/destars/debox-chat-go/internal/service"

// WebhookRequest is the event DeBox posts for every message sent to the bot.
type WebhookRequest struct {
	FromUserID string `json:"from_user_id" binding:"required"`
	ToUserID   string `json:"to_user_id"`
	GroupID    string `json:"group_id"`
	Message    string `json:"message"`
	Language   string `json:"language"`
}

func (r WebhookRequest) InboundMessage() service.InboundMessage {
	return service.InboundMessage{
		FromUserID: r.FromUserID,
		ToUserID:   r.ToUserID,
		GroupID:    r.GroupID,
		Message:    r.Message,
		Language:   r.Language,
	}
}
