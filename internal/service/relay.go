package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/destars/debox-chat-go/internal/client"
	"github.com/destars/debox-chat-go/internal/llm"
	"github.com/destars/debox-chat-go/internal/repository"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const (
	CommandStart = "/bot"
	CommandStop  = "/stop"

	ResponseActivated   = "Bot Activated"
	ResponseDeactivated = "Bot Deactivated"
	ResponseNoAction    = "No action taken"

	activatedContent   = "Bot is all ears! Say anything, and I'll be here to help!"
	deactivatedContent = "Bot's taking a break! Catch you later!"
	replyTitle         = "Bot Reply"
)

var _ RelayProvider = (*RelayService)(nil)

// RelayService runs the chat bot: /bot opens a session for the sender, /stop
// closes it, and anything said inside a session is answered by the chat model.
type RelayService struct {
	deboxClient client.DeBoxProvider
	sessions    repository.SessionProvider
	completer   llm.CompleterProvider
	logger      *zap.Logger
}

type RelayServiceParams struct {
	fx.In

	DeBoxClient client.DeBoxProvider
	Sessions    repository.SessionProvider
	Completer   llm.CompleterProvider
	Logger      *zap.Logger
}

func NewRelayService(params RelayServiceParams) *RelayService {
	return &RelayService{
		deboxClient: params.DeBoxClient,
		sessions:    params.Sessions,
		completer:   params.Completer,
		logger:      params.Logger,
	}
}

// Relay handles one inbound message and returns the text the bot answered,
// or ResponseNoAction when the sender has no session.
func (s *RelayService) Relay(ctx context.Context, msg InboundMessage) (string, error) {
	command := strings.TrimSpace(msg.Message)

	if command == CommandStart {
		activated, err := s.sessions.Activate(msg.FromUserID)
		if err != nil {
			return "", fmt.Errorf("activate session for user '%s': %w", msg.FromUserID, err)
		}
		if activated {
			s.logger.Info("bot session started", zap.String("from_user_id", msg.FromUserID))
			if err := s.reply(ctx, msg, ResponseActivated, activatedContent); err != nil {
				return "", err
			}
			return ResponseActivated, nil
		}
	}

	if command == CommandStop && s.sessions.Deactivate(msg.FromUserID) {
		s.logger.Info("bot session stopped", zap.String("from_user_id", msg.FromUserID))
		if err := s.reply(ctx, msg, ResponseDeactivated, deactivatedContent); err != nil {
			return "", err
		}
		return ResponseDeactivated, nil
	}

	if !s.sessions.IsActive(msg.FromUserID) {
		return ResponseNoAction, nil
	}

	answer, err := s.completer.Complete(ctx, msg.Message)
	if err != nil {
		return "", fmt.Errorf("ask chat model: %w", err)
	}

	if err := s.reply(ctx, msg, replyTitle, answer); err != nil {
		return "", err
	}
	return answer, nil
}

func (s *RelayService) reply(ctx context.Context, msg InboundMessage, title string, content string) error {
	var err error
	if msg.IsGroup() {
		_, err = s.deboxClient.SendGroupTextMessage(ctx, msg.GroupID, msg.FromUserID, title, content)
	} else {
		_, err = s.deboxClient.SendMessage(ctx, msg.FromUserID, content)
	}
	if err != nil {
		return fmt.Errorf("send '%s' reply to user '%s': %w", title, msg.FromUserID, err)
	}
	return nil
}
