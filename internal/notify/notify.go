package notify

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/xaenox/meet-bot/internal/models"
)

// Notifier tells someone that a meeting was opened.
type Notifier interface {
	Notify(ctx context.Context, join models.Join) error
}

type NopNotifier struct{}

func (NopNotifier) Notify(context.Context, models.Join) error { return nil }

type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// TelegramNotifier posts join announcements to a single chat.
type TelegramNotifier struct {
	api    sender
	chatID int64
	logger *zap.Logger
}

func NewTelegramNotifier(token string, chatID int64, logger *zap.Logger) (*TelegramNotifier, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}

	return &TelegramNotifier{
		api:    api,
		chatID: chatID,
		logger: logger,
	}, nil
}

func (n *TelegramNotifier) Notify(ctx context.Context, join models.Join) error {
	msg := tgbotapi.NewMessage(n.chatID, formatJoin(join))
	msg.ParseMode = "MarkdownV2"
	msg.DisableWebPagePreview = true

	if _, err := n.api.Send(msg); err != nil {
		return fmt.Errorf("failed to send join notification: %w", err)
	}
	n.logger.Debug("Sent join notification",
		zap.Int64("chat_id", n.chatID),
		zap.String("kind", string(join.Kind)))
	return nil
}

func formatJoin(join models.Join) string {
	text := fmt.Sprintf("*Joining %s meeting* at %s\n%s",
		escapeMarkdown(string(join.Kind)),
		escapeMarkdown(join.JoinedAt.Format("15:04")),
		escapeMarkdown(join.Link))
	if join.LaunchErr != "" {
		text += "\n⚠️ " + escapeMarkdown("Browser failed: "+join.LaunchErr)
	}
	return text
}

// escapeMarkdown escapes the characters MarkdownV2 reserves.
func escapeMarkdown(text string) string {
	specialChars := []string{"\\", "_", "*", "[", "]", "(", ")", "~", "`", ">", "#", "+", "-", "=", "|", "{", "}", ".", "!"}
	escaped := text
	for _, char := range specialChars {
		escaped = strings.ReplaceAll(escaped, char, "\\"+char)
	}
	return escaped
}
