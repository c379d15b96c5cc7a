package telegram

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/selivandex/newspulse/internal/adapters/config"
	"github.com/selivandex/newspulse/pkg/logger"
)

// Notifier posts batch digests to a Telegram chat. Optional: the pipeline
// runs fine without it when no bot token is configured.
type Notifier struct {
	api    *tgbotapi.BotAPI
	chatID int64
}

// NewNotifier creates the digest notifier
func NewNotifier(cfg *config.TelegramConfig) (*Notifier, error) {
	if cfg.BotToken == "" {
		return nil, fmt.Errorf("telegram bot token is required")
	}
	if cfg.ChatID == 0 {
		return nil, fmt.Errorf("telegram chat ID is required")
	}

	bot, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot API: %w", err)
	}
	bot.Debug = false

	logger.Info("telegram notifier initialized",
		zap.String("bot_username", bot.Self.UserName),
	)

	return &Notifier{api: bot, chatID: cfg.ChatID}, nil
}

// SendDigest delivers a plain-text digest message
func (n *Notifier) SendDigest(digest string) error {
	msg := tgbotapi.NewMessage(n.chatID, digest)
	msg.DisableWebPagePreview = true

	if _, err := n.api.Send(msg); err != nil {
		return fmt.Errorf("failed to send digest: %w", err)
	}

	logger.Debug("digest sent to telegram", zap.Int64("chat_id", n.chatID))
	return nil
}
