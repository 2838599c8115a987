package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/lumident/clinic-platform/pkg/logging"
)

// ChatNotifier pushes short operational messages to a chat channel.
type ChatNotifier interface {
	Notify(ctx context.Context, text string) error
}

// TelegramConfig holds configuration for the Telegram Bot API.
// The bot token stays server-side only; it must never reach clients.
type TelegramConfig struct {
	APIBase string
	Token   string
	ChatID  string
}

// TelegramNotifier delivers messages through the Telegram Bot API.
type TelegramNotifier struct {
	client  *http.Client
	apiBase string
	token   string
	chatID  string
	logger  *logging.Logger
}

// NewTelegramNotifier creates a Telegram notifier. Returns nil when the
// token or chat ID is unset so callers can treat the channel as disabled.
func NewTelegramNotifier(cfg TelegramConfig, logger *logging.Logger) *TelegramNotifier {
	if cfg.Token == "" || cfg.ChatID == "" {
		return nil
	}
	if cfg.APIBase == "" {
		cfg.APIBase = "https://api.telegram.org"
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &TelegramNotifier{
		client:  &http.Client{Timeout: 10 * time.Second},
		apiBase: cfg.APIBase,
		token:   cfg.Token,
		chatID:  cfg.ChatID,
		logger:  logger,
	}
}

type telegramSendMessage struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode"`
}

// Notify posts an HTML-formatted message to the configured chat.
func (n *TelegramNotifier) Notify(ctx context.Context, text string) error {
	payload := telegramSendMessage{
		ChatID:    n.chatID,
		Text:      text,
		ParseMode: "HTML",
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("notify: marshal telegram payload: %w", err)
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", n.apiBase, n.token)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("notify: build telegram request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		n.logger.Error("telegram send failed", "error", err)
		return fmt.Errorf("notify: telegram send failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		n.logger.Error("telegram returned error status", "status", resp.StatusCode)
		return fmt.Errorf("notify: telegram returned status %d", resp.StatusCode)
	}

	n.logger.Info("telegram message sent", "status", resp.StatusCode)
	return nil
}

// StubChatNotifier is a no-op notifier for testing or when chat is disabled.
type StubChatNotifier struct {
	logger *logging.Logger
}

// NewStubChatNotifier creates a stub chat notifier that logs but doesn't send.
func NewStubChatNotifier(logger *logging.Logger) *StubChatNotifier {
	if logger == nil {
		logger = logging.Default()
	}
	return &StubChatNotifier{logger: logger}
}

// Notify logs the message but doesn't deliver it anywhere.
func (s *StubChatNotifier) Notify(ctx context.Context, text string) error {
	s.logger.Info("stub chat notifier: would send message", "text", text)
	return nil
}

var _ ChatNotifier = (*TelegramNotifier)(nil)
var _ ChatNotifier = (*StubChatNotifier)(nil)
