// Package alert owns low-stock alerting: the threshold trigger, the
// per-branch daily de-duplication marker and the outbound notifier.
package alert

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/go-resty/resty/v2"
)

// Notifier delivers a low-stock message to the office. Delivery is
// best-effort; callers log failures and never retry.
type Notifier interface {
	SendLowStock(ctx context.Context, branch string, currentStock int, trayEquivalent float64) error
}

// TelegramNotifier posts alerts to a Telegram group via the bot API.
type TelegramNotifier struct {
	client   *resty.Client
	botToken string
	chatID   string
}

func NewTelegramNotifier(botToken, chatID string) *TelegramNotifier {
	client := resty.New().
		SetTimeout(10 * time.Second).
		SetBaseURL("https://api.telegram.org")

	return &TelegramNotifier{
		client:   client,
		botToken: botToken,
		chatID:   chatID,
	}
}

func (n *TelegramNotifier) SendLowStock(ctx context.Context, branch string, currentStock int, trayEquivalent float64) error {
	text := fmt.Sprintf(
		"⚠️ LOW STOCK [%s]\nCurrent stock: %d eggs (%.1f trays)\nPlease plan production or hold dispatches.",
		branch, currentStock, trayEquivalent,
	)

	resp, err := n.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"chat_id": n.chatID,
			"text":    text,
		}).
		Post("/bot" + n.botToken + "/sendMessage")
	if err != nil {
		return fmt.Errorf("telegram send failed: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("telegram send failed: status %d", resp.StatusCode())
	}

	log.Printf("[Alert] Low stock alert sent for %s (%d eggs)", branch, currentStock)
	return nil
}

// MultiNotifier fans one alert out to several sinks. A sink failing
// does not stop the others; the first error is reported.
type MultiNotifier struct {
	sinks []Notifier
}

func NewMultiNotifier(sinks ...Notifier) *MultiNotifier {
	return &MultiNotifier{sinks: sinks}
}

func (n *MultiNotifier) SendLowStock(ctx context.Context, branch string, currentStock int, trayEquivalent float64) error {
	var firstErr error
	for _, sink := range n.sinks {
		if err := sink.SendLowStock(ctx, branch, currentStock, trayEquivalent); err != nil {
			log.Printf("[Alert] Sink failed for %s: %v", branch, err)
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}

// MockNotifier logs instead of sending. Used when no bot token is
// configured and in tests.
type MockNotifier struct {
	Sent []string
}

func NewMockNotifier() *MockNotifier {
	return &MockNotifier{}
}

func (n *MockNotifier) SendLowStock(ctx context.Context, branch string, currentStock int, trayEquivalent float64) error {
	n.Sent = append(n.Sent, branch)
	log.Printf("[Alert] MOCK low stock alert for %s: %d eggs (%.1f trays)", branch, currentStock, trayEquivalent)
	return nil
}
