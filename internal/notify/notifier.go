package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/wavemint/marketplace/internal/adapter"
)

// SaleNotification carries what the chat side-channel needs to announce a
// completed sale
type SaleNotification struct {
	ReleaseTitle  string
	TrackTitle    string
	ArtistName    string
	EditionNumber int
	TotalEditions int
	SoldCount     int
	PriceXRP      string
	BuyerAddress  string
}

// Notifier defines the best-effort chat notification side-channel. Callers
// deliberately discard its errors after logging them: a failed notification
// never rolls back a sale.
//
//go:generate mockgen -source=notifier.go -destination=../mocks/notifier.go -package=mocks -mock_names=Notifier=MockNotifier
type Notifier interface {
	// NotifySale announces a completed sale and any milestone it crossed
	NotifySale(ctx context.Context, notification SaleNotification) error
}

type webhookNotifier struct {
	url  string
	http adapter.HTTPClient
}

// NewWebhookNotifier creates a chat-webhook notifier. An empty URL yields a
// disabled notifier that silently accepts everything.
func NewWebhookNotifier(url string, httpClient adapter.HTTPClient) Notifier {
	if url == "" {
		return &noopNotifier{}
	}
	return &webhookNotifier{url: url, http: httpClient}
}

type chatMessage struct {
	Content string `json:"content"`
}

// NotifySale posts the sale announcement to the chat webhook
func (n *webhookNotifier) NotifySale(ctx context.Context, notification SaleNotification) error {
	message := fmt.Sprintf("%s sold \"%s\" edition #%d/%d for %s XRP (buyer %s)",
		notification.ArtistName,
		notification.TrackTitle,
		notification.EditionNumber,
		notification.TotalEditions,
		notification.PriceXRP,
		shortAddress(notification.BuyerAddress),
	)

	if milestone := milestoneMessage(notification.SoldCount, notification.TotalEditions, notification.TrackTitle); milestone != "" {
		message += "\n" + milestone
	}

	payload, err := json.Marshal(chatMessage{Content: message})
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	if _, err := n.http.Post(ctx, n.url, "application/json", bytes.NewReader(payload)); err != nil {
		return fmt.Errorf("failed to deliver notification: %w", err)
	}

	return nil
}

// milestoneMessage returns a milestone line when the sale crossed the
// sell-out mark or a 25/50/75% threshold, otherwise ""
func milestoneMessage(soldCount, totalEditions int, trackTitle string) string {
	if totalEditions <= 0 {
		return ""
	}
	if soldCount >= totalEditions {
		return fmt.Sprintf("\"%s\" is SOLD OUT!", trackTitle)
	}

	for _, threshold := range []int{75, 50, 25} {
		mark := totalEditions * threshold / 100
		if mark > 0 && soldCount == mark {
			return fmt.Sprintf("\"%s\" passed %d%% sold (%d/%d)", trackTitle, threshold, soldCount, totalEditions)
		}
	}
	return ""
}

// shortAddress elides the middle of a ledger address for display
func shortAddress(address string) string {
	if len(address) <= 12 {
		return address
	}
	return address[:6] + "..." + address[len(address)-4:]
}

type noopNotifier struct{}

func (n *noopNotifier) NotifySale(context.Context, SaleNotification) error {
	return nil
}
