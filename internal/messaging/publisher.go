package messaging

import (
	"context"

	"github.com/wavemint/marketplace/internal/domain"
)

// Publisher defines the interface for publishing sale events to a message
// broker. Like the chat side-channel, publishing is best-effort: callers
// log and discard failures.
//
//go:generate mockgen -source=publisher.go -destination=../mocks/publisher.go -package=mocks -mock_names=Publisher=MockPublisher
type Publisher interface {
	// PublishSale publishes a completed-sale event
	PublishSale(ctx context.Context, event *domain.SaleEvent) error
	// Close closes the connection
	Close()
}
