package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"go.uber.org/zap"

	"github.com/wavemint/marketplace/internal/domain"
	"github.com/wavemint/marketplace/internal/logger"
)

// Config holds the configuration for the NATS JetStream connection
type Config struct {
	URL            string
	StreamName     string
	ConnectionName string
	MaxReconnects  int
	ReconnectWait  time.Duration
}

type jetstreamPublisher struct {
	nc         *nats.Conn
	js         jetstream.JetStream
	streamName string
}

// NewJetStreamPublisher creates a NATS JetStream publisher for sale events
func NewJetStreamPublisher(cfg Config) (Publisher, error) {
	opts := []nats.Option{
		nats.Name(cfg.ConnectionName),
		nats.MaxReconnects(cfg.MaxReconnects),
		nats.ReconnectWait(cfg.ReconnectWait),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			if err != nil {
				logger.Error(err, zap.String("message", "Disconnected from NATS"))
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("Reconnected to NATS", zap.String("url", nc.ConnectedUrl()))
		}),
		nats.ClosedHandler(func(nc *nats.Conn) {
			logger.Info("NATS connection closed")
		}),
	}

	nc, err := nats.Connect(cfg.URL, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	js, err := jetstream.New(nc)
	if err != nil {
		nc.Close()
		return nil, fmt.Errorf("failed to create JetStream context: %w", err)
	}

	return &jetstreamPublisher{
		nc:         nc,
		js:         js,
		streamName: cfg.StreamName,
	}, nil
}

// PublishSale publishes a completed-sale event to JetStream
func (p *jetstreamPublisher) PublishSale(ctx context.Context, event *domain.SaleEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal sale event: %w", err)
	}

	// Format: market.sale.{release_id}
	subject := fmt.Sprintf("market.sale.%d", event.ReleaseID)

	if _, err := p.js.Publish(ctx, subject, data); err != nil {
		return fmt.Errorf("failed to publish sale event: %w", err)
	}

	return nil
}

// Close closes the NATS connection
func (p *jetstreamPublisher) Close() {
	if p.nc != nil {
		p.nc.Close()
	}
}
