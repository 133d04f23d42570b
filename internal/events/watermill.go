// Package events publishes wallet domain events through Watermill.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-redisstream/pkg/redisstream"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"

	"github.com/dtroode/stellar-wallet-server/internal/model"
)

// Topics events are published on.
const (
	TopicAuthenticated    = "wallet.authenticated"
	TopicPaymentSubmitted = "wallet.payment_submitted"
)

// AuthenticatedEvent is published after a session is verified.
type AuthenticatedEvent struct {
	IdentityID string    `json:"identity_id"`
	PublicKey  string    `json:"public_key"`
	SessionID  string    `json:"session_id"`
	VerifiedAt time.Time `json:"verified_at"`
}

// PaymentSubmittedEvent is published after the ledger accepts a payment.
type PaymentSubmittedEvent struct {
	model.PaymentReceipt
}

var _ model.EventPublisher = (*WatermillPublisher)(nil)

// WatermillPublisher implements model.EventPublisher on a Watermill publisher.
type WatermillPublisher struct {
	publisher message.Publisher
}

func NewWatermillPublisher(publisher message.Publisher) *WatermillPublisher {
	return &WatermillPublisher{publisher: publisher}
}

// PublishAuthenticated publishes an authenticated event keyed by the session id.
func (p *WatermillPublisher) PublishAuthenticated(ctx context.Context, identity model.Identity, session model.AuthSession) error {
	event := AuthenticatedEvent{
		IdentityID: identity.ID.String(),
		PublicKey:  identity.PublicKey,
		SessionID:  session.ID.String(),
	}
	if session.VerifiedAt != nil {
		event.VerifiedAt = *session.VerifiedAt
	}

	return p.publish(ctx, TopicAuthenticated, session.ID.String(), event)
}

// PublishPaymentSubmitted publishes a payment event keyed by the transaction hash.
func (p *WatermillPublisher) PublishPaymentSubmitted(ctx context.Context, receipt model.PaymentReceipt) error {
	return p.publish(ctx, TopicPaymentSubmitted, receipt.TransactionHash, PaymentSubmittedEvent{receipt})
}

func (p *WatermillPublisher) publish(ctx context.Context, topic, key string, event any) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.Metadata.Set("key", key)
	msg.SetContext(ctx)

	if err := p.publisher.Publish(topic, msg); err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}

	return nil
}

// Close releases the underlying publisher.
func (p *WatermillPublisher) Close() error {
	return p.publisher.Close()
}

// NewRedisPublisher publishes onto Redis streams.
func NewRedisPublisher(client redis.UniversalClient) (message.Publisher, error) {
	publisher, err := redisstream.NewPublisher(
		redisstream.PublisherConfig{
			Client: client,
		},
		watermill.NewStdLogger(false, false),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create redis publisher: %w", err)
	}
	return publisher, nil
}

// NewInMemoryPubSub returns a process-local pub/sub used when Redis is not configured.
func NewInMemoryPubSub() *gochannel.GoChannel {
	return gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
}
