package model

import "context"

// EventPublisher announces domain events to other services.
type EventPublisher interface {
	PublishAuthenticated(ctx context.Context, identity Identity, session AuthSession) error
	PublishPaymentSubmitted(ctx context.Context, receipt PaymentReceipt) error
}
