package entity

import "time"

const (
	PaymentEventInitiated = "payment_initiated"
	PaymentEventCompleted = "payment_completed"
	PaymentEventFailed    = "payment_failed"
	PaymentEventExpired   = "payment_expired"
)

type PaymentEvent struct {
	ID uint64

	PaymentID uint64

	EventType string

	OldStatus *PaymentStatus
	NewStatus PaymentStatus

	TransactionCode *string
	PayloadJSON     *string

	CreatedAt time.Time
}
