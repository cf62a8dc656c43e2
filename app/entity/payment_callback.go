package entity

import "time"

type PaymentCallbackStatus string

const (
	PaymentCallbackProcessed PaymentCallbackStatus = "processed"
	PaymentCallbackDuplicate PaymentCallbackStatus = "duplicate"
	PaymentCallbackRejected  PaymentCallbackStatus = "rejected"
)

type PaymentCallback struct {
	ID uint64

	PaymentID *uint64

	Gateway              Gateway
	TransactionReference string
	Signature            string
	PayloadJSON          string
	Status               PaymentCallbackStatus
	Error                *string

	CreatedAt time.Time
}
