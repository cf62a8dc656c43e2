package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "Pending"
	PaymentStatusCompleted PaymentStatus = "Completed"
	PaymentStatusFailed    PaymentStatus = "Failed"
)

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusCompleted, PaymentStatusFailed:
		return true
	default:
		return false
	}
}

// Terminal reports whether no further transition is allowed from s.
func (s PaymentStatus) Terminal() bool {
	switch s {
	case PaymentStatusCompleted, PaymentStatusFailed:
		return true
	default:
		return false
	}
}

type Gateway string

const (
	GatewayEsewa  Gateway = "eSewa"
	GatewayKhalti Gateway = "Khalti"
)

func (g Gateway) Valid() bool {
	switch g {
	case GatewayEsewa, GatewayKhalti:
		return true
	default:
		return false
	}
}

type Payment struct {
	ID uint64

	AgreementID uint64
	RenterID    uint64
	BookingID   *uint64

	Amount decimal.Decimal

	Status  PaymentStatus
	Gateway Gateway

	TransactionReference *string
	TransactionID        *string
	ReferenceID          *string

	PaymentDate time.Time
}
