package entity

import "time"

type Agreement struct {
	ID uint64

	BookingID  uint64
	LandlordID uint64
	RenterID   uint64

	StartDate time.Time
	EndDate   time.Time
	Status    string
	SignedAt  *time.Time
}
