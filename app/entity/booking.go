package entity

import "time"

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "Pending"
	BookingStatusAccepted  BookingStatus = "Accepted"
	BookingStatusRejected  BookingStatus = "Rejected"
	BookingStatusCancelled BookingStatus = "Cancelled"
)

type Booking struct {
	ID uint64

	UserID     uint64
	PropertyID uint64

	Status      BookingStatus
	BookingDate time.Time
}
