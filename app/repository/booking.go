package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/rentease/ms-go-rent-payments/app/entity"
)

var ErrBookingNotFound = errors.New("booking not found")

type BookingRepository struct {
	db DBTX
}

func NewBookingRepository(db DBTX) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) FindByID(ctx context.Context, id uint64) (*entity.Booking, error) {
	query := `
		SELECT bookingId, userId, propertyId, status, bookingDate
		FROM booking
		WHERE bookingId = ?
	`

	booking := &entity.Booking{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&booking.ID,
		&booking.UserID,
		&booking.PropertyID,
		&booking.Status,
		&booking.BookingDate,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return booking, nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, id uint64, status entity.BookingStatus) error {
	result, err := r.db.ExecContext(ctx, "UPDATE booking SET status = ? WHERE bookingId = ?", status, id)
	if err != nil {
		return err
	}
	return requireRow(result, func() (bool, error) {
		booking, err := r.FindByID(ctx, id)
		return booking != nil, err
	}, ErrBookingNotFound)
}
