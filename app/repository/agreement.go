package repository

import (
	"context"
	"database/sql"

	"github.com/rentease/ms-go-rent-payments/app/entity"
)

type AgreementRepository struct {
	db DBTX
}

func NewAgreementRepository(db DBTX) *AgreementRepository {
	return &AgreementRepository{db: db}
}

func (r *AgreementRepository) FindByID(ctx context.Context, id uint64) (*entity.Agreement, error) {
	query := `
		SELECT agreementId, bookingId, landlordId, renterId, startDate, endDate, status, signedAt
		FROM agreement
		WHERE agreementId = ?
	`

	agreement := &entity.Agreement{}
	var signedAt sql.NullTime
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&agreement.ID,
		&agreement.BookingID,
		&agreement.LandlordID,
		&agreement.RenterID,
		&agreement.StartDate,
		&agreement.EndDate,
		&agreement.Status,
		&signedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	agreement.SignedAt = timePtrFromNull(signedAt)

	return agreement, nil
}
