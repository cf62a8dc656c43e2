package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/rentease/ms-go-rent-payments/app/entity"
)

var ErrPropertyNotFound = errors.New("property not found")

type PropertyRepository struct {
	db DBTX
}

func NewPropertyRepository(db DBTX) *PropertyRepository {
	return &PropertyRepository{db: db}
}

func (r *PropertyRepository) FindByID(ctx context.Context, id uint64) (*entity.Property, error) {
	query := `
		SELECT propertyId, landlordId, title, district, city, municipality, ward,
			nearestLandmark, price, status
		FROM property
		WHERE propertyId = ?
	`

	property := &entity.Property{}
	var nearestLandmark sql.NullString
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&property.ID,
		&property.LandlordID,
		&property.Title,
		&property.District,
		&property.City,
		&property.Municipality,
		&property.Ward,
		&nearestLandmark,
		&property.Price,
		&property.Status,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	property.NearestLandmark = stringPtrFromNull(nearestLandmark)

	return property, nil
}

func (r *PropertyRepository) UpdateStatus(ctx context.Context, id uint64, status entity.PropertyStatus) error {
	result, err := r.db.ExecContext(ctx, "UPDATE property SET status = ? WHERE propertyId = ?", status, id)
	if err != nil {
		return err
	}
	return requireRow(result, func() (bool, error) {
		property, err := r.FindByID(ctx, id)
		return property != nil, err
	}, ErrPropertyNotFound)
}
