package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/rentease/ms-go-rent-payments/app/entity"
)

var (
	ErrPaymentNotFound      = errors.New("payment not found")
	ErrPaymentAlreadyExists = errors.New("payment already exists")
)

const paymentColumns = `
	paymentId, agreementId, renterId, bookingId, amount, paymentStatus, PaymentGateway,
	transactionUuid, TransactionId, ReferenceId, paymentDate
`

type PaymentFilter struct {
	AgreementID uint64
	RenterID    uint64
	Status      entity.PaymentStatus
	Limit       int32
	Offset      int32
}

type PaymentRepository struct {
	db DBTX
}

func NewPaymentRepository(db DBTX) *PaymentRepository {
	return &PaymentRepository{db: db}
}

func (r *PaymentRepository) Create(ctx context.Context, payment *entity.Payment) error {
	query := `
		INSERT INTO payment (
			agreementId, renterId, bookingId, amount, paymentStatus, PaymentGateway,
			transactionUuid, TransactionId, ReferenceId, paymentDate
		)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		payment.AgreementID,
		payment.RenterID,
		nullableUint64Value(payment.BookingID),
		payment.Amount,
		payment.Status,
		payment.Gateway,
		nullableStringValue(payment.TransactionReference),
		nullableStringValue(payment.TransactionID),
		nullableStringValue(payment.ReferenceID),
		payment.PaymentDate,
	)
	if err != nil {
		if isDuplicateEntryError(err) {
			return ErrPaymentAlreadyExists
		}
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	payment.ID = uint64(id)
	return nil
}

func (r *PaymentRepository) Update(ctx context.Context, payment *entity.Payment) error {
	query := `
		UPDATE payment SET
			bookingId = ?,
			amount = ?,
			paymentStatus = ?,
			PaymentGateway = ?,
			transactionUuid = ?,
			TransactionId = ?,
			ReferenceId = ?,
			paymentDate = ?
		WHERE paymentId = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		nullableUint64Value(payment.BookingID),
		payment.Amount,
		payment.Status,
		payment.Gateway,
		nullableStringValue(payment.TransactionReference),
		nullableStringValue(payment.TransactionID),
		nullableStringValue(payment.ReferenceID),
		payment.PaymentDate,
		payment.ID,
	)
	if err != nil {
		return err
	}

	return requireRow(result, func() (bool, error) {
		existing, err := r.FindByID(ctx, payment.ID)
		return existing != nil, err
	}, ErrPaymentNotFound)
}

func (r *PaymentRepository) FindByID(ctx context.Context, id uint64) (*entity.Payment, error) {
	return r.findOne(ctx, "SELECT "+paymentColumns+" FROM payment WHERE paymentId = ?", id)
}

// FindByIDForUpdate locks the row until the surrounding transaction ends.
func (r *PaymentRepository) FindByIDForUpdate(ctx context.Context, id uint64) (*entity.Payment, error) {
	return r.findOne(ctx, "SELECT "+paymentColumns+" FROM payment WHERE paymentId = ? FOR UPDATE", id)
}

// TransitionStatus moves the payment from one status to another only if it is
// still in the expected one. It reports whether a row changed.
func (r *PaymentRepository) TransitionStatus(ctx context.Context, id uint64, from, to entity.PaymentStatus) (bool, error) {
	result, err := r.db.ExecContext(ctx,
		"UPDATE payment SET paymentStatus = ? WHERE paymentId = ? AND paymentStatus = ?",
		to, id, from,
	)
	if err != nil {
		return false, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (r *PaymentRepository) List(ctx context.Context, filter PaymentFilter) ([]*entity.Payment, error) {
	query := "SELECT " + paymentColumns + " FROM payment"

	conditions := make([]string, 0, 3)
	args := make([]interface{}, 0, 5)

	if filter.AgreementID > 0 {
		conditions = append(conditions, "agreementId = ?")
		args = append(args, filter.AgreementID)
	}
	if filter.RenterID > 0 {
		conditions = append(conditions, "renterId = ?")
		args = append(args, filter.RenterID)
	}
	if strings.TrimSpace(string(filter.Status)) != "" {
		conditions = append(conditions, "paymentStatus = ?")
		args = append(args, filter.Status)
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	query += " ORDER BY paymentId DESC LIMIT ? OFFSET ?"
	args = append(args, filter.Limit, filter.Offset)

	return r.findMany(ctx, query, args...)
}

// ListForReconcile returns pending payments handed to the gateway before the given time.
func (r *PaymentRepository) ListForReconcile(ctx context.Context, before time.Time, limit int32) ([]*entity.Payment, error) {
	query := "SELECT " + paymentColumns + ` FROM payment
		WHERE paymentStatus = ?
		  AND transactionUuid IS NOT NULL
		  AND paymentDate <= ?
		ORDER BY paymentDate ASC
		LIMIT ?`

	return r.findMany(ctx, query, entity.PaymentStatusPending, before, limit)
}

func (r *PaymentRepository) ListExpiredPending(ctx context.Context, cutoff time.Time, limit int32) ([]*entity.Payment, error) {
	query := "SELECT " + paymentColumns + ` FROM payment
		WHERE paymentStatus = ?
		  AND paymentDate <= ?
		ORDER BY paymentDate ASC
		LIMIT ?`

	return r.findMany(ctx, query, entity.PaymentStatusPending, cutoff, limit)
}

func (r *PaymentRepository) findOne(ctx context.Context, query string, args ...interface{}) (*entity.Payment, error) {
	payment := &entity.Payment{}
	if err := scanPayment(r.db.QueryRowContext(ctx, query, args...), payment); err == sql.ErrNoRows {
		return nil, nil
	} else if err != nil {
		return nil, err
	}

	return payment, nil
}

func (r *PaymentRepository) findMany(ctx context.Context, query string, args ...interface{}) ([]*entity.Payment, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	payments := make([]*entity.Payment, 0)
	for rows.Next() {
		item := &entity.Payment{}
		if err := scanPayment(rows, item); err != nil {
			return nil, err
		}
		payments = append(payments, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return payments, nil
}

func scanPayment(scan rowScanner, payment *entity.Payment) error {
	var bookingID sql.NullInt64
	var transactionReference sql.NullString
	var transactionID sql.NullString
	var referenceID sql.NullString

	err := scan.Scan(
		&payment.ID,
		&payment.AgreementID,
		&payment.RenterID,
		&bookingID,
		&payment.Amount,
		&payment.Status,
		&payment.Gateway,
		&transactionReference,
		&transactionID,
		&referenceID,
		&payment.PaymentDate,
	)
	if err != nil {
		return err
	}

	payment.BookingID = uint64PtrFromNull(bookingID)
	payment.TransactionReference = stringPtrFromNull(transactionReference)
	payment.TransactionID = stringPtrFromNull(transactionID)
	payment.ReferenceID = stringPtrFromNull(referenceID)

	return nil
}
