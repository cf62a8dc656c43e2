package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/rentease/ms-go-rent-payments/app/entity"
)

type PaymentStore interface {
	Create(ctx context.Context, payment *entity.Payment) error
	Update(ctx context.Context, payment *entity.Payment) error
	FindByID(ctx context.Context, id uint64) (*entity.Payment, error)
	FindByIDForUpdate(ctx context.Context, id uint64) (*entity.Payment, error)
	TransitionStatus(ctx context.Context, id uint64, from, to entity.PaymentStatus) (bool, error)
	List(ctx context.Context, filter PaymentFilter) ([]*entity.Payment, error)
	ListForReconcile(ctx context.Context, before time.Time, limit int32) ([]*entity.Payment, error)
	ListExpiredPending(ctx context.Context, cutoff time.Time, limit int32) ([]*entity.Payment, error)
}

type AgreementStore interface {
	FindByID(ctx context.Context, id uint64) (*entity.Agreement, error)
}

type BookingStore interface {
	FindByID(ctx context.Context, id uint64) (*entity.Booking, error)
	UpdateStatus(ctx context.Context, id uint64, status entity.BookingStatus) error
}

type PropertyStore interface {
	FindByID(ctx context.Context, id uint64) (*entity.Property, error)
	UpdateStatus(ctx context.Context, id uint64, status entity.PropertyStatus) error
}

type PaymentEventStore interface {
	Create(ctx context.Context, event *entity.PaymentEvent) error
}

type PaymentCallbackStore interface {
	Create(ctx context.Context, callback *entity.PaymentCallback) error
}

// Store groups the repositories bound to one connection or transaction.
type Store interface {
	Payments() PaymentStore
	Agreements() AgreementStore
	Bookings() BookingStore
	Properties() PropertyStore
	PaymentEvents() PaymentEventStore
	PaymentCallbacks() PaymentCallbackStore
}

// TxManager runs fn inside one unit of work. The Store handed to fn is bound
// to the transaction; returning an error or panicking rolls everything back.
type TxManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context, store Store) error) error
}

type SQLStore struct {
	payments   *PaymentRepository
	agreements *AgreementRepository
	bookings   *BookingRepository
	properties *PropertyRepository
	events     *PaymentEventRepository
	callbacks  *PaymentCallbackRepository
}

func NewSQLStore(db DBTX) *SQLStore {
	return &SQLStore{
		payments:   NewPaymentRepository(db),
		agreements: NewAgreementRepository(db),
		bookings:   NewBookingRepository(db),
		properties: NewPropertyRepository(db),
		events:     NewPaymentEventRepository(db),
		callbacks:  NewPaymentCallbackRepository(db),
	}
}

func (s *SQLStore) Payments() PaymentStore                 { return s.payments }
func (s *SQLStore) Agreements() AgreementStore             { return s.agreements }
func (s *SQLStore) Bookings() BookingStore                 { return s.bookings }
func (s *SQLStore) Properties() PropertyStore              { return s.properties }
func (s *SQLStore) PaymentEvents() PaymentEventStore       { return s.events }
func (s *SQLStore) PaymentCallbacks() PaymentCallbackStore { return s.callbacks }

type SQLTxManager struct {
	db *sql.DB
}

func NewSQLTxManager(db *sql.DB) *SQLTxManager {
	return &SQLTxManager{db: db}
}

func (m *SQLTxManager) RunInTx(ctx context.Context, fn func(ctx context.Context, store Store) error) (err error) {
	tx, err := m.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return err
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		} else if err != nil {
			_ = tx.Rollback()
		}
	}()

	if err = fn(ctx, NewSQLStore(tx)); err != nil {
		return err
	}

	return tx.Commit()
}
