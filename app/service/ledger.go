package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rentease/ms-go-rent-payments/app/entity"
	"github.com/rentease/ms-go-rent-payments/app/metrics"
	"github.com/rentease/ms-go-rent-payments/app/repository"
)

// ledger applies payment status transitions through one store, so they join
// whatever transaction that store is bound to.
type ledger struct {
	store  repository.Store
	now    time.Time
	source string
}

func newLedger(store repository.Store, now time.Time, source string) *ledger {
	return &ledger{store: store, now: now, source: source}
}

// markCompleted reports applied=false when the payment was already completed.
func (l *ledger) markCompleted(ctx context.Context, payment *entity.Payment, transactionCode string) (bool, error) {
	switch payment.Status {
	case entity.PaymentStatusCompleted:
		return false, nil
	case entity.PaymentStatusFailed:
		return false, ErrPaymentAlreadyFailed
	case entity.PaymentStatusPending:
	default:
		return false, fmt.Errorf("payment %d has unknown status %q", payment.ID, payment.Status)
	}

	oldStatus := payment.Status
	transactionID := transactionCode
	referenceID := transactionCode
	payment.Status = entity.PaymentStatusCompleted
	payment.TransactionID = &transactionID
	payment.ReferenceID = &referenceID

	if err := l.store.Payments().Update(ctx, payment); err != nil {
		payment.Status = oldStatus
		if errors.Is(err, repository.ErrPaymentNotFound) {
			return false, ErrPaymentNotFound
		}
		return false, err
	}

	code := transactionCode
	_ = l.store.PaymentEvents().Create(ctx, &entity.PaymentEvent{
		PaymentID:       payment.ID,
		EventType:       entity.PaymentEventCompleted,
		OldStatus:       &oldStatus,
		NewStatus:       payment.Status,
		TransactionCode: &code,
		CreatedAt:       l.now,
	})
	metrics.IncTransition(string(payment.Status), l.source)

	return true, nil
}

// markFailed never overwrites a completed payment. A failed payment is left as is.
func (l *ledger) markFailed(ctx context.Context, payment *entity.Payment, eventType string) (bool, error) {
	switch payment.Status {
	case entity.PaymentStatusFailed:
		return false, nil
	case entity.PaymentStatusCompleted:
		return false, ErrPaymentAlreadyCompleted
	case entity.PaymentStatusPending:
	default:
		return false, fmt.Errorf("payment %d has unknown status %q", payment.ID, payment.Status)
	}

	changed, err := l.store.Payments().TransitionStatus(ctx, payment.ID, entity.PaymentStatusPending, entity.PaymentStatusFailed)
	if err != nil {
		return false, err
	}
	if !changed {
		// lost a race; report what the row holds now
		current, err := l.store.Payments().FindByID(ctx, payment.ID)
		if err != nil {
			return false, err
		}
		if current == nil {
			return false, ErrPaymentNotFound
		}
		*payment = *current
		if current.Status == entity.PaymentStatusCompleted {
			return false, ErrPaymentAlreadyCompleted
		}
		return false, nil
	}

	oldStatus := payment.Status
	payment.Status = entity.PaymentStatusFailed
	_ = l.store.PaymentEvents().Create(ctx, &entity.PaymentEvent{
		PaymentID: payment.ID,
		EventType: eventType,
		OldStatus: &oldStatus,
		NewStatus: payment.Status,
		CreatedAt: l.now,
	})
	metrics.IncTransition(string(payment.Status), l.source)

	return true, nil
}
