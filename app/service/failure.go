package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rentease/ms-go-rent-payments/app/entity"
	"github.com/rentease/ms-go-rent-payments/app/events"
	"github.com/rentease/ms-go-rent-payments/app/gateway"
)

type recordFailureRequest interface {
	GetPaymentId() string
}

// RecordFailure marks the payment behind reference as failed. It needs no
// gateway signature: a failure report can only move a pending payment to
// Failed and never touches a completed one.
func (s *PaymentService) RecordFailure(ctx context.Context, req recordFailureRequest) (*entity.Payment, error) {
	reference := strings.TrimSpace(req.GetPaymentId())
	if reference == "" {
		return nil, fmt.Errorf("%w: paymentId is required", ErrInvalidRequest)
	}

	paymentID, err := gateway.ResolveReference(reference)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidReference, reference)
	}

	payment, err := s.store.Payments().FindByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, ErrPaymentNotFound
	}

	applied, err := newLedger(s.store, s.now(), "failure_report").markFailed(ctx, payment, entity.PaymentEventFailed)
	if err != nil {
		return nil, err
	}

	if applied {
		s.logger.WithField("payment_id", payment.ID).Info("Payment marked as failed")
		s.publish(ctx, events.TypePaymentFailed, payment, nil, "")
	}

	return payment, nil
}
