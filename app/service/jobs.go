package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rentease/ms-go-rent-payments/app/entity"
	"github.com/rentease/ms-go-rent-payments/app/events"
	"github.com/rentease/ms-go-rent-payments/app/gateway"
)

const defaultPendingTimeout = time.Hour

// settlement describes how a batch job fails a payment the gateway has no
// record of.
type settlement struct {
	source     string
	eventType  string
	notifyType string
}

var (
	reconcileSettlement = settlement{source: "reconcile", eventType: entity.PaymentEventFailed, notifyType: events.TypePaymentFailed}
	expirySettlement    = settlement{source: "expiry", eventType: entity.PaymentEventExpired, notifyType: events.TypePaymentExpired}
)

// RunReconcileBatch asks the gateway about stale pending payments and settles
// the ones it reports as complete or unknown.
func (s *PaymentService) RunReconcileBatch(ctx context.Context) error {
	now := s.now()
	before := now.Add(-s.paymentsCfg.ReconcileStaleAfter)
	items, err := s.store.Payments().ListForReconcile(ctx, before, s.batchSize())
	if err != nil {
		return err
	}

	var firstErr error
	for _, payment := range items {
		if payment == nil || payment.TransactionReference == nil || strings.TrimSpace(*payment.TransactionReference) == "" {
			continue
		}
		firstErr = keepFirstErr(firstErr, s.settleWithGateway(ctx, payment, now, reconcileSettlement))
	}

	return firstErr
}

// RunExpirePendingBatch settles payments that stayed pending past the timeout.
// The gateway is asked first: a late payment is completed, an unknown or
// canceled one expires, and anything else is left for the next run.
func (s *PaymentService) RunExpirePendingBatch(ctx context.Context) error {
	now := s.now()
	timeout := s.paymentsCfg.PendingTimeout
	if timeout <= 0 {
		timeout = defaultPendingTimeout
	}

	items, err := s.store.Payments().ListExpiredPending(ctx, now.Add(-timeout), s.batchSize())
	if err != nil {
		return err
	}

	var firstErr error
	for _, payment := range items {
		if payment == nil || payment.Status != entity.PaymentStatusPending {
			continue
		}

		// Without a reference the gateway never saw the payment.
		if payment.TransactionReference == nil || strings.TrimSpace(*payment.TransactionReference) == "" {
			firstErr = keepFirstErr(firstErr, s.failPending(ctx, payment, now, expirySettlement))
			continue
		}
		firstErr = keepFirstErr(firstErr, s.settleWithGateway(ctx, payment, now, expirySettlement))
	}

	return firstErr
}

// settleWithGateway applies the gateway's view of a pending payment. Lookup
// errors leave the payment pending and are returned so the job reports them.
func (s *PaymentService) settleWithGateway(ctx context.Context, payment *entity.Payment, now time.Time, how settlement) error {
	logger := s.logger.WithField("payment_id", payment.ID).WithField("source", how.source)

	gatewayClient, err := s.gateways.Get(payment.Gateway)
	if err != nil {
		logger.WithField("gateway", payment.Gateway).Debug("Skipping payment of unsupported gateway")
		return nil
	}

	reference := strings.TrimSpace(*payment.TransactionReference)
	status, err := gatewayClient.GetTransactionStatus(ctx, reference, payment.Amount)
	if err != nil {
		logger.WithError(err).Warn("Gateway status lookup failed, payment left pending")
		return err
	}
	if status == nil {
		return nil
	}

	switch status.Status {
	case gateway.StatusComplete:
		code := status.RefID
		if code == "" {
			code = reference
		}
		result, err := s.completePayment(ctx, completion{
			paymentID:       payment.ID,
			transactionCode: code,
			gatewayStatus:   status.Status,
			source:          how.source,
		})
		if err != nil {
			return err
		}
		if !result.AlreadyProcessed {
			s.publish(ctx, events.TypePaymentCompleted, result.Payment, result.PropertyID, result.TransactionCode)
		}
	case gateway.StatusNotFound, gateway.StatusCanceled:
		return s.failPending(ctx, payment, now, how)
	default:
		logger.WithField("gateway_status", status.Status).Debug("Gateway has no final answer yet, payment left pending")
	}

	return nil
}

func (s *PaymentService) failPending(ctx context.Context, payment *entity.Payment, now time.Time, how settlement) error {
	applied, err := newLedger(s.store, now, how.source).markFailed(ctx, payment, how.eventType)
	if err != nil {
		if errors.Is(err, ErrPaymentAlreadyCompleted) {
			return nil
		}
		return err
	}
	if applied {
		s.publish(ctx, how.notifyType, payment, nil, "")
	}
	return nil
}

func keepFirstErr(current error, candidate error) error {
	if current != nil {
		return current
	}
	return candidate
}
