package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rentease/ms-go-rent-payments/app/entity"
	"github.com/rentease/ms-go-rent-payments/app/events"
	"github.com/rentease/ms-go-rent-payments/app/gateway"
	"github.com/rentease/ms-go-rent-payments/app/metrics"
	"github.com/rentease/ms-go-rent-payments/app/repository"
)

// errAlreadyProcessed unwinds the unit of work without changes.
var errAlreadyProcessed = errors.New("payment already processed")

type verifyPaymentRequest interface {
	GetData() string
}

type VerificationResult struct {
	AlreadyProcessed bool
	Payment          *entity.Payment
	TransactionCode  string
	GatewayStatus    string
	AgreementID      uint64
	RenterID         uint64
	LandlordID       *uint64
	BookingID        *uint64
	PropertyID       *uint64
	PropertyTitle    string
	Address          string
}

type completion struct {
	paymentID       uint64
	transactionCode string
	gatewayStatus   string
	totalAmount     string
	source          string
}

// VerifyPayment authenticates a gateway callback and, when it carries new
// information, completes the payment and its booking and property as one unit.
func (s *PaymentService) VerifyPayment(ctx context.Context, req verifyPaymentRequest) (*VerificationResult, error) {
	started := time.Now()

	data := strings.TrimSpace(req.GetData())
	if data == "" {
		metrics.IncCallback(metrics.CallbackRejected)
		return nil, ErrMissingData
	}

	esewa, err := s.esewa()
	if err != nil {
		return nil, err
	}

	decoded, err := esewa.DecodeCallback(data)
	if err != nil {
		s.rejectCallback(ctx, esewa.Code(), nil, data, "", "", err)
		return nil, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}

	if err := esewa.VerifyCallback(decoded); err != nil {
		s.rejectCallback(ctx, esewa.Code(), nil, string(decoded.Raw), decoded.TransactionReference, decoded.Signature, err)
		return nil, fmt.Errorf("%w: %v", ErrVerificationFailed, err)
	}

	if decoded.Status != gateway.StatusComplete {
		s.rejectCallback(ctx, esewa.Code(), nil, string(decoded.Raw), decoded.TransactionReference, decoded.Signature, ErrGatewayNotComplete)
		return nil, fmt.Errorf("%w: status %s", ErrGatewayNotComplete, decoded.Status)
	}

	paymentID, err := gateway.ResolveReference(decoded.TransactionReference)
	if err != nil {
		s.rejectCallback(ctx, esewa.Code(), nil, string(decoded.Raw), decoded.TransactionReference, decoded.Signature, err)
		return nil, fmt.Errorf("%w: %q", ErrInvalidReference, decoded.TransactionReference)
	}

	result, err := s.completePayment(ctx, completion{
		paymentID:       paymentID,
		transactionCode: decoded.TransactionCode,
		gatewayStatus:   decoded.Status,
		totalAmount:     decoded.TotalAmount,
		source:          "callback",
	})

	callback := &entity.PaymentCallback{
		PaymentID:            &paymentID,
		Gateway:              esewa.Code(),
		TransactionReference: decoded.TransactionReference,
		Signature:            decoded.Signature,
		PayloadJSON:          string(decoded.Raw),
		CreatedAt:            s.now(),
	}

	switch {
	case err != nil:
		callback.Status = entity.PaymentCallbackRejected
		reason := truncate(err.Error(), 1024)
		callback.Error = &reason
		if errors.Is(err, ErrPaymentNotFound) {
			callback.PaymentID = nil
		}
		_ = s.store.PaymentCallbacks().Create(ctx, callback)
		metrics.IncCallback(metrics.CallbackFailed)
		metrics.ObserveReconcile(metrics.CallbackFailed, started)
		return nil, err
	case result.AlreadyProcessed:
		callback.Status = entity.PaymentCallbackDuplicate
		_ = s.store.PaymentCallbacks().Create(ctx, callback)
		metrics.IncCallback(metrics.CallbackAlreadyProcessed)
		metrics.ObserveReconcile(metrics.CallbackAlreadyProcessed, started)
		return result, nil
	}

	callback.Status = entity.PaymentCallbackProcessed
	_ = s.store.PaymentCallbacks().Create(ctx, callback)
	metrics.IncCallback(metrics.CallbackCompleted)
	metrics.ObserveReconcile(metrics.CallbackCompleted, started)

	s.publish(ctx, events.TypePaymentCompleted, result.Payment, result.PropertyID, result.TransactionCode)

	return result, nil
}

// completePayment runs the transactional part of reconciliation: lock the
// payment, complete it and move its booking and property forward. Any error
// rolls the whole unit back.
func (s *PaymentService) completePayment(ctx context.Context, in completion) (*VerificationResult, error) {
	now := s.now()
	var result *VerificationResult

	err := s.txManager.RunInTx(ctx, func(ctx context.Context, store repository.Store) error {
		payment, err := store.Payments().FindByIDForUpdate(ctx, in.paymentID)
		if err != nil {
			return err
		}
		if payment == nil {
			return fmt.Errorf("%w: id %d", ErrPaymentNotFound, in.paymentID)
		}

		if payment.Status == entity.PaymentStatusCompleted {
			result = &VerificationResult{
				AlreadyProcessed: true,
				Payment:          payment,
				TransactionCode:  derefString(payment.TransactionID),
				GatewayStatus:    in.gatewayStatus,
				AgreementID:      payment.AgreementID,
				RenterID:         payment.RenterID,
				BookingID:        payment.BookingID,
			}
			return errAlreadyProcessed
		}

		if in.totalAmount != "" {
			paid, err := gateway.ParseAmount(in.totalAmount)
			if err != nil || !paid.Equal(payment.Amount) {
				return fmt.Errorf("%w: paid %q, expected %s", ErrAmountMismatch, in.totalAmount, payment.Amount.StringFixed(2))
			}
		}

		if _, err := newLedger(store, now, in.source).markCompleted(ctx, payment, in.transactionCode); err != nil {
			return err
		}

		result = &VerificationResult{
			Payment:         payment,
			TransactionCode: in.transactionCode,
			GatewayStatus:   in.gatewayStatus,
			AgreementID:     payment.AgreementID,
			RenterID:        payment.RenterID,
		}

		return s.applyRentalEffects(ctx, store, payment, result)
	})
	if errors.Is(err, errAlreadyProcessed) {
		return result, nil
	}
	if err != nil {
		return nil, err
	}

	s.logger.WithField("payment_id", result.Payment.ID).
		WithField("booking_id", derefUint64(result.BookingID)).
		WithField("property_id", derefUint64(result.PropertyID)).
		WithField("source", in.source).
		Info("Payment completed")

	return result, nil
}

// applyRentalEffects accepts the booking and rents out the property tied to a
// completed payment. Missing records are logged and skipped.
func (s *PaymentService) applyRentalEffects(ctx context.Context, store repository.Store, payment *entity.Payment, result *VerificationResult) error {
	logger := s.logger.WithField("payment_id", payment.ID)

	agreement, err := store.Agreements().FindByID(ctx, payment.AgreementID)
	if err != nil {
		return err
	}
	if agreement == nil {
		logger.WithField("agreement_id", payment.AgreementID).Warn("Agreement not found for completed payment, skipping booking and property updates")
		return nil
	}
	landlordID := agreement.LandlordID
	result.LandlordID = &landlordID

	bookingID := s.effectiveBookingID(payment, agreement)
	if bookingID == 0 {
		logger.WithField("agreement_id", agreement.ID).Warn("No booking linked to completed payment")
		return nil
	}
	result.BookingID = &bookingID

	booking, err := store.Bookings().FindByID(ctx, bookingID)
	if err != nil {
		return err
	}
	if booking == nil {
		logger.WithField("booking_id", bookingID).Warn("Booking not found for completed payment, skipping booking and property updates")
		return nil
	}

	if booking.Status != entity.BookingStatusAccepted {
		if err := store.Bookings().UpdateStatus(ctx, booking.ID, entity.BookingStatusAccepted); err != nil {
			return err
		}
	}

	propertyID := booking.PropertyID
	result.PropertyID = &propertyID

	property, err := store.Properties().FindByID(ctx, propertyID)
	if err != nil {
		return err
	}
	if property == nil {
		logger.WithField("property_id", propertyID).Warn("Property not found for completed payment, skipping property update")
		return nil
	}

	if property.Status != entity.PropertyStatusRented {
		if err := store.Properties().UpdateStatus(ctx, property.ID, entity.PropertyStatusRented); err != nil {
			return err
		}
	}
	result.PropertyTitle = property.Title
	result.Address = property.Address()
	if result.LandlordID == nil || *result.LandlordID == 0 {
		landlordID := property.LandlordID
		result.LandlordID = &landlordID
	}

	return nil
}

// effectiveBookingID prefers the booking recorded on the payment.
func (s *PaymentService) effectiveBookingID(payment *entity.Payment, agreement *entity.Agreement) uint64 {
	if payment.BookingID == nil || *payment.BookingID == 0 {
		return agreement.BookingID
	}
	if agreement.BookingID != 0 && agreement.BookingID != *payment.BookingID {
		s.logger.WithField("payment_id", payment.ID).
			WithField("payment_booking_id", *payment.BookingID).
			WithField("agreement_booking_id", agreement.BookingID).
			Warn("Payment and agreement reference different bookings, using the payment booking")
	}
	return *payment.BookingID
}

func (s *PaymentService) rejectCallback(
	ctx context.Context,
	gatewayCode entity.Gateway,
	paymentID *uint64,
	payload string,
	reference string,
	signature string,
	reason error,
) {
	metrics.IncCallback(metrics.CallbackRejected)

	message := "callback rejected"
	if reason != nil {
		message = truncate(reason.Error(), 1024)
	}
	s.logger.WithField("transaction_reference", reference).WithField("reason", message).Warn("Gateway callback rejected")

	_ = s.store.PaymentCallbacks().Create(ctx, &entity.PaymentCallback{
		PaymentID:            paymentID,
		Gateway:              gatewayCode,
		TransactionReference: truncate(reference, 255),
		Signature:            truncate(signature, 255),
		PayloadJSON:          payload,
		Status:               entity.PaymentCallbackRejected,
		Error:                &message,
		CreatedAt:            s.now(),
	})
}

func derefString(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

func derefUint64(v *uint64) uint64 {
	if v == nil {
		return 0
	}
	return *v
}
