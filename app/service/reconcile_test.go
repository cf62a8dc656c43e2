package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rentease/ms-go-rent-payments/app/entity"
	"github.com/rentease/ms-go-rent-payments/app/events"
)

func TestVerifyPaymentCompletesRental(t *testing.T) {
	env := newTestEnv()
	env.seedRental()

	initiated, err := env.svc.InitiatePayment(context.Background(), initiateReq{agreementID: 7, amount: "15000.00"})
	if err != nil {
		t.Fatalf("InitiatePayment() error = %v", err)
	}

	data := signedPayload(t, testSecret, callbackValues(*initiated.Payment.TransactionReference, "COMPLETE", "15000.0", "TXN-ABC"))
	result, err := env.svc.VerifyPayment(context.Background(), verifyReq(data))
	if err != nil {
		t.Fatalf("VerifyPayment() error = %v", err)
	}

	if result.AlreadyProcessed {
		t.Fatal("first callback must not be reported as already processed")
	}
	if result.TransactionCode != "TXN-ABC" || result.GatewayStatus != "COMPLETE" {
		t.Fatalf("unexpected result: %+v", result)
	}
	if result.BookingID == nil || *result.BookingID != 3 || result.PropertyID == nil || *result.PropertyID != 5 {
		t.Fatalf("unexpected booking/property in result: %+v", result)
	}
	if result.LandlordID == nil || *result.LandlordID != 21 || result.RenterID != 11 || result.AgreementID != 7 {
		t.Fatalf("unexpected parties in result: %+v", result)
	}
	if result.Address != "Lalitpur Metropolitan-3, Lalitpur, Lalitpur" {
		t.Fatalf("unexpected address: %q", result.Address)
	}

	payment := env.store.payment(1)
	if payment.Status != entity.PaymentStatusCompleted {
		t.Fatalf("expected completed payment, got %s", payment.Status)
	}
	if payment.TransactionID == nil || *payment.TransactionID != "TXN-ABC" || payment.ReferenceID == nil || *payment.ReferenceID != "TXN-ABC" {
		t.Fatalf("expected transaction code to be stored, got %+v", payment)
	}
	if env.store.state.bookings[3].Status != entity.BookingStatusAccepted {
		t.Fatalf("expected booking accepted, got %s", env.store.state.bookings[3].Status)
	}
	if env.store.state.properties[5].Status != entity.PropertyStatusRented {
		t.Fatalf("expected property rented, got %s", env.store.state.properties[5].Status)
	}

	if len(env.store.state.callbacks) != 1 || env.store.state.callbacks[0].Status != entity.PaymentCallbackProcessed {
		t.Fatalf("expected one processed callback record, got %+v", env.store.state.callbacks)
	}
	if len(env.publisher.messages) != 1 || env.publisher.messages[0].Type != events.TypePaymentCompleted {
		t.Fatalf("expected completed event to be published, got %+v", env.publisher.messages)
	}
	if env.publisher.messages[0].PropertyID == nil || *env.publisher.messages[0].PropertyID != 5 {
		t.Fatal("expected property id in published event")
	}
}

func TestVerifyPaymentIsIdempotent(t *testing.T) {
	env := newTestEnv()
	env.seedRental()
	env.seedPendingPayment(1, "1", time.Now().UTC())

	data := signedPayload(t, testSecret, callbackValues("1", "COMPLETE", "15000.0", "TXN-ABC"))
	if _, err := env.svc.VerifyPayment(context.Background(), verifyReq(data)); err != nil {
		t.Fatalf("first VerifyPayment() error = %v", err)
	}
	eventsAfterFirst := len(env.store.state.events)
	if env.store.bookingWrites != 1 || env.store.propertyWrites != 1 {
		t.Fatalf("expected one booking and one property write, got %d and %d", env.store.bookingWrites, env.store.propertyWrites)
	}
	env.store.paymentWrites, env.store.bookingWrites, env.store.propertyWrites = 0, 0, 0

	second, err := env.svc.VerifyPayment(context.Background(), verifyReq(data))
	if err != nil {
		t.Fatalf("second VerifyPayment() error = %v", err)
	}
	if !second.AlreadyProcessed {
		t.Fatal("expected second callback to be reported as already processed")
	}
	if second.TransactionCode != "TXN-ABC" || second.BookingID == nil || *second.BookingID != 3 {
		t.Fatalf("unexpected already processed result: %+v", second)
	}
	if !second.Payment.Amount.Equal(env.store.payment(1).Amount) {
		t.Fatal("expected stored amount in already processed result")
	}
	if len(env.store.state.events) != eventsAfterFirst {
		t.Fatal("duplicate callback must not write payment events")
	}
	if env.store.paymentWrites != 0 || env.store.bookingWrites != 0 || env.store.propertyWrites != 0 {
		t.Fatalf("duplicate callback wrote payment=%d booking=%d property=%d", env.store.paymentWrites, env.store.bookingWrites, env.store.propertyWrites)
	}
	if len(env.publisher.messages) != 1 {
		t.Fatalf("duplicate callback must not publish, got %d messages", len(env.publisher.messages))
	}
	if last := env.store.state.callbacks[len(env.store.state.callbacks)-1]; last.Status != entity.PaymentCallbackDuplicate {
		t.Fatalf("expected duplicate callback record, got %s", last.Status)
	}
}

func TestVerifyPaymentReplayKeepsStoredTransactionCode(t *testing.T) {
	env := newTestEnv()
	env.seedRental()
	env.seedPendingPayment(1, "1", time.Now().UTC())

	first := signedPayload(t, testSecret, callbackValues("1", "COMPLETE", "15000.0", "TXN-FIRST"))
	if _, err := env.svc.VerifyPayment(context.Background(), verifyReq(first)); err != nil {
		t.Fatalf("first VerifyPayment() error = %v", err)
	}

	replay := signedPayload(t, testSecret, callbackValues("1", "COMPLETE", "15000.0", "TXN-OTHER"))
	result, err := env.svc.VerifyPayment(context.Background(), verifyReq(replay))
	if err != nil {
		t.Fatalf("replayed VerifyPayment() error = %v", err)
	}
	if !result.AlreadyProcessed || result.TransactionCode != "TXN-FIRST" {
		t.Fatalf("expected already processed result with the first code, got %+v", result)
	}

	payment := env.store.payment(1)
	if *payment.TransactionID != "TXN-FIRST" || *payment.ReferenceID != "TXN-FIRST" {
		t.Fatalf("stored transaction code was overwritten: %+v", payment)
	}
	if len(env.store.eventsOf(entity.PaymentEventCompleted)) != 1 {
		t.Fatal("expected a single payment_completed event")
	}
}

func TestVerifyPaymentRollsBackOnDependentFailure(t *testing.T) {
	env := newTestEnv()
	env.seedRental()
	env.seedPendingPayment(1, "1", time.Now().UTC())
	env.store.failPropertyUpdate = errors.New("lock wait timeout exceeded")

	data := signedPayload(t, testSecret, callbackValues("1", "COMPLETE", "15000.0", "TXN-ABC"))
	_, err := env.svc.VerifyPayment(context.Background(), verifyReq(data))
	if err == nil {
		t.Fatal("expected error when property update fails")
	}
	if KindOf(err) != KindTransient {
		t.Fatalf("expected transient kind, got %s", KindOf(err))
	}

	if env.tx.rollbacks != 1 {
		t.Fatalf("expected one rollback, got %d", env.tx.rollbacks)
	}
	if status := env.store.payment(1).Status; status != entity.PaymentStatusPending {
		t.Fatalf("expected payment to stay pending, got %s", status)
	}
	if env.store.state.bookings[3].Status != entity.BookingStatusPending {
		t.Fatal("expected booking update to be rolled back")
	}
	if len(env.store.eventsOf(entity.PaymentEventCompleted)) != 0 {
		t.Fatal("expected completion event to be rolled back")
	}
	if len(env.publisher.messages) != 0 {
		t.Fatal("expected nothing to be published")
	}
}

func TestVerifyPaymentRejectsBadSignature(t *testing.T) {
	env := newTestEnv()
	env.seedRental()
	env.seedPendingPayment(1, "1", time.Now().UTC())

	data := signedPayload(t, "not-the-merchant-secret", callbackValues("1", "COMPLETE", "15000.0", "TXN-ABC"))
	_, err := env.svc.VerifyPayment(context.Background(), verifyReq(data))
	if !errors.Is(err, ErrVerificationFailed) {
		t.Fatalf("expected ErrVerificationFailed, got %v", err)
	}
	if KindOf(err) != KindVerification {
		t.Fatalf("expected verification kind, got %s", KindOf(err))
	}
	if env.tx.calls != 0 {
		t.Fatal("rejected callbacks must not open a transaction")
	}
	if env.store.payment(1).Status != entity.PaymentStatusPending {
		t.Fatal("expected payment to stay pending")
	}
	if env.store.paymentWrites != 0 || env.store.bookingWrites != 0 || env.store.propertyWrites != 0 || len(env.store.state.events) != 0 {
		t.Fatal("rejected callbacks must only leave an audit record")
	}
	if len(env.store.state.callbacks) != 1 || env.store.state.callbacks[0].Status != entity.PaymentCallbackRejected {
		t.Fatalf("expected rejected callback record, got %+v", env.store.state.callbacks)
	}
}

func TestVerifyPaymentInputErrors(t *testing.T) {
	env := newTestEnv()

	if _, err := env.svc.VerifyPayment(context.Background(), verifyReq("  ")); !errors.Is(err, ErrMissingData) {
		t.Fatalf("expected ErrMissingData, got %v", err)
	}
	if _, err := env.svc.VerifyPayment(context.Background(), verifyReq("not-base64!")); !errors.Is(err, ErrMalformedPayload) {
		t.Fatalf("expected ErrMalformedPayload, got %v", err)
	}

	data := signedPayload(t, testSecret, callbackValues("abc-123", "COMPLETE", "10", "TXN-1"))
	if _, err := env.svc.VerifyPayment(context.Background(), verifyReq(data)); !errors.Is(err, ErrInvalidReference) {
		t.Fatalf("expected ErrInvalidReference, got %v", err)
	}

	if env.tx.calls != 0 {
		t.Fatal("input errors must not open a transaction")
	}
}

func TestVerifyPaymentRequiresCompleteStatus(t *testing.T) {
	env := newTestEnv()
	env.seedRental()
	env.seedPendingPayment(1, "1", time.Now().UTC())

	data := signedPayload(t, testSecret, callbackValues("1", "PENDING", "15000.0", "TXN-ABC"))
	_, err := env.svc.VerifyPayment(context.Background(), verifyReq(data))
	if !errors.Is(err, ErrGatewayNotComplete) {
		t.Fatalf("expected ErrGatewayNotComplete, got %v", err)
	}
	if env.store.payment(1).Status != entity.PaymentStatusPending {
		t.Fatal("expected payment to stay pending")
	}
}

func TestVerifyPaymentAmountMismatch(t *testing.T) {
	env := newTestEnv()
	env.seedRental()
	env.seedPendingPayment(1, "1", time.Now().UTC())

	data := signedPayload(t, testSecret, callbackValues("1", "COMPLETE", "10.0", "TXN-ABC"))
	_, err := env.svc.VerifyPayment(context.Background(), verifyReq(data))
	if !errors.Is(err, ErrAmountMismatch) {
		t.Fatalf("expected ErrAmountMismatch, got %v", err)
	}
	if KindOf(err) != KindConflict {
		t.Fatalf("expected conflict kind, got %s", KindOf(err))
	}
	if env.store.payment(1).Status != entity.PaymentStatusPending {
		t.Fatal("expected payment to stay pending")
	}
}

func TestVerifyPaymentAcceptsThousandsSeparator(t *testing.T) {
	env := newTestEnv()
	env.seedRental()
	env.seedPendingPayment(1, "1-1699999999", time.Now().UTC())

	data := signedPayload(t, testSecret, callbackValues("1-1699999999", "COMPLETE", "15,000.0", "TXN-ABC"))
	if _, err := env.svc.VerifyPayment(context.Background(), verifyReq(data)); err != nil {
		t.Fatalf("VerifyPayment() error = %v", err)
	}
	if env.store.payment(1).Status != entity.PaymentStatusCompleted {
		t.Fatal("expected completed payment")
	}
}

func TestVerifyPaymentUnknownPayment(t *testing.T) {
	env := newTestEnv()

	data := signedPayload(t, testSecret, callbackValues("42", "COMPLETE", "100", "TXN-ABC"))
	_, err := env.svc.VerifyPayment(context.Background(), verifyReq(data))
	if !errors.Is(err, ErrPaymentNotFound) {
		t.Fatalf("expected ErrPaymentNotFound, got %v", err)
	}
	if last := env.store.state.callbacks[len(env.store.state.callbacks)-1]; last.PaymentID != nil || last.Status != entity.PaymentCallbackRejected {
		t.Fatalf("unexpected callback record: %+v", last)
	}
}

func TestVerifyPaymentOnFailedPayment(t *testing.T) {
	env := newTestEnv()
	env.seedRental()
	env.seedPendingPayment(1, "1", time.Now().UTC())
	env.store.state.payments[1].Status = entity.PaymentStatusFailed

	data := signedPayload(t, testSecret, callbackValues("1", "COMPLETE", "15000.0", "TXN-ABC"))
	_, err := env.svc.VerifyPayment(context.Background(), verifyReq(data))
	if !errors.Is(err, ErrPaymentAlreadyFailed) {
		t.Fatalf("expected ErrPaymentAlreadyFailed, got %v", err)
	}
	if env.store.payment(1).Status != entity.PaymentStatusFailed {
		t.Fatal("expected payment to stay failed")
	}
}

func TestVerifyPaymentSkipsMissingBooking(t *testing.T) {
	env := newTestEnv()
	env.seedRental()
	delete(env.store.state.bookings, 3)
	env.seedPendingPayment(1, "1", time.Now().UTC())

	data := signedPayload(t, testSecret, callbackValues("1", "COMPLETE", "15000.0", "TXN-ABC"))
	result, err := env.svc.VerifyPayment(context.Background(), verifyReq(data))
	if err != nil {
		t.Fatalf("VerifyPayment() error = %v", err)
	}
	if result.PropertyID != nil {
		t.Fatal("expected no property when booking is missing")
	}
	if env.store.payment(1).Status != entity.PaymentStatusCompleted {
		t.Fatal("expected payment to be completed")
	}
	if env.store.state.properties[5].Status != entity.PropertyStatusAvailable {
		t.Fatal("expected property to be left alone")
	}
}

func TestVerifyPaymentPrefersPaymentBooking(t *testing.T) {
	env := newTestEnv()
	env.seedRental()
	env.store.state.bookings[8] = &entity.Booking{ID: 8, UserID: 11, PropertyID: 5, Status: entity.BookingStatusPending}
	env.seedPendingPayment(1, "1", time.Now().UTC())
	bookingID := uint64(8)
	env.store.state.payments[1].BookingID = &bookingID

	data := signedPayload(t, testSecret, callbackValues("1", "COMPLETE", "15000.0", "TXN-ABC"))
	result, err := env.svc.VerifyPayment(context.Background(), verifyReq(data))
	if err != nil {
		t.Fatalf("VerifyPayment() error = %v", err)
	}
	if *result.BookingID != 8 {
		t.Fatalf("expected payment booking to win, got %d", *result.BookingID)
	}
	if env.store.state.bookings[8].Status != entity.BookingStatusAccepted {
		t.Fatal("expected payment booking to be accepted")
	}
	if env.store.state.bookings[3].Status != entity.BookingStatusPending {
		t.Fatal("expected agreement booking to be left alone")
	}
}

func TestVerifyPaymentWithoutAgreement(t *testing.T) {
	env := newTestEnv()
	env.seedPendingPayment(1, "1", time.Now().UTC())

	data := signedPayload(t, testSecret, callbackValues("1", "COMPLETE", "15000.0", "TXN-ABC"))
	result, err := env.svc.VerifyPayment(context.Background(), verifyReq(data))
	if err != nil {
		t.Fatalf("VerifyPayment() error = %v", err)
	}
	if result.LandlordID != nil || result.PropertyID != nil {
		t.Fatalf("expected no cross entity data, got %+v", result)
	}
	if env.store.payment(1).Status != entity.PaymentStatusCompleted {
		t.Fatal("expected payment to be completed")
	}
}
