package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/rentease/ms-go-rent-payments/app/entity"
	"github.com/rentease/ms-go-rent-payments/app/gateway"
	"github.com/rentease/ms-go-rent-payments/app/repository"
	"github.com/shopspring/decimal"
)

var referenceSuffixPattern = regexp.MustCompile(`^[A-Za-z0-9_]{1,40}$`)

type initiatePaymentRequest interface {
	GetAgreementId() uint64
	GetAmount() string
	GetUniqueSuffix() string
	GetBookingId() uint64
}

type InitiationResult struct {
	Payment *entity.Payment
	Form    *gateway.InitiationForm
}

func (s *PaymentService) InitiatePayment(ctx context.Context, req initiatePaymentRequest) (*InitiationResult, error) {
	agreementID := req.GetAgreementId()
	if agreementID == 0 {
		return nil, fmt.Errorf("%w: agreementId is required", ErrInvalidRequest)
	}

	amount, err := parsePaymentAmount(req.GetAmount())
	if err != nil {
		return nil, err
	}

	suffix := strings.TrimSpace(req.GetUniqueSuffix())
	if suffix != "" && !referenceSuffixPattern.MatchString(suffix) {
		return nil, fmt.Errorf("%w: uniqueSuffix may only contain letters, digits and underscores", ErrInvalidRequest)
	}

	esewa, err := s.esewa()
	if err != nil {
		return nil, err
	}

	now := s.now()
	var payment *entity.Payment
	err = s.txManager.RunInTx(ctx, func(ctx context.Context, store repository.Store) error {
		agreement, err := store.Agreements().FindByID(ctx, agreementID)
		if err != nil {
			return err
		}
		if agreement == nil {
			return ErrAgreementNotFound
		}

		payment = &entity.Payment{
			AgreementID: agreement.ID,
			RenterID:    agreement.RenterID,
			BookingID:   initiationBookingID(req.GetBookingId(), agreement),
			Amount:      amount,
			Status:      entity.PaymentStatusPending,
			Gateway:     esewa.Code(),
			PaymentDate: now,
		}
		if err := store.Payments().Create(ctx, payment); err != nil {
			return err
		}

		reference := gateway.BuildReference(payment.ID, suffix)
		transactionID := reference
		payment.TransactionReference = &reference
		payment.TransactionID = &transactionID
		if err := store.Payments().Update(ctx, payment); err != nil {
			return err
		}

		_ = store.PaymentEvents().Create(ctx, &entity.PaymentEvent{
			PaymentID: payment.ID,
			EventType: entity.PaymentEventInitiated,
			NewStatus: payment.Status,
			CreatedAt: now,
		})
		return nil
	})
	if err != nil {
		if errors.Is(err, repository.ErrPaymentNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, err
	}

	form, err := esewa.BuildInitiationForm(&gateway.InitiationInput{
		Amount:    payment.Amount,
		Reference: *payment.TransactionReference,
	})
	if err != nil {
		return nil, err
	}

	s.logger.WithField("payment_id", payment.ID).
		WithField("agreement_id", payment.AgreementID).
		Info("Payment initiated")

	return &InitiationResult{Payment: payment, Form: form}, nil
}

func parsePaymentAmount(raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero, fmt.Errorf("%w: amount is required", ErrInvalidRequest)
	}

	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: amount must be a number", ErrInvalidRequest)
	}
	if !amount.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: amount must be greater than zero", ErrInvalidRequest)
	}
	if !amount.Equal(amount.Truncate(2)) {
		return decimal.Zero, fmt.Errorf("%w: amount may have at most two decimal places", ErrInvalidRequest)
	}

	return amount.Round(2), nil
}

func initiationBookingID(override uint64, agreement *entity.Agreement) *uint64 {
	bookingID := override
	if bookingID == 0 {
		bookingID = agreement.BookingID
	}
	if bookingID == 0 {
		return nil
	}
	return &bookingID
}
