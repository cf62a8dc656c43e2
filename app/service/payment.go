package service

import (
	"context"
	"strings"
	"time"

	"github.com/rentease/ms-go-rent-payments/app/entity"
	"github.com/rentease/ms-go-rent-payments/app/events"
	"github.com/rentease/ms-go-rent-payments/app/factory"
	"github.com/rentease/ms-go-rent-payments/app/gateway"
	"github.com/rentease/ms-go-rent-payments/app/repository"
	"github.com/rentease/ms-go-rent-payments/config"
	"github.com/sirupsen/logrus"
)

const (
	defaultListLimit = int32(100)
	maxListLimit     = int32(500)
	defaultBatchSize = int32(100)
)

type listPaymentsRequest interface {
	GetAgreementId() uint64
	GetRenterId() uint64
	GetStatus() string
	GetLimit() int32
	GetOffset() int32
}

type PaymentService struct {
	store       repository.Store
	txManager   repository.TxManager
	gateways    *gateway.Registry
	publisher   events.Publisher
	paymentsCfg config.PaymentsConfig
	logger      logrus.FieldLogger
	now         func() time.Time
}

func NewPaymentService(
	store repository.Store,
	txManager repository.TxManager,
	gateways *gateway.Registry,
	publisher events.Publisher,
	paymentsCfg config.PaymentsConfig,
) *PaymentService {
	if publisher == nil {
		publisher = events.NoopPublisher{}
	}

	return &PaymentService{
		store:       store,
		txManager:   txManager,
		gateways:    gateways,
		publisher:   publisher,
		paymentsCfg: paymentsCfg,
		logger:      factory.NewModuleLogger("payments-service"),
		now:         func() time.Time { return time.Now().UTC() },
	}
}

func (s *PaymentService) GetPayment(ctx context.Context, id uint64) (*entity.Payment, error) {
	if id == 0 {
		return nil, ErrInvalidRequest
	}

	payment, err := s.store.Payments().FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, ErrPaymentNotFound
	}
	return payment, nil
}

func (s *PaymentService) ListPayments(ctx context.Context, req listPaymentsRequest) ([]*entity.Payment, error) {
	status := entity.PaymentStatus(strings.TrimSpace(req.GetStatus()))
	if status != "" && !status.Valid() {
		return nil, ErrInvalidRequest
	}

	limit := req.GetLimit()
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	offset := req.GetOffset()
	if offset < 0 {
		offset = 0
	}

	return s.store.Payments().List(ctx, repository.PaymentFilter{
		AgreementID: req.GetAgreementId(),
		RenterID:    req.GetRenterId(),
		Status:      status,
		Limit:       limit,
		Offset:      offset,
	})
}

func (s *PaymentService) esewa() (gateway.Gateway, error) {
	g, err := s.gateways.Get(entity.GatewayEsewa)
	if err != nil {
		return nil, ErrGatewayUnsupported
	}
	return g, nil
}

func (s *PaymentService) batchSize() int32 {
	if s.paymentsCfg.JobBatchSize > 0 {
		return s.paymentsCfg.JobBatchSize
	}
	return defaultBatchSize
}

func (s *PaymentService) publish(ctx context.Context, eventType string, payment *entity.Payment, propertyID *uint64, transactionCode string) {
	message := &events.PaymentMessage{
		Type:            eventType,
		PaymentID:       payment.ID,
		AgreementID:     payment.AgreementID,
		BookingID:       payment.BookingID,
		PropertyID:      propertyID,
		Status:          string(payment.Status),
		Amount:          payment.Amount.StringFixed(2),
		TransactionCode: transactionCode,
		OccurredAt:      s.now(),
	}
	if err := s.publisher.PublishPayment(ctx, message); err != nil {
		s.logger.WithError(err).WithField("payment_id", payment.ID).Warn("Payment event was not published")
	}
}

func truncate(v string, max int) string {
	if len(v) <= max {
		return v
	}
	return v[:max]
}
