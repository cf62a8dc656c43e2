package events

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/rentease/ms-go-rent-payments/app/factory"
	"github.com/rentease/ms-go-rent-payments/app/metrics"
	skafka "github.com/segmentio/kafka-go"
)

const (
	TypePaymentCompleted = "payment.completed"
	TypePaymentFailed    = "payment.failed"
	TypePaymentExpired   = "payment.expired"
)

type PaymentMessage struct {
	EventID         string    `json:"event_id"`
	Type            string    `json:"type"`
	PaymentID       uint64    `json:"payment_id"`
	AgreementID     uint64    `json:"agreement_id"`
	BookingID       *uint64   `json:"booking_id,omitempty"`
	PropertyID      *uint64   `json:"property_id,omitempty"`
	Status          string    `json:"status"`
	Amount          string    `json:"amount"`
	TransactionCode string    `json:"transaction_code,omitempty"`
	OccurredAt      time.Time `json:"occurred_at"`
}

// Writer is the part of kafka.Writer the publisher needs.
type Writer interface {
	WriteMessages(ctx context.Context, msgs ...skafka.Message) error
	Close() error
}

type Publisher interface {
	PublishPayment(ctx context.Context, message *PaymentMessage) error
	Close() error
}

type KafkaPublisher struct {
	writer Writer
}

func NewKafkaPublisher(brokers []string, topic string, writeTimeout time.Duration) *KafkaPublisher {
	return &KafkaPublisher{writer: &skafka.Writer{
		Addr:                   skafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &skafka.Hash{},
		RequiredAcks:           skafka.RequireAll,
		WriteTimeout:           writeTimeout,
		AllowAutoTopicCreation: true,
	}}
}

func NewKafkaPublisherWithWriter(w Writer) *KafkaPublisher {
	return &KafkaPublisher{writer: w}
}

// PublishPayment writes the message keyed by payment id so events of one
// payment stay on one partition.
func (p *KafkaPublisher) PublishPayment(ctx context.Context, message *PaymentMessage) error {
	if message.EventID == "" {
		message.EventID = uuid.NewString()
	}
	if message.OccurredAt.IsZero() {
		message.OccurredAt = time.Now().UTC()
	}

	value, err := json.Marshal(message)
	if err != nil {
		return err
	}

	err = p.writer.WriteMessages(ctx, skafka.Message{
		Key:   []byte(strconv.FormatUint(message.PaymentID, 10)),
		Value: value,
		Headers: []skafka.Header{
			{Key: "type", Value: []byte(message.Type)},
		},
	})
	metrics.IncEventPublished(message.Type, err)
	if err != nil {
		factory.NewModuleLogger("payments-events").
			WithError(err).
			WithField("payment_id", message.PaymentID).
			WithField("type", message.Type).
			Warn("Failed to publish payment event")
	}
	return err
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// NoopPublisher is used when no brokers are configured.
type NoopPublisher struct{}

func (NoopPublisher) PublishPayment(context.Context, *PaymentMessage) error { return nil }

func (NoopPublisher) Close() error { return nil }

// NewPublisher returns a Kafka publisher, or a no-op one when brokers is empty.
func NewPublisher(brokers []string, topic string, writeTimeout time.Duration) Publisher {
	if len(brokers) == 0 {
		return NoopPublisher{}
	}
	return NewKafkaPublisher(brokers, topic, writeTimeout)
}
