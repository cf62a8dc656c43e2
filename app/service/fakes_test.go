package service

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/rentease/ms-go-rent-payments/app/entity"
	"github.com/rentease/ms-go-rent-payments/app/events"
	"github.com/rentease/ms-go-rent-payments/app/gateway"
	"github.com/rentease/ms-go-rent-payments/app/repository"
	"github.com/rentease/ms-go-rent-payments/config"
	"github.com/shopspring/decimal"
)

const (
	testSecret      = "8gBm/:&EnhH.1/q"
	testProductCode = "EPAYTEST"
)

type memState struct {
	payments   map[uint64]*entity.Payment
	agreements map[uint64]*entity.Agreement
	bookings   map[uint64]*entity.Booking
	properties map[uint64]*entity.Property
	events     []*entity.PaymentEvent
	callbacks  []*entity.PaymentCallback
	nextID     uint64
}

func (s *memState) clone() *memState {
	out := &memState{
		payments:   make(map[uint64]*entity.Payment, len(s.payments)),
		agreements: make(map[uint64]*entity.Agreement, len(s.agreements)),
		bookings:   make(map[uint64]*entity.Booking, len(s.bookings)),
		properties: make(map[uint64]*entity.Property, len(s.properties)),
		events:     append([]*entity.PaymentEvent(nil), s.events...),
		callbacks:  append([]*entity.PaymentCallback(nil), s.callbacks...),
		nextID:     s.nextID,
	}
	for k, v := range s.payments {
		item := *v
		out.payments[k] = &item
	}
	for k, v := range s.agreements {
		item := *v
		out.agreements[k] = &item
	}
	for k, v := range s.bookings {
		item := *v
		out.bookings[k] = &item
	}
	for k, v := range s.properties {
		item := *v
		out.properties[k] = &item
	}
	return out
}

// memStore is an in-memory repository.Store. Fault fields make the matching
// write fail so rollback paths can be exercised.
type memStore struct {
	state *memState

	failBookingUpdate  error
	failPropertyUpdate error

	paymentWrites  int
	bookingWrites  int
	propertyWrites int
}

func newMemStore() *memStore {
	return &memStore{state: &memState{
		payments:   map[uint64]*entity.Payment{},
		agreements: map[uint64]*entity.Agreement{},
		bookings:   map[uint64]*entity.Booking{},
		properties: map[uint64]*entity.Property{},
		nextID:     1,
	}}
}

func (s *memStore) Payments() repository.PaymentStore                 { return memPayments{s} }
func (s *memStore) Agreements() repository.AgreementStore             { return memAgreements{s} }
func (s *memStore) Bookings() repository.BookingStore                 { return memBookings{s} }
func (s *memStore) Properties() repository.PropertyStore              { return memProperties{s} }
func (s *memStore) PaymentEvents() repository.PaymentEventStore       { return memEvents{s} }
func (s *memStore) PaymentCallbacks() repository.PaymentCallbackStore { return memCallbacks{s} }

func (s *memStore) payment(id uint64) *entity.Payment {
	item, ok := s.state.payments[id]
	if !ok {
		return nil
	}
	copyItem := *item
	return &copyItem
}

func (s *memStore) eventsOf(eventType string) []*entity.PaymentEvent {
	out := make([]*entity.PaymentEvent, 0)
	for _, e := range s.state.events {
		if e.EventType == eventType {
			out = append(out, e)
		}
	}
	return out
}

type memTxManager struct {
	store     *memStore
	calls     int
	rollbacks int
}

func (m *memTxManager) RunInTx(ctx context.Context, fn func(ctx context.Context, store repository.Store) error) error {
	m.calls++
	snapshot := m.store.state.clone()
	if err := fn(ctx, m.store); err != nil {
		m.store.state = snapshot
		m.rollbacks++
		return err
	}
	return nil
}

type memPayments struct{ s *memStore }

func (r memPayments) Create(_ context.Context, payment *entity.Payment) error {
	payment.ID = r.s.state.nextID
	r.s.state.nextID++
	copyItem := *payment
	r.s.state.payments[payment.ID] = &copyItem
	return nil
}

func (r memPayments) Update(_ context.Context, payment *entity.Payment) error {
	r.s.paymentWrites++
	if _, ok := r.s.state.payments[payment.ID]; !ok {
		return repository.ErrPaymentNotFound
	}
	copyItem := *payment
	r.s.state.payments[payment.ID] = &copyItem
	return nil
}

func (r memPayments) FindByID(_ context.Context, id uint64) (*entity.Payment, error) {
	return r.s.payment(id), nil
}

func (r memPayments) FindByIDForUpdate(_ context.Context, id uint64) (*entity.Payment, error) {
	return r.s.payment(id), nil
}

func (r memPayments) TransitionStatus(_ context.Context, id uint64, from, to entity.PaymentStatus) (bool, error) {
	r.s.paymentWrites++
	item, ok := r.s.state.payments[id]
	if !ok || item.Status != from {
		return false, nil
	}
	item.Status = to
	return true, nil
}

func (r memPayments) List(_ context.Context, filter repository.PaymentFilter) ([]*entity.Payment, error) {
	items := make([]*entity.Payment, 0)
	for _, item := range r.s.state.payments {
		if filter.AgreementID > 0 && item.AgreementID != filter.AgreementID {
			continue
		}
		if filter.RenterID > 0 && item.RenterID != filter.RenterID {
			continue
		}
		if filter.Status != "" && item.Status != filter.Status {
			continue
		}
		copyItem := *item
		items = append(items, &copyItem)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID > items[j].ID })

	start := int(filter.Offset)
	if start > len(items) {
		return []*entity.Payment{}, nil
	}
	end := start + int(filter.Limit)
	if filter.Limit <= 0 || end > len(items) {
		end = len(items)
	}
	return items[start:end], nil
}

func (r memPayments) ListForReconcile(_ context.Context, before time.Time, limit int32) ([]*entity.Payment, error) {
	items := make([]*entity.Payment, 0)
	for _, item := range r.s.state.payments {
		if item.Status == entity.PaymentStatusPending && item.TransactionReference != nil && !item.PaymentDate.After(before) {
			copyItem := *item
			items = append(items, &copyItem)
		}
	}
	return limitItems(items, limit), nil
}

func (r memPayments) ListExpiredPending(_ context.Context, cutoff time.Time, limit int32) ([]*entity.Payment, error) {
	items := make([]*entity.Payment, 0)
	for _, item := range r.s.state.payments {
		if item.Status == entity.PaymentStatusPending && !item.PaymentDate.After(cutoff) {
			copyItem := *item
			items = append(items, &copyItem)
		}
	}
	return limitItems(items, limit), nil
}

func limitItems(items []*entity.Payment, limit int32) []*entity.Payment {
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	if limit <= 0 || int(limit) >= len(items) {
		return items
	}
	return items[:limit]
}

type memAgreements struct{ s *memStore }

func (r memAgreements) FindByID(_ context.Context, id uint64) (*entity.Agreement, error) {
	item, ok := r.s.state.agreements[id]
	if !ok {
		return nil, nil
	}
	copyItem := *item
	return &copyItem, nil
}

type memBookings struct{ s *memStore }

func (r memBookings) FindByID(_ context.Context, id uint64) (*entity.Booking, error) {
	item, ok := r.s.state.bookings[id]
	if !ok {
		return nil, nil
	}
	copyItem := *item
	return &copyItem, nil
}

func (r memBookings) UpdateStatus(_ context.Context, id uint64, status entity.BookingStatus) error {
	r.s.bookingWrites++
	if r.s.failBookingUpdate != nil {
		return r.s.failBookingUpdate
	}
	item, ok := r.s.state.bookings[id]
	if !ok {
		return repository.ErrBookingNotFound
	}
	item.Status = status
	return nil
}

type memProperties struct{ s *memStore }

func (r memProperties) FindByID(_ context.Context, id uint64) (*entity.Property, error) {
	item, ok := r.s.state.properties[id]
	if !ok {
		return nil, nil
	}
	copyItem := *item
	return &copyItem, nil
}

func (r memProperties) UpdateStatus(_ context.Context, id uint64, status entity.PropertyStatus) error {
	r.s.propertyWrites++
	if r.s.failPropertyUpdate != nil {
		return r.s.failPropertyUpdate
	}
	item, ok := r.s.state.properties[id]
	if !ok {
		return repository.ErrPropertyNotFound
	}
	item.Status = status
	return nil
}

type memEvents struct{ s *memStore }

func (r memEvents) Create(_ context.Context, event *entity.PaymentEvent) error {
	copyItem := *event
	r.s.state.events = append(r.s.state.events, &copyItem)
	return nil
}

type memCallbacks struct{ s *memStore }

func (r memCallbacks) Create(_ context.Context, callback *entity.PaymentCallback) error {
	copyItem := *callback
	r.s.state.callbacks = append(r.s.state.callbacks, &copyItem)
	return nil
}

type recordingPublisher struct {
	messages []*events.PaymentMessage
}

func (p *recordingPublisher) PublishPayment(_ context.Context, message *events.PaymentMessage) error {
	copyItem := *message
	p.messages = append(p.messages, &copyItem)
	return nil
}

func (p *recordingPublisher) Close() error { return nil }

// statusGateway is the real eSewa gateway with a canned status lookup.
type statusGateway struct {
	*gateway.EsewaGateway
	status    *gateway.TransactionStatus
	statusErr error
	lookups   []string
}

func (g *statusGateway) GetTransactionStatus(_ context.Context, reference string, _ decimal.Decimal) (*gateway.TransactionStatus, error) {
	g.lookups = append(g.lookups, reference)
	if g.statusErr != nil {
		return nil, g.statusErr
	}
	return g.status, nil
}

type testEnv struct {
	store     *memStore
	tx        *memTxManager
	gateway   *statusGateway
	publisher *recordingPublisher
	svc       *PaymentService
}

func newTestEnv() *testEnv {
	store := newMemStore()
	tx := &memTxManager{store: store}
	gw := &statusGateway{EsewaGateway: gateway.NewEsewaGateway(gateway.EsewaConfig{
		SecretKey:   testSecret,
		ProductCode: testProductCode,
		FormURL:     "https://rc-epay.esewa.com.np/api/epay/main/v2/form",
		SuccessURL:  "https://rent.example.com/api/esewa/complete-payment",
		FailureURL:  "https://rent.example.com/api/esewa/payment-failed",
	})}
	publisher := &recordingPublisher{}

	svc := NewPaymentService(store, tx, gateway.NewRegistry(gw), publisher, config.PaymentsConfig{
		PendingTimeout:      time.Hour,
		ReconcileStaleAfter: time.Minute,
		JobBatchSize:        100,
	})

	return &testEnv{store: store, tx: tx, gateway: gw, publisher: publisher, svc: svc}
}

// seedRental stores agreement 7 -> booking 3 -> property 5, all awaiting payment.
func (e *testEnv) seedRental() {
	e.store.state.agreements[7] = &entity.Agreement{ID: 7, BookingID: 3, LandlordID: 21, RenterID: 11, Status: "Signed"}
	e.store.state.bookings[3] = &entity.Booking{ID: 3, UserID: 11, PropertyID: 5, Status: entity.BookingStatusPending}
	e.store.state.properties[5] = &entity.Property{
		ID:           5,
		LandlordID:   21,
		Title:        "Two room flat",
		Municipality: "Lalitpur Metropolitan",
		Ward:         3,
		City:         "Lalitpur",
		District:     "Lalitpur",
		Price:        decimal.RequireFromString("15000.00"),
		Status:       entity.PropertyStatusAvailable,
	}
}

func (e *testEnv) seedPendingPayment(id uint64, reference string, paidAt time.Time) *entity.Payment {
	bookingID := uint64(3)
	ref := reference
	payment := &entity.Payment{
		ID:                   id,
		AgreementID:          7,
		RenterID:             11,
		BookingID:            &bookingID,
		Amount:               decimal.RequireFromString("15000.00"),
		Status:               entity.PaymentStatusPending,
		Gateway:              entity.GatewayEsewa,
		TransactionReference: &ref,
		TransactionID:        &ref,
		PaymentDate:          paidAt,
	}
	e.store.state.payments[id] = payment
	if id >= e.store.state.nextID {
		e.store.state.nextID = id + 1
	}
	copyItem := *payment
	return &copyItem
}

type initiateReq struct {
	agreementID uint64
	amount      string
	suffix      string
	bookingID   uint64
}

func (r initiateReq) GetAgreementId() uint64  { return r.agreementID }
func (r initiateReq) GetAmount() string       { return r.amount }
func (r initiateReq) GetUniqueSuffix() string { return r.suffix }
func (r initiateReq) GetBookingId() uint64    { return r.bookingID }

type verifyReq string

func (r verifyReq) GetData() string { return string(r) }

type failureReq string

func (r failureReq) GetPaymentId() string { return string(r) }

type listReq struct {
	agreementID uint64
	renterID    uint64
	status      string
	limit       int32
	offset      int32
}

func (r listReq) GetAgreementId() uint64 { return r.agreementID }
func (r listReq) GetRenterId() uint64    { return r.renterID }
func (r listReq) GetStatus() string      { return r.status }
func (r listReq) GetLimit() int32        { return r.limit }
func (r listReq) GetOffset() int32       { return r.offset }

func callbackValues(reference, status, totalAmount, transactionCode string) map[string]string {
	return map[string]string{
		"transaction_code":   transactionCode,
		"status":             status,
		"total_amount":       totalAmount,
		"transaction_uuid":   reference,
		"product_code":       testProductCode,
		"signed_field_names": "transaction_code,status,total_amount,transaction_uuid,product_code,signed_field_names",
	}
}

// signedPayload encodes values the way the gateway appends them to the success redirect.
func signedPayload(t *testing.T, secret string, values map[string]string) string {
	t.Helper()

	fields := make([]gateway.Field, 0, 6)
	for _, name := range strings.Split(values["signed_field_names"], ",") {
		fields = append(fields, gateway.Field{Name: name, Value: values[name]})
	}

	body := make(map[string]string, len(values)+1)
	for k, v := range values {
		body[k] = v
	}
	body["signature"] = gateway.Sign(secret, fields)

	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal callback: %v", err)
	}
	return base64.StdEncoding.EncodeToString(raw)
}
