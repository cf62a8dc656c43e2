package grpc

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/rentease/ms-go-rent-payments/app/entity"
	"github.com/rentease/ms-go-rent-payments/app/gateway"
	"github.com/rentease/ms-go-rent-payments/app/repository"
	"github.com/rentease/ms-go-rent-payments/app/service"
	"github.com/rentease/ms-go-rent-payments/app/types"
	"github.com/rentease/ms-go-rent-payments/config"
	"github.com/shopspring/decimal"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

const grpcSecret = "8gBm/:&EnhH.1/q"

type grpcPaymentRepo struct {
	items  map[uint64]*entity.Payment
	nextID uint64
}

func (r *grpcPaymentRepo) Create(_ context.Context, payment *entity.Payment) error {
	r.nextID++
	payment.ID = r.nextID
	copyItem := *payment
	r.items[payment.ID] = &copyItem
	return nil
}

func (r *grpcPaymentRepo) Update(_ context.Context, payment *entity.Payment) error {
	copyItem := *payment
	r.items[payment.ID] = &copyItem
	return nil
}

func (r *grpcPaymentRepo) FindByID(_ context.Context, id uint64) (*entity.Payment, error) {
	item, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	copyItem := *item
	return &copyItem, nil
}

func (r *grpcPaymentRepo) FindByIDForUpdate(ctx context.Context, id uint64) (*entity.Payment, error) {
	return r.FindByID(ctx, id)
}

func (r *grpcPaymentRepo) TransitionStatus(_ context.Context, id uint64, from, to entity.PaymentStatus) (bool, error) {
	item, ok := r.items[id]
	if !ok || item.Status != from {
		return false, nil
	}
	item.Status = to
	return true, nil
}

func (r *grpcPaymentRepo) List(context.Context, repository.PaymentFilter) ([]*entity.Payment, error) {
	items := make([]*entity.Payment, 0, len(r.items))
	for _, item := range r.items {
		items = append(items, item)
	}
	return items, nil
}

func (r *grpcPaymentRepo) ListForReconcile(context.Context, time.Time, int32) ([]*entity.Payment, error) {
	return []*entity.Payment{}, nil
}

func (r *grpcPaymentRepo) ListExpiredPending(context.Context, time.Time, int32) ([]*entity.Payment, error) {
	return []*entity.Payment{}, nil
}

type grpcAgreementRepo struct{}

func (grpcAgreementRepo) FindByID(_ context.Context, id uint64) (*entity.Agreement, error) {
	if id != 7 {
		return nil, nil
	}
	return &entity.Agreement{ID: 7, RenterID: 11, LandlordID: 21}, nil
}

type grpcBookingRepo struct{}

func (grpcBookingRepo) FindByID(context.Context, uint64) (*entity.Booking, error) { return nil, nil }
func (grpcBookingRepo) UpdateStatus(context.Context, uint64, entity.BookingStatus) error {
	return nil
}

type grpcPropertyRepo struct{}

func (grpcPropertyRepo) FindByID(context.Context, uint64) (*entity.Property, error) { return nil, nil }
func (grpcPropertyRepo) UpdateStatus(context.Context, uint64, entity.PropertyStatus) error {
	return nil
}

type grpcEventRepo struct{}

func (r *grpcEventRepo) Create(context.Context, *entity.PaymentEvent) error {
	return nil
}

type grpcCallbackRepo struct{}

func (r *grpcCallbackRepo) Create(context.Context, *entity.PaymentCallback) error {
	return nil
}

type grpcStore struct {
	payments *grpcPaymentRepo
}

func (s *grpcStore) Payments() repository.PaymentStore                 { return s.payments }
func (s *grpcStore) Agreements() repository.AgreementStore             { return grpcAgreementRepo{} }
func (s *grpcStore) Bookings() repository.BookingStore                 { return grpcBookingRepo{} }
func (s *grpcStore) Properties() repository.PropertyStore              { return grpcPropertyRepo{} }
func (s *grpcStore) PaymentEvents() repository.PaymentEventStore       { return &grpcEventRepo{} }
func (s *grpcStore) PaymentCallbacks() repository.PaymentCallbackStore { return &grpcCallbackRepo{} }

type grpcTxManager struct {
	store repository.Store
}

func (m *grpcTxManager) RunInTx(ctx context.Context, fn func(ctx context.Context, store repository.Store) error) error {
	return fn(ctx, m.store)
}

func newGRPCServerForTest(repo *grpcPaymentRepo) *Server {
	store := &grpcStore{payments: repo}
	esewa := gateway.NewEsewaGateway(gateway.EsewaConfig{SecretKey: grpcSecret, ProductCode: "EPAYTEST"})
	paymentService := service.NewPaymentService(
		store,
		&grpcTxManager{store: store},
		gateway.NewRegistry(esewa),
		nil,
		config.PaymentsConfig{PendingTimeout: time.Hour, ReconcileStaleAfter: time.Minute, JobBatchSize: 100},
	)
	return NewServer(paymentService, func(id uint64) string { return "rentease://payment/success?paymentId=" + strconv.FormatUint(id, 10) })
}

func pendingPaymentRepo() *grpcPaymentRepo {
	reference := "1"
	return &grpcPaymentRepo{nextID: 1, items: map[uint64]*entity.Payment{
		1: {
			ID:                   1,
			AgreementID:          7,
			RenterID:             11,
			Amount:               decimal.RequireFromString("15000.00"),
			Status:               entity.PaymentStatusPending,
			Gateway:              entity.GatewayEsewa,
			TransactionReference: &reference,
			PaymentDate:          time.Now().UTC(),
		},
	}}
}

func signedData(t *testing.T, secret string) string {
	t.Helper()

	values := map[string]string{
		"transaction_code":   "TXN-ABC",
		"status":             "COMPLETE",
		"total_amount":       "15000.0",
		"transaction_uuid":   "1",
		"product_code":       "EPAYTEST",
		"signed_field_names": "transaction_code,status,total_amount,transaction_uuid,product_code,signed_field_names",
	}
	fields := make([]gateway.Field, 0, len(values))
	for _, name := range strings.Split(values["signed_field_names"], ",") {
		fields = append(fields, gateway.Field{Name: name, Value: values[name]})
	}
	values["signature"] = gateway.Sign(secret, fields)

	raw, err := json.Marshal(values)
	if err != nil {
		t.Fatalf("marshal callback: %v", err)
	}
	return base64.StdEncoding.EncodeToString(raw)
}

func TestInitiatePaymentInvalidArgument(t *testing.T) {
	srv := newGRPCServerForTest(pendingPaymentRepo())

	_, err := srv.InitiatePayment(context.Background(), &types.InitiatePaymentRequest{})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("expected InvalidArgument, got %v", err)
	}
}

func TestInitiatePaymentSuccess(t *testing.T) {
	srv := newGRPCServerForTest(pendingPaymentRepo())

	resp, err := srv.InitiatePayment(context.Background(), &types.InitiatePaymentRequest{AgreementId: 7, Amount: "2500"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if resp.PaymentData.PaymentId != 2 || resp.PaymentParams.Pid != "2" {
		t.Fatalf("unexpected response: %+v", resp.PaymentData)
	}
}

func TestInitiatePaymentUnknownAgreement(t *testing.T) {
	srv := newGRPCServerForTest(pendingPaymentRepo())

	_, err := srv.InitiatePayment(context.Background(), &types.InitiatePaymentRequest{AgreementId: 99, Amount: "2500"})
	if status.Code(err) != codes.NotFound {
		t.Fatalf("expected NotFound, got %v", err)
	}
}

func TestVerifyPaymentUnauthenticatedOnBadSignature(t *testing.T) {
	srv := newGRPCServerForTest(pendingPaymentRepo())

	_, err := srv.VerifyPayment(context.Background(), &types.VerifyPaymentRequest{Data: signedData(t, "wrong-secret")})
	if status.Code(err) != codes.Unauthenticated {
		t.Fatalf("expected Unauthenticated, got %v", err)
	}
}

func TestVerifyPaymentCompletes(t *testing.T) {
	repo := pendingPaymentRepo()
	srv := newGRPCServerForTest(repo)

	resp, err := srv.VerifyPayment(context.Background(), &types.VerifyPaymentRequest{Data: signedData(t, grpcSecret)})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if resp.Payment.Status != "Completed" || resp.RedirectUrl != "rentease://payment/success?paymentId=1" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestRecordPaymentFailureOnCompletedPayment(t *testing.T) {
	repo := pendingPaymentRepo()
	repo.items[1].Status = entity.PaymentStatusCompleted
	srv := newGRPCServerForTest(repo)

	_, err := srv.RecordPaymentFailure(context.Background(), &types.RecordFailureRequest{PaymentId: "1"})
	if status.Code(err) != codes.FailedPrecondition {
		t.Fatalf("expected FailedPrecondition, got %v", err)
	}
}

func TestGetPaymentNotFound(t *testing.T) {
	srv := newGRPCServerForTest(pendingPaymentRepo())

	_, err := srv.GetPayment(context.Background(), &types.GetPaymentRequest{Id: 9})
	if status.Code(err) != codes.NotFound {
		t.Fatalf("expected NotFound, got %v", err)
	}
}

func TestListPaymentsSuccess(t *testing.T) {
	srv := newGRPCServerForTest(pendingPaymentRepo())

	resp, err := srv.ListPayments(context.Background(), &types.ListPaymentsRequest{Limit: 10})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(resp.Payments) != 1 || resp.Payments[0].PaymentId != 1 {
		t.Fatalf("unexpected payments response: %+v", resp)
	}
}

func TestPaymentsServiceOverBufconn(t *testing.T) {
	lis := bufconn.Listen(1 << 20)
	grpcSrv := grpc.NewServer(grpc.ChainUnaryInterceptor(RecoveryInterceptor(), RequestIDInterceptor(), LoggingInterceptor()))
	types.RegisterPaymentsServiceServer(grpcSrv, newGRPCServerForTest(pendingPaymentRepo()))
	go func() { _ = grpcSrv.Serve(lis) }()
	defer grpcSrv.Stop()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		t.Fatalf("dial failed: %v", err)
	}
	defer conn.Close()

	client := types.NewPaymentsServiceClient(conn)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := client.Health(ctx, &types.HealthRequest{}); status.Code(err) != codes.InvalidArgument {
		t.Fatalf("expected missing request id to be rejected, got %v", err)
	}

	ctx = metadata.AppendToOutgoingContext(ctx, requestIDHeader, "grpc-req-1")
	health, err := client.Health(ctx, &types.HealthRequest{})
	if err != nil {
		t.Fatalf("Health() error = %v", err)
	}
	if health.Status != "ok" {
		t.Fatalf("unexpected health: %+v", health)
	}

	raw := new(types.HealthResponse)
	if err := conn.Invoke(ctx, types.PaymentsService_Health_FullMethodName, &types.HealthRequest{}, raw); err != nil {
		t.Fatalf("plain Invoke with the default codec failed: %v", err)
	}
	if raw.GetStatus() != "ok" {
		t.Fatalf("unexpected health from plain Invoke: %+v", raw)
	}

	payment, err := client.GetPayment(ctx, &types.GetPaymentRequest{Id: 1})
	if err != nil {
		t.Fatalf("GetPayment() error = %v", err)
	}
	if payment.Payment.Amount != "15000.00" || payment.Payment.TransactionUuid != "1" {
		t.Fatalf("unexpected payment: %+v", payment.Payment)
	}
}
