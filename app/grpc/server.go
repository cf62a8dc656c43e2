package grpc

import (
	"context"

	"github.com/rentease/ms-go-rent-payments/app/mapper"
	"github.com/rentease/ms-go-rent-payments/app/service"
	"github.com/rentease/ms-go-rent-payments/app/types"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type Server struct {
	types.UnimplementedPaymentsServiceServer

	paymentService *service.PaymentService
	successLink    func(paymentID uint64) string
}

func NewServer(paymentService *service.PaymentService, successLink func(paymentID uint64) string) *Server {
	return &Server{paymentService: paymentService, successLink: successLink}
}

func (s *Server) Health(_ context.Context, _ *types.HealthRequest) (*types.HealthResponse, error) {
	return &types.HealthResponse{Status: "ok"}, nil
}

func (s *Server) InitiatePayment(ctx context.Context, req *types.InitiatePaymentRequest) (*types.InitiatePaymentResponse, error) {
	l := loggerWithContext(ctx)
	if err := req.Validate(); err != nil {
		l.WithError(err).Debug("Initiate payment validation failed")
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	result, err := s.paymentService.InitiatePayment(ctx, req)
	if err != nil {
		return nil, s.toStatus(ctx, err, "Initiate payment failed")
	}

	return mapper.InitiationToResponse(result), nil
}

func (s *Server) VerifyPayment(ctx context.Context, req *types.VerifyPaymentRequest) (*types.VerifyPaymentResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	result, err := s.paymentService.VerifyPayment(ctx, req)
	if err != nil {
		return nil, s.toStatus(ctx, err, "Verify payment failed")
	}

	redirect := ""
	if s.successLink != nil {
		redirect = s.successLink(result.Payment.ID)
	}
	return mapper.VerificationToResponse(result, redirect), nil
}

func (s *Server) RecordPaymentFailure(ctx context.Context, req *types.RecordFailureRequest) (*types.RecordFailureResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	item, err := s.paymentService.RecordFailure(ctx, req)
	if err != nil {
		return nil, s.toStatus(ctx, err, "Record payment failure failed")
	}

	return &types.RecordFailureResponse{
		Success: true,
		Message: "Payment failure recorded",
		Payment: mapper.PaymentToResponse(item),
	}, nil
}

func (s *Server) GetPayment(ctx context.Context, req *types.GetPaymentRequest) (*types.PaymentEnvelopeResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	item, err := s.paymentService.GetPayment(ctx, req.GetId())
	if err != nil {
		return nil, s.toStatus(ctx, err, "Get payment failed")
	}

	return &types.PaymentEnvelopeResponse{Payment: mapper.PaymentToResponse(item)}, nil
}

func (s *Server) ListPayments(ctx context.Context, req *types.ListPaymentsRequest) (*types.ListPaymentsResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	items, err := s.paymentService.ListPayments(ctx, req)
	if err != nil {
		return nil, s.toStatus(ctx, err, "List payments failed")
	}

	return &types.ListPaymentsResponse{Payments: mapper.PaymentsToResponse(items)}, nil
}

func (s *Server) toStatus(ctx context.Context, err error, logMessage string) error {
	switch service.KindOf(err) {
	case service.KindValidation, service.KindMalformed:
		return status.Error(codes.InvalidArgument, err.Error())
	case service.KindVerification:
		return status.Error(codes.Unauthenticated, err.Error())
	case service.KindNotFound:
		return status.Error(codes.NotFound, err.Error())
	case service.KindConflict:
		return status.Error(codes.FailedPrecondition, err.Error())
	default:
		loggerWithContext(ctx).WithError(err).Error(logMessage)
		return status.Error(codes.Internal, "internal server error")
	}
}
