package service

import "errors"

var (
	ErrInvalidRequest     = errors.New("invalid request")
	ErrMissingData        = errors.New("missing payment data")
	ErrInvalidReference   = errors.New("invalid payment reference")
	ErrGatewayNotComplete = errors.New("gateway did not report the payment as complete")
	ErrGatewayUnsupported = errors.New("gateway is not supported")

	ErrMalformedPayload   = errors.New("malformed payment data")
	ErrVerificationFailed = errors.New("payment verification failed")

	ErrPaymentNotFound   = errors.New("payment not found")
	ErrAgreementNotFound = errors.New("agreement not found")

	ErrPaymentAlreadyCompleted = errors.New("payment already completed")
	ErrPaymentAlreadyFailed    = errors.New("payment already failed")
	ErrAmountMismatch          = errors.New("paid amount does not match payment amount")
)

type ErrorKind int

const (
	KindTransient ErrorKind = iota
	KindValidation
	KindMalformed
	KindVerification
	KindNotFound
	KindConflict
)

func (k ErrorKind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindMalformed:
		return "malformed"
	case KindVerification:
		return "verification"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	default:
		return "transient"
	}
}

var errorKinds = []struct {
	err  error
	kind ErrorKind
}{
	{ErrInvalidRequest, KindValidation},
	{ErrMissingData, KindValidation},
	{ErrInvalidReference, KindValidation},
	{ErrGatewayNotComplete, KindValidation},
	{ErrGatewayUnsupported, KindValidation},
	{ErrMalformedPayload, KindMalformed},
	{ErrVerificationFailed, KindVerification},
	{ErrPaymentNotFound, KindNotFound},
	{ErrAgreementNotFound, KindNotFound},
	{ErrPaymentAlreadyCompleted, KindConflict},
	{ErrPaymentAlreadyFailed, KindConflict},
	{ErrAmountMismatch, KindConflict},
}

// KindOf classifies err. Anything not produced by this package is transient.
func KindOf(err error) ErrorKind {
	for _, item := range errorKinds {
		if errors.Is(err, item.err) {
			return item.kind
		}
	}
	return KindTransient
}
