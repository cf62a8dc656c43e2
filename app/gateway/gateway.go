package gateway

import (
	"context"
	"errors"

	"github.com/rentease/ms-go-rent-payments/app/entity"
	"github.com/shopspring/decimal"
)

var (
	ErrGatewayNotSupported = errors.New("gateway is not supported")
	ErrMalformedPayload    = errors.New("malformed callback payload")
	ErrSignatureMismatch   = errors.New("callback signature mismatch")
	ErrInvalidReference    = errors.New("invalid transaction reference")
)

// Transaction statuses reported by the gateway, in callbacks and by the status API.
const (
	StatusComplete      = "COMPLETE"
	StatusPending       = "PENDING"
	StatusFullRefund    = "FULL_REFUND"
	StatusPartialRefund = "PARTIAL_REFUND"
	StatusAmbiguous     = "AMBIGUOUS"
	StatusNotFound      = "NOT_FOUND"
	StatusCanceled      = "CANCELED"
)

type Field struct {
	Name  string
	Value string
}

type InitiationInput struct {
	Amount    decimal.Decimal
	Reference string
}

// BridgeInput holds an already signed form as handed over by a mobile client.
type BridgeInput struct {
	Amount           string
	Reference        string
	ProductCode      string
	Signature        string
	SignedFieldNames string
}

type InitiationForm struct {
	ActionURL        string
	Signature        string
	SignedFieldNames string
	ProductCode      string
	Fields           []Field
}

// Values returns the form fields keyed by name.
func (f *InitiationForm) Values() map[string]string {
	values := make(map[string]string, len(f.Fields))
	for _, field := range f.Fields {
		values[field.Name] = field.Value
	}
	return values
}

type DecodedCallback struct {
	TransactionCode      string
	Status               string
	TotalAmount          string
	TransactionReference string
	ProductCode          string
	SignedFieldNames     string
	Signature            string

	// Fields holds every scalar top-level value verbatim, keyed by its JSON name.
	Fields map[string]string
	Raw    []byte
}

type TransactionStatus struct {
	Status    string
	RefID     string
	Reference string
}

type Gateway interface {
	Code() entity.Gateway
	BuildInitiationForm(input *InitiationInput) (*InitiationForm, error)
	DecodeCallback(payload string) (*DecodedCallback, error)
	VerifyCallback(callback *DecodedCallback) error
	GetTransactionStatus(ctx context.Context, reference string, totalAmount decimal.Decimal) (*TransactionStatus, error)
}
