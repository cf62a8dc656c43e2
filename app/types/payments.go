package types

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
)

// Scalar accepts either a JSON string or a JSON number and keeps the literal text.
type Scalar string

func (a *Scalar) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*a = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = Scalar(strings.TrimSpace(s))
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return errors.New("value must be a number or a string")
	}
	*a = Scalar(n.String())
	return nil
}

// NewInitiatePaymentRequestFromContext accepts the amount as a JSON number or
// string, as the mobile client sends either.
func NewInitiatePaymentRequestFromContext(ctx echo.Context) (*InitiatePaymentRequest, error) {
	var body struct {
		AgreementId  uint64 `json:"agreementId"`
		Amount       Scalar `json:"amount"`
		UniqueSuffix string `json:"uniqueSuffix"`
		BookingId    uint64 `json:"bookingId"`
	}
	if err := ctx.Bind(&body); err != nil {
		return nil, err
	}

	return &InitiatePaymentRequest{
		AgreementId:  body.AgreementId,
		Amount:       strings.TrimSpace(string(body.Amount)),
		UniqueSuffix: strings.TrimSpace(body.UniqueSuffix),
		BookingId:    body.BookingId,
	}, nil
}

func (r *InitiatePaymentRequest) Validate() error {
	if r.GetAgreementId() == 0 {
		return errors.New("agreementId is required")
	}
	if strings.TrimSpace(r.GetAmount()) == "" {
		return errors.New("amount is required")
	}
	return nil
}

// NewVerifyPaymentRequestFromContext reads data from the query string first,
// which is where the gateway puts it on the success redirect.
func NewVerifyPaymentRequestFromContext(ctx echo.Context) (*VerifyPaymentRequest, error) {
	req := &VerifyPaymentRequest{Data: restorePlus(ctx.QueryParam("data"))}
	if req.Data != "" {
		return req, nil
	}

	if ctx.Request().Method == "GET" {
		return req, nil
	}

	var body VerifyPaymentRequest
	if err := ctx.Bind(&body); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	req.Data = strings.TrimSpace(body.Data)

	return req, nil
}

func (r *VerifyPaymentRequest) Validate() error {
	if strings.TrimSpace(r.GetData()) == "" {
		return errors.New("data is required")
	}
	return nil
}

var failureReferenceKeys = []string{"paymentId", "transaction_uuid", "pid"}

// NewRecordFailureRequestFromContext accepts the payment reference as
// paymentId, transaction_uuid or pid, from the query string, a form body or
// a JSON body.
func NewRecordFailureRequestFromContext(ctx echo.Context) (*RecordFailureRequest, error) {
	for _, key := range failureReferenceKeys {
		if v := strings.TrimSpace(ctx.QueryParam(key)); v != "" {
			return &RecordFailureRequest{PaymentId: v}, nil
		}
	}

	httpReq := ctx.Request()
	if httpReq.Body == nil || httpReq.Method == "GET" {
		return &RecordFailureRequest{}, nil
	}

	if strings.HasPrefix(httpReq.Header.Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		var body struct {
			PaymentId       Scalar `json:"paymentId"`
			TransactionUuid Scalar `json:"transaction_uuid"`
			Pid             Scalar `json:"pid"`
		}
		if err := json.NewDecoder(httpReq.Body).Decode(&body); err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
		for _, v := range []Scalar{body.PaymentId, body.TransactionUuid, body.Pid} {
			if s := strings.TrimSpace(string(v)); s != "" {
				return &RecordFailureRequest{PaymentId: s}, nil
			}
		}
		return &RecordFailureRequest{}, nil
	}

	for _, key := range failureReferenceKeys {
		if v := strings.TrimSpace(ctx.FormValue(key)); v != "" {
			return &RecordFailureRequest{PaymentId: v}, nil
		}
	}
	return &RecordFailureRequest{}, nil
}

func (r *RecordFailureRequest) Validate() error {
	if strings.TrimSpace(r.GetPaymentId()) == "" {
		return errors.New("paymentId is required")
	}
	return nil
}

func NewGetPaymentRequestFromContext(ctx echo.Context) (*GetPaymentRequest, error) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return nil, err
	}
	return &GetPaymentRequest{Id: id}, nil
}

func (r *GetPaymentRequest) Validate() error {
	if r.GetId() == 0 {
		return errors.New("invalid payment id")
	}
	return nil
}

func NewListPaymentsRequestFromContext(ctx echo.Context) (*ListPaymentsRequest, error) {
	req := &ListPaymentsRequest{
		Status: strings.TrimSpace(ctx.QueryParam("status")),
		Limit:  100,
	}

	var err error
	if req.AgreementId, err = parseUintQuery(ctx, "agreementId"); err != nil {
		return nil, err
	}
	if req.RenterId, err = parseUintQuery(ctx, "renterId"); err != nil {
		return nil, err
	}

	if limitRaw := strings.TrimSpace(ctx.QueryParam("limit")); limitRaw != "" {
		limit, err := strconv.ParseInt(limitRaw, 10, 32)
		if err != nil {
			return nil, err
		}
		req.Limit = int32(limit)
	}

	if offsetRaw := strings.TrimSpace(ctx.QueryParam("offset")); offsetRaw != "" {
		offset, err := strconv.ParseInt(offsetRaw, 10, 32)
		if err != nil {
			return nil, err
		}
		req.Offset = int32(offset)
	}

	return req, nil
}

func (r *ListPaymentsRequest) Validate() error {
	if r.Limit == 0 {
		r.Limit = 100
	}
	if r.GetLimit() <= 0 || r.GetLimit() > 500 {
		return errors.New("limit must be between 1 and 500")
	}
	if r.GetOffset() < 0 {
		return errors.New("offset must be >= 0")
	}
	switch r.GetStatus() {
	case "", "Pending", "Completed", "Failed":
	default:
		return errors.New("status must be Pending, Completed or Failed")
	}
	return nil
}

// BridgeRequest carries the signed parameters a mobile client hands to the
// browser so it can post the gateway form.
type BridgeRequest struct {
	Amount           string
	Pid              string
	Scd              string
	Signature        string
	SignedFieldNames string
}

func NewBridgeRequestFromContext(ctx echo.Context) *BridgeRequest {
	return &BridgeRequest{
		Amount:           strings.TrimSpace(ctx.QueryParam("amount")),
		Pid:              strings.TrimSpace(ctx.QueryParam("pid")),
		Scd:              strings.TrimSpace(ctx.QueryParam("scd")),
		Signature:        restorePlus(ctx.QueryParam("signature")),
		SignedFieldNames: strings.TrimSpace(ctx.QueryParam("signed_field_names")),
	}
}

func (r *BridgeRequest) Validate() error {
	switch {
	case r.Amount == "":
		return errors.New("amount is required")
	case r.Pid == "":
		return errors.New("pid is required")
	case r.Signature == "":
		return errors.New("signature is required")
	}
	return nil
}

func parseUintQuery(ctx echo.Context, name string) (uint64, error) {
	raw := strings.TrimSpace(ctx.QueryParam(name))
	if raw == "" {
		return 0, nil
	}
	return strconv.ParseUint(raw, 10, 64)
}

// restorePlus undoes query decoding of '+' into ' ' in base64 values that
// were not percent-encoded by the sender.
func restorePlus(v string) string {
	return strings.ReplaceAll(strings.TrimSpace(v), " ", "+")
}
