package gateway

import (
	"context"
	"crypto/hmac"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rentease/ms-go-rent-payments/app/entity"
	"github.com/shopspring/decimal"
)

const esewaSignedFieldNames = "total_amount,transaction_uuid,product_code"

// Fields a callback signature must cover to be accepted.
var esewaRequiredSignedFields = []string{"transaction_code", "status", "total_amount", "transaction_uuid"}

type EsewaConfig struct {
	SecretKey   string
	ProductCode string
	FormURL     string
	StatusURL   string
	SuccessURL  string
	FailureURL  string
	HTTPTimeout time.Duration
}

type EsewaGateway struct {
	cfg    EsewaConfig
	client *http.Client
}

func NewEsewaGateway(cfg EsewaConfig) *EsewaGateway {
	timeout := cfg.HTTPTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &EsewaGateway{
		cfg:    cfg,
		client: &http.Client{Timeout: timeout},
	}
}

func (g *EsewaGateway) Code() entity.Gateway {
	return entity.GatewayEsewa
}

func (g *EsewaGateway) ProductCode() string {
	return g.cfg.ProductCode
}

// Sign signs fields in the given order with the merchant secret.
func (g *EsewaGateway) Sign(fields []Field) string {
	return Sign(g.cfg.SecretKey, fields)
}

// SignInitiation returns the signature and signed field names for an outgoing payment form.
func (g *EsewaGateway) SignInitiation(totalAmount, reference string) (string, string) {
	signature := g.Sign([]Field{
		{Name: "total_amount", Value: totalAmount},
		{Name: "transaction_uuid", Value: reference},
		{Name: "product_code", Value: g.cfg.ProductCode},
	})
	return signature, esewaSignedFieldNames
}

func (g *EsewaGateway) BuildInitiationForm(input *InitiationInput) (*InitiationForm, error) {
	if strings.TrimSpace(g.cfg.SecretKey) == "" {
		return nil, errors.New("esewa secret key is not configured")
	}
	if strings.TrimSpace(input.Reference) == "" {
		return nil, errors.New("transaction reference is required")
	}

	amount := FormatAmount(input.Amount)
	signature, signedFieldNames := g.SignInitiation(amount, input.Reference)

	return g.form(amount, input.Reference, g.cfg.ProductCode, signature, signedFieldNames), nil
}

// BridgeForm rebuilds the gateway form from values that were signed at
// initiation and carried through a mobile client. Nothing is re-signed.
func (g *EsewaGateway) BridgeForm(input *BridgeInput) *InitiationForm {
	productCode := strings.TrimSpace(input.ProductCode)
	if productCode == "" {
		productCode = g.cfg.ProductCode
	}
	signedFieldNames := strings.TrimSpace(input.SignedFieldNames)
	if signedFieldNames == "" {
		signedFieldNames = esewaSignedFieldNames
	}
	return g.form(strings.TrimSpace(input.Amount), strings.TrimSpace(input.Reference), productCode, input.Signature, signedFieldNames)
}

func (g *EsewaGateway) form(amount, reference, productCode, signature, signedFieldNames string) *InitiationForm {
	return &InitiationForm{
		ActionURL:        g.cfg.FormURL,
		Signature:        signature,
		SignedFieldNames: signedFieldNames,
		ProductCode:      productCode,
		Fields: []Field{
			{Name: "amount", Value: amount},
			{Name: "tax_amount", Value: "0"},
			{Name: "total_amount", Value: amount},
			{Name: "transaction_uuid", Value: reference},
			{Name: "product_code", Value: productCode},
			{Name: "product_service_charge", Value: "0"},
			{Name: "product_delivery_charge", Value: "0"},
			{Name: "success_url", Value: g.cfg.SuccessURL},
			{Name: "failure_url", Value: g.cfg.FailureURL},
			{Name: "signed_field_names", Value: signedFieldNames},
			{Name: "signature", Value: signature},
		},
	}
}

func (g *EsewaGateway) DecodeCallback(payload string) (*DecodedCallback, error) {
	return decodeCallbackPayload(payload)
}

func (g *EsewaGateway) VerifyCallback(callback *DecodedCallback) error {
	if callback == nil {
		return ErrSignatureMismatch
	}
	if strings.TrimSpace(g.cfg.SecretKey) == "" {
		return fmt.Errorf("%w: secret key is not configured", ErrSignatureMismatch)
	}

	names := splitFieldNames(callback.SignedFieldNames)
	covered := make(map[string]bool, len(names))
	for _, name := range names {
		covered[name] = true
	}
	for _, name := range esewaRequiredSignedFields {
		if !covered[name] {
			return fmt.Errorf("%w: %s is not signed", ErrSignatureMismatch, name)
		}
	}

	if productCode, ok := callback.Fields["product_code"]; ok && productCode != g.cfg.ProductCode {
		return fmt.Errorf("%w: unexpected product code %q", ErrSignatureMismatch, productCode)
	}

	fields := make([]Field, 0, len(names))
	for _, name := range names {
		value, ok := callback.Fields[name]
		if !ok {
			return fmt.Errorf("%w: signed field %s is missing", ErrSignatureMismatch, name)
		}
		fields = append(fields, Field{Name: name, Value: value})
	}

	claimed, err := base64.StdEncoding.DecodeString(strings.TrimSpace(callback.Signature))
	if err != nil {
		return fmt.Errorf("%w: signature is not base64", ErrSignatureMismatch)
	}
	if !hmac.Equal(claimed, computeMAC(g.cfg.SecretKey, canonicalString(fields))) {
		return ErrSignatureMismatch
	}

	return nil
}

func (g *EsewaGateway) GetTransactionStatus(ctx context.Context, reference string, totalAmount decimal.Decimal) (*TransactionStatus, error) {
	if strings.TrimSpace(g.cfg.StatusURL) == "" {
		return nil, errors.New("esewa status url is not configured")
	}

	query := url.Values{}
	query.Set("product_code", g.cfg.ProductCode)
	query.Set("total_amount", FormatAmount(totalAmount))
	query.Set("transaction_uuid", reference)

	endpoint := g.cfg.StatusURL
	if strings.Contains(endpoint, "?") {
		endpoint += "&" + query.Encode()
	} else {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("esewa status check failed: status=%d body=%s", resp.StatusCode, string(body))
	}

	var payload struct {
		ProductCode     string      `json:"product_code"`
		TransactionUUID string      `json:"transaction_uuid"`
		TotalAmount     interface{} `json:"total_amount"`
		Status          string      `json:"status"`
		RefID           *string     `json:"ref_id"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, err
	}

	result := &TransactionStatus{
		Status:    strings.ToUpper(strings.TrimSpace(payload.Status)),
		Reference: strings.TrimSpace(payload.TransactionUUID),
	}
	if payload.RefID != nil {
		result.RefID = strings.TrimSpace(*payload.RefID)
	}
	if result.Reference == "" {
		result.Reference = reference
	}

	return result, nil
}

// FormatAmount renders an amount the way the gateway echoes it back: no
// trailing zeros, no thousands separators.
func FormatAmount(amount decimal.Decimal) string {
	return amount.Round(2).String()
}

// ParseAmount accepts amounts with thousands separators ("15,000.0").
func ParseAmount(raw string) (decimal.Decimal, error) {
	return decimal.NewFromString(strings.ReplaceAll(strings.TrimSpace(raw), ",", ""))
}
