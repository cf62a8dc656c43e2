package gateway

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Sign computes base64(HMAC-SHA256(secret, "k1=v1,k2=v2,...")).
func Sign(secret string, fields []Field) string {
	return base64.StdEncoding.EncodeToString(computeMAC(secret, canonicalString(fields)))
}

func canonicalString(fields []Field) string {
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f.Name+"="+f.Value)
	}
	return strings.Join(parts, ",")
}

func computeMAC(secret, message string) []byte {
	mac := hmac.New(sha256.New, []byte(secret))
	_, _ = mac.Write([]byte(message))
	return mac.Sum(nil)
}

func splitFieldNames(raw string) []string {
	names := make([]string, 0, 6)
	for _, name := range strings.Split(raw, ",") {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// decodeCallbackPayload turns the base64 JSON blob the gateway appends to the
// success redirect into a DecodedCallback.
func decodeCallbackPayload(payload string) (*DecodedCallback, error) {
	payload = strings.TrimSpace(payload)
	if payload == "" {
		return nil, fmt.Errorf("%w: empty payload", ErrMalformedPayload)
	}
	// query decoding turns '+' into ' '
	payload = strings.ReplaceAll(payload, " ", "+")

	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		raw, err = base64.URLEncoding.DecodeString(payload)
	}
	if err != nil {
		raw, err = base64.RawStdEncoding.DecodeString(strings.TrimRight(payload, "="))
	}
	if err != nil {
		return nil, fmt.Errorf("%w: invalid base64: %v", ErrMalformedPayload, err)
	}

	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.UseNumber()
	var object map[string]interface{}
	if err := decoder.Decode(&object); err != nil {
		return nil, fmt.Errorf("%w: invalid json: %v", ErrMalformedPayload, err)
	}

	fields := make(map[string]string, len(object))
	for key, value := range object {
		switch v := value.(type) {
		case string:
			fields[key] = v
		case json.Number:
			fields[key] = v.String()
		case bool:
			fields[key] = strconv.FormatBool(v)
		}
	}

	decoded := &DecodedCallback{
		TransactionCode:      fields["transaction_code"],
		Status:               fields["status"],
		TotalAmount:          fields["total_amount"],
		TransactionReference: fields["transaction_uuid"],
		ProductCode:          fields["product_code"],
		SignedFieldNames:     fields["signed_field_names"],
		Signature:            fields["signature"],
		Fields:               fields,
		Raw:                  raw,
	}

	for _, name := range []string{"transaction_code", "status", "total_amount", "transaction_uuid", "signed_field_names", "signature"} {
		if strings.TrimSpace(fields[name]) == "" {
			return nil, fmt.Errorf("%w: %s is required", ErrMalformedPayload, name)
		}
	}

	return decoded, nil
}
