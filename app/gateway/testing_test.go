package gateway

import (
	"encoding/base64"
	"encoding/json"
	"testing"
)

const testSecret = "8gBm/:&EnhH.1/q"

func signedCallback(t *testing.T, secret string, values map[string]string) string {
	t.Helper()

	fields := make([]Field, 0, 6)
	for _, name := range splitFieldNames(values["signed_field_names"]) {
		fields = append(fields, Field{Name: name, Value: values[name]})
	}

	body := make(map[string]string, len(values)+1)
	for k, v := range values {
		body[k] = v
	}
	body["signature"] = Sign(secret, fields)

	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal callback: %v", err)
	}
	return base64.StdEncoding.EncodeToString(raw)
}

func completeCallbackValues() map[string]string {
	return map[string]string{
		"transaction_code":   "TXN-ABC",
		"status":             "COMPLETE",
		"total_amount":       "15000.0",
		"transaction_uuid":   "1",
		"product_code":       "EPAYTEST",
		"signed_field_names": "transaction_code,status,total_amount,transaction_uuid,product_code,signed_field_names",
	}
}
