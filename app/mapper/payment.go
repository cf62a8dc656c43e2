package mapper

import (
	"strconv"
	"strings"
	"time"

	"github.com/rentease/ms-go-rent-payments/app/entity"
	"github.com/rentease/ms-go-rent-payments/app/gateway"
	"github.com/rentease/ms-go-rent-payments/app/service"
	"github.com/rentease/ms-go-rent-payments/app/types"
)

func PaymentToResponse(item *entity.Payment) *types.Payment {
	if item == nil {
		return nil
	}

	return &types.Payment{
		PaymentId:       item.ID,
		AgreementId:     item.AgreementID,
		RenterId:        item.RenterID,
		BookingId:       derefUint64(item.BookingID),
		Amount:          item.Amount.StringFixed(2),
		Status:          string(item.Status),
		Gateway:         string(item.Gateway),
		TransactionUuid: derefString(item.TransactionReference),
		TransactionId:   derefString(item.TransactionID),
		ReferenceId:     derefString(item.ReferenceID),
		PaymentDate:     item.PaymentDate.UTC().Format(time.RFC3339),
	}
}

func PaymentsToResponse(items []*entity.Payment) []*types.Payment {
	result := make([]*types.Payment, 0, len(items))
	for _, item := range items {
		result = append(result, PaymentToResponse(item))
	}
	return result
}

func InitiationToResponse(result *service.InitiationResult) *types.InitiatePaymentResponse {
	if result == nil || result.Payment == nil {
		return nil
	}

	payment := result.Payment
	reference := derefString(payment.TransactionReference)
	amount := gateway.FormatAmount(payment.Amount)

	return &types.InitiatePaymentResponse{
		Success: true,
		Payment: FormToResponse(result.Form),
		PaymentData: &types.InitiationPaymentData{
			PaymentId:     payment.ID,
			Amount:        payment.Amount.StringFixed(2),
			AgreementId:   payment.AgreementID,
			RenterId:      payment.RenterID,
			Status:        string(payment.Status),
			TransactionId: reference,
		},
		PaymentParams: &types.PaymentParams{
			Amt: amount,
			Pid: reference,
			Scd: formProductCode(result.Form),
		},
	}
}

func FormToResponse(form *gateway.InitiationForm) *types.GatewayForm {
	if form == nil {
		return nil
	}
	return &types.GatewayForm{
		ActionUrl:        form.ActionURL,
		Signature:        form.Signature,
		SignedFieldNames: form.SignedFieldNames,
		Fields:           formFieldsToResponse(form.Fields),
	}
}

func formFieldsToResponse(fields []gateway.Field) []*types.FormField {
	out := make([]*types.FormField, 0, len(fields))
	for _, f := range fields {
		out = append(out, &types.FormField{Name: f.Name, Value: f.Value})
	}
	return out
}

func VerificationToResponse(result *service.VerificationResult, redirectURL string) *types.VerifyPaymentResponse {
	if result == nil {
		return nil
	}

	return &types.VerifyPaymentResponse{
		Success:          true,
		AlreadyProcessed: result.AlreadyProcessed,
		Payment:          PaymentToResponse(result.Payment),
		TransactionCode:  result.TransactionCode,
		GatewayStatus:    result.GatewayStatus,
		LandlordId:       derefUint64(result.LandlordID),
		BookingId:        derefUint64(result.BookingID),
		PropertyId:       derefUint64(result.PropertyID),
		PropertyTitle:    result.PropertyTitle,
		Address:          result.Address,
		RedirectUrl:      redirectURL,
	}
}

func formProductCode(form *gateway.InitiationForm) string {
	if form == nil {
		return ""
	}
	if form.ProductCode != "" {
		return form.ProductCode
	}
	return form.Values()["product_code"]
}

func derefString(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

func derefUint64(v *uint64) uint64 {
	if v == nil {
		return 0
	}
	return *v
}

const DefaultDeepLink = "rentease://payment"

// SuccessDeepLink is where the mobile app expects to land after a completed payment.
func SuccessDeepLink(base string, paymentID uint64) string {
	return normalizeDeepLink(base) + "/success?paymentId=" + strconv.FormatUint(paymentID, 10)
}

func ErrorDeepLink(base string) string {
	return normalizeDeepLink(base) + "/error"
}

func normalizeDeepLink(base string) string {
	base = strings.TrimRight(strings.TrimSpace(base), "/")
	if base == "" {
		return DefaultDeepLink
	}
	return base
}
