package controller

import (
	"errors"
	"html/template"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rentease/ms-go-rent-payments/app/factory"
	"github.com/rentease/ms-go-rent-payments/app/gateway"
	"github.com/rentease/ms-go-rent-payments/app/mapper"
	"github.com/rentease/ms-go-rent-payments/app/service"
	"github.com/rentease/ms-go-rent-payments/app/types"
	"github.com/rentease/ms-go-rent-payments/app/view"
	"github.com/rentease/ms-go-rent-payments/config"
	"github.com/sirupsen/logrus"
)

type formBridge interface {
	BridgeForm(input *gateway.BridgeInput) *gateway.InitiationForm
}

type PaymentController struct {
	paymentService *service.PaymentService
	bridge         formBridge
	deepLink       string
	logger         logrus.FieldLogger
}

func NewPaymentController(paymentService *service.PaymentService, bridge formBridge, paymentsCfg config.PaymentsConfig) *PaymentController {
	return &PaymentController{
		paymentService: paymentService,
		bridge:         bridge,
		deepLink:       paymentsCfg.AppDeepLink,
		logger:         factory.NewModuleLogger("payments-controller"),
	}
}

func (c *PaymentController) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, &types.HealthResponse{Status: "ok"})
}

func (c *PaymentController) InitiatePayment(ctx echo.Context) error {
	req, err := types.NewInitiatePaymentRequestFromContext(ctx)
	if err != nil {
		return c.writeError(ctx, http.StatusBadRequest, "invalid request body")
	}
	if err := req.Validate(); err != nil {
		return c.writeError(ctx, http.StatusBadRequest, err.Error())
	}

	result, err := c.paymentService.InitiatePayment(ctx.Request().Context(), req)
	if err != nil {
		return c.writeServiceError(ctx, err, "Initiate payment failed")
	}

	return ctx.JSON(http.StatusCreated, mapper.InitiationToResponse(result))
}

func (c *PaymentController) GetPayment(ctx echo.Context) error {
	req, err := types.NewGetPaymentRequestFromContext(ctx)
	if err != nil {
		return c.writeError(ctx, http.StatusBadRequest, "invalid request")
	}
	if err := req.Validate(); err != nil {
		return c.writeError(ctx, http.StatusBadRequest, err.Error())
	}

	item, err := c.paymentService.GetPayment(ctx.Request().Context(), req.GetId())
	if err != nil {
		return c.writeServiceError(ctx, err, "Get payment failed")
	}

	return ctx.JSON(http.StatusOK, &types.PaymentEnvelopeResponse{Payment: mapper.PaymentToResponse(item)})
}

func (c *PaymentController) ListPayments(ctx echo.Context) error {
	req, err := types.NewListPaymentsRequestFromContext(ctx)
	if err != nil {
		return c.writeError(ctx, http.StatusBadRequest, "invalid request")
	}
	if err := req.Validate(); err != nil {
		return c.writeError(ctx, http.StatusBadRequest, err.Error())
	}

	items, err := c.paymentService.ListPayments(ctx.Request().Context(), req)
	if err != nil {
		return c.writeServiceError(ctx, err, "List payments failed")
	}

	return ctx.JSON(http.StatusOK, &types.ListPaymentsResponse{Payments: mapper.PaymentsToResponse(items)})
}

// VerifyPayment is the JSON variant of CompletePayment for backends that
// relay the gateway callback themselves.
func (c *PaymentController) VerifyPayment(ctx echo.Context) error {
	req, err := types.NewVerifyPaymentRequestFromContext(ctx)
	if err != nil {
		return c.writeError(ctx, http.StatusBadRequest, "invalid request body")
	}
	if err := req.Validate(); err != nil {
		return c.writeError(ctx, http.StatusBadRequest, err.Error())
	}

	result, err := c.paymentService.VerifyPayment(ctx.Request().Context(), req)
	if err != nil {
		return c.writeServiceError(ctx, err, "Verify payment failed")
	}

	return ctx.JSON(http.StatusOK, mapper.VerificationToResponse(result, c.successLink(result.Payment.ID)))
}

func (c *PaymentController) RecordFailure(ctx echo.Context) error {
	req, err := types.NewRecordFailureRequestFromContext(ctx)
	if err != nil {
		return c.writeError(ctx, http.StatusBadRequest, "invalid request body")
	}
	if err := req.Validate(); err != nil {
		return c.writeError(ctx, http.StatusBadRequest, err.Error())
	}

	item, err := c.paymentService.RecordFailure(ctx.Request().Context(), req)
	if err != nil {
		return c.writeServiceError(ctx, err, "Record payment failure failed")
	}

	return ctx.JSON(http.StatusOK, &types.RecordFailureResponse{
		Success: true,
		Message: "Payment failure recorded",
		Payment: mapper.PaymentToResponse(item),
	})
}

// CompletePayment handles the gateway success redirect. Browsers get a
// receipt page, API clients asking for JSON get the verification result.
func (c *PaymentController) CompletePayment(ctx echo.Context) error {
	if wantsJSON(ctx) {
		return c.VerifyPayment(ctx)
	}

	req, err := types.NewVerifyPaymentRequestFromContext(ctx)
	if err != nil || req.Validate() != nil {
		return c.renderError(ctx, http.StatusBadRequest, "Payment Error", "Missing payment data. Please try again or contact support.")
	}

	result, err := c.paymentService.VerifyPayment(ctx.Request().Context(), req)
	if err != nil {
		status, _ := statusForKind(service.KindOf(err))
		if status == http.StatusInternalServerError {
			factory.LoggerWithContext(c.logger, ctx).WithError(err).Error("Complete payment failed")
		}
		title, message := pageTextForError(err)
		return c.renderError(ctx, status, title, message)
	}

	payment := result.Payment
	page := &view.ReceiptPage{
		Success:         true,
		Amount:          payment.Amount.StringFixed(2),
		TransactionCode: result.TransactionCode,
		PropertyTitle:   result.PropertyTitle,
		Address:         result.Address,
		DeepLink:        template.URL(c.successLink(payment.ID)),
	}

	if result.AlreadyProcessed {
		page.Title = "Payment Already Processed"
		page.Date = formatPageDate(payment.PaymentDate)
		return ctx.Render(http.StatusOK, view.PageAlreadyProcessed, page)
	}

	page.Title = "Payment Successful"
	page.Date = formatPageDate(time.Now())
	return ctx.Render(http.StatusOK, view.PageSuccess, page)
}

// PaymentFailed handles the gateway failure redirect and app failure reports.
func (c *PaymentController) PaymentFailed(ctx echo.Context) error {
	if !wantsHTML(ctx) {
		return c.RecordFailure(ctx)
	}

	req, err := types.NewRecordFailureRequestFromContext(ctx)
	if err != nil || req.Validate() != nil {
		return c.renderError(ctx, http.StatusBadRequest, "Payment Failed", "Payment ID is required.")
	}

	if _, err := c.paymentService.RecordFailure(ctx.Request().Context(), req); err != nil {
		status, _ := statusForKind(service.KindOf(err))
		if status == http.StatusInternalServerError {
			factory.LoggerWithContext(c.logger, ctx).WithError(err).Error("Record payment failure failed")
		}
		title, message := pageTextForError(err)
		return c.renderError(ctx, status, title, message)
	}

	return c.renderError(ctx, http.StatusOK, "Payment Failed", "Your payment was not completed and no money was taken for this booking.")
}

// MobilePaymentBridge serves a page that posts the signed gateway form from
// the browser, for mobile clients that cannot post it themselves.
func (c *PaymentController) MobilePaymentBridge(ctx echo.Context) error {
	req := types.NewBridgeRequestFromContext(ctx)
	if err := req.Validate(); err != nil {
		return c.renderError(ctx, http.StatusBadRequest, "Payment Error", err.Error())
	}

	form := c.bridge.BridgeForm(&gateway.BridgeInput{
		Amount:           req.Amount,
		Reference:        req.Pid,
		ProductCode:      req.Scd,
		Signature:        req.Signature,
		SignedFieldNames: req.SignedFieldNames,
	})

	return ctx.Render(http.StatusOK, view.PageBridge, &view.BridgePage{ActionURL: form.ActionURL, Fields: form.Fields})
}

func (c *PaymentController) successLink(paymentID uint64) string {
	return mapper.SuccessDeepLink(c.deepLink, paymentID)
}

func (c *PaymentController) renderError(ctx echo.Context, statusCode int, title, message string) error {
	return ctx.Render(statusCode, view.PageError, &view.ReceiptPage{
		Title:    title,
		Message:  message,
		DeepLink: template.URL(mapper.ErrorDeepLink(c.deepLink)),
	})
}

func (c *PaymentController) writeServiceError(ctx echo.Context, err error, logMessage string) error {
	kind := service.KindOf(err)
	statusCode, code := statusForKind(kind)
	if statusCode == http.StatusInternalServerError {
		factory.LoggerWithContext(c.logger, ctx).WithError(err).Error(logMessage)
		return ctx.JSON(statusCode, &types.ErrorResponse{Error: "internal server error", Code: code})
	}
	return ctx.JSON(statusCode, &types.ErrorResponse{Error: err.Error(), Code: code})
}

func (c *PaymentController) writeError(ctx echo.Context, statusCode int, message string) error {
	return ctx.JSON(statusCode, &types.ErrorResponse{Error: message, Code: service.KindValidation.String()})
}

func statusForKind(kind service.ErrorKind) (int, string) {
	switch kind {
	case service.KindValidation, service.KindMalformed, service.KindVerification:
		return http.StatusBadRequest, kind.String()
	case service.KindNotFound:
		return http.StatusNotFound, kind.String()
	case service.KindConflict:
		return http.StatusConflict, kind.String()
	default:
		return http.StatusInternalServerError, kind.String()
	}
}

func pageTextForError(err error) (string, string) {
	switch {
	case errors.Is(err, service.ErrMissingData):
		return "Payment Error", "Missing payment data. Please try again or contact support."
	case errors.Is(err, service.ErrMalformedPayload), errors.Is(err, service.ErrVerificationFailed):
		return "Payment Verification Failed", "We couldn't verify your payment with eSewa. Please contact support."
	case errors.Is(err, service.ErrInvalidReference):
		return "Invalid Payment ID", "The payment reference is invalid. Please contact support."
	case errors.Is(err, service.ErrPaymentNotFound):
		return "Payment Not Found", "We couldn't find your payment record. Please contact support."
	case errors.Is(err, service.ErrGatewayNotComplete):
		return "Payment Not Completed", "eSewa has not confirmed this payment yet."
	case errors.Is(err, service.ErrAmountMismatch):
		return "Payment Error", "The paid amount does not match this payment. Please contact support."
	case errors.Is(err, service.ErrPaymentAlreadyFailed):
		return "Payment Error", "This payment was already marked as failed. Please contact support."
	case errors.Is(err, service.ErrPaymentAlreadyCompleted):
		return "Payment Already Processed", "This payment was already completed successfully."
	default:
		return "Payment Error", "There was an error processing your payment."
	}
}

func wantsJSON(ctx echo.Context) bool {
	return strings.Contains(ctx.Request().Header.Get(echo.HeaderAccept), echo.MIMEApplicationJSON)
}

func wantsHTML(ctx echo.Context) bool {
	accept := ctx.Request().Header.Get(echo.HeaderAccept)
	return strings.Contains(accept, echo.MIMETextHTML) && !strings.Contains(accept, echo.MIMEApplicationJSON)
}

func formatPageDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("Jan 2, 2006 3:04 PM")
}
