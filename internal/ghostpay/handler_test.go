package ghostpay

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"pixreminder/internal/reminder"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

type fakeReminder struct {
	calls []reminder.Reminder
	err   error
}

func (f *fakeReminder) SendPendingPix(_ context.Context, data reminder.Reminder) error {
	f.calls = append(f.calls, data)
	return f.err
}

func postWebhook(t *testing.T, h *Handler, body string) (int, WebhookResponse) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/webhook/ghostpay", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	if err := h.WebhookHandler(e.NewContext(req, rec)); err != nil {
		t.Fatalf("WebhookHandler: %v", err)
	}

	var resp WebhookResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("resposta não é JSON: %v (%s)", err, rec.Body.String())
	}
	return rec.Code, resp
}

func TestWebhookHandlerPendingPix(t *testing.T) {
	fake := &fakeReminder{}
	h := NewGhostpayHandler(NewGhostpayService(fake))

	code, resp := postWebhook(t, h, `{
		"paymentId": "pay_123",
		"status": "PENDING",
		"paymentMethod": "PIX",
		"totalValue": 49.9,
		"checkoutUrl": "https://pay.example/abc",
		"customer": {"name": "Maria", "phone": "11999999999"}
	}`)

	if code != http.StatusOK {
		t.Fatalf("code = %d, want 200", code)
	}
	if resp.Status != "success" || resp.Message != "SMS reminder sent for pending PIX." {
		t.Errorf("resposta inesperada: %+v", resp)
	}
	if len(fake.calls) != 1 {
		t.Fatalf("esperava 1 lembrete, teve %d", len(fake.calls))
	}
	call := fake.calls[0]
	if call.Phone != "+5511999999999" {
		t.Errorf("Phone = %q", call.Phone)
	}
	if call.CustomerName != "Maria" || call.CheckoutLink != "https://pay.example/abc" || call.ReferenceID != "pay_123" {
		t.Errorf("lembrete inesperado: %+v", call)
	}
}

func TestWebhookHandlerDefaults(t *testing.T) {
	fake := &fakeReminder{}
	h := NewGhostpayHandler(NewGhostpayService(fake))

	code, _ := postWebhook(t, h, `{
		"paymentId": "pay_124",
		"status": "PENDING",
		"paymentMethod": "PIX",
		"totalValue": 10,
		"pixQrCode": "https://pix.example/qr",
		"customer": {"phone": "+5511988887777"}
	}`)

	if code != http.StatusOK {
		t.Fatalf("code = %d, want 200", code)
	}
	call := fake.calls[0]
	if call.CustomerName != "Cliente" {
		t.Errorf("CustomerName = %q, want Cliente", call.CustomerName)
	}
	if call.CheckoutLink != "https://pix.example/qr" {
		t.Errorf("CheckoutLink = %q, want pixQrCode", call.CheckoutLink)
	}
}

func TestWebhookHandlerApprovedNoop(t *testing.T) {
	fake := &fakeReminder{}
	h := NewGhostpayHandler(NewGhostpayService(fake))

	code, resp := postWebhook(t, h, `{
		"paymentId": "pay_125",
		"status": "APPROVED",
		"paymentMethod": "CREDIT_CARD",
		"totalValue": 99.9,
		"customer": {"name": "Joana", "phone": "11999999999"}
	}`)

	if code != http.StatusOK {
		t.Fatalf("code = %d, want 200", code)
	}
	if resp.Status != "success" || resp.Message != "Payment APPROVED, no reminder needed." {
		t.Errorf("resposta inesperada: %+v", resp)
	}
	if len(fake.calls) != 0 {
		t.Errorf("não deveria enviar SMS, enviou %d", len(fake.calls))
	}
}

func TestWebhookHandlerIgnored(t *testing.T) {
	fake := &fakeReminder{}
	h := NewGhostpayHandler(NewGhostpayService(fake))

	code, resp := postWebhook(t, h, `{
		"paymentId": "pay_126",
		"status": "REFUSED",
		"paymentMethod": "PIX",
		"totalValue": 10,
		"customer": {"phone": "11999999999"}
	}`)

	if code != http.StatusOK {
		t.Fatalf("code = %d, want 200", code)
	}
	if resp.Status != "ignored" {
		t.Errorf("Status = %q, want ignored", resp.Status)
	}
	if len(fake.calls) != 0 {
		t.Errorf("não deveria enviar SMS, enviou %d", len(fake.calls))
	}
}

func TestWebhookHandlerMissingFields(t *testing.T) {
	h := NewGhostpayHandler(NewGhostpayService(&fakeReminder{}))

	code, resp := postWebhook(t, h, `{"status": "PENDING"}`)

	if code != http.StatusBadRequest {
		t.Fatalf("code = %d, want 400", code)
	}
	want := "Missing required fields: paymentId, paymentMethod, customer, totalValue"
	if resp.Message != want {
		t.Errorf("Message = %q, want %q", resp.Message, want)
	}
}

func TestWebhookHandlerCustomerInvalid(t *testing.T) {
	h := NewGhostpayHandler(NewGhostpayService(&fakeReminder{}))

	code, resp := postWebhook(t, h, `{
		"paymentId": "pay_127",
		"status": "PENDING",
		"paymentMethod": "PIX",
		"totalValue": 10,
		"customer": {"name": "Sem Telefone"}
	}`)

	if code != http.StatusBadRequest {
		t.Fatalf("code = %d, want 400", code)
	}
	if resp.Message != "Customer phone number missing or customer data invalid" {
		t.Errorf("Message = %q", resp.Message)
	}
}

func TestWebhookHandlerInvalidPhone(t *testing.T) {
	h := NewGhostpayHandler(NewGhostpayService(&fakeReminder{}))

	code, resp := postWebhook(t, h, `{
		"paymentId": "pay_128",
		"status": "PENDING",
		"paymentMethod": "PIX",
		"totalValue": 10,
		"customer": {"phone": "123"}
	}`)

	if code != http.StatusBadRequest {
		t.Fatalf("code = %d, want 400", code)
	}
	if resp.Status != "error" {
		t.Errorf("Status = %q, want error", resp.Status)
	}
}

func TestWebhookHandlerSMSFailure(t *testing.T) {
	fake := &fakeReminder{err: errors.New("twilio fora do ar")}
	h := NewGhostpayHandler(NewGhostpayService(fake))

	code, resp := postWebhook(t, h, `{
		"paymentId": "pay_129",
		"status": "PENDING",
		"paymentMethod": "PIX",
		"totalValue": 10,
		"customer": {"phone": "11999999999"}
	}`)

	if code != http.StatusInternalServerError {
		t.Fatalf("code = %d, want 500", code)
	}
	if resp.Message != "Failed to send SMS reminder." {
		t.Errorf("Message = %q", resp.Message)
	}
}

func TestWebhookHandlerInvalidJSON(t *testing.T) {
	h := NewGhostpayHandler(NewGhostpayService(&fakeReminder{}))

	code, resp := postWebhook(t, h, `nao é json`)

	if code != http.StatusBadRequest {
		t.Fatalf("code = %d, want 400", code)
	}
	if resp.Message != "Invalid JSON format" {
		t.Errorf("Message = %q", resp.Message)
	}
}
