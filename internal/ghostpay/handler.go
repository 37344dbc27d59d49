package ghostpay

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"pixreminder/validation"
	"strings"

	"github.com/labstack/echo/v4"
)

type Handler struct {
	InterfaceService InterfaceService
}

func NewGhostpayHandler(InterfaceService InterfaceService) *Handler {
	return &Handler{
		InterfaceService,
	}
}

// WebhookHandler godoc
// @Summary Processar Webhook da GhostPay
// @Description Recebe eventos de pagamento da GhostPay e dispara lembrete por SMS para PIX pendente.
// @Tags Webhooks
// @Accept json
// @Produce json
// @Success 200 {object} WebhookResponse "Evento processado"
// @Failure 400 {object} WebhookResponse "Requisição Inválida"
// @Failure 500 {object} WebhookResponse "Erro Interno do Servidor"
// @Router /webhook/ghostpay [post]
func (h *Handler) WebhookHandler(c echo.Context) error {
	// TODO: validar assinatura do webhook quando a GhostPay documentar o header.
	jsonData, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return c.JSON(http.StatusBadRequest, WebhookResponse{Status: "error", Message: "Invalid request body"})
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(jsonData, &raw); err != nil {
		log.Printf("GhostPay: corpo não é JSON válido: %v", err)
		return c.JSON(http.StatusBadRequest, WebhookResponse{Status: "error", Message: "Invalid JSON format"})
	}

	if missing := MissingFields(raw); len(missing) > 0 {
		msg := fmt.Sprintf("Missing required fields: %s", strings.Join(missing, ", "))
		log.Printf("GhostPay: %s", msg)
		return c.JSON(http.StatusBadRequest, WebhookResponse{Status: "error", Message: msg})
	}

	var request WebhookRequest
	if err := json.Unmarshal(jsonData, &request); err != nil {
		log.Printf("GhostPay: corpo com tipos inesperados: %v", err)
		return c.JSON(http.StatusBadRequest, WebhookResponse{Status: "error", Message: "Invalid JSON format"})
	}

	if err := validation.Validate(request); err != nil {
		log.Printf("GhostPay: pagamento %s com dados de cliente inválidos: %v", request.PaymentID, err)
		return c.JSON(http.StatusBadRequest, WebhookResponse{Status: "error", Message: "Customer phone number missing or customer data invalid"})
	}

	result, err := h.InterfaceService.ProcessWebhook(c.Request().Context(), request)
	if err != nil {
		if errors.Is(err, ErrInvalidPhone) {
			return c.JSON(http.StatusBadRequest, WebhookResponse{Status: "error", Message: "Invalid phone number format for SMS sending after internal formatting."})
		}
		return c.JSON(http.StatusInternalServerError, WebhookResponse{Status: "error", Message: "Failed to send SMS reminder."})
	}

	return c.JSON(http.StatusOK, result)
}
