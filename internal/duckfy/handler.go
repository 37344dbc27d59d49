package duckfy

import (
	"crypto/subtle"
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
	webhookToken     string
}

func NewDuckfyHandler(InterfaceService InterfaceService, webhookToken string) *Handler {
	return &Handler{
		InterfaceService: InterfaceService,
		webhookToken:     webhookToken,
	}
}

// WebhookHandler godoc
// @Summary Processar Webhook da Duckfy
// @Description Recebe eventos de transação da Duckfy e dispara lembrete por SMS para PIX pendente.
// @Tags Webhooks
// @Accept json
// @Produce json
// @Success 200 {object} WebhookResponse "Evento processado"
// @Failure 400 {object} WebhookResponse "Requisição Inválida"
// @Failure 403 {object} WebhookResponse "Token Inválido"
// @Failure 500 {object} WebhookResponse "Erro Interno do Servidor"
// @Router /webhook/duckfy [post]
func (h *Handler) WebhookHandler(c echo.Context) error {
	jsonData, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return c.JSON(http.StatusBadRequest, WebhookResponse{Status: "error", Message: "Invalid request body"})
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(jsonData, &raw); err != nil {
		log.Printf("Duckfy: corpo não é JSON válido: %v", err)
		return c.JSON(http.StatusBadRequest, WebhookResponse{Status: "error", Message: "Invalid JSON format"})
	}

	if h.webhookToken != "" {
		var receivedToken string
		_ = json.Unmarshal(raw["token"], &receivedToken)
		if subtle.ConstantTimeCompare([]byte(receivedToken), []byte(h.webhookToken)) != 1 {
			log.Println("Duckfy: token inválido recebido.")
			return c.JSON(http.StatusForbidden, WebhookResponse{Status: "error", Message: "Invalid token"})
		}
	}

	missingTx, txOK := MissingTransactionFields(raw["transaction"])

	var clientObj map[string]json.RawMessage
	clientOK := json.Unmarshal(raw["client"], &clientObj) == nil && clientObj != nil

	if !txOK || !clientOK {
		log.Println("Duckfy: estrutura de transaction ou client ausente ou inválida.")
		return c.JSON(http.StatusBadRequest, WebhookResponse{Status: "error", Message: "Missing or invalid transaction or client data structure"})
	}

	if len(missingTx) > 0 {
		msg := fmt.Sprintf("Missing transaction fields: %s", strings.Join(missingTx, ", "))
		log.Printf("Duckfy: %s", msg)
		return c.JSON(http.StatusBadRequest, WebhookResponse{Status: "error", Message: msg})
	}

	var request WebhookRequest
	if err := json.Unmarshal(jsonData, &request); err != nil {
		log.Printf("Duckfy: corpo com tipos inesperados: %v", err)
		return c.JSON(http.StatusBadRequest, WebhookResponse{Status: "error", Message: "Invalid JSON format"})
	}

	if err := validation.Validate(request); err != nil {
		log.Printf("Duckfy: transação %s sem telefone do cliente: %v", request.Transaction.ID, err)
		return c.JSON(http.StatusBadRequest, WebhookResponse{Status: "error", Message: "Client phone number missing"})
	}

	result, err := h.InterfaceService.ProcessWebhook(c.Request().Context(), request)
	if err != nil {
		if errors.Is(err, ErrInvalidPhone) {
			return c.JSON(http.StatusBadRequest, WebhookResponse{Status: "error", Message: "Invalid phone number format for SMS sending."})
		}
		return c.JSON(http.StatusInternalServerError, WebhookResponse{Status: "error", Message: "Failed to send SMS reminder."})
	}

	return c.JSON(http.StatusOK, result)
}
