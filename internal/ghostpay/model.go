package ghostpay

import "encoding/json"

type WebhookRequest struct {
	PaymentID     string    `json:"paymentId"`
	Status        string    `json:"status"`
	PaymentMethod string    `json:"paymentMethod"`
	TotalValue    float64   `json:"totalValue"`
	CheckoutURL   string    `json:"checkoutUrl"`
	PixQrCode     string    `json:"pixQrCode"`
	Customer      *Customer `json:"customer" validate:"required"`
}

type Customer struct {
	Name     string `json:"name"`
	Phone    string `json:"phone" validate:"required"`
	Email    string `json:"email"`
	Document string `json:"document"`
}

type WebhookResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

var requiredFields = []string{"paymentId", "status", "paymentMethod", "customer", "totalValue"}

// MissingFields devolve os campos obrigatórios ausentes no corpo recebido,
// na ordem do contrato da GhostPay.
func MissingFields(raw map[string]json.RawMessage) []string {
	var missing []string
	for _, field := range requiredFields {
		if _, ok := raw[field]; !ok {
			missing = append(missing, field)
		}
	}
	return missing
}
