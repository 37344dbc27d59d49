package duckfy

import "encoding/json"

type WebhookRequest struct {
	Token       string       `json:"token"`
	Transaction *Transaction `json:"transaction" validate:"required"`
	Client      *Client      `json:"client" validate:"required"`
	OrderItems  []OrderItem  `json:"orderItems"`
}

type Transaction struct {
	ID            string  `json:"id"`
	Status        string  `json:"status"`
	PaymentMethod string  `json:"paymentMethod"`
	Amount        float64 `json:"amount"`
	Currency      string  `json:"currency"`
	CheckoutURL   string  `json:"checkoutUrl"`
	PaymentLink   string  `json:"paymentLink"`
}

type Client struct {
	Name     string `json:"name"`
	Phone    string `json:"phone" validate:"required"`
	Email    string `json:"email"`
	Document string `json:"document"`
}

type OrderItem struct {
	Product *Product `json:"product"`
}

type Product struct {
	Name string `json:"name"`
}

type WebhookResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

var requiredTransactionFields = []string{"id", "status", "paymentMethod", "amount"}

// MissingTransactionFields devolve os campos obrigatórios ausentes no objeto
// transaction. O segundo retorno indica se o objeto tem a estrutura esperada.
func MissingTransactionFields(raw json.RawMessage) ([]string, bool) {
	var transaction map[string]json.RawMessage
	if err := json.Unmarshal(raw, &transaction); err != nil || transaction == nil {
		return nil, false
	}

	var missing []string
	for _, field := range requiredTransactionFields {
		if _, ok := transaction[field]; !ok {
			missing = append(missing, field)
		}
	}
	return missing, true
}

// ProductName devolve o nome do produto do primeiro item do pedido, quando presente.
func (r WebhookRequest) ProductName() string {
	if len(r.OrderItems) > 0 && r.OrderItems[0].Product != nil {
		return r.OrderItems[0].Product.Name
	}
	return ""
}
