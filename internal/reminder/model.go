package reminder

const defaultProductName = "seu produto/serviço"

// Reminder carrega os dados necessários para montar o SMS de cobrança
// de um PIX pendente, independente do provedor que originou o evento.
type Reminder struct {
	Provider     string
	ReferenceID  string
	CustomerName string
	Phone        string
	ProductName  string
	CheckoutLink string
}
