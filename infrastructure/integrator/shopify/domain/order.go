package shopifydomain

// Status financeiros que excluem um pedido das agregações. A filtragem por
// status do lado do servidor não é totalmente confiável, então o cliente
// refaz a exclusão localmente.
const (
	FinancialStatusRefunded = "refunded"
	FinancialStatusVoided   = "voided"
)

// Order é um pedido como retornado pela Admin API do Shopify. Consumido
// apenas dentro do integrador; nunca exposto além da agregação.
type Order struct {
	ID              int64      `json:"id"`
	CreatedAt       string     `json:"created_at"`
	FinancialStatus string     `json:"financial_status"`
	TotalPrice      string     `json:"total_price"`
	Currency        string     `json:"currency,omitempty"`
	LineItems       []LineItem `json:"line_items"`
}

// LineItem é um item de linha de um pedido
type LineItem struct {
	Title    string `json:"title"`
	Quantity int    `json:"quantity"`
	Price    string `json:"price"`
}

// IsExcluded informa se o pedido deve ficar fora das agregações
func (o Order) IsExcluded() bool {
	return o.FinancialStatus == FinancialStatusRefunded ||
		o.FinancialStatus == FinancialStatusVoided
}
