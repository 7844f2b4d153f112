package domain

// Intent é a intenção estruturada devolvida pelo classificador de mensagens
type Intent string

const (
	IntentSalesByPeriod       Intent = "sales_by_period"
	IntentSalesByProduct      Intent = "sales_by_product"
	IntentGmailSearch         Intent = "gmail_search"
	IntentCompanyInfo         Intent = "company_info"
	IntentSupplierOutstanding Intent = "supplier_outstanding"
	IntentUnknown             Intent = "unknown"
)

// Channel seleciona qual(is) canal(is) de venda uma consulta abrange
type Channel string

const (
	ChannelOnline  Channel = "online"
	ChannelRetail  Channel = "retail"
	ChannelTotal   Channel = "total"
	ChannelCompare Channel = "compare"
)

// ParsedIntent é o resultado da classificação de uma mensagem livre.
// Period e Channel ausentes recebem os defaults (today / online) em quem
// consome, não aqui.
type ParsedIntent struct {
	Intent      Intent  `json:"intent"`
	Period      string  `json:"period"`
	Channel     Channel `json:"channel"`
	Product     string  `json:"product"`
	SearchQuery string  `json:"search_query"`
}
