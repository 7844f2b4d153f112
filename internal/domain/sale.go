package domain

import "github.com/shopspring/decimal"

// SalesSummary agrega receita e quantidade de registros de um único canal
// para um período. Produzido a cada consulta e nunca reutilizado.
type SalesSummary struct {
	Revenue decimal.Decimal
	Count   int
	Period  Period
}

// ProductSummary agrega quantidade e receita dos itens de linha cujo título
// contém o termo buscado (case-insensitive), em um único canal.
type ProductSummary struct {
	Product  string
	Quantity int
	Revenue  decimal.Decimal
	Period   Period
}

// RestaurantSales são os valores lidos da planilha do restaurante para o
// relatório diário.
type RestaurantSales struct {
	Yesterday   decimal.Decimal
	MonthToDate decimal.Decimal
}

// SupplierInvoice é uma linha de fatura em aberto na planilha de fornecedores.
type SupplierInvoice struct {
	Date    string
	Invoice string
	Amount  decimal.Decimal
	Due     string
	Balance decimal.Decimal
}

// SupplierOutstanding é o saldo em aberto de um fornecedor.
type SupplierOutstanding struct {
	Supplier     string
	TotalBalance decimal.Decimal
	TotalDue     decimal.Decimal
	Invoices     []SupplierInvoice
}

// MailMessage é o resultado resumido de uma busca em caixa de entrada.
type MailMessage struct {
	Subject string
	From    string
	Date    string
	Link    string
}
