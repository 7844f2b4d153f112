// Package render monta todas as respostas de texto enviadas ao usuário.
// Funções puras: recebem agregados prontos e devolvem strings, sem I/O.
package render

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/svfproducts/sales-insights-bot/internal/domain"
)

// Rótulos fixos de canal usados nas respostas
const (
	OnlineLabel = "Online (Shopify)"
	RetailLabel = "Retail (Flour Cloud)"
)

// Rótulos de contagem: pedidos no canal online, transações no varejo
const (
	OrdersLabel       = "Orders"
	TransactionsLabel = "Transactions"
)

const HelpText = "I can answer questions like:\n" +
	"• What were my sales today?\n" +
	"• Retail sales yesterday?\n" +
	"• Compare online and retail last week\n" +
	"• Total sales this month?\n" +
	"• How much basmati rice did I sell this week?\n" +
	"• Mishti sales yesterday online and retail?\n" +
	"• Find invoice from TRS\n" +
	"• Any email about the Ashoka delivery?"

const CompanyInfo = "SVF Products GmbH\n" +
	"Tempelhofer Damm 206, 12099 Berlin\n" +
	"www.spicevillage.eu\n" +
	"\n" +
	"Email: svfproducts@spicevillage.eu\n" +
	"Invoices: invoices@spicevillage.eu\n" +
	"Phone: +49 30 8965 7586\n" +
	"PayPal: svfproducts@spicevillage.eu\n" +
	"\n" +
	"Tax Nr: 29/553/32289\n" +
	"VAT: DE363532317\n" +
	"Handelsregister: Charlottenburg HRB 256768 B\n" +
	"EORI: DE260532672959166\n" +
	"\n" +
	"Managing Directors: Nikunj Patel, Alpa Parikh\n" +
	"\n" +
	"IBAN: DE38100101237197421588\n" +
	"BIC: QNTODEB2XXX"

const (
	SupplierPrompt = "Which supplier? e.g. \"What do we owe Transfood?\""
	SearchPrompt   = "What should I search for? Try: \"find invoice from TRS\" or \"email about delivery\"."
	Ack            = "Checking..."
)

// printer formata valores monetários com separador de milhar no padrão
// inglês, independente do locale do host
var printer = message.NewPrinter(language.English)

func euro(value decimal.Decimal) string {
	return printer.Sprintf("€%.2f", value.InexactFloat64())
}

// Misunderstood é a resposta quando o classificador de intenção falha.
func Misunderstood() string {
	return "Sorry, I had trouble understanding that.\n\n" + HelpText
}

// FetchError é a resposta quando alguma fonte de dados falha após a
// classificação bem-sucedida.
func FetchError(err error) string {
	return fmt.Sprintf("Couldn't fetch data: %v", err)
}

// PeriodSales formata o total de vendas de um único canal.
func PeriodSales(summary *domain.SalesSummary, channelLabel, countLabel string) string {
	return fmt.Sprintf("%s — %s\nRevenue: %s\n%s: %d",
		channelLabel, summary.Period.Label(), euro(summary.Revenue), countLabel, summary.Count)
}

// ProductSales formata as vendas de um produto em um único canal. O rótulo
// de canal vazio corresponde ao canal padrão (online) e é omitido.
func ProductSales(summary *domain.ProductSummary, channelLabel string) string {
	label := summary.Period.Label()

	if summary.Quantity == 0 {
		channelNote := ""
		if channelLabel != "" {
			channelNote = " on " + channelLabel
		}
		return fmt.Sprintf("No sales found for %q %s%s.", summary.Product, label, channelNote)
	}

	prefix := ""
	if channelLabel != "" {
		prefix = channelLabel + " — "
	}
	return fmt.Sprintf("%s%q — %s\nRevenue: %s\nUnits sold: %d",
		prefix, summary.Product, label, euro(summary.Revenue), summary.Quantity)
}

// ProductCrossChannel formata as vendas de um produto somadas nos dois canais.
func ProductCrossChannel(combined *domain.CombinedProductSales) string {
	label := combined.Period.Label()

	if combined.NoSales {
		return fmt.Sprintf("No sales found for %q %s on either channel.", combined.Product, label)
	}

	return fmt.Sprintf(
		"%q — %s\n"+
			"\n"+
			"Online (Shopify):     %s  |  Units: %d\n"+
			"Retail (Flour Cloud): %s  |  Units: %d\n"+
			"\n"+
			"Combined: %s  |  Units: %d",
		combined.Product, label,
		euro(combined.Online.Revenue), combined.Online.Quantity,
		euro(combined.Retail.Revenue), combined.Retail.Quantity,
		euro(combined.Revenue), combined.Quantity)
}

// Compare formata os dois canais lado a lado com o total combinado.
func Compare(combined *domain.CombinedSales) string {
	return fmt.Sprintf(
		"Sales comparison — %s\n"+
			"\n"+
			"Online (Shopify)\n"+
			"  Revenue: %s  |  Orders: %d\n"+
			"\n"+
			"Retail (Flour Cloud)\n"+
			"  Revenue: %s  |  Transactions: %d\n"+
			"\n"+
			"Combined total: %s",
		combined.Period.Label(),
		euro(combined.Online.Revenue), combined.Online.Count,
		euro(combined.Retail.Revenue), combined.Retail.Count,
		euro(combined.Total))
}

// Total formata o total combinado com o detalhamento por canal.
func Total(combined *domain.CombinedSales) string {
	return fmt.Sprintf(
		"Total sales — %s\n"+
			"Combined: %s\n"+
			"  Online: %s (%d orders)\n"+
			"  Retail: %s (%d transactions)",
		combined.Period.Label(),
		euro(combined.Total),
		euro(combined.Online.Revenue), combined.Online.Count,
		euro(combined.Retail.Revenue), combined.Retail.Count)
}

// SupplierOutstanding formata o saldo em aberto de um fornecedor, separando
// faturas não pagas de notas de crédito não aplicadas.
func SupplierOutstanding(data *domain.SupplierOutstanding) string {
	lines := []string{
		data.Supplier + " — Outstanding",
		"",
		"Total balance:  " + euro(data.TotalBalance),
		"Overdue:        " + euro(data.TotalDue),
		"",
	}

	var outstanding, credits []domain.SupplierInvoice
	for _, inv := range data.Invoices {
		switch {
		case inv.Balance.IsPositive():
			outstanding = append(outstanding, inv)
		case inv.Balance.IsNegative():
			credits = append(credits, inv)
		}
	}

	if len(outstanding) > 0 {
		lines = append(lines, "Unpaid invoices:")
		for _, inv := range outstanding {
			lines = append(lines, fmt.Sprintf("  %-14s  %s  Due %s  Balance: %s",
				inv.Invoice, inv.Date, inv.Due, euro(inv.Balance)))
		}
	}

	if len(credits) > 0 {
		lines = append(lines, "", "Unapplied credit notes:")
		for _, inv := range credits {
			lines = append(lines, fmt.Sprintf("  %-14s  %s  %s",
				inv.Invoice, inv.Date, euro(inv.Balance)))
		}
	}

	return strings.Join(lines, "\n")
}

// GmailResults formata os resultados de busca de todas as caixas. A ordem
// das caixas é a de configuração, não a do mapa.
func GmailResults(results map[string][]domain.MailMessage, inboxes []string, query string) string {
	found := false
	for _, messages := range results {
		if len(messages) > 0 {
			found = true
			break
		}
	}
	if !found {
		return fmt.Sprintf("No emails found matching %q across all inboxes.", query)
	}

	lines := []string{fmt.Sprintf("Gmail search: %q\n", query)}
	for _, inbox := range inboxes {
		messages := results[inbox]
		if len(messages) == 0 {
			continue
		}
		lines = append(lines, inbox)
		for _, msg := range messages {
			lines = append(lines,
				fmt.Sprintf("  %s  %s", msg.Date, msg.From),
				"  "+msg.Subject,
				"  "+msg.Link,
				"")
		}
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// DigestData são os cinco valores do briefing diário. Ponteiro nil marca a
// fonte que continuou indisponível depois de esgotadas as tentativas.
type DigestData struct {
	RetailYesterday *domain.SalesSummary
	OnlineYesterday *domain.SalesSummary
	RetailMonth     *domain.SalesSummary
	OnlineMonth     *domain.SalesSummary
	Restaurant      *domain.RestaurantSales

	YesterdayLabel string
	MonthLabel     string
}

const unavailableCell = "      unavailable"

func digestCell(summary *domain.SalesSummary) string {
	if summary == nil {
		return unavailableCell
	}
	return printer.Sprintf("€%10.2f", summary.Revenue.InexactFloat64())
}

func restaurantCell(restaurant *domain.RestaurantSales, value func(*domain.RestaurantSales) decimal.Decimal) string {
	if restaurant == nil {
		return unavailableCell
	}
	return printer.Sprintf("€%10.2f", value(restaurant).InexactFloat64())
}

// DailyDigest formata o briefing matinal com valores alinhados à direita.
func DailyDigest(data DigestData) string {
	return fmt.Sprintf(
		"Good morning! Daily Sales Briefing\n"+
			"\n"+
			"Yesterday (%s)\n"+
			"  Retail      %s\n"+
			"  Online      %s\n"+
			"  Restaurant  %s\n"+
			"\n"+
			"Month to Date (%s)\n"+
			"  Retail      %s\n"+
			"  Online      %s\n"+
			"  Restaurant  %s",
		data.YesterdayLabel,
		digestCell(data.RetailYesterday),
		digestCell(data.OnlineYesterday),
		restaurantCell(data.Restaurant, func(r *domain.RestaurantSales) decimal.Decimal { return r.Yesterday }),
		data.MonthLabel,
		digestCell(data.RetailMonth),
		digestCell(data.OnlineMonth),
		restaurantCell(data.Restaurant, func(r *domain.RestaurantSales) decimal.Decimal { return r.MonthToDate }))
}
