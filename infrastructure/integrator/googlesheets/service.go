package googlesheets

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/svfproducts/sales-insights-bot/infrastructure/integrator/googlesheets/googlesheetsclient"
	"github.com/svfproducts/sales-insights-bot/internal/config"
	"github.com/svfproducts/sales-insights-bot/internal/domain"
)

// SheetsIntegrator lê as duas planilhas operacionais: vendas do restaurante
// e faturas de fornecedores.
type SheetsIntegrator interface {
	RestaurantSales(ctx context.Context) (*domain.RestaurantSales, error)
	SupplierOutstanding(ctx context.Context, supplier string) (*domain.SupplierOutstanding, error)
}

// SupplierNotFoundError indica que nenhuma aba da planilha casou com o nome
// pedido. A mensagem é mostrada ao usuário como está.
type SupplierNotFoundError struct {
	Query string
}

func (e *SupplierNotFoundError) Error() string {
	return fmt.Sprintf("No supplier tab found matching '%s'", e.Query)
}

type Service struct {
	cfg      *config.Config
	Client   googlesheetsclient.Client
	location *time.Location
	now      func() time.Time
}

func New(cfg *config.Config, client googlesheetsclient.Client, loc *time.Location) SheetsIntegrator {
	return &Service{
		cfg:      cfg,
		Client:   client,
		location: loc,
		now:      time.Now,
	}
}

// RestaurantSales lê a aba mensal da planilha do restaurante. Na virada de
// mês o valor de ontem vem da aba do mês anterior e o acumulado da aba atual.
func (s *Service) RestaurantSales(ctx context.Context) (*domain.RestaurantSales, error) {
	now := s.now().In(s.location)
	yesterday := now.AddDate(0, 0, -1)

	yesterdayTab := yesterday.Format("January 2006")
	monthTab := now.Format("January 2006")
	yesterdayDate := yesterday.Format("02/01/2006")

	yesterdayResult, err := s.fetchRestaurantTab(ctx, yesterdayTab, yesterdayDate)
	if err != nil {
		return nil, err
	}

	monthToDate := yesterdayResult.monthToDate
	if yesterdayTab != monthTab {
		monthResult, err := s.fetchRestaurantTab(ctx, monthTab, "")
		if err != nil {
			return nil, err
		}
		monthToDate = monthResult.monthToDate
	}

	logrus.WithFields(logrus.Fields{
		"yesterday":     yesterdayResult.daily.String(),
		"month_to_date": monthToDate.String(),
	}).Info("Vendas do restaurante lidas da planilha")

	return &domain.RestaurantSales{
		Yesterday:   yesterdayResult.daily,
		MonthToDate: monthToDate,
	}, nil
}

type restaurantTabResult struct {
	monthToDate decimal.Decimal
	daily       decimal.Decimal
}

// A linha 3 da aba carrega as datas das colunas diárias; a faixa A200:AZ350
// cobre o bloco de totais onde vive a linha "restaurant sales".
func (s *Service) fetchRestaurantTab(ctx context.Context, tab, date string) (*restaurantTabResult, error) {
	sheetID := s.cfg.Google.RestaurantSheetID

	dateCol := -1
	if date != "" {
		header, err := s.Client.Values(ctx, sheetID, fmt.Sprintf("'%s'!A3:AZ3", tab))
		if err != nil {
			return nil, err
		}
		if len(header) > 0 {
			for i, cell := range header[0] {
				if cell == date {
					dateCol = i
					break
				}
			}
		}
		if dateCol < 0 {
			logrus.WithFields(logrus.Fields{"tab": tab, "date": date}).
				Warn("Data não encontrada na linha 3 da aba do restaurante")
		}
	}

	rows, err := s.Client.Values(ctx, sheetID, fmt.Sprintf("'%s'!A200:AZ350", tab))
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		if len(row) > 3 && strings.Contains(strings.ToLower(row[3]), "restaurant sales") {
			result := &restaurantTabResult{
				monthToDate: decimal.Zero,
				daily:       decimal.Zero,
			}
			if len(row) > 4 {
				result.monthToDate = parseEuro(row[4])
			}
			if dateCol >= 0 && dateCol < len(row) {
				result.daily = parseEuro(row[dateCol])
			}
			return result, nil
		}
	}

	return &restaurantTabResult{monthToDate: decimal.Zero, daily: decimal.Zero}, nil
}

// SupplierOutstanding localiza a aba do fornecedor por casamento aproximado
// e extrai os totais e as faturas com saldo.
func (s *Service) SupplierOutstanding(ctx context.Context, supplier string) (*domain.SupplierOutstanding, error) {
	sheetID := s.cfg.Google.SupplierSheetID

	titles, err := s.Client.TabTitles(ctx, sheetID)
	if err != nil {
		return nil, err
	}

	tab := findSupplierTab(titles, supplier)
	if tab == "" {
		return nil, &SupplierNotFoundError{Query: supplier}
	}

	rows, err := s.Client.Values(ctx, sheetID, fmt.Sprintf("'%s'!A1:O60", tab))
	if err != nil {
		return nil, err
	}

	// Linha 2: totais do fornecedor nas colunas G (vencido) e J (saldo)
	totalDue := decimal.Zero
	totalBalance := decimal.Zero
	if len(rows) > 1 {
		summary := rows[1]
		if len(summary) > 6 {
			totalDue = parseEuro(summary[6])
		}
		if len(summary) > 9 {
			totalBalance = parseEuro(summary[9])
		}
	}

	headerIdx := 7
	for i, row := range rows {
		found := false
		for _, cell := range row {
			if strings.Contains(cell, "Invoice Date") {
				found = true
				break
			}
		}
		if found {
			headerIdx = i
			break
		}
	}

	var invoices []domain.SupplierInvoice
	for i := headerIdx + 1; i < len(rows); i++ {
		row := rows[i]
		if len(row) < 15 {
			continue
		}
		balance := parseEuro(row[14])
		if balance.IsZero() {
			continue
		}
		invoices = append(invoices, domain.SupplierInvoice{
			Date:    cell(row, 1),
			Invoice: cell(row, 2),
			Amount:  parseEuro(cell(row, 4)),
			Due:     cell(row, 5),
			Balance: balance,
		})
	}

	logrus.WithFields(logrus.Fields{
		"supplier": tab,
		"balance":  totalBalance.String(),
		"due":      totalDue.String(),
		"invoices": len(invoices),
	}).Info("Saldo de fornecedor lido da planilha")

	return &domain.SupplierOutstanding{
		Supplier:     tab,
		TotalBalance: totalBalance,
		TotalDue:     totalDue,
		Invoices:     invoices,
	}, nil
}

func cell(row []string, idx int) string {
	if idx < len(row) {
		return row[idx]
	}
	return ""
}

// findSupplierTab casa o nome pedido com as abas da planilha: igualdade
// primeiro, depois prefixo em qualquer direção, depois substring.
func findSupplierTab(titles []string, query string) string {
	q := strings.ToLower(strings.TrimSpace(query))

	for _, title := range titles {
		if strings.ToLower(title) == q {
			return title
		}
	}
	for _, title := range titles {
		lower := strings.ToLower(title)
		if strings.HasPrefix(lower, q) || strings.HasPrefix(q, lower) {
			return title
		}
	}
	for _, title := range titles {
		lower := strings.ToLower(title)
		if strings.Contains(lower, q) || strings.Contains(q, lower) {
			return title
		}
	}
	return ""
}

// parseEuro aceita células como "€1,234.56"; valor ilegível vira zero.
func parseEuro(value string) decimal.Decimal {
	cleaned := strings.NewReplacer("€", "", ",", "", " ", "").Replace(value)
	cleaned = strings.TrimSpace(cleaned)
	if cleaned == "" {
		return decimal.Zero
	}

	parsed, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero
	}
	return parsed
}
