package googlesheets

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	googlesheetsmocks "github.com/svfproducts/sales-insights-bot/infrastructure/integrator/googlesheets/mocks"
	"github.com/svfproducts/sales-insights-bot/internal/config"
)

func newTestService(client *googlesheetsmocks.MockClient, now time.Time) *Service {
	return &Service{
		cfg: &config.Config{
			Google: config.Google{
				RestaurantSheetID: "restaurant-sheet",
				SupplierSheetID:   "supplier-sheet",
			},
		},
		Client:   client,
		location: time.UTC,
		now:      func() time.Time { return now },
	}
}

func restaurantRows(mtd, daily string) [][]string {
	// O bloco de totais tem linhas de outras métricas antes da procurada
	return [][]string{
		{"", "", "", "Online Sales", "999.00"},
		{"", "", "", "Restaurant Sales", mtd, daily},
	}
}

func TestRestaurantSales_MesmoMes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := googlesheetsmocks.NewMockClient(ctrl)
	// 15/01: ontem (14/01) está na mesma aba do mês corrente
	service := newTestService(mockClient, time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC))

	mockClient.EXPECT().
		Values(gomock.Any(), "restaurant-sheet", "'January 2025'!A3:AZ3").
		Return([][]string{{"", "", "", "", "", "14/01/2025"}}, nil)
	mockClient.EXPECT().
		Values(gomock.Any(), "restaurant-sheet", "'January 2025'!A200:AZ350").
		Return(restaurantRows("€4,200.75", "€310.00"), nil)

	sales, err := service.RestaurantSales(context.Background())

	require.NoError(t, err)
	assert.True(t, decimal.NewFromFloat(310.00).Equal(sales.Yesterday))
	assert.True(t, decimal.NewFromFloat(4200.75).Equal(sales.MonthToDate))
}

func TestRestaurantSales_ViradaDeMes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := googlesheetsmocks.NewMockClient(ctrl)
	// 01/02: ontem (31/01) está na aba do mês anterior
	service := newTestService(mockClient, time.Date(2025, 2, 1, 10, 0, 0, 0, time.UTC))

	mockClient.EXPECT().
		Values(gomock.Any(), "restaurant-sheet", "'January 2025'!A3:AZ3").
		Return([][]string{{"31/01/2025"}}, nil)
	mockClient.EXPECT().
		Values(gomock.Any(), "restaurant-sheet", "'January 2025'!A200:AZ350").
		Return([][]string{{"€500.00", "", "", "Restaurant Sales", "€9,000.00"}}, nil)
	mockClient.EXPECT().
		Values(gomock.Any(), "restaurant-sheet", "'February 2025'!A200:AZ350").
		Return(restaurantRows("€120.00", ""), nil)

	sales, err := service.RestaurantSales(context.Background())

	require.NoError(t, err)
	// Ontem vem da aba de janeiro (coluna 0), o acumulado da de fevereiro
	assert.True(t, decimal.NewFromFloat(500.00).Equal(sales.Yesterday))
	assert.True(t, decimal.NewFromFloat(120.00).Equal(sales.MonthToDate))
}

func TestRestaurantSales_DataAusenteZeraODia(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := googlesheetsmocks.NewMockClient(ctrl)
	service := newTestService(mockClient, time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC))

	mockClient.EXPECT().
		Values(gomock.Any(), "restaurant-sheet", "'January 2025'!A3:AZ3").
		Return([][]string{{"01/01/2025", "02/01/2025"}}, nil)
	mockClient.EXPECT().
		Values(gomock.Any(), "restaurant-sheet", "'January 2025'!A200:AZ350").
		Return(restaurantRows("€4,200.75", "€310.00"), nil)

	sales, err := service.RestaurantSales(context.Background())

	require.NoError(t, err)
	assert.True(t, sales.Yesterday.IsZero())
	assert.True(t, decimal.NewFromFloat(4200.75).Equal(sales.MonthToDate))
}

func TestSupplierOutstanding(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := googlesheetsmocks.NewMockClient(ctrl)
	service := newTestService(mockClient, time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC))

	mockClient.EXPECT().
		TabTitles(gomock.Any(), "supplier-sheet").
		Return([]string{"Transfood", "Smart Elite"}, nil)

	rows := [][]string{
		{"Supplier", "Transfood"},
		{"", "", "", "", "", "", "€800.00", "", "", "€1,200.00"},
		{},
		{"", "Invoice Date", "Invoice Nr", "", "Amount", "Due Date"},
		// Fatura com saldo
		{"", "02/01/2025", "RE-2025-0042", "", "€800.00", "01/02/2025", "", "", "", "", "", "", "", "", "€800.00"},
		// Fatura quitada não entra
		{"", "05/01/2025", "RE-2025-0048", "", "€300.00", "04/02/2025", "", "", "", "", "", "", "", "", "€0.00"},
		// Linha curta é ignorada
		{"", "06/01/2025", "RE-2025-0049"},
	}
	mockClient.EXPECT().
		Values(gomock.Any(), "supplier-sheet", "'Transfood'!A1:O60").
		Return(rows, nil)

	outstanding, err := service.SupplierOutstanding(context.Background(), "transfood")

	require.NoError(t, err)
	assert.Equal(t, "Transfood", outstanding.Supplier)
	assert.True(t, decimal.NewFromFloat(1200.00).Equal(outstanding.TotalBalance))
	assert.True(t, decimal.NewFromFloat(800.00).Equal(outstanding.TotalDue))
	require.Len(t, outstanding.Invoices, 1)
	assert.Equal(t, "RE-2025-0042", outstanding.Invoices[0].Invoice)
	assert.Equal(t, "02/01/2025", outstanding.Invoices[0].Date)
	assert.Equal(t, "01/02/2025", outstanding.Invoices[0].Due)
	assert.True(t, decimal.NewFromFloat(800.00).Equal(outstanding.Invoices[0].Balance))
}

func TestSupplierOutstanding_AbaNaoEncontrada(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := googlesheetsmocks.NewMockClient(ctrl)
	service := newTestService(mockClient, time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC))

	mockClient.EXPECT().
		TabTitles(gomock.Any(), "supplier-sheet").
		Return([]string{"Transfood", "Smart Elite"}, nil)

	outstanding, err := service.SupplierOutstanding(context.Background(), "acme")

	assert.Nil(t, outstanding)
	var notFound *SupplierNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "No supplier tab found matching 'acme'", notFound.Error())
}

func TestFindSupplierTab(t *testing.T) {
	titles := []string{"Transfood", "Smart Elite", "AR Food", "Om Food"}

	tests := []struct {
		name  string
		query string
		want  string
	}{
		{name: "igualdade exata", query: "transfood", want: "Transfood"},
		{name: "prefixo da consulta", query: "smart", want: "Smart Elite"},
		{name: "consulta mais longa que a aba", query: "ar food gmbh", want: "AR Food"},
		{name: "substring", query: "m Foo", want: "Om Food"},
		{name: "sem casamento", query: "acme", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, findSupplierTab(titles, tt.query))
		})
	}
}

func TestParseEuro(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{raw: "€1,234.56", want: "1234.56"},
		{raw: "310.00", want: "310"},
		{raw: "€ 99.90", want: "99.9"},
		{raw: "-€100.00", want: "-100"},
		{raw: "", want: "0"},
		{raw: "n/a", want: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			want, _ := decimal.NewFromString(tt.want)
			assert.True(t, want.Equal(parseEuro(tt.raw)), "parseEuro(%q)", tt.raw)
		})
	}
}
