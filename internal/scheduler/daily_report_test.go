package scheduler

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	googlesheetsmocks "github.com/svfproducts/sales-insights-bot/infrastructure/integrator/googlesheets/mocks"
	"github.com/svfproducts/sales-insights-bot/internal/domain"
	schedulermocks "github.com/svfproducts/sales-insights-bot/internal/scheduler/mocks"
	insightingmocks "github.com/svfproducts/sales-insights-bot/internal/usecases/insighting/mocks"
)

func dec(value string) decimal.Decimal {
	d, _ := decimal.NewFromString(value)
	return d
}

func newTestDailyReport(
	insighter *insightingmocks.MockInsighter,
	sheets *googlesheetsmocks.MockSheetsIntegrator,
	sender *schedulermocks.MockReportSender,
) *DailyReportService {
	return &DailyReportService{
		config: DailyReportConfig{
			Time:   "04:00",
			ChatID: 42,
			// Backoff zero para o teste não esperar entre tentativas
			RetryPolicy: RetryPolicy{MaxAttempts: 3, Backoff: 0},
		},
		insighter:     insighter,
		sheetsService: sheets,
		sender:        sender,
		location:      time.UTC,
		now:           func() time.Time { return time.Date(2025, 1, 15, 4, 0, 0, 0, time.UTC) },
	}
}

func TestRunDailyReport_FonteEsgotadaViraIndisponivel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	insighter := insightingmocks.NewMockInsighter(ctrl)
	sheets := googlesheetsmocks.NewMockSheetsIntegrator(ctrl)
	sender := schedulermocks.NewMockReportSender(ctrl)
	service := newTestDailyReport(insighter, sheets, sender)

	// O canal online de ontem falha nas três tentativas
	insighter.EXPECT().
		OnlineSales(gomock.Any(), domain.PeriodYesterday).
		Return(nil, assert.AnError).
		Times(3)

	// As demais fontes respondem de primeira
	insighter.EXPECT().
		OnlineSales(gomock.Any(), domain.PeriodThisMonth).
		Return(&domain.SalesSummary{Revenue: dec("980.25")}, nil)
	insighter.EXPECT().
		RetailSales(gomock.Any(), domain.PeriodYesterday).
		Return(&domain.SalesSummary{Revenue: dec("1234.50")}, nil)
	insighter.EXPECT().
		RetailSales(gomock.Any(), domain.PeriodThisMonth).
		Return(&domain.SalesSummary{Revenue: dec("15000.00")}, nil)
	sheets.EXPECT().
		RestaurantSales(gomock.Any()).
		Return(&domain.RestaurantSales{Yesterday: dec("310.00"), MonthToDate: dec("4200.75")}, nil)

	var sent string
	sender.EXPECT().
		SendMessage(int64(42), gomock.Any()).
		DoAndReturn(func(chatID int64, text string) error {
			sent = text
			return nil
		})

	service.runDailyReport(context.Background())

	assert.Contains(t, sent, "Good morning! Daily Sales Briefing")
	assert.Contains(t, sent, "Yesterday (14 Jan 2025)")
	assert.Contains(t, sent, "Month to Date (January 2025)")

	// A fonte esgotada sai como indisponível; as demais com valores
	assert.Contains(t, sent, "unavailable")
	assert.Contains(t, sent, "1,234.50")
	assert.Contains(t, sent, "980.25")

	// Só a célula de ontem do online ficou indisponível
	assert.Equal(t, 1, strings.Count(sent, "unavailable"))
}

func TestRunDailyReport_NaoSobrepoeExecucoes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	insighter := insightingmocks.NewMockInsighter(ctrl)
	sheets := googlesheetsmocks.NewMockSheetsIntegrator(ctrl)
	sender := schedulermocks.NewMockReportSender(ctrl)
	service := newTestDailyReport(insighter, sheets, sender)

	service.runMutex.Lock()
	service.runRunning = true
	service.runMutex.Unlock()

	// Com uma execução em andamento, nada é buscado nem enviado
	service.runDailyReport(context.Background())
}

func TestGetStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := newTestDailyReport(
		insightingmocks.NewMockInsighter(ctrl),
		googlesheetsmocks.NewMockSheetsIntegrator(ctrl),
		schedulermocks.NewMockReportSender(ctrl),
	)

	status := service.GetStatus()

	assert.Equal(t, true, status["enabled"])
	assert.Equal(t, "04:00", status["time"])
	assert.Equal(t, 3, status["retry_attempts"])
}
