package insighting

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	flourcloudmocks "github.com/svfproducts/sales-insights-bot/infrastructure/integrator/flourcloud/mocks"
	shopifymocks "github.com/svfproducts/sales-insights-bot/infrastructure/integrator/shopify/mocks"
	"github.com/svfproducts/sales-insights-bot/internal/config"
	"github.com/svfproducts/sales-insights-bot/internal/domain"
)

func dec(value string) decimal.Decimal {
	d, _ := decimal.NewFromString(value)
	return d
}

func newMocks(t *testing.T) (*shopifymocks.MockShopifyIntegrator, *flourcloudmocks.MockFlourCloudIntegrator, Insighter) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	online := shopifymocks.NewMockShopifyIntegrator(ctrl)
	retail := flourcloudmocks.NewMockFlourCloudIntegrator(ctrl)
	return online, retail, NewService(&config.Config{}, online, retail)
}

func TestTotalSales(t *testing.T) {
	online, retail, service := newMocks(t)

	online.EXPECT().
		Sales(gomock.Any(), domain.PeriodToday).
		Return(&domain.SalesSummary{Revenue: dec("100.00"), Count: 2, Period: domain.PeriodToday}, nil)
	retail.EXPECT().
		Sales(gomock.Any(), domain.PeriodToday).
		Return(&domain.SalesSummary{Revenue: dec("50.00"), Count: 7, Period: domain.PeriodToday}, nil)

	combined, err := service.TotalSales(context.Background(), domain.PeriodToday)

	require.NoError(t, err)
	assert.True(t, dec("150.00").Equal(combined.Total))
	assert.Equal(t, 2, combined.Online.Count)
	assert.Equal(t, 7, combined.Retail.Count)
	assert.Equal(t, domain.PeriodToday, combined.Period)
}

func TestTotalSales_FalhaDeUmCanalFalhaAConsulta(t *testing.T) {
	online, retail, service := newMocks(t)

	online.EXPECT().
		Sales(gomock.Any(), domain.PeriodToday).
		Return(&domain.SalesSummary{Revenue: dec("100.00"), Period: domain.PeriodToday}, nil)
	retail.EXPECT().
		Sales(gomock.Any(), domain.PeriodToday).
		Return(nil, assert.AnError)

	combined, err := service.TotalSales(context.Background(), domain.PeriodToday)

	assert.Error(t, err)
	assert.Nil(t, combined)
}

func TestCrossChannelProductSales(t *testing.T) {
	online, retail, service := newMocks(t)

	online.EXPECT().
		ProductSales(gomock.Any(), domain.PeriodThisWeek, "rice").
		Return(&domain.ProductSummary{Product: "rice", Quantity: 3, Revenue: dec("100.00"), Period: domain.PeriodThisWeek}, nil)
	retail.EXPECT().
		ProductSales(gomock.Any(), domain.PeriodThisWeek, "rice").
		Return(&domain.ProductSummary{Product: "rice", Quantity: 5, Revenue: dec("50.00"), Period: domain.PeriodThisWeek}, nil)

	combined, err := service.CrossChannelProductSales(context.Background(), domain.PeriodThisWeek, "rice")

	require.NoError(t, err)
	assert.Equal(t, 8, combined.Quantity)
	assert.True(t, dec("150.00").Equal(combined.Revenue))
	assert.False(t, combined.NoSales)
}

func TestCrossChannelProductSales_SemVendasEmNenhumCanal(t *testing.T) {
	online, retail, service := newMocks(t)

	online.EXPECT().
		ProductSales(gomock.Any(), domain.PeriodToday, "saffron").
		Return(&domain.ProductSummary{Product: "saffron", Period: domain.PeriodToday}, nil)
	retail.EXPECT().
		ProductSales(gomock.Any(), domain.PeriodToday, "saffron").
		Return(&domain.ProductSummary{Product: "saffron", Period: domain.PeriodToday}, nil)

	combined, err := service.CrossChannelProductSales(context.Background(), domain.PeriodToday, "saffron")

	require.NoError(t, err)
	assert.True(t, combined.NoSales)
}

func TestPassagensDeCanalUnico(t *testing.T) {
	online, retail, service := newMocks(t)

	online.EXPECT().
		Sales(gomock.Any(), domain.PeriodLastMonth).
		Return(&domain.SalesSummary{Revenue: dec("10.00"), Period: domain.PeriodLastMonth}, nil)
	retail.EXPECT().
		Sales(gomock.Any(), domain.PeriodLastMonth).
		Return(&domain.SalesSummary{Revenue: dec("20.00"), Period: domain.PeriodLastMonth}, nil)

	onlineSales, err := service.OnlineSales(context.Background(), domain.PeriodLastMonth)
	require.NoError(t, err)
	assert.True(t, dec("10.00").Equal(onlineSales.Revenue))

	retailSales, err := service.RetailSales(context.Background(), domain.PeriodLastMonth)
	require.NoError(t, err)
	assert.True(t, dec("20.00").Equal(retailSales.Revenue))
}
