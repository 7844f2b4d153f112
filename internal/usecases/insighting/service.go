package insighting

import (
	"context"

	"github.com/svfproducts/sales-insights-bot/infrastructure/integrator/flourcloud"
	"github.com/svfproducts/sales-insights-bot/infrastructure/integrator/shopify"
	"github.com/svfproducts/sales-insights-bot/internal/config"
	"github.com/svfproducts/sales-insights-bot/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/insighter_mock.go -package=insightingmocks

// Service implementa Insighter sobre os dois integradores de canal
type Service struct {
	cfg           *config.Config
	onlineService shopify.ShopifyIntegrator
	retailService flourcloud.FlourCloudIntegrator
}

// NewService cria uma nova instância do serviço de insights de vendas
func NewService(
	cfg *config.Config,
	onlineService shopify.ShopifyIntegrator,
	retailService flourcloud.FlourCloudIntegrator,
) Insighter {
	return &Service{
		cfg:           cfg,
		onlineService: onlineService,
		retailService: retailService,
	}
}

func (s *Service) OnlineSales(ctx context.Context, p domain.Period) (*domain.SalesSummary, error) {
	return s.onlineService.Sales(ctx, p)
}

func (s *Service) RetailSales(ctx context.Context, p domain.Period) (*domain.SalesSummary, error) {
	return s.retailService.Sales(ctx, p)
}

func (s *Service) OnlineProductSales(ctx context.Context, p domain.Period, product string) (*domain.ProductSummary, error) {
	return s.onlineService.ProductSales(ctx, p, product)
}

func (s *Service) RetailProductSales(ctx context.Context, p domain.Period, product string) (*domain.ProductSummary, error) {
	return s.retailService.ProductSales(ctx, p, product)
}

// TotalSales busca os dois canais para o mesmo período e soma as receitas.
// Falha em qualquer canal falha a consulta inteira: um total parcial seria
// pior que nenhum.
func (s *Service) TotalSales(ctx context.Context, p domain.Period) (*domain.CombinedSales, error) {
	online, retail, err := s.bothChannels(ctx, p)
	if err != nil {
		return nil, err
	}
	return domain.CombineTotal(online, retail), nil
}

// CompareSales busca os dois canais para exibição lado a lado
func (s *Service) CompareSales(ctx context.Context, p domain.Period) (*domain.CombinedSales, error) {
	online, retail, err := s.bothChannels(ctx, p)
	if err != nil {
		return nil, err
	}
	return domain.CombineCompare(online, retail), nil
}

// CrossChannelProductSales soma as vendas de um produto nos dois canais
func (s *Service) CrossChannelProductSales(ctx context.Context, p domain.Period, product string) (*domain.CombinedProductSales, error) {
	online, err := s.onlineService.ProductSales(ctx, p, product)
	if err != nil {
		return nil, err
	}

	retail, err := s.retailService.ProductSales(ctx, p, product)
	if err != nil {
		return nil, err
	}

	return domain.CombineProduct(online, retail), nil
}

func (s *Service) bothChannels(ctx context.Context, p domain.Period) (*domain.SalesSummary, *domain.SalesSummary, error) {
	online, err := s.onlineService.Sales(ctx, p)
	if err != nil {
		return nil, nil, err
	}

	retail, err := s.retailService.Sales(ctx, p)
	if err != nil {
		return nil, nil, err
	}

	return online, retail, nil
}
