package insighting

import (
	"context"

	"github.com/svfproducts/sales-insights-bot/internal/domain"
)

// OnlineInsighter define a visão de um único canal: o online (Shopify)
type OnlineInsighter interface {
	// OnlineSales obtém o total de vendas online do período
	OnlineSales(ctx context.Context, p domain.Period) (*domain.SalesSummary, error)

	// OnlineProductSales obtém as vendas online de um produto no período
	OnlineProductSales(ctx context.Context, p domain.Period, product string) (*domain.ProductSummary, error)
}

// RetailInsighter define a visão do canal de loja física (Flour Cloud)
type RetailInsighter interface {
	// RetailSales obtém o total de vendas da loja do período
	RetailSales(ctx context.Context, p domain.Period) (*domain.SalesSummary, error)

	// RetailProductSales obtém as vendas da loja de um produto no período
	RetailProductSales(ctx context.Context, p domain.Period, product string) (*domain.ProductSummary, error)
}

// Insighter é a interface completa que combina os dois canais
type Insighter interface {
	OnlineInsighter
	RetailInsighter

	// TotalSales soma os dois canais preservando as contagens individuais
	TotalSales(ctx context.Context, p domain.Period) (*domain.CombinedSales, error)

	// CompareSales obtém os dois canais lado a lado para comparação
	CompareSales(ctx context.Context, p domain.Period) (*domain.CombinedSales, error)

	// CrossChannelProductSales soma as vendas de um produto nos dois canais
	CrossChannelProductSales(ctx context.Context, p domain.Period, product string) (*domain.CombinedProductSales, error)
}
