package shopify

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/svfproducts/sales-insights-bot/infrastructure/integrator/shopify/shopifyclient"
	"github.com/svfproducts/sales-insights-bot/internal/config"
	"github.com/svfproducts/sales-insights-bot/internal/domain"
	"github.com/svfproducts/sales-insights-bot/internal/period"
)

// ShopifyIntegrator expõe as agregações de vendas do canal online
type ShopifyIntegrator interface {
	Sales(ctx context.Context, p domain.Period) (*domain.SalesSummary, error)
	ProductSales(ctx context.Context, p domain.Period, product string) (*domain.ProductSummary, error)
}

type Service struct {
	cfg    *config.Config
	Client shopifyclient.Client
	now    func() time.Time
}

func New(cfg *config.Config, client shopifyclient.Client) ShopifyIntegrator {
	return &Service{
		cfg:    cfg,
		Client: client,
		now:    time.Now,
	}
}

// Sales agrega receita e contagem de pedidos do período. O canal online usa
// a disciplina de instantes UTC: os pedidos carregam timestamps de criação.
func (s *Service) Sales(ctx context.Context, p domain.Period) (*domain.SalesSummary, error) {
	start, end := period.Resolve(p, s.now())

	orders, err := s.Client.ListOrders(ctx, shopifyclient.OrdersParams{Start: start, End: end})
	if err != nil {
		return nil, err
	}

	revenue := decimal.Zero
	for _, order := range orders {
		value, err := decimal.NewFromString(order.TotalPrice)
		if err != nil {
			// Falha de coerção invalida apenas este registro
			logrus.WithFields(logrus.Fields{
				"order_id":    order.ID,
				"total_price": order.TotalPrice,
			}).Warn("Pedido do Shopify com valor não numérico, ignorando na receita")
			continue
		}
		revenue = revenue.Add(value)
	}

	return &domain.SalesSummary{
		Revenue: revenue,
		Count:   len(orders),
		Period:  p,
	}, nil
}

// ProductSales agrega quantidade e receita dos itens de linha cujo título
// contém o produto buscado, sem diferenciar maiúsculas
func (s *Service) ProductSales(ctx context.Context, p domain.Period, product string) (*domain.ProductSummary, error) {
	start, end := period.Resolve(p, s.now())

	orders, err := s.Client.ListOrders(ctx, shopifyclient.OrdersParams{Start: start, End: end})
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(product)
	quantity := 0
	revenue := decimal.Zero

	for _, order := range orders {
		for _, item := range order.LineItems {
			if !strings.Contains(strings.ToLower(item.Title), needle) {
				continue
			}

			price, err := decimal.NewFromString(item.Price)
			if err != nil {
				logrus.WithFields(logrus.Fields{
					"order_id": order.ID,
					"title":    item.Title,
					"price":    item.Price,
				}).Warn("Item de linha do Shopify com preço não numérico, ignorando")
				continue
			}

			quantity += item.Quantity
			revenue = revenue.Add(price.Mul(decimal.NewFromInt(int64(item.Quantity))))
		}
	}

	return &domain.ProductSummary{
		Product:  product,
		Quantity: quantity,
		Revenue:  revenue,
		Period:   p,
	}, nil
}
