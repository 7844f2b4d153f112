package flourcloud

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	flourclouddomain "github.com/svfproducts/sales-insights-bot/infrastructure/integrator/flourcloud/domain"
	"github.com/svfproducts/sales-insights-bot/infrastructure/integrator/flourcloud/flourcloudclient"
	"github.com/svfproducts/sales-insights-bot/internal/config"
	"github.com/svfproducts/sales-insights-bot/internal/domain"
	"github.com/svfproducts/sales-insights-bot/internal/period"
)

// FlourCloudIntegrator expõe as agregações de vendas do POS da loja física
type FlourCloudIntegrator interface {
	Sales(ctx context.Context, p domain.Period) (*domain.SalesSummary, error)
	ProductSales(ctx context.Context, p domain.Period, product string) (*domain.ProductSummary, error)
}

type Service struct {
	cfg      *config.Config
	Client   flourcloudclient.Client
	location *time.Location
}

func New(cfg *config.Config, client flourcloudclient.Client, loc *time.Location) FlourCloudIntegrator {
	return &Service{
		cfg:      cfg,
		Client:   client,
		location: loc,
	}
}

// Sales agrega receita e contagem de documentos do período. O POS registra
// datas civis de Berlim, então a resolução usa a disciplina de datas civis.
// Itens cancelados são excluídos aqui, na agregação, não na busca.
func (s *Service) Sales(ctx context.Context, p domain.Period) (*domain.SalesSummary, error) {
	start, end := period.ResolveCivil(p, period.TodayIn(s.location))

	docs, err := s.Client.ListDocuments(ctx, flourcloudclient.DocumentsParams{Start: start, End: end})
	if err != nil {
		return nil, err
	}

	revenue := decimal.Zero
	for _, doc := range docs {
		for _, item := range doc.Items {
			if item.Cancelled {
				continue
			}
			revenue = revenue.Add(s.itemTotal(doc, item))
		}
	}

	return &domain.SalesSummary{
		Revenue: revenue,
		Count:   len(docs),
		Period:  p,
	}, nil
}

// ProductSales agrega quantidade e receita dos itens não cancelados cujo
// título contém o produto buscado, sem diferenciar maiúsculas
func (s *Service) ProductSales(ctx context.Context, p domain.Period, product string) (*domain.ProductSummary, error) {
	start, end := period.ResolveCivil(p, period.TodayIn(s.location))

	docs, err := s.Client.ListDocuments(ctx, flourcloudclient.DocumentsParams{Start: start, End: end})
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(product)
	quantity := 0
	revenue := decimal.Zero

	for _, doc := range docs {
		for _, item := range doc.Items {
			if item.Cancelled {
				continue
			}
			if !strings.Contains(strings.ToLower(item.Title), needle) {
				continue
			}

			amount, err := item.Amount.Int64()
			if err != nil {
				logrus.WithFields(logrus.Fields{
					"document_id": doc.ID,
					"title":       item.Title,
					"amount":      item.Amount.String(),
				}).Warn("Item do Flour Cloud com quantidade não numérica, ignorando")
				continue
			}

			quantity += int(amount)
			revenue = revenue.Add(s.itemTotal(doc, item))
		}
	}

	return &domain.ProductSummary{
		Product:  product,
		Quantity: quantity,
		Revenue:  revenue,
		Period:   p,
	}, nil
}

// itemTotal converte o total do item; um valor não numérico invalida apenas
// o item e contribui zero
func (s *Service) itemTotal(doc flourclouddomain.Document, item flourclouddomain.DocumentItem) decimal.Decimal {
	if item.TotalIncVat == "" {
		return decimal.Zero
	}

	value, err := decimal.NewFromString(item.TotalIncVat.String())
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"document_id": doc.ID,
			"title":       item.Title,
			"total":       item.TotalIncVat.String(),
		}).Warn("Item do Flour Cloud com total não numérico, ignorando")
		return decimal.Zero
	}

	return value
}
