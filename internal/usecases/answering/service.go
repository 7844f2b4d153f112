package answering

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/svfproducts/sales-insights-bot/infrastructure/integrator/anthropic"
	"github.com/svfproducts/sales-insights-bot/infrastructure/integrator/gmail"
	"github.com/svfproducts/sales-insights-bot/infrastructure/integrator/googlesheets"
	"github.com/svfproducts/sales-insights-bot/internal/config"
	"github.com/svfproducts/sales-insights-bot/internal/domain"
	"github.com/svfproducts/sales-insights-bot/internal/render"
	"github.com/svfproducts/sales-insights-bot/internal/usecases/insighting"
)

//go:generate mockgen -source=service.go -destination=mocks/answerer_mock.go -package=answeringmocks

// Answerer transforma uma mensagem livre na resposta final. A classificação
// é um passo separado para o transporte poder confirmar recebimento antes
// das buscas de dados, que podem demorar.
type Answerer interface {
	// Classify obtém a intenção estruturada da mensagem
	Classify(ctx context.Context, message string) (*domain.ParsedIntent, error)

	// Respond resolve a intenção em texto de resposta; nunca falha, erros
	// de busca viram mensagem para o usuário
	Respond(ctx context.Context, parsed *domain.ParsedIntent) string
}

type Service struct {
	cfg           *config.Config
	classifier    anthropic.IntentClassifier
	insighter     insighting.Insighter
	sheetsService googlesheets.SheetsIntegrator
	gmailService  gmail.GmailIntegrator
}

func NewService(
	cfg *config.Config,
	classifier anthropic.IntentClassifier,
	insighter insighting.Insighter,
	sheetsService googlesheets.SheetsIntegrator,
	gmailService gmail.GmailIntegrator,
) Answerer {
	return &Service{
		cfg:           cfg,
		classifier:    classifier,
		insighter:     insighter,
		sheetsService: sheetsService,
		gmailService:  gmailService,
	}
}

func (s *Service) Classify(ctx context.Context, message string) (*domain.ParsedIntent, error) {
	parsed, err := s.classifier.Parse(ctx, message)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"intent":       parsed.Intent,
		"period":       parsed.Period,
		"channel":      parsed.Channel,
		"product":      parsed.Product,
		"search_query": parsed.SearchQuery,
	}).Info("Mensagem classificada")

	return parsed, nil
}

// Respond despacha a intenção. Período ausente vira hoje; canal ausente vira
// o online.
func (s *Service) Respond(ctx context.Context, parsed *domain.ParsedIntent) string {
	p := domain.NormalizePeriod(parsed.Period)

	switch parsed.Intent {
	case domain.IntentCompanyInfo:
		return render.CompanyInfo

	case domain.IntentSupplierOutstanding:
		return s.respondSupplier(ctx, parsed.SearchQuery)

	case domain.IntentGmailSearch:
		if parsed.SearchQuery == "" {
			return render.SearchPrompt
		}
		results := s.gmailService.SearchAll(ctx, parsed.SearchQuery)
		return render.GmailResults(results, s.cfg.Google.GmailInboxes, parsed.SearchQuery)

	case domain.IntentSalesByProduct:
		return s.respondProduct(ctx, p, parsed)

	case domain.IntentUnknown:
		return render.HelpText

	default:
		return s.respondPeriod(ctx, p, parsed.Channel)
	}
}

func (s *Service) respondSupplier(ctx context.Context, query string) string {
	if query == "" {
		return render.SupplierPrompt
	}

	outstanding, err := s.sheetsService.SupplierOutstanding(ctx, query)
	if err != nil {
		var notFound *googlesheets.SupplierNotFoundError
		if errors.As(err, &notFound) {
			return notFound.Error()
		}
		logrus.WithError(err).Error("Erro ao buscar o saldo do fornecedor")
		return render.FetchError(err)
	}

	return render.SupplierOutstanding(outstanding)
}

func (s *Service) respondProduct(ctx context.Context, p domain.Period, parsed *domain.ParsedIntent) string {
	switch parsed.Channel {
	case domain.ChannelTotal, domain.ChannelCompare:
		combined, err := s.insighter.CrossChannelProductSales(ctx, p, parsed.Product)
		if err != nil {
			return s.fetchError(err)
		}
		return render.ProductCrossChannel(combined)

	case domain.ChannelRetail:
		summary, err := s.insighter.RetailProductSales(ctx, p, parsed.Product)
		if err != nil {
			return s.fetchError(err)
		}
		return render.ProductSales(summary, render.RetailLabel)

	default:
		summary, err := s.insighter.OnlineProductSales(ctx, p, parsed.Product)
		if err != nil {
			return s.fetchError(err)
		}
		return render.ProductSales(summary, "")
	}
}

func (s *Service) respondPeriod(ctx context.Context, p domain.Period, channel domain.Channel) string {
	switch channel {
	case domain.ChannelCompare:
		combined, err := s.insighter.CompareSales(ctx, p)
		if err != nil {
			return s.fetchError(err)
		}
		return render.Compare(combined)

	case domain.ChannelTotal:
		combined, err := s.insighter.TotalSales(ctx, p)
		if err != nil {
			return s.fetchError(err)
		}
		return render.Total(combined)

	case domain.ChannelRetail:
		summary, err := s.insighter.RetailSales(ctx, p)
		if err != nil {
			return s.fetchError(err)
		}
		return render.PeriodSales(summary, render.RetailLabel, render.TransactionsLabel)

	default:
		summary, err := s.insighter.OnlineSales(ctx, p)
		if err != nil {
			return s.fetchError(err)
		}
		return render.PeriodSales(summary, render.OnlineLabel, render.OrdersLabel)
	}
}

func (s *Service) fetchError(err error) string {
	logrus.WithError(err).Error("Erro ao buscar os dados de vendas")
	return render.FetchError(err)
}
