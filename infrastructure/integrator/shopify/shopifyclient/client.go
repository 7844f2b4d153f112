package shopifyclient

import (
	"context"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	shopifydomain "github.com/svfproducts/sales-insights-bot/infrastructure/integrator/shopify/domain"
	"github.com/svfproducts/sales-insights-bot/internal/config"
)

//go:generate mockgen -source=client.go -destination=../mocks/client_mock.go -package=shopifymocks

type Client interface {
	ListOrders(ctx context.Context, params OrdersParams) ([]shopifydomain.Order, error)
}

type ShopifyClient struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	config     *config.Config
}

// NewClient cria uma nova instância do cliente da Admin API do Shopify.
// O limitador respeita o teto de 2 req/s do plano padrão do Shopify.
func NewClient(cfg *config.Config) Client {
	return &ShopifyClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		limiter: rate.NewLimiter(rate.Limit(2), 2),
		config:  cfg,
	}
}
