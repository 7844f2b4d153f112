package flourcloudclient

import (
	"context"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	flourclouddomain "github.com/svfproducts/sales-insights-bot/infrastructure/integrator/flourcloud/domain"
	"github.com/svfproducts/sales-insights-bot/internal/config"
)

//go:generate mockgen -source=client.go -destination=../mocks/client_mock.go -package=flourcloudmocks

type Client interface {
	ListDocuments(ctx context.Context, params DocumentsParams) ([]flourclouddomain.Document, error)
}

type FlourCloudClient struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	config     *config.Config
}

// NewClient cria uma nova instância do cliente da API do Flour Cloud
func NewClient(cfg *config.Config) Client {
	return &FlourCloudClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		limiter: rate.NewLimiter(rate.Limit(5), 5),
		config:  cfg,
	}
}
