package anthropicclient

import (
	"context"
	"net/http"
	"time"

	"github.com/svfproducts/sales-insights-bot/internal/config"
)

//go:generate mockgen -source=client.go -destination=../mocks/client_mock.go -package=anthropicmocks

type Client interface {
	CreateMessage(ctx context.Context, request MessageRequest) (*MessageResponse, error)
}

type AnthropicClient struct {
	httpClient *http.Client
	config     *config.Config
}

func New(cfg *config.Config) Client {
	return &AnthropicClient{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		config:     cfg,
	}
}
