package googlesheetsclient

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/svfproducts/sales-insights-bot/internal/config"
)

//go:generate mockgen -source=client.go -destination=../mocks/client_mock.go -package=googlesheetsmocks

// Client é a fatia da API de planilhas que os serviços consomem. Todas as
// células chegam como string, como na própria planilha.
type Client interface {
	Values(ctx context.Context, spreadsheetID, readRange string) ([][]string, error)
	TabTitles(ctx context.Context, spreadsheetID string) ([]string, error)
}

type SheetsClient struct {
	service *sheets.Service
}

func New(ctx context.Context, cfg *config.Config) (Client, error) {
	opts := []option.ClientOption{
		option.WithScopes(sheets.SpreadsheetsReadonlyScope),
	}

	// Credencial inline (deploy) tem precedência sobre arquivo (local)
	if cfg.Google.ServiceAccountJSON != "" {
		opts = append(opts, option.WithCredentialsJSON([]byte(cfg.Google.ServiceAccountJSON)))
	} else {
		opts = append(opts, option.WithCredentialsFile(cfg.Google.ServiceAccountFile))
	}

	service, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar o cliente de planilhas")
	}

	return &SheetsClient{service: service}, nil
}

func (c *SheetsClient) Values(ctx context.Context, spreadsheetID, readRange string) ([][]string, error) {
	resp, err := c.service.Spreadsheets.Values.Get(spreadsheetID, readRange).Context(ctx).Do()
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao ler o intervalo %s", readRange)
	}

	rows := make([][]string, 0, len(resp.Values))
	for _, row := range resp.Values {
		cells := make([]string, 0, len(row))
		for _, cell := range row {
			cells = append(cells, fmt.Sprint(cell))
		}
		rows = append(rows, cells)
	}
	return rows, nil
}

func (c *SheetsClient) TabTitles(ctx context.Context, spreadsheetID string) ([]string, error) {
	meta, err := c.service.Spreadsheets.Get(spreadsheetID).Context(ctx).Do()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler os metadados da planilha")
	}

	titles := make([]string, 0, len(meta.Sheets))
	for _, sheet := range meta.Sheets {
		if sheet.Properties != nil {
			titles = append(titles, sheet.Properties.Title)
		}
	}
	return titles, nil
}
