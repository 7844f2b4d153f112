package gmailclient

import (
	"context"
	"os"
	"sync"

	"github.com/pkg/errors"
	"golang.org/x/oauth2/google"
	gmail "google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"

	gmaildomain "github.com/svfproducts/sales-insights-bot/infrastructure/integrator/gmail/domain"
	"github.com/svfproducts/sales-insights-bot/internal/config"
)

//go:generate mockgen -source=client.go -destination=../mocks/client_mock.go -package=gmailmocks

// Resultados por caixa em cada busca
const maxResults = 3

type Client interface {
	SearchMessages(ctx context.Context, inbox, query string) ([]gmaildomain.Message, error)
}

// GmailClient acessa cada caixa via delegação de domínio: a credencial da
// conta de serviço é emitida com o e-mail da caixa como subject.
type GmailClient struct {
	config *config.Config

	mu       sync.Mutex
	services map[string]*gmail.Service
}

func New(cfg *config.Config) Client {
	return &GmailClient{
		config:   cfg,
		services: make(map[string]*gmail.Service),
	}
}

func (c *GmailClient) credentialsJSON() ([]byte, error) {
	if c.config.Google.ServiceAccountJSON != "" {
		return []byte(c.config.Google.ServiceAccountJSON), nil
	}

	data, err := os.ReadFile(c.config.Google.ServiceAccountFile)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler a credencial da conta de serviço")
	}
	return data, nil
}

func (c *GmailClient) serviceFor(ctx context.Context, inbox string) (*gmail.Service, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if service, ok := c.services[inbox]; ok {
		return service, nil
	}

	data, err := c.credentialsJSON()
	if err != nil {
		return nil, err
	}

	jwt, err := google.JWTConfigFromJSON(data, gmail.GmailReadonlyScope)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao montar a credencial JWT")
	}
	jwt.Subject = inbox

	service, err := gmail.NewService(ctx, option.WithHTTPClient(jwt.Client(ctx)))
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao criar o cliente do Gmail para %s", inbox)
	}

	c.services[inbox] = service
	return service, nil
}

// SearchMessages busca na caixa e devolve os metadados das primeiras
// mensagens que casarem com a consulta.
func (c *GmailClient) SearchMessages(ctx context.Context, inbox, query string) ([]gmaildomain.Message, error) {
	service, err := c.serviceFor(ctx, inbox)
	if err != nil {
		return nil, err
	}

	list, err := service.Users.Messages.List("me").
		Q(query).
		MaxResults(maxResults).
		Context(ctx).
		Do()
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao buscar em %s", inbox)
	}

	messages := make([]gmaildomain.Message, 0, len(list.Messages))
	for _, ref := range list.Messages {
		detail, err := service.Users.Messages.Get("me", ref.Id).
			Format("metadata").
			MetadataHeaders("Subject", "From", "Date").
			Context(ctx).
			Do()
		if err != nil {
			return nil, errors.Wrapf(err, "erro ao ler a mensagem %s de %s", ref.Id, inbox)
		}

		message := gmaildomain.Message{ID: ref.Id, Subject: "(no subject)"}
		if detail.Payload != nil {
			for _, header := range detail.Payload.Headers {
				switch header.Name {
				case "Subject":
					message.Subject = header.Value
				case "From":
					message.From = header.Value
				case "Date":
					message.Date = header.Value
				}
			}
		}
		messages = append(messages, message)
	}

	return messages, nil
}
