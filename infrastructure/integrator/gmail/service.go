package gmail

import (
	"context"
	"net/mail"

	"github.com/sirupsen/logrus"

	gmaildomain "github.com/svfproducts/sales-insights-bot/infrastructure/integrator/gmail/domain"
	"github.com/svfproducts/sales-insights-bot/infrastructure/integrator/gmail/gmailclient"
	"github.com/svfproducts/sales-insights-bot/internal/config"
	"github.com/svfproducts/sales-insights-bot/internal/domain"
)

// GmailIntegrator busca a mesma consulta em todas as caixas configuradas
type GmailIntegrator interface {
	SearchAll(ctx context.Context, query string) map[string][]domain.MailMessage
}

type Service struct {
	cfg    *config.Config
	Client gmailclient.Client
}

func New(cfg *config.Config, client gmailclient.Client) GmailIntegrator {
	return &Service{
		cfg:    cfg,
		Client: client,
	}
}

// SearchAll consulta cada caixa de forma independente: falha em uma caixa
// vira lista vazia e não derruba a busca nas demais.
func (s *Service) SearchAll(ctx context.Context, query string) map[string][]domain.MailMessage {
	results := make(map[string][]domain.MailMessage, len(s.cfg.Google.GmailInboxes))

	for _, inbox := range s.cfg.Google.GmailInboxes {
		messages, err := s.Client.SearchMessages(ctx, inbox, query)
		if err != nil {
			logrus.WithError(err).WithField("inbox", inbox).Error("Erro na busca do Gmail")
			results[inbox] = []domain.MailMessage{}
			continue
		}

		converted := make([]domain.MailMessage, 0, len(messages))
		for _, message := range messages {
			converted = append(converted, toMailMessage(message))
		}
		results[inbox] = converted
	}

	return results
}

func toMailMessage(message gmaildomain.Message) domain.MailMessage {
	return domain.MailMessage{
		Subject: message.Subject,
		From:    message.From,
		Date:    formatDate(message.Date),
		Link:    "https://mail.google.com/mail/u/0/#all/" + message.ID,
	}
}

// formatDate reapresenta o cabeçalho Date em forma curta; cabeçalho fora do
// padrão é mostrado como veio
func formatDate(raw string) string {
	parsed, err := mail.ParseDate(raw)
	if err != nil {
		return raw
	}
	return parsed.Format("02 Jan 2006 15:04")
}
