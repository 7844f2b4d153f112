// Package bot é o transporte do Telegram: long polling das mensagens,
// filtro de usuários autorizados e envio das respostas.
package bot

import (
	"context"
	"slices"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/svfproducts/sales-insights-bot/internal/config"
	"github.com/svfproducts/sales-insights-bot/internal/domain"
	"github.com/svfproducts/sales-insights-bot/internal/render"
	"github.com/svfproducts/sales-insights-bot/internal/usecases/answering"
)

// messageSender é a fatia da API do Telegram usada para responder
type messageSender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

type Service struct {
	cfg      *config.Config
	api      *tgbotapi.BotAPI
	sender   messageSender
	answerer answering.Answerer
}

func New(cfg *config.Config, answerer answering.Answerer) (*Service, error) {
	api, err := tgbotapi.NewBotAPI(cfg.Telegram.BotToken)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar o cliente do Telegram")
	}

	logrus.WithField("username", api.Self.UserName).Info("Bot do Telegram autenticado")

	return &Service{
		cfg:      cfg,
		api:      api,
		sender:   api,
		answerer: answerer,
	}, nil
}

// Run consome as atualizações até o contexto ser cancelado
func (s *Service) Run(ctx context.Context) error {
	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = 30

	updates := s.api.GetUpdatesChan(updateConfig)

	logrus.Info("Bot rodando, aguardando mensagens")

	for {
		select {
		case <-ctx.Done():
			s.api.StopReceivingUpdates()
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			if update.Message == nil {
				continue
			}
			go s.handleMessage(ctx, update.Message)
		}
	}
}

// SendMessage implementa o envio usado pelo relatório diário
func (s *Service) SendMessage(chatID int64, text string) error {
	_, err := s.sender.Send(tgbotapi.NewMessage(chatID, text))
	return err
}

func (s *Service) handleMessage(ctx context.Context, message *tgbotapi.Message) {
	if message.From == nil {
		return
	}

	userID := message.From.ID
	allowed := s.cfg.Telegram.AllowedUserIDs
	if len(allowed) > 0 && !slices.Contains(allowed, userID) {
		logrus.WithField("user_id", userID).Info("Ignorando usuário não autorizado")
		return
	}

	text := strings.TrimSpace(message.Text)
	if text == "" {
		return
	}

	chatID := message.Chat.ID

	parsed, err := s.answerer.Classify(ctx, text)
	if err != nil {
		logrus.WithError(err).Error("Erro ao classificar a mensagem")
		s.reply(chatID, render.Misunderstood())
		return
	}

	if parsed.Intent == domain.IntentUnknown {
		s.reply(chatID, render.HelpText)
		return
	}

	// Confirma o recebimento antes das buscas, que podem demorar
	s.reply(chatID, render.Ack)
	s.reply(chatID, s.answerer.Respond(ctx, parsed))
}

func (s *Service) reply(chatID int64, text string) {
	if _, err := s.sender.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		logrus.WithError(err).WithField("chat_id", chatID).Error("Erro ao enviar a resposta")
	}
}
