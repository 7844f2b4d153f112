package bot

import (
	"context"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/svfproducts/sales-insights-bot/internal/config"
	"github.com/svfproducts/sales-insights-bot/internal/domain"
	"github.com/svfproducts/sales-insights-bot/internal/render"
	answeringmocks "github.com/svfproducts/sales-insights-bot/internal/usecases/answering/mocks"
)

type fakeSender struct {
	sent []tgbotapi.MessageConfig
}

func (f *fakeSender) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	if msg, ok := c.(tgbotapi.MessageConfig); ok {
		f.sent = append(f.sent, msg)
	}
	return tgbotapi.Message{}, nil
}

func newTestBot(t *testing.T, allowedUserIDs []int64) (*Service, *fakeSender, *answeringmocks.MockAnswerer) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	sender := &fakeSender{}
	answerer := answeringmocks.NewMockAnswerer(ctrl)

	service := &Service{
		cfg: &config.Config{
			Telegram: config.Telegram{AllowedUserIDs: allowedUserIDs},
		},
		sender:   sender,
		answerer: answerer,
	}
	return service, sender, answerer
}

func incomingMessage(userID, chatID int64, text string) *tgbotapi.Message {
	return &tgbotapi.Message{
		From: &tgbotapi.User{ID: userID},
		Chat: &tgbotapi.Chat{ID: chatID},
		Text: text,
	}
}

func TestHandleMessage_RespondeComAckEResposta(t *testing.T) {
	service, sender, answerer := newTestBot(t, nil)

	parsed := &domain.ParsedIntent{Intent: domain.IntentSalesByPeriod}
	answerer.EXPECT().
		Classify(gomock.Any(), "sales today").
		Return(parsed, nil)
	answerer.EXPECT().
		Respond(gomock.Any(), parsed).
		Return("Online (Shopify) — today\nRevenue: €150.50\nOrders: 3")

	service.handleMessage(context.Background(), incomingMessage(7, 100, "sales today"))

	require.Len(t, sender.sent, 2)
	assert.Equal(t, render.Ack, sender.sent[0].Text)
	assert.Equal(t, int64(100), sender.sent[0].ChatID)
	assert.Contains(t, sender.sent[1].Text, "Online (Shopify)")
}

func TestHandleMessage_UsuarioForaDaLista(t *testing.T) {
	service, sender, _ := newTestBot(t, []int64{1, 2})

	// Nenhuma chamada ao classificador e nenhuma resposta
	service.handleMessage(context.Background(), incomingMessage(99, 100, "sales today"))

	assert.Empty(t, sender.sent)
}

func TestHandleMessage_ListaVaziaPermiteTodos(t *testing.T) {
	service, sender, answerer := newTestBot(t, nil)

	answerer.EXPECT().
		Classify(gomock.Any(), "help").
		Return(&domain.ParsedIntent{Intent: domain.IntentUnknown}, nil)

	service.handleMessage(context.Background(), incomingMessage(99, 100, "help"))

	// Intenção desconhecida devolve a ajuda direto, sem ack
	require.Len(t, sender.sent, 1)
	assert.Equal(t, render.HelpText, sender.sent[0].Text)
}

func TestHandleMessage_ErroDeClassificacao(t *testing.T) {
	service, sender, answerer := newTestBot(t, nil)

	answerer.EXPECT().
		Classify(gomock.Any(), "???").
		Return(nil, assert.AnError)

	service.handleMessage(context.Background(), incomingMessage(7, 100, "???"))

	require.Len(t, sender.sent, 1)
	assert.Contains(t, sender.sent[0].Text, "Sorry, I had trouble understanding that.")
}

func TestHandleMessage_MensagemVazia(t *testing.T) {
	service, sender, _ := newTestBot(t, nil)

	service.handleMessage(context.Background(), incomingMessage(7, 100, "   "))

	assert.Empty(t, sender.sent)
}
