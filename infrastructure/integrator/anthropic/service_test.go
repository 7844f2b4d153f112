package anthropic

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/svfproducts/sales-insights-bot/infrastructure/integrator/anthropic/anthropicclient"
	anthropicmocks "github.com/svfproducts/sales-insights-bot/infrastructure/integrator/anthropic/mocks"
	"github.com/svfproducts/sales-insights-bot/internal/config"
	"github.com/svfproducts/sales-insights-bot/internal/domain"
)

func newTestService(client *anthropicmocks.MockClient) IntentClassifier {
	cfg := &config.Config{
		Anthropic: config.Anthropic{Model: "claude-haiku-4-5-20251001"},
	}
	return NewService(cfg, client)
}

func textResponse(text string) *anthropicclient.MessageResponse {
	return &anthropicclient.MessageResponse{
		Content: []anthropicclient.ContentBlock{{Type: "text", Text: text}},
	}
}

func TestParse(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := anthropicmocks.NewMockClient(ctrl)
	service := newTestService(mockClient)

	mockClient.EXPECT().
		CreateMessage(gomock.Any(), gomock.Cond(func(x any) bool {
			req, ok := x.(anthropicclient.MessageRequest)
			return ok && req.Model == "claude-haiku-4-5-20251001" &&
				req.MaxTokens == 200 &&
				req.System != "" &&
				len(req.Messages) == 1 &&
				req.Messages[0].Content == "retail sales yesterday"
		})).
		Return(textResponse(`{"intent":"sales_by_period","period":"yesterday","channel":"retail","product":null,"search_query":null}`), nil)

	parsed, err := service.Parse(context.Background(), "retail sales yesterday")

	require.NoError(t, err)
	assert.Equal(t, domain.IntentSalesByPeriod, parsed.Intent)
	assert.Equal(t, "yesterday", parsed.Period)
	assert.Equal(t, domain.ChannelRetail, parsed.Channel)
}

func TestParse_RemoveCercasDeMarkdown(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{
			name: "cerca com marcador json",
			text: "```json\n{\"intent\":\"company_info\"}\n```",
		},
		{
			name: "cerca sem marcador",
			text: "```\n{\"intent\":\"company_info\"}\n```",
		},
		{
			name: "sem cerca",
			text: `{"intent":"company_info"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockClient := anthropicmocks.NewMockClient(ctrl)
			service := newTestService(mockClient)

			mockClient.EXPECT().
				CreateMessage(gomock.Any(), gomock.Any()).
				Return(textResponse(tt.text), nil)

			parsed, err := service.Parse(context.Background(), "what's our IBAN?")

			require.NoError(t, err)
			assert.Equal(t, domain.IntentCompanyInfo, parsed.Intent)
		})
	}
}

func TestParse_RespostaInvalida(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := anthropicmocks.NewMockClient(ctrl)
	service := newTestService(mockClient)

	mockClient.EXPECT().
		CreateMessage(gomock.Any(), gomock.Any()).
		Return(textResponse("I'm not sure what you mean."), nil)

	parsed, err := service.Parse(context.Background(), "???")

	assert.Error(t, err)
	assert.Nil(t, parsed)
}

func TestParse_RespostaSemConteudo(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := anthropicmocks.NewMockClient(ctrl)
	service := newTestService(mockClient)

	mockClient.EXPECT().
		CreateMessage(gomock.Any(), gomock.Any()).
		Return(&anthropicclient.MessageResponse{}, nil)

	parsed, err := service.Parse(context.Background(), "total sales")

	assert.Error(t, err)
	assert.Nil(t, parsed)
}
