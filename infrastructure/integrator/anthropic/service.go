package anthropic

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/svfproducts/sales-insights-bot/infrastructure/integrator/anthropic/anthropicclient"
	"github.com/svfproducts/sales-insights-bot/internal/config"
	"github.com/svfproducts/sales-insights-bot/internal/domain"
)

const maxTokens = 200

// IntentClassifier transforma uma mensagem livre do usuário na intenção
// estruturada que o resto do sistema consome.
type IntentClassifier interface {
	Parse(ctx context.Context, message string) (*domain.ParsedIntent, error)
}

type Service struct {
	cfg    *config.Config
	Client anthropicclient.Client
}

func NewService(cfg *config.Config, client anthropicclient.Client) IntentClassifier {
	return &Service{
		cfg:    cfg,
		Client: client,
	}
}

// Parse classifica a mensagem. O modelo é instruído a não usar cercas de
// markdown, mas quando usa mesmo assim, elas são removidas antes do decode.
func (s *Service) Parse(ctx context.Context, message string) (*domain.ParsedIntent, error) {
	response, err := s.Client.CreateMessage(ctx, anthropicclient.MessageRequest{
		Model:     s.cfg.Anthropic.Model,
		MaxTokens: maxTokens,
		System:    systemPrompt,
		Messages: []anthropicclient.Message{
			{Role: "user", Content: message},
		},
	})
	if err != nil {
		return nil, err
	}

	if len(response.Content) == 0 {
		return nil, errors.New("resposta do classificador sem conteúdo")
	}

	text := stripFences(strings.TrimSpace(response.Content[0].Text))

	var parsed domain.ParsedIntent
	if err := json.Unmarshal([]byte(text), &parsed); err != nil {
		logrus.WithError(err).WithField("text", text).Error("Erro ao decodificar a intenção")
		return nil, errors.Wrap(err, "erro ao decodificar a intenção")
	}

	return &parsed, nil
}

// stripFences remove a cerca de markdown (e o marcador de linguagem "json")
// que alguns modelos insistem em colocar em volta do JSON.
func stripFences(text string) string {
	if !strings.HasPrefix(text, "```") {
		return text
	}

	parts := strings.Split(text, "```")
	if len(parts) < 2 {
		return text
	}

	inner := parts[1]
	inner = strings.TrimPrefix(inner, "json")
	return strings.TrimSpace(inner)
}
