package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/shenikar/incident_map_dashboard/internal/models"
	"github.com/shenikar/incident_map_dashboard/internal/report"
	"github.com/sirupsen/logrus"
)

const systemPrompt = "Eres un analista de seguridad que redacta informes de incidencias en español."

// Summarizer генерирует сводку по инцидентам через OpenAI Chat Completions
type Summarizer struct {
	client *openai.Client
	model  string
	logger *logrus.Logger
}

// NewSummarizer создает клиента. Повторы отключены: при ошибке вызывающий
// сразу переходит на статистическую сводку.
func NewSummarizer(apiKey, model string, logger *logrus.Logger, opts ...option.RequestOption) *Summarizer {
	options := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}
	options = append(options, opts...)

	c := openai.NewClient(options...)
	return &Summarizer{
		client: &c,
		model:  model,
		logger: logger,
	}
}

// Summarize отправляет список инцидентов модели и возвращает текст ответа
func (s *Summarizer) Summarize(ctx context.Context, incidents []*models.Incident) (string, error) {
	resp, err := s.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(buildPrompt(incidents)),
		},
		Model: s.model,
	})
	if err != nil {
		return "", fmt.Errorf("llm: chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("llm: no response from OpenAI")
	}

	s.logger.WithFields(logrus.Fields{
		"model":     s.model,
		"incidents": len(incidents),
	}).Debug("Summary received from LLM")
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

func buildPrompt(incidents []*models.Incident) string {
	var b strings.Builder
	b.WriteString(`Analiza las siguientes incidencias de seguridad y redacta un resumen completo en español. Incluye:
1. Número total de incidencias
2. Causas más comunes
3. Ubicaciones con más incidencias
4. Patrones de severidad
5. Recomendaciones de mejora

Incidencias:
`)
	for i, inc := range incidents {
		cause := inc.Category
		if cause == "" {
			cause = "No especificada"
		}
		fmt.Fprintf(&b, "\nIncidencia %d:\n- Ubicación: %s\n- Fecha: %s\n- Causa: %s\n- Descripción: %s\n- Severidad: %s\n",
			i+1, inc.LocationName, report.ShortDate(inc.CreatedAt), cause, inc.Summary, inc.Severity.Label())
	}
	b.WriteString("\nProporciona un resumen claro y profesional en español:")
	return b.String()
}
