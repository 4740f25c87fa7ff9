package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/openai/openai-go/option"
	"github.com/shenikar/incident_map_dashboard/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testIncidents() []*models.Incident {
	return []*models.Incident{
		{
			LocationName: "Zara Serrano",
			Summary:      "Incendio en almacén",
			Severity:     models.SeverityHigh,
			Category:     "Incendio",
			CreatedAt:    time.Date(2026, 10, 17, 9, 0, 0, 0, time.UTC),
		},
		{
			LocationName: "Zara Gran Via",
			Summary:      "Falsa alarma",
			Severity:     models.SeverityLow,
			CreatedAt:    time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC),
		},
	}
}

func newTestSummarizer(t *testing.T, handler http.HandlerFunc) *Summarizer {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	return NewSummarizer("test-key", "gpt-4", logger, option.WithBaseURL(server.URL+"/"))
}

func TestBuildPrompt(t *testing.T) {
	prompt := buildPrompt(testIncidents())

	assert.Contains(t, prompt, "Incidencia 1:\n- Ubicación: Zara Serrano\n- Fecha: 17/10/2026\n- Causa: Incendio")
	assert.Contains(t, prompt, "- Severidad: Alta")
	assert.Contains(t, prompt, "Incidencia 2:")
	assert.Contains(t, prompt, "- Causa: No especificada")
}

func TestSummarize_Success(t *testing.T) {
	var request struct {
		Model    string `json:"model"`
		Messages []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"messages"`
	}
	s := newTestSummarizer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&request))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"chatcmpl-1","object":"chat.completion","created":1,"model":"gpt-4",
			"choices":[{"index":0,"finish_reason":"stop","message":{"role":"assistant","content":"  Resumen: 2 incidencias.  "}}]}`))
	})

	summary, err := s.Summarize(context.Background(), testIncidents())

	require.NoError(t, err)
	assert.Equal(t, "Resumen: 2 incidencias.", summary)
	assert.Equal(t, "gpt-4", request.Model)
	require.Len(t, request.Messages, 2)
	assert.Equal(t, "system", request.Messages[0].Role)
	assert.Equal(t, "user", request.Messages[1].Role)
}

func TestSummarize_NoRetryOnError(t *testing.T) {
	var calls atomic.Int32
	s := newTestSummarizer(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":{"message":"boom","type":"server_error"}}`))
	})

	_, err := s.Summarize(context.Background(), testIncidents())

	require.Error(t, err)
	assert.Equal(t, int32(1), calls.Load())
}

func TestSummarize_EmptyChoices(t *testing.T) {
	s := newTestSummarizer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"chatcmpl-1","object":"chat.completion","created":1,"model":"gpt-4","choices":[]}`))
	})

	_, err := s.Summarize(context.Background(), testIncidents())

	assert.ErrorContains(t, err, "no response")
}
