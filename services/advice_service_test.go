package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubGemini(t *testing.T, handler http.HandlerFunc) *GeminiAdviceService {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	service := NewGeminiAdviceService("test-api-key", "gemini-3-flash-preview")
	service.SetBaseURL(server.URL)
	return service
}

func geminiReply(texts ...string) map[string]any {
	parts := make([]map[string]string, 0, len(texts))
	for _, text := range texts {
		parts = append(parts, map[string]string{"text": text})
	}
	return map[string]any{
		"candidates": []map[string]any{
			{"content": map[string]any{"parts": parts}},
		},
	}
}

func TestGetTechnicalAdvice(t *testing.T) {
	var captured struct {
		path   string
		apiKey string
		body   map[string]any
	}

	service := stubGemini(t, func(w http.ResponseWriter, r *http.Request) {
		captured.path = r.URL.Path
		captured.apiKey = r.Header.Get("x-goog-api-key")
		json.NewDecoder(r.Body).Decode(&captured.body)
		json.NewEncoder(w).Encode(geminiReply("Verifique o cabeamento BNC."))
	})

	answer, err := service.GetTechnicalAdvice(context.Background(), "Câmera 3 sem imagem")
	require.NoError(t, err)
	assert.Equal(t, "Verifique o cabeamento BNC.", answer)

	assert.Equal(t, "/models/gemini-3-flash-preview:generateContent", captured.path)
	assert.Equal(t, "test-api-key", captured.apiKey)

	// The request carries the fixed persona and the prompt, nothing else
	sysParts := captured.body["system_instruction"].(map[string]any)["parts"].([]any)
	require.Len(t, sysParts, 1)
	assert.Equal(t, SystemInstruction, sysParts[0].(map[string]any)["text"])

	contents := captured.body["contents"].([]any)
	require.Len(t, contents, 1, "no conversation history is sent")
}

func TestGetTechnicalAdviceJoinsParts(t *testing.T) {
	service := stubGemini(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(geminiReply("Primeiro passo.", "  ", "Segundo passo."))
	})

	answer, err := service.GetTechnicalAdvice(context.Background(), "DVR reiniciando")
	require.NoError(t, err)
	assert.Equal(t, "Primeiro passo.\nSegundo passo.", answer)
}

func TestGetTechnicalAdviceErrors(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "Upstream error status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, `{"error": "quota exceeded"}`, http.StatusTooManyRequests)
			},
		},
		{
			name: "Malformed response body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte("not json"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := stubGemini(t, tt.handler)

			_, err := service.GetTechnicalAdvice(context.Background(), "pergunta")
			assert.Error(t, err)
		})
	}
}

func TestGetTechnicalAdviceEmptyCandidates(t *testing.T) {
	service := stubGemini(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"candidates": []any{}})
	})

	answer, err := service.GetTechnicalAdvice(context.Background(), "pergunta")
	require.NoError(t, err)
	assert.Empty(t, answer, "caller decides the fallback wording")
}

func TestGetTechnicalAdviceRequiresAPIKey(t *testing.T) {
	service := NewGeminiAdviceService("", "gemini-3-flash-preview")

	_, err := service.GetTechnicalAdvice(context.Background(), "pergunta")
	assert.Error(t, err)
}
