package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// SystemInstruction is the fixed persona sent with every advice request. The
// assistant receives only this instruction plus the new prompt; no
// conversation history crosses the boundary.
const SystemInstruction = `
Você é um Engenheiro de Suporte Técnico Sênior especializado em informática e sistemas de segurança eletrônica (CFTV, Redes, Hardware, Windows/Linux).
Seu objetivo é ajudar técnicos em campo a resolver problemas complexos.
- Forneça diagnósticos passo a passo.
- Sugira ferramentas de teste.
- Se o problema for com câmeras, considere: cabeamento (BNC/RJ45), fonte de alimentação, configurações de rede, protocolos ONVIF/RTSP.
- Se for informática: hardware (RAM, HD/SSD), software (drivers, sistema operacional), rede (IP, gateway, DNS).
- Seja conciso e profissional em Português do Brasil.
`

// User-facing fallback strings. Advice failures never surface as errors to
// the caller.
const (
	FallbackEmptyAnswer  = "Desculpe, não consegui processar seu pedido agora."
	FallbackAdviceFailed = "Ocorreu um erro ao consultar o assistente inteligente."
)

// AdviceService forwards a free-text troubleshooting question to the language
// model and returns its answer.
type AdviceService interface {
	GetTechnicalAdvice(ctx context.Context, prompt string) (string, error)
}

// GeminiAdviceService implements AdviceService against the Gemini
// generateContent API.
type GeminiAdviceService struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

var adviceServiceInstance AdviceService

// InitAdviceService initializes the advice service with the Gemini backend
func InitAdviceService(apiKey, model string) AdviceService {
	adviceServiceInstance = NewGeminiAdviceService(apiKey, model)
	return adviceServiceInstance
}

// GetAdviceService returns the initialized advice service instance
func GetAdviceService() AdviceService {
	return adviceServiceInstance
}

// SetAdviceService sets the advice service instance (primarily for testing)
func SetAdviceService(service AdviceService) {
	adviceServiceInstance = service
}

// NewGeminiAdviceService creates a Gemini-backed advice service
func NewGeminiAdviceService(apiKey, model string) *GeminiAdviceService {
	return &GeminiAdviceService{
		apiKey:  apiKey,
		model:   model,
		baseURL: "https://generativelanguage.googleapis.com/v1beta",
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// SetBaseURL overrides the API endpoint (primarily for testing)
func (s *GeminiAdviceService) SetBaseURL(url string) {
	s.baseURL = url
}

// GetTechnicalAdvice sends the prompt plus the fixed system instruction to
// the model and returns the assistant text.
func (s *GeminiAdviceService) GetTechnicalAdvice(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(s.apiKey) == "" {
		return "", fmt.Errorf("GEMINI_API_KEY not set")
	}

	reqBody := map[string]any{
		"system_instruction": map[string]any{
			"parts": []map[string]string{{"text": SystemInstruction}},
		},
		"contents": []map[string]any{
			{"parts": []map[string]string{{"text": prompt}}},
		},
		"generationConfig": map[string]any{
			"temperature": 0.7,
		},
	}

	b, _ := json.Marshal(reqBody)

	url := fmt.Sprintf("%s/models/%s:generateContent", s.baseURL, s.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("gemini error %d: %s", resp.StatusCode, string(body))
	}

	var parsed struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", err
	}

	var sb strings.Builder
	for _, candidate := range parsed.Candidates {
		for _, part := range candidate.Content.Parts {
			if strings.TrimSpace(part.Text) == "" {
				continue
			}
			if sb.Len() > 0 {
				sb.WriteString("\n")
			}
			sb.WriteString(part.Text)
		}
	}

	return strings.TrimSpace(sb.String()), nil
}
