package services

import (
	"context"
	"sync"
)

// MockAdviceService is a mock implementation of AdviceService for testing
type MockAdviceService struct {
	Reply string
	Err   error
	Delay chan struct{} // when set, GetTechnicalAdvice blocks until it is closed

	mu      sync.Mutex
	prompts []string
}

// NewMockAdviceService creates a new mock advice service
func NewMockAdviceService(reply string, err error) *MockAdviceService {
	return &MockAdviceService{Reply: reply, Err: err}
}

// SetAsMockForTesting sets this mock as the global advice service instance for testing
func (m *MockAdviceService) SetAsMockForTesting() {
	SetAdviceService(m)
}

// GetTechnicalAdvice records the prompt and returns the canned reply or error
func (m *MockAdviceService) GetTechnicalAdvice(ctx context.Context, prompt string) (string, error) {
	m.mu.Lock()
	m.prompts = append(m.prompts, prompt)
	m.mu.Unlock()

	if m.Delay != nil {
		select {
		case <-m.Delay:
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}

	if m.Err != nil {
		return "", m.Err
	}
	return m.Reply, nil
}

// Prompts returns every prompt the mock has received
func (m *MockAdviceService) Prompts() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.prompts))
	copy(out, m.prompts)
	return out
}
