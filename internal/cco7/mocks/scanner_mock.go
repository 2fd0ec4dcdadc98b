package mocks

import (
	"sync"

	"github.com/RavuAlHemio/cco7/internal/cco7/models"
)

// MockConfigScanner はConfigScannerのモック実装です
type MockConfigScanner struct {
	Findings  []*models.Finding
	Error     error
	Texts     []string
	CallCount int

	mu sync.Mutex
}

// Scan はモック実装です
func (m *MockConfigScanner) Scan(text string) ([]*models.Finding, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CallCount++
	m.Texts = append(m.Texts, text)
	if m.Error != nil {
		return nil, m.Error
	}
	return m.Findings, nil
}
