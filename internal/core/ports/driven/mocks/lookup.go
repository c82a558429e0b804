package mocks

import (
	"context"
	"sync"

	"github.com/openjudiciary/casedocs-core/internal/core/domain"
)

// MockCategoryLookup is an in-memory CategoryLookup keyed by
// "formID:classification".
type MockCategoryLookup struct {
	mu         sync.RWMutex
	categories map[string]string

	Calls int
}

// NewMockCategoryLookup creates an empty MockCategoryLookup.
func NewMockCategoryLookup() *MockCategoryLookup {
	return &MockCategoryLookup{categories: make(map[string]string)}
}

// Set registers a category mapping.
func (m *MockCategoryLookup) Set(formID, classification, category string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.categories[formID+":"+classification] = category
}

func (m *MockCategoryLookup) DocumentCategory(ctx context.Context, formID, classification string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls++
	category, ok := m.categories[formID+":"+classification]
	if !ok {
		return "", domain.ErrNotFound
	}
	return category, nil
}
