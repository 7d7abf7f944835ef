package mocks

import (
	"context"
	"fmt"
	"sync"

	"github.com/MogudumpuramNikitha/MOGUDUMUPURAMNIKITHA/domain"
)

// MockAttemptRepository implements domain.AttemptRepository for testing.
// The default behavior is a real in-memory mark, so tests exercise the
// at-most-once guard without Redis.
type MockAttemptRepository struct {
	BeginFunc func(ctx context.Context, testID, userID uint) (bool, error)
	ClearFunc func(ctx context.Context, testID, userID uint) error

	mu    sync.Mutex
	marks map[string]bool
}

// NewMockAttemptRepository creates a new MockAttemptRepository
func NewMockAttemptRepository() *MockAttemptRepository {
	return &MockAttemptRepository{marks: make(map[string]bool)}
}

func attemptKey(testID, userID uint) string {
	return fmt.Sprintf("%d:%d", testID, userID)
}

// Begin marks an attempt as submitted
func (m *MockAttemptRepository) Begin(ctx context.Context, testID, userID uint) (bool, error) {
	if m.BeginFunc != nil {
		return m.BeginFunc(ctx, testID, userID)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	key := attemptKey(testID, userID)
	if m.marks[key] {
		return false, nil
	}
	m.marks[key] = true
	return true, nil
}

// Clear removes the attempt mark
func (m *MockAttemptRepository) Clear(ctx context.Context, testID, userID uint) error {
	if m.ClearFunc != nil {
		return m.ClearFunc(ctx, testID, userID)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.marks, attemptKey(testID, userID))
	return nil
}

// Compile-time interface compliance verification
var _ domain.AttemptRepository = (*MockAttemptRepository)(nil)
