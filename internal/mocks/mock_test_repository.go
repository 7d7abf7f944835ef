package mocks

import (
	"context"

	"github.com/MogudumpuramNikitha/MOGUDUMUPURAMNIKITHA/domain"
)

// MockTestRepository implements domain.TestRepository interface for testing
type MockTestRepository struct {
	ListFunc     func(ctx context.Context) ([]domain.TestSummary, error)
	FindByIDFunc func(ctx context.Context, id uint) (*domain.Test, error)
	CountFunc    func(ctx context.Context) (int64, error)
	CreateFunc   func(ctx context.Context, test *domain.Test) error
}

// NewMockTestRepository creates a new MockTestRepository with default behaviors
func NewMockTestRepository() *MockTestRepository {
	return &MockTestRepository{}
}

// List lists test summaries
func (m *MockTestRepository) List(ctx context.Context) ([]domain.TestSummary, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	// Default behavior: empty catalogue
	return nil, nil
}

// FindByID finds a test by ID
func (m *MockTestRepository) FindByID(ctx context.Context, id uint) (*domain.Test, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	// Default behavior: not found
	return nil, domain.ErrTestNotFound
}

// Count counts tests
func (m *MockTestRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

// Create creates a test
func (m *MockTestRepository) Create(ctx context.Context, test *domain.Test) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, test)
	}
	// Default behavior: success
	return nil
}

// Compile-time interface compliance verification
var _ domain.TestRepository = (*MockTestRepository)(nil)
