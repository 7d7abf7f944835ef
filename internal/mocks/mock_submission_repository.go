package mocks

import (
	"context"

	"github.com/MogudumpuramNikitha/MOGUDUMUPURAMNIKITHA/domain"
)

// MockSubmissionRepository implements domain.SubmissionRepository for testing
type MockSubmissionRepository struct {
	CreateFunc            func(ctx context.Context, submission *domain.Submission) error
	FindByTestAndUserFunc func(ctx context.Context, testID, userID uint) (*domain.Submission, error)
}

// NewMockSubmissionRepository creates a new MockSubmissionRepository
func NewMockSubmissionRepository() *MockSubmissionRepository {
	return &MockSubmissionRepository{}
}

// Create records a submission
func (m *MockSubmissionRepository) Create(ctx context.Context, submission *domain.Submission) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, submission)
	}
	// Default behavior: success
	return nil
}

// FindByTestAndUser finds a submission
func (m *MockSubmissionRepository) FindByTestAndUser(ctx context.Context, testID, userID uint) (*domain.Submission, error) {
	if m.FindByTestAndUserFunc != nil {
		return m.FindByTestAndUserFunc(ctx, testID, userID)
	}
	// Default behavior: not found
	return nil, domain.ErrSubmissionNotFound
}

// Compile-time interface compliance verification
var _ domain.SubmissionRepository = (*MockSubmissionRepository)(nil)
