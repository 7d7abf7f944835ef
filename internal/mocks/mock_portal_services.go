package mocks

import (
	"context"

	"github.com/MogudumpuramNikitha/MOGUDUMUPURAMNIKITHA/domain"
)

// MockRegistrationService implements domain.RegistrationService for testing
type MockRegistrationService struct {
	RegisterFunc func(ctx context.Context, reg *domain.Registration) (*domain.User, error)
}

// NewMockRegistrationService creates a new MockRegistrationService
func NewMockRegistrationService() *MockRegistrationService {
	return &MockRegistrationService{}
}

// Register registers a user
func (m *MockRegistrationService) Register(ctx context.Context, reg *domain.Registration) (*domain.User, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, reg)
	}
	return &domain.User{ID: 1, Email: reg.Email, FullName: reg.FullName}, nil
}

// MockTestService implements domain.TestService for testing
type MockTestService struct {
	ListTestsFunc     func(ctx context.Context) ([]domain.TestSummary, error)
	GetTestFunc       func(ctx context.Context, id uint) (*domain.Test, error)
	SubmitAnswersFunc func(ctx context.Context, testID, userID uint, answers domain.AnswerSet) error
}

// NewMockTestService creates a new MockTestService
func NewMockTestService() *MockTestService {
	return &MockTestService{}
}

// ListTests lists test summaries
func (m *MockTestService) ListTests(ctx context.Context) ([]domain.TestSummary, error) {
	if m.ListTestsFunc != nil {
		return m.ListTestsFunc(ctx)
	}
	return nil, nil
}

// GetTest fetches one test
func (m *MockTestService) GetTest(ctx context.Context, id uint) (*domain.Test, error) {
	if m.GetTestFunc != nil {
		return m.GetTestFunc(ctx, id)
	}
	return nil, domain.ErrTestNotFound
}

// SubmitAnswers records a submission
func (m *MockTestService) SubmitAnswers(ctx context.Context, testID, userID uint, answers domain.AnswerSet) error {
	if m.SubmitAnswersFunc != nil {
		return m.SubmitAnswersFunc(ctx, testID, userID, answers)
	}
	return nil
}

// Compile-time interface compliance verification
var (
	_ domain.RegistrationService = (*MockRegistrationService)(nil)
	_ domain.TestService         = (*MockTestService)(nil)
)
