package services

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/MogudumpuramNikitha/MOGUDUMUPURAMNIKITHA/domain"
)

// TestServiceImpl implements domain.TestService
type TestServiceImpl struct {
	testRepo       domain.TestRepository
	submissionRepo domain.SubmissionRepository
	attemptRepo    domain.AttemptRepository
	logger         *zap.Logger
}

// NewTestService creates a new test service
func NewTestService(
	testRepo domain.TestRepository,
	submissionRepo domain.SubmissionRepository,
	attemptRepo domain.AttemptRepository,
	logger *zap.Logger,
) domain.TestService {
	return &TestServiceImpl{
		testRepo:       testRepo,
		submissionRepo: submissionRepo,
		attemptRepo:    attemptRepo,
		logger:         logger,
	}
}

// ListTests implements domain.TestService
func (s *TestServiceImpl) ListTests(ctx context.Context) ([]domain.TestSummary, error) {
	return s.testRepo.List(ctx)
}

// GetTest implements domain.TestService
func (s *TestServiceImpl) GetTest(ctx context.Context, id uint) (*domain.Test, error) {
	return s.testRepo.FindByID(ctx, id)
}

// SubmitAnswers implements domain.TestService. The attempt mark closes
// the race between a manual submit and an expiry-triggered auto-submit;
// the submissions unique index is the durable backstop.
func (s *TestServiceImpl) SubmitAnswers(ctx context.Context, testID, userID uint, answers domain.AnswerSet) error {
	if _, err := s.testRepo.FindByID(ctx, testID); err != nil {
		return err
	}

	ok, err := s.attemptRepo.Begin(ctx, testID, userID)
	if err != nil {
		return fmt.Errorf("failed to guard attempt: %w", err)
	}
	if !ok {
		return domain.ErrDuplicateSubmission
	}

	submission := &domain.Submission{
		TestID:  testID,
		UserID:  userID,
		Answers: answers,
	}
	if err := s.submissionRepo.Create(ctx, submission); err != nil {
		if errors.Is(err, domain.ErrDuplicateSubmission) {
			return domain.ErrDuplicateSubmission
		}
		// Release the mark so a transient store failure does not cost
		// the candidate their attempt.
		if clearErr := s.attemptRepo.Clear(ctx, testID, userID); clearErr != nil {
			s.logger.Error("failed to clear attempt mark",
				zap.Uint("test_id", testID),
				zap.Uint("user_id", userID),
				zap.Error(clearErr),
			)
		}
		return fmt.Errorf("failed to persist submission: %w", err)
	}

	s.logger.Info("test submitted",
		zap.Uint("test_id", testID),
		zap.Uint("user_id", userID),
		zap.Int("answers", len(answers)),
	)
	return nil
}
