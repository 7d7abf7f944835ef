package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/MogudumpuramNikitha/MOGUDUMUPURAMNIKITHA/domain"
)

// SubmissionRepositoryImpl implements domain.SubmissionRepository using GORM
type SubmissionRepositoryImpl struct {
	db *gorm.DB
}

// DBSubmission represents the database model for Submission. The
// composite unique index enforces one submission per user per test.
type DBSubmission struct {
	ID          uint   `gorm:"primaryKey"`
	TestID      uint   `gorm:"not null;uniqueIndex:idx_submissions_test_user"`
	UserID      uint   `gorm:"not null;uniqueIndex:idx_submissions_test_user"`
	Answers     string `gorm:"type:text;not null"`
	SubmittedAt time.Time
}

// TableName returns the table name for GORM
func (DBSubmission) TableName() string {
	return "submissions"
}

// NewSubmissionRepository creates a new submission repository
func NewSubmissionRepository(db *gorm.DB) domain.SubmissionRepository {
	return &SubmissionRepositoryImpl{db: db}
}

// Create implements domain.SubmissionRepository
func (r *SubmissionRepositoryImpl) Create(ctx context.Context, submission *domain.Submission) error {
	data, err := json.Marshal(submission.Answers)
	if err != nil {
		return fmt.Errorf("failed to marshal answers: %w", err)
	}

	dbSub := DBSubmission{
		TestID:      submission.TestID,
		UserID:      submission.UserID,
		Answers:     string(data),
		SubmittedAt: submission.SubmittedAt,
	}
	if dbSub.SubmittedAt.IsZero() {
		dbSub.SubmittedAt = time.Now()
	}

	if err := r.db.WithContext(ctx).Create(&dbSub).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrDuplicateSubmission
		}
		return err
	}
	submission.ID = dbSub.ID
	submission.SubmittedAt = dbSub.SubmittedAt
	return nil
}

// FindByTestAndUser implements domain.SubmissionRepository
func (r *SubmissionRepositoryImpl) FindByTestAndUser(ctx context.Context, testID, userID uint) (*domain.Submission, error) {
	var dbSub DBSubmission
	err := r.db.WithContext(ctx).
		Where("test_id = ? AND user_id = ?", testID, userID).
		First(&dbSub).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrSubmissionNotFound
		}
		return nil, err
	}

	var answers domain.AnswerSet
	if err := json.Unmarshal([]byte(dbSub.Answers), &answers); err != nil {
		return nil, fmt.Errorf("failed to unmarshal answers: %w", err)
	}

	return &domain.Submission{
		ID:          dbSub.ID,
		TestID:      dbSub.TestID,
		UserID:      dbSub.UserID,
		Answers:     answers,
		SubmittedAt: dbSub.SubmittedAt,
	}, nil
}
