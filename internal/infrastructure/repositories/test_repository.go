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

// TestRepositoryImpl implements domain.TestRepository using GORM
type TestRepositoryImpl struct {
	db *gorm.DB
}

// DBTest represents the database model for Test
type DBTest struct {
	ID              uint   `gorm:"primaryKey"`
	Title           string `gorm:"size:255;not null"`
	Description     string `gorm:"size:1024"`
	DurationMinutes int    `gorm:"not null"`
	Questions       []DBQuestion `gorm:"foreignKey:TestID"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName returns the table name for GORM
func (DBTest) TableName() string {
	return "tests"
}

// DBQuestion represents the database model for Question. MCQ options
// are stored JSON-serialized in a single column.
type DBQuestion struct {
	ID      uint   `gorm:"primaryKey"`
	TestID  uint   `gorm:"index;not null"`
	Section string `gorm:"size:64"`
	Text    string `gorm:"size:2048;not null"`
	Type    string `gorm:"size:16;not null"`
	Options string `gorm:"size:2048"`
}

// TableName returns the table name for GORM
func (DBQuestion) TableName() string {
	return "questions"
}

// NewTestRepository creates a new test repository
func NewTestRepository(db *gorm.DB) domain.TestRepository {
	return &TestRepositoryImpl{db: db}
}

// List implements domain.TestRepository
func (r *TestRepositoryImpl) List(ctx context.Context) ([]domain.TestSummary, error) {
	var dbTests []DBTest
	if err := r.db.WithContext(ctx).Preload("Questions").Find(&dbTests).Error; err != nil {
		return nil, err
	}

	summaries := make([]domain.TestSummary, 0, len(dbTests))
	for _, t := range dbTests {
		summaries = append(summaries, domain.TestSummary{
			ID:              t.ID,
			Title:           t.Title,
			Description:     t.Description,
			DurationMinutes: t.DurationMinutes,
			QuestionCount:   len(t.Questions),
		})
	}
	return summaries, nil
}

// FindByID implements domain.TestRepository
func (r *TestRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.Test, error) {
	var dbTest DBTest
	err := r.db.WithContext(ctx).Preload("Questions").Where("id = ?", id).First(&dbTest).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTestNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbTest)
}

// Count implements domain.TestRepository
func (r *TestRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&DBTest{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Create implements domain.TestRepository
func (r *TestRepositoryImpl) Create(ctx context.Context, test *domain.Test) error {
	dbTest := DBTest{
		Title:           test.Title,
		Description:     test.Description,
		DurationMinutes: test.DurationMinutes,
	}
	for _, q := range test.Questions {
		options := ""
		if len(q.Options) > 0 {
			data, err := json.Marshal(q.Options)
			if err != nil {
				return fmt.Errorf("failed to marshal question options: %w", err)
			}
			options = string(data)
		}
		dbTest.Questions = append(dbTest.Questions, DBQuestion{
			Section: q.Section,
			Text:    q.Text,
			Type:    string(q.Type),
			Options: options,
		})
	}

	if err := r.db.WithContext(ctx).Create(&dbTest).Error; err != nil {
		return err
	}
	test.ID = dbTest.ID
	return nil
}

func (r *TestRepositoryImpl) dbToDomain(dbTest *DBTest) (*domain.Test, error) {
	test := &domain.Test{
		ID:              dbTest.ID,
		Title:           dbTest.Title,
		Description:     dbTest.Description,
		DurationMinutes: dbTest.DurationMinutes,
	}
	for _, q := range dbTest.Questions {
		var options []string
		if q.Options != "" {
			if err := json.Unmarshal([]byte(q.Options), &options); err != nil {
				return nil, fmt.Errorf("failed to unmarshal question options: %w", err)
			}
		}
		test.Questions = append(test.Questions, domain.Question{
			ID:      q.ID,
			TestID:  q.TestID,
			Section: q.Section,
			Text:    q.Text,
			Type:    domain.QuestionType(q.Type),
			Options: options,
		})
	}
	return test, nil
}
