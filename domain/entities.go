package domain

import (
	"io"
	"time"
)

// User represents a registered exam candidate
type User struct {
	ID              uint
	FullName        string
	Email           string
	PhoneNumber     string
	CollegeName     string
	CollegeIDNumber string
	PasswordHash    string `gorm:"column:password"`
	ProfilePicture  string
	CollegeIDCard   string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Upload is one file part received with a registration request.
// Content is only valid for the lifetime of the request.
type Upload struct {
	Filename string
	Size     int64
	Content  io.Reader
}

// Registration carries the self-registration input before validation
type Registration struct {
	FullName        string
	Email           string
	PhoneNumber     string
	CollegeName     string
	CollegeIDNumber string
	ProfilePicture  *Upload
	CollegeIDCard   *Upload
}

// QuestionType discriminates how a question is answered
type QuestionType string

const (
	QuestionMCQ     QuestionType = "MCQ"
	QuestionNumeric QuestionType = "numeric"
)

// Question is a single exam question. Options is empty for numeric questions.
type Question struct {
	ID      uint
	TestID  uint
	Section string
	Text    string
	Type    QuestionType
	Options []string
}

// Test is one exam instance: metadata, timing rule and questions
type Test struct {
	ID              uint
	Title           string
	Description     string
	DurationMinutes int
	Questions       []Question
}

// DurationSeconds returns the allotted time for one attempt in seconds
func (t *Test) DurationSeconds() int {
	return t.DurationMinutes * 60
}

// TestSummary is the dashboard view of a test
type TestSummary struct {
	ID              uint   `json:"id"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	DurationMinutes int    `json:"duration"`
	QuestionCount   int    `json:"questionCount"`
}

// AnswerSet maps a question identifier to the recorded answer: an MCQ
// option index or the raw numeric value the candidate entered.
type AnswerSet map[string]any

// Submission records one user's answers for one test
type Submission struct {
	ID          uint
	TestID      uint
	UserID      uint
	Answers     AnswerSet
	SubmittedAt time.Time
}
