package domain

import "context"

// UserRepository defines user data access operations
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByPhone(ctx context.Context, phone string) (*User, error)
	FindByID(ctx context.Context, id uint) (*User, error)
}

// TestRepository defines test data access operations
type TestRepository interface {
	List(ctx context.Context) ([]TestSummary, error)
	FindByID(ctx context.Context, id uint) (*Test, error)
	Count(ctx context.Context) (int64, error)
	Create(ctx context.Context, test *Test) error
}

// SubmissionRepository defines submission data access operations
type SubmissionRepository interface {
	Create(ctx context.Context, submission *Submission) error
	FindByTestAndUser(ctx context.Context, testID, userID uint) (*Submission, error)
}

// AttemptRepository guards submissions so that one user submits one
// test at most once, even under concurrent requests.
type AttemptRepository interface {
	// Begin marks the attempt as submitted. It returns false when the
	// mark was already set by an earlier request.
	Begin(ctx context.Context, testID, userID uint) (bool, error)
	// Clear removes the mark so a failed persist can be retried.
	Clear(ctx context.Context, testID, userID uint) error
}

// RegistrationService defines the self-registration business logic
type RegistrationService interface {
	Register(ctx context.Context, reg *Registration) (*User, error)
}

// AuthService defines authentication business logic
type AuthService interface {
	Login(ctx context.Context, email, password string) (string, error)
	GetUserProfile(ctx context.Context, userID uint) (*User, error)
}

// TestService defines the exam catalogue and submission logic
type TestService interface {
	ListTests(ctx context.Context) ([]TestSummary, error)
	GetTest(ctx context.Context, id uint) (*Test, error)
	SubmitAnswers(ctx context.Context, testID, userID uint, answers AnswerSet) error
}

// PasswordService defines password operations
type PasswordService interface {
	Hash(password string) (string, error)
	Verify(hashedPassword, password string) bool
}

// CredentialGenerator produces the one-time plaintext password issued
// at registration. The value is never persisted.
type CredentialGenerator interface {
	Generate() (string, error)
}

// TokenService defines session token operations
type TokenService interface {
	Generate(userID uint) (string, error)
	Validate(token string) (*TokenClaims, error)
}

// TokenClaims represents the decoded session token
type TokenClaims struct {
	UserID    uint  `json:"user_id"`
	IssuedAt  int64 `json:"iat"`
	ExpiresAt int64 `json:"exp"`
}

// NotificationService defines notification operations
type NotificationService interface {
	SendEmail(to, subject, body string) error
	SendSMS(to, message string) error
}

// Upload categories used by FileStore implementations
const (
	UploadProfiles = "profiles"
	UploadIDs      = "ids"
)

// FileStore persists uploaded binary content outside the relational
// store and returns the reference kept on the user record.
type FileStore interface {
	Save(ctx context.Context, category string, upload *Upload) (string, error)
}
