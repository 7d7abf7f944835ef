package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"go.uber.org/zap"

	"github.com/MogudumpuramNikitha/MOGUDUMUPURAMNIKITHA/domain"
)

// File size windows enforced at registration, per file role
const (
	ProfilePictureMinBytes = 50 * 1024
	ProfilePictureMaxBytes = 250 * 1024
	CollegeIDCardMinBytes  = 100 * 1024
	CollegeIDCardMaxBytes  = 500 * 1024
)

var (
	emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	phonePattern = regexp.MustCompile(`^[0-9]{10,15}$`)
)

// RegistrationServiceImpl implements domain.RegistrationService
type RegistrationServiceImpl struct {
	userRepo    domain.UserRepository
	passwordSvc domain.PasswordService
	credGen     domain.CredentialGenerator
	fileStore   domain.FileStore
	notifier    domain.NotificationService
	logger      *zap.Logger
}

// NewRegistrationService creates a new registration service
func NewRegistrationService(
	userRepo domain.UserRepository,
	passwordSvc domain.PasswordService,
	credGen domain.CredentialGenerator,
	fileStore domain.FileStore,
	notifier domain.NotificationService,
	logger *zap.Logger,
) domain.RegistrationService {
	return &RegistrationServiceImpl{
		userRepo:    userRepo,
		passwordSvc: passwordSvc,
		credGen:     credGen,
		fileStore:   fileStore,
		notifier:    notifier,
		logger:      logger,
	}
}

// Register implements domain.RegistrationService. Persistence must
// succeed before any notification attempt; notification failures are
// logged and swallowed, the registration still succeeds.
func (s *RegistrationServiceImpl) Register(ctx context.Context, reg *domain.Registration) (*domain.User, error) {
	if err := validateRegistration(reg); err != nil {
		return nil, err
	}

	// Pre-check by email OR phone for a friendly early error. The
	// unique indexes on the users table remain the authority: a
	// concurrent registration slipping past this check still fails on
	// Create with ErrUserAlreadyExists.
	if _, err := s.userRepo.FindByEmail(ctx, reg.Email); err == nil {
		return nil, domain.ErrUserAlreadyExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check existing email: %w", err)
	}
	if _, err := s.userRepo.FindByPhone(ctx, reg.PhoneNumber); err == nil {
		return nil, domain.ErrUserAlreadyExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check existing phone: %w", err)
	}

	password, err := s.credGen.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate credentials: %w", err)
	}

	hashedPassword, err := s.passwordSvc.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	profilePath, err := s.fileStore.Save(ctx, domain.UploadProfiles, reg.ProfilePicture)
	if err != nil {
		return nil, fmt.Errorf("failed to store profile picture: %w", err)
	}
	idCardPath, err := s.fileStore.Save(ctx, domain.UploadIDs, reg.CollegeIDCard)
	if err != nil {
		return nil, fmt.Errorf("failed to store college id card: %w", err)
	}

	user := &domain.User{
		FullName:        reg.FullName,
		Email:           reg.Email,
		PhoneNumber:     reg.PhoneNumber,
		CollegeName:     reg.CollegeName,
		CollegeIDNumber: reg.CollegeIDNumber,
		PasswordHash:    hashedPassword,
		ProfilePicture:  profilePath,
		CollegeIDCard:   idCardPath,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrUserAlreadyExists) {
			return nil, domain.ErrUserAlreadyExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	// Best-effort credential delivery, after the row is durable.
	subject := "Your Account Credentials"
	if err := s.notifier.SendEmail(reg.Email, subject, credentialsEmailBody(reg.FullName, reg.Email, password)); err != nil {
		s.logger.Error("credentials email failed",
			zap.Uint("user_id", user.ID),
			zap.Error(err),
		)
	}
	if err := s.notifier.SendSMS(reg.PhoneNumber, "Your exam portal account has been created. Login credentials were sent to your email."); err != nil {
		s.logger.Warn("registration sms failed",
			zap.Uint("user_id", user.ID),
			zap.Error(err),
		)
	}

	s.logger.Info("user registered",
		zap.Uint("user_id", user.ID),
		zap.String("email", user.Email),
	)
	return user, nil
}

func validateRegistration(reg *domain.Registration) error {
	if reg.ProfilePicture == nil || reg.CollegeIDCard == nil {
		return domain.NewValidationError("files", "both profile picture and college ID card are required")
	}

	required := []struct {
		field string
		value string
	}{
		{"fullName", reg.FullName},
		{"email", reg.Email},
		{"phoneNumber", reg.PhoneNumber},
		{"collegeName", reg.CollegeName},
		{"collegeIdNumber", reg.CollegeIDNumber},
	}
	for _, f := range required {
		if f.value == "" {
			return domain.NewValidationError(f.field, "is required")
		}
	}

	if !emailPattern.MatchString(reg.Email) {
		return domain.NewValidationError("email", "is not a valid email address")
	}
	if !phonePattern.MatchString(reg.PhoneNumber) {
		return domain.NewValidationError("phoneNumber", "must be 10-15 digits")
	}

	if reg.ProfilePicture.Size < ProfilePictureMinBytes || reg.ProfilePicture.Size > ProfilePictureMaxBytes {
		return domain.NewValidationError("profilePicture", "must be between 50KB and 250KB")
	}
	if reg.CollegeIDCard.Size < CollegeIDCardMinBytes || reg.CollegeIDCard.Size > CollegeIDCardMaxBytes {
		return domain.NewValidationError("collegeIdCard", "must be between 100KB and 500KB")
	}

	return nil
}

func credentialsEmailBody(name, email, password string) string {
	return fmt.Sprintf(`<h1>Welcome to Online Exam Registration Portal</h1>
<p>Dear %s,</p>
<p>Your account has been created successfully.</p>
<p>Here are your login credentials:</p>
<p>Email: %s</p>
<p>Password: %s</p>
<p>Please login and change your password for security reasons.</p>`, name, email, password)
}
