package services

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/MogudumpuramNikitha/MOGUDUMUPURAMNIKITHA/domain"
	"github.com/MogudumpuramNikitha/MOGUDUMUPURAMNIKITHA/internal/mocks"
)

func TestAuthService_Login(t *testing.T) {
	knownUser := &domain.User{
		ID:           7,
		Email:        "alice@example.com",
		PasswordHash: "hashed_correct-password",
	}

	tests := []struct {
		name          string
		email         string
		password      string
		setupMocks    func(userRepo *mocks.MockUserRepository, tokenSvc *mocks.MockTokenService)
		expectedErr   error
		expectedToken string
	}{
		{
			name:     "successful login",
			email:    "alice@example.com",
			password: "correct-password",
			setupMocks: func(userRepo *mocks.MockUserRepository, tokenSvc *mocks.MockTokenService) {
				userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
					return knownUser, nil
				}
				tokenSvc.GenerateFunc = func(userID uint) (string, error) {
					if userID != 7 {
						t.Errorf("token generated for user %d, want 7", userID)
					}
					return "signed-token", nil
				}
			},
			expectedToken: "signed-token",
		},
		{
			name:     "unknown email",
			email:    "ghost@example.com",
			password: "anything",
			setupMocks: func(userRepo *mocks.MockUserRepository, tokenSvc *mocks.MockTokenService) {
				// default FindByEmail: not found
			},
			expectedErr: domain.ErrInvalidCredentials,
		},
		{
			name:     "wrong password",
			email:    "alice@example.com",
			password: "wrong-password",
			setupMocks: func(userRepo *mocks.MockUserRepository, tokenSvc *mocks.MockTokenService) {
				userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
					return knownUser, nil
				}
			},
			expectedErr: domain.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := mocks.NewMockUserRepository()
			tokenSvc := mocks.NewMockTokenService()
			tt.setupMocks(userRepo, tokenSvc)

			svc := NewAuthService(userRepo, mocks.NewMockPasswordService(), tokenSvc, zap.NewNop())

			token, err := svc.Login(context.Background(), tt.email, tt.password)
			if tt.expectedErr != nil {
				if !errors.Is(err, tt.expectedErr) {
					t.Fatalf("Login() error = %v, want %v", err, tt.expectedErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Login() error: %v", err)
			}
			if token != tt.expectedToken {
				t.Errorf("token = %q, want %q", token, tt.expectedToken)
			}
		})
	}
}

// Unknown email and wrong password must be indistinguishable to the caller.
func TestAuthService_Login_NoUserEnumeration(t *testing.T) {
	userRepo := mocks.NewMockUserRepository()
	userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
		if email == "real@example.com" {
			return &domain.User{ID: 1, Email: email, PasswordHash: "hashed_secret"}, nil
		}
		return nil, domain.ErrUserNotFound
	}
	svc := NewAuthService(userRepo, mocks.NewMockPasswordService(), mocks.NewMockTokenService(), zap.NewNop())

	_, errUnknown := svc.Login(context.Background(), "ghost@example.com", "whatever")
	_, errWrongPw := svc.Login(context.Background(), "real@example.com", "not-secret")

	if !errors.Is(errUnknown, domain.ErrInvalidCredentials) || !errors.Is(errWrongPw, domain.ErrInvalidCredentials) {
		t.Fatalf("errors differ: unknown=%v wrongpw=%v", errUnknown, errWrongPw)
	}
	if errUnknown.Error() != errWrongPw.Error() {
		t.Errorf("error messages differ: %q vs %q", errUnknown.Error(), errWrongPw.Error())
	}
}

func TestAuthService_GetUserProfile(t *testing.T) {
	userRepo := mocks.NewMockUserRepository()
	userRepo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.User, error) {
		if id == 7 {
			return &domain.User{ID: 7, Email: "alice@example.com"}, nil
		}
		return nil, domain.ErrUserNotFound
	}
	svc := NewAuthService(userRepo, mocks.NewMockPasswordService(), mocks.NewMockTokenService(), zap.NewNop())

	user, err := svc.GetUserProfile(context.Background(), 7)
	if err != nil {
		t.Fatalf("GetUserProfile() error: %v", err)
	}
	if user.Email != "alice@example.com" {
		t.Errorf("unexpected user: %+v", user)
	}

	// Deleted between token issuance and use.
	if _, err := svc.GetUserProfile(context.Background(), 8); !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("GetUserProfile() error = %v, want ErrUserNotFound", err)
	}
}
