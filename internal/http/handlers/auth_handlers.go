package handlers

import (
	"errors"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/MogudumpuramNikitha/MOGUDUMUPURAMNIKITHA/domain"
)

// AuthHandlers handles registration and login HTTP requests
type AuthHandlers struct {
	registrationSvc domain.RegistrationService
	authSvc         domain.AuthService
	logger          *zap.Logger
}

// NewAuthHandlers creates new auth handlers
func NewAuthHandlers(registrationSvc domain.RegistrationService, authSvc domain.AuthService, logger *zap.Logger) *AuthHandlers {
	return &AuthHandlers{
		registrationSvc: registrationSvc,
		authSvc:         authSvc,
		logger:          logger,
	}
}

// LoginRequest represents login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Register handles user self-registration (multipart form)
func (h *AuthHandlers) Register(c *gin.Context) {
	reg := &domain.Registration{
		FullName:        c.PostForm("fullName"),
		Email:           c.PostForm("email"),
		PhoneNumber:     c.PostForm("phoneNumber"),
		CollegeName:     c.PostForm("collegeName"),
		CollegeIDNumber: c.PostForm("collegeIdNumber"),
	}

	profile, profileClose, err := formUpload(c, "profilePicture")
	if err == nil {
		defer profileClose()
		reg.ProfilePicture = profile
	}
	idCard, idCardClose, err := formUpload(c, "collegeIdCard")
	if err == nil {
		defer idCardClose()
		reg.CollegeIDCard = idCard
	}

	if _, err := h.registrationSvc.Register(c.Request.Context(), reg); err != nil {
		var ve *domain.ValidationError
		switch {
		case errors.As(err, &ve):
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"message": ve.Error(),
			})
		case errors.Is(err, domain.ErrUserAlreadyExists):
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"message": "User with this email or phone number already exists",
			})
		default:
			h.logger.Error("registration failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"message": "Registration failed. Please try again.",
			})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Registration successful! Please check your email for login credentials.",
	})
}

// Login handles user login
func (h *AuthHandlers) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email and password are required"})
		return
	}

	token, err := h.authSvc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
			return
		}
		h.logger.Error("login failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Login failed. Please try again."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

// formUpload opens one named file part. The returned close function is
// a no-op when the part is absent.
func formUpload(c *gin.Context, field string) (*domain.Upload, func(), error) {
	fh, err := c.FormFile(field)
	if err != nil {
		return nil, func() {}, err
	}
	return openUpload(fh)
}

func openUpload(fh *multipart.FileHeader) (*domain.Upload, func(), error) {
	f, err := fh.Open()
	if err != nil {
		return nil, func() {}, err
	}
	upload := &domain.Upload{
		Filename: fh.Filename,
		Size:     fh.Size,
		Content:  f,
	}
	return upload, func() { f.Close() }, nil
}
