package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/MogudumpuramNikitha/MOGUDUMUPURAMNIKITHA/domain"
	"github.com/MogudumpuramNikitha/MOGUDUMUPURAMNIKITHA/internal/http/middleware"
)

// UserHandlers serves the authenticated user's profile
type UserHandlers struct {
	authSvc domain.AuthService
	logger  *zap.Logger
}

// NewUserHandlers creates new user handlers
func NewUserHandlers(authSvc domain.AuthService, logger *zap.Logger) *UserHandlers {
	return &UserHandlers{authSvc: authSvc, logger: logger}
}

// Me returns the authenticated user's record, password stripped
func (h *UserHandlers) Me(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "No token provided"})
		return
	}

	user, err := h.authSvc.GetUserProfile(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			// Token may outlive the account; never a crash.
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}
		h.logger.Error("failed to fetch user", zap.Uint("user_id", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch user data"})
		return
	}

	// The password hash is stripped unconditionally.
	c.JSON(http.StatusOK, gin.H{
		"id":              user.ID,
		"fullName":        user.FullName,
		"email":           user.Email,
		"phoneNumber":     user.PhoneNumber,
		"collegeName":     user.CollegeName,
		"collegeIdNumber": user.CollegeIDNumber,
		"profilePicture":  user.ProfilePicture,
		"collegeIdCard":   user.CollegeIDCard,
		"createdAt":       user.CreatedAt,
	})
}
