package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/MogudumpuramNikitha/MOGUDUMUPURAMNIKITHA/domain"
	"github.com/MogudumpuramNikitha/MOGUDUMUPURAMNIKITHA/internal/mocks"
)

func protectedRouter(tokenSvc domain.TokenService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(NewAuthMW(tokenSvc).WithJWT())
	r.GET("/protected", func(c *gin.Context) {
		id, ok := UserID(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "missing user id"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"user_id": id})
	})
	return r
}

func TestAuthMW_WithJWT(t *testing.T) {
	tests := []struct {
		name           string
		authHeader     string
		validateFunc   func(token string) (*domain.TokenClaims, error)
		expectedStatus int
	}{
		{
			name:           "missing header",
			authHeader:     "",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "not a bearer token",
			authHeader:     "Basic dXNlcjpwYXNz",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:       "invalid token",
			authHeader: "Bearer bad-token",
			validateFunc: func(token string) (*domain.TokenClaims, error) {
				return nil, domain.ErrTokenInvalid
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:       "expired token",
			authHeader: "Bearer stale-token",
			validateFunc: func(token string) (*domain.TokenClaims, error) {
				return nil, domain.ErrTokenExpired
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:       "valid token",
			authHeader: "Bearer good-token",
			validateFunc: func(token string) (*domain.TokenClaims, error) {
				if token != "good-token" {
					t.Errorf("unexpected token %q", token)
				}
				return &domain.TokenClaims{UserID: 42}, nil
			},
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenSvc := mocks.NewMockTokenService()
			tokenSvc.ValidateFunc = tt.validateFunc

			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			w := httptest.NewRecorder()
			protectedRouter(tokenSvc).ServeHTTP(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d (body %s)", tt.expectedStatus, w.Code, w.Body.String())
			}
		})
	}
}

func TestUserID_MissingFromContext(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	if _, ok := UserID(c); ok {
		t.Error("expected no user id on an unauthenticated context")
	}
}
