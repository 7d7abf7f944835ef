// Package e2e exercises the portal end to end: real router, real
// services and repositories on an in-memory sqlite database, with the
// Redis attempt guard and outbound notifications replaced by in-memory
// doubles.
package e2e

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"regexp"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/MogudumpuramNikitha/MOGUDUMUPURAMNIKITHA/domain"
	httpx "github.com/MogudumpuramNikitha/MOGUDUMUPURAMNIKITHA/internal/http"
	"github.com/MogudumpuramNikitha/MOGUDUMUPURAMNIKITHA/internal/http/handlers"
	"github.com/MogudumpuramNikitha/MOGUDUMUPURAMNIKITHA/internal/http/middleware"
	"github.com/MogudumpuramNikitha/MOGUDUMUPURAMNIKITHA/internal/infrastructure/auth"
	"github.com/MogudumpuramNikitha/MOGUDUMUPURAMNIKITHA/internal/infrastructure/database"
	"github.com/MogudumpuramNikitha/MOGUDUMUPURAMNIKITHA/internal/infrastructure/repositories"
	"github.com/MogudumpuramNikitha/MOGUDUMUPURAMNIKITHA/internal/infrastructure/storage"
	"github.com/MogudumpuramNikitha/MOGUDUMUPURAMNIKITHA/internal/mocks"
	"github.com/MogudumpuramNikitha/MOGUDUMUPURAMNIKITHA/internal/services"
)

var dbSeq atomic.Int64

// TestServer is one full portal instance behind an httptest listener.
type TestServer struct {
	Server   *httptest.Server
	BaseURL  string
	Client   *http.Client
	DB       *gorm.DB
	TestRepo domain.TestRepository
	UserRepo domain.UserRepository
	Notifier *mocks.MockNotificationService
}

// NewTestServer wires the portal the way app.Run does, minus the
// external infrastructure.
func NewTestServer(t *testing.T) *TestServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:e2e_%d?mode=memory&cache=shared", dbSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	zlog := zap.NewNop()
	notifier := mocks.NewMockNotificationService()

	store, err := storage.NewLocalStore(t.TempDir())
	if err != nil {
		t.Fatalf("local store: %v", err)
	}

	userRepo := repositories.NewUserRepository(db)
	testRepo := repositories.NewTestRepository(db)
	submissionRepo := repositories.NewSubmissionRepository(db)
	attemptRepo := mocks.NewMockAttemptRepository()

	passwordSvc := auth.NewPasswordService()
	tokenSvc := auth.NewJWTService("e2e-secret", "examportal", time.Hour)
	credGen := auth.NewCredentialGenerator()

	registrationSvc := services.NewRegistrationService(userRepo, passwordSvc, credGen, store, notifier, zlog)
	authSvc := services.NewAuthService(userRepo, passwordSvc, tokenSvc, zlog)
	testSvc := services.NewTestService(testRepo, submissionRepo, attemptRepo, zlog)

	router := httpx.BuildRouter(httpx.RouterConfig{
		Auth:           handlers.NewAuthHandlers(registrationSvc, authSvc, zlog),
		Users:          handlers.NewUserHandlers(authSvc, zlog),
		Tests:          handlers.NewTestHandlers(testSvc, zlog),
		WS:             handlers.NewWSHandler(zlog),
		JWT:            middleware.NewAuthMW(tokenSvc),
		MaxUploadBytes: 2 << 20,
	})

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return &TestServer{
		Server:   server,
		BaseURL:  server.URL,
		Client:   &http.Client{Timeout: 10 * time.Second},
		DB:       db,
		TestRepo: testRepo,
		UserRepo: userRepo,
		Notifier: notifier,
	}
}

// RegistrationInput is one registration form submission.
type RegistrationInput struct {
	FullName        string
	Email           string
	PhoneNumber     string
	CollegeName     string
	CollegeIDNumber string
	ProfileSize     int
	IDCardSize      int
}

// DefaultRegistration returns a valid registration form.
func DefaultRegistration(email, phone string) RegistrationInput {
	return RegistrationInput{
		FullName:        "Asha Rao",
		Email:           email,
		PhoneNumber:     phone,
		CollegeName:     "State Engineering College",
		CollegeIDNumber: "SEC-2024-117",
		ProfileSize:     60 * 1024,
		IDCardSize:      200 * 1024,
	}
}

// Register posts the multipart registration form.
func (ts *TestServer) Register(t *testing.T, in RegistrationInput) *http.Response {
	t.Helper()

	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	fields := map[string]string{
		"fullName":        in.FullName,
		"email":           in.Email,
		"phoneNumber":     in.PhoneNumber,
		"collegeName":     in.CollegeName,
		"collegeIdNumber": in.CollegeIDNumber,
	}
	for name, value := range fields {
		if err := mw.WriteField(name, value); err != nil {
			t.Fatalf("write field: %v", err)
		}
	}
	if in.ProfileSize > 0 {
		fw, _ := mw.CreateFormFile("profilePicture", "profile.jpg")
		fw.Write(bytes.Repeat([]byte("p"), in.ProfileSize))
	}
	if in.IDCardSize > 0 {
		fw, _ := mw.CreateFormFile("collegeIdCard", "idcard.jpg")
		fw.Write(bytes.Repeat([]byte("c"), in.IDCardSize))
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close form: %v", err)
	}

	resp, err := ts.Client.Post(ts.BaseURL+"/api/register", mw.FormDataContentType(), body)
	if err != nil {
		t.Fatalf("register request: %v", err)
	}
	return resp
}

var emailPasswordPattern = regexp.MustCompile(`Password: ([^<\s]+)`)

// EmailedPassword extracts the generated password from the last
// credentials email sent to the given address.
func (ts *TestServer) EmailedPassword(t *testing.T, email string) string {
	t.Helper()
	for i := len(ts.Notifier.Emails) - 1; i >= 0; i-- {
		sent := ts.Notifier.Emails[i]
		if sent.To != email {
			continue
		}
		m := emailPasswordPattern.FindStringSubmatch(sent.Body)
		if m == nil {
			t.Fatalf("credentials email has no password: %s", sent.Body)
		}
		return m[1]
	}
	t.Fatalf("no credentials email sent to %s", email)
	return ""
}

// Login posts credentials and returns the bearer token.
func (ts *TestServer) Login(t *testing.T, email, password string) (string, int) {
	t.Helper()
	payload, _ := json.Marshal(map[string]string{"email": email, "password": password})
	resp, err := ts.Client.Post(ts.BaseURL+"/api/login", "application/json", bytes.NewReader(payload))
	if err != nil {
		t.Fatalf("login request: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", resp.StatusCode
	}
	var body struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode login response: %v", err)
	}
	return body.Token, resp.StatusCode
}

// Get performs an authenticated GET. Empty token sends no header.
func (ts *TestServer) Get(t *testing.T, path, token string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, ts.BaseURL+path, nil)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := ts.Client.Do(req)
	if err != nil {
		t.Fatalf("request %s: %v", path, err)
	}
	return resp
}

// PostJSON performs an authenticated JSON POST.
func (ts *TestServer) PostJSON(t *testing.T, path, token string, payload any) *http.Response {
	t.Helper()
	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("encode payload: %v", err)
	}
	req, err := http.NewRequest(http.MethodPost, ts.BaseURL+path, bytes.NewReader(body))
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := ts.Client.Do(req)
	if err != nil {
		t.Fatalf("request %s: %v", path, err)
	}
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	var body map[string]any
	if err := json.Unmarshal(raw, &body); err != nil {
		t.Fatalf("decode body %q: %v", raw, err)
	}
	return body
}
