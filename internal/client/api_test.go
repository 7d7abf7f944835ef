package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MogudumpuramNikitha/MOGUDUMUPURAMNIKITHA/domain"
)

func TestHTTPClient_FetchTest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer token-123" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		if r.URL.Path != "/api/tests/1" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		json.NewEncoder(w).Encode(map[string]any{
			"id":       1,
			"title":    "Aptitude Assessment",
			"duration": 60,
			"questions": []map[string]any{
				{"id": 10, "section": "Quant", "text": "2+2?", "type": "MCQ", "options": []string{"3", "4"}},
				{"id": 11, "section": "Quant", "text": "Distance?", "type": "numeric"},
			},
		})
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, "token-123")
	test, err := c.FetchTest(context.Background(), 1)
	if err != nil {
		t.Fatalf("fetch failed: %v", err)
	}
	if test.Title != "Aptitude Assessment" || test.DurationMinutes != 60 {
		t.Errorf("unexpected test: %+v", test)
	}
	if len(test.Questions) != 2 || test.Questions[0].Type != domain.QuestionMCQ {
		t.Errorf("questions not decoded: %+v", test.Questions)
	}
	if test.DurationSeconds() != 3600 {
		t.Errorf("expected 3600 seconds, got %d", test.DurationSeconds())
	}

	if _, err := c.FetchTest(context.Background(), 99); !errors.Is(err, domain.ErrTestNotFound) {
		t.Errorf("expected test-not-found for unknown id, got %v", err)
	}

	bad := NewHTTPClient(srv.URL, "wrong-token")
	if _, err := bad.FetchTest(context.Background(), 1); !errors.Is(err, domain.ErrNoToken) {
		t.Errorf("expected unauthorized error, got %v", err)
	}
}

func TestHTTPClient_SubmitAnswers(t *testing.T) {
	var got struct {
		Answers domain.AnswerSet `json:"answers"`
	}
	submitted := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if submitted {
			w.WriteHeader(http.StatusConflict)
			return
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		submitted = true
		json.NewEncoder(w).Encode(map[string]any{"success": true})
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, "token-123")
	answers := domain.AnswerSet{"10": "4"}
	if err := c.SubmitAnswers(context.Background(), 1, answers); err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if got.Answers["10"] != "4" {
		t.Errorf("answers not posted: %+v", got.Answers)
	}

	err := c.SubmitAnswers(context.Background(), 1, answers)
	if !errors.Is(err, domain.ErrDuplicateSubmission) {
		t.Errorf("expected duplicate-submission on conflict, got %v", err)
	}
}

func TestLogin(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct{ Email, Password string }
		json.NewDecoder(r.Body).Decode(&req)
		if req.Password != "secret12" {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"message": "Invalid credentials"})
			return
		}
		json.NewEncoder(w).Encode(map[string]string{"token": "jwt-token"})
	}))
	defer srv.Close()

	c, err := Login(context.Background(), srv.URL, "asha@example.com", "secret12")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if c.token != "jwt-token" {
		t.Errorf("token not captured, got %q", c.token)
	}

	if _, err := Login(context.Background(), srv.URL, "asha@example.com", "wrong"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Errorf("expected invalid-credentials, got %v", err)
	}
}
