package e2e

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistrationToLoginFlow(t *testing.T) {
	ts := NewTestServer(t)

	resp := ts.Register(t, DefaultRegistration("asha@example.com", "9876543210"))
	body := decodeBody(t, resp)
	require.Equal(t, http.StatusOK, resp.StatusCode, "registration should succeed: %v", body)
	assert.Equal(t, "Registration successful! Please check your email for login credentials.", body["message"])
	assert.Equal(t, true, body["success"])

	password := ts.EmailedPassword(t, "asha@example.com")
	assert.GreaterOrEqual(t, len(password), 8, "generated password should meet the minimum length")

	token, status := ts.Login(t, "asha@example.com", password)
	require.Equal(t, http.StatusOK, status, "login with the emailed password should succeed")
	require.NotEmpty(t, token, "login should return a token")

	profile := decodeBody(t, ts.Get(t, "/api/user", token))
	assert.Equal(t, "asha@example.com", profile["email"])
	assert.Equal(t, "Asha Rao", profile["fullName"])
	assert.NotContains(t, profile, "password", "the password must never be returned")
	ref, _ := profile["profilePicture"].(string)
	assert.Contains(t, ref, "profiles/", "profile picture should be stored under profiles/")
}

func TestRegistrationDuplicates(t *testing.T) {
	ts := NewTestServer(t)

	resp := ts.Register(t, DefaultRegistration("asha@example.com", "9876543210"))
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode, "first registration should succeed")

	t.Run("same email different phone", func(t *testing.T) {
		resp := ts.Register(t, DefaultRegistration("asha@example.com", "9876543211"))
		body := decodeBody(t, resp)
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "User with this email or phone number already exists", body["message"])
	})

	t.Run("same phone different email", func(t *testing.T) {
		resp := ts.Register(t, DefaultRegistration("other@example.com", "9876543210"))
		body := decodeBody(t, resp)
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "User with this email or phone number already exists", body["message"])
	})

	// Only the first registration may exist.
	_, err := ts.UserRepo.FindByEmail(context.Background(), "asha@example.com")
	assert.NoError(t, err, "original user should survive the duplicate attempts")
}

func TestRegistrationValidation(t *testing.T) {
	ts := NewTestServer(t)

	tests := []struct {
		name   string
		mutate func(*RegistrationInput)
	}{
		{"missing profile picture", func(in *RegistrationInput) { in.ProfileSize = 0 }},
		{"missing id card", func(in *RegistrationInput) { in.IDCardSize = 0 }},
		{"profile too small", func(in *RegistrationInput) { in.ProfileSize = 49 * 1024 }},
		{"profile too large", func(in *RegistrationInput) { in.ProfileSize = 251 * 1024 }},
		{"id card too small", func(in *RegistrationInput) { in.IDCardSize = 99 * 1024 }},
		{"id card too large", func(in *RegistrationInput) { in.IDCardSize = 501 * 1024 }},
		{"bad email", func(in *RegistrationInput) { in.Email = "not-an-email" }},
		{"bad phone", func(in *RegistrationInput) { in.PhoneNumber = "12345" }},
		{"missing name", func(in *RegistrationInput) { in.FullName = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := DefaultRegistration("valid@example.com", "9876500000")
			tt.mutate(&in)
			resp := ts.Register(t, in)
			resp.Body.Close()
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		})
	}

	// None of the rejected registrations may have sent credentials.
	assert.Empty(t, ts.Notifier.Emails, "rejected registrations must not send email")
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	ts := NewTestServer(t)

	resp := ts.Register(t, DefaultRegistration("asha@example.com", "9876543210"))
	resp.Body.Close()
	password := ts.EmailedPassword(t, "asha@example.com")

	_, status := ts.Login(t, "asha@example.com", "wrong-password")
	assert.Equal(t, http.StatusUnauthorized, status, "wrong password")

	_, status = ts.Login(t, "unknown@example.com", password)
	assert.Equal(t, http.StatusUnauthorized, status, "unknown email")

	_, status = ts.Login(t, "asha@example.com", password)
	assert.Equal(t, http.StatusOK, status, "correct credentials")
}
