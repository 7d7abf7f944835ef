package e2e

import (
	"net/http"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProtectedEndpointsRequireToken(t *testing.T) {
	ts := NewTestServer(t)

	paths := []string{"/api/user", "/api/tests", "/api/tests/1"}
	for _, path := range paths {
		t.Run("no token "+path, func(t *testing.T) {
			resp := ts.Get(t, path, "")
			body := decodeBody(t, resp)
			require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
			assert.Equal(t, "No token provided", body["message"])
		})

		t.Run("garbage token "+path, func(t *testing.T) {
			resp := ts.Get(t, path, "not-a-jwt")
			body := decodeBody(t, resp)
			require.Equal(t, http.StatusForbidden, resp.StatusCode)
			assert.Equal(t, "Invalid token", body["message"])
		})
	}

	t.Run("token for a vanished user", func(t *testing.T) {
		other := NewTestServer(t)
		foreign := registeredToken(t, other, "asha@example.com", "9876543210")

		// Different instance, same signing secret, so the token itself
		// verifies; the user behind it does not exist here.
		resp := ts.Get(t, "/api/user", foreign)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestHealthEndpoint(t *testing.T) {
	ts := NewTestServer(t)
	resp := ts.Get(t, "/health", "")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestWebsocketConnectAck(t *testing.T) {
	ts := NewTestServer(t)

	wsURL := "ws" + strings.TrimPrefix(ts.BaseURL, "http") + "/ws"
	conn, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err, "websocket dial should succeed")
	defer conn.Close()
	defer resp.Body.Close()

	var ack struct {
		Type   string `json:"type"`
		Status string `json:"status"`
	}
	require.NoError(t, conn.ReadJSON(&ack))
	assert.Equal(t, "connection", ack.Type)
	assert.Equal(t, "connected", ack.Status)
}
