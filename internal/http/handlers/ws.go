package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var wsUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// WSHandler accepts websocket clients and acknowledges the connection.
// There is no application protocol yet; inbound frames are logged and
// discarded until the peer disconnects.
type WSHandler struct {
	logger *zap.Logger
}

// NewWSHandler creates a new websocket handler
func NewWSHandler(logger *zap.Logger) *WSHandler {
	return &WSHandler{logger: logger}
}

// Connect upgrades the request and sends the connection acknowledgement
func (h *WSHandler) Connect(c *gin.Context) {
	conn, err := wsUpgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	ack := map[string]string{"type": "connection", "status": "connected"}
	if err := conn.WriteJSON(ack); err != nil {
		h.logger.Warn("websocket ack failed", zap.Error(err))
		return
	}

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.Debug("websocket closed unexpectedly", zap.Error(err))
			}
			return
		}
		h.logger.Debug("websocket message", zap.ByteString("payload", msg))
	}
}
