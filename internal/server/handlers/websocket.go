package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	gws "github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/Crypto1181/Caballo/internal/server/websocket"
)

var upgrader = gws.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// WebSocketHandler upgrades clients onto the deposit status stream.
type WebSocketHandler struct {
	wsManager *websocket.Manager
}

func NewWebSocketHandler(wsManager *websocket.Manager) *WebSocketHandler {
	return &WebSocketHandler{
		wsManager: wsManager,
	}
}

func (h *WebSocketHandler) HandleConnection(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Error().Err(err).Msg("Failed to upgrade WebSocket connection")
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Bad Request",
			"message": "Failed to upgrade to WebSocket",
		})
		return
	}

	client := websocket.NewClient(conn)
	h.wsManager.AddClient(client)

	log.Info().Str("client_id", client.ID()).Msg("WebSocket client connected")

	defer func() {
		h.wsManager.RemoveClient(client.ID())
		log.Info().Str("client_id", client.ID()).Msg("WebSocket client disconnected")
	}()

	client.Wait()
}
