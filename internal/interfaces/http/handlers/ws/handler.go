// Package ws upgrades authenticated requests to the notification WebSocket stream.
package ws

import (
	"net/http"
	"slices"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/relatorio-inc/relatorio/internal/infrastructure/realtime"
	"github.com/relatorio-inc/relatorio/internal/shared/goroutine"
	"github.com/relatorio-inc/relatorio/internal/shared/logger"
	"github.com/relatorio-inc/relatorio/internal/shared/utils"
)

const (
	writeWait    = 10 * time.Second
	pongWait     = 60 * time.Second
	pingPeriod   = 30 * time.Second
	maxFrameSize = 4096
)

type Handler struct {
	hub      *realtime.Hub
	upgrader websocket.Upgrader
	logger   logger.Interface
}

// NewHandler accepts browser origins from allowedOrigins. An empty list or "*" accepts any origin.
func NewHandler(hub *realtime.Hub, allowedOrigins []string, log logger.Interface) *Handler {
	return &Handler{
		hub: hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				if origin == "" || len(allowedOrigins) == 0 || slices.Contains(allowedOrigins, "*") {
					return true
				}
				return slices.Contains(allowedOrigins, origin)
			},
		},
		logger: log,
	}
}

// Notifications handles GET /ws/notifications
// @Summary Live notification stream
// @Description Upgrades to a WebSocket. Browsers pass the access token as the "token" query value.
// @Tags notifications
// @Security Bearer
// @Param token query string false "Access token"
// @Success 101
// @Failure 401 {object} utils.APIResponse
// @Router /ws/notifications [get]
func (h *Handler) Notifications(c *gin.Context) {
	actor, err := utils.GetActor(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warnw("failed to upgrade notification websocket",
			"error", err,
			"user_id", actor.UserID,
			"ip", c.ClientIP(),
		)
		return
	}

	client := h.hub.Register(actor.UserID, conn)

	goroutine.SafeGo(h.logger, "notification-write-pump", func() {
		h.writePump(client)
	})
	h.readPump(client)
}

// readPump drains client frames so pongs and close frames are processed.
func (h *Handler) readPump(client *realtime.Client) {
	defer func() {
		h.hub.Unregister(client)
		client.Conn.Close()
	}()

	client.Conn.SetReadLimit(maxFrameSize)
	client.Conn.SetReadDeadline(time.Now().Add(pongWait))
	client.Conn.SetPongHandler(func(string) error {
		client.Conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := client.Conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure, websocket.CloseAbnormalClosure) {
				h.logger.Warnw("notification websocket read error",
					"error", err,
					"user_id", client.UserID,
				)
			}
			return
		}
	}
}

func (h *Handler) writePump(client *realtime.Client) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		client.Conn.Close()
	}()

	for {
		select {
		case msg, ok := <-client.Send:
			client.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				client.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := client.Conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				h.logger.Warnw("failed to write notification frame",
					"error", err,
					"user_id", client.UserID,
				)
				return
			}

		case <-ticker.C:
			client.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := client.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
