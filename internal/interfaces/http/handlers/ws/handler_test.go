package ws

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relatorio-inc/relatorio/internal/application/notification/dto"
	"github.com/relatorio-inc/relatorio/internal/infrastructure/realtime"
	"github.com/relatorio-inc/relatorio/internal/interfaces/http/handlers/testutil"
)

func newServer(t *testing.T, hub *realtime.Hub, origins []string, authenticated bool) *httptest.Server {
	t.Helper()
	h := NewHandler(hub, origins, testutil.NewMockLogger())

	r := gin.New()
	r.GET("/ws/notifications", func(c *gin.Context) {
		if authenticated {
			testutil.SetAuthContext(c, 7, "user")
		}
		c.Next()
	}, h.Notifications)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func wsURL(srv *httptest.Server) string {
	return "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/notifications"
}

func waitForConnection(t *testing.T, hub *realtime.Hub, userID uint) {
	t.Helper()
	require.Eventually(t, func() bool { return hub.Connections(userID) == 1 }, time.Second, 10*time.Millisecond)
}

func TestHandler_Notifications_ReceivesPush(t *testing.T) {
	hub := realtime.NewHub(nil, testutil.NewMockLogger())
	srv := newServer(t, hub, nil, true)

	conn, _, err := websocket.DefaultDialer.Dial(wsURL(srv), nil)
	require.NoError(t, err)
	defer conn.Close()
	waitForConnection(t, hub, 7)

	require.NoError(t, hub.Push(context.Background(), 7, &dto.PushMessage{
		Event:        "notification",
		Notification: &dto.NotificationDTO{ID: 11, Title: "Novo relatório"},
		UnreadCount:  2,
	}))

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, frame, err := conn.ReadMessage()
	require.NoError(t, err)

	var msg dto.PushMessage
	require.NoError(t, json.Unmarshal(frame, &msg))
	assert.Equal(t, "notification", msg.Event)
	assert.Equal(t, int64(2), msg.UnreadCount)
	require.NotNil(t, msg.Notification)
	assert.Equal(t, uint(11), msg.Notification.ID)
}

func TestHandler_Notifications_UnregistersOnClose(t *testing.T) {
	hub := realtime.NewHub(nil, testutil.NewMockLogger())
	srv := newServer(t, hub, nil, true)

	conn, _, err := websocket.DefaultDialer.Dial(wsURL(srv), nil)
	require.NoError(t, err)
	waitForConnection(t, hub, 7)

	require.NoError(t, conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")))
	conn.Close()

	assert.Eventually(t, func() bool { return hub.Connections(7) == 0 }, time.Second, 10*time.Millisecond)
}

func TestHandler_Notifications_RequiresAuth(t *testing.T) {
	hub := realtime.NewHub(nil, testutil.NewMockLogger())
	srv := newServer(t, hub, nil, false)

	_, resp, err := websocket.DefaultDialer.Dial(wsURL(srv), nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestHandler_Notifications_RejectsForeignOrigin(t *testing.T) {
	hub := realtime.NewHub(nil, testutil.NewMockLogger())
	srv := newServer(t, hub, []string{"https://app.example.com"}, true)

	header := http.Header{}
	header.Set("Origin", "https://evil.example.com")
	_, resp, err := websocket.DefaultDialer.Dial(wsURL(srv), header)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, 0, hub.Connections(7))
}
