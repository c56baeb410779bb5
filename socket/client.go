package socket

import (
	"net/http"
	"time"

	"docbuilder/pkg/logger"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The frontend dev server runs on a different origin.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// ServeWs upgrades the connection and subscribes the caller to its own
// document event feed. The account id comes from the verified token, not the
// request body; this is the one surface that enforces tokens.
func ServeWs(hub *Hub, w http.ResponseWriter, r *http.Request, ownerID string) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Sugar.Error(err)
		return
	}

	var exists bool
	if err := hub.db.QueryRow("SELECT EXISTS(SELECT 1 FROM accounts WHERE id = $1)", ownerID).Scan(&exists); err != nil {
		logger.Sugar.Errorf("Database error checking account %s: %v", ownerID, err)
		conn.Close()
		return
	}
	if !exists {
		logger.Sugar.Warnf("Connection rejected: account %s not found", ownerID)
		conn.Close()
		return
	}

	client := &Client{
		Hub:     hub,
		Conn:    conn,
		OwnerID: ownerID,
		Send:    make(chan []byte, 256),
	}
	client.Hub.Register <- client

	go client.writePump()
	go client.readPump()
}

// readPump drains the connection. The feed is one-way; inbound frames are
// ignored, the read loop only exists to notice the close.
func (c *Client) readPump() {
	defer func() {
		c.Hub.Unregister <- c
		c.Conn.Close()
	}()

	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Sugar.Errorf("error: %v", err)
			}
			break
		}
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case message, ok := <-c.Send:
			if !ok {
				c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			c.Conn.WriteMessage(websocket.TextMessage, message)
		case <-ticker.C:
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
