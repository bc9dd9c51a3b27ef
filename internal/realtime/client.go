package realtime

import (
	"time"

	"github.com/gorilla/websocket"
)

const writeTimeout = 10 * time.Second

type Client struct {
	hub  *Hub
	conn *websocket.Conn
	send chan []byte
	key  string
}

// NewClient регистрирует подключение в хабе и запускает насосы чтения/записи.
// Отписка привязана к закрытию соединения.
func NewClient(hub *Hub, conn *websocket.Conn, key string) *Client {
	c := &Client{
		hub:  hub,
		conn: conn,
		send: make(chan []byte, 256),
		key:  key,
	}

	hub.register <- c
	go c.writePump()
	go c.readPump()

	return c
}

func (c *Client) readPump() {
	defer func() {
		c.hub.unregister <- c
		_ = c.conn.Close()
	}()
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (c *Client) writePump() {
	defer func() { _ = c.conn.Close() }()
	for msg := range c.send {
		_ = c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			return
		}
	}
}
