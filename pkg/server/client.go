package server

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"riftwalker/pkg/logger"
)

// WebSocket settings
const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Client sits between one WebSocket connection and the generator
type Client struct {
	Server *Server
	Conn   *websocket.Conn
	Send   chan Response
}

func NewClient(s *Server, conn *websocket.Conn) *Client {
	return &Client{
		Server: s,
		Conn:   conn,
		Send:   make(chan Response, 16),
	}
}

// readPump reads requests and queues one response per request.
// It closes Send when the connection ends, which stops writePump.
func (c *Client) readPump() {
	defer func() {
		close(c.Send)
		if err := c.Conn.Close(); err != nil {
			logger.Log.WithError(err).Debug("failed to close websocket connection")
		}
	}()

	c.Conn.SetReadLimit(maxMessageSize)
	if err := c.Conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		logger.Log.WithError(err).Warn("failed to set read deadline")
	}
	c.Conn.SetPongHandler(func(string) error {
		if err := c.Conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
			logger.Log.WithError(err).Warn("failed to set pong read deadline")
		}
		return nil
	})

	for {
		var req Request
		if err := c.Conn.ReadJSON(&req); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Log.WithError(err).Warn("websocket read failed")
			}
			return
		}
		c.Send <- c.handle(req)
	}
}

func (c *Client) handle(req Request) Response {
	switch req.Type {
	case "generate":
		world, seed, err := c.Server.Generate(req.Seed, req.Width, req.Height)
		if err != nil {
			return Response{Type: "error", Error: err.Error()}
		}
		return Response{Type: "world", Seed: seed, World: world}
	default:
		return Response{Type: "error", Error: "unknown request type " + req.Type}
	}
}

// writePump sends responses to the client and keeps the connection alive with pings
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		if err := c.Conn.Close(); err != nil {
			logger.Log.WithError(err).Debug("failed to close websocket connection in writePump")
		}
	}()

	for {
		select {
		case message, ok := <-c.Send:
			if err := c.Conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				logger.Log.WithError(err).Warn("failed to set write deadline")
			}
			if !ok {
				if err := c.Conn.WriteMessage(websocket.CloseMessage, []byte{}); err != nil {
					logger.Log.WithError(err).Debug("write close message failed")
				}
				return
			}
			if err := c.Conn.WriteJSON(message); err != nil {
				logger.Log.WithError(err).Debug("write json message failed")
				return
			}

		case <-ticker.C:
			if err := c.Conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				logger.Log.WithError(err).Warn("failed to set ping write deadline")
			}
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				logger.Log.WithError(err).Debug("ping failed")
				return
			}
		}
	}
}
