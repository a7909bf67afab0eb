package server

import (
	"encoding/json"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"

	"github.com/katalvlaran/posematch/reference"
	"github.com/katalvlaran/posematch/session"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 64 * 1024
	sendBuffer     = 64
)

// serveSession upgrades to WebSocket and runs one session per connection.
// Unknown exercises are rejected before the upgrade.
func (s *Server) serveSession(c *fiber.Ctx) error {
	id := c.Params("id")
	ds, err := s.lib.Get(id)
	if err != nil {
		return datasetError(err)
	}
	if !websocket.IsWebSocketUpgrade(c) {
		return fiber.ErrUpgradeRequired
	}

	return websocket.New(func(conn *websocket.Conn) {
		s.runSession(conn, id, ds)
	})(c)
}

// client pairs a connection with its session. Only writePump writes to
// conn; readPump hands replies over through send.
type client struct {
	srv  *Server
	conn *websocket.Conn
	sess *session.Session
	send chan []byte
	done chan struct{} // closed when writePump returns
}

func (s *Server) runSession(conn *websocket.Conn, id string, ds reference.Dataset) {
	sess, err := session.New(id, ds,
		session.WithComparator(s.cmp),
		session.WithLogger(s.log),
		session.WithCapacity(ds.RowCount()),
	)
	if err != nil {
		s.log.Error(module, "session start failed", map[string]interface{}{"error": err, "exercise": id})
		_ = conn.Close()
		return
	}
	defer sess.Close()

	cl := &client{
		srv:  s,
		conn: conn,
		sess: sess,
		send: make(chan []byte, sendBuffer),
		done: make(chan struct{}),
	}
	go func() {
		cl.writePump()
		close(cl.done)
	}()
	cl.readPump()
	<-cl.done
}

// readPump decodes client messages and queues one reply per message.
func (cl *client) readPump() {
	defer close(cl.send)

	cl.conn.SetReadLimit(maxMessageSize)
	_ = cl.conn.SetReadDeadline(time.Now().Add(pongWait))
	cl.conn.SetPongHandler(func(string) error {
		return cl.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, raw, err := cl.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				cl.srv.log.Warn(module, "websocket read failed", map[string]interface{}{
					"session_id": cl.sess.ID.String(),
					"error":      err.Error(),
				})
			}
			return
		}
		_ = cl.conn.SetReadDeadline(time.Now().Add(pongWait))

		reply, err := json.Marshal(cl.handle(raw))
		if err != nil {
			cl.srv.log.Error(module, "encode reply", map[string]interface{}{"error": err})
			continue
		}
		select {
		case cl.send <- reply:
		case <-cl.done:
			return
		}
	}
}

// handle turns one inbound frame into its reply.
func (cl *client) handle(raw []byte) ServerMessage {
	var msg ClientMessage
	if err := json.Unmarshal(raw, &msg); err != nil {
		return ServerMessage{Type: msgError, Error: "invalid json: " + err.Error()}
	}
	if err := validate.Struct(&msg); err != nil {
		return ServerMessage{Type: msgError, Error: err.Error()}
	}

	switch msg.Type {
	case msgReset:
		cl.sess.Reset()
		return ServerMessage{Type: msgReset}
	default:
		p, err := toPose(msg.Keypoints)
		if err != nil {
			return ServerMessage{Type: msgError, Frame: cl.sess.Frames(), Error: err.Error()}
		}
		msgs := cl.sess.Ingest(p)
		return ServerMessage{
			Type:     msgFeedback,
			Frame:    cl.sess.Frames() - 1,
			Messages: msgs,
			Ghost:    cl.srv.ghostKeypoints(cl.sess),
		}
	}
}

// writePump drains send and keeps the connection alive with pings.
func (cl *client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = cl.conn.Close()
	}()

	for {
		select {
		case message, ok := <-cl.send:
			_ = cl.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = cl.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := cl.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			_ = cl.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := cl.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
