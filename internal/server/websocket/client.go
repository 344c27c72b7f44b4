package websocket

import (
	"encoding/json"
	"sync"
	"time"

	gws "github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/Crypto1181/Caballo/internal/domain"
)

type Client struct {
	id      string
	conn    *gws.Conn
	send    chan *domain.DepositStatusUpdate
	done    chan struct{}
	closeMu sync.Mutex
	closed  bool
}

func (c *Client) ID() string {
	return c.id
}

func (c *Client) Send(update *domain.DepositStatusUpdate) error {
	if !c.IsActive() {
		return ErrClientInactive
	}

	select {
	case c.send <- update:
		return nil
	case <-c.done:
		return ErrClientInactive
	default:
		log.Warn().Str("client_id", c.id).Msg("WebSocket client send channel full, dropping update")
		return ErrClientInactive
	}
}

func (c *Client) Close() error {
	c.closeMu.Lock()
	defer c.closeMu.Unlock()

	if c.closed {
		return nil
	}
	c.closed = true
	close(c.done)

	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}

func (c *Client) IsActive() bool {
	c.closeMu.Lock()
	defer c.closeMu.Unlock()
	return !c.closed
}

// Wait blocks until the connection is closed.
func (c *Client) Wait() {
	<-c.done
}

func (c *Client) readPump() {
	defer c.Close()

	c.conn.SetReadLimit(512)
	c.conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if gws.IsUnexpectedCloseError(err, gws.CloseGoingAway, gws.CloseAbnormalClosure) {
				log.Error().Err(err).Str("client_id", c.id).Msg("Unexpected WebSocket close error")
			}
			return
		}
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(54 * time.Second)
	defer func() {
		ticker.Stop()
		c.Close()
	}()

	for {
		select {
		case update := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))

			data, err := json.Marshal(update)
			if err != nil {
				log.Error().Err(err).Str("client_id", c.id).Msg("Failed to marshal deposit status update")
				continue
			}
			if err := c.conn.WriteMessage(gws.TextMessage, data); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := c.conn.WriteMessage(gws.PingMessage, nil); err != nil {
				return
			}

		case <-c.done:
			return
		}
	}
}
