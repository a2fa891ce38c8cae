package stream

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/kelu/tote/internal/events"
	"github.com/kelu/tote/internal/logger"
)

const (
	// writeWait is the maximum time to wait for a write to complete.
	writeWait = 10 * time.Second

	// pongWait is the maximum time to wait for a pong from the client.
	pongWait = 60 * time.Second

	// pingPeriod sends pings at this interval. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// maxMessageSize bounds incoming frames; clients only send pongs and
	// close frames.
	maxMessageSize = 512
)

// upgrader configures the WebSocket upgrade parameters.
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(_ *http.Request) bool {
		return true
	},
}

// Subscriber hands out independent event feeds. *events.MemoryBus
// satisfies it.
type Subscriber interface {
	Subscribe() (<-chan events.Event, func())
}

// Handler streams market events to WebSocket clients. Each connection gets
// its own bus subscription, so one slow client never stalls another.
type Handler struct {
	bus Subscriber
	log logger.Logger
}

// NewHandler creates a new stream handler
func NewHandler(bus Subscriber, log logger.Logger) *Handler {
	return &Handler{bus: bus, log: log}
}

// filter restricts a connection's feed to one market and/or a set of
// event types. Zero values match everything.
type filter struct {
	marketID uuid.UUID
	types    map[events.Type]bool
}

func (f *filter) matches(e events.Event) bool {
	if f.marketID != uuid.Nil && e.MarketID != f.marketID {
		return false
	}
	if len(f.types) > 0 && !f.types[e.Type] {
		return false
	}
	return true
}

// Events godoc
// @Summary Stream market events
// @Description Upgrade to a WebSocket and receive market events as JSON text frames
// @Tags streams
// @Param market_id query string false "Only events for this market"
// @Param types query string false "Comma-separated event types"
// @Success 101 {string} string "Switching Protocols"
// @Router /api/v1/streams/events [get]
func (h *Handler) Events(c *gin.Context) {
	f := &filter{}
	if raw := c.Query("market_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid market_id format"})
			return
		}
		f.marketID = id
	}
	if raw := c.Query("types"); raw != "" {
		f.types = make(map[events.Type]bool)
		for _, t := range strings.Split(raw, ",") {
			f.types[events.Type(strings.TrimSpace(t))] = true
		}
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Error(err, logger.Fields{"op": "websocket upgrade"})
		return
	}

	feed, cancel := h.bus.Subscribe()
	h.log.Debug("stream client connected", logger.Fields{
		"remote_addr": conn.RemoteAddr().String(),
	})

	go h.writePump(conn, feed, cancel, f)
	go h.readPump(conn, cancel)
}

// writePump forwards matching events to the connection and sends periodic
// pings for keepalive.
func (h *Handler) writePump(conn *websocket.Conn, feed <-chan events.Event, cancel func(), f *filter) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		cancel()
		conn.Close()
	}()

	for {
		select {
		case e, ok := <-feed:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if !f.matches(e) {
				continue
			}
			payload, err := json.Marshal(e)
			if err != nil {
				continue
			}
			if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}

		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// readPump drains the connection so close frames and pongs are processed.
func (h *Handler) readPump(conn *websocket.Conn, cancel func()) {
	defer func() {
		cancel()
		conn.Close()
	}()

	conn.SetReadLimit(maxMessageSize)
	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.log.Debug("stream client closed unexpectedly", logger.Fields{
					"error": err.Error(),
				})
			}
			return
		}
	}
}
