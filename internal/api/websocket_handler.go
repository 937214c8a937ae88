package api

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/kingrain94/usage-billing-api/internal/api/dto"
	"github.com/kingrain94/usage-billing-api/internal/domain"
	"github.com/kingrain94/usage-billing-api/internal/utils"
	"github.com/kingrain94/usage-billing-api/pkg/logger"
)

const (
	websocketReadBufferSize        = 1024
	websocketWriteBufferSize       = 1024
	websocketSendChannelBufferSize = 256
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  websocketReadBufferSize,
	WriteBufferSize: websocketWriteBufferSize,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

//go:generate mockery --name UsageEventStream --output ../mocks
type UsageEventStream interface {
	Subscribe(ctx context.Context, subscriberID, tenantID string, callback func(*domain.UsageEvent)) error
	Unsubscribe(subscriberID string)
}

type Client struct {
	id       string
	conn     *websocket.Conn
	tenantID string
	send     chan []byte
}

// WebSocketHandler streams recorded usage events to connected clients of the
// same tenant. Each connection holds its own subscription.
type WebSocketHandler struct {
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	mutex      sync.RWMutex
	logger     *logger.Logger
	stream     UsageEventStream
	ctx        context.Context
	cancel     context.CancelFunc
}

func NewWebSocketHandler(logger *logger.Logger, stream UsageEventStream) *WebSocketHandler {
	ctx, cancel := context.WithCancel(context.Background())
	return &WebSocketHandler{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		logger:     logger,
		stream:     stream,
		ctx:        ctx,
		cancel:     cancel,
	}
}

// HandleWebSocket godoc
// @Summary Stream usage events
// @Description Upgrades to a websocket that receives every usage event recorded for the tenant
// @Tags usage
// @Param tenant_id query string true "Tenant ID"
// @Success 101
// @Failure 400 {object} dto.Error
// @Router /usage/stream [get]
func (h *WebSocketHandler) HandleWebSocket(c *gin.Context) {
	tenantID := c.GetString(string(utils.TenantIDKey))
	if tenantID == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, dto.Error{Error: "tenant_id is required", ErrorCode: CodeValidation})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Error("Failed to upgrade connection", err, zap.String("tenant_id", tenantID))
		return
	}

	client := &Client{
		id:       uuid.NewString(),
		conn:     conn,
		tenantID: tenantID,
		send:     make(chan []byte, websocketSendChannelBufferSize),
	}
	h.register <- client

	go h.writePump(client)
	go h.readPump(client)
}

func (h *WebSocketHandler) Start() {
	for {
		select {
		case client := <-h.register:
			h.mutex.Lock()
			h.clients[client] = true
			h.mutex.Unlock()

			err := h.stream.Subscribe(h.ctx, client.id, client.tenantID, func(event *domain.UsageEvent) {
				h.deliver(client, event)
			})
			if err != nil {
				h.logger.Error("Failed to subscribe client", err, zap.String("tenant_id", client.tenantID))
				h.remove(client)
			}

		case client := <-h.unregister:
			h.remove(client)

		case <-h.ctx.Done():
			return
		}
	}
}

func (h *WebSocketHandler) Stop() {
	h.cancel()

	h.mutex.Lock()
	defer h.mutex.Unlock()
	for client := range h.clients {
		h.stream.Unsubscribe(client.id)
		close(client.send)
		delete(h.clients, client)
	}
}

// ClientCount returns the number of connected clients of a tenant.
func (h *WebSocketHandler) ClientCount(tenantID string) int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	count := 0
	for client := range h.clients {
		if client.tenantID == tenantID {
			count++
		}
	}
	return count
}

func (h *WebSocketHandler) remove(client *Client) {
	h.stream.Unsubscribe(client.id)

	h.mutex.Lock()
	defer h.mutex.Unlock()
	if _, ok := h.clients[client]; ok {
		delete(h.clients, client)
		close(client.send)
	}
}

// deliver queues an event for one client. Events for a client whose buffer
// is full are dropped.
func (h *WebSocketHandler) deliver(client *Client, event *domain.UsageEvent) {
	message, err := json.Marshal(event)
	if err != nil {
		h.logger.Error("Failed to marshal usage event", err)
		return
	}

	h.mutex.RLock()
	defer h.mutex.RUnlock()

	if !h.clients[client] {
		return
	}
	select {
	case client.send <- message:
	default:
		h.logger.Warn("Dropped usage event for slow client", zap.String("tenant_id", client.tenantID), zap.String("client_id", client.id))
	}
}

func (h *WebSocketHandler) writePump(client *Client) {
	defer func() {
		client.conn.Close()
	}()

	for message := range client.send {
		w, err := client.conn.NextWriter(websocket.TextMessage)
		if err != nil {
			return
		}
		w.Write(message)

		if err := w.Close(); err != nil {
			return
		}
	}

	// Channel was closed, send close message
	client.conn.WriteMessage(websocket.CloseMessage, []byte{})
}

func (h *WebSocketHandler) readPump(client *Client) {
	defer func() {
		select {
		case h.unregister <- client:
		case <-h.ctx.Done():
		}
		client.conn.Close()
	}()

	for {
		_, _, err := client.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				h.logger.Warnf("Unexpected close error for client %s: %v", client.tenantID, err)
			}
			return
		}
	}
}
