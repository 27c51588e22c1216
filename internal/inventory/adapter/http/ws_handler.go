package http

import (
	"context"
	"sync"
	"time"

	"ot-inventory/internal/inventory/domain/model"
	"ot-inventory/internal/shared/eventbus"
	"ot-inventory/internal/shared/logger"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	watchWriteTimeout = 10 * time.Second
	watchBufferSize   = 32
)

// WatchMessage is the frame sent to watch clients.
type WatchMessage struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

// StockWatchHandler streams stock events to dashboard clients over a
// websocket. It holds one bus subscription and fans events out to every
// connected client.
type StockWatchHandler struct {
	logger logger.Logger

	mu          sync.Mutex
	subscribers map[string]chan model.StockEvent
}

// NewStockWatchHandler creates the watch handler and subscribes it to stock
// adjustment events on the bus.
func NewStockWatchHandler(bus eventbus.EventBusInterface, log logger.Logger) *StockWatchHandler {
	h := &StockWatchHandler{
		logger:      log.WithComponent("stock_watch"),
		subscribers: make(map[string]chan model.StockEvent),
	}

	bus.Subscribe(eventbus.EventTypeStockAdjusted, func(ctx context.Context, event eventbus.Event) error {
		stockEvent, ok := event.Data().(model.StockEvent)
		if !ok {
			return nil
		}
		h.broadcast(stockEvent)
		return nil
	})

	return h
}

// RegisterRoutes mounts the watch endpoint on router. The auth middleware in
// front of this router accepts the token as a query parameter because browser
// websocket handshakes cannot set headers.
func (h *StockWatchHandler) RegisterRoutes(router fiber.Router) {
	router.Use("/watch", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			c.Locals("allowed", true)
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})

	router.Get("/watch", websocket.New(h.handleConnection))
}

func (h *StockWatchHandler) handleConnection(conn *websocket.Conn) {
	subscriberID := uuid.NewString()
	events := make(chan model.StockEvent, watchBufferSize)

	h.mu.Lock()
	h.subscribers[subscriberID] = events
	h.mu.Unlock()

	h.logger.Info("Watch client connected",
		zap.String("subscriberID", subscriberID))

	defer func() {
		h.mu.Lock()
		delete(h.subscribers, subscriberID)
		h.mu.Unlock()
		close(events)

		h.logger.Info("Watch client disconnected",
			zap.String("subscriberID", subscriberID))
	}()

	done := make(chan struct{})

	// Writer goroutine: forward stock events to the client.
	go func() {
		for {
			select {
			case event, ok := <-events:
				if !ok {
					return
				}
				conn.SetWriteDeadline(time.Now().Add(watchWriteTimeout))
				if err := conn.WriteJSON(WatchMessage{Type: "stock_event", Data: event}); err != nil {
					h.logger.Warn("Failed to write watch frame",
						zap.String("subscriberID", subscriberID),
						zap.Error(err))
					return
				}
			case <-done:
				return
			}
		}
	}()

	// Read loop exists to detect disconnects; clients send nothing.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			close(done)
			return
		}
	}
}

// broadcast delivers an event to every connected client. Slow clients with a
// full buffer miss the event rather than stalling the bus handler.
func (h *StockWatchHandler) broadcast(event model.StockEvent) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for id, ch := range h.subscribers {
		select {
		case ch <- event:
		default:
			h.logger.Warn("Dropping stock event for slow watch client",
				zap.String("subscriberID", id))
		}
	}
}
