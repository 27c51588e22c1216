// Package persistence holds non-Mongo persistence adapters for the inventory
// module.
package persistence

import (
	"context"
	"strconv"
	"time"

	"ot-inventory/internal/inventory/domain/model"
	"ot-inventory/internal/inventory/domain/repository"
	"ot-inventory/internal/shared/logger"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RedisStockEventStore persists stock adjustments in a Redis Stream. The
// stream is the audit trail dashboards read movement history from; it is
// capped so old entries age out.
type RedisStockEventStore struct {
	client    *redis.Client
	stream    string
	maxLength int64
	logger    logger.Logger
}

// NewRedisStockEventStore creates a stream-backed stock event store.
func NewRedisStockEventStore(client *redis.Client, stream string, maxLength int64, log logger.Logger) *RedisStockEventStore {
	if stream == "" {
		stream = "inventory:stock-events"
	}
	if maxLength <= 0 {
		maxLength = 10000
	}
	return &RedisStockEventStore{
		client:    client,
		stream:    stream,
		maxLength: maxLength,
		logger:    log,
	}
}

// Append adds a stock event to the stream.
func (s *RedisStockEventStore) Append(ctx context.Context, event model.StockEvent) error {
	_, err := s.client.XAdd(ctx, &redis.XAddArgs{
		Stream: s.stream,
		MaxLen: s.maxLength,
		Approx: true,
		Values: map[string]interface{}{
			"id":          event.ID,
			"item_id":     event.ItemID,
			"item_name":   event.ItemName,
			"delta":       event.Delta,
			"quantity":    event.Quantity,
			"reason":      event.Reason,
			"actor_id":    event.ActorID,
			"low_stock":   strconv.FormatBool(event.LowStock),
			"occurred_at": event.OccurredAt.UnixNano(),
		},
	}).Result()

	if err != nil {
		s.logger.Error("Failed to append stock event",
			zap.String("stream", s.stream),
			zap.String("itemId", event.ItemID),
			zap.Error(err))
		return err
	}

	s.logger.Debug("Stock event appended",
		zap.String("stream", s.stream),
		zap.String("itemId", event.ItemID),
		zap.Int("delta", event.Delta))

	return nil
}

// Recent returns up to limit events, newest first.
func (s *RedisStockEventStore) Recent(ctx context.Context, limit int64) ([]model.StockEvent, error) {
	exists, err := s.client.Exists(ctx, s.stream).Result()
	if err != nil {
		return nil, err
	}
	if exists == 0 {
		return []model.StockEvent{}, nil
	}

	readCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	messages, err := s.client.XRevRangeN(readCtx, s.stream, "+", "-", limit).Result()
	if err != nil {
		if err == redis.Nil {
			return []model.StockEvent{}, nil
		}
		s.logger.Error("Failed to read stock events",
			zap.String("stream", s.stream),
			zap.Error(err))
		return nil, err
	}

	events := make([]model.StockEvent, 0, len(messages))
	for _, msg := range messages {
		event, err := parseStockEvent(msg)
		if err != nil {
			s.logger.Warn("Skipping unparsable stock event",
				zap.String("messageId", msg.ID),
				zap.Error(err))
			continue
		}
		events = append(events, event)
	}
	return events, nil
}

func parseStockEvent(msg redis.XMessage) (model.StockEvent, error) {
	event := model.StockEvent{
		ID:       stringField(msg, "id"),
		ItemID:   stringField(msg, "item_id"),
		ItemName: stringField(msg, "item_name"),
		Reason:   stringField(msg, "reason"),
		ActorID:  stringField(msg, "actor_id"),
	}

	var err error
	if event.Delta, err = intField(msg, "delta"); err != nil {
		return event, err
	}
	if event.Quantity, err = intField(msg, "quantity"); err != nil {
		return event, err
	}
	event.LowStock = stringField(msg, "low_stock") == "true"

	if raw := stringField(msg, "occurred_at"); raw != "" {
		nanos, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return event, err
		}
		event.OccurredAt = time.Unix(0, nanos)
	}
	return event, nil
}

func stringField(msg redis.XMessage, key string) string {
	if v, ok := msg.Values[key].(string); ok {
		return v
	}
	return ""
}

func intField(msg redis.XMessage, key string) (int, error) {
	raw := stringField(msg, key)
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}

var _ repository.StockEventStore = (*RedisStockEventStore)(nil)
