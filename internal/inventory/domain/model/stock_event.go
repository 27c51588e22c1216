package model

import "time"

// Stock event reasons, the audit analog of the original item transaction log.
const (
	StockReasonIssued   = "Issued"
	StockReasonReturned = "Returned"
	StockReasonReceived = "Received"
	StockReasonDamaged  = "Damaged"
	StockReasonExpired  = "Expired"
)

// StockEvent records one stock adjustment. Events flow to the in-process bus
// for websocket fan-out and to the Redis audit stream for history.
type StockEvent struct {
	ID         string    `json:"id"`
	ItemID     string    `json:"item_id"`
	ItemName   string    `json:"item_name"`
	Delta      int       `json:"delta"`
	Quantity   int       `json:"quantity"`
	Reason     string    `json:"reason"`
	ActorID    string    `json:"actor_id,omitempty"`
	LowStock   bool      `json:"low_stock"`
	OccurredAt time.Time `json:"occurred_at"`
}
