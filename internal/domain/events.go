package domain

import "time"

// OrderPlacedEvent is published after an order is persisted so that
// secondary sinks (the orders spreadsheet) can mirror it.
type OrderPlacedEvent struct {
	EventType string    `json:"event_type"`
	Order     Order     `json:"order"`
	Timestamp time.Time `json:"timestamp"`
}

const (
	EventOrderPlaced = "order.placed"
)
