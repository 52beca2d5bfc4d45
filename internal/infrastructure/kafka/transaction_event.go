package kafka

import "time"

const (
	ActionStatusUpdated = "status_updated"
	ActionHashAttached  = "hash_attached"
	ActionDeleted       = "deleted"
)

// TransactionEvent is published to the transaction-events topic on every
// successful mutation. The notification fan-out (Telegram, email) consumes
// this stream downstream.
type TransactionEvent struct {
	EventID       string    `json:"event_id"`
	TransactionID string    `json:"transaction_id"`
	Source        string    `json:"source"`
	Action        string    `json:"action"`
	Status        string    `json:"status,omitempty"`
	TxHash        string    `json:"tx_hash,omitempty"`
	OccurredAt    time.Time `json:"occurred_at"`
}
