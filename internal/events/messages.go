package events

import (
	"encoding/json"
	"time"

	"cashflow/internal/models"
)

const (
	EventCreated = "created"
	EventDeleted = "deleted"

	routingKeyPrefix = "transaction."
)

// TransactionEvent is the message published for every transaction lifecycle change.
// Amounts travel as strings to keep their exact decimal value
type TransactionEvent struct {
	Event         string    `json:"event"`
	TransactionID string    `json:"transactionId"`
	UserID        string    `json:"userId"`
	Type          string    `json:"type"`
	Amount        string    `json:"amount"`
	CategoryID    *string   `json:"categoryId"`
	OccurredAt    time.Time `json:"occurredAt"`
}

// NewTransactionEvent builds the event for tx
func NewTransactionEvent(event string, tx *models.Transaction) TransactionEvent {
	msg := TransactionEvent{
		Event:         event,
		TransactionID: tx.ID.String(),
		UserID:        tx.UserID.String(),
		Type:          string(tx.Type),
		Amount:        tx.Amount.StringFixed(models.AmountScale),
		OccurredAt:    time.Now().UTC(),
	}
	if tx.CategoryID != nil {
		id := tx.CategoryID.String()
		msg.CategoryID = &id
	}
	return msg
}

// RoutingKey returns transaction.<event>
func (e TransactionEvent) RoutingKey() string {
	return routingKeyPrefix + e.Event
}

// ToJSON converts the message to JSON bytes
func (e TransactionEvent) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

// TransactionEventFromJSON creates a message from JSON bytes
func TransactionEventFromJSON(data []byte) (*TransactionEvent, error) {
	var msg TransactionEvent
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
