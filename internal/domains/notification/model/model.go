package model

import (
	"fmt"
	"time"
)

const (
	EventQuoteGenerated   = "quote.generated"
	EventQuoteApproved    = "quote.approved"
	EventQuoteRejected    = "quote.rejected"
	EventQuoteExpired     = "quote.expired"
	EventPaymentCompleted = "payment.completed"
	EventPaymentRefunded  = "payment.refunded"
)

// Event is the JSON document published for a downstream mailer.
type Event struct {
	Type             string    `json:"type"`
	Entity           string    `json:"entity"`
	EntityID         int64     `json:"entity_id"`
	ServiceRequestID int64     `json:"service_request_id"`
	Amount           float64   `json:"amount"`
	Status           string    `json:"status"`
	Actor            string    `json:"actor"`
	OccurredAt       time.Time `json:"occurred_at"`
}

// Key keeps every event of one record on the same partition.
func (e Event) Key() string {
	return fmt.Sprintf("%s:%d", e.Entity, e.EntityID)
}
