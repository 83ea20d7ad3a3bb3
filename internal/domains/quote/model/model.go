package model

import (
	"fieldservice/shared/model"
	"fieldservice/shared/timezone"
	"time"
)

const (
	TableName  = "quotes"
	EntityName = "quote"

	FieldID               = "id"
	FieldServiceRequestID = "service_request_id"
	FieldAmount           = "amount"
	FieldValidFrom        = "valid_from"
	FieldValidUntil       = "valid_until"
	FieldStatus           = "status"
)

const (
	StatusPending  = "Pending"
	StatusApproved = "Approved"
	StatusRejected = "Rejected"
)

const (
	ActionApprove = "approve"
	ActionReject  = "reject"
)

var transitions = map[string][2]string{
	ActionApprove: {StatusPending, StatusApproved},
	ActionReject:  {StatusPending, StatusRejected},
}

// NextStatus returns the status reached by applying action to a quote in status current.
func NextStatus(current, action string) (string, bool) {
	transition, ok := transitions[action]
	if !ok || transition[0] != current {
		return "", false
	}

	return transition[1], true
}

type Quote struct {
	ID                 int64     `db:"id"                  readonly:"true"`
	ServiceRequestID   int64     `db:"service_request_id"`
	ServiceDescription string    `db:"service_description" table:"service_requests" column:"description"`
	Amount             float64   `db:"amount"`
	ValidFrom          time.Time `db:"valid_from"`
	ValidUntil         time.Time `db:"valid_until"`
	Status             string    `db:"status"`
	Notes              string    `db:"notes"`
	model.Metadata
}

func (Quote) GetJoinQuery() string {
	return "JOIN service_requests ON service_requests.id = quotes.service_request_id"
}

func (q Quote) SearchFields() []string {
	return []string{q.ServiceDescription, q.Status, q.Notes}
}

func (q Quote) StatusValue() string {
	return q.Status
}

func (q Quote) DateValue() time.Time {
	return q.ValidFrom
}

func (q Quote) IsEditable() bool {
	return q.Status == StatusPending
}

// IsExpired reports whether a pending quote's validity ended before today.
func (q Quote) IsExpired(today time.Time) bool {
	return q.Status == StatusPending && timezone.DateOf(q.ValidUntil).Before(timezone.DateOf(today))
}
