package model

import (
	"fieldservice/shared/model"
	"time"
)

const (
	TableName  = "payments"
	EntityName = "payment"

	FieldID               = "id"
	FieldServiceRequestID = "service_request_id"
	FieldAmount           = "amount"
	FieldStatus           = "status"
	FieldPaymentDate      = "payment_date"
)

const (
	StatusPending   = "Pending"
	StatusCompleted = "Completed"
	StatusFailed    = "Failed"
	StatusRefunded  = "Refunded"
)

const (
	ActionComplete = "complete"
	ActionFail     = "fail"
	ActionRefund   = "refund"
)

// transitions maps an action to the only status it may start from and the status it leads to.
var transitions = map[string][2]string{
	ActionComplete: {StatusPending, StatusCompleted},
	ActionFail:     {StatusPending, StatusFailed},
	ActionRefund:   {StatusCompleted, StatusRefunded},
}

// NextStatus returns the status reached by applying action to a payment in status current.
func NextStatus(current, action string) (string, bool) {
	transition, ok := transitions[action]
	if !ok || transition[0] != current {
		return "", false
	}

	return transition[1], true
}

type Payment struct {
	ID                 int64     `db:"id"                  readonly:"true"`
	ServiceRequestID   int64     `db:"service_request_id"`
	ServiceDescription string    `db:"service_description" table:"service_requests" column:"description"`
	Amount             float64   `db:"amount"`
	PaymentDate        time.Time `db:"payment_date"`
	PaymentMethod      string    `db:"payment_method"`
	Reference          string    `db:"reference"`
	Status             string    `db:"status"`
	Notes              string    `db:"notes"`
	model.Metadata
}

func (Payment) GetJoinQuery() string {
	return "JOIN service_requests ON service_requests.id = payments.service_request_id"
}

func (p Payment) SearchFields() []string {
	return []string{p.ServiceDescription, p.PaymentMethod, p.Reference, p.Notes}
}

func (p Payment) StatusValue() string {
	return p.Status
}

// IsEditable reports whether amount and details may still change.
func (p Payment) IsEditable() bool {
	return p.Status == StatusPending
}

func (p Payment) DateValue() time.Time {
	return p.PaymentDate
}
