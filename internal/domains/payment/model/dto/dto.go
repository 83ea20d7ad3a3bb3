package dto

import (
	"fieldservice/internal/domains/payment/model"
	"fieldservice/shared"
	"fieldservice/shared/constant"
	gDto "fieldservice/shared/dto"
	"fieldservice/shared/failure"
	gModel "fieldservice/shared/model"
	"fieldservice/shared/timezone"
	"strings"
	"time"
)

// CreatePaymentRequest records a payment. New payments always start as Pending.
type CreatePaymentRequest struct {
	ServiceRequestID int64   `json:"service_request_id" validate:"required,gt=0"`
	Amount           float64 `json:"amount"             validate:"required,gt=0"`
	PaymentDate      string  `json:"payment_date"       validate:"required,date"`
	PaymentMethod    string  `json:"payment_method"     validate:"required,max=30"`
	Reference        string  `json:"reference"          validate:"max=100"`
	Notes            string  `json:"notes"`
}

func (c *CreatePaymentRequest) ToModel(user string) (model.Payment, error) {
	paymentDate, err := ParseDate(c.PaymentDate)
	if err != nil {
		return model.Payment{}, err
	}

	return model.Payment{
		ServiceRequestID: c.ServiceRequestID,
		Amount:           shared.RoundMoney(c.Amount),
		PaymentDate:      paymentDate,
		PaymentMethod:    strings.TrimSpace(c.PaymentMethod),
		Reference:        strings.TrimSpace(c.Reference),
		Status:           model.StatusPending,
		Notes:            c.Notes,
		Metadata:         gModel.NewMetadata(user, timezone.Now()),
	}, nil
}

// UpdatePaymentRequest has no status field; status changes go through the payment actions.
type UpdatePaymentRequest struct {
	Amount        *float64 `db:"amount"         json:"amount"         validate:"omitempty,gt=0"`
	PaymentDate   *string  `db:"-"              json:"payment_date"   validate:"omitempty,date"`
	PaymentMethod *string  `db:"payment_method" json:"payment_method" validate:"omitempty,min=1,max=30"`
	Reference     *string  `db:"reference"      json:"reference"      validate:"omitempty,max=100"`
	Notes         *string  `db:"notes"          json:"notes"`
}

func (u UpdatePaymentRequest) IsEmpty() bool {
	return u == UpdatePaymentRequest{}
}

type PaymentResponse struct {
	ID                 int64   `json:"id"`
	ServiceRequestID   int64   `json:"service_request_id"`
	ServiceDescription string  `json:"service_description"`
	Amount             float64 `json:"amount"`
	PaymentDate        string  `json:"payment_date"`
	PaymentMethod      string  `json:"payment_method"`
	Reference          string  `json:"reference"`
	Status             string  `json:"status"`
	Notes              string  `json:"notes"`
	gDto.Metadata
}

func (r *PaymentResponse) FromModel(m model.Payment) {
	r.ID = m.ID
	r.ServiceRequestID = m.ServiceRequestID
	r.ServiceDescription = m.ServiceDescription
	r.Amount = m.Amount
	r.PaymentDate = timezone.FormatDate(m.PaymentDate, constant.DateFormat)
	r.PaymentMethod = m.PaymentMethod
	r.Reference = m.Reference
	r.Status = m.Status
	r.Notes = m.Notes
	r.Metadata.FromModel(m.Metadata)
}

type GetPaymentsResponse struct {
	Payments  []PaymentResponse `json:"payments"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetPaymentsResponse) FromModels(models []model.Payment, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Payments = make([]PaymentResponse, len(models))
	for i, m := range models {
		r.Payments[i].FromModel(m)
	}
}

func ParseDate(value string) (time.Time, error) {
	date, err := timezone.Parse(constant.DateFormat, value)
	if err != nil {
		return time.Time{}, failure.BadRequestFromString("payment_date must be a date in YYYY-MM-DD format")
	}

	return date, nil
}
