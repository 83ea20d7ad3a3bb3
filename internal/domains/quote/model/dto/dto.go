package dto

import (
	"fieldservice/internal/domains/quote/model"
	"fieldservice/shared"
	"fieldservice/shared/constant"
	gDto "fieldservice/shared/dto"
	"fieldservice/shared/failure"
	gModel "fieldservice/shared/model"
	"fieldservice/shared/timezone"
	"time"
)

var errValidity = failure.BadRequestFromString("valid_until must not be before valid_from")

// CreateQuoteRequest records a quote by hand. New quotes always start as Pending.
type CreateQuoteRequest struct {
	ServiceRequestID int64   `json:"service_request_id" validate:"required,gt=0"`
	Amount           float64 `json:"amount"             validate:"gte=0"`
	ValidFrom        string  `json:"valid_from"         validate:"required,date"`
	ValidUntil       string  `json:"valid_until"        validate:"required,date"`
	Notes            string  `json:"notes"`
}

func (c *CreateQuoteRequest) ToModel(user string) (model.Quote, error) {
	validFrom, err := ParseDate(c.ValidFrom, "valid_from")
	if err != nil {
		return model.Quote{}, err
	}

	validUntil, err := ParseDate(c.ValidUntil, "valid_until")
	if err != nil {
		return model.Quote{}, err
	}

	if validUntil.Before(validFrom) {
		return model.Quote{}, errValidity
	}

	return model.Quote{
		ServiceRequestID: c.ServiceRequestID,
		Amount:           shared.RoundMoney(c.Amount),
		ValidFrom:        validFrom,
		ValidUntil:       validUntil,
		Status:           model.StatusPending,
		Notes:            c.Notes,
		Metadata:         gModel.NewMetadata(user, timezone.Now()),
	}, nil
}

// NewGeneratedQuote prices a quote at the service request's total cost, valid from today for validityMonths.
func NewGeneratedQuote(serviceRequestID int64, totalCost float64, today time.Time, validityMonths int, user string) model.Quote {
	return model.Quote{
		ServiceRequestID: serviceRequestID,
		Amount:           shared.RoundMoney(totalCost),
		ValidFrom:        today,
		ValidUntil:       today.AddDate(0, max(validityMonths, 1), 0),
		Status:           model.StatusPending,
		Metadata:         gModel.NewMetadata(user, timezone.Now()),
	}
}

// UpdateQuoteRequest has no status field; status changes go through approve and reject.
type UpdateQuoteRequest struct {
	Amount     *float64 `db:"amount" json:"amount"      validate:"omitempty,gte=0"`
	ValidFrom  *string  `db:"-"      json:"valid_from"  validate:"omitempty,date"`
	ValidUntil *string  `db:"-"      json:"valid_until" validate:"omitempty,date"`
	Notes      *string  `db:"notes"  json:"notes"`
}

func (u UpdateQuoteRequest) IsEmpty() bool {
	return u == UpdateQuoteRequest{}
}

// Validity overlays the requested dates on current and checks their order.
// The returned map holds only the date columns that were sent.
func (u UpdateQuoteRequest) Validity(current model.Quote) (map[string]any, error) {
	fields := map[string]any{}
	validFrom, validUntil := timezone.DateOf(current.ValidFrom), timezone.DateOf(current.ValidUntil)

	if u.ValidFrom != nil {
		date, err := ParseDate(*u.ValidFrom, "valid_from")
		if err != nil {
			return nil, err
		}

		validFrom = date
		fields[model.FieldValidFrom] = date
	}

	if u.ValidUntil != nil {
		date, err := ParseDate(*u.ValidUntil, "valid_until")
		if err != nil {
			return nil, err
		}

		validUntil = date
		fields[model.FieldValidUntil] = date
	}

	if validUntil.Before(validFrom) {
		return nil, errValidity
	}

	return fields, nil
}

type QuoteResponse struct {
	ID                 int64   `json:"id"`
	ServiceRequestID   int64   `json:"service_request_id"`
	ServiceDescription string  `json:"service_description"`
	Amount             float64 `json:"amount"`
	ValidFrom          string  `json:"valid_from"`
	ValidUntil         string  `json:"valid_until"`
	Status             string  `json:"status"`
	Notes              string  `json:"notes"`
	gDto.Metadata
}

func (r *QuoteResponse) FromModel(m model.Quote) {
	r.ID = m.ID
	r.ServiceRequestID = m.ServiceRequestID
	r.ServiceDescription = m.ServiceDescription
	r.Amount = m.Amount
	r.ValidFrom = timezone.FormatDate(m.ValidFrom, constant.DateFormat)
	r.ValidUntil = timezone.FormatDate(m.ValidUntil, constant.DateFormat)
	r.Status = m.Status
	r.Notes = m.Notes
	r.Metadata.FromModel(m.Metadata)
}

type GetQuotesResponse struct {
	Quotes    []QuoteResponse `json:"quotes"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetQuotesResponse) FromModels(models []model.Quote, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Quotes = make([]QuoteResponse, len(models))
	for i, m := range models {
		r.Quotes[i].FromModel(m)
	}
}

func ParseDate(value, name string) (time.Time, error) {
	date, err := timezone.Parse(constant.DateFormat, value)
	if err != nil {
		return time.Time{}, failure.BadRequestFromString(name + " must be a date in YYYY-MM-DD format")
	}

	return date, nil
}
