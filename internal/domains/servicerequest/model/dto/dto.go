package dto

import (
	"fieldservice/internal/domains/servicerequest/model"
	"fieldservice/shared"
	"fieldservice/shared/constant"
	gDto "fieldservice/shared/dto"
	"fieldservice/shared/failure"
	gModel "fieldservice/shared/model"
	"fieldservice/shared/timezone"
	"slices"
	"strings"
	"time"
)

type CreateServiceRequestRequest struct {
	CustomerID      int64   `json:"customer_id"       validate:"required,gt=0"`
	Description     string  `json:"description"       validate:"required,max=2000"`
	ServiceDate     string  `json:"service_date"      validate:"required,date"`
	ServiceTime     string  `json:"service_time"      validate:"omitempty,clock"`
	LocationAddress string  `json:"location_address"  validate:"max=255"`
	LocationCity    string  `json:"location_city"     validate:"max=100"`
	LocationState   string  `json:"location_state"    validate:"max=50"`
	LocationZipCode string  `json:"location_zip_code" validate:"omitempty,zipcode"`
	ServiceCost     float64 `json:"service_cost"      validate:"gte=0"`
	AddedCost       float64 `json:"added_cost"        validate:"gte=0"`
	ParkingFees     float64 `json:"parking_fees"      validate:"gte=0"`
	Status          string  `json:"status"            validate:"max=50"`
	Notes           string  `json:"notes"`
}

func (c *CreateServiceRequestRequest) ToModel(user string) (model.ServiceRequest, error) {
	serviceDate, err := ParseDate(c.ServiceDate)
	if err != nil {
		return model.ServiceRequest{}, err
	}

	status := strings.TrimSpace(c.Status)
	if status == "" {
		status = model.DefaultStatus
	}

	request := model.ServiceRequest{
		CustomerID:      c.CustomerID,
		Description:     strings.TrimSpace(c.Description),
		ServiceDate:     serviceDate,
		ServiceTime:     c.ServiceTime,
		LocationAddress: c.LocationAddress,
		LocationCity:    c.LocationCity,
		LocationState:   c.LocationState,
		LocationZipCode: c.LocationZipCode,
		ServiceCost:     c.ServiceCost,
		AddedCost:       c.AddedCost,
		ParkingFees:     c.ParkingFees,
		Status:          status,
		Notes:           c.Notes,
		Metadata:        gModel.NewMetadata(user, timezone.Now()),
	}
	request.Recalculate()

	return request, nil
}

// UpdateServiceRequestRequest changes only the fields present in the payload. The total cost is
// recomputed whenever one of the cost components changes.
type UpdateServiceRequestRequest struct {
	CustomerID      *int64   `db:"customer_id"       json:"customer_id"       validate:"omitempty,gt=0"`
	Description     *string  `db:"description"       json:"description"       validate:"omitempty,min=1,max=2000"`
	ServiceDate     *string  `db:"-"                 json:"service_date"      validate:"omitempty,date"`
	ServiceTime     *string  `db:"service_time"      json:"service_time"      validate:"omitempty,clock"`
	LocationAddress *string  `db:"location_address"  json:"location_address"  validate:"omitempty,max=255"`
	LocationCity    *string  `db:"location_city"     json:"location_city"     validate:"omitempty,max=100"`
	LocationState   *string  `db:"location_state"    json:"location_state"    validate:"omitempty,max=50"`
	LocationZipCode *string  `db:"location_zip_code" json:"location_zip_code" validate:"omitempty,zipcode"`
	ServiceCost     *float64 `db:"service_cost"      json:"service_cost"      validate:"omitempty,gte=0"`
	AddedCost       *float64 `db:"added_cost"        json:"added_cost"        validate:"omitempty,gte=0"`
	ParkingFees     *float64 `db:"parking_fees"      json:"parking_fees"      validate:"omitempty,gte=0"`
	Status          *string  `db:"status"            json:"status"            validate:"omitempty,min=1,max=50"`
	Notes           *string  `db:"notes"             json:"notes"`
}

func (u UpdateServiceRequestRequest) IsEmpty() bool {
	return u == UpdateServiceRequestRequest{}
}

func (u UpdateServiceRequestRequest) ChangesCost() bool {
	return u.ServiceCost != nil || u.AddedCost != nil || u.ParkingFees != nil
}

// ApplyCosts overlays the requested cost components on current and returns the recalculated request.
func (u UpdateServiceRequestRequest) ApplyCosts(current model.ServiceRequest) model.ServiceRequest {
	if u.ServiceCost != nil {
		current.ServiceCost = *u.ServiceCost
	}

	if u.AddedCost != nil {
		current.AddedCost = *u.AddedCost
	}

	if u.ParkingFees != nil {
		current.ParkingFees = *u.ParkingFees
	}

	current.Recalculate()

	return current
}

type AssignTechniciansRequest struct {
	TechnicianIDs []int64 `json:"technician_ids" validate:"required,dive,gt=0"`
}

// UniqueIDs returns the technician ids without duplicates, in ascending order.
func (a AssignTechniciansRequest) UniqueIDs() []int64 {
	ids := slices.Clone(a.TechnicianIDs)
	slices.Sort(ids)

	return slices.Compact(ids)
}

type ServiceRequestResponse struct {
	ID              int64            `json:"id"`
	Customer        CustomerResponse `json:"customer"`
	Description     string           `json:"description"`
	ServiceDate     string           `json:"service_date"`
	ServiceTime     string           `json:"service_time"`
	LocationAddress string           `json:"location_address"`
	LocationCity    string           `json:"location_city"`
	LocationState   string           `json:"location_state"`
	LocationZipCode string           `json:"location_zip_code"`
	ServiceCost     float64          `json:"service_cost"`
	AddedCost       float64          `json:"added_cost"`
	ParkingFees     float64          `json:"parking_fees"`
	TotalCost       float64          `json:"total_cost"`
	Status          string           `json:"status"`
	Notes           string           `json:"notes"`
	gDto.Metadata
}

type CustomerResponse struct {
	ID             int64  `json:"id"`
	CustomerNumber string `json:"customer_number"`
	Name           string `json:"name"`
	CompanyName    string `json:"company_name"`
}

func (r *ServiceRequestResponse) FromModel(m model.ServiceRequest) {
	r.ID = m.ID
	r.Customer = CustomerResponse{
		ID:             m.CustomerID,
		CustomerNumber: m.CustomerNumber,
		Name:           m.CustomerName(),
		CompanyName:    m.CustomerCompany,
	}
	r.Description = m.Description
	r.ServiceDate = timezone.FormatDate(m.ServiceDate, constant.DateFormat)
	r.ServiceTime = m.ServiceTime
	r.LocationAddress = m.LocationAddress
	r.LocationCity = m.LocationCity
	r.LocationState = m.LocationState
	r.LocationZipCode = m.LocationZipCode
	r.ServiceCost = m.ServiceCost
	r.AddedCost = m.AddedCost
	r.ParkingFees = m.ParkingFees
	r.TotalCost = m.TotalCost
	r.Status = m.Status
	r.Notes = m.Notes
	r.Metadata.FromModel(m.Metadata)
}

func FromModels(models []model.ServiceRequest) []ServiceRequestResponse {
	res := make([]ServiceRequestResponse, len(models))
	for i, m := range models {
		res[i].FromModel(m)
	}

	return res
}

type GetServiceRequestsResponse struct {
	ServiceRequests []ServiceRequestResponse `json:"service_requests"`
	TotalPage       int                      `json:"total_page"`
	TotalData       int                      `json:"total_data"`
}

func (r *GetServiceRequestsResponse) FromModels(models []model.ServiceRequest, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)
	r.ServiceRequests = FromModels(models)
}

type BalanceResponse struct {
	ServiceRequestID int64   `json:"service_request_id"`
	TotalCost        float64 `json:"total_cost"`
	PaidAmount       float64 `json:"paid_amount"`
	RemainingBalance float64 `json:"remaining_balance"`
	OverpaidAmount   float64 `json:"overpaid_amount"`
}

func (r *BalanceResponse) FromModel(serviceRequestID int64, balance model.Balance) {
	r.ServiceRequestID = serviceRequestID
	r.TotalCost = balance.TotalCost
	r.PaidAmount = balance.PaidAmount
	r.RemainingBalance = balance.RemainingBalance
	r.OverpaidAmount = balance.OverpaidAmount
}

// ParseDate reads a YYYY-MM-DD date in the application timezone.
func ParseDate(value string) (time.Time, error) {
	date, err := timezone.Parse(constant.DateFormat, value)
	if err != nil {
		return time.Time{}, failure.BadRequestFromString("service_date must be a date in YYYY-MM-DD format")
	}

	return date, nil
}
