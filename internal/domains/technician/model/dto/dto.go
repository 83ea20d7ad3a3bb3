package dto

import (
	"fieldservice/internal/domains/technician/model"
	"fieldservice/shared"
	gDto "fieldservice/shared/dto"
	gModel "fieldservice/shared/model"
	"fieldservice/shared/timezone"
	"strings"
)

type CreateTechnicianRequest struct {
	FirstName     string  `json:"first_name"     validate:"required,max=100"`
	LastName      string  `json:"last_name"      validate:"required,max=100"`
	Email         string  `json:"email"          validate:"omitempty,email,max=150"`
	Phone         string  `json:"phone"          validate:"omitempty,phone"`
	LicenseNumber string  `json:"license_number" validate:"max=50"`
	Certification string  `json:"certification"  validate:"max=150"`
	CoverageArea  string  `json:"coverage_area"  validate:"max=150"`
	HourlyRate    float64 `json:"hourly_rate"    validate:"gte=0"`
	BankAccount   string  `json:"bank_account"   validate:"max=50"`
	PayType       string  `json:"pay_type"       validate:"omitempty,oneof=Hourly Salary Commission"`
	Active        *bool   `json:"active"`
}

func (c *CreateTechnicianRequest) ToModel(user string) model.Technician {
	payType := c.PayType
	if payType == "" {
		payType = model.DefaultPayType
	}

	active := true
	if c.Active != nil {
		active = *c.Active
	}

	return model.Technician{
		FirstName:     strings.TrimSpace(c.FirstName),
		LastName:      strings.TrimSpace(c.LastName),
		Email:         c.Email,
		Phone:         c.Phone,
		LicenseNumber: c.LicenseNumber,
		Certification: c.Certification,
		CoverageArea:  c.CoverageArea,
		HourlyRate:    shared.RoundMoney(c.HourlyRate),
		BankAccount:   c.BankAccount,
		PayType:       payType,
		Active:        active,
		Metadata:      gModel.NewMetadata(user, timezone.Now()),
	}
}

type UpdateTechnicianRequest struct {
	FirstName     *string  `db:"first_name"     json:"first_name"     validate:"omitempty,min=1,max=100"`
	LastName      *string  `db:"last_name"      json:"last_name"      validate:"omitempty,min=1,max=100"`
	Email         *string  `db:"email"          json:"email"          validate:"omitempty,email,max=150"`
	Phone         *string  `db:"phone"          json:"phone"          validate:"omitempty,phone"`
	LicenseNumber *string  `db:"license_number" json:"license_number" validate:"omitempty,max=50"`
	Certification *string  `db:"certification"  json:"certification"  validate:"omitempty,max=150"`
	CoverageArea  *string  `db:"coverage_area"  json:"coverage_area"  validate:"omitempty,max=150"`
	HourlyRate    *float64 `db:"hourly_rate"    json:"hourly_rate"    validate:"omitempty,gte=0"`
	BankAccount   *string  `db:"bank_account"   json:"bank_account"   validate:"omitempty,max=50"`
	PayType       *string  `db:"pay_type"       json:"pay_type"       validate:"omitempty,oneof=Hourly Salary Commission"`
	Active        *bool    `db:"active"         json:"active"`
}

func (u UpdateTechnicianRequest) IsEmpty() bool {
	return u == UpdateTechnicianRequest{}
}

type TechnicianResponse struct {
	ID            int64   `json:"id"`
	FirstName     string  `json:"first_name"`
	LastName      string  `json:"last_name"`
	FullName      string  `json:"full_name"`
	Email         string  `json:"email"`
	Phone         string  `json:"phone"`
	LicenseNumber string  `json:"license_number"`
	Certification string  `json:"certification"`
	CoverageArea  string  `json:"coverage_area"`
	HourlyRate    float64 `json:"hourly_rate"`
	BankAccount   string  `json:"bank_account"`
	PayType       string  `json:"pay_type"`
	Active        bool    `json:"active"`
	Status        string  `json:"status"`
	gDto.Metadata
}

func (r *TechnicianResponse) FromModel(m model.Technician) {
	r.ID = m.ID
	r.FirstName = m.FirstName
	r.LastName = m.LastName
	r.FullName = m.FullName()
	r.Email = m.Email
	r.Phone = m.Phone
	r.LicenseNumber = m.LicenseNumber
	r.Certification = m.Certification
	r.CoverageArea = m.CoverageArea
	r.HourlyRate = m.HourlyRate
	r.BankAccount = m.BankAccount
	r.PayType = m.PayType
	r.Active = m.Active
	r.Status = m.StatusValue()
	r.Metadata.FromModel(m.Metadata)
}

func FromModels(models []model.Technician) []TechnicianResponse {
	res := make([]TechnicianResponse, len(models))
	for i, m := range models {
		res[i].FromModel(m)
	}

	return res
}

type GetTechniciansResponse struct {
	Technicians []TechnicianResponse `json:"technicians"`
	TotalPage   int                  `json:"total_page"`
	TotalData   int                  `json:"total_data"`
}

func (r *GetTechniciansResponse) FromModels(models []model.Technician, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)
	r.Technicians = FromModels(models)
}
