package dto

import (
	"fieldservice/internal/domains/customer/model"
	"fieldservice/shared"
	gDto "fieldservice/shared/dto"
	gModel "fieldservice/shared/model"
	"fieldservice/shared/timezone"
	"strings"

	"github.com/google/uuid"
)

const numberLength = 8

type CreateCustomerRequest struct {
	FirstName      string `json:"first_name"       validate:"required,max=100"`
	LastName       string `json:"last_name"        validate:"required,max=100"`
	CompanyName    string `json:"company_name"     validate:"max=150"`
	Email          string `json:"email"            validate:"omitempty,email,max=150"`
	Phone          string `json:"phone"            validate:"omitempty,phone"`
	Address        string `json:"address"          validate:"max=255"`
	City           string `json:"city"             validate:"max=100"`
	State          string `json:"state"            validate:"max=50"`
	ZipCode        string `json:"zip_code"         validate:"omitempty,zipcode"`
	BillingAddress string `json:"billing_address"  validate:"max=255"`
	BillingCity    string `json:"billing_city"     validate:"max=100"`
	BillingState   string `json:"billing_state"    validate:"max=50"`
	BillingZipCode string `json:"billing_zip_code" validate:"omitempty,zipcode"`
	TaxID          string `json:"tax_id"           validate:"max=50"`
	Notes          string `json:"notes"`
	Logo           string `json:"logo"             validate:"omitempty,mimetypes=image/png image/jpeg image/gif image/webp image/svg+xml"`
}

func (c *CreateCustomerRequest) ToModel(user, logoURL string) model.Customer {
	return model.Customer{
		CustomerNumber: NewCustomerNumber(),
		FirstName:      strings.TrimSpace(c.FirstName),
		LastName:       strings.TrimSpace(c.LastName),
		CompanyName:    c.CompanyName,
		Email:          c.Email,
		Phone:          c.Phone,
		Address:        c.Address,
		City:           c.City,
		State:          c.State,
		ZipCode:        c.ZipCode,
		BillingAddress: c.BillingAddress,
		BillingCity:    c.BillingCity,
		BillingState:   c.BillingState,
		BillingZipCode: c.BillingZipCode,
		TaxID:          c.TaxID,
		Notes:          c.Notes,
		LogoURL:        logoURL,
		Metadata:       gModel.NewMetadata(user, timezone.Now()),
	}
}

// NewCustomerNumber returns a number such as CUS-1A2B3C4D.
func NewCustomerNumber() string {
	id := strings.ReplaceAll(uuid.NewString(), "-", "")

	return model.NumberPrefix + strings.ToUpper(id[:numberLength])
}

// UpdateCustomerRequest only touches the fields present in the payload. An empty logo removes the current one.
type UpdateCustomerRequest struct {
	FirstName      *string `db:"first_name"       json:"first_name"       validate:"omitempty,min=1,max=100"`
	LastName       *string `db:"last_name"        json:"last_name"        validate:"omitempty,min=1,max=100"`
	CompanyName    *string `db:"company_name"     json:"company_name"     validate:"omitempty,max=150"`
	Email          *string `db:"email"            json:"email"            validate:"omitempty,email,max=150"`
	Phone          *string `db:"phone"            json:"phone"            validate:"omitempty,phone"`
	Address        *string `db:"address"          json:"address"          validate:"omitempty,max=255"`
	City           *string `db:"city"             json:"city"             validate:"omitempty,max=100"`
	State          *string `db:"state"            json:"state"            validate:"omitempty,max=50"`
	ZipCode        *string `db:"zip_code"         json:"zip_code"         validate:"omitempty,zipcode"`
	BillingAddress *string `db:"billing_address"  json:"billing_address"  validate:"omitempty,max=255"`
	BillingCity    *string `db:"billing_city"     json:"billing_city"     validate:"omitempty,max=100"`
	BillingState   *string `db:"billing_state"    json:"billing_state"    validate:"omitempty,max=50"`
	BillingZipCode *string `db:"billing_zip_code" json:"billing_zip_code" validate:"omitempty,zipcode"`
	TaxID          *string `db:"tax_id"           json:"tax_id"           validate:"omitempty,max=50"`
	Notes          *string `db:"notes"            json:"notes"`
	Logo           *string `db:"-"                json:"logo"             validate:"omitempty,mimetypes=image/png image/jpeg image/gif image/webp image/svg+xml"`
}

func (u UpdateCustomerRequest) IsEmpty() bool {
	return u == UpdateCustomerRequest{}
}

type CustomerResponse struct {
	ID             int64  `json:"id"`
	CustomerNumber string `json:"customer_number"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	FullName       string `json:"full_name"`
	CompanyName    string `json:"company_name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Address        string `json:"address"`
	City           string `json:"city"`
	State          string `json:"state"`
	ZipCode        string `json:"zip_code"`
	BillingAddress string `json:"billing_address"`
	BillingCity    string `json:"billing_city"`
	BillingState   string `json:"billing_state"`
	BillingZipCode string `json:"billing_zip_code"`
	TaxID          string `json:"tax_id"`
	Notes          string `json:"notes"`
	LogoURL        string `json:"logo_url,omitempty"`
	gDto.Metadata
}

func (r *CustomerResponse) FromModel(m model.Customer) {
	r.ID = m.ID
	r.CustomerNumber = m.CustomerNumber
	r.FirstName = m.FirstName
	r.LastName = m.LastName
	r.FullName = m.FullName()
	r.CompanyName = m.CompanyName
	r.Email = m.Email
	r.Phone = m.Phone
	r.Address = m.Address
	r.City = m.City
	r.State = m.State
	r.ZipCode = m.ZipCode
	r.BillingAddress = m.BillingAddress
	r.BillingCity = m.BillingCity
	r.BillingState = m.BillingState
	r.BillingZipCode = m.BillingZipCode
	r.TaxID = m.TaxID
	r.Notes = m.Notes
	r.LogoURL = m.LogoURL
	r.Metadata.FromModel(m.Metadata)
}

type GetCustomersResponse struct {
	Customers []CustomerResponse `json:"customers"`
	TotalPage int                `json:"total_page"`
	TotalData int                `json:"total_data"`
}

func (r *GetCustomersResponse) FromModels(models []model.Customer, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Customers = make([]CustomerResponse, len(models))
	for i, m := range models {
		r.Customers[i].FromModel(m)
	}
}
