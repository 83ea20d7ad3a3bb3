package model

import (
	"fieldservice/shared/model"
	"fieldservice/shared/timezone"
	"strings"
	"time"
)

const (
	TableName  = "customers"
	EntityName = "customer"

	FieldID             = "id"
	FieldCustomerNumber = "customer_number"
	FieldLogoURL        = "logo_url"

	NumberPrefix = "CUS-"
)

type Customer struct {
	ID             int64  `db:"id"               readonly:"true"`
	CustomerNumber string `db:"customer_number"`
	FirstName      string `db:"first_name"`
	LastName       string `db:"last_name"`
	CompanyName    string `db:"company_name"`
	Email          string `db:"email"`
	Phone          string `db:"phone"`
	Address        string `db:"address"`
	City           string `db:"city"`
	State          string `db:"state"`
	ZipCode        string `db:"zip_code"`
	BillingAddress string `db:"billing_address"`
	BillingCity    string `db:"billing_city"`
	BillingState   string `db:"billing_state"`
	BillingZipCode string `db:"billing_zip_code"`
	TaxID          string `db:"tax_id"`
	Notes          string `db:"notes"`
	LogoURL        string `db:"logo_url"`
	model.Metadata
}

func (c Customer) FullName() string {
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}

func (c Customer) SearchFields() []string {
	return []string{c.CustomerNumber, c.FirstName, c.LastName, c.FullName(), c.CompanyName, c.Email, c.Phone, c.City}
}

func (c Customer) DateValue() time.Time {
	return timezone.StartOfDay(c.CreatedAt)
}
