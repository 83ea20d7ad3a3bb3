package model

import (
	"fieldservice/shared/model"
	"fieldservice/shared/timezone"
	"strings"
	"time"
)

const (
	TableName  = "technicians"
	EntityName = "technician"

	// AssignmentTable links technicians to service requests.
	AssignmentTable = "service_technicians"

	FieldID           = "id"
	FieldFirstName    = "first_name"
	FieldLastName     = "last_name"
	FieldActive       = "active"
	FieldTechnicianID = "technician_id"
	FieldRequestID    = "service_request_id"
)

const (
	StatusActive   = "Active"
	StatusInactive = "Inactive"
)

const (
	PayTypeHourly     = "Hourly"
	PayTypeSalary     = "Salary"
	PayTypeCommission = "Commission"
	DefaultPayType    = PayTypeHourly
)

type Technician struct {
	ID            int64   `db:"id"             readonly:"true"`
	FirstName     string  `db:"first_name"`
	LastName      string  `db:"last_name"`
	Email         string  `db:"email"`
	Phone         string  `db:"phone"`
	LicenseNumber string  `db:"license_number"`
	Certification string  `db:"certification"`
	CoverageArea  string  `db:"coverage_area"`
	HourlyRate    float64 `db:"hourly_rate"`
	BankAccount   string  `db:"bank_account"`
	PayType       string  `db:"pay_type"`
	Active        bool    `db:"active"`
	model.Metadata
}

func (t Technician) FullName() string {
	return strings.TrimSpace(t.FirstName + " " + t.LastName)
}

func (t Technician) SearchFields() []string {
	return []string{t.FirstName, t.LastName, t.FullName(), t.Email, t.Phone, t.LicenseNumber, t.Certification, t.CoverageArea}
}

func (t Technician) StatusValue() string {
	if t.Active {
		return StatusActive
	}

	return StatusInactive
}

func (t Technician) DateValue() time.Time {
	return timezone.StartOfDay(t.CreatedAt)
}
