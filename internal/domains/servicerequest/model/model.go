package model

import (
	"fieldservice/shared"
	"fieldservice/shared/model"
	"strings"
	"time"
)

const (
	TableName  = "service_requests"
	EntityName = "service_request"

	FieldID          = "id"
	FieldCustomerID  = "customer_id"
	FieldDescription = "description"
	FieldStatus      = "status"
	FieldServiceDate = "service_date"
	FieldServiceCost = "service_cost"
	FieldAddedCost   = "added_cost"
	FieldParkingFees = "parking_fees"
	FieldTotalCost   = "total_cost"

	DefaultStatus = "Pending"
)

type ServiceRequest struct {
	ID                int64     `db:"id"                  readonly:"true"`
	CustomerID        int64     `db:"customer_id"`
	CustomerNumber    string    `db:"customer_number"     table:"customers"`
	CustomerFirstName string    `db:"customer_first_name" table:"customers" column:"first_name"`
	CustomerLastName  string    `db:"customer_last_name"  table:"customers" column:"last_name"`
	CustomerCompany   string    `db:"customer_company"    table:"customers" column:"company_name"`
	Description       string    `db:"description"`
	ServiceDate       time.Time `db:"service_date"`
	ServiceTime       string    `db:"service_time"`
	LocationAddress   string    `db:"location_address"`
	LocationCity      string    `db:"location_city"`
	LocationState     string    `db:"location_state"`
	LocationZipCode   string    `db:"location_zip_code"`
	ServiceCost       float64   `db:"service_cost"`
	AddedCost         float64   `db:"added_cost"`
	ParkingFees       float64   `db:"parking_fees"`
	TotalCost         float64   `db:"total_cost"`
	Status            string    `db:"status"`
	Notes             string    `db:"notes"`
	model.Metadata
}

func (ServiceRequest) GetJoinQuery() string {
	return "JOIN customers ON customers.id = service_requests.customer_id"
}

func (s ServiceRequest) CustomerName() string {
	return strings.TrimSpace(s.CustomerFirstName + " " + s.CustomerLastName)
}

func (s ServiceRequest) SearchFields() []string {
	return []string{
		s.Description, s.CustomerNumber, s.CustomerName(), s.CustomerCompany,
		s.LocationAddress, s.LocationCity, s.LocationState, s.LocationZipCode, s.Status, s.Notes,
	}
}

func (s ServiceRequest) StatusValue() string {
	return s.Status
}

func (s ServiceRequest) DateValue() time.Time {
	return s.ServiceDate
}

// Recalculate refreshes TotalCost from the cost components.
func (s *ServiceRequest) Recalculate() {
	s.ServiceCost = shared.RoundMoney(s.ServiceCost)
	s.AddedCost = shared.RoundMoney(s.AddedCost)
	s.ParkingFees = shared.RoundMoney(s.ParkingFees)
	s.TotalCost = TotalCost(s.ServiceCost, s.AddedCost, s.ParkingFees)
}

// TotalCost is the sum of the cost components rounded to cents.
func TotalCost(serviceCost, addedCost, parkingFees float64) float64 {
	return shared.RoundMoney(serviceCost + addedCost + parkingFees)
}
