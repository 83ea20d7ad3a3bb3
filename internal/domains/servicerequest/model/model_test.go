package model_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"fieldservice/internal/domains/servicerequest/model"
)

func TestTotalCost(t *testing.T) {
	assert.InDelta(t, 180.35, model.TotalCost(150, 20.25, 10.1), 0.0001)
	assert.InDelta(t, 0.3, model.TotalCost(0.1, 0.2, 0), 0.0001)
}

func TestServiceRequest_Recalculate(t *testing.T) {
	sr := model.ServiceRequest{ServiceCost: 100.004, AddedCost: 50, ParkingFees: 5.5, TotalCost: 1}

	sr.Recalculate()

	assert.InDelta(t, 155.5, sr.TotalCost, 0.0001)
	assert.InDelta(t, 100.0, sr.ServiceCost, 0.0001)
}

func TestNewBalance(t *testing.T) {
	tests := []struct {
		name      string
		total     float64
		paid      float64
		remaining float64
		overpaid  float64
	}{
		{name: "nothing paid", total: 200, paid: 0, remaining: 200},
		{name: "partially paid", total: 200, paid: 75.5, remaining: 124.5},
		{name: "fully paid", total: 200, paid: 200},
		{name: "overpaid", total: 200, paid: 250.25, overpaid: 50.25},
		{name: "float noise", total: 0.3, paid: 0.1 + 0.2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			balance := model.NewBalance(tt.total, tt.paid)

			assert.GreaterOrEqual(t, balance.RemainingBalance, 0.0)
			assert.InDelta(t, tt.remaining, balance.RemainingBalance, 0.0001)
			assert.InDelta(t, tt.overpaid, balance.OverpaidAmount, 0.0001)

			if tt.overpaid == 0 {
				assert.InDelta(t, balance.TotalCost-balance.PaidAmount, balance.RemainingBalance, 0.0001)
			}
		})
	}
}

func TestNewAssignments(t *testing.T) {
	at := time.Date(2024, time.May, 1, 8, 0, 0, 0, time.UTC)

	assignments := model.NewAssignments(4, []int64{7, 9}, at)

	assert.Equal(t, []model.Assignment{
		{ServiceRequestID: 4, TechnicianID: 7, AssignedAt: at},
		{ServiceRequestID: 4, TechnicianID: 9, AssignedAt: at},
	}, assignments)
}

func TestServiceRequest_Filtering(t *testing.T) {
	sr := model.ServiceRequest{CustomerFirstName: "Ada", CustomerLastName: "Lovelace", Status: "In Progress"}

	assert.Equal(t, "Ada Lovelace", sr.CustomerName())
	assert.Contains(t, sr.SearchFields(), "Ada Lovelace")
	assert.Equal(t, "In Progress", sr.StatusValue())
}
