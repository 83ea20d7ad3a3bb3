package dto_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fieldservice/internal/domains/servicerequest/model"
	"fieldservice/internal/domains/servicerequest/model/dto"
	"fieldservice/shared/failure"
	"fieldservice/shared/timezone"
)

func TestCreateServiceRequestRequest_ToModel(t *testing.T) {
	req := dto.CreateServiceRequestRequest{
		CustomerID:  2,
		Description: "  Fix leaking tap ",
		ServiceDate: "2024-06-30",
		ServiceCost: 80.456,
		AddedCost:   10,
		ParkingFees: 4.5,
	}

	m, err := req.ToModel("dispatcher")

	require.NoError(t, err)
	assert.Equal(t, "Fix leaking tap", m.Description)
	assert.Equal(t, model.DefaultStatus, m.Status)
	assert.True(t, timezone.Date(2024, time.June, 30).Equal(m.ServiceDate))
	assert.InDelta(t, 94.96, m.TotalCost, 0.0001)
	assert.Equal(t, "dispatcher", m.CreatedBy)
}

func TestCreateServiceRequestRequest_ToModelKeepsStatus(t *testing.T) {
	req := dto.CreateServiceRequestRequest{CustomerID: 2, Description: "x", ServiceDate: "2024-06-30", Status: "Scheduled"}

	m, err := req.ToModel("dispatcher")

	require.NoError(t, err)
	assert.Equal(t, "Scheduled", m.Status)
}

func TestCreateServiceRequestRequest_ToModelInvalidDate(t *testing.T) {
	req := dto.CreateServiceRequestRequest{CustomerID: 2, Description: "x", ServiceDate: "2024-13-01"}

	_, err := req.ToModel("dispatcher")

	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
}

func TestUpdateServiceRequestRequest_ApplyCosts(t *testing.T) {
	parking := 12.0
	req := dto.UpdateServiceRequestRequest{ParkingFees: &parking}

	assert.False(t, req.IsEmpty())
	assert.True(t, req.ChangesCost())

	got := req.ApplyCosts(model.ServiceRequest{ServiceCost: 100, AddedCost: 8, ParkingFees: 2})

	assert.InDelta(t, 120.0, got.TotalCost, 0.0001)
	assert.True(t, dto.UpdateServiceRequestRequest{}.IsEmpty())
}

func TestAssignTechniciansRequest_UniqueIDs(t *testing.T) {
	req := dto.AssignTechniciansRequest{TechnicianIDs: []int64{5, 2, 5, 9, 2}}

	assert.Equal(t, []int64{2, 5, 9}, req.UniqueIDs())
	assert.Equal(t, []int64{5, 2, 5, 9, 2}, req.TechnicianIDs)
}

func TestBalanceResponse_FromModel(t *testing.T) {
	var res dto.BalanceResponse

	res.FromModel(3, model.NewBalance(100, 40))

	assert.Equal(t, int64(3), res.ServiceRequestID)
	assert.InDelta(t, 60.0, res.RemainingBalance, 0.0001)
	assert.InDelta(t, 40.0, res.PaidAmount, 0.0001)
}
