package dto_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fieldservice/internal/domains/payment/model"
	"fieldservice/internal/domains/payment/model/dto"
	"fieldservice/shared/failure"
	"fieldservice/shared/timezone"
)

func TestCreatePaymentRequest_ToModel(t *testing.T) {
	req := dto.CreatePaymentRequest{ServiceRequestID: 3, Amount: 12.346, PaymentDate: "2024-04-01", PaymentMethod: " Cash ", Reference: "R-1"}

	m, err := req.ToModel("cashier")

	require.NoError(t, err)
	assert.Equal(t, model.StatusPending, m.Status)
	assert.Equal(t, "Cash", m.PaymentMethod)
	assert.InDelta(t, 12.35, m.Amount, 0.0001)
	assert.True(t, timezone.Date(2024, time.April, 1).Equal(m.PaymentDate))
}

func TestCreatePaymentRequest_ToModelInvalidDate(t *testing.T) {
	req := dto.CreatePaymentRequest{ServiceRequestID: 3, Amount: 1, PaymentDate: "01-04-2024", PaymentMethod: "Cash"}

	_, err := req.ToModel("cashier")

	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
}

func TestGetPaymentsResponse_FromModels(t *testing.T) {
	var res dto.GetPaymentsResponse

	res.FromModels([]model.Payment{{ID: 1, ServiceDescription: "Boiler repair"}, {ID: 2}}, 5, 2)

	assert.Equal(t, 3, res.TotalPage)
	assert.Equal(t, 5, res.TotalData)
	assert.Equal(t, "Boiler repair", res.Payments[0].ServiceDescription)
}
