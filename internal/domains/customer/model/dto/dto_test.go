package dto_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"

	"fieldservice/internal/domains/customer/model"
	"fieldservice/internal/domains/customer/model/dto"
	"fieldservice/shared/validator"
)

func TestNewCustomerNumber(t *testing.T) {
	pattern := regexp.MustCompile(`^CUS-[0-9A-F]{8}$`)

	first := dto.NewCustomerNumber()
	second := dto.NewCustomerNumber()

	assert.Regexp(t, pattern, first)
	assert.NotEqual(t, first, second)
}

func TestCreateCustomerRequest_Validation(t *testing.T) {
	tests := []struct {
		name    string
		req     dto.CreateCustomerRequest
		wantErr bool
	}{
		{name: "valid", req: dto.CreateCustomerRequest{FirstName: "Ada", LastName: "Lovelace", ZipCode: "12345", Phone: "+1 (555) 123-4567"}},
		{name: "missing last name", req: dto.CreateCustomerRequest{FirstName: "Ada"}, wantErr: true},
		{name: "bad zip", req: dto.CreateCustomerRequest{FirstName: "Ada", LastName: "Lovelace", ZipCode: "1234"}, wantErr: true},
		{name: "bad email", req: dto.CreateCustomerRequest{FirstName: "Ada", LastName: "Lovelace", Email: "ada@"}, wantErr: true},
		{name: "bad logo", req: dto.CreateCustomerRequest{FirstName: "Ada", LastName: "Lovelace", Logo: "data:text/plain;base64,aGk="}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(&tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCreateCustomerRequest_ToModel(t *testing.T) {
	req := dto.CreateCustomerRequest{FirstName: " Ada ", LastName: "Lovelace", City: "London"}

	customer := req.ToModel("dispatcher", "https://cdn.example.com/logo.png")

	assert.Equal(t, "Ada", customer.FirstName)
	assert.Equal(t, "Ada Lovelace", customer.FullName())
	assert.Equal(t, "https://cdn.example.com/logo.png", customer.LogoURL)
	assert.Equal(t, "dispatcher", customer.ModifiedBy)
}

func TestUpdateCustomerRequest_IsEmpty(t *testing.T) {
	city := "Paris"

	assert.True(t, dto.UpdateCustomerRequest{}.IsEmpty())
	assert.False(t, dto.UpdateCustomerRequest{City: &city}.IsEmpty())
}

func TestGetCustomersResponse_FromModels(t *testing.T) {
	var res dto.GetCustomersResponse
	res.FromModels([]model.Customer{{ID: 1, FirstName: "Ada", LastName: "Lovelace"}}, 1, 10)

	assert.Equal(t, 1, res.TotalPage)
	assert.Equal(t, "Ada Lovelace", res.Customers[0].FullName)
}
