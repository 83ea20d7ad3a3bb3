package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"fieldservice/internal/domains/technician/model"
	"fieldservice/internal/domains/technician/model/dto"
	"fieldservice/shared/validator"
)

func TestCreateTechnicianRequest_ToModel(t *testing.T) {
	inactive := false

	tech := (&dto.CreateTechnicianRequest{FirstName: "Marie", LastName: "Curie", PayType: model.PayTypeSalary, Active: &inactive}).ToModel("admin")

	assert.Equal(t, model.PayTypeSalary, tech.PayType)
	assert.False(t, tech.Active)
	assert.Equal(t, model.StatusInactive, tech.StatusValue())
	assert.Equal(t, "Marie Curie", tech.FullName())
}

func TestCreateTechnicianRequest_Validation(t *testing.T) {
	tests := []struct {
		name    string
		req     dto.CreateTechnicianRequest
		wantErr bool
	}{
		{name: "valid", req: dto.CreateTechnicianRequest{FirstName: "Marie", LastName: "Curie", HourlyRate: 30}},
		{name: "negative rate", req: dto.CreateTechnicianRequest{FirstName: "Marie", LastName: "Curie", HourlyRate: -1}, wantErr: true},
		{name: "unknown pay type", req: dto.CreateTechnicianRequest{FirstName: "Marie", LastName: "Curie", PayType: "Daily"}, wantErr: true},
		{name: "bad phone", req: dto.CreateTechnicianRequest{FirstName: "Marie", LastName: "Curie", Phone: "12"}, wantErr: true},
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

func TestFromModels(t *testing.T) {
	res := dto.FromModels([]model.Technician{{ID: 1, Active: true}, {ID: 2}})

	assert.Len(t, res, 2)
	assert.Equal(t, model.StatusActive, res[0].Status)
	assert.Equal(t, model.StatusInactive, res[1].Status)
}
