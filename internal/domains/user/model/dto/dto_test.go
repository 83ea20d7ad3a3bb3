package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"fieldservice/internal/domains/user/model"
	"fieldservice/internal/domains/user/model/dto"
	"fieldservice/shared/constant"
)

func TestCreateUserRequest_ToModel(t *testing.T) {
	req := dto.CreateUserRequest{Username: "dispatcher", Password: "plain", IsAdmin: true}

	user := req.ToModel("admin", "hash")

	assert.Equal(t, "dispatcher", user.Username)
	assert.Equal(t, "hash", user.Password)
	assert.True(t, user.IsAdmin)
	assert.Equal(t, "admin", user.CreatedBy)
	assert.Equal(t, user.CreatedAt, user.ModifiedAt)
}

func TestUpdateUserRequest_IsEmpty(t *testing.T) {
	admin := false

	assert.True(t, dto.UpdateUserRequest{}.IsEmpty())
	assert.False(t, dto.UpdateUserRequest{IsAdmin: &admin}.IsEmpty())
	assert.False(t, dto.UpdateUserRequest{Password: "new-password"}.IsEmpty())
}

func TestGetUsersResponse_FromModels(t *testing.T) {
	users := []model.User{
		{ID: 1, Username: "admin", IsAdmin: true},
		{ID: 2, Username: "dispatcher"},
	}

	var res dto.GetUsersResponse
	res.FromModels(users, 11, 10)

	assert.Equal(t, 11, res.TotalData)
	assert.Equal(t, 2, res.TotalPage)
	assert.Len(t, res.Users, 2)
	assert.Equal(t, constant.RoleAdmin, res.Users[0].Role)
	assert.Equal(t, constant.RoleUser, res.Users[1].Role)
}
