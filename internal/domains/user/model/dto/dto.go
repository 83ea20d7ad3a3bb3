package dto

import (
	"fieldservice/internal/domains/user/model"
	"fieldservice/shared"
	gDto "fieldservice/shared/dto"
	gModel "fieldservice/shared/model"
	"fieldservice/shared/timezone"
)

type CreateUserRequest struct {
	Username string `json:"username" validate:"required,min=3,max=100,alphanum"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	IsAdmin  bool   `json:"is_admin"`
}

func (c *CreateUserRequest) ToModel(user, hashedPassword string) model.User {
	return model.User{
		Username: c.Username,
		Password: hashedPassword,
		IsAdmin:  c.IsAdmin,
		Metadata: gModel.NewMetadata(user, timezone.Now()),
	}
}

// UpdateUserRequest changes the admin flag and, when given, resets the password.
type UpdateUserRequest struct {
	IsAdmin  *bool  `db:"is_admin" json:"is_admin" validate:"omitempty"`
	Password string `db:"-"        json:"password" validate:"omitempty,min=8,max=72"`
}

func (u UpdateUserRequest) IsEmpty() bool {
	return u.IsAdmin == nil && u.Password == ""
}

type UserResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	IsAdmin  bool   `json:"is_admin"`
	Role     string `json:"role"`
	gDto.Metadata
}

func (r *UserResponse) FromModel(model model.User) {
	r.ID = model.ID
	r.Username = model.Username
	r.IsAdmin = model.IsAdmin
	r.Role = model.Role()
	r.Metadata.FromModel(model.Metadata)
}

type GetUsersResponse struct {
	Users     []UserResponse `json:"users"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetUsersResponse) FromModels(models []model.User, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Users = make([]UserResponse, len(models))
	for i, m := range models {
		r.Users[i].FromModel(m)
	}
}
