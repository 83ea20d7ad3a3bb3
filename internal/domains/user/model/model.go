package model

import (
	"fieldservice/shared/constant"
	"fieldservice/shared/model"
	"fieldservice/shared/timezone"
	"time"
)

const (
	TableName  = "users"
	EntityName = "user"

	FieldID       = "id"
	FieldUsername = "username"
	FieldPassword = "password"
	FieldIsAdmin  = "is_admin"
)

type User struct {
	ID       int64  `db:"id"       readonly:"true"`
	Username string `db:"username"`
	Password string `db:"password"`
	IsAdmin  bool   `db:"is_admin"`
	model.Metadata
}

func (u User) Role() string {
	if u.IsAdmin {
		return constant.RoleAdmin
	}

	return constant.RoleUser
}

func (u User) SearchFields() []string {
	return []string{u.Username}
}

func (u User) StatusValue() string {
	return u.Role()
}

func (u User) DateValue() time.Time {
	return timezone.StartOfDay(u.CreatedAt)
}
