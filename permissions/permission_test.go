package permissions_test

import (
	"fieldservice/permissions"
	"fieldservice/shared/constant"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGet(t *testing.T) {
	data := permissions.Get()

	if assert.NotNil(t, data) {
		assert.False(t, data.Skip)
		assert.NotEmpty(t, data.Endpoints)
	}
}

func TestFindPermissions(t *testing.T) {
	data := permissions.Get()

	tests := []struct {
		name      string
		path      string
		method    string
		wantSkip  bool
		wantRoles []string
	}{
		{name: "login is public", path: "/v1/auth/login", method: http.MethodPost, wantSkip: true},
		{name: "refresh is public", path: "/v1/auth/refresh-token", method: http.MethodPost, wantSkip: true},
		{name: "subrouter root", path: "/v1/users/", method: http.MethodGet, wantRoles: []string{constant.RoleAdmin}},
		{name: "user by id", path: "/v1/users/{id}", method: http.MethodDelete, wantRoles: []string{constant.RoleAdmin}},
		{name: "lowercase method", path: "/v1/users", method: "post", wantRoles: []string{constant.RoleAdmin}},
		{name: "unlisted route", path: "/v1/customers/", method: http.MethodGet},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			permission := data.FindPermissions(tt.path, tt.method)

			assert.Equal(t, tt.wantSkip, permission.Skip)
			assert.Equal(t, tt.wantRoles, permission.Permissions)
		})
	}
}
