package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrarunkumar300-ops/dharmahome/business/types/role"
)

func TestAuthorizeZeroRoleUser(t *testing.T) {
	a := New(Config{})
	claims := Claims{Roles: nil}

	allRoles := []role.Role{
		role.SuperAdmin,
		role.Admin,
		role.Manager,
		role.Staff,
		role.Tenant,
		role.User,
	}

	for _, r := range allRoles {
		err := a.Authorize(context.Background(), claims, r)
		assert.ErrorIs(t, err, ErrForbidden, "role %s", r)
	}
}

func TestAuthorizeEmptyAllowList(t *testing.T) {
	a := New(Config{})
	claims := Claims{Roles: []string{role.SuperAdmin.String()}}

	err := a.Authorize(context.Background(), claims)
	require.ErrorIs(t, err, ErrForbidden)
}

func TestAuthorizeRoleMatch(t *testing.T) {
	a := New(Config{})
	claims := Claims{Roles: []string{role.Admin.String()}}

	err := a.Authorize(context.Background(), claims, role.SuperAdmin, role.Admin)
	require.NoError(t, err)

	err = a.Authorize(context.Background(), claims, role.SuperAdmin)
	assert.ErrorIs(t, err, ErrForbidden)
}
