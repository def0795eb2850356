package role

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	r, err := Parse("ADMIN")
	require.NoError(t, err)
	assert.Equal(t, "ADMIN", r.String())
	assert.Equal(t, 2, r.Tier())

	_, err = Parse("JANITOR")
	assert.Error(t, err)
}

func TestParseMany(t *testing.T) {
	rls, err := ParseMany([]string{"MANAGER", "STAFF"})
	require.NoError(t, err)
	require.Len(t, rls, 2)
	assert.True(t, rls[0].Equal(Manager))
	assert.True(t, rls[1].Equal(Staff))

	_, err = ParseMany([]string{"MANAGER", "bogus"})
	assert.Error(t, err)

	assert.Equal(t, []string{"MANAGER", "STAFF"}, ParseToString(rls))
}

func TestPrimary(t *testing.T) {
	tests := []struct {
		name  string
		roles []Role
		want  Role
	}{
		{"single", []Role{Tenant}, Tenant},
		{"admin wins over staff", []Role{Staff, Admin}, Admin},
		{"super admin wins over everything", []Role{User, Tenant, SuperAdmin, Manager}, SuperAdmin},
		{"order does not matter", []Role{Manager, Staff}, Manager},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Primary(tt.roles)
			require.True(t, ok)
			assert.True(t, got.Equal(tt.want), "got %s want %s", got, tt.want)
		})
	}

	_, ok := Primary(nil)
	assert.False(t, ok)
}

func TestPrimaryDoesNotMutateInput(t *testing.T) {
	rls := []Role{User, SuperAdmin}

	_, ok := Primary(rls)
	require.True(t, ok)

	assert.True(t, rls[0].Equal(User))
	assert.True(t, rls[1].Equal(SuperAdmin))
}

func TestContains(t *testing.T) {
	rls := []Role{Admin, Tenant}

	assert.True(t, Contains(rls, Tenant))
	assert.False(t, Contains(rls, SuperAdmin))
	assert.False(t, Contains(nil, Admin))
}
