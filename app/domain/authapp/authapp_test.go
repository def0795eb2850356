package authapp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrarunkumar300-ops/dharmahome/business/types/role"
)

func TestLandingPaths(t *testing.T) {
	tests := []struct {
		roles []string
		want  string
	}{
		{[]string{"SUPER_ADMIN"}, "/super-admin"},
		{[]string{"ADMIN"}, "/admin"},
		{[]string{"MANAGER"}, "/manager"},
		{[]string{"STAFF"}, "/staff"},
		{[]string{"TENANT"}, "/tenant"},
		{[]string{"USER"}, "/dashboard"},
		{[]string{"STAFF", "ADMIN"}, "/admin"},
		{[]string{"TENANT", "USER"}, "/tenant"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			rls, err := role.ParseMany(tt.roles)
			require.NoError(t, err)

			primary, ok := role.Primary(rls)
			require.True(t, ok)

			path, exists := landingPaths[primary.String()]
			if !exists {
				path = defaultLanding
			}

			assert.Equal(t, tt.want, path)
		})
	}
}

func TestLandingDefault(t *testing.T) {
	_, exists := landingPaths[role.User.String()]
	assert.False(t, exists, "USER role should fall back to the default landing")
	assert.Equal(t, "/dashboard", defaultLanding)
}
