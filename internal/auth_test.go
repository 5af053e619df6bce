package internal

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCredentialsManagers(t *testing.T) {
	creds := DefaultCredentials()

	role, ok := creds.Authenticate("manager_team5", "Cham@Team5")
	require.True(t, ok)
	assert.Equal(t, RoleManager, role.Kind)
	assert.Equal(t, 5, role.Team)
	assert.Equal(t, "manager_team5", role.Username)

	_, ok = creds.Authenticate("manager_team5", "Cham@Team6")
	assert.False(t, ok, "exact match required")

	_, ok = creds.Authenticate("Manager_Team5", "Cham@Team5")
	assert.False(t, ok, "no normalization")
}

func TestDefaultCredentialsAdmins(t *testing.T) {
	creds := DefaultCredentials()

	role, ok := creds.Authenticate("admin2", "Chamba@Admin2")
	require.True(t, ok)
	assert.Equal(t, RoleAdmin, role.Kind)
	assert.Equal(t, 0, role.Team)

	_, ok = creds.Authenticate("admin2", "wrong")
	assert.False(t, ok)
}

func TestAuthenticateChecksAdminListFirst(t *testing.T) {
	creds := &StaticCredentials{
		admins:   []credential{{"shared", "pw"}},
		managers: []credential{{"shared", "pw"}},
	}
	role, ok := creds.Authenticate("shared", "pw")
	require.True(t, ok)
	assert.Equal(t, RoleAdmin, role.Kind)
}

func TestDefaultCredentialsCoverAllTeams(t *testing.T) {
	creds := DefaultCredentials()
	for i := 1; i <= TeamCount; i++ {
		n := strconv.Itoa(i)
		role, ok := creds.Authenticate("manager_team"+n, "Cham@Team"+n)
		require.True(t, ok, "team %d", i)
		assert.Equal(t, i, role.Team)
	}
}
