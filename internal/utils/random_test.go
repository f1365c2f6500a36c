package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateRandomPassword(t *testing.T) {
	password := GenerateRandomPassword(12)
	require.Len(t, password, 12)

	for _, r := range password {
		require.Contains(t, string(letters), string(r))
	}

	require.Empty(t, GenerateRandomPassword(0))
}

func TestGenerateRandomSavedRolesIsASubset(t *testing.T) {
	valid := map[string]bool{"r1": true, "r2": true, "r3": true}

	for i := 0; i < 50; i++ {
		ids := GenerateRandomSavedRoles()
		require.LessOrEqual(t, len(ids), len(valid))

		seen := map[string]bool{}
		for _, id := range ids {
			require.True(t, valid[id])
			require.False(t, seen[id])
			seen[id] = true
		}
	}
}

func TestGenerateRandomUserShape(t *testing.T) {
	email, user, err := GenerateRandomUser("fixture-pass", "example.com")
	require.NoError(t, err)
	require.True(t, strings.HasSuffix(email, "@example.com"))
	require.NotEmpty(t, user.Name)
	require.NotEmpty(t, user.PasswordHash)
	require.NotEqual(t, "fixture-pass", user.PasswordHash)

	require.NotEmpty(t, user.History)
	last := user.History[len(user.History)-1]
	require.NotNil(t, last.Progress)
	require.Equal(t, user.Progress, *last.Progress)
}
