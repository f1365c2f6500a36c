package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStoreRoundTrip(t *testing.T) {
	progress := 46
	store := NewStore()
	store.Users["demo@careercraft.test"] = &User{
		Name:         "Demo User",
		PasswordHash: "$2a$10$abcdefghijklmnopqrstuv",
		Progress:     46,
		SavedRoles:   []string{"r1", "r3"},
		History: []HistoryEntry{
			{Timestamp: 1700000000, Progress: &progress},
			{Timestamp: 1700000100, Action: "saved:r1"},
		},
	}
	store.Users["ann@x.com"] = &User{
		Name:       "Ann",
		Progress:   0,
		SavedRoles: []string{},
		History:    []HistoryEntry{},
	}

	exported, err := json.Marshal(store)
	require.NoError(t, err)

	imported := NewStore()
	require.NoError(t, json.Unmarshal(exported, imported))
	require.Equal(t, store, imported)

	// Exporting the imported store again yields the same document
	reexported, err := json.Marshal(imported)
	require.NoError(t, err)
	require.Equal(t, exported, reexported)
}

func TestStoreParseFailure(t *testing.T) {
	store := NewStore()
	require.Error(t, json.Unmarshal([]byte("not json at all"), store))
}

func TestUserProfileHidesPasswordHash(t *testing.T) {
	user := &User{
		Name:         "Ann",
		PasswordHash: "digest",
		Progress:     10,
		SavedRoles:   []string{"r2"},
	}

	out, err := json.Marshal(user.Profile("ann@x.com"))
	require.NoError(t, err)
	require.NotContains(t, string(out), "digest")
	require.Contains(t, string(out), `"email":"ann@x.com"`)
}
