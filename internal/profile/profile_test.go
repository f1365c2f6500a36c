package profile

import (
	"errors"
	"testing"
	"time"

	"github.com/careercraft-dev/career-pilot/backend/internal/domain"
	"github.com/stretchr/testify/require"
)

// plainHash stands in for bcrypt so the tests stay deterministic and fast.
func plainHash(password string) (string, error) {
	return "digest:" + password, nil
}

func plainCompare(digest, password string) error {
	if digest != "digest:"+password {
		return errors.New("mismatch")
	}
	return nil
}

var now = time.Unix(1700000000, 0)

func TestSignupCreatesFreshRecord(t *testing.T) {
	store := domain.NewStore()

	email, user, err := Signup(store, "Ann", "Ann@X.com", "secret1", plainHash, now)
	require.NoError(t, err)
	require.Equal(t, "ann@x.com", email)
	require.Equal(t, 0, user.Progress)
	require.Empty(t, user.SavedRoles)
	require.Len(t, user.History, 1)
	require.NotNil(t, user.History[0].Progress)
	require.Equal(t, 0, *user.History[0].Progress)
	require.Same(t, user, store.Users["ann@x.com"])
}

func TestSignupRejectsInvalidInput(t *testing.T) {
	cases := []struct {
		name     string
		fullName string
		email    string
		password string
	}{
		{"empty name", "", "ann@x.com", "secret1"},
		{"empty email", "Ann", "", "secret1"},
		{"empty password", "Ann", "ann@x.com", ""},
		{"short password", "Ann", "ann@x.com", "12345"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := domain.NewStore()
			_, _, err := Signup(store, tc.fullName, tc.email, tc.password, plainHash, now)
			require.ErrorIs(t, err, domain.ErrInvalidInput)
			require.Empty(t, store.Users)
		})
	}
}

func TestSignupRejectsDuplicateEmail(t *testing.T) {
	store := domain.NewStore()

	_, _, err := Signup(store, "Ann", "ann@x.com", "secret1", plainHash, now)
	require.NoError(t, err)

	_, _, err = Signup(store, "Other Ann", "ANN@x.com", "secret2", plainHash, now)
	require.ErrorIs(t, err, domain.ErrDuplicateUser)
	require.Len(t, store.Users, 1)
}

func TestLoginScenario(t *testing.T) {
	store := domain.NewStore()

	_, _, err := Signup(store, "Ann", "ann@x.com", "secret1", plainHash, now)
	require.NoError(t, err)

	email, user, err := Login(store, "ann@x.com", "secret1", plainCompare)
	require.NoError(t, err)
	require.Equal(t, "ann@x.com", email)
	require.Equal(t, "Ann", user.Name)

	_, _, err = Login(store, "ann@x.com", "wrongpass", plainCompare)
	require.ErrorIs(t, err, domain.ErrWrongCredential)

	_, _, err = Login(store, "bob@x.com", "secret1", plainCompare)
	require.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestSaveRoleInsertsAtFront(t *testing.T) {
	store := domain.NewStore()
	email, _, err := Signup(store, "Ann", "ann@x.com", "secret1", plainHash, now)
	require.NoError(t, err)

	_, err = SaveRole(store, email, "r1", now)
	require.NoError(t, err)
	user, err := SaveRole(store, email, "r2", now)
	require.NoError(t, err)

	require.Equal(t, []string{"r2", "r1"}, user.SavedRoles)
}

func TestSaveRoleIsIdempotent(t *testing.T) {
	store := domain.NewStore()
	email, _, err := Signup(store, "Ann", "ann@x.com", "secret1", plainHash, now)
	require.NoError(t, err)

	_, err = SaveRole(store, email, "r2", now)
	require.NoError(t, err)
	user, err := SaveRole(store, email, "r1", now)
	require.NoError(t, err)
	historyLen := len(user.History)

	user, err = SaveRole(store, email, "r1", now)
	require.NoError(t, err)
	require.Equal(t, []string{"r1", "r2"}, user.SavedRoles)
	require.Len(t, user.History, historyLen, "a repeated save must not append history")
}

func TestRemoveRoleTwiceIsNoOp(t *testing.T) {
	store := domain.NewStore()
	email, _, err := Signup(store, "Ann", "ann@x.com", "secret1", plainHash, now)
	require.NoError(t, err)

	_, err = SaveRole(store, email, "r1", now)
	require.NoError(t, err)

	user, err := RemoveRole(store, email, "r1")
	require.NoError(t, err)
	require.Empty(t, user.SavedRoles)

	user, err = RemoveRole(store, email, "r1")
	require.NoError(t, err)
	require.Empty(t, user.SavedRoles)
}

func TestAdjustProgressClampsToRange(t *testing.T) {
	store := domain.NewStore()
	email, user, err := Signup(store, "Ann", "ann@x.com", "secret1", plainHash, now)
	require.NoError(t, err)

	user.Progress = 95
	progress, err := AdjustProgress(store, email, 100, now)
	require.NoError(t, err)
	require.Equal(t, 100, progress)

	user.Progress = 5
	progress, err = AdjustProgress(store, email, -100, now)
	require.NoError(t, err)
	require.Equal(t, 0, progress)

	// Every adjustment appends a history entry with the new value
	last := user.History[len(user.History)-1]
	require.NotNil(t, last.Progress)
	require.Equal(t, 0, *last.Progress)
}

func TestMutationsRequireExistingRecord(t *testing.T) {
	store := domain.NewStore()

	_, err := SaveRole(store, "ghost@x.com", "r1", now)
	require.ErrorIs(t, err, domain.ErrUserNotFound)

	_, err = RemoveRole(store, "ghost@x.com", "r1")
	require.ErrorIs(t, err, domain.ErrUserNotFound)

	_, err = AdjustProgress(store, "ghost@x.com", 10, now)
	require.ErrorIs(t, err, domain.ErrUserNotFound)
}
