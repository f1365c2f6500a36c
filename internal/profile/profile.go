// Package profile holds the profile store state transitions as pure
// functions over an in-memory store copy. Callers load the store document,
// apply a transition and persist the whole document back; nothing here
// touches the database or the network, which keeps every rule testable
// without infrastructure.
package profile

import (
	"slices"
	"strings"
	"time"

	"github.com/careercraft-dev/career-pilot/backend/internal/domain"
)

const MinPasswordLength = 6

// HashFunc turns a plaintext password into a digest.
type HashFunc func(password string) (string, error)

// CompareFunc reports an error when password does not match digest.
type CompareFunc func(digest, password string) error

// CanonicalEmail is the store key for an email address. Records are always
// keyed by this form so that sign-in is case-insensitive.
func CanonicalEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Signup creates a fresh record: progress 0, no saved roles, one initial
// history entry. The returned string is the canonical email the record is
// keyed by.
func Signup(store *domain.Store, name, email, password string, hash HashFunc, now time.Time) (string, *domain.User, error) {
	name = strings.TrimSpace(name)
	email = CanonicalEmail(email)

	if name == "" || email == "" || len(password) < MinPasswordLength {
		return "", nil, domain.ErrInvalidInput
	}
	if _, exists := store.Users[email]; exists {
		return "", nil, domain.ErrDuplicateUser
	}

	digest, err := hash(password)
	if err != nil {
		return "", nil, err
	}

	progress := 0
	user := &domain.User{
		Name:         name,
		PasswordHash: digest,
		Progress:     0,
		SavedRoles:   []string{},
		History: []domain.HistoryEntry{
			{Timestamp: now.Unix(), Progress: &progress},
		},
	}
	store.Users[email] = user

	return email, user, nil
}

// Login checks the credential against the stored digest.
func Login(store *domain.Store, email, password string, compare CompareFunc) (string, *domain.User, error) {
	email = CanonicalEmail(email)

	user, exists := store.Users[email]
	if !exists {
		return "", nil, domain.ErrUserNotFound
	}
	if err := compare(user.PasswordHash, password); err != nil {
		return "", nil, domain.ErrWrongCredential
	}

	return email, user, nil
}

// SaveRole inserts roleID at the front of the saved sequence. Saving an
// already-saved role is a no-op: the sequence length and the id's position
// stay unchanged, and no history entry is appended.
func SaveRole(store *domain.Store, email, roleID string, now time.Time) (*domain.User, error) {
	user, exists := store.Users[email]
	if !exists {
		return nil, domain.ErrUserNotFound
	}

	if slices.Contains(user.SavedRoles, roleID) {
		return user, nil
	}

	user.SavedRoles = append([]string{roleID}, user.SavedRoles...)
	user.History = append(user.History, domain.HistoryEntry{
		Timestamp: now.Unix(),
		Action:    "saved:" + roleID,
	})

	return user, nil
}

// RemoveRole removes roleID from the saved sequence if present; removing an
// absent id is a no-op.
func RemoveRole(store *domain.Store, email, roleID string) (*domain.User, error) {
	user, exists := store.Users[email]
	if !exists {
		return nil, domain.ErrUserNotFound
	}

	for i, id := range user.SavedRoles {
		if id == roleID {
			user.SavedRoles = append(user.SavedRoles[:i], user.SavedRoles[i+1:]...)
			break
		}
	}

	return user, nil
}

// AdjustProgress shifts progress by delta, clamped to [0,100], and appends a
// history entry carrying the new value.
func AdjustProgress(store *domain.Store, email string, delta int, now time.Time) (int, error) {
	user, exists := store.Users[email]
	if !exists {
		return 0, domain.ErrUserNotFound
	}

	next := user.Progress + delta
	if next < 0 {
		next = 0
	}
	if next > 100 {
		next = 100
	}

	user.Progress = next
	snapshot := next
	user.History = append(user.History, domain.HistoryEntry{
		Timestamp: now.Unix(),
		Progress:  &snapshot,
	})

	return next, nil
}
