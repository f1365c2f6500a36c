package domain

// HistoryEntry records either a progress snapshot or a saved-role action.
// Exactly one of Progress and Action is set.
type HistoryEntry struct {
	Timestamp int64  `json:"t"`
	Progress  *int   `json:"progress,omitempty"`
	Action    string `json:"action,omitempty"`
}

// User is a single profile record. Records are keyed by lowercased email in
// the store document, so the email is not repeated inside the record itself.
// PasswordHash has to survive export/import round trips, which is why it is
// not excluded from serialization; client-facing responses go through
// Profile instead.
type User struct {
	Name         string         `json:"name"`
	PasswordHash string         `json:"passwordHash"`
	Progress     int            `json:"progress"`
	SavedRoles   []string       `json:"savedRoles"`
	History      []HistoryEntry `json:"history"`
}

// Profile is the view of a user record that is safe to return to clients.
type Profile struct {
	Email      string         `json:"email"`
	Name       string         `json:"name"`
	Progress   int            `json:"progress"`
	SavedRoles []string       `json:"savedRoles"`
	History    []HistoryEntry `json:"history"`
}

func (u *User) Profile(email string) *Profile {
	return &Profile{
		Email:      email,
		Name:       u.Name,
		Progress:   u.Progress,
		SavedRoles: u.SavedRoles,
		History:    u.History,
	}
}
