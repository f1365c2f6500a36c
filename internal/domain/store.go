package domain

// Store is the entire profile store: one serialized JSON document holding
// every user record, read and written as a whole. Last writer wins, there is
// no finer-grained locking.
type Store struct {
	Users map[string]*User `json:"users"`
}

func NewStore() *Store {
	return &Store{
		Users: make(map[string]*User),
	}
}
