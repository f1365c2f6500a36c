package repository

import (
	"database/sql"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/careercraft-dev/career-pilot/backend/internal/domain"
)

// ReadStore loads the full store document. A missing document or one that
// fails to parse yields an empty store, never an error; only an unreachable
// database is reported.
func (r *Repository) ReadStore() (*domain.Store, error) {
	doc, err := r.getDocument(r.cfg.Store.Key)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.NewStore(), nil
		}
		return nil, err
	}

	store := domain.NewStore()
	if err := json.Unmarshal(doc, store); err != nil {
		slog.Warn("store document is corrupt, starting from an empty store", "key", r.cfg.Store.Key, "error", err)
		return domain.NewStore(), nil
	}
	if store.Users == nil {
		store.Users = make(map[string]*domain.User)
	}

	return store, nil
}

// ExportStore returns the raw serialized store document, exactly as
// persisted. A missing document exports as an empty store.
func (r *Repository) ExportStore() ([]byte, error) {
	doc, err := r.getDocument(r.cfg.Store.Key)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return json.Marshal(domain.NewStore())
		}
		return nil, err
	}

	return doc, nil
}

func (r *Repository) WriteStore(store *domain.Store) error {
	doc, err := json.Marshal(store)
	if err != nil {
		return err
	}

	return r.putDocument(r.cfg.Store.Key, doc)
}
