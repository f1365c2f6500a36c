package repository

import (
	"database/sql"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/careercraft-dev/career-pilot/backend/internal/domain"
)

// ReadCatalog loads the role catalog, seeding it with the default role set
// on first access. A corrupt document is reseeded the same way.
func (r *Repository) ReadCatalog() (*domain.Catalog, error) {
	doc, err := r.getDocument(r.cfg.Store.CatalogKey)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return r.seedCatalog()
		}
		return nil, err
	}

	catalog := &domain.Catalog{}
	if err := json.Unmarshal(doc, catalog); err != nil {
		slog.Warn("catalog document is corrupt, reseeding defaults", "key", r.cfg.Store.CatalogKey, "error", err)
		return r.seedCatalog()
	}
	if len(catalog.Roles) == 0 {
		return r.seedCatalog()
	}

	return catalog, nil
}

func (r *Repository) WriteCatalog(catalog *domain.Catalog) error {
	doc, err := json.Marshal(catalog)
	if err != nil {
		return err
	}

	return r.putDocument(r.cfg.Store.CatalogKey, doc)
}

func (r *Repository) seedCatalog() (*domain.Catalog, error) {
	catalog := &domain.Catalog{Roles: domain.DefaultRoles}
	if err := r.WriteCatalog(catalog); err != nil {
		return nil, err
	}

	return catalog, nil
}
