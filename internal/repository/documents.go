package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/careercraft-dev/career-pilot/backend/internal/domain"
)

// The whole persistence model is a handful of JSON documents in a single
// two-column table, each read and written as a whole. There is deliberately
// no row-level model: the store contract is whole-document read/modify/write
// with last-writer-wins.

func (r *Repository) EnsureSchema() error {
	query := `
		CREATE TABLE IF NOT EXISTS documents (
			key TEXT PRIMARY KEY,
			doc JSONB NOT NULL
		)
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	if _, err := r.dbpool.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
	}

	return nil
}

func (r *Repository) getDocument(key string) ([]byte, error) {
	query := `
		SELECT doc FROM documents WHERE key = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	var doc []byte
	if err := r.dbpool.QueryRowContext(ctx, query, key).Scan(&doc); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
	}

	return doc, nil
}

func (r *Repository) putDocument(key string, doc []byte) error {
	query := `
		INSERT INTO documents (key, doc)
		VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET doc = EXCLUDED.doc
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	if _, err := r.dbpool.ExecContext(ctx, query, key, doc); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
	}

	return nil
}
