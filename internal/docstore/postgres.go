package docstore

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Postgres stores documents in a single JSONB table (see migrations).
type Postgres struct {
	pool *pgxpool.Pool
}

// NewPostgres creates a store over an existing pool.
func NewPostgres(pool *pgxpool.Pool) *Postgres {
	return &Postgres{pool: pool}
}

// FetchCollection returns every document of a collection, newest first.
func (s *Postgres) FetchCollection(ctx context.Context, collection string) ([]Document, error) {
	query := `
		SELECT id, data, created_at
		FROM documents
		WHERE collection = $1
		ORDER BY created_at DESC, id
	`

	rows, err := s.pool.Query(ctx, query, collection)
	if err != nil {
		return nil, fmt.Errorf("fetch collection %s: %w", collection, err)
	}
	defer rows.Close()

	var docs []Document
	for rows.Next() {
		doc := Document{Collection: collection}
		var raw []byte
		if err := rows.Scan(&doc.ID, &raw, &doc.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		if err := json.Unmarshal(raw, &doc.Data); err != nil {
			return nil, fmt.Errorf("decode document %s/%s: %w", collection, doc.ID, err)
		}
		docs = append(docs, doc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate collection %s: %w", collection, err)
	}

	return docs, nil
}

// FetchDocument returns one document, or nil when absent.
func (s *Postgres) FetchDocument(ctx context.Context, collection, id string) (*Document, error) {
	query := `
		SELECT data, created_at
		FROM documents
		WHERE collection = $1 AND id = $2
	`

	doc := Document{Collection: collection, ID: id}
	var raw []byte
	err := s.pool.QueryRow(ctx, query, collection, id).Scan(&raw, &doc.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("fetch document %s/%s: %w", collection, id, err)
	}

	if err := json.Unmarshal(raw, &doc.Data); err != nil {
		return nil, fmt.Errorf("decode document %s/%s: %w", collection, id, err)
	}

	return &doc, nil
}

// CreateDocument inserts a new document.
func (s *Postgres) CreateDocument(ctx context.Context, collection, id string, data map[string]interface{}) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("encode document %s/%s: %w", collection, id, err)
	}

	query := `
		INSERT INTO documents (collection, id, data)
		VALUES ($1, $2, $3)
	`

	if _, err := s.pool.Exec(ctx, query, collection, id, raw); err != nil {
		return fmt.Errorf("create document %s/%s: %w", collection, id, err)
	}

	return nil
}

// UpdateDocument applies a dot-path partial update inside a transaction.
// The row is locked for the read-modify-write so concurrent partial
// updates to the same document cannot lose fields.
func (s *Postgres) UpdateDocument(ctx context.Context, collection, id string, fields map[string]interface{}) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin update %s/%s: %w", collection, id, err)
	}
	defer tx.Rollback(ctx)

	var raw []byte
	err = tx.QueryRow(ctx,
		`SELECT data FROM documents WHERE collection = $1 AND id = $2 FOR UPDATE`,
		collection, id,
	).Scan(&raw)
	if err != nil {
		if err == pgx.ErrNoRows {
			return fmt.Errorf("update document %s/%s: %w", collection, id, ErrNotFound)
		}
		return fmt.Errorf("lock document %s/%s: %w", collection, id, err)
	}

	var data map[string]interface{}
	if err := json.Unmarshal(raw, &data); err != nil {
		return fmt.Errorf("decode document %s/%s: %w", collection, id, err)
	}

	ApplyFields(data, fields)

	updated, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("encode document %s/%s: %w", collection, id, err)
	}

	_, err = tx.Exec(ctx,
		`UPDATE documents SET data = $3, updated_at = now() WHERE collection = $1 AND id = $2`,
		collection, id, updated,
	)
	if err != nil {
		return fmt.Errorf("write document %s/%s: %w", collection, id, err)
	}

	return tx.Commit(ctx)
}
