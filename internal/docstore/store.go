// Package docstore provides the document-store capability the dashboard
// talks to: named collections of JSON documents with partial, dot-path
// updates (updating one key inside a nested map without rewriting the
// whole document).
package docstore

import (
	"context"
	"errors"
	"strings"
	"time"
)

// Document is one stored record.
type Document struct {
	Collection string
	ID         string
	Data       map[string]interface{}
	CreatedAt  time.Time
}

// Store is the capability interface consumed by the repositories.
type Store interface {
	// FetchCollection returns every document of a collection, newest first.
	FetchCollection(ctx context.Context, collection string) ([]Document, error)

	// FetchDocument returns one document, or nil when absent.
	FetchDocument(ctx context.Context, collection, id string) (*Document, error)

	// CreateDocument inserts a new document.
	CreateDocument(ctx context.Context, collection, id string, data map[string]interface{}) error

	// UpdateDocument applies a partial update. Field keys may be dot paths
	// ("hireRequests.hr-123.hourlyRate"); intermediate maps are created as
	// needed. The document must exist.
	UpdateDocument(ctx context.Context, collection, id string, fields map[string]interface{}) error
}

// ErrNotFound is returned by updates targeting an absent document.
var ErrNotFound = errors.New("document not found")

// IsNotFound checks whether an error means "document does not exist".
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// ApplyFields sets every field onto data, interpreting dotted keys as
// nested paths. A non-map value in the middle of a path is replaced by a
// map, matching overwrite semantics of the remote store.
func ApplyFields(data map[string]interface{}, fields map[string]interface{}) {
	for key, value := range fields {
		parts := strings.Split(key, ".")
		node := data
		for _, part := range parts[:len(parts)-1] {
			child, ok := node[part].(map[string]interface{})
			if !ok {
				child = make(map[string]interface{})
				node[part] = child
			}
			node = child
		}
		node[parts[len(parts)-1]] = value
	}
}
