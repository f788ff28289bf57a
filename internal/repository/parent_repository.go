package repository

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/Freeeeeet/tutorhub_bot/internal/docstore"
	"github.com/Freeeeeet/tutorhub_bot/internal/model"
)

// ParentRepository stores parent documents. Hire requests are embedded
// under the parent document in a "hireRequests" map keyed by request id,
// so writes target them with dot paths.
type ParentRepository struct {
	store docstore.Store
}

func NewParentRepository(store docstore.Store) *ParentRepository {
	return &ParentRepository{store: store}
}

func parentDocID(telegramID int64) string {
	return strconv.FormatInt(telegramID, 10)
}

// GetByTelegramID returns the parent, or nil when not registered yet.
func (r *ParentRepository) GetByTelegramID(ctx context.Context, telegramID int64) (*model.Parent, error) {
	doc, err := r.store.FetchDocument(ctx, CollectionParents, parentDocID(telegramID))
	if err != nil {
		return nil, fmt.Errorf("get parent %d: %w", telegramID, err)
	}
	if doc == nil {
		return nil, nil
	}

	var parent model.Parent
	if err := decodeDocument(doc, &parent); err != nil {
		return nil, err
	}
	if parent.ID == "" {
		parent.ID = doc.ID
	}
	return &parent, nil
}

// Create registers a new parent document.
func (r *ParentRepository) Create(ctx context.Context, parent *model.Parent) error {
	parent.ID = parentDocID(parent.TelegramID)
	parent.CreatedAt = time.Now().UTC()

	data, err := encodeFields(parent)
	if err != nil {
		return fmt.Errorf("create parent %s: %w", parent.ID, err)
	}
	data["hireRequests"] = map[string]interface{}{}

	if err := r.store.CreateDocument(ctx, CollectionParents, parent.ID, data); err != nil {
		return fmt.Errorf("create parent %s: %w", parent.ID, err)
	}
	return nil
}

// AddHireRequest persists a submitted hire request under the parent
// document in a single partial write.
func (r *ParentRepository) AddHireRequest(ctx context.Context, parentID string, req *model.HireRequest) error {
	data, err := encodeFields(req)
	if err != nil {
		return fmt.Errorf("add hire request %s: %w", req.ID, err)
	}

	err = r.store.UpdateDocument(ctx, CollectionParents, parentID, map[string]interface{}{
		"hireRequests." + req.ID: data,
	})
	if err != nil {
		return fmt.Errorf("add hire request %s: %w", req.ID, err)
	}
	return nil
}

// ListHireRequests returns the parent's embedded hire requests, newest
// first.
func (r *ParentRepository) ListHireRequests(ctx context.Context, parentID string) ([]*model.HireRequest, error) {
	doc, err := r.store.FetchDocument(ctx, CollectionParents, parentID)
	if err != nil {
		return nil, fmt.Errorf("list hire requests for %s: %w", parentID, err)
	}
	if doc == nil {
		return nil, docstore.ErrNotFound
	}

	embedded, _ := doc.Data["hireRequests"].(map[string]interface{})
	requests := make([]*model.HireRequest, 0, len(embedded))
	for id, raw := range embedded {
		sub := docstore.Document{
			Collection: CollectionParents,
			ID:         parentID + "/" + id,
		}
		sub.Data, _ = raw.(map[string]interface{})
		if sub.Data == nil {
			continue
		}

		var req model.HireRequest
		if err := decodeDocument(&sub, &req); err != nil {
			return nil, err
		}
		if req.ID == "" {
			req.ID = id
		}
		requests = append(requests, &req)
	}

	sort.SliceStable(requests, func(a, b int) bool {
		return requests[a].CreatedAt.After(requests[b].CreatedAt)
	})

	return requests, nil
}

// UpdateHireRequestFields applies an edit-dialog payload to one embedded
// hire request via dot paths.
func (r *ParentRepository) UpdateHireRequestFields(ctx context.Context, parentID, requestID string, fields map[string]interface{}) error {
	prefixed := make(map[string]interface{}, len(fields))
	for key, value := range fields {
		prefixed["hireRequests."+requestID+"."+key] = value
	}

	if err := r.store.UpdateDocument(ctx, CollectionParents, parentID, prefixed); err != nil {
		return fmt.Errorf("update hire request %s/%s: %w", parentID, requestID, err)
	}
	return nil
}
