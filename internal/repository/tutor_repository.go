package repository

import (
	"context"
	"fmt"

	"github.com/Freeeeeet/tutorhub_bot/internal/docstore"
	"github.com/Freeeeeet/tutorhub_bot/internal/model"
)

type TutorRepository struct {
	store docstore.Store
}

func NewTutorRepository(store docstore.Store) *TutorRepository {
	return &TutorRepository{store: store}
}

// List returns every tutor profile, newest first.
func (r *TutorRepository) List(ctx context.Context) ([]*model.Tutor, error) {
	docs, err := r.store.FetchCollection(ctx, CollectionTutors)
	if err != nil {
		return nil, fmt.Errorf("list tutors: %w", err)
	}

	tutors := make([]*model.Tutor, 0, len(docs))
	for i := range docs {
		var tutor model.Tutor
		if err := decodeDocument(&docs[i], &tutor); err != nil {
			return nil, err
		}
		if tutor.ID == "" {
			tutor.ID = docs[i].ID
		}
		tutors = append(tutors, &tutor)
	}

	return tutors, nil
}

// GetByID returns one tutor, or nil when absent.
func (r *TutorRepository) GetByID(ctx context.Context, id string) (*model.Tutor, error) {
	doc, err := r.store.FetchDocument(ctx, CollectionTutors, id)
	if err != nil {
		return nil, fmt.Errorf("get tutor %s: %w", id, err)
	}
	if doc == nil {
		return nil, nil
	}

	var tutor model.Tutor
	if err := decodeDocument(doc, &tutor); err != nil {
		return nil, err
	}
	if tutor.ID == "" {
		tutor.ID = doc.ID
	}
	return &tutor, nil
}
