package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/Freeeeeet/tutorhub_bot/internal/history"
	"github.com/Freeeeeet/tutorhub_bot/internal/repository"
)

// HistoryService fetches and edits the merged job-history list.
type HistoryService struct {
	jobs    *repository.JobRepository
	parents *repository.ParentRepository
	logger  *zap.Logger
}

func NewHistoryService(jobs *repository.JobRepository, parents *repository.ParentRepository, logger *zap.Logger) *HistoryService {
	return &HistoryService{jobs: jobs, parents: parents, logger: logger}
}

// Entries merges the parent's posted jobs with their embedded hire
// requests, ordered by creation time descending.
func (s *HistoryService) Entries(ctx context.Context, parentID string) ([]history.Entry, error) {
	jobs, err := s.jobs.ListByParent(ctx, parentID)
	if err != nil {
		return nil, fmt.Errorf("history jobs: %w", err)
	}

	requests, err := s.parents.ListHireRequests(ctx, parentID)
	if err != nil {
		return nil, fmt.Errorf("history hire requests: %w", err)
	}

	return history.Merge(jobs, requests), nil
}

// Save writes an edit session back to the entry's source document. The
// kind tag picks the document shape and remote path; only the fields
// relevant to that shape are written.
func (s *HistoryService) Save(ctx context.Context, parentID string, session *history.EditSession) error {
	fields := session.Fields()

	var err error
	switch session.Entry.Kind {
	case history.KindHireRequest:
		err = s.parents.UpdateHireRequestFields(ctx, parentID, session.Entry.ID, fields)
	default:
		err = s.jobs.UpdateFields(ctx, session.Entry.ID, fields)
	}
	if err != nil {
		s.logger.Error("History edit save failed",
			zap.String("entry_id", session.Entry.ID),
			zap.Error(err))
		return err
	}

	s.logger.Info("History entry saved",
		zap.String("entry_id", session.Entry.ID),
		zap.String("kind", session.Entry.Kind.Label()))
	return nil
}
