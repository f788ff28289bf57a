package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/Freeeeeet/tutorhub_bot/internal/hireform"
	"github.com/Freeeeeet/tutorhub_bot/internal/model"
	"github.com/Freeeeeet/tutorhub_bot/internal/repository"
)

// HireService submits hire requests assembled by the wizard.
type HireService struct {
	parents *repository.ParentRepository
	logger  *zap.Logger
}

func NewHireService(parents *repository.ParentRepository, logger *zap.Logger) *HireService {
	return &HireService{parents: parents, logger: logger}
}

// Submit builds the request payload from the form and writes it under the
// parent document in one partial update. On failure nothing local changes;
// the wizard stays in Review so the parent can retry.
func (s *HireService) Submit(ctx context.Context, parent *model.Parent, form *hireform.Form) (*model.HireRequest, error) {
	req := form.BuildRequest(time.Now())

	if err := s.parents.AddHireRequest(ctx, parent.ID, req); err != nil {
		s.logger.Error("Hire request submission failed",
			zap.String("parent_id", parent.ID),
			zap.String("tutor_id", req.TutorID),
			zap.Error(err))
		return nil, err
	}

	s.logger.Info("Hire request submitted",
		zap.String("parent_id", parent.ID),
		zap.String("request_id", req.ID),
		zap.String("tutor_id", req.TutorID),
		zap.Int("weekly_hours", req.WeeklyHours),
		zap.Int("total_bill", req.TotalBill))

	return req, nil
}
