package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/Freeeeeet/tutorhub_bot/internal/model"
	"github.com/Freeeeeet/tutorhub_bot/internal/repository"
)

// ParentService is the auth-provider boundary: the current actor is the
// registered parent behind the Telegram account, or nil.
type ParentService struct {
	parents *repository.ParentRepository
	logger  *zap.Logger
}

func NewParentService(parents *repository.ParentRepository, logger *zap.Logger) *ParentService {
	return &ParentService{parents: parents, logger: logger}
}

// CurrentActor returns the registered parent, or nil when the account has
// not gone through /start yet. Writes are blocked before registration.
func (s *ParentService) CurrentActor(ctx context.Context, telegramID int64) (*model.Parent, error) {
	return s.parents.GetByTelegramID(ctx, telegramID)
}

// GetOrRegister loads the parent or registers a new one.
func (s *ParentService) GetOrRegister(ctx context.Context, telegramID int64, username, firstName, lastName, languageCode string) (*model.Parent, error) {
	parent, err := s.parents.GetByTelegramID(ctx, telegramID)
	if err != nil {
		return nil, err
	}
	if parent != nil {
		return parent, nil
	}

	parent = &model.Parent{
		TelegramID:   telegramID,
		Username:     username,
		FirstName:    firstName,
		LastName:     lastName,
		LanguageCode: languageCode,
	}
	if err := s.parents.Create(ctx, parent); err != nil {
		return nil, fmt.Errorf("register parent: %w", err)
	}

	s.logger.Info("Registered new parent",
		zap.Int64("telegram_id", telegramID),
		zap.String("parent_id", parent.ID))

	return parent, nil
}
