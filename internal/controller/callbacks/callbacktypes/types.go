package callbacktypes

import (
	"github.com/Freeeeeet/tutorhub_bot/internal/controller/session"
	"github.com/Freeeeeet/tutorhub_bot/internal/controller/state"
	"github.com/Freeeeeet/tutorhub_bot/internal/media"
	"github.com/Freeeeeet/tutorhub_bot/internal/service"
	"go.uber.org/zap"
)

// Handler carries the shared dependencies of every callback handler.
type Handler struct {
	ParentService    *service.ParentService
	DirectoryService *service.DirectoryService
	HireService      *service.HireService
	HistoryService   *service.HistoryService

	Media        *media.Resolver
	StateManager *state.Manager
	Sessions     *session.Manager
	Logger       *zap.Logger
}
