package handlers

import (
	"github.com/Freeeeeet/tutorhub_bot/internal/controller/session"
	"github.com/Freeeeeet/tutorhub_bot/internal/controller/state"
	"github.com/Freeeeeet/tutorhub_bot/internal/service"
	"go.uber.org/zap"
)

// Handlers carries the dependencies of the command and dialog handlers.
type Handlers struct {
	parentService    *service.ParentService
	directoryService *service.DirectoryService
	hireService      *service.HireService
	historyService   *service.HistoryService
	stateManager     *state.Manager
	sessions         *session.Manager
	logger           *zap.Logger
}

// NewHandlers builds the command handler set.
func NewHandlers(
	parentService *service.ParentService,
	directoryService *service.DirectoryService,
	hireService *service.HireService,
	historyService *service.HistoryService,
	stateManager *state.Manager,
	sessions *session.Manager,
	logger *zap.Logger,
) *Handlers {
	return &Handlers{
		parentService:    parentService,
		directoryService: directoryService,
		hireService:      hireService,
		historyService:   historyService,
		stateManager:     stateManager,
		sessions:         sessions,
		logger:           logger,
	}
}
