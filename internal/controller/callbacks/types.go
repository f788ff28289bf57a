package callbacks

import (
	"context"

	"github.com/Freeeeeet/tutorhub_bot/internal/controller/callbacks/callbacktypes"
	"github.com/Freeeeeet/tutorhub_bot/internal/controller/session"
	"github.com/Freeeeeet/tutorhub_bot/internal/controller/state"
	"github.com/Freeeeeet/tutorhub_bot/internal/media"
	"github.com/Freeeeeet/tutorhub_bot/internal/service"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// Handler wraps callbacktypes.Handler with the entry-point method.
type Handler struct {
	*callbacktypes.Handler
}

// NewHandler builds the callback handler with its dependencies.
func NewHandler(
	parentService *service.ParentService,
	directoryService *service.DirectoryService,
	hireService *service.HireService,
	historyService *service.HistoryService,
	mediaResolver *media.Resolver,
	stateManager *state.Manager,
	sessions *session.Manager,
	logger *zap.Logger,
) *Handler {
	inner := &callbacktypes.Handler{
		ParentService:    parentService,
		DirectoryService: directoryService,
		HireService:      hireService,
		HistoryService:   historyService,
		Media:            mediaResolver,
		StateManager:     stateManager,
		Sessions:         sessions,
		Logger:           logger,
	}
	return &Handler{Handler: inner}
}

// HandleCallbackQuery is the single entry point for inline button taps.
func (h *Handler) HandleCallbackQuery(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.CallbackQuery == nil {
		return
	}

	callback := update.CallbackQuery

	h.Logger.Info("Callback received",
		zap.String("data", callback.Data),
		zap.Int64("telegram_id", callback.From.ID))

	Route(ctx, b, callback, h.Handler)
}
