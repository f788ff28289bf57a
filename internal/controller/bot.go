package controller

import (
	"context"

	"github.com/Freeeeeet/tutorhub_bot/internal/controller/callbacks"
	"github.com/Freeeeeet/tutorhub_bot/internal/controller/handlers"
	"github.com/Freeeeeet/tutorhub_bot/internal/controller/session"
	"github.com/Freeeeeet/tutorhub_bot/internal/controller/state"
	"github.com/Freeeeeet/tutorhub_bot/internal/media"
	"github.com/Freeeeeet/tutorhub_bot/internal/service"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

type BotController struct {
	bot             *bot.Bot
	handlers        *handlers.Handlers
	callbackHandler *callbacks.Handler
	logger          *zap.Logger
}

func NewBotController(
	botInstance *bot.Bot,
	parentService *service.ParentService,
	directoryService *service.DirectoryService,
	hireService *service.HireService,
	historyService *service.HistoryService,
	mediaResolver *media.Resolver,
	logger *zap.Logger,
) *BotController {
	stateManager := state.NewManager()
	sessions := session.NewManager()

	cmdHandlers := handlers.NewHandlers(
		parentService,
		directoryService,
		hireService,
		historyService,
		stateManager,
		sessions,
		logger,
	)

	callbackHandler := callbacks.NewHandler(
		parentService,
		directoryService,
		hireService,
		historyService,
		mediaResolver,
		stateManager,
		sessions,
		logger,
	)

	return &BotController{
		bot:             botInstance,
		handlers:        cmdHandlers,
		callbackHandler: callbackHandler,
		logger:          logger,
	}
}

// RegisterHandlers wires commands, dialog text and inline buttons.
func (c *BotController) RegisterHandlers(ctx context.Context) error {
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/start", bot.MatchTypeExact, c.handlers.HandleStart)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/help", bot.MatchTypeExact, c.handlers.HandleHelp)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/tutors", bot.MatchTypeExact, c.handlers.HandleTutors)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/history", bot.MatchTypeExact, c.handlers.HandleHistory)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/cancel", bot.MatchTypeExact, c.handlers.HandleCancel)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/logout", bot.MatchTypeExact, c.handlers.HandleLogout)

	// Dialog text (stateful inputs)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "", bot.MatchTypePrefix, c.handlers.HandleTextMessage)

	// Inline buttons
	c.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, "", bot.MatchTypePrefix, c.callbackHandler.HandleCallbackQuery)

	return c.setCommands(ctx)
}

// setCommands installs the command menu.
func (c *BotController) setCommands(ctx context.Context) error {
	commands := []models.BotCommand{
		{Command: "start", Description: "🚀 Register and get started"},
		{Command: "tutors", Description: "🎓 Browse the tutor directory"},
		{Command: "history", Description: "📜 Posted jobs and hire requests"},
		{Command: "cancel", Description: "✖️ Abort the current dialog"},
		{Command: "logout", Description: "👋 Forget this chat's view state"},
		{Command: "help", Description: "❓ All commands"},
	}

	_, err := c.bot.SetMyCommands(ctx, &bot.SetMyCommandsParams{
		Commands: commands,
	})

	if err != nil {
		c.logger.Error("Failed to set bot commands", zap.Error(err))
		return err
	}

	c.logger.Info("✅ Bot commands menu set")
	return nil
}

// Start runs the long-polling loop until the context ends.
func (c *BotController) Start(ctx context.Context) error {
	c.logger.Info("Starting bot...")
	c.bot.Start(ctx)
	return nil
}
