package handlers

import (
	"context"
	"fmt"

	"github.com/Freeeeeet/tutorhub_bot/internal/controller/callbacks"
	"github.com/Freeeeeet/tutorhub_bot/internal/controller/callbacks/common"
	"github.com/Freeeeeet/tutorhub_bot/internal/history"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// HandleStart registers the parent (or welcomes an existing one back).
func (h *Handlers) HandleStart(ctx context.Context, b *bot.Bot, update *models.Update) {
	from := update.Message.From
	chatID := update.Message.Chat.ID

	parent, err := h.parentService.GetOrRegister(ctx, from.ID, from.Username, from.FirstName, from.LastName, from.LanguageCode)
	if err != nil {
		h.logger.Error("Registration failed",
			zap.Int64("telegram_id", from.ID),
			zap.Error(err))
		h.sendError(ctx, b, chatID, "❌ Something went wrong, please try again")
		return
	}

	text := fmt.Sprintf(
		"👋 Welcome, <b>%s</b>!\n\n"+
			"This bot helps you find and hire tutors for your children.\n\n"+
			"/tutors — browse the tutor directory\n"+
			"/history — your posted jobs and hire requests\n"+
			"/help — all commands",
		parent.DisplayName(),
	)
	h.sendHTML(ctx, b, chatID, text, nil)
}

// HandleHelp lists the available commands.
func (h *Handlers) HandleHelp(ctx context.Context, b *bot.Bot, update *models.Update) {
	text := "❓ <b>Commands</b>\n\n" +
		"/start — register and get started\n" +
		"/tutors — tutor directory: recommended, applicants, upcoming\n" +
		"/history — posted jobs and hire requests, with editing\n" +
		"/cancel — abort the current dialog\n" +
		"/logout — forget this chat's view state"
	h.sendHTML(ctx, b, update.Message.Chat.ID, text, nil)
}

// HandleTutors opens the tutor directory on the Recommended tab.
func (h *Handlers) HandleTutors(ctx context.Context, b *bot.Bot, update *models.Update) {
	parent, ok := h.requireParent(ctx, b, update)
	if !ok {
		return
	}

	chatID := update.Message.Chat.ID
	sess := h.sessions.Get(update.Message.From.ID)

	sess.Lock()
	defer sess.Unlock()

	if err := callbacks.RefreshDirectory(ctx, h.directoryService, h.logger, sess, parent); err != nil {
		h.logger.Error("Directory fetch failed",
			zap.String("parent_id", parent.ID),
			zap.Error(err))
		h.sendError(ctx, b, chatID, "❌ Could not load the directory, please try again")
		return
	}

	text, kb := common.BuildDirectoryScreen(sess.Directory)
	sent, err := h.sendHTML(ctx, b, chatID, text, kb)
	if err != nil {
		h.logger.Error("Directory send failed", zap.Error(err))
		return
	}
	sess.DirectoryMsgID = sent.ID
}

// HandleHistory opens the merged job history.
func (h *Handlers) HandleHistory(ctx context.Context, b *bot.Bot, update *models.Update) {
	parent, ok := h.requireParent(ctx, b, update)
	if !ok {
		return
	}

	chatID := update.Message.Chat.ID

	entries, err := h.historyService.Entries(ctx, parent.ID)
	if err != nil {
		h.logger.Error("History fetch failed",
			zap.String("parent_id", parent.ID),
			zap.Error(err))
		h.sendError(ctx, b, chatID, "❌ Could not load your history, please try again")
		return
	}

	sess := h.sessions.Get(update.Message.From.ID)
	sess.Lock()
	defer sess.Unlock()

	sess.History = history.NewView(entries)
	sess.CloseEdit()

	text, kb := common.BuildHistoryScreen(sess.History)
	sent, err := h.sendHTML(ctx, b, chatID, text, kb)
	if err != nil {
		h.logger.Error("History send failed", zap.Error(err))
		return
	}
	sess.HistoryMsgID = sent.ID
}

// HandleCancel aborts whatever dialog is in progress.
func (h *Handlers) HandleCancel(ctx context.Context, b *bot.Bot, update *models.Update) {
	telegramID := update.Message.From.ID

	sess := h.sessions.Get(telegramID)
	sess.Lock()
	sess.Searcher.Cancel()
	sess.CloseWizard()
	sess.CloseEdit()
	sess.Unlock()

	h.stateManager.ClearState(telegramID)

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: update.Message.Chat.ID,
		Text:   "✖️ Cancelled. Use /tutors or /history to continue.",
	})
}

// HandleLogout forgets the chat's whole view state.
func (h *Handlers) HandleLogout(ctx context.Context, b *bot.Bot, update *models.Update) {
	telegramID := update.Message.From.ID

	sess := h.sessions.Get(telegramID)
	sess.Lock()
	sess.Searcher.Cancel()
	sess.Unlock()

	h.sessions.Drop(telegramID)
	h.stateManager.ClearState(telegramID)

	h.logger.Info("Session dropped", zap.Int64("telegram_id", telegramID))

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: update.Message.Chat.ID,
		Text:   "👋 Signed out. Use /start to begin again.",
	})
}
