package handlers

import (
	"context"

	"github.com/Freeeeeet/tutorhub_bot/internal/model"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// sendError sends a plain error message to the chat.
func (h *Handlers) sendError(ctx context.Context, b *bot.Bot, chatID int64, text string) {
	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text:   text,
	})
}

// sendHTML sends an HTML message with an optional keyboard.
func (h *Handlers) sendHTML(ctx context.Context, b *bot.Bot, chatID int64, text string, kb *models.InlineKeyboardMarkup) (*models.Message, error) {
	return b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      chatID,
		Text:        text,
		ParseMode:   models.ParseModeHTML,
		ReplyMarkup: kb,
	})
}

// editScreen edits a tracked screen message in place. Returns false when
// there is no message to edit or the edit fails.
func (h *Handlers) editScreen(ctx context.Context, b *bot.Bot, chatID int64, msgID int, text string, kb *models.InlineKeyboardMarkup) bool {
	if msgID == 0 {
		return false
	}
	_, err := b.EditMessageText(ctx, &bot.EditMessageTextParams{
		ChatID:      chatID,
		MessageID:   msgID,
		Text:        text,
		ParseMode:   models.ParseModeHTML,
		ReplyMarkup: kb,
	})
	if err != nil {
		h.logger.Debug("Screen edit failed", zap.Int("message_id", msgID), zap.Error(err))
		return false
	}
	return true
}

// requireParent loads the registered parent or tells the user to /start.
func (h *Handlers) requireParent(ctx context.Context, b *bot.Bot, update *models.Update) (*model.Parent, bool) {
	telegramID := update.Message.From.ID

	parent, err := h.parentService.CurrentActor(ctx, telegramID)
	if err != nil {
		h.logger.Error("Failed to load parent",
			zap.Int64("telegram_id", telegramID),
			zap.Error(err))
		h.sendError(ctx, b, update.Message.Chat.ID, "❌ Something went wrong, please try again")
		return nil, false
	}
	if parent == nil {
		h.sendError(ctx, b, update.Message.Chat.ID, "❌ You are not registered yet. Use /start")
		return nil, false
	}

	return parent, true
}
