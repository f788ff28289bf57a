package common

import (
	"context"

	"github.com/Freeeeeet/tutorhub_bot/internal/controller/callbacks/callbacktypes"
	"github.com/Freeeeeet/tutorhub_bot/internal/controller/session"
	"github.com/Freeeeeet/tutorhub_bot/internal/controller/state"
	"github.com/Freeeeeet/tutorhub_bot/internal/model"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// HandlerContext bundles the data every callback needs, so handlers do
// not repeat the parent/message/session plumbing.
type HandlerContext struct {
	Ctx        context.Context
	Bot        *bot.Bot
	Callback   *models.CallbackQuery
	Handler    *callbacktypes.Handler
	Message    *models.Message
	Parent     *model.Parent
	Session    *session.Session
	TelegramID int64
	ChatID     int64
}

// NewHandlerContext builds a handler context from a callback query.
func NewHandlerContext(
	ctx context.Context,
	b *bot.Bot,
	callback *models.CallbackQuery,
	h *callbacktypes.Handler,
) *HandlerContext {
	msg := GetMessageFromCallback(callback)
	var chatID int64
	if msg != nil {
		chatID = msg.Chat.ID
	}

	return &HandlerContext{
		Ctx:        ctx,
		Bot:        b,
		Callback:   callback,
		Handler:    h,
		Message:    msg,
		Session:    h.Sessions.Get(callback.From.ID),
		TelegramID: callback.From.ID,
		ChatID:     chatID,
	}
}

// LoadParent loads the registered parent into the context.
func (hc *HandlerContext) LoadParent() error {
	parent, err := hc.Handler.ParentService.CurrentActor(hc.Ctx, hc.TelegramID)
	if err != nil {
		return err
	}
	if parent == nil {
		return ErrParentNotFound
	}
	hc.Parent = parent
	return nil
}

// RequireParent ensures the parent is loaded.
func (hc *HandlerContext) RequireParent() error {
	if hc.Parent == nil {
		return hc.LoadParent()
	}
	return nil
}

// Authenticated reports whether a registered parent stands behind this
// chat. Used by the wizard's review guard.
func (hc *HandlerContext) Authenticated() bool {
	if hc.Parent != nil {
		return true
	}
	return hc.LoadParent() == nil
}

// Answer answers the callback query.
func (hc *HandlerContext) Answer(text string) {
	AnswerCallback(hc.Ctx, hc.Bot, hc.Callback.ID, text)
}

// AnswerAlert answers the callback query with a popup alert.
func (hc *HandlerContext) AnswerAlert(text string) {
	AnswerCallbackAlert(hc.Ctx, hc.Bot, hc.Callback.ID, text)
}

// EditMessage edits the callback's message in place.
func (hc *HandlerContext) EditMessage(text string, keyboard *models.InlineKeyboardMarkup) error {
	if hc.Message == nil {
		return ErrNoMessage
	}

	_, err := hc.Bot.EditMessageText(hc.Ctx, &bot.EditMessageTextParams{
		ChatID:      hc.ChatID,
		MessageID:   hc.Message.ID,
		Text:        text,
		ParseMode:   models.ParseModeHTML,
		ReplyMarkup: keyboard,
	})

	// "message is not modified" is not a real failure.
	if IsMessageNotModifiedError(err) {
		return nil
	}

	return err
}

// SendMessage sends a fresh message to the chat and returns it.
func (hc *HandlerContext) SendMessage(text string, keyboard *models.InlineKeyboardMarkup) (*models.Message, error) {
	return hc.Bot.SendMessage(hc.Ctx, &bot.SendMessageParams{
		ChatID:      hc.ChatID,
		Text:        text,
		ParseMode:   models.ParseModeHTML,
		ReplyMarkup: keyboard,
	})
}

// SendPhoto sends a photo by URL with an HTML caption.
func (hc *HandlerContext) SendPhoto(photoURL, caption string, keyboard *models.InlineKeyboardMarkup) error {
	_, err := hc.Bot.SendPhoto(hc.Ctx, &bot.SendPhotoParams{
		ChatID:      hc.ChatID,
		Photo:       &models.InputFileString{Data: photoURL},
		Caption:     caption,
		ParseMode:   models.ParseModeHTML,
		ReplyMarkup: keyboard,
	})
	return err
}

// DeleteMessage removes the callback's message.
func (hc *HandlerContext) DeleteMessage() error {
	if hc.Message == nil {
		return ErrNoMessage
	}

	_, err := hc.Bot.DeleteMessage(hc.Ctx, &bot.DeleteMessageParams{
		ChatID:    hc.ChatID,
		MessageID: hc.Message.ID,
	})

	return err
}

// ClearState clears the chat's dialog state.
func (hc *HandlerContext) ClearState() {
	hc.Handler.StateManager.ClearState(hc.TelegramID)
}

// SetState moves the chat to a dialog state.
func (hc *HandlerContext) SetState(s state.UserState) {
	hc.Handler.StateManager.SetState(hc.TelegramID, s)
}

// SetData stores a scratch value for the current dialog.
func (hc *HandlerContext) SetData(key string, value interface{}) {
	hc.Handler.StateManager.SetData(hc.TelegramID, key, value)
}

// GetData reads a scratch value of the current dialog.
func (hc *HandlerContext) GetData(key string) (interface{}, bool) {
	return hc.Handler.StateManager.GetData(hc.TelegramID, key)
}
