package callbacks

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/Freeeeeet/tutorhub_bot/internal/controller/callbacks/callbacktypes"
	"github.com/Freeeeeet/tutorhub_bot/internal/controller/callbacks/common"
	"github.com/Freeeeeet/tutorhub_bot/internal/controller/state"
	"github.com/Freeeeeet/tutorhub_bot/internal/history"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// dialogAutoClose is how long an edit-dialog error line or save
// confirmation stays visible.
const dialogAutoClose = 2 * time.Second

// renderHistory edits the callback's message into the history screen.
func renderHistory(hc *common.HandlerContext) {
	text, kb := common.BuildHistoryScreen(hc.Session.History)
	if err := hc.EditMessage(text, kb); err != nil {
		hc.Handler.Logger.Error("Failed to render history", zap.Error(err))
	}
	if hc.Message != nil {
		hc.Session.HistoryMsgID = hc.Message.ID
	}
}

// requireView returns the open history view or answers with an alert.
func requireView(hc *common.HandlerContext) *history.View {
	if hc.Session.History == nil {
		hc.AnswerAlert("❌ Open the history first with /history")
		return nil
	}
	return hc.Session.History
}

// requireEdit returns the open edit session or answers with an alert.
func requireEdit(hc *common.HandlerContext) *history.EditSession {
	if hc.Session.Edit == nil {
		hc.AnswerAlert(common.ErrorMessage(common.ErrNoOpenEdit))
		return nil
	}
	return hc.Session.Edit
}

// HandleHistoryPage moves within the filtered history list.
func HandleHistoryPage(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	hc := common.NewHandlerContext(ctx, b, callback, h)

	arg, err := common.ParseArgFromCallback(callback.Data)
	if err != nil {
		hc.AnswerAlert(common.ErrorMessage(err))
		return
	}
	page, err := strconv.Atoi(arg)
	if err != nil {
		hc.AnswerAlert(common.ErrorMessage(common.ErrInvalidFormat))
		return
	}

	hc.Session.Lock()
	defer hc.Session.Unlock()

	v := requireView(hc)
	if v == nil {
		return
	}

	v.SetPage(page)
	renderHistory(hc)
	hc.Answer("")
}

// HandleHistoryStatus installs a status filter; "all" clears it. The page
// resets because the filtered list changed.
func HandleHistoryStatus(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	hc := common.NewHandlerContext(ctx, b, callback, h)

	status, err := common.ParseArgFromCallback(callback.Data)
	if err != nil {
		hc.AnswerAlert(common.ErrorMessage(err))
		return
	}
	if status == "all" {
		status = ""
	}

	hc.Session.Lock()
	defer hc.Session.Unlock()

	v := requireView(hc)
	if v == nil {
		return
	}

	v.SetStatusFilter(status)
	renderHistory(hc)
	hc.Answer("")
}

// HandleHistoryMode flips list/grid. Purely presentational: filters, page
// and data stay identical.
func HandleHistoryMode(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	hc := common.NewHandlerContext(ctx, b, callback, h)

	hc.Session.Lock()
	defer hc.Session.Unlock()

	v := requireView(hc)
	if v == nil {
		return
	}

	v.ToggleMode()
	renderHistory(hc)
	hc.Answer("")
}

// HandleHistorySearch puts the chat into history search-input mode.
func HandleHistorySearch(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	hc := common.NewHandlerContext(ctx, b, callback, h)

	hc.Session.Lock()
	v := requireView(hc)
	hc.Session.Unlock()
	if v == nil {
		return
	}

	hc.SetState(state.StateHistorySearch)
	hc.Answer("")
	hc.SendMessage("🔍 Send text to filter by title, tutor, location or subject (empty message clears):", nil)
}

// HandleHistoryEdit opens the edit dialog on a full copy of the entry.
func HandleHistoryEdit(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	hc := common.NewHandlerContext(ctx, b, callback, h)

	entryID, err := common.ParseArgFromCallback(callback.Data)
	if err != nil {
		hc.AnswerAlert(common.ErrorMessage(err))
		return
	}

	hc.Session.Lock()
	defer hc.Session.Unlock()

	v := requireView(hc)
	if v == nil {
		return
	}

	entry, ok := v.Find(entryID)
	if !ok {
		hc.AnswerAlert(common.ErrorMessage(common.ErrEntryNotFound))
		return
	}

	hc.Session.Edit = history.NewEditSession(entry)

	text, kb := common.BuildEditScreen(hc.Session.Edit, "")
	if err := hc.EditMessage(text, kb); err != nil {
		h.Logger.Error("Failed to render edit dialog", zap.Error(err))
	}
	hc.Answer("")
}

// HandleEditTextField moves the chat into the matching text-input state.
func HandleEditTextField(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	hc := common.NewHandlerContext(ctx, b, callback, h)

	hc.Session.Lock()
	s := requireEdit(hc)
	hc.Session.Unlock()
	if s == nil {
		return
	}

	switch callback.Data {
	case EditTitle:
		hc.SetState(state.StateEditTitle)
		hc.Answer("")
		hc.SendMessage("📋 Send the new title:", nil)
	case EditRate:
		hc.SetState(state.StateEditRate)
		hc.Answer("")
		hc.SendMessage("💰 Send the new hourly rate in Taka:", nil)
	default:
		hc.AnswerAlert(common.ErrorMessage(common.ErrInvalidFormat))
	}
}

// HandleEditStatus sets the status inside the edit session.
func HandleEditStatus(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	hc := common.NewHandlerContext(ctx, b, callback, h)

	status, err := common.ParseArgFromCallback(callback.Data)
	if err != nil {
		hc.AnswerAlert(common.ErrorMessage(err))
		return
	}

	hc.Session.Lock()
	defer hc.Session.Unlock()

	s := requireEdit(hc)
	if s == nil {
		return
	}

	s.SetStatus(status)
	text, kb := common.BuildEditScreen(s, "")
	if err := hc.EditMessage(text, kb); err != nil {
		h.Logger.Error("Failed to render edit dialog", zap.Error(err))
	}
	hc.Answer("")
}

// HandleEditSave writes the session back through the kind-dispatched path.
// On success a brief confirmation shows and the history screen returns
// shortly after; on failure the dialog stays open and the error line
// clears itself.
func HandleEditSave(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	hc := common.NewHandlerContext(ctx, b, callback, h)

	if err := hc.RequireParent(); err != nil {
		hc.AnswerAlert(common.ErrorMessage(err))
		return
	}

	hc.Session.Lock()
	defer hc.Session.Unlock()

	s := requireEdit(hc)
	if s == nil {
		return
	}
	v := requireView(hc)
	if v == nil {
		return
	}

	if !s.Dirty() {
		hc.Session.CloseEdit()
		hc.ClearState()
		renderHistory(hc)
		hc.Answer("Nothing to save")
		return
	}

	if err := h.HistoryService.Save(ctx, hc.Parent.ID, s); err != nil {
		text, kb := common.BuildEditScreen(s, "Save failed, please try again")
		if editErr := hc.EditMessage(text, kb); editErr != nil {
			h.Logger.Error("Failed to render edit error", zap.Error(editErr))
		}
		hc.Answer("")
		scheduleErrorClear(b, hc, s)
		return
	}

	v.Replace(s.Entry)
	hc.Session.CloseEdit()
	hc.ClearState()

	text := fmt.Sprintf("💾 <b>Saved.</b>\n\n%s", s.Entry.JobTitle)
	if err := hc.EditMessage(text, nil); err != nil {
		h.Logger.Error("Failed to render save confirmation", zap.Error(err))
	}
	hc.Answer("💾 Saved")
	scheduleHistoryReturn(b, hc)
}

// scheduleHistoryReturn brings the history screen back once the save
// confirmation has been visible for dialogAutoClose, unless another edit
// dialog opened meanwhile.
func scheduleHistoryReturn(b *bot.Bot, hc *common.HandlerContext) {
	if hc.Message == nil {
		return
	}
	chatID, msgID := hc.ChatID, hc.Message.ID
	sess := hc.Session

	time.AfterFunc(dialogAutoClose, func() {
		sess.Lock()
		defer sess.Unlock()

		if sess.Edit != nil || sess.History == nil || sess.HistoryMsgID != msgID {
			return
		}
		text, kb := common.BuildHistoryScreen(sess.History)
		b.EditMessageText(context.Background(), &bot.EditMessageTextParams{
			ChatID:      chatID,
			MessageID:   msgID,
			Text:        text,
			ParseMode:   models.ParseModeHTML,
			ReplyMarkup: kb,
		})
	})
}

// scheduleErrorClear re-renders the edit dialog without the error line
// once dialogAutoClose passes, if the dialog is still open.
func scheduleErrorClear(b *bot.Bot, hc *common.HandlerContext, s *history.EditSession) {
	if hc.Message == nil {
		return
	}
	chatID, msgID := hc.ChatID, hc.Message.ID
	sess := hc.Session

	time.AfterFunc(dialogAutoClose, func() {
		sess.Lock()
		defer sess.Unlock()

		if sess.Edit != s {
			return
		}
		text, kb := common.BuildEditScreen(s, "")
		b.EditMessageText(context.Background(), &bot.EditMessageTextParams{
			ChatID:      chatID,
			MessageID:   msgID,
			Text:        text,
			ParseMode:   models.ParseModeHTML,
			ReplyMarkup: kb,
		})
	})
}

// HandleEditClose abandons the edit dialog; nothing is written.
func HandleEditClose(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	hc := common.NewHandlerContext(ctx, b, callback, h)

	hc.Session.Lock()
	defer hc.Session.Unlock()

	hadEdit := hc.Session.Edit != nil
	hc.Session.CloseEdit()
	hc.ClearState()

	if hc.Session.History != nil {
		renderHistory(hc)
	}
	if hadEdit {
		hc.Answer("Changes discarded")
	} else {
		hc.Answer("")
	}
}
