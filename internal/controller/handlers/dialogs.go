package handlers

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/Freeeeeet/tutorhub_bot/internal/billing"
	"github.com/Freeeeeet/tutorhub_bot/internal/controller/callbacks/common"
	"github.com/Freeeeeet/tutorhub_bot/internal/controller/session"
	"github.com/Freeeeeet/tutorhub_bot/internal/controller/state"
	"github.com/Freeeeeet/tutorhub_bot/internal/hireform"
	"github.com/Freeeeeet/tutorhub_bot/internal/model"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

const jobTitleMaxLength = 80

var errInvalidChild = errors.New("invalid child details")

// HandleTextMessage routes free text by the chat's dialog state.
func (h *Handlers) HandleTextMessage(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil || update.Message.From == nil {
		return
	}
	text := strings.TrimSpace(update.Message.Text)
	if strings.HasPrefix(text, "/") {
		return // commands have their own handlers
	}

	telegramID := update.Message.From.ID
	userState := h.stateManager.GetState(telegramID)
	if userState != state.StateNone {
		h.logger.Debug("Routing dialog input",
			zap.Int64("telegram_id", telegramID),
			zap.String("state", string(userState)),
			zap.Any("data", h.stateManager.GetAllData(telegramID)))
	}

	switch userState {
	case state.StateSearchTutors:
		h.handleSearchInput(ctx, b, update, text)
	case state.StateHireJobTitle,
		state.StateHireRate,
		state.StateHireSubjects,
		state.StateHireAddress,
		state.StateHirePhone,
		state.StateHireChild,
		state.StateHireDayWindow:
		h.handleHireInput(ctx, b, update, userState, text)
	case state.StateHistorySearch:
		h.handleHistorySearchInput(ctx, b, update, text)
	case state.StateEditTitle, state.StateEditRate:
		h.handleEditInput(ctx, b, update, userState, text)
	}
}

// handleSearchInput feeds the debounced searcher. Results land on the
// directory message asynchronously; rapid typing coalesces into one pass.
func (h *Handlers) handleSearchInput(ctx context.Context, b *bot.Bot, update *models.Update, query string) {
	chatID := update.Message.Chat.ID
	sess := h.sessions.Get(update.Message.From.ID)

	sess.Lock()
	tutors := sess.Directory.Tutors
	msgID := sess.DirectoryMsgID
	sess.Unlock()

	if msgID == 0 {
		h.sendError(ctx, b, chatID, "❌ Open the directory first with /tutors")
		return
	}

	sess.Searcher.Search(query, tutors, func(applied string, results []*model.Tutor) {
		sess.Lock()
		sess.Directory.SetSearchResults(applied, results)
		text, kb := common.BuildDirectoryScreen(sess.Directory)
		sess.Unlock()

		h.editScreen(context.Background(), b, chatID, msgID, text, kb)
	})
}

// handleHireInput fills one wizard field from free text.
func (h *Handlers) handleHireInput(ctx context.Context, b *bot.Bot, update *models.Update, userState state.UserState, text string) {
	telegramID := update.Message.From.ID
	chatID := update.Message.Chat.ID
	sess := h.sessions.Get(telegramID)

	sess.Lock()
	defer sess.Unlock()

	f := sess.HireForm
	if f == nil {
		h.stateManager.ClearState(telegramID)
		h.sendError(ctx, b, chatID, "❌ No hire request in progress. Open a tutor profile first")
		return
	}

	switch userState {
	case state.StateHireJobTitle:
		if text == "" || len(text) > jobTitleMaxLength {
			h.sendError(ctx, b, chatID, "❌ Send a non-empty title up to 80 characters:")
			return
		}
		f.JobTitle = text

	case state.StateHireRate:
		rate, err := strconv.Atoi(text)
		if err != nil {
			h.sendError(ctx, b, chatID, "❌ Send the rate as a number, e.g. 2000:")
			return
		}
		// Out-of-range rates are kept with an inline warning; only the
		// Review transition enforces the range.
		f.SetHourlyRate(rate)

	case state.StateHireSubjects:
		var subjects []string
		for _, part := range strings.Split(text, ",") {
			if s := strings.TrimSpace(part); s != "" {
				subjects = append(subjects, s)
			}
		}
		if len(subjects) == 0 {
			h.sendError(ctx, b, chatID, "❌ Send at least one subject:")
			return
		}
		f.SubjectAreas = subjects

	case state.StateHireAddress:
		if text == "" {
			h.sendError(ctx, b, chatID, "❌ Send a non-empty address:")
			return
		}
		f.Address = text

	case state.StateHirePhone:
		if len(text) < 6 {
			h.sendError(ctx, b, chatID, "❌ That does not look like a phone number, try again:")
			return
		}
		f.ContactPhone = text

	case state.StateHireChild:
		index, ok := h.stateDataInt(telegramID, "child_index")
		if !ok {
			h.stateManager.ClearState(telegramID)
			h.sendError(ctx, b, chatID, "❌ Something went wrong, reopen the form")
			return
		}
		child, err := parseChild(text)
		if err != nil {
			h.sendError(ctx, b, chatID, "❌ Use the format: Name, Age, Grade — e.g. <code>Mina, 9, Class 4</code>")
			return
		}
		if err := f.SetChild(index, child); err != nil {
			h.stateManager.ClearState(telegramID)
			h.sendError(ctx, b, chatID, "❌ That child entry no longer exists")
			return
		}

	case state.StateHireDayWindow:
		dayNum, ok := h.stateDataInt(telegramID, "day")
		if !ok || dayNum < 0 || dayNum >= model.DaysInWeek {
			h.stateManager.ClearState(telegramID)
			h.sendError(ctx, b, chatID, "❌ Something went wrong, tap the day again")
			return
		}
		start, end, err := billing.ParseWindow(text)
		if err != nil {
			h.sendError(ctx, b, chatID, "❌ Use the format <code>14:00-16:30</code>, end after start:")
			return
		}
		f.SetDayWindow(model.Weekday(dayNum), start, end)
	}

	h.stateManager.ClearState(telegramID)
	h.rerenderWizard(ctx, b, chatID, sess, f)
}

// rerenderWizard refreshes the wizard message after a text-field change,
// sending a fresh screen when the old message cannot be edited.
func (h *Handlers) rerenderWizard(ctx context.Context, b *bot.Bot, chatID int64, sess *session.Session, f *hireform.Form) {
	text, kb := common.BuildHireFormScreen(f)
	if h.editScreen(ctx, b, chatID, sess.WizardMsgID, text, kb) {
		return
	}
	sent, err := h.sendHTML(ctx, b, chatID, text, kb)
	if err != nil {
		h.logger.Error("Wizard re-render failed", zap.Error(err))
		return
	}
	sess.WizardMsgID = sent.ID
}

// handleHistorySearchInput installs the free-text filter on the history
// view. An empty message clears it.
func (h *Handlers) handleHistorySearchInput(ctx context.Context, b *bot.Bot, update *models.Update, query string) {
	telegramID := update.Message.From.ID
	chatID := update.Message.Chat.ID
	sess := h.sessions.Get(telegramID)

	sess.Lock()
	defer sess.Unlock()

	if sess.History == nil {
		h.stateManager.ClearState(telegramID)
		h.sendError(ctx, b, chatID, "❌ Open the history first with /history")
		return
	}

	sess.History.SetQuery(query)
	h.stateManager.ClearState(telegramID)

	text, kb := common.BuildHistoryScreen(sess.History)
	if !h.editScreen(ctx, b, chatID, sess.HistoryMsgID, text, kb) {
		if sent, err := h.sendHTML(ctx, b, chatID, text, kb); err == nil {
			sess.HistoryMsgID = sent.ID
		}
	}
}

// handleEditInput fills one edit-dialog field from free text. Rate edits
// recompute the bill immediately.
func (h *Handlers) handleEditInput(ctx context.Context, b *bot.Bot, update *models.Update, userState state.UserState, text string) {
	telegramID := update.Message.From.ID
	chatID := update.Message.Chat.ID
	sess := h.sessions.Get(telegramID)

	sess.Lock()
	defer sess.Unlock()

	s := sess.Edit
	if s == nil {
		h.stateManager.ClearState(telegramID)
		h.sendError(ctx, b, chatID, "❌ No edit dialog open")
		return
	}

	switch userState {
	case state.StateEditTitle:
		if text == "" || len(text) > jobTitleMaxLength {
			h.sendError(ctx, b, chatID, "❌ Send a non-empty title up to 80 characters:")
			return
		}
		s.SetJobTitle(text)

	case state.StateEditRate:
		rate, err := strconv.Atoi(text)
		if err != nil {
			h.sendError(ctx, b, chatID, "❌ Send the rate as a number, e.g. 2000:")
			return
		}
		if err := billing.ValidateRate(rate); err != nil {
			h.sendError(ctx, b, chatID, "❌ "+err.Error())
			return
		}
		s.SetHourlyRate(rate)
	}

	h.stateManager.ClearState(telegramID)

	screen, kb := common.BuildEditScreen(s, "")
	h.editScreen(ctx, b, chatID, sess.HistoryMsgID, screen, kb)
}

// stateDataInt reads an int scratch value of the current dialog.
func (h *Handlers) stateDataInt(telegramID int64, key string) (int, bool) {
	raw, ok := h.stateManager.GetData(telegramID, key)
	if !ok {
		return 0, false
	}
	n, ok := raw.(int)
	return n, ok
}

// parseChild parses "Name, Age, Grade".
func parseChild(text string) (model.ChildAttachment, error) {
	parts := strings.SplitN(text, ",", 3)
	if len(parts) != 3 {
		return model.ChildAttachment{}, errInvalidChild
	}

	name := strings.TrimSpace(parts[0])
	grade := strings.TrimSpace(parts[2])
	age, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil || name == "" || grade == "" || age <= 0 {
		return model.ChildAttachment{}, errInvalidChild
	}

	return model.ChildAttachment{Name: name, Age: age, Grade: grade}, nil
}
