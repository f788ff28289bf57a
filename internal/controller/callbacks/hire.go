package callbacks

import (
	"bytes"
	"context"
	"strconv"
	"time"

	"github.com/Freeeeeet/tutorhub_bot/internal/controller/callbacks/callbacktypes"
	"github.com/Freeeeeet/tutorhub_bot/internal/controller/callbacks/common"
	"github.com/Freeeeeet/tutorhub_bot/internal/controller/state"
	"github.com/Freeeeeet/tutorhub_bot/internal/hireform"
	"github.com/Freeeeeet/tutorhub_bot/internal/model"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// successAutoClose is how long the post-submit confirmation stays on
// screen before the message is removed.
const successAutoClose = 2 * time.Second

// renderHireForm edits the callback's message into the wizard screen for
// the form's current step.
func renderHireForm(hc *common.HandlerContext, f *hireform.Form) {
	var text string
	var kb *models.InlineKeyboardMarkup
	if f.Step == hireform.StepReview {
		text, kb = common.BuildReviewScreen(f)
	} else {
		text, kb = common.BuildHireFormScreen(f)
	}
	if err := hc.EditMessage(text, kb); err != nil {
		hc.Handler.Logger.Error("Failed to render hire form", zap.Error(err))
	}
	if hc.Message != nil {
		hc.Session.WizardMsgID = hc.Message.ID
	}
}

// requireForm returns the open wizard form or answers with an alert.
func requireForm(hc *common.HandlerContext) *hireform.Form {
	if hc.Session.HireForm == nil {
		hc.AnswerAlert(common.ErrorMessage(common.ErrNoOpenForm))
		return nil
	}
	return hc.Session.HireForm
}

// HandleHireStart opens a wizard session for the tapped tutor. Opening
// does not require sign-in; the Review guard enforces it later.
func HandleHireStart(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	hc := common.NewHandlerContext(ctx, b, callback, h)

	tutorID, err := common.ParseArgFromCallback(callback.Data)
	if err != nil {
		hc.AnswerAlert(common.ErrorMessage(err))
		return
	}

	hc.Session.Lock()
	defer hc.Session.Unlock()

	tutor, ok := hc.Session.Directory.FindTutor(tutorID)
	if !ok {
		hc.AnswerAlert(common.ErrorMessage(common.ErrTutorNotFound))
		return
	}

	hc.Session.HireForm = hireform.New(tutor.ID, tutor.FullName)

	h.Logger.Info("Hire wizard opened",
		zap.Int64("telegram_id", hc.TelegramID),
		zap.String("tutor_id", tutor.ID))

	// Profiles with a picture arrive as photo messages, which cannot be
	// edited into text. Replace the message instead.
	if hc.Message != nil && len(hc.Message.Photo) > 0 {
		text, kb := common.BuildHireFormScreen(hc.Session.HireForm)
		hc.DeleteMessage()
		if sent, err := hc.SendMessage(text, kb); err == nil && sent != nil {
			hc.Session.WizardMsgID = sent.ID
		}
		hc.Answer("")
		return
	}

	renderHireForm(hc, hc.Session.HireForm)
	hc.Answer("")
}

// HandleHireForm returns to the form screen from a submenu.
func HandleHireForm(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	hc := common.NewHandlerContext(ctx, b, callback, h)

	hc.Session.Lock()
	defer hc.Session.Unlock()

	f := requireForm(hc)
	if f == nil {
		return
	}
	renderHireForm(hc, f)
	hc.Answer("")
}

// HandleHireTextField moves the chat into the text-input state matching
// the tapped field and prompts for the value.
func HandleHireTextField(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	hc := common.NewHandlerContext(ctx, b, callback, h)

	hc.Session.Lock()
	f := requireForm(hc)
	hc.Session.Unlock()
	if f == nil {
		return
	}

	var next state.UserState
	var prompt string
	switch callback.Data {
	case HireTitle:
		next, prompt = state.StateHireJobTitle, "📋 Send the job title:"
	case HireRate:
		next, prompt = state.StateHireRate, "💰 Send the hourly rate in Taka (1500–3000):"
	case HireSubjects:
		next, prompt = state.StateHireSubjects, "📚 Send the subjects, comma-separated:"
	case HireAddress:
		next, prompt = state.StateHireAddress, "🏠 Send the address:"
	case HirePhone:
		next, prompt = state.StateHirePhone, "📞 Send a contact phone number:"
	default:
		hc.AnswerAlert(common.ErrorMessage(common.ErrInvalidFormat))
		return
	}

	hc.SetState(next)
	hc.Answer("")
	hc.SendMessage(prompt, nil)
}

// HandleHireLevelMenu shows the study-level choices.
func HandleHireLevelMenu(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	hc := common.NewHandlerContext(ctx, b, callback, h)

	hc.Session.Lock()
	defer hc.Session.Unlock()

	f := requireForm(hc)
	if f == nil {
		return
	}

	text, kb := common.BuildLevelMenuScreen(f)
	if err := hc.EditMessage(text, kb); err != nil {
		h.Logger.Error("Failed to render level menu", zap.Error(err))
	}
	hc.Answer("")
}

// HandleHireLevel picks one of the offered study levels.
func HandleHireLevel(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	hc := common.NewHandlerContext(ctx, b, callback, h)

	arg, err := common.ParseArgFromCallback(callback.Data)
	if err != nil {
		hc.AnswerAlert(common.ErrorMessage(err))
		return
	}
	i, err := strconv.Atoi(arg)
	if err != nil || i < 0 || i >= len(hireform.StudyLevels) {
		hc.AnswerAlert(common.ErrorMessage(common.ErrInvalidFormat))
		return
	}

	hc.Session.Lock()
	defer hc.Session.Unlock()

	f := requireForm(hc)
	if f == nil {
		return
	}

	f.StudyLevel = hireform.StudyLevels[i]
	renderHireForm(hc, f)
	hc.Answer(f.StudyLevel)
}

// HandleHireDay toggles a weekday. Switching a day on asks for its time
// window; switching it off clears the stored window.
func HandleHireDay(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	hc := common.NewHandlerContext(ctx, b, callback, h)

	arg, err := common.ParseArgFromCallback(callback.Data)
	if err != nil {
		hc.AnswerAlert(common.ErrorMessage(err))
		return
	}
	n, err := strconv.Atoi(arg)
	if err != nil || n < 0 || n >= model.DaysInWeek {
		hc.AnswerAlert(common.ErrorMessage(common.ErrInvalidFormat))
		return
	}
	day := model.Weekday(n)

	hc.Session.Lock()
	defer hc.Session.Unlock()

	f := requireForm(hc)
	if f == nil {
		return
	}

	if f.Schedule[day].Selected {
		f.Schedule[day] = model.DaySchedule{}
		renderHireForm(hc, f)
		hc.Answer(day.Name() + " removed")
		return
	}

	hc.SetState(state.StateHireDayWindow)
	hc.SetData("day", n)
	hc.Answer("")
	hc.SendMessage("🕐 Send the time window for <b>"+day.Name()+"</b>, e.g. <code>14:00-16:30</code>:", nil)
}

// HandleHireChildAdd appends a child entry and asks for its details.
func HandleHireChildAdd(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	hc := common.NewHandlerContext(ctx, b, callback, h)

	hc.Session.Lock()
	f := requireForm(hc)
	var index int
	if f != nil {
		index = f.AddChild()
	}
	hc.Session.Unlock()
	if f == nil {
		return
	}

	hc.SetState(state.StateHireChild)
	hc.SetData("child_index", index)
	hc.Answer("")
	hc.SendMessage("👧 Send the child's details as <code>Name, Age, Grade</code>:", nil)
}

// HandleHireChildEdit asks for new details of an existing child entry.
func HandleHireChildEdit(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	hc := common.NewHandlerContext(ctx, b, callback, h)

	arg, err := common.ParseArgFromCallback(callback.Data)
	if err != nil {
		hc.AnswerAlert(common.ErrorMessage(err))
		return
	}
	index, err := strconv.Atoi(arg)
	if err != nil {
		hc.AnswerAlert(common.ErrorMessage(common.ErrInvalidFormat))
		return
	}

	hc.Session.Lock()
	f := requireForm(hc)
	ok := f != nil && index >= 0 && index < len(f.Children)
	hc.Session.Unlock()
	if f == nil {
		return
	}
	if !ok {
		hc.AnswerAlert(common.ErrorMessage(common.ErrInvalidFormat))
		return
	}

	hc.SetState(state.StateHireChild)
	hc.SetData("child_index", index)
	hc.Answer("")
	hc.SendMessage("👧 Send the child's details as <code>Name, Age, Grade</code>:", nil)
}

// HandleHireChildRemove deletes a child entry. The first entry stays.
func HandleHireChildRemove(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	hc := common.NewHandlerContext(ctx, b, callback, h)

	arg, err := common.ParseArgFromCallback(callback.Data)
	if err != nil {
		hc.AnswerAlert(common.ErrorMessage(err))
		return
	}
	index, err := strconv.Atoi(arg)
	if err != nil {
		hc.AnswerAlert(common.ErrorMessage(common.ErrInvalidFormat))
		return
	}

	hc.Session.Lock()
	defer hc.Session.Unlock()

	f := requireForm(hc)
	if f == nil {
		return
	}

	if err := f.RemoveChild(index); err != nil {
		hc.AnswerAlert("❌ " + err.Error())
		return
	}
	renderHireForm(hc, f)
	hc.Answer("Child removed")
}

// HandleHireReview runs the Form→Review guards. On failure the form stays
// put with the latest guard message; on success the review screen shows
// with a rendered schedule preview.
func HandleHireReview(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	hc := common.NewHandlerContext(ctx, b, callback, h)

	hc.Session.Lock()
	defer hc.Session.Unlock()

	f := requireForm(hc)
	if f == nil {
		return
	}

	if err := f.ToReview(hc.Authenticated()); err != nil {
		renderHireForm(hc, f)
		hc.AnswerAlert("⚠️ " + err.Error())
		return
	}

	renderHireForm(hc, f)
	hc.Answer("")
	sendSchedulePreview(hc, f)
}

// sendSchedulePreview renders and sends the weekly schedule image. A
// render failure only drops the preview, never the review itself.
func sendSchedulePreview(hc *common.HandlerContext, f *hireform.Form) {
	if len(f.Schedule.SelectedDays()) == 0 {
		return
	}

	png, err := common.RenderScheduleImage("Weekly schedule — "+f.TutorName, &f.Schedule)
	if err != nil {
		hc.Handler.Logger.Warn("Schedule image render failed", zap.Error(err))
		return
	}

	_, err = hc.Bot.SendPhoto(hc.Ctx, &bot.SendPhotoParams{
		ChatID: hc.ChatID,
		Photo: &models.InputFileUpload{
			Filename: "schedule.png",
			Data:     bytes.NewReader(png),
		},
	})
	if err != nil {
		hc.Handler.Logger.Warn("Schedule image send failed", zap.Error(err))
	}
}

// HandleHireBack returns from Review to the form with all data intact.
func HandleHireBack(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	hc := common.NewHandlerContext(ctx, b, callback, h)

	hc.Session.Lock()
	defer hc.Session.Unlock()

	f := requireForm(hc)
	if f == nil {
		return
	}

	f.BackToForm()
	renderHireForm(hc, f)
	hc.Answer("")
}

// HandleHireConfirm submits the request. The busy flag swallows double
// taps; on failure the wizard stays in Review with everything intact.
func HandleHireConfirm(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	hc := common.NewHandlerContext(ctx, b, callback, h)

	if err := hc.RequireParent(); err != nil {
		hc.AnswerAlert(common.ErrorMessage(err))
		return
	}

	hc.Session.Lock()
	defer hc.Session.Unlock()

	f := requireForm(hc)
	if f == nil {
		return
	}

	if err := f.BeginSubmit(); err != nil {
		hc.Answer("⏳ Already sending...")
		return
	}
	renderHireForm(hc, f)

	req, err := h.HireService.Submit(ctx, hc.Parent, f)
	f.EndSubmit()
	if err != nil {
		renderHireForm(hc, f)
		hc.AnswerAlert("❌ Could not send the request, please try again")
		return
	}

	hc.Session.CloseWizard()
	hc.ClearState()

	text := "✅ <b>Hire request sent!</b>\n\nRequest <code>" + req.ID + "</code> is now pending with " + req.TutorName + "."
	if err := hc.EditMessage(text, nil); err != nil {
		h.Logger.Error("Failed to render submit confirmation", zap.Error(err))
	}
	hc.Answer("✅ Sent")

	// The confirmation dismisses itself shortly after.
	chatID, msgID := hc.ChatID, 0
	if hc.Message != nil {
		msgID = hc.Message.ID
	}
	time.AfterFunc(successAutoClose, func() {
		if msgID == 0 {
			return
		}
		b.DeleteMessage(context.Background(), &bot.DeleteMessageParams{
			ChatID:    chatID,
			MessageID: msgID,
		})
	})
}

// HandleHireCancel abandons the wizard. The session form resets to a
// single blank child entry for the next run.
func HandleHireCancel(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	hc := common.NewHandlerContext(ctx, b, callback, h)

	hc.Session.Lock()
	defer hc.Session.Unlock()

	hc.Session.CloseWizard()
	hc.ClearState()
	renderDirectory(hc)
	hc.Answer("Hire request discarded")
}
