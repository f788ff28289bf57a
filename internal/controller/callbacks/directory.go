package callbacks

import (
	"context"
	"strconv"

	"github.com/Freeeeeet/tutorhub_bot/internal/controller/callbacks/callbacktypes"
	"github.com/Freeeeeet/tutorhub_bot/internal/controller/callbacks/common"
	"github.com/Freeeeeet/tutorhub_bot/internal/controller/session"
	"github.com/Freeeeeet/tutorhub_bot/internal/controller/state"
	"github.com/Freeeeeet/tutorhub_bot/internal/directory"
	"github.com/Freeeeeet/tutorhub_bot/internal/model"
	"github.com/Freeeeeet/tutorhub_bot/internal/service"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// RefreshDirectory fetches the parent's directory views and installs them
// into the session state. Stale responses are dropped by the fetch token.
// The caller holds the session lock.
func RefreshDirectory(ctx context.Context, svc *service.DirectoryService, logger *zap.Logger, sess *session.Session, parent *model.Parent) error {
	token := sess.Directory.NextFetchToken()

	tutors, requests, upcoming, err := svc.Views(ctx, parent.ID)
	if err != nil {
		return err
	}

	if !sess.Directory.ApplyFetch(token, tutors, requests, upcoming) {
		logger.Debug("Stale directory fetch dropped",
			zap.Uint64("token", token),
			zap.String("parent_id", parent.ID))
	}
	return nil
}

// renderDirectory edits the callback's message into the directory screen.
func renderDirectory(hc *common.HandlerContext) {
	text, kb := common.BuildDirectoryScreen(hc.Session.Directory)
	if err := hc.EditMessage(text, kb); err != nil {
		hc.Handler.Logger.Error("Failed to render directory", zap.Error(err))
	}
	if hc.Message != nil {
		hc.Session.DirectoryMsgID = hc.Message.ID
	}
}

// HandleDirectoryTab switches the active tab; the page resets, the search
// query stays bound to the Recommended list only.
func HandleDirectoryTab(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	hc := common.NewHandlerContext(ctx, b, callback, h)

	arg, err := common.ParseArgFromCallback(callback.Data)
	if err != nil {
		hc.AnswerAlert(common.ErrorMessage(err))
		return
	}
	n, err := strconv.Atoi(arg)
	if err != nil {
		hc.AnswerAlert(common.ErrorMessage(common.ErrInvalidFormat))
		return
	}

	hc.Session.Lock()
	defer hc.Session.Unlock()

	hc.Session.Directory.SetActiveTab(directory.Tab(n))
	renderDirectory(hc)
	hc.Answer("")
}

// HandleDirectoryPage moves within the active filtered list.
func HandleDirectoryPage(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
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

	hc.Session.Directory.SetPage(page)
	renderDirectory(hc)
	hc.Answer("")
}

// HandleDirectorySearch puts the chat into search-input mode.
func HandleDirectorySearch(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	hc := common.NewHandlerContext(ctx, b, callback, h)

	hc.SetState(state.StateSearchTutors)
	hc.Answer("")
	hc.SendMessage("🔍 Send a name, subject or location to search for:", nil)
}

// HandleDirectoryClear drops the active query and restores the full list.
func HandleDirectoryClear(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	hc := common.NewHandlerContext(ctx, b, callback, h)

	hc.Session.Lock()
	defer hc.Session.Unlock()

	hc.Session.Searcher.Cancel()
	hc.Session.Directory.SetSearchResults("", nil)
	hc.ClearState()
	renderDirectory(hc)
	hc.Answer("Search cleared")
}

// HandleViewTutor shows one tutor profile. Profiles with a picture are
// sent as a photo message; the directory message stays behind it.
func HandleViewTutor(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
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

	text, kb := common.BuildTutorProfileScreen(tutor)

	if photoURL := h.Media.URL(tutor.ProfilePicture); photoURL != "" {
		hc.Answer("")
		if err := hc.SendPhoto(photoURL, text, kb); err != nil {
			h.Logger.Warn("Profile photo send failed, falling back to text",
				zap.String("tutor_id", tutor.ID),
				zap.Error(err))
			hc.EditMessage(text, kb)
		}
		return
	}

	if err := hc.EditMessage(text, kb); err != nil {
		h.Logger.Error("Failed to render tutor profile", zap.Error(err))
	}
	hc.Answer("")
}

// HandleBackToDirectory re-renders the directory screen.
func HandleBackToDirectory(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	hc := common.NewHandlerContext(ctx, b, callback, h)

	hc.Session.Lock()
	defer hc.Session.Unlock()

	renderDirectory(hc)
	hc.Answer("")
}

// HandleRequestAccept shows the accept confirmation. Nothing is written
// until the second tap.
func HandleRequestAccept(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	showRequestConfirm(ctx, b, callback, h, "accept")
}

// HandleRequestDecline shows the decline confirmation.
func HandleRequestDecline(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	showRequestConfirm(ctx, b, callback, h, "decline")
}

func showRequestConfirm(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler, action string) {
	hc := common.NewHandlerContext(ctx, b, callback, h)

	args, err := common.ParseArgsFromCallback(callback.Data, 2)
	if err != nil {
		hc.AnswerAlert(common.ErrorMessage(err))
		return
	}
	jobID, tutorID := args[0], args[1]

	hc.Session.Lock()
	defer hc.Session.Unlock()

	req, ok := hc.Session.Directory.FindRequest(jobID, tutorID)
	if !ok {
		hc.AnswerAlert(common.ErrorMessage(common.ErrRequestNotFound))
		return
	}

	text, kb := common.BuildConfirmScreen(action, req)
	if err := hc.EditMessage(text, kb); err != nil {
		h.Logger.Error("Failed to render confirm screen", zap.Error(err))
	}
	hc.Answer("")
}

// HandleRequestAcceptConfirm performs the remote accept and only then
// patches local state: the tutor moves to Upcoming and every applicant of
// the filled job leaves MyRequests.
func HandleRequestAcceptConfirm(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	hc := common.NewHandlerContext(ctx, b, callback, h)

	args, err := common.ParseArgsFromCallback(callback.Data, 2)
	if err != nil {
		hc.AnswerAlert(common.ErrorMessage(err))
		return
	}
	jobID, tutorID := args[0], args[1]

	hc.Session.Lock()
	defer hc.Session.Unlock()

	if err := h.DirectoryService.AcceptTutor(ctx, jobID, tutorID); err != nil {
		h.Logger.Error("Accept failed",
			zap.String("job_id", jobID),
			zap.String("tutor_id", tutorID),
			zap.Error(err))
		hc.AnswerAlert("❌ Could not accept right now, nothing was changed")
		return
	}

	hc.Session.Directory.ApplyAccept(jobID, tutorID)
	renderDirectory(hc)
	hc.Answer("✅ Tutor accepted")
}

// HandleRequestDeclineConfirm performs the remote decline and then drops
// only the declined tutor from the local list.
func HandleRequestDeclineConfirm(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	hc := common.NewHandlerContext(ctx, b, callback, h)

	args, err := common.ParseArgsFromCallback(callback.Data, 2)
	if err != nil {
		hc.AnswerAlert(common.ErrorMessage(err))
		return
	}
	jobID, tutorID := args[0], args[1]

	hc.Session.Lock()
	defer hc.Session.Unlock()

	if err := h.DirectoryService.DeclineTutor(ctx, jobID, tutorID); err != nil {
		h.Logger.Error("Decline failed",
			zap.String("job_id", jobID),
			zap.String("tutor_id", tutorID),
			zap.Error(err))
		hc.AnswerAlert("❌ Could not decline right now, nothing was changed")
		return
	}

	hc.Session.Directory.ApplyDecline(jobID, tutorID)
	renderDirectory(hc)
	hc.Answer("Application declined")
}
