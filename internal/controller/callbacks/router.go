package callbacks

import (
	"context"
	"strings"

	"github.com/Freeeeeet/tutorhub_bot/internal/controller/callbacks/callbacktypes"
	"github.com/Freeeeeet/tutorhub_bot/internal/controller/callbacks/common"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// ========================
// Callback Data Patterns
// ========================

// Directory callbacks
const (
	DirTab      = "dir_tab:"  // dir_tab:1
	DirPage     = "dir_page:" // dir_page:2
	DirSearch   = "dir_search"
	DirClear    = "dir_clear"
	ViewTutor   = "view_tutor:" // view_tutor:t-17
	BackToDir   = "back_to_dir"
	ReqAccept   = "req_accept:"      // req_accept:job-3:t-17
	ReqAcceptY  = "req_accept_yes:"  // req_accept_yes:job-3:t-17
	ReqDecline  = "req_decline:"     // req_decline:job-3:t-17
	ReqDeclineY = "req_decline_yes:" // req_decline_yes:job-3:t-17
	ReqCancel   = "req_cancel"
)

// Hire wizard callbacks
const (
	HireStart     = "hire_start:" // hire_start:t-17
	HireForm      = "hire_form"
	HireTitle     = "hire_title"
	HireRate      = "hire_rate"
	HireSubjects  = "hire_subjects"
	HireAddress   = "hire_address"
	HirePhone     = "hire_phone"
	HireLevelMenu = "hire_level_menu"
	HireLevel     = "hire_level:"      // hire_level:2
	HireDay       = "hire_day:"        // hire_day:0 (Monday)
	HireChildAdd  = "hire_child_add"
	HireChildEdit = "hire_child_edit:" // hire_child_edit:1
	HireChildRm   = "hire_child_rm:"   // hire_child_rm:1
	HireReview    = "hire_review"
	HireBack      = "hire_back"
	HireConfirm   = "hire_confirm"
	HireCancel    = "hire_cancel"
)

// History callbacks
const (
	HistPage   = "hist_page:"   // hist_page:2
	HistStatus = "hist_status:" // hist_status:pending
	HistMode   = "hist_mode"
	HistSearch = "hist_search"
	HistEdit   = "hist_edit:" // hist_edit:job-3
	EditTitle  = "edit_title"
	EditRate   = "edit_rate"
	EditStatus = "edit_status:" // edit_status:completed
	EditSave   = "edit_save"
	EditClose  = "edit_close"
)

// Route dispatches a callback query to its handler.
func Route(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	data := callback.Data

	switch {
	case data == "noop":
		common.AnswerCallback(ctx, b, callback.ID, "")

	// ===== Directory =====
	case strings.HasPrefix(data, DirTab):
		HandleDirectoryTab(ctx, b, callback, h)
	case strings.HasPrefix(data, DirPage):
		HandleDirectoryPage(ctx, b, callback, h)
	case data == DirSearch:
		HandleDirectorySearch(ctx, b, callback, h)
	case data == DirClear:
		HandleDirectoryClear(ctx, b, callback, h)
	case strings.HasPrefix(data, ViewTutor):
		HandleViewTutor(ctx, b, callback, h)
	case data == BackToDir:
		HandleBackToDirectory(ctx, b, callback, h)
	case strings.HasPrefix(data, ReqAcceptY):
		HandleRequestAcceptConfirm(ctx, b, callback, h)
	case strings.HasPrefix(data, ReqAccept):
		HandleRequestAccept(ctx, b, callback, h)
	case strings.HasPrefix(data, ReqDeclineY):
		HandleRequestDeclineConfirm(ctx, b, callback, h)
	case strings.HasPrefix(data, ReqDecline):
		HandleRequestDecline(ctx, b, callback, h)
	case data == ReqCancel:
		HandleBackToDirectory(ctx, b, callback, h)

	// ===== Hire wizard =====
	case strings.HasPrefix(data, HireStart):
		HandleHireStart(ctx, b, callback, h)
	case data == HireForm:
		HandleHireForm(ctx, b, callback, h)
	case data == HireTitle:
		HandleHireTextField(ctx, b, callback, h)
	case data == HireRate:
		HandleHireTextField(ctx, b, callback, h)
	case data == HireSubjects:
		HandleHireTextField(ctx, b, callback, h)
	case data == HireAddress:
		HandleHireTextField(ctx, b, callback, h)
	case data == HirePhone:
		HandleHireTextField(ctx, b, callback, h)
	case data == HireLevelMenu:
		HandleHireLevelMenu(ctx, b, callback, h)
	case strings.HasPrefix(data, HireLevel):
		HandleHireLevel(ctx, b, callback, h)
	case strings.HasPrefix(data, HireDay):
		HandleHireDay(ctx, b, callback, h)
	case data == HireChildAdd:
		HandleHireChildAdd(ctx, b, callback, h)
	case strings.HasPrefix(data, HireChildEdit):
		HandleHireChildEdit(ctx, b, callback, h)
	case strings.HasPrefix(data, HireChildRm):
		HandleHireChildRemove(ctx, b, callback, h)
	case data == HireReview:
		HandleHireReview(ctx, b, callback, h)
	case data == HireBack:
		HandleHireBack(ctx, b, callback, h)
	case data == HireConfirm:
		HandleHireConfirm(ctx, b, callback, h)
	case data == HireCancel:
		HandleHireCancel(ctx, b, callback, h)

	// ===== History =====
	case strings.HasPrefix(data, HistPage):
		HandleHistoryPage(ctx, b, callback, h)
	case strings.HasPrefix(data, HistStatus):
		HandleHistoryStatus(ctx, b, callback, h)
	case data == HistMode:
		HandleHistoryMode(ctx, b, callback, h)
	case data == HistSearch:
		HandleHistorySearch(ctx, b, callback, h)
	case strings.HasPrefix(data, HistEdit):
		HandleHistoryEdit(ctx, b, callback, h)
	case data == EditTitle:
		HandleEditTextField(ctx, b, callback, h)
	case data == EditRate:
		HandleEditTextField(ctx, b, callback, h)
	case strings.HasPrefix(data, EditStatus):
		HandleEditStatus(ctx, b, callback, h)
	case data == EditSave:
		HandleEditSave(ctx, b, callback, h)
	case data == EditClose:
		HandleEditClose(ctx, b, callback, h)

	default:
		common.AnswerCallback(ctx, b, callback.ID, "")
	}
}
