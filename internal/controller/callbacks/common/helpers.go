package common

import (
	"context"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// Helper functions shared by all callback handlers

// AnswerCallback answers a callback query without an alert.
func AnswerCallback(ctx context.Context, b *bot.Bot, callbackID string, text string) {
	b.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{
		CallbackQueryID: callbackID,
		Text:            text,
		ShowAlert:       false,
	})
}

// AnswerCallbackAlert answers a callback query with a popup alert.
func AnswerCallbackAlert(ctx context.Context, b *bot.Bot, callbackID string, text string) {
	b.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{
		CallbackQueryID: callbackID,
		Text:            text,
		ShowAlert:       true,
	})
}

// GetMessageFromCallback extracts the accessible message of a callback query.
func GetMessageFromCallback(callback *models.CallbackQuery) *models.Message {
	if callback.Message.Message != nil {
		return callback.Message.Message
	}
	return nil
}

// ParseArgFromCallback extracts the argument after the prefix.
// "view_tutor:t-17" -> "t-17"
func ParseArgFromCallback(data string) (string, error) {
	idx := strings.Index(data, ":")
	if idx < 0 || idx == len(data)-1 {
		return "", ErrInvalidFormat
	}
	return data[idx+1:], nil
}

// ParseArgsFromCallback splits everything after the prefix on ':'.
// "req_accept:job-3:t-17" -> ["job-3", "t-17"]
func ParseArgsFromCallback(data string, want int) ([]string, error) {
	parts := strings.Split(data, ":")
	if len(parts) != want+1 {
		return nil, ErrInvalidFormat
	}
	return parts[1:], nil
}

// IsMessageNotModifiedError reports whether err is Telegram's
// "message is not modified" response, which is safe to ignore.
func IsMessageNotModifiedError(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "message is not modified")
}
