package model

import "time"

// Parent is the authenticated actor of the dashboard. Hire requests are
// embedded under the parent document in the store, keyed by request id.
type Parent struct {
	ID           string    `json:"id"`
	TelegramID   int64     `json:"telegramId"`
	Username     string    `json:"username"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	LanguageCode string    `json:"languageCode"`
	CreatedAt    time.Time `json:"createdAt"`
}

// DisplayName returns the name shown in screens.
func (p *Parent) DisplayName() string {
	if p.LastName != "" {
		return p.FirstName + " " + p.LastName
	}
	return p.FirstName
}
