package gateway

import (
	"context"
	"net/http"
)

// ProfileService covers the operator preference endpoints that live beside
// the account profile.
type ProfileService struct {
	c *Client
}

// NotificationSettings is the per-operator notification toggle set.
type NotificationSettings struct {
	EmailAlerts   bool `json:"emailAlerts"`
	SMSAlerts     bool `json:"smsAlerts"`
	LoanUpdates   bool `json:"loanUpdates"`
	DealerUpdates bool `json:"dealerUpdates"`
}

// GlobalPreferences is the per-operator display preference set.
type GlobalPreferences struct {
	Language string `json:"language,omitempty"`
	Timezone string `json:"timezone,omitempty"`
	Currency string `json:"currency,omitempty"`
}

// UpdateNotifications saves the operator's notification toggles.
func (s *ProfileService) UpdateNotifications(ctx context.Context, settings NotificationSettings) error {
	return s.c.do(ctx, http.MethodPut, "/super-admin/profile/notification-settings", nil, settings, nil)
}

// UpdatePreferences saves the operator's display preferences.
func (s *ProfileService) UpdatePreferences(ctx context.Context, prefs GlobalPreferences) error {
	return s.c.do(ctx, http.MethodPut, "/super-admin/profile/global-preferences", nil, prefs, nil)
}
