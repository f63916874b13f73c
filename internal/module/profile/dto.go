package profile

// ProfileRequest is the account profile edit form.
type ProfileRequest struct {
	Name   string `json:"name" form:"name" binding:"required,min=2,max=100"`
	Email  string `json:"email" form:"email" binding:"required,email"`
	Phone  string `json:"phone" form:"phone" binding:"omitempty,min=9,max=16"`
	Avatar string `json:"avatar" form:"avatar" binding:"omitempty,url"`
}

// NotificationsRequest is the notification toggles form. Checkboxes bind to
// false when absent.
type NotificationsRequest struct {
	EmailAlerts   bool `json:"emailAlerts" form:"emailAlerts"`
	SMSAlerts     bool `json:"smsAlerts" form:"smsAlerts"`
	LoanUpdates   bool `json:"loanUpdates" form:"loanUpdates"`
	DealerUpdates bool `json:"dealerUpdates" form:"dealerUpdates"`
}

// PreferencesRequest is the display preferences form.
type PreferencesRequest struct {
	Language string `json:"language" form:"language" binding:"omitempty,max=10"`
	Timezone string `json:"timezone" form:"timezone" binding:"omitempty,max=64"`
	Currency string `json:"currency" form:"currency" binding:"omitempty,len=3"`
}
