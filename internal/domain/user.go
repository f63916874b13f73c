package domain

import "time"

// Platform user roles.
const (
	RoleAdmin             = "admin"
	RoleManager           = "manager"
	RoleSales             = "sales"
	RoleStaff             = "staff"
	RoleFinancialApproval = "financial-approval"
	RoleClient            = "client"
)

// NotificationSettings are a user's per-category notification toggles.
type NotificationSettings struct {
	NewRequests        bool `json:"newRequests"`
	Reminders          bool `json:"reminders"`
	PolicyAndCommunity bool `json:"policyAndCommunity"`
	AccountSupport     bool `json:"accountSupport"`
}

// GlobalPreferences are a user's locale preferences.
type GlobalPreferences struct {
	Language string `json:"language"`
	Currency string `json:"currency"`
	Timezone string `json:"timezone"`
	Country  string `json:"country"`
}

// User is a platform user managed through the Users screen. Users have no
// status field; the list tabs filter on IsActive.
type User struct {
	ID                   string                `json:"_id"`
	Name                 string                `json:"name"`
	Email                string                `json:"email"`
	Phone                string                `json:"phone"`
	PhoneCountryCode     string                `json:"phoneCountryCode,omitempty"`
	Avatar               string                `json:"avatar,omitempty"`
	Role                 string                `json:"role"`
	Position             string                `json:"position,omitempty"`
	IsActive             bool                  `json:"isActive"`
	LastLogin            *time.Time            `json:"lastLogin,omitempty"`
	NationalID           string                `json:"nationalId,omitempty"`
	NotificationSettings *NotificationSettings `json:"notificationSettings,omitempty"`
	GlobalPreferences    *GlobalPreferences    `json:"globalPreferences,omitempty"`
	Timestamps
}
