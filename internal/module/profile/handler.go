package profile

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/simp-lee/loanadmin/internal/domain"
	"github.com/simp-lee/loanadmin/internal/gateway"
	"github.com/simp-lee/loanadmin/internal/middleware"
	"github.com/simp-lee/loanadmin/internal/pkg"
	"github.com/simp-lee/loanadmin/internal/session"
)

// Gateway is the slice of the upstream client the profile screen uses.
type Gateway interface {
	Me(ctx context.Context) (*domain.Account, error)
	UpdateProfile(ctx context.Context, update gateway.ProfileUpdate) (*domain.Account, error)
	UpdateNotifications(ctx context.Context, settings gateway.NotificationSettings) error
	UpdatePreferences(ctx context.Context, prefs gateway.GlobalPreferences) error
}

// Sessions refreshes the cached account snapshot after a profile change.
type Sessions interface {
	UpdateAccount(ctx context.Context, id string, account domain.Account) error
}

// Handler renders and updates the operator's own profile.
type Handler struct {
	gw       Gateway
	sessions Sessions
}

// NewHandler creates a profile handler.
func NewHandler(gw Gateway, sessions Sessions) *Handler {
	return &Handler{gw: gw, sessions: sessions}
}

// Me handles GET /api/v1/profile. It returns the live upstream account, not
// the session snapshot.
func (h *Handler) Me(c *gin.Context) {
	account, err := h.gw.Me(c.Request.Context())
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, account)
}

// Update handles PUT /api/v1/profile.
func (h *Handler) Update(c *gin.Context) {
	var req ProfileRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	account, err := h.gw.UpdateProfile(c.Request.Context(), gateway.ProfileUpdate{
		Name:   req.Name,
		Email:  req.Email,
		Phone:  req.Phone,
		Avatar: req.Avatar,
	})
	if err != nil {
		pkg.Error(c, err)
		return
	}

	h.refreshSession(c, account)
	pkg.Success(c, account)
}

// UpdateNotifications handles PUT /api/v1/profile/notifications.
func (h *Handler) UpdateNotifications(c *gin.Context) {
	var req NotificationsRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	err := h.gw.UpdateNotifications(c.Request.Context(), gateway.NotificationSettings{
		EmailAlerts:   req.EmailAlerts,
		SMSAlerts:     req.SMSAlerts,
		LoanUpdates:   req.LoanUpdates,
		DealerUpdates: req.DealerUpdates,
	})
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, nil)
}

// UpdatePreferences handles PUT /api/v1/profile/preferences.
func (h *Handler) UpdatePreferences(c *gin.Context) {
	var req PreferencesRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	err := h.gw.UpdatePreferences(c.Request.Context(), gateway.GlobalPreferences{
		Language: req.Language,
		Timezone: req.Timezone,
		Currency: req.Currency,
	})
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, nil)
}

// ProfilePage renders the profile screen.
// GET /profile
func (h *Handler) ProfilePage(c *gin.Context) {
	data := gin.H{"CSRFToken": middleware.GetCSRFToken(c)}

	account, err := h.gw.Me(c.Request.Context())
	if err != nil {
		// Fall back to the session snapshot so the screen still renders.
		if sess, ok := session.FromContext(c.Request.Context()); ok {
			acc := sess.Account()
			account = &acc
		} else {
			c.HTML(http.StatusInternalServerError, "errors/500.html", gin.H{})
			return
		}
		data["Error"] = "Showing cached profile, refresh to retry"
	}
	data["Account"] = account

	c.HTML(http.StatusOK, "profile/show.html", data)
}

// UpdateForm handles the profile edit form submission.
// POST /profile
func (h *Handler) UpdateForm(c *gin.Context) {
	var req ProfileRequest
	if err := c.ShouldBind(&req); err != nil {
		c.HTML(http.StatusOK, "profile/show.html", gin.H{
			"Form":      req,
			"Error":     "Please check the highlighted fields",
			"CSRFToken": middleware.GetCSRFToken(c),
		})
		return
	}

	account, err := h.gw.UpdateProfile(c.Request.Context(), gateway.ProfileUpdate{
		Name:   req.Name,
		Email:  req.Email,
		Phone:  req.Phone,
		Avatar: req.Avatar,
	})
	if err != nil {
		c.HTML(http.StatusOK, "profile/show.html", gin.H{
			"Form":      req,
			"Error":     pkg.SafeMessage(err, "Could not save the profile, please try again"),
			"CSRFToken": middleware.GetCSRFToken(c),
		})
		return
	}

	h.refreshSession(c, account)
	c.Redirect(http.StatusFound, "/profile")
}

// NotificationsForm handles the notification toggles form submission.
// POST /profile/notifications
func (h *Handler) NotificationsForm(c *gin.Context) {
	var req NotificationsRequest
	_ = c.ShouldBind(&req)

	_ = h.gw.UpdateNotifications(c.Request.Context(), gateway.NotificationSettings{
		EmailAlerts:   req.EmailAlerts,
		SMSAlerts:     req.SMSAlerts,
		LoanUpdates:   req.LoanUpdates,
		DealerUpdates: req.DealerUpdates,
	})
	c.Redirect(http.StatusFound, "/profile")
}

// PreferencesForm handles the display preferences form submission.
// POST /profile/preferences
func (h *Handler) PreferencesForm(c *gin.Context) {
	var req PreferencesRequest
	if err := c.ShouldBind(&req); err != nil {
		c.Redirect(http.StatusFound, "/profile")
		return
	}

	_ = h.gw.UpdatePreferences(c.Request.Context(), gateway.GlobalPreferences{
		Language: req.Language,
		Timezone: req.Timezone,
		Currency: req.Currency,
	})
	c.Redirect(http.StatusFound, "/profile")
}

// refreshSession rewrites the session's cached account snapshot so the nav
// bar and greeting pick up the change without a re-login.
func (h *Handler) refreshSession(c *gin.Context, account *domain.Account) {
	if account == nil {
		return
	}
	if sess, ok := session.FromContext(c.Request.Context()); ok {
		_ = h.sessions.UpdateAccount(c.Request.Context(), sess.ID, *account)
	}
}
