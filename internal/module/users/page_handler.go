package users

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/simp-lee/loanadmin/internal/derive"
	"github.com/simp-lee/loanadmin/internal/domain"
	"github.com/simp-lee/loanadmin/internal/lifecycle"
	"github.com/simp-lee/loanadmin/internal/listctrl"
	"github.com/simp-lee/loanadmin/internal/middleware"
	"github.com/simp-lee/loanadmin/internal/pkg"
)

// statusTabs are the user list tabs, filtering on the active flag.
var statusTabs = []string{"", "active", "inactive"}

// roleOptions are the role filter choices, in display order.
var roleOptions = []string{
	domain.RoleAdmin,
	domain.RoleManager,
	domain.RoleSales,
	domain.RoleStaff,
	domain.RoleFinancialApproval,
	domain.RoleClient,
}

// userRow is one rendered list row with its derived display fields.
type userRow struct {
	User       *domain.User
	Role       string
	BadgeClass string
	Status     string
	LastLogin  string
	Created    string
	Actions    []lifecycle.Action
}

// PageHandler renders the user screens.
type PageHandler struct {
	gw Gateway
	lc *lifecycle.Controller
}

// NewPageHandler creates a user page handler sharing the API handler's
// lifecycle controller.
func NewPageHandler(gw Gateway, h *Handler) *PageHandler {
	return &PageHandler{gw: gw, lc: h.lc}
}

// ListPage renders the user list with active/inactive tabs and a role filter.
// GET /users
func (h *PageHandler) ListPage(c *gin.Context) {
	role := strings.TrimSpace(c.Query("role"))
	snap := pkg.FetchList(c, "users", listctrl.FetchFunc[domain.User](listFetch(h.gw, role)))

	data := gin.H{
		"Tabs":      statusTabs,
		"Roles":     roleOptions,
		"Role":      role,
		"Status":    snap.Query.Status,
		"Search":    snap.Query.Search,
		"CSRFToken": middleware.GetCSRFToken(c),
	}

	if snap.Phase == listctrl.PhaseError {
		data["Error"] = "Could not load users, please try again"
	}
	if snap.Result != nil {
		rows := make([]userRow, 0, len(snap.Result.Items))
		for i := range snap.Result.Items {
			u := &snap.Result.Items[i]
			rows = append(rows, userRow{
				User:       u,
				Role:       roleLabel(u.Role),
				BadgeClass: derive.StatusBadgeClass(lifecycle.ActiveStatus(u.IsActive)),
				Status:     derive.ActiveLabel(u.IsActive),
				LastLogin:  lastLogin(u),
				Created:    derive.FormatShortDate(u.CreatedAt),
				Actions:    offered(u.IsActive),
			})
		}
		data["Rows"] = rows
		data["Window"] = pkg.Window(snap.Result.Pagination)
	}

	c.HTML(http.StatusOK, "users/list.html", data)
}

// DetailPage renders one user with their offered lifecycle actions.
// GET /users/:id
func (h *PageHandler) DetailPage(c *gin.Context) {
	user, err := h.gw.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		renderGetError(c, err)
		return
	}

	c.HTML(http.StatusOK, "users/detail.html", gin.H{
		"User":       user,
		"Role":       roleLabel(user.Role),
		"BadgeClass": derive.StatusBadgeClass(lifecycle.ActiveStatus(user.IsActive)),
		"Status":     derive.ActiveLabel(user.IsActive),
		"LastLogin":  lastLogin(user),
		"Created":    derive.FormatDate(user.CreatedAt),
		"Actions":    offered(user.IsActive),
		"CSRFToken":  middleware.GetCSRFToken(c),
	})
}

// NewPage renders the create form.
// GET /users/new
func (h *PageHandler) NewPage(c *gin.Context) {
	c.HTML(http.StatusOK, "users/form.html", gin.H{
		"IsEdit":    false,
		"Roles":     roleOptions,
		"CSRFToken": middleware.GetCSRFToken(c),
	})
}

// CreateForm handles the create form submission.
// POST /users
func (h *PageHandler) CreateForm(c *gin.Context) {
	var req UserRequest
	if err := c.ShouldBind(&req); err != nil {
		c.HTML(http.StatusOK, "users/form.html", gin.H{
			"IsEdit":    false,
			"Roles":     roleOptions,
			"Form":      req,
			"Error":     "Please check the highlighted fields",
			"CSRFToken": middleware.GetCSRFToken(c),
		})
		return
	}

	user, err := h.gw.Create(c.Request.Context(), req.input())
	if err != nil {
		c.HTML(http.StatusOK, "users/form.html", gin.H{
			"IsEdit":    false,
			"Roles":     roleOptions,
			"Form":      req,
			"Error":     pkg.SafeMessage(err, "Could not create the user, please try again"),
			"CSRFToken": middleware.GetCSRFToken(c),
		})
		return
	}

	c.Redirect(http.StatusFound, "/users/"+user.ID)
}

// EditPage renders the edit form.
// GET /users/:id/edit
func (h *PageHandler) EditPage(c *gin.Context) {
	user, err := h.gw.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		renderGetError(c, err)
		return
	}

	c.HTML(http.StatusOK, "users/form.html", gin.H{
		"IsEdit":    true,
		"Roles":     roleOptions,
		"User":      user,
		"CSRFToken": middleware.GetCSRFToken(c),
	})
}

// UpdateForm handles the edit form submission.
// POST /users/:id
func (h *PageHandler) UpdateForm(c *gin.Context) {
	id := c.Param("id")

	var req UserRequest
	if err := c.ShouldBind(&req); err != nil {
		c.HTML(http.StatusOK, "users/form.html", gin.H{
			"IsEdit":    true,
			"Roles":     roleOptions,
			"Form":      req,
			"Error":     "Please check the highlighted fields",
			"CSRFToken": middleware.GetCSRFToken(c),
		})
		return
	}

	if _, err := h.gw.Update(c.Request.Context(), id, req.input()); err != nil {
		c.HTML(http.StatusOK, "users/form.html", gin.H{
			"IsEdit":    true,
			"Roles":     roleOptions,
			"Form":      req,
			"Error":     pkg.SafeMessage(err, "Could not save the user, please try again"),
			"CSRFToken": middleware.GetCSRFToken(c),
		})
		return
	}

	c.Redirect(http.StatusFound, "/users/"+id)
}

// ActionForm begins or executes a lifecycle action from the detail screen.
// POST /users/:id/actions/:action
func (h *PageHandler) ActionForm(c *gin.Context) {
	id := c.Param("id")
	action := lifecycle.Action(c.Param("action"))

	user, err := h.gw.Get(c.Request.Context(), id)
	if err != nil {
		renderGetError(c, err)
		return
	}
	status := lifecycle.ActiveStatus(user.IsActive)

	if lifecycle.NeedsConfirm(lifecycle.KindUser, action) {
		token, err := h.lc.Begin(lifecycle.KindUser, action, id, status)
		if err != nil {
			c.Redirect(http.StatusFound, "/users/"+id)
			return
		}
		c.HTML(http.StatusOK, "users/confirm.html", gin.H{
			"User":        user,
			"Action":      action,
			"Token":       token,
			"NeedsReason": lifecycle.NeedsReason(lifecycle.KindUser, action),
			"CSRFToken":   middleware.GetCSRFToken(c),
		})
		return
	}

	if err := h.lc.Execute(c.Request.Context(), lifecycle.KindUser, action, id, status); err != nil {
		c.Redirect(http.StatusFound, "/users/"+id)
		return
	}
	c.Redirect(http.StatusFound, "/users/"+id)
}

// ConfirmForm completes a confirmation-gated action.
// POST /users/:id/actions/:action/confirm
func (h *PageHandler) ConfirmForm(c *gin.Context) {
	id := c.Param("id")
	action := lifecycle.Action(c.Param("action"))

	var req ConfirmRequest
	if err := c.ShouldBind(&req); err != nil {
		c.Redirect(http.StatusFound, "/users/"+id)
		return
	}

	if err := h.lc.Confirm(c.Request.Context(), req.Token, req.Reason); err != nil {
		user, getErr := h.gw.Get(c.Request.Context(), id)
		if getErr != nil {
			renderGetError(c, getErr)
			return
		}
		c.HTML(http.StatusOK, "users/confirm.html", gin.H{
			"User":        user,
			"Action":      action,
			"Error":       pkg.SafeMessage(err, "Could not complete the action, please try again"),
			"NeedsReason": lifecycle.NeedsReason(lifecycle.KindUser, action),
			"CSRFToken":   middleware.GetCSRFToken(c),
		})
		return
	}

	if action == lifecycle.ActionDelete {
		c.Redirect(http.StatusFound, "/users")
		return
	}
	c.Redirect(http.StatusFound, "/users/"+id)
}

// renderGetError maps a fetch failure to the matching error screen.
func renderGetError(c *gin.Context, err error) {
	if domain.IsNotFound(err) {
		c.HTML(http.StatusNotFound, "errors/404.html", gin.H{})
		return
	}
	c.HTML(http.StatusInternalServerError, "errors/500.html", gin.H{})
}

// roleLabel renders a role slug for display ("financial-approval" ->
// "Financial approval").
func roleLabel(role string) string {
	return derive.Capitalize(strings.ReplaceAll(role, "-", " "))
}

// lastLogin renders the last-login timestamp, or a dash when the user has
// never signed in.
func lastLogin(u *domain.User) string {
	if u.LastLogin == nil {
		return derive.PlaceholderDash
	}
	return derive.FormatDateTime(*u.LastLogin)
}
