package users

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/simp-lee/loanadmin/internal/gateway"
	"github.com/simp-lee/loanadmin/internal/lifecycle"
	"github.com/simp-lee/loanadmin/internal/pkg"
)

// Handler handles REST API requests for the platform-user resource.
type Handler struct {
	gw Gateway
	lc *lifecycle.Controller
}

// NewHandler creates a user API handler.
func NewHandler(gw Gateway) *Handler {
	return &Handler{gw: gw, lc: newLifecycle(gw)}
}

// List handles GET /api/v1/users. Besides the common query parameters it
// accepts role and isActive filters.
func (h *Handler) List(c *gin.Context) {
	q := gateway.UserListQuery{
		ListQuery: pkg.ParseListQuery(c),
		Role:      strings.TrimSpace(c.Query("role")),
		IsActive:  strings.TrimSpace(c.Query("isActive")),
	}
	q.Status = ""

	result, err := h.gw.List(c.Request.Context(), q)
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.List(c, result)
}

// Get handles GET /api/v1/users/:id.
func (h *Handler) Get(c *gin.Context) {
	user, err := h.gw.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, user)
}

// Create handles POST /api/v1/users.
func (h *Handler) Create(c *gin.Context) {
	var req UserRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	user, err := h.gw.Create(c.Request.Context(), req.input())
	if err != nil {
		pkg.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, pkg.Response{
		Code:    http.StatusCreated,
		Message: "success",
		Data:    user,
	})
}

// Update handles PUT /api/v1/users/:id.
func (h *Handler) Update(c *gin.Context) {
	var req UserRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	user, err := h.gw.Update(c.Request.Context(), c.Param("id"), req.input())
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, user)
}

// Action handles POST /api/v1/users/:id/actions/:action. Users follow the
// simplified block/unblock/delete model driven by their isActive flag.
func (h *Handler) Action(c *gin.Context) {
	id := c.Param("id")
	action := lifecycle.Action(c.Param("action"))

	user, err := h.gw.Get(c.Request.Context(), id)
	if err != nil {
		pkg.Error(c, err)
		return
	}
	status := lifecycle.ActiveStatus(user.IsActive)

	if lifecycle.NeedsConfirm(lifecycle.KindUser, action) {
		token, err := h.lc.Begin(lifecycle.KindUser, action, id, status)
		if err != nil {
			pkg.Error(c, err)
			return
		}
		pkg.Success(c, gin.H{
			"token":          token,
			"requiresReason": lifecycle.NeedsReason(lifecycle.KindUser, action),
		})
		return
	}

	if err := h.lc.Execute(c.Request.Context(), lifecycle.KindUser, action, id, status); err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, nil)
}

// Confirm handles POST /api/v1/users/:id/actions/confirm.
func (h *Handler) Confirm(c *gin.Context) {
	var req ConfirmRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	if err := h.lc.Confirm(c.Request.Context(), req.Token, req.Reason); err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, nil)
}

// offered lists the lifecycle actions available for a user's active flag.
func offered(isActive bool) []lifecycle.Action {
	return lifecycle.Offered(lifecycle.KindUser, lifecycle.ActiveStatus(isActive))
}
