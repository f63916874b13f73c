package banks

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/simp-lee/loanadmin/internal/lifecycle"
	"github.com/simp-lee/loanadmin/internal/pkg"
)

// Handler handles REST API requests for the bank resource.
type Handler struct {
	gw Gateway
	lc *lifecycle.Controller
}

// NewHandler creates a bank API handler.
func NewHandler(gw Gateway) *Handler {
	return &Handler{gw: gw, lc: newLifecycle(gw)}
}

// List handles GET /api/v1/banks.
func (h *Handler) List(c *gin.Context) {
	result, err := h.gw.List(c.Request.Context(), pkg.ParseListQuery(c))
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.List(c, result)
}

// Get handles GET /api/v1/banks/:id.
func (h *Handler) Get(c *gin.Context) {
	bank, err := h.gw.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, bank)
}

// Create handles POST /api/v1/banks.
func (h *Handler) Create(c *gin.Context) {
	var req BankRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	bank, err := h.gw.Create(c.Request.Context(), req.input())
	if err != nil {
		pkg.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, pkg.Response{
		Code:    http.StatusCreated,
		Message: "success",
		Data:    bank,
	})
}

// Update handles PUT /api/v1/banks/:id.
func (h *Handler) Update(c *gin.Context) {
	var req BankRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	bank, err := h.gw.Update(c.Request.Context(), c.Param("id"), req.input())
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, bank)
}

// Action handles POST /api/v1/banks/:id/actions/:action.
//
// Block and delete are confirmation gated and return an intent token;
// unblock executes immediately. The record's current state is derived from
// its isActive flag.
func (h *Handler) Action(c *gin.Context) {
	id := c.Param("id")
	action := lifecycle.Action(c.Param("action"))

	bank, err := h.gw.Get(c.Request.Context(), id)
	if err != nil {
		pkg.Error(c, err)
		return
	}
	status := lifecycle.ActiveStatus(bank.IsActive)

	if lifecycle.NeedsConfirm(lifecycle.KindBank, action) {
		token, err := h.lc.Begin(lifecycle.KindBank, action, id, status)
		if err != nil {
			pkg.Error(c, err)
			return
		}
		pkg.Success(c, gin.H{
			"token":          token,
			"requiresReason": lifecycle.NeedsReason(lifecycle.KindBank, action),
		})
		return
	}

	if err := h.lc.Execute(c.Request.Context(), lifecycle.KindBank, action, id, status); err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, nil)
}

// Confirm handles POST /api/v1/banks/:id/actions/confirm.
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

// offered lists the lifecycle actions available for a bank's active flag.
func offered(isActive bool) []lifecycle.Action {
	return lifecycle.Offered(lifecycle.KindBank, lifecycle.ActiveStatus(isActive))
}
