package dealers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/simp-lee/loanadmin/internal/lifecycle"
	"github.com/simp-lee/loanadmin/internal/pkg"
)

// Handler handles REST API requests for the dealer resource.
type Handler struct {
	gw Gateway
	lc *lifecycle.Controller
}

// NewHandler creates a dealer API handler.
func NewHandler(gw Gateway) *Handler {
	return &Handler{gw: gw, lc: newLifecycle(gw)}
}

// List handles GET /api/v1/dealers.
func (h *Handler) List(c *gin.Context) {
	result, err := h.gw.List(c.Request.Context(), pkg.ParseListQuery(c))
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.List(c, result)
}

// Get handles GET /api/v1/dealers/:id.
func (h *Handler) Get(c *gin.Context) {
	dealer, err := h.gw.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, dealer)
}

// Create handles POST /api/v1/dealers.
func (h *Handler) Create(c *gin.Context) {
	var req DealerRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	dealer, err := h.gw.Create(c.Request.Context(), req.input())
	if err != nil {
		pkg.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, pkg.Response{
		Code:    http.StatusCreated,
		Message: "success",
		Data:    dealer,
	})
}

// Update handles PUT /api/v1/dealers/:id.
func (h *Handler) Update(c *gin.Context) {
	var req DealerRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	dealer, err := h.gw.Update(c.Request.Context(), c.Param("id"), req.input())
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, dealer)
}

// Action handles POST /api/v1/dealers/:id/actions/:action.
//
// Ungated actions (approve, unblock, restore) execute immediately.
// Confirmation-gated actions (block, delete) return an intent token the
// client must present to Confirm; nothing is sent upstream until then.
func (h *Handler) Action(c *gin.Context) {
	id := c.Param("id")
	action := lifecycle.Action(c.Param("action"))

	dealer, err := h.gw.Get(c.Request.Context(), id)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	if lifecycle.NeedsConfirm(lifecycle.KindDealer, action) {
		token, err := h.lc.Begin(lifecycle.KindDealer, action, id, dealer.Status)
		if err != nil {
			pkg.Error(c, err)
			return
		}
		pkg.Success(c, gin.H{
			"token":          token,
			"requiresReason": lifecycle.NeedsReason(lifecycle.KindDealer, action),
		})
		return
	}

	if err := h.lc.Execute(c.Request.Context(), lifecycle.KindDealer, action, id, dealer.Status); err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, nil)
}

// Confirm handles POST /api/v1/dealers/:id/actions/confirm.
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

// offered lists the lifecycle actions available for a dealer's status.
func offered(status string) []lifecycle.Action {
	return lifecycle.Offered(lifecycle.KindDealer, status)
}
