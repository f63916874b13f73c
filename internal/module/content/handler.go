package content

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/simp-lee/loanadmin/internal/lifecycle"
	"github.com/simp-lee/loanadmin/internal/pkg"
)

// Handler handles REST API requests for car types and FAQ entries.
type Handler struct {
	gw Gateway
	lc *lifecycle.Controller
}

// NewHandler creates a content API handler.
func NewHandler(gw Gateway) *Handler {
	return &Handler{gw: gw, lc: newLifecycle(gw)}
}

// ListCarTypes handles GET /api/v1/car-types.
func (h *Handler) ListCarTypes(c *gin.Context) {
	items, err := h.gw.ListCarTypes(c.Request.Context())
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, gin.H{"carTypes": items})
}

// CreateCarType handles POST /api/v1/car-types.
func (h *Handler) CreateCarType(c *gin.Context) {
	var req CarTypeRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	ct, err := h.gw.CreateCarType(c.Request.Context(), req.input())
	if err != nil {
		pkg.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, pkg.Response{
		Code:    http.StatusCreated,
		Message: "success",
		Data:    ct,
	})
}

// UpdateCarType handles PUT /api/v1/car-types/:id.
func (h *Handler) UpdateCarType(c *gin.Context) {
	var req CarTypeRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	ct, err := h.gw.UpdateCarType(c.Request.Context(), c.Param("id"), req.input())
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, ct)
}

// DeleteCarType handles POST /api/v1/car-types/:id/actions/delete.
// Content deletes are confirmation gated like every other destructive
// action; the DELETE verb itself is never exposed directly.
func (h *Handler) DeleteCarType(c *gin.Context) {
	ct, err := getCarType(c.Request.Context(), h.gw, c.Param("id"))
	if err != nil {
		pkg.Error(c, err)
		return
	}

	token, err := h.lc.Begin(lifecycle.KindCarType, lifecycle.ActionDelete, ct.ID, lifecycle.ActiveStatus(ct.IsActive))
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, gin.H{"token": token, "requiresReason": false})
}

// ListFAQs handles GET /api/v1/faqs.
func (h *Handler) ListFAQs(c *gin.Context) {
	items, err := h.gw.ListFAQs(c.Request.Context())
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, gin.H{"faqs": items})
}

// CreateFAQ handles POST /api/v1/faqs.
func (h *Handler) CreateFAQ(c *gin.Context) {
	var req FAQRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	faq, err := h.gw.CreateFAQ(c.Request.Context(), req.input())
	if err != nil {
		pkg.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, pkg.Response{
		Code:    http.StatusCreated,
		Message: "success",
		Data:    faq,
	})
}

// UpdateFAQ handles PUT /api/v1/faqs/:id.
func (h *Handler) UpdateFAQ(c *gin.Context) {
	var req FAQRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	faq, err := h.gw.UpdateFAQ(c.Request.Context(), c.Param("id"), req.input())
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, faq)
}

// DeleteFAQ handles POST /api/v1/faqs/:id/actions/delete.
func (h *Handler) DeleteFAQ(c *gin.Context) {
	faq, err := getFAQ(c.Request.Context(), h.gw, c.Param("id"))
	if err != nil {
		pkg.Error(c, err)
		return
	}

	token, err := h.lc.Begin(lifecycle.KindFAQ, lifecycle.ActionDelete, faq.ID, lifecycle.ActiveStatus(faq.IsActive))
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, gin.H{"token": token, "requiresReason": false})
}

// Confirm handles POST /api/v1/content/actions/confirm. The intent token
// carries the kind and record, so car types and FAQs share one endpoint.
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
