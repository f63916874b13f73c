package loans

import (
	"github.com/gin-gonic/gin"

	"github.com/simp-lee/loanadmin/internal/pkg"
)

// Handler handles REST API requests for the bank-loan resource.
type Handler struct {
	gw Gateway
}

// NewHandler creates a loan API handler.
func NewHandler(gw Gateway) *Handler {
	return &Handler{gw: gw}
}

// List handles GET /api/v1/loans.
func (h *Handler) List(c *gin.Context) {
	result, err := h.gw.List(c.Request.Context(), pkg.ParseListQuery(c))
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.List(c, result)
}

// Get handles GET /api/v1/loans/:id.
func (h *Handler) Get(c *gin.Context) {
	loan, err := h.gw.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, loan)
}
