package dealers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/simp-lee/loanadmin/internal/derive"
	"github.com/simp-lee/loanadmin/internal/domain"
	"github.com/simp-lee/loanadmin/internal/lifecycle"
	"github.com/simp-lee/loanadmin/internal/listctrl"
	"github.com/simp-lee/loanadmin/internal/middleware"
	"github.com/simp-lee/loanadmin/internal/pkg"
)

// statusTabs are the dealer list tabs, in display order. The empty status is
// the "All" tab.
var statusTabs = []string{
	"",
	domain.DealerStatusPending,
	domain.DealerStatusActive,
	domain.DealerStatusBlocked,
	domain.DealerStatusDeleted,
}

// dealerRow is one rendered list row with its derived display fields.
type dealerRow struct {
	Dealer     *domain.Dealer
	Phone      string
	Country    string
	BadgeClass string
	Status     string
	Created    string
	Actions    []lifecycle.Action
}

// PageHandler renders the dealer screens.
type PageHandler struct {
	gw Gateway
	lc *lifecycle.Controller
}

// NewPageHandler creates a dealer page handler. It shares the lifecycle
// controller with the API handler so confirmation intents work across both.
func NewPageHandler(gw Gateway, h *Handler) *PageHandler {
	return &PageHandler{gw: gw, lc: h.lc}
}

// ListPage renders the dealer list with status tabs, search, and pagination.
// GET /dealers
func (h *PageHandler) ListPage(c *gin.Context) {
	snap := pkg.FetchList(c, "dealers", listctrl.FetchFunc[domain.Dealer](h.gw.List))

	data := gin.H{
		"Tabs":      statusTabs,
		"Status":    snap.Query.Status,
		"Search":    snap.Query.Search,
		"CSRFToken": middleware.GetCSRFToken(c),
	}

	if snap.Phase == listctrl.PhaseError {
		data["Error"] = "Could not load dealers, please try again"
	}
	if snap.Result != nil {
		rows := make([]dealerRow, 0, len(snap.Result.Items))
		for i := range snap.Result.Items {
			d := &snap.Result.Items[i]
			rows = append(rows, dealerRow{
				Dealer:     d,
				Phone:      derive.DealerPhone(d),
				Country:    derive.DealerCountry(d),
				BadgeClass: derive.DealerStatusBadgeClass(d.Status),
				Status:     derive.StatusLabel(d.Status),
				Created:    derive.FormatShortDate(d.CreatedAt),
				Actions:    offered(d.Status),
			})
		}
		data["Rows"] = rows
		data["Window"] = pkg.Window(snap.Result.Pagination)
	}

	c.HTML(http.StatusOK, "dealers/list.html", data)
}

// DetailPage renders one dealer with its offered lifecycle actions.
// GET /dealers/:id
func (h *PageHandler) DetailPage(c *gin.Context) {
	dealer, err := h.gw.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		renderGetError(c, err)
		return
	}

	c.HTML(http.StatusOK, "dealers/detail.html", gin.H{
		"Dealer":     dealer,
		"Phone":      derive.DealerPhone(dealer),
		"Country":    derive.DealerCountry(dealer),
		"BadgeClass": derive.DealerStatusBadgeClass(dealer.Status),
		"Status":     derive.StatusLabel(dealer.Status),
		"Created":    derive.FormatDate(dealer.CreatedAt),
		"Actions":    offered(dealer.Status),
		"CSRFToken":  middleware.GetCSRFToken(c),
	})
}

// NewPage renders the create form.
// GET /dealers/new
func (h *PageHandler) NewPage(c *gin.Context) {
	c.HTML(http.StatusOK, "dealers/form.html", gin.H{
		"IsEdit":    false,
		"CSRFToken": middleware.GetCSRFToken(c),
	})
}

// CreateForm handles the create form submission.
// POST /dealers
func (h *PageHandler) CreateForm(c *gin.Context) {
	var req DealerRequest
	if err := c.ShouldBind(&req); err != nil {
		c.HTML(http.StatusOK, "dealers/form.html", gin.H{
			"IsEdit":    false,
			"Form":      req,
			"Error":     "Please check the highlighted fields",
			"CSRFToken": middleware.GetCSRFToken(c),
		})
		return
	}

	dealer, err := h.gw.Create(c.Request.Context(), req.input())
	if err != nil {
		c.HTML(http.StatusOK, "dealers/form.html", gin.H{
			"IsEdit":    false,
			"Form":      req,
			"Error":     pageErrorMessage(err, "Could not create the dealer, please try again"),
			"CSRFToken": middleware.GetCSRFToken(c),
		})
		return
	}

	c.Redirect(http.StatusFound, "/dealers/"+dealer.ID)
}

// EditPage renders the edit form.
// GET /dealers/:id/edit
func (h *PageHandler) EditPage(c *gin.Context) {
	dealer, err := h.gw.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		renderGetError(c, err)
		return
	}

	c.HTML(http.StatusOK, "dealers/form.html", gin.H{
		"IsEdit":    true,
		"Dealer":    dealer,
		"CSRFToken": middleware.GetCSRFToken(c),
	})
}

// UpdateForm handles the edit form submission.
// POST /dealers/:id
func (h *PageHandler) UpdateForm(c *gin.Context) {
	id := c.Param("id")

	var req DealerRequest
	if err := c.ShouldBind(&req); err != nil {
		c.HTML(http.StatusOK, "dealers/form.html", gin.H{
			"IsEdit":    true,
			"Form":      req,
			"Error":     "Please check the highlighted fields",
			"CSRFToken": middleware.GetCSRFToken(c),
		})
		return
	}

	if _, err := h.gw.Update(c.Request.Context(), id, req.input()); err != nil {
		c.HTML(http.StatusOK, "dealers/form.html", gin.H{
			"IsEdit":    true,
			"Form":      req,
			"Error":     pageErrorMessage(err, "Could not save the dealer, please try again"),
			"CSRFToken": middleware.GetCSRFToken(c),
		})
		return
	}

	c.Redirect(http.StatusFound, "/dealers/"+id)
}

// ActionForm begins or executes a lifecycle action from the detail screen.
// Confirmation-gated actions render the confirm screen; ungated actions
// execute and return to the detail page.
// POST /dealers/:id/actions/:action
func (h *PageHandler) ActionForm(c *gin.Context) {
	id := c.Param("id")
	action := lifecycle.Action(c.Param("action"))

	dealer, err := h.gw.Get(c.Request.Context(), id)
	if err != nil {
		renderGetError(c, err)
		return
	}

	if lifecycle.NeedsConfirm(lifecycle.KindDealer, action) {
		token, err := h.lc.Begin(lifecycle.KindDealer, action, id, dealer.Status)
		if err != nil {
			h.redirectWithError(c, id)
			return
		}
		c.HTML(http.StatusOK, "dealers/confirm.html", gin.H{
			"Dealer":      dealer,
			"Action":      action,
			"Token":       token,
			"NeedsReason": lifecycle.NeedsReason(lifecycle.KindDealer, action),
			"CSRFToken":   middleware.GetCSRFToken(c),
		})
		return
	}

	if err := h.lc.Execute(c.Request.Context(), lifecycle.KindDealer, action, id, dealer.Status); err != nil {
		h.redirectWithError(c, id)
		return
	}
	c.Redirect(http.StatusFound, "/dealers/"+id)
}

// ConfirmForm completes a confirmation-gated action.
// POST /dealers/:id/actions/:action/confirm
func (h *PageHandler) ConfirmForm(c *gin.Context) {
	id := c.Param("id")

	var req ConfirmRequest
	if err := c.ShouldBind(&req); err != nil {
		h.redirectWithError(c, id)
		return
	}

	if err := h.lc.Confirm(c.Request.Context(), req.Token, req.Reason); err != nil {
		dealer, getErr := h.gw.Get(c.Request.Context(), id)
		if getErr != nil {
			renderGetError(c, getErr)
			return
		}
		c.HTML(http.StatusOK, "dealers/confirm.html", gin.H{
			"Dealer":      dealer,
			"Action":      lifecycle.Action(c.Param("action")),
			"Error":       pageErrorMessage(err, "Could not complete the action, please try again"),
			"CSRFToken":   middleware.GetCSRFToken(c),
			"NeedsReason": lifecycle.NeedsReason(lifecycle.KindDealer, lifecycle.Action(c.Param("action"))),
		})
		return
	}

	deleted := lifecycle.Action(c.Param("action")) == lifecycle.ActionDelete
	if deleted {
		c.Redirect(http.StatusFound, "/dealers")
		return
	}
	c.Redirect(http.StatusFound, "/dealers/"+id)
}

func (h *PageHandler) redirectWithError(c *gin.Context, id string) {
	c.Redirect(http.StatusFound, "/dealers/"+id)
}

// renderGetError maps a fetch failure to the matching error screen.
func renderGetError(c *gin.Context, err error) {
	if domain.IsNotFound(err) {
		c.HTML(http.StatusNotFound, "errors/404.html", gin.H{})
		return
	}
	c.HTML(http.StatusInternalServerError, "errors/500.html", gin.H{})
}

// pageErrorMessage surfaces backend validation messages and hides the rest.
func pageErrorMessage(err error, fallback string) string {
	return pkg.SafeMessage(err, fallback)
}
