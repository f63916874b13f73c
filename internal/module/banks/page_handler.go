package banks

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/simp-lee/loanadmin/internal/derive"
	"github.com/simp-lee/loanadmin/internal/domain"
	"github.com/simp-lee/loanadmin/internal/lifecycle"
	"github.com/simp-lee/loanadmin/internal/listctrl"
	"github.com/simp-lee/loanadmin/internal/middleware"
	"github.com/simp-lee/loanadmin/internal/pkg"
)

// statusTabs are the bank list tabs. Banks carry no status field, so the
// tabs filter on the active flag.
var statusTabs = []string{"", "active", "inactive"}

// bankRow is one rendered list row with its derived display fields.
type bankRow struct {
	Bank       *domain.Bank
	Contact    string
	Rate       string
	BadgeClass string
	Status     string
	Created    string
	Actions    []lifecycle.Action
}

// PageHandler renders the bank screens.
type PageHandler struct {
	gw Gateway
	lc *lifecycle.Controller
}

// NewPageHandler creates a bank page handler sharing the API handler's
// lifecycle controller.
func NewPageHandler(gw Gateway, h *Handler) *PageHandler {
	return &PageHandler{gw: gw, lc: h.lc}
}

// ListPage renders the bank list with active/inactive tabs.
// GET /banks
func (h *PageHandler) ListPage(c *gin.Context) {
	snap := pkg.FetchList(c, "banks", listctrl.FetchFunc[domain.Bank](h.gw.List))

	data := gin.H{
		"Tabs":      statusTabs,
		"Status":    snap.Query.Status,
		"Search":    snap.Query.Search,
		"CSRFToken": middleware.GetCSRFToken(c),
	}

	if snap.Phase == listctrl.PhaseError {
		data["Error"] = "Could not load banks, please try again"
	}
	if snap.Result != nil {
		rows := make([]bankRow, 0, len(snap.Result.Items))
		for i := range snap.Result.Items {
			b := &snap.Result.Items[i]
			rows = append(rows, bankRow{
				Bank:       b,
				Contact:    contactLine(b),
				Rate:       rateLine(b),
				BadgeClass: derive.StatusBadgeClass(lifecycle.ActiveStatus(b.IsActive)),
				Status:     derive.ActiveLabel(b.IsActive),
				Created:    derive.FormatShortDate(b.CreatedAt),
				Actions:    offered(b.IsActive),
			})
		}
		data["Rows"] = rows
		data["Window"] = pkg.Window(snap.Result.Pagination)
	}

	c.HTML(http.StatusOK, "banks/list.html", data)
}

// DetailPage renders one bank with its offered lifecycle actions.
// GET /banks/:id
func (h *PageHandler) DetailPage(c *gin.Context) {
	bank, err := h.gw.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		renderGetError(c, err)
		return
	}

	c.HTML(http.StatusOK, "banks/detail.html", gin.H{
		"Bank":       bank,
		"Contact":    contactLine(bank),
		"Rate":       rateLine(bank),
		"BadgeClass": derive.StatusBadgeClass(lifecycle.ActiveStatus(bank.IsActive)),
		"Status":     derive.ActiveLabel(bank.IsActive),
		"Created":    derive.FormatDate(bank.CreatedAt),
		"Actions":    offered(bank.IsActive),
		"CSRFToken":  middleware.GetCSRFToken(c),
	})
}

// NewPage renders the create form.
// GET /banks/new
func (h *PageHandler) NewPage(c *gin.Context) {
	c.HTML(http.StatusOK, "banks/form.html", gin.H{
		"IsEdit":    false,
		"CSRFToken": middleware.GetCSRFToken(c),
	})
}

// CreateForm handles the create form submission.
// POST /banks
func (h *PageHandler) CreateForm(c *gin.Context) {
	var req BankRequest
	if err := c.ShouldBind(&req); err != nil {
		c.HTML(http.StatusOK, "banks/form.html", gin.H{
			"IsEdit":    false,
			"Form":      req,
			"Error":     "Please check the highlighted fields",
			"CSRFToken": middleware.GetCSRFToken(c),
		})
		return
	}

	bank, err := h.gw.Create(c.Request.Context(), req.input())
	if err != nil {
		c.HTML(http.StatusOK, "banks/form.html", gin.H{
			"IsEdit":    false,
			"Form":      req,
			"Error":     pkg.SafeMessage(err, "Could not create the bank, please try again"),
			"CSRFToken": middleware.GetCSRFToken(c),
		})
		return
	}

	c.Redirect(http.StatusFound, "/banks/"+bank.ID)
}

// EditPage renders the edit form.
// GET /banks/:id/edit
func (h *PageHandler) EditPage(c *gin.Context) {
	bank, err := h.gw.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		renderGetError(c, err)
		return
	}

	c.HTML(http.StatusOK, "banks/form.html", gin.H{
		"IsEdit":    true,
		"Bank":      bank,
		"CSRFToken": middleware.GetCSRFToken(c),
	})
}

// UpdateForm handles the edit form submission.
// POST /banks/:id
func (h *PageHandler) UpdateForm(c *gin.Context) {
	id := c.Param("id")

	var req BankRequest
	if err := c.ShouldBind(&req); err != nil {
		c.HTML(http.StatusOK, "banks/form.html", gin.H{
			"IsEdit":    true,
			"Form":      req,
			"Error":     "Please check the highlighted fields",
			"CSRFToken": middleware.GetCSRFToken(c),
		})
		return
	}

	if _, err := h.gw.Update(c.Request.Context(), id, req.input()); err != nil {
		c.HTML(http.StatusOK, "banks/form.html", gin.H{
			"IsEdit":    true,
			"Form":      req,
			"Error":     pkg.SafeMessage(err, "Could not save the bank, please try again"),
			"CSRFToken": middleware.GetCSRFToken(c),
		})
		return
	}

	c.Redirect(http.StatusFound, "/banks/"+id)
}

// ActionForm begins or executes a lifecycle action from the detail screen.
// POST /banks/:id/actions/:action
func (h *PageHandler) ActionForm(c *gin.Context) {
	id := c.Param("id")
	action := lifecycle.Action(c.Param("action"))

	bank, err := h.gw.Get(c.Request.Context(), id)
	if err != nil {
		renderGetError(c, err)
		return
	}
	status := lifecycle.ActiveStatus(bank.IsActive)

	if lifecycle.NeedsConfirm(lifecycle.KindBank, action) {
		token, err := h.lc.Begin(lifecycle.KindBank, action, id, status)
		if err != nil {
			c.Redirect(http.StatusFound, "/banks/"+id)
			return
		}
		c.HTML(http.StatusOK, "banks/confirm.html", gin.H{
			"Bank":        bank,
			"Action":      action,
			"Token":       token,
			"NeedsReason": lifecycle.NeedsReason(lifecycle.KindBank, action),
			"CSRFToken":   middleware.GetCSRFToken(c),
		})
		return
	}

	if err := h.lc.Execute(c.Request.Context(), lifecycle.KindBank, action, id, status); err != nil {
		c.Redirect(http.StatusFound, "/banks/"+id)
		return
	}
	c.Redirect(http.StatusFound, "/banks/"+id)
}

// ConfirmForm completes a confirmation-gated action.
// POST /banks/:id/actions/:action/confirm
func (h *PageHandler) ConfirmForm(c *gin.Context) {
	id := c.Param("id")
	action := lifecycle.Action(c.Param("action"))

	var req ConfirmRequest
	if err := c.ShouldBind(&req); err != nil {
		c.Redirect(http.StatusFound, "/banks/"+id)
		return
	}

	if err := h.lc.Confirm(c.Request.Context(), req.Token, req.Reason); err != nil {
		bank, getErr := h.gw.Get(c.Request.Context(), id)
		if getErr != nil {
			renderGetError(c, getErr)
			return
		}
		c.HTML(http.StatusOK, "banks/confirm.html", gin.H{
			"Bank":        bank,
			"Action":      action,
			"Error":       pkg.SafeMessage(err, "Could not complete the action, please try again"),
			"NeedsReason": lifecycle.NeedsReason(lifecycle.KindBank, action),
			"CSRFToken":   middleware.GetCSRFToken(c),
		})
		return
	}

	if action == lifecycle.ActionDelete {
		c.Redirect(http.StatusFound, "/banks")
		return
	}
	c.Redirect(http.StatusFound, "/banks/"+id)
}

// renderGetError maps a fetch failure to the matching error screen.
func renderGetError(c *gin.Context, err error) {
	if domain.IsNotFound(err) {
		c.HTML(http.StatusNotFound, "errors/404.html", gin.H{})
		return
	}
	c.HTML(http.StatusInternalServerError, "errors/500.html", gin.H{})
}

// contactLine flattens the optional contact person for the list row.
func contactLine(b *domain.Bank) string {
	if b.ContactPerson == nil {
		return "N/A"
	}
	switch {
	case b.ContactPerson.Name != "":
		return b.ContactPerson.Name
	case b.ContactPerson.Email != "":
		return b.ContactPerson.Email
	case b.ContactPerson.Phone != "":
		return b.ContactPerson.Phone
	}
	return "N/A"
}

// rateLine renders the advertised interest rate, if any.
func rateLine(b *domain.Bank) string {
	if b.LoanTerms == nil || b.LoanTerms.InterestRate == 0 {
		return "N/A"
	}
	return strconv.FormatFloat(b.LoanTerms.InterestRate, 'f', 2, 64) + "%"
}
