package loans

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/simp-lee/loanadmin/internal/derive"
	"github.com/simp-lee/loanadmin/internal/domain"
	"github.com/simp-lee/loanadmin/internal/listctrl"
	"github.com/simp-lee/loanadmin/internal/pkg"
)

// statusTabs are the loan list tabs, in display order. The status is
// backend-owned; the portal only filters on it.
var statusTabs = []string{
	"",
	domain.LoanStatusPending,
	domain.LoanStatusApproved,
	domain.LoanStatusRejected,
	domain.LoanStatusClosed,
	domain.LoanStatusCancelled,
}

// loanCard is one rendered list card. Every display field comes from the
// derive fallback chain, never from the raw record.
type loanCard struct {
	Loan       *domain.Loan
	Title      string
	Customer   string
	Dealership string
	Bank       string
	Amount     string
	BadgeClass string
	Status     string
	Applied    string
	TimeLeft   string
}

// phaseView is one phase row of the detail timeline.
type phaseView struct {
	Type     string
	Label    string
	Status   string
	Started  string
	Deadline string
	TimeLeft string
	Current  bool
}

// PageHandler renders the read-only loan screens.
type PageHandler struct {
	gw Gateway

	// now is swapped in tests to pin countdown output.
	now func() time.Time
}

// NewPageHandler creates a loan page handler.
func NewPageHandler(gw Gateway) *PageHandler {
	return &PageHandler{gw: gw, now: time.Now}
}

// ListPage renders the loan list with status tabs, search, and pagination.
// GET /loans
func (h *PageHandler) ListPage(c *gin.Context) {
	snap := pkg.FetchList(c, "loans", listctrl.FetchFunc[domain.Loan](h.gw.List))

	data := gin.H{
		"Tabs":   statusTabs,
		"Status": snap.Query.Status,
		"Search": snap.Query.Search,
	}

	if snap.Phase == listctrl.PhaseError {
		data["Error"] = "Could not load loans, please try again"
	}
	if snap.Result != nil {
		now := h.now()
		cards := make([]loanCard, 0, len(snap.Result.Items))
		for i := range snap.Result.Items {
			l := &snap.Result.Items[i]
			cards = append(cards, loanCard{
				Loan:       l,
				Title:      derive.VehicleTitle(l),
				Customer:   derive.CustomerName(l),
				Dealership: derive.DealershipName(l),
				Bank:       derive.BankName(l),
				Amount:     derive.LoanAmountLabel(l),
				BadgeClass: derive.StatusBadgeClass(l.Status),
				Status:     derive.StatusLabel(l.Status),
				Applied:    derive.FormatShortDate(l.ApplicationDate),
				TimeLeft:   currentTimeLeft(l, now),
			})
		}
		data["Cards"] = cards
		data["Window"] = pkg.Window(snap.Result.Pagination)
	}

	c.HTML(http.StatusOK, "loans/list.html", data)
}

// DetailPage renders one loan with its full phase timeline.
// GET /loans/:id
func (h *PageHandler) DetailPage(c *gin.Context) {
	loan, err := h.gw.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if domain.IsNotFound(err) {
			c.HTML(http.StatusNotFound, "errors/404.html", gin.H{})
			return
		}
		c.HTML(http.StatusInternalServerError, "errors/500.html", gin.H{})
		return
	}

	now := h.now()
	phases := make([]phaseView, 0, len(loan.Phases))
	for i := range loan.Phases {
		p := &loan.Phases[i]
		var started, deadline string
		if p.StartedAt != nil {
			started = derive.FormatDateTime(*p.StartedAt)
		}
		if p.Deadline != nil {
			deadline = derive.FormatDateTime(*p.Deadline)
		}
		phases = append(phases, phaseView{
			Type:     p.Type,
			Label:    phaseLabel(p.Type),
			Status:   derive.StatusLabel(p.Status),
			Started:  started,
			Deadline: deadline,
			TimeLeft: derive.TimeLeft(p.Deadline, now),
			Current:  p.Type == loan.CurrentPhaseType,
		})
	}

	c.HTML(http.StatusOK, "loans/detail.html", gin.H{
		"Loan":       loan,
		"Title":      derive.VehicleTitle(loan),
		"Customer":   derive.CustomerName(loan),
		"Dealership": derive.DealershipName(loan),
		"Bank":       derive.BankName(loan),
		"Amount":     derive.LoanAmountLabel(loan),
		"BadgeClass": derive.StatusBadgeClass(loan.Status),
		"Status":     derive.StatusLabel(loan.Status),
		"Applied":    derive.FormatDate(loan.ApplicationDate),
		"Phases":     phases,
	})
}

// currentTimeLeft renders the countdown of the loan's current phase, or the
// empty string when the loan has no current phase with a deadline. The list
// card hides the countdown chip in that case.
func currentTimeLeft(l *domain.Loan, now time.Time) string {
	if l.CurrentPhaseType == "" {
		return ""
	}
	p := l.PhaseByType(l.CurrentPhaseType)
	if p == nil || p.Deadline == nil {
		return ""
	}
	return derive.TimeLeft(p.Deadline, now)
}

// phaseLabel renders a phase type slug for display ("bank_offers" ->
// "Bank offers").
func phaseLabel(phaseType string) string {
	return derive.Capitalize(strings.ReplaceAll(phaseType, "_", " "))
}
