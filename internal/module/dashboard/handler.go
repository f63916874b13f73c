package dashboard

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/simp-lee/loanadmin/internal/derive"
	"github.com/simp-lee/loanadmin/internal/domain"
	"github.com/simp-lee/loanadmin/internal/pkg"
	"github.com/simp-lee/loanadmin/internal/session"
)

// activityLimit bounds each recent-activity list on the home screen.
const activityLimit = 5

// Gateway is the slice of the upstream client the dashboard uses.
type Gateway interface {
	Stats(ctx context.Context) (*domain.Stats, error)
	Activity(ctx context.Context, limit int) (*domain.Activity, error)
}

// loanActivityRow is one rendered recent-loan entry.
type loanActivityRow struct {
	Loan       *domain.ActivityLoan
	Status     string
	BadgeClass string
	Created    string
}

// dealerActivityRow is one rendered recent-dealer entry.
type dealerActivityRow struct {
	Dealer     *domain.ActivityDealer
	Status     string
	BadgeClass string
	Created    string
}

// performanceRow is one rendered monthly bucket of the loan series.
type performanceRow struct {
	Month    string
	Count    int
	Approved int
	Amount   string
}

// Handler renders the dashboard and serves its JSON endpoints.
type Handler struct {
	gw Gateway
}

// NewHandler creates a dashboard handler.
func NewHandler(gw Gateway) *Handler {
	return &Handler{gw: gw}
}

// Stats handles GET /api/v1/dashboard/stats.
func (h *Handler) Stats(c *gin.Context) {
	stats, err := h.gw.Stats(c.Request.Context())
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, stats)
}

// Activity handles GET /api/v1/dashboard/activity.
func (h *Handler) Activity(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(activityLimit)))
	if limit < 1 {
		limit = activityLimit
	}

	activity, err := h.gw.Activity(c.Request.Context(), limit)
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, activity)
}

// HomePage renders the dashboard. Stats and activity are fetched
// independently; a failure of one does not blank the other.
// GET /
func (h *Handler) HomePage(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	data := gin.H{}
	if sess, ok := session.FromContext(c.Request.Context()); ok {
		data["AccountName"] = sess.Name
	}

	stats, err := h.gw.Stats(ctx)
	if err != nil {
		data["StatsError"] = "Could not load stats"
	} else {
		data["Stats"] = stats
		data["TotalLoanAmount"] = "SAR " + derive.FormatAmount(stats.Loans.TotalAmount)
		if len(stats.Performance) > 0 {
			perf := make([]performanceRow, 0, len(stats.Performance))
			for _, p := range stats.Performance {
				perf = append(perf, performanceRow{
					Month:    monthLabel(p.Period.Year, p.Period.Month),
					Count:    p.Count,
					Approved: p.Approved,
					Amount:   "SAR " + derive.FormatAmount(p.Amount),
				})
			}
			data["Performance"] = perf
		}
	}

	activity, err := h.gw.Activity(ctx, activityLimit)
	if err != nil {
		data["ActivityError"] = "Could not load recent activity"
	} else {
		loans := make([]loanActivityRow, 0, len(activity.RecentLoans))
		for i := range activity.RecentLoans {
			l := &activity.RecentLoans[i]
			loans = append(loans, loanActivityRow{
				Loan:       l,
				Status:     derive.StatusLabel(l.Status),
				BadgeClass: derive.StatusBadgeClass(l.Status),
				Created:    derive.FormatShortDate(l.CreatedAt),
			})
		}
		dealers := make([]dealerActivityRow, 0, len(activity.RecentDealers))
		for i := range activity.RecentDealers {
			d := &activity.RecentDealers[i]
			dealers = append(dealers, dealerActivityRow{
				Dealer:     d,
				Status:     derive.StatusLabel(d.Status),
				BadgeClass: derive.DealerStatusBadgeClass(d.Status),
				Created:    derive.FormatShortDate(d.CreatedAt),
			})
		}
		data["RecentLoans"] = loans
		data["RecentDealers"] = dealers
	}

	c.HTML(http.StatusOK, "dashboard/home.html", data)
}

// monthLabel renders a performance bucket period as "Jan 2026". An
// out-of-range month falls back to the raw number.
func monthLabel(year, month int) string {
	if month < 1 || month > 12 {
		return strconv.Itoa(month) + "/" + strconv.Itoa(year)
	}
	return time.Month(month).String()[:3] + " " + strconv.Itoa(year)
}
