package pkg

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/simp-lee/loanadmin/internal/domain"
)

const (
	defaultPage     = 1
	defaultPageSize = domain.DefaultPageSize
	maxPageSize     = 100

	// maxVisiblePages is the width of the page-number window rendered by the
	// pagination control.
	maxVisiblePages = 5
)

// ParseListQuery extracts the status filter, search text, and page position
// from query parameters. Page defaults to 1, limit to the standard page size
// clamped to maxPageSize.
func ParseListQuery(c *gin.Context) domain.ListQuery {
	page, _ := strconv.Atoi(c.DefaultQuery("page", strconv.Itoa(defaultPage)))
	if page < 1 {
		page = defaultPage
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultPageSize)))
	if limit < 1 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}

	return domain.ListQuery{
		Status: strings.TrimSpace(c.Query("status")),
		Search: strings.TrimSpace(c.Query("search")),
		Page:   page,
		Limit:  limit,
	}
}

// PageWindow is the render-ready state of the pagination control: a window of
// at most maxVisiblePages page numbers centered on the current page, plus
// prev/next availability.
type PageWindow struct {
	Pages   []int
	Current int
	HasPrev bool
	HasNext bool
	Prev    int
	Next    int
	Summary string
}

// Window computes the visible page-number window for the given pagination
// metadata. The window is centered on the current page and shifted back when
// it would run past the last page, so it always shows maxVisiblePages entries
// when that many pages exist.
func Window(p domain.Pagination) PageWindow {
	current := p.Page
	if current < 1 {
		current = 1
	}

	start := current - maxVisiblePages/2
	if start < 1 {
		start = 1
	}
	end := start + maxVisiblePages - 1
	if end > p.Pages {
		end = p.Pages
	}
	if end-start+1 < maxVisiblePages {
		start = end - maxVisiblePages + 1
		if start < 1 {
			start = 1
		}
	}

	pages := make([]int, 0, maxVisiblePages)
	for i := start; i <= end; i++ {
		pages = append(pages, i)
	}

	return PageWindow{
		Pages:   pages,
		Current: current,
		HasPrev: current > 1,
		HasNext: current < p.Pages,
		Prev:    current - 1,
		Next:    current + 1,
		Summary: Summary(p),
	}
}

// Summary renders the "<page size> out of <total>" caption shown next to the
// pagination control.
func Summary(p domain.Pagination) string {
	return fmt.Sprintf("%d out of %d", p.Limit, p.Total)
}
