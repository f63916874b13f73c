package pkg

import (
	"context"
	"net/url"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/simp-lee/loanadmin/internal/listctrl"
	"github.com/simp-lee/loanadmin/internal/liststate"
)

const (
	listStateCookiePrefix = "list_"
	listFetchTimeout      = 10 * time.Second
)

// FetchList drives one list fetch for a server-rendered screen. The screen's
// previous filter state is kept in a cookie so that a changed status tab or
// search text resets the page to 1 even when the request still carries an old
// page number. When the backend reports fewer pages than the requested
// position, the page is clamped and refetched before rendering.
func FetchList[T any](c *gin.Context, screen string, fetch listctrl.FetchFunc[T]) listctrl.Snapshot[T] {
	q := ParseListQuery(c)

	cookieName := listStateCookiePrefix + screen
	prevStatus, prevSearch := readListStateCookie(c, cookieName)

	store := liststate.NewStore(prevStatus, q.Limit)
	if prevSearch != "" {
		store.SetSearch(prevSearch)
	}
	store.Apply(q.Status, q.Search, q.Page)

	ctx, cancel := context.WithTimeout(c.Request.Context(), listFetchTimeout)
	defer cancel()

	ctrl := listctrl.New(store, fetch)
	go ctrl.Run(ctx)

	snap, err := ctrl.Wait(ctx, store.Version())
	if err == nil && snap.Phase == listctrl.PhaseReady && snap.Result != nil {
		// The store clamps out-of-range pages once the page count is known;
		// the clamp triggers one follow-up fetch through the run loop.
		if pages := snap.Result.Pagination.Pages; pages > 0 && snap.Query.Page > pages {
			snap, _ = ctrl.Wait(ctx, snap.Version+1)
		}
	}

	writeListStateCookie(c, cookieName, q.Status, q.Search)
	return snap
}

func readListStateCookie(c *gin.Context, name string) (status, search string) {
	raw, err := c.Cookie(name)
	if err != nil {
		return "", ""
	}
	v, err := url.ParseQuery(raw)
	if err != nil {
		return "", ""
	}
	return v.Get("status"), v.Get("search")
}

func writeListStateCookie(c *gin.Context, name, status, search string) {
	v := url.Values{}
	if status != "" {
		v.Set("status", status)
	}
	if search != "" {
		v.Set("search", search)
	}
	c.SetCookie(name, v.Encode(), 0, "/", "", false, true)
}
