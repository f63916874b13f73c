// Package liststate holds the filter and page position of one list screen.
// Changing the status filter or the search text resets the page to 1;
// changing the page alone leaves the other fields untouched. Controllers
// subscribe to the store and refetch on every change.
package liststate

import (
	"sync"

	"github.com/simp-lee/loanadmin/internal/domain"
)

// Store is a filter/pagination state container for one list screen.
// All methods are safe for concurrent use.
type Store struct {
	mu       sync.Mutex
	status   string
	search   string
	page     int
	pageSize int
	version  uint64
	subs     []chan struct{}
}

// NewStore creates a Store with the given initial status filter and page size.
// The page starts at 1.
func NewStore(status string, pageSize int) *Store {
	if pageSize < 1 {
		pageSize = domain.DefaultPageSize
	}
	return &Store{status: status, page: 1, pageSize: pageSize}
}

// SetStatus changes the status filter. A changed filter resets the page to 1.
func (s *Store) SetStatus(status string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.status == status {
		return
	}
	s.status = status
	s.page = 1
	s.bumpLocked()
}

// SetSearch changes the search text. Changed text resets the page to 1.
func (s *Store) SetSearch(search string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.search == search {
		return
	}
	s.search = search
	s.page = 1
	s.bumpLocked()
}

// SetPage changes the page position without touching the filter fields.
// Values below 1 clamp to 1.
func (s *Store) SetPage(page int) {
	if page < 1 {
		page = 1
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.page == page {
		return
	}
	s.page = page
	s.bumpLocked()
}

// Apply sets the whole filter state in one update, with the page-reset rule
// applied: when status or search differs from the current state, page falls
// back to 1 regardless of the requested page. At most one change
// notification is emitted.
func (s *Store) Apply(status, search string, page int) {
	if page < 1 {
		page = 1
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	filterChanged := s.status != status || s.search != search
	if filterChanged {
		page = 1
	}
	if !filterChanged && s.page == page {
		return
	}

	s.status = status
	s.search = search
	s.page = page
	s.bumpLocked()
}

// ClampToPages clamps the page into [1, pages] once the page count is known.
// A clamp that moves the page counts as a state change and notifies
// subscribers.
func (s *Store) ClampToPages(pages int) {
	if pages < 1 {
		pages = 1
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.page <= pages {
		return
	}
	s.page = pages
	s.bumpLocked()
}

// Query returns the current state as a wire-facing list query.
func (s *Store) Query() domain.ListQuery {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.ListQuery{
		Status: s.status,
		Search: s.search,
		Page:   s.page,
		Limit:  s.pageSize,
	}
}

// Version returns a counter incremented on every state change.
func (s *Store) Version() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.version
}

// Subscribe returns a channel that receives a signal after each state change.
// Signals are coalesced: a subscriber that has not drained the channel will
// see at most one pending signal, covering all changes since its last read.
func (s *Store) Subscribe() <-chan struct{} {
	ch := make(chan struct{}, 1)
	s.mu.Lock()
	s.subs = append(s.subs, ch)
	s.mu.Unlock()
	return ch
}

// bumpLocked increments the version and notifies subscribers.
// Callers must hold s.mu.
func (s *Store) bumpLocked() {
	s.version++
	for _, ch := range s.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}
