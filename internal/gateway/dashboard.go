package gateway

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/simp-lee/loanadmin/internal/domain"
)

// DashboardService covers the aggregate stats and activity feed endpoints.
type DashboardService struct {
	c *Client
}

// Stats fetches the dashboard counters and the monthly performance series.
func (s *DashboardService) Stats(ctx context.Context) (*domain.Stats, error) {
	var stats domain.Stats
	if err := s.c.do(ctx, http.MethodGet, "/super-admin/dashboard/stats", nil, nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// Activity fetches the recent loans and dealers feed. limit bounds each
// list; zero means the backend default.
func (s *DashboardService) Activity(ctx context.Context, limit int) (*domain.Activity, error) {
	var params url.Values
	if limit > 0 {
		params = url.Values{"limit": []string{strconv.Itoa(limit)}}
	}
	var activity domain.Activity
	if err := s.c.do(ctx, http.MethodGet, "/super-admin/dashboard/activity", params, nil, &activity); err != nil {
		return nil, err
	}
	return &activity, nil
}
