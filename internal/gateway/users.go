package gateway

import (
	"context"
	"net/http"

	"github.com/simp-lee/loanadmin/internal/domain"
)

// UserService covers the super-admin platform-user endpoints.
type UserService struct {
	c *Client
}

// UserListQuery extends the common list query with the user screen's
// role and isActive filters.
type UserListQuery struct {
	domain.ListQuery
	Role string
	// IsActive is "true", "false", or empty for all.
	IsActive string
}

// UserInput is the create/update payload for a platform user.
type UserInput struct {
	Name             string `json:"name"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	PhoneCountryCode string `json:"phoneCountryCode,omitempty"`
	Role             string `json:"role"`
	Position         string `json:"position,omitempty"`
	NationalID       string `json:"nationalId,omitempty"`
	IsActive         *bool  `json:"isActive,omitempty"`
}

// List fetches one page of users matching the query.
func (s *UserService) List(ctx context.Context, q UserListQuery) (*domain.PageResult[domain.User], error) {
	params := listQuery(q.ListQuery)
	params.Del("status")
	if q.Role != "" {
		params.Set("role", q.Role)
	}
	if q.IsActive != "" {
		params.Set("isActive", q.IsActive)
	}

	var data struct {
		Users      []domain.User     `json:"users"`
		Pagination domain.Pagination `json:"pagination"`
	}
	if err := s.c.do(ctx, http.MethodGet, "/super-admin/users", params, nil, &data); err != nil {
		return nil, err
	}
	return &domain.PageResult[domain.User]{Items: data.Users, Pagination: data.Pagination}, nil
}

// Get fetches one user.
func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	var user domain.User
	if err := s.c.do(ctx, http.MethodGet, "/super-admin/users/"+id, nil, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Create registers a new platform user.
func (s *UserService) Create(ctx context.Context, input UserInput) (*domain.User, error) {
	var user domain.User
	if err := s.c.do(ctx, http.MethodPost, "/super-admin/users", nil, input, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Update modifies a platform user. Toggling IsActive implements the
// simplified block/unblock model for users.
func (s *UserService) Update(ctx context.Context, id string, input UserInput) (*domain.User, error) {
	var user domain.User
	if err := s.c.do(ctx, http.MethodPut, "/super-admin/users/"+id, nil, input, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// SetActive flips only the isActive flag.
func (s *UserService) SetActive(ctx context.Context, id string, active bool) (*domain.User, error) {
	var user domain.User
	body := map[string]bool{"isActive": active}
	if err := s.c.do(ctx, http.MethodPut, "/super-admin/users/"+id, nil, body, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Delete removes a platform user.
func (s *UserService) Delete(ctx context.Context, id string) error {
	return s.c.do(ctx, http.MethodDelete, "/super-admin/users/"+id, nil, nil, nil)
}
