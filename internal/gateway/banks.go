package gateway

import (
	"context"
	"net/http"

	"github.com/simp-lee/loanadmin/internal/domain"
)

// BankService covers the super-admin partner bank endpoints.
type BankService struct {
	c *Client
}

// BankInput is the create/update payload for a bank.
type BankInput struct {
	Name          string                `json:"name"`
	Code          string                `json:"code,omitempty"`
	Logo          string                `json:"logo,omitempty"`
	ContactPerson *domain.ContactPerson `json:"contactPerson,omitempty"`
	LoanTerms     *domain.LoanTerms     `json:"loanTerms,omitempty"`
	IsActive      *bool                 `json:"isActive,omitempty"`
}

// List fetches one page of banks. Banks have no status field; callers that
// tab on active/inactive pass q.Status as "active" or "inactive" and it is
// translated to the isActive parameter.
func (s *BankService) List(ctx context.Context, q domain.ListQuery) (*domain.PageResult[domain.Bank], error) {
	params := listQuery(q)
	switch q.Status {
	case "active":
		params.Del("status")
		params.Set("isActive", "true")
	case "inactive":
		params.Del("status")
		params.Set("isActive", "false")
	}
	var data struct {
		Banks      []domain.Bank     `json:"banks"`
		Pagination domain.Pagination `json:"pagination"`
	}
	if err := s.c.do(ctx, http.MethodGet, "/super-admin/banks", params, nil, &data); err != nil {
		return nil, err
	}
	return &domain.PageResult[domain.Bank]{Items: data.Banks, Pagination: data.Pagination}, nil
}

// Get fetches one bank.
func (s *BankService) Get(ctx context.Context, id string) (*domain.Bank, error) {
	var bank domain.Bank
	if err := s.c.do(ctx, http.MethodGet, "/super-admin/banks/"+id, nil, nil, &bank); err != nil {
		return nil, err
	}
	return &bank, nil
}

// Create registers a new bank.
func (s *BankService) Create(ctx context.Context, input BankInput) (*domain.Bank, error) {
	var bank domain.Bank
	if err := s.c.do(ctx, http.MethodPost, "/super-admin/banks", nil, input, &bank); err != nil {
		return nil, err
	}
	return &bank, nil
}

// Update modifies a bank.
func (s *BankService) Update(ctx context.Context, id string, input BankInput) (*domain.Bank, error) {
	var bank domain.Bank
	if err := s.c.do(ctx, http.MethodPut, "/super-admin/banks/"+id, nil, input, &bank); err != nil {
		return nil, err
	}
	return &bank, nil
}

// SetActive toggles a bank's active flag.
func (s *BankService) SetActive(ctx context.Context, id string, active bool) error {
	body := map[string]bool{"isActive": active}
	return s.c.do(ctx, http.MethodPut, "/super-admin/banks/"+id+"/status", nil, body, nil)
}

// Delete removes a bank.
func (s *BankService) Delete(ctx context.Context, id string) error {
	return s.c.do(ctx, http.MethodDelete, "/super-admin/banks/"+id, nil, nil, nil)
}
