package gateway

import (
	"context"
	"net/http"

	"github.com/simp-lee/loanadmin/internal/domain"
)

// LoanService covers the read-only super-admin bank-loan endpoints. Loans
// are created on the consumer side of the platform; the portal only lists
// and inspects them.
type LoanService struct {
	c *Client
}

// List fetches one page of loans matching the query.
func (s *LoanService) List(ctx context.Context, q domain.ListQuery) (*domain.PageResult[domain.Loan], error) {
	var data struct {
		Loans      []domain.Loan     `json:"loans"`
		Pagination domain.Pagination `json:"pagination"`
	}
	if err := s.c.do(ctx, http.MethodGet, "/super-admin/loans", listQuery(q), nil, &data); err != nil {
		return nil, err
	}
	return &domain.PageResult[domain.Loan]{Items: data.Loans, Pagination: data.Pagination}, nil
}

// Get fetches one loan with its full phase history. Unlike dealers, the
// backend returns the loan directly under data with no wrapper key.
func (s *LoanService) Get(ctx context.Context, id string) (*domain.Loan, error) {
	var loan domain.Loan
	if err := s.c.do(ctx, http.MethodGet, "/super-admin/loans/"+id, nil, nil, &loan); err != nil {
		return nil, err
	}
	return &loan, nil
}
