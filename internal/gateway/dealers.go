package gateway

import (
	"context"
	"net/http"

	"github.com/simp-lee/loanadmin/internal/domain"
)

// DealerService covers the super-admin dealer endpoints, including the
// lifecycle transition verbs.
type DealerService struct {
	c *Client
}

// DealerInput is the create/update payload for a dealer.
type DealerInput struct {
	Name             string              `json:"name"`
	Code             string              `json:"code,omitempty"`
	Address          *domain.Address     `json:"address,omitempty"`
	ContactPerson    string              `json:"contactPerson,omitempty"`
	ContactPhone     string              `json:"contactPhone,omitempty"`
	ContactEmail     string              `json:"contactEmail,omitempty"`
	CommercialRegNum string              `json:"commercialRegNumber,omitempty"`
	VATNumber        string              `json:"vatNumber,omitempty"`
	Logo             string              `json:"logo,omitempty"`
	BankDetails      *domain.BankDetails `json:"bankDetails,omitempty"`
}

// List fetches one page of dealers matching the query.
func (s *DealerService) List(ctx context.Context, q domain.ListQuery) (*domain.PageResult[domain.Dealer], error) {
	var data struct {
		Dealers    []domain.Dealer   `json:"dealers"`
		Pagination domain.Pagination `json:"pagination"`
	}
	if err := s.c.do(ctx, http.MethodGet, "/super-admin/dealers", listQuery(q), nil, &data); err != nil {
		return nil, err
	}
	return &domain.PageResult[domain.Dealer]{Items: data.Dealers, Pagination: data.Pagination}, nil
}

// Get fetches one dealer. The backend wraps the record as data.dealer.
func (s *DealerService) Get(ctx context.Context, id string) (*domain.Dealer, error) {
	var data struct {
		Dealer domain.Dealer `json:"dealer"`
	}
	if err := s.c.do(ctx, http.MethodGet, "/super-admin/dealers/"+id, nil, nil, &data); err != nil {
		return nil, err
	}
	return &data.Dealer, nil
}

// Create registers a new dealer. New dealers start in status pending.
func (s *DealerService) Create(ctx context.Context, input DealerInput) (*domain.Dealer, error) {
	var dealer domain.Dealer
	if err := s.c.do(ctx, http.MethodPost, "/super-admin/dealers", nil, input, &dealer); err != nil {
		return nil, err
	}
	return &dealer, nil
}

// Update modifies a dealer's profile fields.
func (s *DealerService) Update(ctx context.Context, id string, input DealerInput) (*domain.Dealer, error) {
	var dealer domain.Dealer
	if err := s.c.do(ctx, http.MethodPut, "/super-admin/dealers/"+id, nil, input, &dealer); err != nil {
		return nil, err
	}
	return &dealer, nil
}

// Approve transitions a pending dealer to active.
func (s *DealerService) Approve(ctx context.Context, id string) error {
	return s.transition(ctx, id, "approve", nil)
}

// Block transitions an active dealer to blocked with a reason.
func (s *DealerService) Block(ctx context.Context, id, reason string) error {
	return s.transition(ctx, id, "block", map[string]string{"reason": reason})
}

// Unblock transitions a blocked dealer back to active.
func (s *DealerService) Unblock(ctx context.Context, id string) error {
	return s.transition(ctx, id, "unblock", nil)
}

// Delete soft-deletes a dealer with an optional reason.
func (s *DealerService) Delete(ctx context.Context, id, reason string) error {
	var body any
	if reason != "" {
		body = map[string]string{"reason": reason}
	}
	return s.c.do(ctx, http.MethodDelete, "/super-admin/dealers/"+id, nil, body, nil)
}

// Restore transitions a deleted dealer back to active.
func (s *DealerService) Restore(ctx context.Context, id string) error {
	return s.transition(ctx, id, "restore", nil)
}

// transition is the generic lifecycle verb the named calls wrap.
func (s *DealerService) transition(ctx context.Context, id, verb string, body any) error {
	return s.c.do(ctx, http.MethodPut, "/super-admin/dealers/"+id+"/"+verb, nil, body, nil)
}
