package gateway

import (
	"context"
	"net/http"

	"github.com/simp-lee/loanadmin/internal/domain"
)

// ContentService covers the site-content endpoints: car type categories and
// FAQ entries. Both collections are small and returned unpaginated.
type ContentService struct {
	c *Client
}

// CarTypeInput is the create/update payload for a car type.
type CarTypeInput struct {
	Name        string `json:"name"`
	Icon        string `json:"icon,omitempty"`
	Description string `json:"description,omitempty"`
	IsActive    *bool  `json:"isActive,omitempty"`
	Order       *int   `json:"order,omitempty"`
}

// FAQInput is the create/update payload for a FAQ entry.
type FAQInput struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Category string `json:"category,omitempty"`
	IsActive *bool  `json:"isActive,omitempty"`
	Order    *int   `json:"order,omitempty"`
}

// ListCarTypes fetches all car types ordered by their order field.
func (s *ContentService) ListCarTypes(ctx context.Context) ([]domain.CarType, error) {
	var data struct {
		CarTypes []domain.CarType `json:"carTypes"`
	}
	if err := s.c.do(ctx, http.MethodGet, "/super-admin/car-types", nil, nil, &data); err != nil {
		return nil, err
	}
	return data.CarTypes, nil
}

// CreateCarType adds a car type.
func (s *ContentService) CreateCarType(ctx context.Context, input CarTypeInput) (*domain.CarType, error) {
	var ct domain.CarType
	if err := s.c.do(ctx, http.MethodPost, "/super-admin/car-types", nil, input, &ct); err != nil {
		return nil, err
	}
	return &ct, nil
}

// UpdateCarType modifies a car type.
func (s *ContentService) UpdateCarType(ctx context.Context, id string, input CarTypeInput) (*domain.CarType, error) {
	var ct domain.CarType
	if err := s.c.do(ctx, http.MethodPut, "/super-admin/car-types/"+id, nil, input, &ct); err != nil {
		return nil, err
	}
	return &ct, nil
}

// DeleteCarType removes a car type.
func (s *ContentService) DeleteCarType(ctx context.Context, id string) error {
	return s.c.do(ctx, http.MethodDelete, "/super-admin/car-types/"+id, nil, nil, nil)
}

// ListFAQs fetches all FAQ entries ordered by their order field.
func (s *ContentService) ListFAQs(ctx context.Context) ([]domain.FAQ, error) {
	var data struct {
		FAQs []domain.FAQ `json:"faqs"`
	}
	if err := s.c.do(ctx, http.MethodGet, "/super-admin/faqs", nil, nil, &data); err != nil {
		return nil, err
	}
	return data.FAQs, nil
}

// CreateFAQ adds a FAQ entry.
func (s *ContentService) CreateFAQ(ctx context.Context, input FAQInput) (*domain.FAQ, error) {
	var faq domain.FAQ
	if err := s.c.do(ctx, http.MethodPost, "/super-admin/faqs", nil, input, &faq); err != nil {
		return nil, err
	}
	return &faq, nil
}

// UpdateFAQ modifies a FAQ entry.
func (s *ContentService) UpdateFAQ(ctx context.Context, id string, input FAQInput) (*domain.FAQ, error) {
	var faq domain.FAQ
	if err := s.c.do(ctx, http.MethodPut, "/super-admin/faqs/"+id, nil, input, &faq); err != nil {
		return nil, err
	}
	return &faq, nil
}

// DeleteFAQ removes a FAQ entry.
func (s *ContentService) DeleteFAQ(ctx context.Context, id string) error {
	return s.c.do(ctx, http.MethodDelete, "/super-admin/faqs/"+id, nil, nil, nil)
}
