package content

import (
	"context"

	"github.com/simp-lee/loanadmin/internal/domain"
	"github.com/simp-lee/loanadmin/internal/gateway"
	"github.com/simp-lee/loanadmin/internal/lifecycle"
)

// Gateway is the slice of the upstream client the site-content screens use.
// Both collections are small and come back unpaginated; there are no
// single-record endpoints, so lookups scan the list.
type Gateway interface {
	ListCarTypes(ctx context.Context) ([]domain.CarType, error)
	CreateCarType(ctx context.Context, input gateway.CarTypeInput) (*domain.CarType, error)
	UpdateCarType(ctx context.Context, id string, input gateway.CarTypeInput) (*domain.CarType, error)
	DeleteCarType(ctx context.Context, id string) error

	ListFAQs(ctx context.Context) ([]domain.FAQ, error)
	CreateFAQ(ctx context.Context, input gateway.FAQInput) (*domain.FAQ, error)
	UpdateFAQ(ctx context.Context, id string, input gateway.FAQInput) (*domain.FAQ, error)
	DeleteFAQ(ctx context.Context, id string) error
}

// newLifecycle wires the content delete table to the gateway. The kind
// routes the delete to the right collection.
func newLifecycle(gw Gateway) *lifecycle.Controller {
	return lifecycle.NewController(func(ctx context.Context, kind lifecycle.Kind, action lifecycle.Action, id, reason string) error {
		if action != lifecycle.ActionDelete {
			return domain.NewAppError(domain.CodeValidation, "unknown action "+string(action), nil)
		}
		if kind == lifecycle.KindCarType {
			return gw.DeleteCarType(ctx, id)
		}
		return gw.DeleteFAQ(ctx, id)
	})
}

// getCarType finds one car type by scanning the list.
func getCarType(ctx context.Context, gw Gateway, id string) (*domain.CarType, error) {
	items, err := gw.ListCarTypes(ctx)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].ID == id {
			return &items[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

// getFAQ finds one FAQ entry by scanning the list.
func getFAQ(ctx context.Context, gw Gateway, id string) (*domain.FAQ, error) {
	items, err := gw.ListFAQs(ctx)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].ID == id {
			return &items[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

// toggleCarTypeInput rebuilds a car type's payload with the active flag
// flipped. The update endpoint replaces the record, so the other fields are
// resent as-is.
func toggleCarTypeInput(ct *domain.CarType) gateway.CarTypeInput {
	next := !ct.IsActive
	return gateway.CarTypeInput{
		Name:        ct.Name,
		Icon:        ct.Icon,
		Description: ct.Description,
		IsActive:    &next,
		Order:       &ct.Order,
	}
}

// toggleFAQInput rebuilds a FAQ entry's payload with the active flag flipped.
func toggleFAQInput(faq *domain.FAQ) gateway.FAQInput {
	next := !faq.IsActive
	return gateway.FAQInput{
		Question: faq.Question,
		Answer:   faq.Answer,
		Category: faq.Category,
		IsActive: &next,
		Order:    &faq.Order,
	}
}

// input converts the request form to the gateway payload.
func (r *CarTypeRequest) input() gateway.CarTypeInput {
	return gateway.CarTypeInput{
		Name:        r.Name,
		Icon:        r.Icon,
		Description: r.Description,
		IsActive:    r.IsActive,
		Order:       r.Order,
	}
}

// input converts the request form to the gateway payload.
func (r *FAQRequest) input() gateway.FAQInput {
	return gateway.FAQInput{
		Question: r.Question,
		Answer:   r.Answer,
		Category: r.Category,
		IsActive: r.IsActive,
		Order:    r.Order,
	}
}
