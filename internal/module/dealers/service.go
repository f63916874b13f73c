package dealers

import (
	"context"

	"github.com/simp-lee/loanadmin/internal/domain"
	"github.com/simp-lee/loanadmin/internal/gateway"
	"github.com/simp-lee/loanadmin/internal/lifecycle"
)

// Gateway is the slice of the upstream client the dealer screens use.
type Gateway interface {
	List(ctx context.Context, q domain.ListQuery) (*domain.PageResult[domain.Dealer], error)
	Get(ctx context.Context, id string) (*domain.Dealer, error)
	Create(ctx context.Context, input gateway.DealerInput) (*domain.Dealer, error)
	Update(ctx context.Context, id string, input gateway.DealerInput) (*domain.Dealer, error)
	Approve(ctx context.Context, id string) error
	Block(ctx context.Context, id, reason string) error
	Unblock(ctx context.Context, id string) error
	Delete(ctx context.Context, id, reason string) error
	Restore(ctx context.Context, id string) error
}

// newLifecycle wires the dealer transition table to the gateway verbs.
func newLifecycle(gw Gateway) *lifecycle.Controller {
	return lifecycle.NewController(func(ctx context.Context, kind lifecycle.Kind, action lifecycle.Action, id, reason string) error {
		switch action {
		case lifecycle.ActionApprove:
			return gw.Approve(ctx, id)
		case lifecycle.ActionBlock:
			return gw.Block(ctx, id, reason)
		case lifecycle.ActionUnblock:
			return gw.Unblock(ctx, id)
		case lifecycle.ActionDelete:
			return gw.Delete(ctx, id, reason)
		case lifecycle.ActionRestore:
			return gw.Restore(ctx, id)
		default:
			return domain.NewAppError(domain.CodeValidation, "unknown action "+string(action), nil)
		}
	})
}

// input converts the request form to the gateway payload.
func (r *DealerRequest) input() gateway.DealerInput {
	in := gateway.DealerInput{
		Name:             r.Name,
		Code:             r.Code,
		ContactPerson:    r.ContactPerson,
		ContactPhone:     r.ContactPhone,
		ContactEmail:     r.ContactEmail,
		CommercialRegNum: r.CommercialRegNum,
		VATNumber:        r.VATNumber,
		Logo:             r.Logo,
	}
	if r.Street != "" || r.City != "" || r.Country != "" {
		in.Address = &domain.Address{
			Street:  r.Street,
			City:    r.City,
			Country: r.Country,
		}
	}
	return in
}
