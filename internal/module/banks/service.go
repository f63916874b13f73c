package banks

import (
	"context"

	"github.com/simp-lee/loanadmin/internal/domain"
	"github.com/simp-lee/loanadmin/internal/gateway"
	"github.com/simp-lee/loanadmin/internal/lifecycle"
)

// Gateway is the slice of the upstream client the bank screens use.
type Gateway interface {
	List(ctx context.Context, q domain.ListQuery) (*domain.PageResult[domain.Bank], error)
	Get(ctx context.Context, id string) (*domain.Bank, error)
	Create(ctx context.Context, input gateway.BankInput) (*domain.Bank, error)
	Update(ctx context.Context, id string, input gateway.BankInput) (*domain.Bank, error)
	SetActive(ctx context.Context, id string, active bool) error
	Delete(ctx context.Context, id string) error
}

// newLifecycle wires the simplified block/unblock/delete table to the
// bank endpoints. Blocking a bank clears its active flag.
func newLifecycle(gw Gateway) *lifecycle.Controller {
	return lifecycle.NewController(func(ctx context.Context, kind lifecycle.Kind, action lifecycle.Action, id, reason string) error {
		switch action {
		case lifecycle.ActionBlock:
			return gw.SetActive(ctx, id, false)
		case lifecycle.ActionUnblock:
			return gw.SetActive(ctx, id, true)
		case lifecycle.ActionDelete:
			return gw.Delete(ctx, id)
		default:
			return domain.NewAppError(domain.CodeValidation, "unknown action "+string(action), nil)
		}
	})
}

// input converts the request form to the gateway payload.
func (r *BankRequest) input() gateway.BankInput {
	in := gateway.BankInput{
		Name: r.Name,
		Code: r.Code,
		Logo: r.Logo,
	}
	if r.ContactName != "" || r.ContactEmail != "" || r.ContactPhone != "" {
		in.ContactPerson = &domain.ContactPerson{
			Name:  r.ContactName,
			Email: r.ContactEmail,
			Phone: r.ContactPhone,
		}
	}
	if r.MinAmount != 0 || r.MaxAmount != 0 || r.InterestRate != 0 || r.MaxTenure != 0 {
		in.LoanTerms = &domain.LoanTerms{
			MinAmount:    r.MinAmount,
			MaxAmount:    r.MaxAmount,
			InterestRate: r.InterestRate,
			MaxTenure:    r.MaxTenure,
		}
	}
	return in
}
