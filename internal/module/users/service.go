package users

import (
	"context"

	"github.com/simp-lee/loanadmin/internal/domain"
	"github.com/simp-lee/loanadmin/internal/gateway"
	"github.com/simp-lee/loanadmin/internal/lifecycle"
)

// Gateway is the slice of the upstream client the user screens use.
type Gateway interface {
	List(ctx context.Context, q gateway.UserListQuery) (*domain.PageResult[domain.User], error)
	Get(ctx context.Context, id string) (*domain.User, error)
	Create(ctx context.Context, input gateway.UserInput) (*domain.User, error)
	Update(ctx context.Context, id string, input gateway.UserInput) (*domain.User, error)
	SetActive(ctx context.Context, id string, active bool) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}

// newLifecycle wires the simplified block/unblock/delete table to the
// user endpoints. Blocking a user clears their active flag.
func newLifecycle(gw Gateway) *lifecycle.Controller {
	return lifecycle.NewController(func(ctx context.Context, kind lifecycle.Kind, action lifecycle.Action, id, reason string) error {
		switch action {
		case lifecycle.ActionBlock:
			_, err := gw.SetActive(ctx, id, false)
			return err
		case lifecycle.ActionUnblock:
			_, err := gw.SetActive(ctx, id, true)
			return err
		case lifecycle.ActionDelete:
			return gw.Delete(ctx, id)
		default:
			return domain.NewAppError(domain.CodeValidation, "unknown action "+string(action), nil)
		}
	})
}

// listFetch adapts the user list, which filters on role and the active flag
// rather than a status field, to the common list fetch shape. The status tab
// value ("active" / "inactive") becomes the isActive filter.
func listFetch(gw Gateway, role string) func(ctx context.Context, q domain.ListQuery) (*domain.PageResult[domain.User], error) {
	return func(ctx context.Context, q domain.ListQuery) (*domain.PageResult[domain.User], error) {
		uq := gateway.UserListQuery{ListQuery: q, Role: role}
		switch q.Status {
		case "active":
			uq.IsActive = "true"
		case "inactive":
			uq.IsActive = "false"
		}
		uq.Status = ""
		return gw.List(ctx, uq)
	}
}

// input converts the request form to the gateway payload.
func (r *UserRequest) input() gateway.UserInput {
	return gateway.UserInput{
		Name:             r.Name,
		Email:            r.Email,
		Phone:            r.Phone,
		PhoneCountryCode: r.PhoneCountryCode,
		Role:             r.Role,
		Position:         r.Position,
		NationalID:       r.NationalID,
	}
}
