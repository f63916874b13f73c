package loans

import (
	"context"

	"github.com/simp-lee/loanadmin/internal/domain"
)

// Gateway is the read-only slice of the upstream client the loan screens
// use. Loans are created on the consumer side of the platform; the portal
// never mutates them.
type Gateway interface {
	List(ctx context.Context, q domain.ListQuery) (*domain.PageResult[domain.Loan], error)
	Get(ctx context.Context, id string) (*domain.Loan, error)
}
