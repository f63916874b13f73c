// Package lifecycle models the state-transition commands the portal may issue
// against a single record. Each entity kind carries an explicit transition
// table; an action is only offered (and only executed) when the record's
// current status permits it, and destructive actions require a prior
// confirmation step before any gateway call is made.
package lifecycle

import (
	"slices"

	"github.com/simp-lee/loanadmin/internal/domain"
)

// Action is a named state-transition command.
type Action string

const (
	ActionApprove Action = "approve"
	ActionBlock   Action = "block"
	ActionUnblock Action = "unblock"
	ActionDelete  Action = "delete"
	ActionRestore Action = "restore"
)

// Kind identifies the entity a transition applies to.
type Kind string

const (
	KindDealer  Kind = "dealer"
	KindBank    Kind = "bank"
	KindUser    Kind = "user"
	KindCarType Kind = "car-type"
	KindFAQ     Kind = "faq"
)

// rule describes one permitted transition.
type rule struct {
	// from lists the statuses the action is offered for.
	from []string
	// needsReason requires a non-empty free-text reason on execution.
	needsReason bool
	// needsConfirm requires the two-step request-intent-then-confirm
	// exchange before the gateway is invoked.
	needsConfirm bool
}

// dealerRules is the full dealer state machine:
// pending -approve-> active; active -block-> blocked; blocked -unblock->
// active; {pending,active,blocked} -delete-> deleted; deleted -restore->
// active.
var dealerRules = map[Action]rule{
	ActionApprove: {from: []string{domain.DealerStatusPending}},
	ActionBlock: {
		from:         []string{domain.DealerStatusActive},
		needsReason:  true,
		needsConfirm: true,
	},
	ActionUnblock: {from: []string{domain.DealerStatusBlocked}},
	ActionDelete: {
		from:         []string{domain.DealerStatusPending, domain.DealerStatusActive, domain.DealerStatusBlocked},
		needsReason:  true,
		needsConfirm: true,
	},
	ActionRestore: {from: []string{domain.DealerStatusDeleted}},
}

// Banks and users expose the simplified two-action model. Their statuses are
// derived from isActive ("active" / "blocked"); further state detail is
// backend-owned.
var simpleRules = map[Action]rule{
	ActionBlock: {
		from:         []string{domain.DealerStatusActive},
		needsConfirm: true,
	},
	ActionUnblock: {from: []string{domain.DealerStatusBlocked}},
	ActionDelete: {
		from:         []string{domain.DealerStatusActive, domain.DealerStatusBlocked},
		needsConfirm: true,
	},
}

// Content entries can only be deleted (toggling isActive is a plain update).
var contentRules = map[Action]rule{
	ActionDelete: {
		from:         []string{domain.DealerStatusActive, domain.DealerStatusBlocked},
		needsConfirm: true,
	},
}

// rulesFor returns the transition table for a kind. Loans have no table:
// their status is backend-owned and read-only here.
func rulesFor(kind Kind) map[Action]rule {
	switch kind {
	case KindDealer:
		return dealerRules
	case KindBank, KindUser:
		return simpleRules
	case KindCarType, KindFAQ:
		return contentRules
	default:
		return nil
	}
}

// ActiveStatus maps an isActive flag to the derived status used by the
// simplified tables.
func ActiveStatus(isActive bool) string {
	if isActive {
		return domain.DealerStatusActive
	}
	return domain.DealerStatusBlocked
}

// Allowed reports whether action may be applied to a record of the given
// kind in the given status. It returns a validation error naming the
// violation otherwise.
func Allowed(kind Kind, action Action, status string) error {
	r, ok := rulesFor(kind)[action]
	if !ok {
		return domain.NewAppError(domain.CodeValidation, "action "+string(action)+" is not defined for "+string(kind), nil)
	}
	if !slices.Contains(r.from, status) {
		return domain.NewAppError(domain.CodeValidation, "action "+string(action)+" is not permitted for status "+status, nil)
	}
	return nil
}

// Offered returns the actions available for a record of the given kind in
// the given status, in a stable order.
func Offered(kind Kind, status string) []Action {
	order := []Action{ActionApprove, ActionUnblock, ActionRestore, ActionBlock, ActionDelete}
	rules := rulesFor(kind)

	var out []Action
	for _, a := range order {
		if r, ok := rules[a]; ok && slices.Contains(r.from, status) {
			out = append(out, a)
		}
	}
	return out
}

// NeedsReason reports whether the action requires a free-text reason.
func NeedsReason(kind Kind, action Action) bool {
	return rulesFor(kind)[action].needsReason
}

// NeedsConfirm reports whether the action requires the two-step confirmation
// exchange.
func NeedsConfirm(kind Kind, action Action) bool {
	return rulesFor(kind)[action].needsConfirm
}
