package lifecycle

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"strings"
	"sync"
	"time"

	"github.com/simp-lee/loanadmin/internal/domain"
)

// intentTTL bounds how long a confirmation intent stays valid.
const intentTTL = 5 * time.Minute

// Executor performs the actual gateway mutation for a validated action.
type Executor func(ctx context.Context, kind Kind, action Action, id, reason string) error

// intent is a pending "request intent, then confirm" exchange.
type intent struct {
	kind      Kind
	action    Action
	id        string
	expiresAt time.Time
}

// Controller validates and executes lifecycle actions. Destructive actions
// (per the transition tables) go through Begin/Confirm; everything else goes
// through Execute directly. No gateway call is ever made for an action the
// record's status does not permit or whose confirmation step is missing.
type Controller struct {
	exec Executor
	now  func() time.Time

	mu      sync.Mutex
	intents map[string]intent
}

// NewController creates a Controller that executes actions through exec.
func NewController(exec Executor) *Controller {
	return &Controller{
		exec:    exec,
		now:     time.Now,
		intents: make(map[string]intent),
	}
}

// Execute validates and immediately executes an action that does not require
// confirmation. Confirmation-gated actions are rejected with a validation
// error before any gateway call.
func (c *Controller) Execute(ctx context.Context, kind Kind, action Action, id, status string) error {
	if err := Allowed(kind, action, status); err != nil {
		return err
	}
	if NeedsConfirm(kind, action) {
		return domain.NewAppError(domain.CodeValidation, "action "+string(action)+" requires confirmation", nil)
	}
	return c.exec(ctx, kind, action, id, "")
}

// Begin validates an action that requires confirmation and registers a
// pending intent. It returns an opaque intent token the caller presents to
// Confirm. No gateway call happens here.
func (c *Controller) Begin(kind Kind, action Action, id, status string) (string, error) {
	if err := Allowed(kind, action, status); err != nil {
		return "", err
	}
	if !NeedsConfirm(kind, action) {
		return "", domain.NewAppError(domain.CodeValidation, "action "+string(action)+" does not use confirmation", nil)
	}

	token, err := newToken()
	if err != nil {
		return "", domain.NewAppError(domain.CodeInternal, "failed to create confirmation token", err)
	}

	c.mu.Lock()
	c.pruneLocked()
	c.intents[token] = intent{
		kind:      kind,
		action:    action,
		id:        id,
		expiresAt: c.now().Add(intentTTL),
	}
	c.mu.Unlock()

	return token, nil
}

// Confirm completes a pending intent and executes the action. The token is
// single-use; an unknown or expired token is a validation error and no
// gateway call is made. Actions whose rule requires a reason reject an empty
// one.
func (c *Controller) Confirm(ctx context.Context, token, reason string) error {
	c.mu.Lock()
	in, ok := c.intents[token]
	if ok {
		delete(c.intents, token)
	}
	c.mu.Unlock()

	if !ok || c.now().After(in.expiresAt) {
		return domain.NewAppError(domain.CodeValidation, "confirmation expired, please retry the action", nil)
	}

	reason = strings.TrimSpace(reason)
	if NeedsReason(in.kind, in.action) && reason == "" {
		return domain.NewAppError(domain.CodeValidation, "a reason is required for this action", nil)
	}

	return c.exec(ctx, in.kind, in.action, in.id, reason)
}

// pruneLocked drops expired intents. Callers must hold c.mu.
func (c *Controller) pruneLocked() {
	now := c.now()
	for token, in := range c.intents {
		if now.After(in.expiresAt) {
			delete(c.intents, token)
		}
	}
}

// newToken returns a random 32-hex-char token.
func newToken() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
