package session

import "context"

type ctxKey struct{}

// NewContext returns a context carrying the session.
func NewContext(ctx context.Context, sess *Session) context.Context {
	return context.WithValue(ctx, ctxKey{}, sess)
}

// FromContext returns the session bound to the context, if any.
func FromContext(ctx context.Context) (*Session, bool) {
	sess, ok := ctx.Value(ctxKey{}).(*Session)
	return sess, ok && sess != nil
}

// Tokens adapts the manager into a per-request bearer token source. The
// token comes from whatever session the request context carries; requests
// without a session go out unauthenticated.
type Tokens struct {
	m *Manager
}

// NewTokens returns a token source backed by the manager.
func NewTokens(m *Manager) *Tokens {
	return &Tokens{m: m}
}

// Token implements the gateway token source.
func (t *Tokens) Token(ctx context.Context) (string, bool) {
	sess, ok := FromContext(ctx)
	if !ok {
		return "", false
	}
	token, err := t.m.Token(sess)
	if err != nil {
		return "", false
	}
	return token, true
}
