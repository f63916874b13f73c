// Package session stores portal sign-ins server side. The browser cookie
// carries only an opaque session ID; the upstream bearer token is encrypted
// at rest and never leaves the portal.
package session

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/simp-lee/loanadmin/internal/domain"
)

// Session is one signed-in portal operator. The account snapshot is taken at
// sign-in and refreshed on profile updates.
type Session struct {
	ID        string `gorm:"primaryKey;size:64"`
	AccountID string `gorm:"size:64;index"`
	Name      string `gorm:"size:255"`
	Email     string `gorm:"size:255"`
	Phone     string `gorm:"size:32"`
	Avatar    string `gorm:"size:512"`
	Role      string `gorm:"size:32"`
	// Token is the secretbox-sealed upstream bearer token.
	Token     []byte `gorm:"column:token"`
	CreatedAt time.Time
	ExpiresAt time.Time `gorm:"index"`
}

// Account rebuilds the signed-in account from the stored snapshot.
func (s *Session) Account() domain.Account {
	return domain.Account{
		ID:     s.AccountID,
		Name:   s.Name,
		Email:  s.Email,
		Phone:  s.Phone,
		Avatar: s.Avatar,
		Role:   s.Role,
	}
}

// Manager owns the session table.
type Manager struct {
	db  *gorm.DB
	key [32]byte
	ttl time.Duration
	now func() time.Time
}

// NewManager migrates the session table and returns a manager. key encrypts
// bearer tokens at rest; ttl bounds session lifetime.
func NewManager(db *gorm.DB, key [32]byte, ttl time.Duration) (*Manager, error) {
	if ttl <= 0 {
		return nil, errors.New("session ttl must be positive")
	}
	if err := db.AutoMigrate(&Session{}); err != nil {
		return nil, fmt.Errorf("failed to migrate session table: %w", err)
	}
	return &Manager{db: db, key: key, ttl: ttl, now: time.Now}, nil
}

// Create stores a new session for the given credentials and returns it.
func (m *Manager) Create(ctx context.Context, token string, account domain.Account) (*Session, error) {
	id, err := newSessionID()
	if err != nil {
		return nil, err
	}
	sealed, err := seal(m.key, []byte(token))
	if err != nil {
		return nil, err
	}

	now := m.now()
	sess := &Session{
		ID:        id,
		AccountID: account.ID,
		Name:      account.Name,
		Email:     account.Email,
		Phone:     account.Phone,
		Avatar:    account.Avatar,
		Role:      account.Role,
		Token:     sealed,
		CreatedAt: now,
		ExpiresAt: now.Add(m.ttl),
	}
	if err := m.db.WithContext(ctx).Create(sess).Error; err != nil {
		return nil, fmt.Errorf("failed to store session: %w", err)
	}
	return sess, nil
}

// Lookup returns the live session with the given ID. Missing and expired
// sessions both return domain.ErrUnauthorized; expired rows are removed on
// the way out.
func (m *Manager) Lookup(ctx context.Context, id string) (*Session, error) {
	if id == "" {
		return nil, domain.ErrUnauthorized
	}
	var sess Session
	err := m.db.WithContext(ctx).First(&sess, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrUnauthorized
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	if !m.now().Before(sess.ExpiresAt) {
		m.db.WithContext(ctx).Delete(&Session{}, "id = ?", id)
		return nil, domain.ErrUnauthorized
	}
	return &sess, nil
}

// Token decrypts the session's upstream bearer token.
func (m *Manager) Token(sess *Session) (string, error) {
	plain, err := open(m.key, sess.Token)
	if err != nil {
		return "", fmt.Errorf("failed to unseal session token: %w", err)
	}
	return string(plain), nil
}

// UpdateAccount refreshes the stored account snapshot after a profile update.
func (m *Manager) UpdateAccount(ctx context.Context, id string, account domain.Account) error {
	updates := map[string]any{
		"name":   account.Name,
		"email":  account.Email,
		"phone":  account.Phone,
		"avatar": account.Avatar,
	}
	err := m.db.WithContext(ctx).Model(&Session{}).Where("id = ?", id).Updates(updates).Error
	if err != nil {
		return fmt.Errorf("failed to update session account: %w", err)
	}
	return nil
}

// Destroy removes the session. It is idempotent: destroying a session that
// is already gone succeeds, so concurrent unauthorized responses can all
// tear down without racing each other.
func (m *Manager) Destroy(ctx context.Context, id string) error {
	if id == "" {
		return nil
	}
	err := m.db.WithContext(ctx).Delete(&Session{}, "id = ?", id).Error
	if err != nil {
		return fmt.Errorf("failed to destroy session: %w", err)
	}
	return nil
}

// DestroyAccount removes every session for the account.
func (m *Manager) DestroyAccount(ctx context.Context, accountID string) error {
	err := m.db.WithContext(ctx).Delete(&Session{}, "account_id = ?", accountID).Error
	if err != nil {
		return fmt.Errorf("failed to destroy account sessions: %w", err)
	}
	return nil
}

// PurgeExpired removes sessions past their expiry and returns the count.
func (m *Manager) PurgeExpired(ctx context.Context) (int64, error) {
	res := m.db.WithContext(ctx).Delete(&Session{}, "expires_at <= ?", m.now())
	if res.Error != nil {
		return 0, fmt.Errorf("failed to purge sessions: %w", res.Error)
	}
	return res.RowsAffected, nil
}

func newSessionID() (string, error) {
	var buf [32]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return "", fmt.Errorf("failed to generate session id: %w", err)
	}
	return hex.EncodeToString(buf[:]), nil
}
