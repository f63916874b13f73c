package gateway

import (
	"context"
	"net/http"

	"github.com/simp-lee/loanadmin/internal/domain"
)

// AuthService covers the phone/OTP authentication endpoints.
type AuthService struct {
	c *Client
}

// Credentials is the bearer token and account returned by verify-otp and
// debug-auth.
type Credentials struct {
	Token string         `json:"token"`
	User  domain.Account `json:"user"`
}

// SendOTP requests a one-time code for the given phone number.
func (s *AuthService) SendOTP(ctx context.Context, phone string) error {
	body := map[string]string{"phone": phone}
	return s.c.do(ctx, http.MethodPost, "/auth/send-otp", nil, body, nil)
}

// VerifyOTP exchanges a phone number and code for credentials.
func (s *AuthService) VerifyOTP(ctx context.Context, phone, otp string) (*Credentials, error) {
	body := map[string]string{"phone": phone, "otp": otp}
	var creds Credentials
	if err := s.c.do(ctx, http.MethodPost, "/auth/verify-otp", nil, body, &creds); err != nil {
		return nil, err
	}
	return &creds, nil
}

// Me returns the account bound to the current bearer token.
func (s *AuthService) Me(ctx context.Context) (*domain.Account, error) {
	var account domain.Account
	if err := s.c.do(ctx, http.MethodGet, "/auth/me", nil, nil, &account); err != nil {
		return nil, err
	}
	return &account, nil
}

// ProfileUpdate is the payload for updating the signed-in account.
type ProfileUpdate struct {
	Name   string `json:"name,omitempty"`
	Email  string `json:"email,omitempty"`
	Phone  string `json:"phone,omitempty"`
	Avatar string `json:"avatar,omitempty"`
}

// UpdateProfile updates the signed-in account and returns the new state.
func (s *AuthService) UpdateProfile(ctx context.Context, update ProfileUpdate) (*domain.Account, error) {
	var account domain.Account
	if err := s.c.do(ctx, http.MethodPut, "/auth/profile", nil, update, &account); err != nil {
		return nil, err
	}
	return &account, nil
}

// Logout invalidates the bearer token upstream.
func (s *AuthService) Logout(ctx context.Context) error {
	return s.c.do(ctx, http.MethodPost, "/auth/logout", nil, nil, nil)
}

// DebugAuthRequest is the development-only direct login payload. The role is
// always forced to super_admin by DebugAuth.
type DebugAuthRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Role  string `json:"role"`
}

// DebugAuth obtains credentials without an OTP exchange. The portal only
// exposes it in debug mode.
func (s *AuthService) DebugAuth(ctx context.Context, req DebugAuthRequest) (*Credentials, error) {
	req.Role = domain.AccountRoleSuperAdmin
	var creds Credentials
	if err := s.c.do(ctx, http.MethodPost, "/auth/debug-auth", nil, req, &creds); err != nil {
		return nil, err
	}
	return &creds, nil
}
