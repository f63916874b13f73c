package auth

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/simp-lee/loanadmin/internal/domain"
	"github.com/simp-lee/loanadmin/internal/gateway"
	"github.com/simp-lee/loanadmin/internal/middleware"
	"github.com/simp-lee/loanadmin/internal/pkg"
	"github.com/simp-lee/loanadmin/internal/session"
)

// phoneCookie carries the phone number between the login and verify steps.
// It lives only as long as the OTP is usable.
const (
	phoneCookie    = "otp_phone"
	phoneCookieTTL = 5 * time.Minute
)

// Gateway is the slice of the upstream client the auth screens need.
type Gateway interface {
	SendOTP(ctx context.Context, phone string) error
	VerifyOTP(ctx context.Context, phone, otp string) (*gateway.Credentials, error)
	DebugAuth(ctx context.Context, req gateway.DebugAuthRequest) (*gateway.Credentials, error)
	Logout(ctx context.Context) error
}

// Sessions is the slice of the session manager the auth screens need.
type Sessions interface {
	Create(ctx context.Context, token string, account domain.Account) (*session.Session, error)
	Destroy(ctx context.Context, id string) error
}

// CookieConfig describes how the session cookie is issued.
type CookieConfig struct {
	Name   string
	TTL    time.Duration
	Secure bool
}

// Handler serves the sign-in and sign-out flow.
type Handler struct {
	gw       Gateway
	sessions Sessions
	cookie   CookieConfig
	logger   *slog.Logger
}

// NewHandler creates an auth handler.
func NewHandler(gw Gateway, sessions Sessions, cookie CookieConfig, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{gw: gw, sessions: sessions, cookie: cookie, logger: logger}
}

// LoginPage renders the phone entry form.
// GET /login
func (h *Handler) LoginPage(c *gin.Context) {
	if _, ok := session.FromContext(c.Request.Context()); ok {
		c.Redirect(http.StatusFound, "/")
		return
	}
	c.HTML(http.StatusOK, "auth/login.html", gin.H{
		"CSRFToken": middleware.GetCSRFToken(c),
	})
}

// SendOTP requests a one-time code and moves to the verify step.
// POST /login
func (h *Handler) SendOTP(c *gin.Context) {
	var req SendOTPRequest
	if err := c.ShouldBind(&req); err != nil {
		c.HTML(http.StatusOK, "auth/login.html", gin.H{
			"Error":     "Please enter a valid phone number",
			"Phone":     c.PostForm("phone"),
			"CSRFToken": middleware.GetCSRFToken(c),
		})
		return
	}

	if err := h.gw.SendOTP(c.Request.Context(), req.Phone); err != nil {
		h.logger.WarnContext(c.Request.Context(), "send otp failed", slog.Any("error", err))
		c.HTML(http.StatusOK, "auth/login.html", gin.H{
			"Error":     errorMessage(err, "Could not send the code, please try again"),
			"Phone":     req.Phone,
			"CSRFToken": middleware.GetCSRFToken(c),
		})
		return
	}

	c.SetCookie(phoneCookie, req.Phone, int(phoneCookieTTL.Seconds()), "/", "", h.cookie.Secure, true)
	c.Redirect(http.StatusFound, "/verify")
}

// VerifyPage renders the code entry form.
// GET /verify
func (h *Handler) VerifyPage(c *gin.Context) {
	phone, err := c.Cookie(phoneCookie)
	if err != nil || phone == "" {
		c.Redirect(http.StatusFound, "/login")
		return
	}
	c.HTML(http.StatusOK, "auth/verify.html", gin.H{
		"Phone":     phone,
		"CSRFToken": middleware.GetCSRFToken(c),
	})
}

// ResendOTP requests a fresh code for the phone already in the flow.
// POST /resend
func (h *Handler) ResendOTP(c *gin.Context) {
	phone, err := c.Cookie(phoneCookie)
	if err != nil || phone == "" {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	data := gin.H{
		"Phone":     phone,
		"CSRFToken": middleware.GetCSRFToken(c),
	}
	if err := h.gw.SendOTP(c.Request.Context(), phone); err != nil {
		h.logger.WarnContext(c.Request.Context(), "resend otp failed", slog.Any("error", err))
		data["Error"] = errorMessage(err, "Could not resend the code, please try again")
	} else {
		// The cookie window restarts with the new code.
		c.SetCookie(phoneCookie, phone, int(phoneCookieTTL.Seconds()), "/", "", h.cookie.Secure, true)
		data["Notice"] = "A new code has been sent"
	}
	c.HTML(http.StatusOK, "auth/verify.html", data)
}

// VerifyOTP exchanges the code for a session.
// POST /verify
func (h *Handler) VerifyOTP(c *gin.Context) {
	phone, err := c.Cookie(phoneCookie)
	if err != nil || phone == "" {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	var req VerifyOTPRequest
	if err := c.ShouldBind(&req); err != nil {
		c.HTML(http.StatusOK, "auth/verify.html", gin.H{
			"Phone":     phone,
			"Error":     "Please enter the 4-digit code",
			"CSRFToken": middleware.GetCSRFToken(c),
		})
		return
	}

	creds, err := h.gw.VerifyOTP(c.Request.Context(), phone, req.OTP)
	if err != nil {
		h.logger.WarnContext(c.Request.Context(), "verify otp failed", slog.Any("error", err))
		c.HTML(http.StatusOK, "auth/verify.html", gin.H{
			"Phone":     phone,
			"Error":     errorMessage(err, "Verification failed, please try again"),
			"CSRFToken": middleware.GetCSRFToken(c),
		})
		return
	}

	h.signIn(c, creds)
}

// DebugLogin signs in without an OTP exchange. Only registered in debug mode.
// POST /debug-login
func (h *Handler) DebugLogin(c *gin.Context) {
	var req DebugLoginRequest
	if err := c.ShouldBind(&req); err != nil {
		c.HTML(http.StatusOK, "auth/login.html", gin.H{
			"Error":     "Please fill in all debug login fields",
			"CSRFToken": middleware.GetCSRFToken(c),
		})
		return
	}

	creds, err := h.gw.DebugAuth(c.Request.Context(), gateway.DebugAuthRequest{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	})
	if err != nil {
		c.HTML(http.StatusOK, "auth/login.html", gin.H{
			"Error":     errorMessage(err, "Debug login failed"),
			"CSRFToken": middleware.GetCSRFToken(c),
		})
		return
	}

	h.signIn(c, creds)
}

// Logout tears the session down and returns to the login screen. Teardown is
// idempotent: a request racing an unauthorized-triggered teardown still lands
// on /login without error.
// POST /logout
func (h *Handler) Logout(c *gin.Context) {
	if sess, ok := session.FromContext(c.Request.Context()); ok {
		// Best effort: the local session dies regardless of the upstream
		// call's outcome.
		if err := h.gw.Logout(c.Request.Context()); err != nil {
			h.logger.WarnContext(c.Request.Context(), "upstream logout failed", slog.Any("error", err))
		}
		if err := h.sessions.Destroy(c.Request.Context(), sess.ID); err != nil {
			h.logger.ErrorContext(c.Request.Context(), "session destroy failed", slog.Any("error", err))
		}
	}

	c.SetCookie(h.cookie.Name, "", -1, "/", "", h.cookie.Secure, true)
	c.Redirect(http.StatusFound, "/login")
}

// signIn stores the credentials and issues the session cookie.
func (h *Handler) signIn(c *gin.Context, creds *gateway.Credentials) {
	sess, err := h.sessions.Create(c.Request.Context(), creds.Token, creds.User)
	if err != nil {
		h.logger.ErrorContext(c.Request.Context(), "session create failed", slog.Any("error", err))
		c.HTML(http.StatusInternalServerError, "errors/500.html", gin.H{})
		return
	}

	c.SetCookie(phoneCookie, "", -1, "/", "", h.cookie.Secure, true)
	c.SetCookie(h.cookie.Name, sess.ID, int(h.cookie.TTL.Seconds()), "/", "", h.cookie.Secure, true)
	c.Redirect(http.StatusFound, "/")
}

// errorMessage surfaces gateway messages that are safe to show and falls
// back for everything else.
func errorMessage(err error, fallback string) string {
	return pkg.SafeMessage(err, fallback)
}
