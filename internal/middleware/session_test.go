package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/simp-lee/loanadmin/internal/domain"
	"github.com/simp-lee/loanadmin/internal/session"
)

const testCookie = "portal_session"

func newSessionManager(t *testing.T) *session.Manager {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "sessions.db")), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	m, err := session.NewManager(db, [32]byte{1}, time.Hour)
	if err != nil {
		t.Fatalf("NewManager() error: %v", err)
	}
	return m
}

func sessionRouter(m *session.Manager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(LoadSession(m, testCookie))

	protected := r.Group("", RequireSession())
	protected.GET("/dealers", func(c *gin.Context) {
		sess, _ := session.FromContext(c.Request.Context())
		c.String(http.StatusOK, sess.AccountID)
	})
	protected.GET("/api/dealers", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	return r
}

func TestRequireSession_PageRedirectsToLogin(t *testing.T) {
	r := sessionRouter(newSessionManager(t))

	req := httptest.NewRequest(http.MethodGet, "/dealers", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusFound {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusFound)
	}
	if loc := w.Header().Get("Location"); loc != "/login" {
		t.Errorf("Location = %q, want /login", loc)
	}
}

func TestRequireSession_APIGetsJSONUnauthorized(t *testing.T) {
	r := sessionRouter(newSessionManager(t))

	req := httptest.NewRequest(http.MethodGet, "/api/dealers", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusUnauthorized)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json; charset=utf-8" {
		t.Errorf("Content-Type = %q", ct)
	}
}

func TestLoadSession_ValidCookiePassesThrough(t *testing.T) {
	m := newSessionManager(t)
	sess, err := m.Create(context.Background(), "tok", domain.Account{ID: "acc-9", Role: domain.AccountRoleSuperAdmin})
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	r := sessionRouter(m)

	req := httptest.NewRequest(http.MethodGet, "/dealers", nil)
	req.AddCookie(&http.Cookie{Name: testCookie, Value: sess.ID})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if w.Body.String() != "acc-9" {
		t.Errorf("body = %q, want account id", w.Body.String())
	}
}

func TestLoadSession_StaleCookieClearedAndRedirected(t *testing.T) {
	r := sessionRouter(newSessionManager(t))

	req := httptest.NewRequest(http.MethodGet, "/dealers", nil)
	req.AddCookie(&http.Cookie{Name: testCookie, Value: "stale-session-id"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusFound {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusFound)
	}

	cleared := false
	for _, c := range w.Result().Cookies() {
		if c.Name == testCookie && c.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Error("stale session cookie was not cleared")
	}
}
