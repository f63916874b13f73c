package profile

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/render"

	"github.com/simp-lee/loanadmin/internal/domain"
	"github.com/simp-lee/loanadmin/internal/gateway"
	"github.com/simp-lee/loanadmin/internal/session"
)

type fakeGateway struct {
	me        *domain.Account
	meErr     error
	updated   *gateway.ProfileUpdate
	notified  *gateway.NotificationSettings
	preferred *gateway.GlobalPreferences
}

func (f *fakeGateway) Me(ctx context.Context) (*domain.Account, error) {
	if f.meErr != nil {
		return nil, f.meErr
	}
	return f.me, nil
}

func (f *fakeGateway) UpdateProfile(ctx context.Context, update gateway.ProfileUpdate) (*domain.Account, error) {
	f.updated = &update
	return &domain.Account{ID: "a1", Name: update.Name, Email: update.Email, Role: domain.AccountRoleSuperAdmin}, nil
}

func (f *fakeGateway) UpdateNotifications(ctx context.Context, settings gateway.NotificationSettings) error {
	f.notified = &settings
	return nil
}

func (f *fakeGateway) UpdatePreferences(ctx context.Context, prefs gateway.GlobalPreferences) error {
	f.preferred = &prefs
	return nil
}

type fakeSessions struct {
	updatedID  string
	updatedAcc domain.Account
}

func (f *fakeSessions) UpdateAccount(ctx context.Context, id string, account domain.Account) error {
	f.updatedID = id
	f.updatedAcc = account
	return nil
}

type templateNameRenderer struct{}

func (templateNameRenderer) Instance(name string, data any) render.Render {
	return render.Data{ContentType: "text/html; charset=utf-8", Data: []byte(name)}
}

// withSession binds a fixed session into the request context, standing in
// for the session-loading middleware.
func withSession(sess *session.Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request = c.Request.WithContext(session.NewContext(c.Request.Context(), sess))
		c.Next()
	}
}

func newRouter(gw Gateway, sessions Sessions, sess *session.Session) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.HTMLRender = templateNameRenderer{}
	if sess != nil {
		r.Use(withSession(sess))
	}
	NewModule(gw, sessions).RegisterRoutes(r.Group("/api/v1"), r.Group("/"))
	return r
}

func TestUpdate_RefreshesSessionSnapshot(t *testing.T) {
	gw := &fakeGateway{}
	sessions := &fakeSessions{}
	sess := &session.Session{ID: strings.Repeat("ab", 32), AccountID: "a1", Name: "Old Name"}
	r := newRouter(gw, sessions, sess)

	body := `{"name":"New Name","email":"admin@example.com"}`
	req := httptest.NewRequest(http.MethodPut, "/api/v1/profile", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}
	if gw.updated == nil || gw.updated.Name != "New Name" {
		t.Errorf("update = %+v", gw.updated)
	}
	if sessions.updatedID != sess.ID {
		t.Errorf("session updated for %q, want %q", sessions.updatedID, sess.ID)
	}
	if sessions.updatedAcc.Name != "New Name" {
		t.Errorf("snapshot name = %q", sessions.updatedAcc.Name)
	}
}

func TestUpdate_ValidationError(t *testing.T) {
	gw := &fakeGateway{}
	r := newRouter(gw, &fakeSessions{}, nil)

	req := httptest.NewRequest(http.MethodPut, "/api/v1/profile", strings.NewReader(`{"name":"x","email":"bad"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if gw.updated != nil {
		t.Error("update reached the gateway despite invalid input")
	}
}

func TestProfilePage_FallsBackToSessionSnapshot(t *testing.T) {
	gw := &fakeGateway{meErr: domain.ErrUnavailable}
	sess := &session.Session{ID: strings.Repeat("cd", 32), AccountID: "a1", Name: "Cached Name"}
	r := newRouter(gw, &fakeSessions{}, sess)

	req := httptest.NewRequest(http.MethodGet, "/profile", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if got := w.Body.String(); got != "profile/show.html" {
		t.Errorf("template = %q", got)
	}
}

func TestNotificationsForm_UncheckedBoxesAreFalse(t *testing.T) {
	gw := &fakeGateway{}
	r := newRouter(gw, &fakeSessions{}, nil)

	form := url.Values{"emailAlerts": {"true"}, "loanUpdates": {"true"}}
	req := httptest.NewRequest(http.MethodPost, "/profile/notifications", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusFound {
		t.Fatalf("status = %d", w.Code)
	}
	if gw.notified == nil {
		t.Fatal("settings not sent")
	}
	if !gw.notified.EmailAlerts || !gw.notified.LoanUpdates {
		t.Errorf("settings = %+v", gw.notified)
	}
	if gw.notified.SMSAlerts || gw.notified.DealerUpdates {
		t.Errorf("unchecked toggles not false: %+v", gw.notified)
	}
}

func TestPreferencesForm_Forwards(t *testing.T) {
	gw := &fakeGateway{}
	r := newRouter(gw, &fakeSessions{}, nil)

	form := url.Values{"language": {"ar"}, "timezone": {"Asia/Riyadh"}, "currency": {"SAR"}}
	req := httptest.NewRequest(http.MethodPost, "/profile/preferences", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusFound {
		t.Fatalf("status = %d", w.Code)
	}
	if gw.preferred == nil || gw.preferred.Currency != "SAR" || gw.preferred.Language != "ar" {
		t.Errorf("preferences = %+v", gw.preferred)
	}
}
