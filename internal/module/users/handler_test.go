package users

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/simp-lee/loanadmin/internal/domain"
	"github.com/simp-lee/loanadmin/internal/gateway"
)

type fakeGateway struct {
	users   map[string]*domain.User
	lastQ   gateway.UserListQuery
	listRes *domain.PageResult[domain.User]
	listErr error

	activeSet map[string]bool
	deleted   []string
}

func newFakeGateway(users ...*domain.User) *fakeGateway {
	f := &fakeGateway{
		users:     make(map[string]*domain.User),
		activeSet: make(map[string]bool),
	}
	for _, u := range users {
		f.users[u.ID] = u
	}
	return f
}

func (f *fakeGateway) List(ctx context.Context, q gateway.UserListQuery) (*domain.PageResult[domain.User], error) {
	f.lastQ = q
	if f.listErr != nil {
		return nil, f.listErr
	}
	if f.listRes != nil {
		return f.listRes, nil
	}
	return &domain.PageResult[domain.User]{
		Pagination: domain.Pagination{Page: q.Page, Limit: q.Limit, Pages: 1},
	}, nil
}

func (f *fakeGateway) Get(ctx context.Context, id string) (*domain.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return u, nil
}

func (f *fakeGateway) Create(ctx context.Context, in gateway.UserInput) (*domain.User, error) {
	u := &domain.User{ID: "new-user", Name: in.Name, Email: in.Email, Role: in.Role, IsActive: true}
	f.users[u.ID] = u
	return u, nil
}

func (f *fakeGateway) Update(ctx context.Context, id string, in gateway.UserInput) (*domain.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	u.Name = in.Name
	return u, nil
}

func (f *fakeGateway) SetActive(ctx context.Context, id string, active bool) (*domain.User, error) {
	f.activeSet[id] = active
	u, ok := f.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	u.IsActive = active
	return u, nil
}

func (f *fakeGateway) Delete(ctx context.Context, id string) error {
	f.deleted = append(f.deleted, id)
	return nil
}

func newRouter(gw Gateway) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewModule(gw).RegisterRoutes(r.Group("/api/v1"), r.Group("/"))
	return r
}

func doJSON(r *gin.Engine, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestList_ForwardsRoleAndActiveFilters(t *testing.T) {
	gw := newFakeGateway()
	r := newRouter(gw)

	w := doJSON(r, http.MethodGet, "/api/v1/users?role=sales&isActive=true&search=ali&page=2", "")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}
	if gw.lastQ.Role != "sales" || gw.lastQ.IsActive != "true" {
		t.Errorf("query = %+v", gw.lastQ)
	}
	if gw.lastQ.Search != "ali" || gw.lastQ.Page != 2 {
		t.Errorf("query = %+v", gw.lastQ)
	}
	if gw.lastQ.Status != "" {
		t.Errorf("status filter leaked: %q", gw.lastQ.Status)
	}
}

func TestAction_BlockIsTwoStep(t *testing.T) {
	gw := newFakeGateway(&domain.User{ID: "u1", IsActive: true})
	r := newRouter(gw)

	w := doJSON(r, http.MethodPost, "/api/v1/users/u1/actions/block", "")
	if w.Code != http.StatusOK {
		t.Fatalf("begin status = %d: %s", w.Code, w.Body.String())
	}
	var resp struct {
		Data struct {
			Token          string `json:"token"`
			RequiresReason bool   `json:"requiresReason"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Data.Token) != 32 {
		t.Fatalf("token = %q", resp.Data.Token)
	}
	if len(gw.activeSet) != 0 {
		t.Fatal("active flag toggled before confirmation")
	}

	w = doJSON(r, http.MethodPost, "/api/v1/users/u1/actions/confirm", `{"token":"`+resp.Data.Token+`"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("confirm status = %d: %s", w.Code, w.Body.String())
	}
	if active, ok := gw.activeSet["u1"]; !ok || active {
		t.Errorf("activeSet = %v, want u1 set inactive", gw.activeSet)
	}
}

func TestAction_UnblockExecutesImmediately(t *testing.T) {
	gw := newFakeGateway(&domain.User{ID: "u1", IsActive: false})
	r := newRouter(gw)

	w := doJSON(r, http.MethodPost, "/api/v1/users/u1/actions/unblock", "")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}
	if active, ok := gw.activeSet["u1"]; !ok || !active {
		t.Errorf("activeSet = %v, want u1 set active", gw.activeSet)
	}
}

func TestAction_UnblockActiveUserRejected(t *testing.T) {
	gw := newFakeGateway(&domain.User{ID: "u1", IsActive: true})
	r := newRouter(gw)

	w := doJSON(r, http.MethodPost, "/api/v1/users/u1/actions/unblock", "")

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if len(gw.activeSet) != 0 {
		t.Error("active flag toggled despite the gate")
	}
}

func TestCreate_RoleMustBeKnown(t *testing.T) {
	gw := newFakeGateway()
	r := newRouter(gw)

	w := doJSON(r, http.MethodPost, "/api/v1/users",
		`{"name":"Ali Hassan","email":"ali@example.com","phone":"0501234567","role":"superhero"}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if !strings.Contains(w.Body.String(), "role") {
		t.Errorf("body = %s, want field error for role", w.Body.String())
	}
}

func TestCreate_ReturnsCreated(t *testing.T) {
	gw := newFakeGateway()
	r := newRouter(gw)

	w := doJSON(r, http.MethodPost, "/api/v1/users",
		`{"name":"Ali Hassan","email":"ali@example.com","phone":"0501234567","role":"sales"}`)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}
	if u := gw.users["new-user"]; u == nil || u.Role != "sales" {
		t.Errorf("created user = %+v", gw.users["new-user"])
	}
}

func TestRoleLabel(t *testing.T) {
	if got := roleLabel("financial-approval"); got != "Financial approval" {
		t.Errorf("roleLabel = %q", got)
	}
	if got := roleLabel("sales"); got != "Sales" {
		t.Errorf("roleLabel = %q", got)
	}
}
