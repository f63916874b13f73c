package banks

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
	banks   map[string]*domain.Bank
	listRes *domain.PageResult[domain.Bank]
	listErr error

	activeSet map[string]bool
	deleted   []string
}

func newFakeGateway(banks ...*domain.Bank) *fakeGateway {
	f := &fakeGateway{
		banks:     make(map[string]*domain.Bank),
		activeSet: make(map[string]bool),
	}
	for _, b := range banks {
		f.banks[b.ID] = b
	}
	return f
}

func (f *fakeGateway) List(ctx context.Context, q domain.ListQuery) (*domain.PageResult[domain.Bank], error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.listRes, nil
}

func (f *fakeGateway) Get(ctx context.Context, id string) (*domain.Bank, error) {
	b, ok := f.banks[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return b, nil
}

func (f *fakeGateway) Create(ctx context.Context, in gateway.BankInput) (*domain.Bank, error) {
	b := &domain.Bank{ID: "new-bank", Name: in.Name, IsActive: true}
	f.banks[b.ID] = b
	return b, nil
}

func (f *fakeGateway) Update(ctx context.Context, id string, in gateway.BankInput) (*domain.Bank, error) {
	b, ok := f.banks[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	b.Name = in.Name
	return b, nil
}

func (f *fakeGateway) SetActive(ctx context.Context, id string, active bool) error {
	f.activeSet[id] = active
	return nil
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

func dataField(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var resp struct {
		Data map[string]any `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp.Data
}

func TestAction_BlockActiveBankIsTwoStep(t *testing.T) {
	gw := newFakeGateway(&domain.Bank{ID: "b1", IsActive: true})
	r := newRouter(gw)

	w := doJSON(r, http.MethodPost, "/api/v1/banks/b1/actions/block", "")
	if w.Code != http.StatusOK {
		t.Fatalf("begin status = %d: %s", w.Code, w.Body.String())
	}
	data := dataField(t, w)
	token, _ := data["token"].(string)
	if len(token) != 32 {
		t.Fatalf("token = %q", token)
	}
	if reason, _ := data["requiresReason"].(bool); reason {
		t.Error("requiresReason = true, want false for bank block")
	}
	if len(gw.activeSet) != 0 {
		t.Fatal("status toggled before confirmation")
	}

	w = doJSON(r, http.MethodPost, "/api/v1/banks/b1/actions/confirm", `{"token":"`+token+`"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("confirm status = %d: %s", w.Code, w.Body.String())
	}
	if active, ok := gw.activeSet["b1"]; !ok || active {
		t.Errorf("activeSet = %v, want b1 set inactive", gw.activeSet)
	}
}

func TestAction_UnblockExecutesImmediately(t *testing.T) {
	gw := newFakeGateway(&domain.Bank{ID: "b1", IsActive: false})
	r := newRouter(gw)

	w := doJSON(r, http.MethodPost, "/api/v1/banks/b1/actions/unblock", "")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}
	if active, ok := gw.activeSet["b1"]; !ok || !active {
		t.Errorf("activeSet = %v, want b1 set active", gw.activeSet)
	}
}

func TestAction_BlockInactiveBankRejected(t *testing.T) {
	gw := newFakeGateway(&domain.Bank{ID: "b1", IsActive: false})
	r := newRouter(gw)

	w := doJSON(r, http.MethodPost, "/api/v1/banks/b1/actions/block", "")

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if len(gw.activeSet) != 0 {
		t.Error("status toggled despite the gate")
	}
}

func TestAction_ApproveNotDefinedForBanks(t *testing.T) {
	gw := newFakeGateway(&domain.Bank{ID: "b1", IsActive: true})
	r := newRouter(gw)

	w := doJSON(r, http.MethodPost, "/api/v1/banks/b1/actions/approve", "")

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestAction_DeleteConfirmed(t *testing.T) {
	gw := newFakeGateway(&domain.Bank{ID: "b1", IsActive: true})
	r := newRouter(gw)

	w := doJSON(r, http.MethodPost, "/api/v1/banks/b1/actions/delete", "")
	token, _ := dataField(t, w)["token"].(string)

	w = doJSON(r, http.MethodPost, "/api/v1/banks/b1/actions/confirm", `{"token":"`+token+`"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("confirm status = %d", w.Code)
	}
	if len(gw.deleted) != 1 || gw.deleted[0] != "b1" {
		t.Errorf("deleted = %v", gw.deleted)
	}
}

func TestCreate_ValidationError(t *testing.T) {
	r := newRouter(newFakeGateway())

	w := doJSON(r, http.MethodPost, "/api/v1/banks", `{"name":"x","contactEmail":"bad"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, "name") || !strings.Contains(body, "contactEmail") {
		t.Errorf("body = %s, want field errors for name and contactEmail", body)
	}
}

func TestCreate_ReturnsCreated(t *testing.T) {
	gw := newFakeGateway()
	r := newRouter(gw)

	w := doJSON(r, http.MethodPost, "/api/v1/banks", `{"name":"First Gulf Bank"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}
	if _, ok := gw.banks["new-bank"]; !ok {
		t.Error("bank not created")
	}
}

func TestOffered_ByActiveFlag(t *testing.T) {
	if got := offered(true); len(got) != 2 || got[0] != "block" || got[1] != "delete" {
		t.Errorf("offered(true) = %v", got)
	}
	if got := offered(false); len(got) != 2 || got[0] != "unblock" || got[1] != "delete" {
		t.Errorf("offered(false) = %v", got)
	}
}
