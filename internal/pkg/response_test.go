package pkg

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/simp-lee/loanadmin/internal/domain"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// testInput is used to generate real validator.ValidationErrors.
type testInput struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
}

// newResponseTestContext creates a gin context backed by an httptest.ResponseRecorder.
func newResponseTestContext() (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	return c, w
}

// newResponseTestContextWithBody creates a gin context with a JSON request body.
func newResponseTestContextWithBody(body string) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return c, w
}

func TestSuccess(t *testing.T) {
	c, w := newResponseTestContext()

	Success(c, map[string]string{"greeting": "hello"})

	if w.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, w.Code)
	}

	var resp Response
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if resp.Code != http.StatusOK {
		t.Errorf("expected code %d, got %d", http.StatusOK, resp.Code)
	}
	if resp.Message != "success" {
		t.Errorf("expected message %q, got %q", "success", resp.Message)
	}
	if resp.Data == nil {
		t.Error("expected non-nil data")
	}
}

func TestError_AppError_NotFound(t *testing.T) {
	c, w := newResponseTestContext()

	Error(c, domain.NewAppError(domain.CodeNotFound, "dealer not found", nil))

	if w.Code != http.StatusNotFound {
		t.Errorf("expected status %d, got %d", http.StatusNotFound, w.Code)
	}

	var resp Response
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if resp.Message != "dealer not found" {
		t.Errorf("expected message %q, got %q", "dealer not found", resp.Message)
	}
}

func TestError_UpstreamMapsToBadGateway(t *testing.T) {
	c, w := newResponseTestContext()

	Error(c, domain.NewAppError(domain.CodeUpstream, "backend rejected the request", nil))

	if w.Code != http.StatusBadGateway {
		t.Errorf("expected status %d, got %d", http.StatusBadGateway, w.Code)
	}
}

func TestError_PlainError(t *testing.T) {
	c, w := newResponseTestContext()

	Error(c, errors.New("something broke"))

	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected status %d, got %d", http.StatusInternalServerError, w.Code)
	}

	var resp Response
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	// Plain errors must not leak their text to clients.
	if resp.Message != "internal error" {
		t.Errorf("expected message %q, got %q", "internal error", resp.Message)
	}
}

func TestSafeMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "validation message passes through",
			err:  domain.NewAppError(domain.CodeValidation, "phone is invalid", nil),
			want: "phone is invalid",
		},
		{
			name: "upstream message passes through",
			err:  domain.NewAppError(domain.CodeUpstream, "phone not registered", nil),
			want: "phone not registered",
		},
		{
			name: "generic upstream fallback is replaced",
			err:  domain.NewAppError(domain.CodeUpstream, "request failed", nil),
			want: "try again",
		},
		{
			name: "internal errors are hidden",
			err:  domain.NewAppError(domain.CodeInternal, "dial tcp: connection refused", nil),
			want: "try again",
		},
		{
			name: "plain errors are hidden",
			err:  errors.New("boom"),
			want: "try again",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SafeMessage(tt.err, "try again"); got != tt.want {
				t.Errorf("SafeMessage() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBindAndValidate_Valid(t *testing.T) {
	c, w := newResponseTestContextWithBody(`{"name":"Sara","email":"sara@example.com"}`)

	var in testInput
	if !BindAndValidate(c, &in) {
		t.Fatalf("BindAndValidate() = false, body: %s", w.Body.String())
	}
	if in.Name != "Sara" {
		t.Errorf("Name = %q", in.Name)
	}
}

func TestBindAndValidate_FieldErrorsUseJSONTags(t *testing.T) {
	c, w := newResponseTestContextWithBody(`{"name":"","email":"not-an-email"}`)

	var in testInput
	if BindAndValidate(c, &in) {
		t.Fatal("BindAndValidate() = true, want false")
	}
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, w.Code)
	}

	var resp ValidationErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if _, ok := resp.Errors["name"]; !ok {
		t.Errorf("expected error keyed by json tag %q, got %v", "name", resp.Errors)
	}
	if _, ok := resp.Errors["email"]; !ok {
		t.Errorf("expected error keyed by json tag %q, got %v", "email", resp.Errors)
	}
}

func TestBindAndValidate_MalformedBody(t *testing.T) {
	c, w := newResponseTestContextWithBody(`{"name":`)

	var in testInput
	if BindAndValidate(c, &in) {
		t.Fatal("BindAndValidate() = true, want false")
	}
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status %d, got %d", http.StatusBadRequest, w.Code)
	}
}
