package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/hitoshi/jobboard/internal/middleware"
	"github.com/hitoshi/jobboard/internal/model"
)

// --- モック定義 ---

// mockAuthService はAuthServiceInterfaceのモック実装。
type mockAuthService struct {
	loginFn func(ctx context.Context, username, password string) (*model.User, error)
}

func (m *mockAuthService) Login(ctx context.Context, username, password string) (*model.User, error) {
	if m.loginFn != nil {
		return m.loginFn(ctx, username, password)
	}
	return nil, model.NewInvalidCredentialsError()
}

// countingLoginMetrics はログイン失敗の記録回数を数える。
type countingLoginMetrics struct {
	failures int
}

func (c *countingLoginMetrics) RecordLoginFailure() {
	c.failures++
}

func postLogin(h *AuthHandler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	w := httptest.NewRecorder()
	h.Login(w, req)
	return w
}

func TestAuthHandler_Login_Success(t *testing.T) {
	svc := &mockAuthService{
		loginFn: func(ctx context.Context, username, password string) (*model.User, error) {
			if username != "admin" || password != "admin123" {
				t.Errorf("credentials = (%q, %q), want (admin, admin123)", username, password)
			}
			return &model.User{ID: 1, Username: "admin", Password: "admin123", IsAdmin: "true"}, nil
		},
	}
	h := NewAuthHandler(svc, nil)

	w := postLogin(h, `{"username": "admin", "password": "admin123"}`)

	resp := w.Result()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusOK)
	}

	var body struct {
		User struct {
			ID       int    `json:"id"`
			Username string `json:"username"`
			IsAdmin  bool   `json:"isAdmin"`
		} `json:"user"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if body.User.ID != 1 {
		t.Errorf("user.id = %d, want 1", body.User.ID)
	}
	if body.User.Username != "admin" {
		t.Errorf("user.username = %q, want %q", body.User.Username, "admin")
	}
	if !body.User.IsAdmin {
		t.Error("user.isAdmin = false, want true")
	}
}

// ログイン成功レスポンスにパスワードを含めないこと。
func TestAuthHandler_Login_ResponseOmitsPassword(t *testing.T) {
	svc := &mockAuthService{
		loginFn: func(ctx context.Context, username, password string) (*model.User, error) {
			return &model.User{ID: 1, Username: "admin", Password: "admin123", IsAdmin: "true"}, nil
		},
	}
	h := NewAuthHandler(svc, nil)

	w := postLogin(h, `{"username": "admin", "password": "admin123"}`)

	if strings.Contains(w.Body.String(), "admin123") {
		t.Errorf("body = %q, leaks password", w.Body.String())
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	metrics := &countingLoginMetrics{}
	h := NewAuthHandler(&mockAuthService{}, metrics)

	w := postLogin(h, `{"username": "admin", "password": "wrong"}`)

	resp := w.Result()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusUnauthorized)
	}

	var body middleware.ErrorResponseBody
	json.NewDecoder(resp.Body).Decode(&body)
	if body.Code != model.ErrCodeInvalidCredentials {
		t.Errorf("code = %q, want %q", body.Code, model.ErrCodeInvalidCredentials)
	}
	if metrics.failures != 1 {
		t.Errorf("login failures recorded = %d, want 1", metrics.failures)
	}
}

func TestAuthHandler_Login_MissingFieldsAreRejected(t *testing.T) {
	called := false
	svc := &mockAuthService{
		loginFn: func(ctx context.Context, username, password string) (*model.User, error) {
			called = true
			return nil, nil
		},
	}
	h := NewAuthHandler(svc, nil)

	w := postLogin(h, `{"username": "admin"}`)

	resp := w.Result()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusBadRequest)
	}
	if called {
		t.Error("Login must not be called on validation failure")
	}

	var body middleware.ErrorResponseBody
	json.NewDecoder(resp.Body).Decode(&body)
	if body.Code != model.ErrCodeValidationFailed {
		t.Errorf("code = %q, want %q", body.Code, model.ErrCodeValidationFailed)
	}
}

func TestAuthHandler_Login_MalformedJSONIsRejected(t *testing.T) {
	h := NewAuthHandler(&mockAuthService{}, nil)

	w := postLogin(h, `{broken`)

	if w.Result().StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", w.Result().StatusCode, http.StatusBadRequest)
	}
}

func TestAuthHandler_Login_UnknownFieldIsRejected(t *testing.T) {
	h := NewAuthHandler(&mockAuthService{}, nil)

	w := postLogin(h, `{"username": "admin", "password": "x", "remember": true}`)

	if w.Result().StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", w.Result().StatusCode, http.StatusBadRequest)
	}
}
