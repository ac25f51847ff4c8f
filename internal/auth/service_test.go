package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/hitoshi/jobboard/internal/model"
)

// mockUserRepo はrepository.UserRepositoryのモック実装。
type mockUserRepo struct {
	findByUsernameFn func(ctx context.Context, username string) (*model.User, error)
}

func (m *mockUserRepo) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	if m.findByUsernameFn != nil {
		return m.findByUsernameFn(ctx, username)
	}
	return nil, nil
}

func (m *mockUserRepo) Create(ctx context.Context, insert model.InsertUser) (*model.User, error) {
	return nil, errors.New("not implemented")
}

func adminUser() *model.User {
	return &model.User{ID: 1, Username: "admin", Password: "admin123", IsAdmin: "true"}
}

func TestService_Login_Success(t *testing.T) {
	repo := &mockUserRepo{
		findByUsernameFn: func(ctx context.Context, username string) (*model.User, error) {
			if username != "admin" {
				t.Errorf("username = %q, want %q", username, "admin")
			}
			return adminUser(), nil
		},
	}
	svc := NewService(repo)

	user, err := svc.Login(context.Background(), "admin", "admin123")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if user.ID != 1 {
		t.Errorf("ID = %d, want 1", user.ID)
	}
	if !user.IsAdminBool() {
		t.Error("IsAdminBool() = false, want true")
	}
}

func TestService_Login_WrongPassword(t *testing.T) {
	repo := &mockUserRepo{
		findByUsernameFn: func(ctx context.Context, username string) (*model.User, error) {
			return adminUser(), nil
		},
	}
	svc := NewService(repo)

	_, err := svc.Login(context.Background(), "admin", "wrong")
	var apiErr *model.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("err = %v, want APIError", err)
	}
	if apiErr.Code != model.ErrCodeInvalidCredentials {
		t.Errorf("Code = %q, want %q", apiErr.Code, model.ErrCodeInvalidCredentials)
	}
}

func TestService_Login_UnknownUser(t *testing.T) {
	svc := NewService(&mockUserRepo{})

	_, err := svc.Login(context.Background(), "nobody", "admin123")
	var apiErr *model.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("err = %v, want APIError", err)
	}
	// ユーザー不在とパスワード不一致は区別しない
	if apiErr.Code != model.ErrCodeInvalidCredentials {
		t.Errorf("Code = %q, want %q", apiErr.Code, model.ErrCodeInvalidCredentials)
	}
}

func TestService_Login_RepoErrorIsNotCredentialFailure(t *testing.T) {
	repo := &mockUserRepo{
		findByUsernameFn: func(ctx context.Context, username string) (*model.User, error) {
			return nil, errors.New("store unavailable")
		},
	}
	svc := NewService(repo)

	_, err := svc.Login(context.Background(), "admin", "admin123")
	if err == nil {
		t.Fatal("expected error")
	}
	var apiErr *model.APIError
	if errors.As(err, &apiErr) {
		t.Error("internal errors must not be surfaced as APIError")
	}
}
