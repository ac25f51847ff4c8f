// Package auth は認証のドメインロジックを提供する。
package auth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hitoshi/jobboard/internal/model"
	"github.com/hitoshi/jobboard/internal/repository"
)

// Service は認証のサービス層。
// ワンショットの資格情報チェックのみを提供し、セッションやトークンは発行しない。
type Service struct {
	userRepo repository.UserRepository
}

// NewService はServiceの新しいインスタンスを生成する。
func NewService(userRepo repository.UserRepository) *Service {
	return &Service{
		userRepo: userRepo,
	}
}

// Login はユーザー名とパスワードを検証し、一致した場合にユーザーを返す。
// パスワードは平文の等値比較で検証する（ストアの登録仕様に準拠）。
// ユーザー不在とパスワード不一致はどちらも同一のAPIErrorを返し、区別しない。
func (s *Service) Login(ctx context.Context, username, password string) (*model.User, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("ユーザーの取得に失敗しました: %w", err)
	}

	if user == nil || user.Password != password {
		slog.Warn("login failed",
			slog.String("username", username),
		)
		return nil, model.NewInvalidCredentialsError()
	}

	slog.Info("login succeeded",
		slog.String("username", username),
		slog.Bool("is_admin", user.IsAdminBool()),
	)

	return user, nil
}
