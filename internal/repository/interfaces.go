// Package repository はレコードストアのインターフェースを定義する。
package repository

import (
	"context"

	"github.com/hitoshi/jobboard/internal/model"
)

// JobRepository は求人データのレコードストアインターフェース。
type JobRepository interface {
	// FindByID は指定IDの求人を取得する。見つからない場合はnilを返す。
	FindByID(ctx context.Context, id int) (*model.Job, error)

	// ListAll は全求人をID降順（新着順）で返す。
	ListAll(ctx context.Context) ([]*model.Job, error)

	// Create は求人を作成する。IDの採番とPostedDateの設定はストアが行う。
	Create(ctx context.Context, insert model.InsertJob) (*model.Job, error)

	// Update は指定IDの求人に部分更新をマージする。
	// nilフィールドは既存の値を維持する。IDとPostedDateは変更されない。
	// 見つからない場合はnilを返し、何も変更しない。
	Update(ctx context.Context, id int, update model.JobUpdate) (*model.Job, error)

	// Delete は指定IDの求人を削除する。
	// 実際に削除された場合はtrueを、存在しなかった場合はfalseを返す。
	Delete(ctx context.Context, id int) (bool, error)

	// Filter は条件に一致する求人をID降順で返す。
	// 空文字列の条件は制約なしとして扱い、全条件のAND一致で判定する。
	Filter(ctx context.Context, filter model.JobFilter) ([]*model.Job, error)
}

// UserRepository はユーザーデータのレコードストアインターフェース。
type UserRepository interface {
	// FindByUsername はユーザー名が一致する最初のユーザーを返す。
	// 重複ユーザー名が存在する場合は挿入順で最初の1件を返す。見つからない場合はnil。
	FindByUsername(ctx context.Context, username string) (*model.User, error)

	// Create はユーザーを作成する。IDの採番はストアが行う。
	// IsAdminが未指定の場合は "false" がデフォルトになる。
	// ユーザー名の重複チェックは行わない。
	Create(ctx context.Context, insert model.InsertUser) (*model.User, error)
}
