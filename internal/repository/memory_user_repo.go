package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/hitoshi/jobboard/internal/model"
)

// MemoryUserRepo はUserRepositoryのインメモリ実装。
// ユーザー名のユニーク制約は持たない。重複が存在する場合、
// FindByUsernameは挿入順（ID昇順）で最初の1件を返す。
type MemoryUserRepo struct {
	mu     sync.RWMutex
	users  map[int]*model.User
	nextID int
}

// NewMemoryUserRepo はMemoryUserRepoを生成する。IDの採番は1から始まる。
func NewMemoryUserRepo() *MemoryUserRepo {
	return &MemoryUserRepo{
		users:  make(map[int]*model.User),
		nextID: 1,
	}
}

// FindByUsername はユーザー名が一致する最初のユーザーを返す。
// 見つからない場合はnilを返す。
func (r *MemoryUserRepo) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	// mapのイテレーション順は不定のため、ID昇順で走査して決定的にする
	ids := make([]int, 0, len(r.users))
	for id := range r.users {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	for _, id := range ids {
		if r.users[id].Username == username {
			copied := *r.users[id]
			return &copied, nil
		}
	}
	return nil, nil
}

// Create はユーザーを作成する。
// IsAdminが空の場合は "false" をデフォルトとする。重複チェックは行わない。
func (r *MemoryUserRepo) Create(ctx context.Context, insert model.InsertUser) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	isAdmin := insert.IsAdmin
	if isAdmin == "" {
		isAdmin = "false"
	}

	user := &model.User{
		ID:       r.nextID,
		Username: insert.Username,
		Password: insert.Password,
		IsAdmin:  isAdmin,
	}
	r.nextID++
	r.users[user.ID] = user

	copied := *user
	return &copied, nil
}
