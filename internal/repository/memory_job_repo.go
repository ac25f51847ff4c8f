package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/hitoshi/jobboard/internal/model"
)

// postedDateLayout はPostedDateの日付フォーマット。
const postedDateLayout = "2006-01-02"

// MemoryJobRepo はJobRepositoryのインメモリ実装。
// データはプロセスのライフタイムのみ保持され、永続化されない。
// IDはプロセス内で単調増加し、削除後も再利用されない。
type MemoryJobRepo struct {
	mu     sync.RWMutex
	jobs   map[int]*model.Job
	nextID int
	now    func() time.Time
}

// NewMemoryJobRepo はMemoryJobRepoを生成する。IDの採番は1から始まる。
func NewMemoryJobRepo() *MemoryJobRepo {
	return NewMemoryJobRepoWithClock(time.Now)
}

// NewMemoryJobRepoWithClock は時刻取得関数を差し替えたMemoryJobRepoを生成する。
// テストでPostedDateを固定する用途。
func NewMemoryJobRepoWithClock(now func() time.Time) *MemoryJobRepo {
	return &MemoryJobRepo{
		jobs:   make(map[int]*model.Job),
		nextID: 1,
		now:    now,
	}
}

// FindByID は指定IDの求人を取得する。見つからない場合はnilを返す。
func (r *MemoryJobRepo) FindByID(ctx context.Context, id int) (*model.Job, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	job, ok := r.jobs[id]
	if !ok {
		return nil, nil
	}

	// 呼び出し元にライブな参照を渡さないためコピーを返す
	copied := *job
	return &copied, nil
}

// ListAll は全求人をID降順（新着順）で返す。
func (r *MemoryJobRepo) ListAll(ctx context.Context) ([]*model.Job, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.collectLocked(func(*model.Job) bool { return true }), nil
}

// Create は求人を作成する。
// 次のIDを採番し、PostedDateを作成日に設定して格納する。
func (r *MemoryJobRepo) Create(ctx context.Context, insert model.InsertJob) (*model.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	job := &model.Job{
		ID:           r.nextID,
		Title:        insert.Title,
		Department:   insert.Department,
		Location:     insert.Location,
		Type:         insert.Type,
		Salary:       insert.Salary,
		Summary:      insert.Summary,
		Description:  insert.Description,
		Requirements: insert.Requirements,
		NiceToHave:   insert.NiceToHave,
		PostedDate:   r.now().Format(postedDateLayout),
	}
	r.nextID++
	r.jobs[job.ID] = job

	copied := *job
	return &copied, nil
}

// Update は指定IDの求人に部分更新をマージする。
// nilフィールドは既存の値を維持し、IDとPostedDateは保持される。
// 見つからない場合はnilを返し、何も変更しない。
func (r *MemoryJobRepo) Update(ctx context.Context, id int, update model.JobUpdate) (*model.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	job, ok := r.jobs[id]
	if !ok {
		return nil, nil
	}

	applyString(&job.Title, update.Title)
	applyString(&job.Department, update.Department)
	applyString(&job.Location, update.Location)
	applyString(&job.Type, update.Type)
	applyString(&job.Salary, update.Salary)
	applyString(&job.Summary, update.Summary)
	applyString(&job.Description, update.Description)
	applyString(&job.Requirements, update.Requirements)
	applyString(&job.NiceToHave, update.NiceToHave)

	copied := *job
	return &copied, nil
}

// Delete は指定IDの求人を削除する。
// 削除が発生した場合はtrueを返す。2回目の削除は安全だがfalseを返す。
func (r *MemoryJobRepo) Delete(ctx context.Context, id int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.jobs[id]; !ok {
		return false, nil
	}
	delete(r.jobs, id)
	return true, nil
}

// Filter は条件に一致する求人をID降順で返す。
// 空文字列の条件は制約なしとして扱い、全条件のAND一致で判定する。
// インデックスは持たず、全件を線形走査する。
func (r *MemoryJobRepo) Filter(ctx context.Context, filter model.JobFilter) ([]*model.Job, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.collectLocked(func(job *model.Job) bool {
		if filter.Department != "" && job.Department != filter.Department {
			return false
		}
		if filter.Location != "" && job.Location != filter.Location {
			return false
		}
		if filter.Type != "" && job.Type != filter.Type {
			return false
		}
		return true
	}), nil
}

// collectLocked は条件に一致する求人のコピーをID降順で収集する。
// 呼び出し元がロックを保持していること。
func (r *MemoryJobRepo) collectLocked(match func(*model.Job) bool) []*model.Job {
	results := make([]*model.Job, 0, len(r.jobs))
	for _, job := range r.jobs {
		if match(job) {
			copied := *job
			results = append(results, &copied)
		}
	}

	// 新着順（ID降順）
	sort.Slice(results, func(i, j int) bool {
		return results[i].ID > results[j].ID
	})

	return results
}

// applyString はsrcがnilでない場合のみdstを上書きする。
func applyString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
