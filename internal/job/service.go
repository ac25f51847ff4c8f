// Package job は求人管理のドメインロジックを提供する。
package job

import (
	"context"
	"fmt"
	"strings"

	"github.com/hitoshi/jobboard/internal/model"
	"github.com/hitoshi/jobboard/internal/repository"
	"github.com/hitoshi/jobboard/internal/security"
)

// filterUnconstrained はフィルタUIが「絞り込みなし」を表すのに使う値。
const filterUnconstrained = "all"

// Service は求人管理のサービス層。
// レコードストアへの唯一の窓口として、作成時のサニタイズと
// フィルタ条件の正規化を担当する。
type Service struct {
	repo      repository.JobRepository
	sanitizer security.ContentSanitizerService
}

// NewService はServiceの新しいインスタンスを生成する。
func NewService(repo repository.JobRepository, sanitizer security.ContentSanitizerService) *Service {
	return &Service{
		repo:      repo,
		sanitizer: sanitizer,
	}
}

// ListJobs は全求人を新着順（ID降順）で返す。
func (s *Service) ListJobs(ctx context.Context) ([]*model.Job, error) {
	jobs, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("求人一覧の取得に失敗しました: %w", err)
	}
	return jobs, nil
}

// GetJob は指定IDの求人を返す。見つからない場合はAPIErrorを返す。
func (s *Service) GetJob(ctx context.Context, id int) (*model.Job, error) {
	job, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("求人の取得に失敗しました: %w", err)
	}
	if job == nil {
		return nil, model.NewJobNotFoundError(id)
	}
	return job, nil
}

// CreateJob は求人を作成して返す。
// 公開ページに表示される本文系フィールドは保存前にサニタイズする。
func (s *Service) CreateJob(ctx context.Context, insert model.InsertJob) (*model.Job, error) {
	insert.Summary = s.sanitizeText(insert.Summary)
	insert.Description = s.sanitizeText(insert.Description)
	insert.Requirements = s.sanitizeText(insert.Requirements)
	insert.NiceToHave = s.sanitizeText(insert.NiceToHave)

	job, err := s.repo.Create(ctx, insert)
	if err != nil {
		return nil, fmt.Errorf("求人の作成に失敗しました: %w", err)
	}
	return job, nil
}

// UpdateJob は指定IDの求人に部分更新を適用して返す。
// 見つからない場合はAPIErrorを返す。
func (s *Service) UpdateJob(ctx context.Context, id int, update model.JobUpdate) (*model.Job, error) {
	update.Summary = s.sanitizeTextPtr(update.Summary)
	update.Description = s.sanitizeTextPtr(update.Description)
	update.Requirements = s.sanitizeTextPtr(update.Requirements)
	update.NiceToHave = s.sanitizeTextPtr(update.NiceToHave)

	job, err := s.repo.Update(ctx, id, update)
	if err != nil {
		return nil, fmt.Errorf("求人の更新に失敗しました: %w", err)
	}
	if job == nil {
		return nil, model.NewJobNotFoundError(id)
	}
	return job, nil
}

// DeleteJob は指定IDの求人を削除する。見つからない場合はAPIErrorを返す。
func (s *Service) DeleteJob(ctx context.Context, id int) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("求人の削除に失敗しました: %w", err)
	}
	if !deleted {
		return model.NewJobNotFoundError(id)
	}
	return nil
}

// FilterJobs は絞り込み条件に一致する求人を新着順で返す。
// "all" および空文字列の条件は制約なしとして正規化する。
func (s *Service) FilterJobs(ctx context.Context, filter model.JobFilter) ([]*model.Job, error) {
	filter.Department = normalizeCriterion(filter.Department)
	filter.Location = normalizeCriterion(filter.Location)
	filter.Type = normalizeCriterion(filter.Type)

	jobs, err := s.repo.Filter(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("求人の絞り込みに失敗しました: %w", err)
	}
	return jobs, nil
}

// normalizeCriterion は "all" を制約なし（空文字列）に正規化する。
func normalizeCriterion(v string) string {
	if v == filterUnconstrained {
		return ""
	}
	return v
}

// sanitizeText はマークアップを含む入力のみサニタイズする。
// タグを含まないプレーンテキストはエンティティ化せずそのまま保存する。
func (s *Service) sanitizeText(v string) string {
	if !strings.ContainsAny(v, "<>") {
		return v
	}
	return s.sanitizer.Sanitize(v)
}

// sanitizeTextPtr はsanitizeTextのポインタ版。nilはそのまま返す。
func (s *Service) sanitizeTextPtr(v *string) *string {
	if v == nil {
		return nil
	}
	sanitized := s.sanitizeText(*v)
	return &sanitized
}
