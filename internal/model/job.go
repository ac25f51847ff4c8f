// Package model はドメインモデルを定義する。
package model

// Job は求人情報1件を表す。
type Job struct {
	ID           int    `json:"id"`
	Title        string `json:"title"`
	Department   string `json:"department"`
	Location     string `json:"location"`
	Type         string `json:"type"`
	Salary       string `json:"salary"`
	Summary      string `json:"summary"`
	Description  string `json:"description"`
	Requirements string `json:"requirements"`
	NiceToHave   string `json:"niceToHave"`
	PostedDate   string `json:"postedDate"`
}

// JobType は雇用形態を表す。
type JobType string

const (
	// JobTypeFullTime はフルタイム雇用。
	JobTypeFullTime JobType = "full-time"
	// JobTypePartTime はパートタイム雇用。
	JobTypePartTime JobType = "part-time"
	// JobTypeContract は契約雇用。
	JobTypeContract JobType = "contract"
	// JobTypeInternship はインターンシップ。
	JobTypeInternship JobType = "internship"
)

// InsertJob は求人作成時の入力フィールドを表す。
// IDとPostedDateはリポジトリが採番・設定するため含まない。
type InsertJob struct {
	Title        string
	Department   string
	Location     string
	Type         string
	Salary       string
	Summary      string
	Description  string
	Requirements string
	NiceToHave   string
}

// JobUpdate は部分更新のフィールドセットを表す。
// nilのフィールドは変更せず、既存の値を維持する。
// IDとPostedDateは更新対象外のため含まない。
type JobUpdate struct {
	Title        *string
	Department   *string
	Location     *string
	Type         *string
	Salary       *string
	Summary      *string
	Description  *string
	Requirements *string
	NiceToHave   *string
}

// JobFilter は求人一覧の絞り込み条件を表す。
// 空文字列の条件は制約なしとして扱う。全条件のAND一致で絞り込む。
type JobFilter struct {
	Department string
	Location   string
	Type       string
}
