package model

import "fmt"

// FieldError はバリデーション違反1件を表す。
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// APIError は統一エラーフォーマットを表す。
// UIに表示する原因カテゴリと対処方法を含む。
// バリデーションエラーの場合はFieldsにフィールド単位の違反を格納する。
type APIError struct {
	Code     string       // エラーコード
	Message  string       // エラーメッセージ
	Category string       // カテゴリ: auth, validation, job, system
	Action   string       // ユーザー向け対処方法
	Fields   []FieldError // バリデーション違反の一覧（任意）
}

// Error はerrorインターフェースを実装する。
func (e *APIError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// 定義済みエラーコード
const (
	ErrCodeJobNotFound        = "JOB_NOT_FOUND"
	ErrCodeInvalidJobID       = "INVALID_JOB_ID"
	ErrCodeValidationFailed   = "VALIDATION_FAILED"
	ErrCodeInvalidRequest     = "INVALID_REQUEST"
	ErrCodeInvalidCredentials = "INVALID_CREDENTIALS"
	ErrCodeInternal           = "INTERNAL_ERROR"
)

// NewJobNotFoundError は求人未検出エラーを生成する。
func NewJobNotFoundError(jobID int) *APIError {
	return &APIError{
		Code:     ErrCodeJobNotFound,
		Message:  fmt.Sprintf("指定された求人が見つかりません: %d", jobID),
		Category: "job",
		Action:   "求人IDを確認してください。",
	}
}

// NewInvalidJobIDError は求人IDが整数として解釈できない場合のエラーを生成する。
func NewInvalidJobIDError(raw string) *APIError {
	return &APIError{
		Code:     ErrCodeInvalidJobID,
		Message:  fmt.Sprintf("無効な求人IDです: %s", raw),
		Category: "validation",
		Action:   "求人IDには整数を指定してください。",
	}
}

// NewValidationFailedError はスキーマバリデーション違反エラーを生成する。
// fieldsには違反したフィールドの一覧を渡す。
func NewValidationFailedError(fields []FieldError) *APIError {
	return &APIError{
		Code:     ErrCodeValidationFailed,
		Message:  "入力内容に誤りがあります。",
		Category: "validation",
		Action:   "各フィールドのエラー内容を確認して修正してください。",
		Fields:   fields,
	}
}

// NewInvalidRequestError はリクエストボディが解析できない場合のエラーを生成する。
func NewInvalidRequestError() *APIError {
	return &APIError{
		Code:     ErrCodeInvalidRequest,
		Message:  "リクエストボディの解析に失敗しました。",
		Category: "validation",
		Action:   "正しいJSON形式でリクエストしてください。",
	}
}

// NewInvalidCredentialsError は認証失敗エラーを生成する。
// ユーザー不在とパスワード不一致を区別しない。
func NewInvalidCredentialsError() *APIError {
	return &APIError{
		Code:     ErrCodeInvalidCredentials,
		Message:  "ユーザー名またはパスワードが正しくありません。",
		Category: "auth",
		Action:   "入力内容を確認して再度お試しください。",
	}
}

// NewInternalError は内部エラーを生成する。
// 詳細はログのみに記録し、ユーザーには一般的なメッセージを返す。
func NewInternalError() *APIError {
	return &APIError{
		Code:     ErrCodeInternal,
		Message:  "内部エラーが発生しました。",
		Category: "system",
		Action:   "しばらく待ってから再度お試しください。",
	}
}
