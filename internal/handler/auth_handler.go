package handler

import (
	"context"
	"net/http"

	"github.com/hitoshi/jobboard/internal/model"
)

// AuthServiceInterface は認証ハンドラーが必要とするサービスインターフェース。
type AuthServiceInterface interface {
	// Login はユーザー名とパスワードを検証し、一致した場合にユーザーを返す。
	Login(ctx context.Context, username, password string) (*model.User, error)
}

// LoginMetricsRecorder はログイン失敗のメトリクス記録インターフェース。
type LoginMetricsRecorder interface {
	RecordLoginFailure()
}

// AuthHandler は認証のHTTPハンドラー。
// ワンショットの資格情報チェックのみを提供し、セッションやCookieは発行しない。
type AuthHandler struct {
	service AuthServiceInterface
	metrics LoginMetricsRecorder
}

// NewAuthHandler はAuthHandlerを生成する。metricsはnilでもよい。
func NewAuthHandler(service AuthServiceInterface, metrics LoginMetricsRecorder) *AuthHandler {
	return &AuthHandler{
		service: service,
		metrics: metrics,
	}
}

// loginRequest はログインリクエストのボディ。
type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// userSummaryResponse はログイン成功時に返すユーザーサマリー。
type userSummaryResponse struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	IsAdmin  bool   `json:"isAdmin"`
}

// loginResponse はログイン成功時のレスポンス。
type loginResponse struct {
	User userSummaryResponse `json:"user"`
}

// Login は資格情報を検証する。
// POST /api/auth/login
// 一致した場合は200でユーザーサマリーを返す。トークンやCookieは発行しない。
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	if fields := validateStruct(req); fields != nil {
		writeAPIErrorResponse(w, http.StatusBadRequest, model.NewValidationFailedError(fields))
		return
	}

	user, err := h.service.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		if h.metrics != nil {
			h.metrics.RecordLoginFailure()
		}
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{
		User: userSummaryResponse{
			ID:       user.ID,
			Username: user.Username,
			IsAdmin:  user.IsAdminBool(),
		},
	})
}
