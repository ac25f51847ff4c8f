package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/hitoshi/jobboard/internal/middleware"
	"github.com/hitoshi/jobboard/internal/model"
)

// jobTypeOneOf は雇用形態の許可値を表すバリデーションタグ。
const jobTypeOneOf = "oneof=full-time part-time contract internship"

// JobServiceInterface は求人ハンドラーが必要とするサービスインターフェース。
type JobServiceInterface interface {
	// ListJobs は全求人を新着順で返す。
	ListJobs(ctx context.Context) ([]*model.Job, error)
	// GetJob は指定IDの求人を返す。
	GetJob(ctx context.Context, id int) (*model.Job, error)
	// CreateJob は求人を作成して返す。
	CreateJob(ctx context.Context, insert model.InsertJob) (*model.Job, error)
	// UpdateJob は指定IDの求人に部分更新を適用して返す。
	UpdateJob(ctx context.Context, id int, update model.JobUpdate) (*model.Job, error)
	// DeleteJob は指定IDの求人を削除する。
	DeleteJob(ctx context.Context, id int) error
	// FilterJobs は絞り込み条件に一致する求人を新着順で返す。
	FilterJobs(ctx context.Context, filter model.JobFilter) ([]*model.Job, error)
}

// JobMetricsRecorder は求人操作のメトリクス記録インターフェース。
type JobMetricsRecorder interface {
	RecordJobCreated()
	RecordJobUpdated()
	RecordJobDeleted()
}

// JobHandler は求人管理のHTTPハンドラー。
type JobHandler struct {
	service JobServiceInterface
	metrics JobMetricsRecorder
}

// NewJobHandler はJobHandlerを生成する。metricsはnilでもよい。
func NewJobHandler(service JobServiceInterface, metrics JobMetricsRecorder) *JobHandler {
	return &JobHandler{
		service: service,
		metrics: metrics,
	}
}

// --- リクエスト型 ---

// createJobRequest は求人作成リクエストのボディ。
// niceToHave以外の全フィールドが必須。idとpostedDateはストアが設定するため受け付けない。
type createJobRequest struct {
	Title        string  `json:"title" validate:"required"`
	Department   string  `json:"department" validate:"required"`
	Location     string  `json:"location" validate:"required"`
	Type         string  `json:"type" validate:"required,oneof=full-time part-time contract internship"`
	Salary       string  `json:"salary" validate:"required"`
	Summary      string  `json:"summary" validate:"required"`
	Description  string  `json:"description" validate:"required"`
	Requirements string  `json:"requirements" validate:"required"`
	NiceToHave   *string `json:"niceToHave"`
}

// updateJobRequest は求人の部分更新リクエストのボディ。
// 全フィールドが任意。省略されたフィールドは現在の値を維持する。
// idとpostedDateは未知フィールドとして拒否され、不変条件が保たれる。
type updateJobRequest struct {
	Title        *string `json:"title"`
	Department   *string `json:"department"`
	Location     *string `json:"location"`
	Type         *string `json:"type" validate:"omitempty,oneof=full-time part-time contract internship"`
	Salary       *string `json:"salary"`
	Summary      *string `json:"summary"`
	Description  *string `json:"description"`
	Requirements *string `json:"requirements"`
	NiceToHave   *string `json:"niceToHave"`
}

// ListJobs は全求人を取得する。
// GET /api/jobs
func (h *JobHandler) ListJobs(w http.ResponseWriter, r *http.Request) {
	jobs, err := h.service.ListJobs(r.Context())
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, jobs)
}

// FilterJobs は絞り込み条件付きで求人を取得する。
// GET /api/jobs/filter?department=&location=&type=
// 欠落した条件および "all" は制約なしとして扱う。
func (h *JobHandler) FilterJobs(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := model.JobFilter{
		Department: query.Get("department"),
		Location:   query.Get("location"),
		Type:       query.Get("type"),
	}

	jobs, err := h.service.FilterJobs(r.Context(), filter)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, jobs)
}

// GetJob は求人詳細を取得する。
// GET /api/jobs/{id}
func (h *JobHandler) GetJob(w http.ResponseWriter, r *http.Request) {
	id, ok := parseJobID(w, r)
	if !ok {
		return
	}

	job, err := h.service.GetJob(r.Context(), id)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, job)
}

// CreateJob は求人を作成する。
// POST /api/jobs
func (h *JobHandler) CreateJob(w http.ResponseWriter, r *http.Request) {
	var req createJobRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	if fields := validateStruct(req); fields != nil {
		writeAPIErrorResponse(w, http.StatusBadRequest, model.NewValidationFailedError(fields))
		return
	}

	insert := model.InsertJob{
		Title:        req.Title,
		Department:   req.Department,
		Location:     req.Location,
		Type:         req.Type,
		Salary:       req.Salary,
		Summary:      req.Summary,
		Description:  req.Description,
		Requirements: req.Requirements,
	}
	if req.NiceToHave != nil {
		insert.NiceToHave = *req.NiceToHave
	}

	job, err := h.service.CreateJob(r.Context(), insert)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	if h.metrics != nil {
		h.metrics.RecordJobCreated()
	}

	writeJSON(w, http.StatusCreated, job)
}

// UpdateJob は求人を部分更新する。
// PUT /api/jobs/{id}
func (h *JobHandler) UpdateJob(w http.ResponseWriter, r *http.Request) {
	id, ok := parseJobID(w, r)
	if !ok {
		return
	}

	var req updateJobRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	if fields := validateStruct(req); fields != nil {
		writeAPIErrorResponse(w, http.StatusBadRequest, model.NewValidationFailedError(fields))
		return
	}

	update := model.JobUpdate{
		Title:        req.Title,
		Department:   req.Department,
		Location:     req.Location,
		Type:         req.Type,
		Salary:       req.Salary,
		Summary:      req.Summary,
		Description:  req.Description,
		Requirements: req.Requirements,
		NiceToHave:   req.NiceToHave,
	}

	job, err := h.service.UpdateJob(r.Context(), id, update)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	if h.metrics != nil {
		h.metrics.RecordJobUpdated()
	}

	writeJSON(w, http.StatusOK, job)
}

// DeleteJob は求人を削除する。
// DELETE /api/jobs/{id}
func (h *JobHandler) DeleteJob(w http.ResponseWriter, r *http.Request) {
	id, ok := parseJobID(w, r)
	if !ok {
		return
	}

	if err := h.service.DeleteJob(r.Context(), id); err != nil {
		handleServiceError(w, err)
		return
	}

	if h.metrics != nil {
		h.metrics.RecordJobDeleted()
	}

	w.WriteHeader(http.StatusNoContent)
}

// --- ヘルパー関数 ---

// parseJobID はパスパラメータの求人IDを整数として解析する。
// 解析できない場合は400を書き込みfalseを返す。
func parseJobID(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.Atoi(raw)
	if err != nil {
		writeAPIErrorResponse(w, http.StatusBadRequest, model.NewInvalidJobIDError(raw))
		return 0, false
	}
	return id, true
}

// decodeJSONBody はリクエストボディをJSONとしてデコードする。
// 未知フィールドは拒否する。失敗した場合は400を書き込みfalseを返す。
func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		writeAPIErrorResponse(w, http.StatusBadRequest, model.NewInvalidRequestError())
		return false
	}
	return true
}

// writeJSON はJSONレスポンスを書き込む。
func writeJSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(v)
}

// writeAPIErrorResponse は統一エラーフォーマットでエラーレスポンスを書き込む。
func writeAPIErrorResponse(w http.ResponseWriter, statusCode int, apiErr *model.APIError) {
	middleware.WriteErrorResponse(w, statusCode, apiErr)
}

// handleServiceError はサービス層から返されたエラーを適切なHTTPステータスコードに変換する。
func handleServiceError(w http.ResponseWriter, err error) {
	var apiErr *model.APIError
	if errors.As(err, &apiErr) {
		writeAPIErrorResponse(w, mapAPIErrorToHTTPStatus(apiErr), apiErr)
		return
	}

	// APIError以外のエラーは内部サーバーエラーとして扱う
	slog.Error("internal server error", slog.String("error", err.Error()))
	writeAPIErrorResponse(w, http.StatusInternalServerError, model.NewInternalError())
}

// mapAPIErrorToHTTPStatus はAPIErrorコードからHTTPステータスコードにマッピングする。
func mapAPIErrorToHTTPStatus(apiErr *model.APIError) int {
	switch apiErr.Code {
	case model.ErrCodeJobNotFound:
		return http.StatusNotFound
	case model.ErrCodeInvalidJobID, model.ErrCodeValidationFailed, model.ErrCodeInvalidRequest:
		return http.StatusBadRequest
	case model.ErrCodeInvalidCredentials:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
