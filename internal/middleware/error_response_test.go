package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/hitoshi/jobboard/internal/model"
)

func TestWriteErrorResponse_UnifiedFormat(t *testing.T) {
	w := httptest.NewRecorder()

	WriteErrorResponse(w, http.StatusNotFound, model.NewJobNotFoundError(42))

	resp := w.Result()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusNotFound)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q, want %q", ct, "application/json")
	}

	var body ErrorResponseBody
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if body.Code != model.ErrCodeJobNotFound {
		t.Errorf("code = %q, want %q", body.Code, model.ErrCodeJobNotFound)
	}
	if body.Category != "job" {
		t.Errorf("category = %q, want %q", body.Category, "job")
	}
	if body.Message == "" || body.Action == "" {
		t.Error("message and action must be populated")
	}
}

func TestWriteErrorResponse_IncludesFieldErrors(t *testing.T) {
	w := httptest.NewRecorder()

	apiErr := model.NewValidationFailedError([]model.FieldError{
		{Field: "title", Message: "必須項目です。"},
	})
	WriteErrorResponse(w, http.StatusBadRequest, apiErr)

	var body ErrorResponseBody
	json.NewDecoder(w.Result().Body).Decode(&body)
	if len(body.Errors) != 1 {
		t.Fatalf("errors len = %d, want 1", len(body.Errors))
	}
	if body.Errors[0].Field != "title" {
		t.Errorf("field = %q, want %q", body.Errors[0].Field, "title")
	}
}

// バリデーション違反がない場合、errorsキー自体を省略すること。
func TestWriteErrorResponse_OmitsEmptyErrors(t *testing.T) {
	w := httptest.NewRecorder()

	WriteErrorResponse(w, http.StatusNotFound, model.NewJobNotFoundError(1))

	if strings.Contains(w.Body.String(), `"errors"`) {
		t.Errorf("body = %q, should omit errors key", w.Body.String())
	}
}

func TestWriteInternalServerError(t *testing.T) {
	w := httptest.NewRecorder()

	WriteInternalServerError(w)

	resp := w.Result()
	if resp.StatusCode != http.StatusInternalServerError {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusInternalServerError)
	}

	var body ErrorResponseBody
	json.NewDecoder(resp.Body).Decode(&body)
	if body.Code != model.ErrCodeInternal {
		t.Errorf("code = %q, want %q", body.Code, model.ErrCodeInternal)
	}
}
