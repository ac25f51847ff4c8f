package handler

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/hitoshi/jobboard/internal/model"
)

// validate はリクエストボディのスキーマバリデータ。
// フィールド名の報告にはjsonタグ名を使用する。
var validate = newValidator()

// newValidator はjsonタグ名でフィールドを報告するvalidatorを生成する。
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateStruct はリクエスト構造体を検証し、違反をフィールド単位のエラー一覧に変換する。
// 違反がない場合はnilを返す。
func validateStruct(s any) []model.FieldError {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []model.FieldError{{Field: "", Message: err.Error()}}
	}

	fields := make([]model.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, model.FieldError{
			Field:   fe.Field(),
			Message: fieldErrorMessage(fe),
		})
	}
	return fields
}

// fieldErrorMessage はバリデーションタグごとの読みやすいメッセージを生成する。
func fieldErrorMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "必須フィールドです。"
	case "oneof":
		return fmt.Sprintf("次のいずれかを指定してください: %s", strings.ReplaceAll(fe.Param(), " ", ", "))
	default:
		return fmt.Sprintf("制約 %s を満たしていません。", fe.Tag())
	}
}
