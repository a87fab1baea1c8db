// internal/model/error.go
package model

import (
	"errors"
	"fmt"
)

// アプリケーション固有のエラー
var (
	ErrNotFound       = errors.New("resource not found")
	ErrInvalidInput   = errors.New("invalid input")
	ErrInternalServer = errors.New("internal server error")
	ErrForbidden      = errors.New("forbidden")
	ErrConflict       = errors.New("resource conflict") // 同時更新の競合 (リトライ可能)
	ErrRateLimited    = errors.New("too many requests")
)

// エラーコード
const (
	CodeNotFound       = "NOT_FOUND"
	CodeValidation     = "VALIDATION_ERROR"
	CodeConflict       = "CONFLICT"
	CodeUnauthorized   = "UNAUTHORIZED"
	CodeRateLimited    = "RATE_LIMITED"
	CodeInternalServer = "INTERNAL_SERVER_ERROR"
)

// ErrorDetail はクライアントに返すエラー詳細
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// APIErrorResponse はAPIエラーレスポンスの構造体
type APIErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// AppError はセンチネルエラーをラップし、クライアント向けの詳細を保持します
type AppError struct {
	Detail ErrorDetail
	Err    error
}

func NewAppError(code, message, field string, err error) *AppError {
	return &AppError{
		Detail: ErrorDetail{Code: code, Message: message, Field: field},
		Err:    err,
	}
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Detail.Code, e.Detail.Message)
	}
	return fmt.Sprintf("%s: %s: %v", e.Detail.Code, e.Detail.Message, e.Err)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// IsRetryable は呼び出し元が同じ操作を再実行してよいかを返します
func IsRetryable(err error) bool {
	return errors.Is(err, ErrConflict)
}
