package errors

import (
	"errors"
	"fmt"
)

// ErrorCode xəta kodu
type ErrorCode string

const (
	// Validation errors
	ErrCodeValidation    ErrorCode = "VALIDATION_ERROR"
	ErrCodeRequiredField ErrorCode = "REQUIRED_FIELD"
	ErrCodeInvalidFormat ErrorCode = "INVALID_FORMAT"

	// Authorization errors
	ErrCodeForbidden    ErrorCode = "FORBIDDEN"
	ErrCodeInvalidToken ErrorCode = "INVALID_TOKEN"
	ErrCodeMissingToken ErrorCode = "MISSING_TOKEN"

	// Lookup errors
	ErrCodeNotFound ErrorCode = "NOT_FOUND"

	// Store errors
	ErrCodeStore ErrorCode = "STORE_ERROR"
)

// AppError tətbiq xətası
type AppError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError yeni AppError yaradır
func NewAppError(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// GetAppError error-dan AppError çıxarır, tapılmasa nil qaytarır
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

var (
	// Order errors
	ErrOrderNotFound = errors.New("sifariş tapılmadı")
	ErrOrderInvalid  = errors.New("sifariş düzgün deyil")

	// Permission errors
	ErrForbidden = errors.New("bu əməliyyata icazə yoxdur")

	// Validation errors
	ErrInvalidInput    = errors.New("daxil edilən məlumat düzgün deyil")
	ErrMissingRequired = errors.New("tələb olunan sahə boşdur")
)
