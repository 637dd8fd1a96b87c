package models

import (
	"errors"
	"fmt"
)

// Error codes used in API responses and internal error handling.
const (
	ErrCodeFetchFailed    = "FETCH_FAILED"
	ErrCodeTimeout        = "FETCH_TIMEOUT"
	ErrCodeUpstreamStatus = "UPSTREAM_STATUS"
	ErrCodeExtraction     = "EXTRACTION_FAILED"
	ErrCodeInvalidInput   = "INVALID_INPUT"
	ErrCodeInternal       = "INTERNAL_ERROR"
)

// ErrorDetail is the structured error in API responses.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`

	// UpstreamStatus is the status code returned by the scraped site.
	// Only set for UPSTREAM_STATUS errors.
	UpstreamStatus int `json:"upstream_status,omitempty"`
}

// ScrapeError is the internal error type carrying an error code.
// It implements the error interface and supports error wrapping via Unwrap.
type ScrapeError struct {
	Code           string
	Message        string
	UpstreamStatus int
	Err            error // wrapped original error
}

func (e *ScrapeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *ScrapeError) Unwrap() error {
	return e.Err
}

// NewScrapeError creates a new ScrapeError.
func NewScrapeError(code, message string, err error) *ScrapeError {
	return &ScrapeError{Code: code, Message: message, Err: err}
}

// NewUpstreamStatusError reports a non-2xx answer from the scraped site.
func NewUpstreamStatusError(status int, url string) *ScrapeError {
	return &ScrapeError{
		Code:           ErrCodeUpstreamStatus,
		Message:        fmt.Sprintf("upstream returned HTTP %d for %s", status, url),
		UpstreamStatus: status,
	}
}

// ToDetail converts an internal error to an API-facing ErrorDetail.
func (e *ScrapeError) ToDetail() *ErrorDetail {
	return &ErrorDetail{Code: e.Code, Message: e.Message, UpstreamStatus: e.UpstreamStatus}
}

// AsScrapeError unwraps err into a *ScrapeError. Errors of any other type
// are reported as INTERNAL_ERROR.
func AsScrapeError(err error) *ScrapeError {
	var se *ScrapeError
	if errors.As(err, &se) {
		return se
	}
	return NewScrapeError(ErrCodeInternal, err.Error(), err)
}

// IsCode reports whether err is a *ScrapeError carrying code.
func IsCode(err error, code string) bool {
	var se *ScrapeError
	return errors.As(err, &se) && se.Code == code
}
