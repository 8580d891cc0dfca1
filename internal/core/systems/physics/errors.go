package physics

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedColliderType is returned when an empty or unknown collider
	// reaches a dispatcher.
	ErrUnsupportedColliderType = errors.New("unsupported collider type")
	// ErrInvalidUniformScaleRequired is returned by the legacy path when a
	// shape that only scales uniformly receives a non-uniform scale.
	ErrInvalidUniformScaleRequired = errors.New("collider must be scaled with no scale or uniform scale")
	// ErrNonComputableScale is returned by the legacy path for a scale that
	// cannot be expressed as a vector.
	ErrNonComputableScale = errors.New("collider cannot be scaled with a noncomputable scale")
	// ErrEmptyBlob is returned when a blob is built from no points or no children.
	ErrEmptyBlob = errors.New("blob has no elements")
)

// ErrorCode is a numeric code for collider errors
type ErrorCode int

const (
	ErrorCodeSuccess ErrorCode = 0

	ErrorCodeUnsupportedColliderType     ErrorCode = 1001
	ErrorCodeInvalidUniformScaleRequired ErrorCode = 1002
	ErrorCodeNonComputableScale          ErrorCode = 1003
	ErrorCodeEmptyBlob                   ErrorCode = 1004

	ErrorCodeUnknownError ErrorCode = 9999
)

var errorCodeMap = map[error]ErrorCode{
	ErrUnsupportedColliderType:     ErrorCodeUnsupportedColliderType,
	ErrInvalidUniformScaleRequired: ErrorCodeInvalidUniformScaleRequired,
	ErrNonComputableScale:          ErrorCodeNonComputableScale,
	ErrEmptyBlob:                   ErrorCodeEmptyBlob,
}

// Error carries the collider type an operation failed on.
type Error struct {
	Code  ErrorCode
	Type  ColliderType
	Cause error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s collider: %v", e.Type, e.Cause)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func newError(cause error, t ColliderType) *Error {
	code, ok := errorCodeMap[cause]
	if !ok {
		code = ErrorCodeUnknownError
	}
	return &Error{Code: code, Type: t, Cause: cause}
}

// GetErrorCode returns the code for err, or ErrorCodeSuccess for nil.
func GetErrorCode(err error) ErrorCode {
	if err == nil {
		return ErrorCodeSuccess
	}
	var colliderErr *Error
	if errors.As(err, &colliderErr) {
		return colliderErr.Code
	}
	if code, ok := errorCodeMap[err]; ok {
		return code
	}
	return ErrorCodeUnknownError
}
