package service

import (
	"errors"
	"fmt"
)

var (
	ErrFailedValidation     = errors.New("failed validation")
	ErrRecordNotFound       = errors.New("record not found")
	ErrInvalidReference     = errors.New("referenced record does not exist")
	ErrUpload               = errors.New("file upload failed")
	ErrSignedURL            = errors.New("signed URL creation failed")
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrContentTooLarge      = errors.New("content too large")
	ErrBadRequest           = errors.New("bad request")
)

// failedValidation wraps ErrFailedValidation with the key/value pairs of a
// validation error map so callers can match it with errors.Is while still
// seeing every field that failed.
func (s *service) failedValidation(errorMap map[string]string) error {
	err := ErrFailedValidation
	for k, v := range errorMap {
		err = fmt.Errorf("%w: %q %s", err, k, v)
	}
	return err
}
