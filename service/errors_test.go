package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFailedValidationKeepsEveryFieldError(t *testing.T) {
	s := newTestService(&mockRepo{}, okBlob())

	err := s.failedValidation(map[string]string{
		"price":    "must be greater than zero",
		"end_date": "must not be before start date",
	})

	assert.ErrorIs(t, err, ErrFailedValidation)
	assert.Contains(t, err.Error(), `"price" must be greater than zero`)
	assert.Contains(t, err.Error(), `"end_date" must not be before start date`)
}
