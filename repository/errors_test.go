package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestForeignKeyViolation(t *testing.T) {
	fkErr := &pq.Error{Code: "23503", Message: `insert or update on table "trips" violates foreign key constraint "trips_vehicle_id_fkey"`}
	assert.True(t, foreignKeyViolation(fkErr))
	assert.True(t, foreignKeyViolation(fmt.Errorf("create trip: %w", fkErr)))
	assert.False(t, foreignKeyViolation(&pq.Error{Code: "23505"}))
	assert.False(t, foreignKeyViolation(errors.New("connection reset")))
	assert.False(t, foreignKeyViolation(nil))
}
