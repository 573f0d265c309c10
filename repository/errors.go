package repository

import (
	"errors"

	"github.com/lib/pq"
)

var (
	ErrRecordNotFound      = errors.New("record not found")
	ErrForeignKeyViolation = errors.New("referenced record does not exist")
)

// foreignKeyViolation reports whether err is a Postgres foreign key
// constraint failure (SQLSTATE 23503).
func foreignKeyViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23503"
}
