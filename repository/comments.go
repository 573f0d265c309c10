package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/buscavan/api/data"
)

type comments interface {
	CreateComment(comment *data.Comment) error
	GetAllComments(tripID int64) ([]*data.Comment, error)
}

// insertComment inserts one comment row inside an existing transaction and
// fills in the store-assigned id and creation timestamp. The comment's
// ParentID, when 0, is stored as NULL.
func insertComment(ctx context.Context, tx *sql.Tx, tripID int64, comment *data.Comment) error {
	query := `
		INSERT INTO comments (trip_id, parent_id, author, content)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`
	comment.TripID = tripID
	return tx.QueryRowContext(ctx, query, tripID, nullableID(comment.ParentID), comment.Author, comment.Content).Scan(&comment.ID, &comment.CreatedAt)
}

// CreateComment creates a comment record for a trip. The creation timestamp
// is assigned by the database at insert time. A missing trip or parent
// comment surfaces as ErrForeignKeyViolation via the FK constraints.
func (r *repository) CreateComment(comment *data.Comment) error {
	query := `
		INSERT INTO comments (trip_id, parent_id, author, content)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`
	args := []interface{}{comment.TripID, nullableID(comment.ParentID), comment.Author, comment.Content}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&comment.ID, &comment.CreatedAt)
	if err != nil {
		switch {
		case foreignKeyViolation(err):
			return ErrForeignKeyViolation
		default:
			return err
		}
	}
	return nil
}

// GetAllComments retrieves all comment records for a trip.
func (r *repository) GetAllComments(tripID int64) ([]*data.Comment, error) {
	query := `
		SELECT id, trip_id, COALESCE(parent_id, 0), author, content, created_at
		FROM comments
		WHERE trip_id = $1
		ORDER BY id`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	rows, err := r.db.QueryContext(ctx, query, tripID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	comments := []*data.Comment{}
	for rows.Next() {
		var comment data.Comment
		err := rows.Scan(
			&comment.ID,
			&comment.TripID,
			&comment.ParentID,
			&comment.Author,
			&comment.Content,
			&comment.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		comments = append(comments, &comment)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return comments, nil
}
