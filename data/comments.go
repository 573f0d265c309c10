package data

import (
	"time"

	"github.com/buscavan/api/internal/validator"
)

// Comment defines a threaded remark attached to a trip. ParentID is 0 for
// top-level comments and otherwise holds the id of the comment being replied
// to, so threads can nest to arbitrary depth.
type Comment struct {
	ID        int64     `json:"id"`
	TripID    int64     `json:"trip_id"`
	ParentID  int64     `json:"parent_id"`
	Author    string    `json:"author"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

func ValidateComment(v *validator.Validator, comment *Comment) {
	v.Check(comment.Content != "", "content", "must be provided")
	v.Check(len(comment.Content) <= 1000, "content", "must not be more than 1000 bytes long")
	v.Check(comment.Author != "", "author", "must be provided")
}
