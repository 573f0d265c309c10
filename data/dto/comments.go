package dto

// CreateCommentRequestBody defines the request body for AddComment service.
type CreateCommentRequestBody struct {
	Author          string `json:"author"`
	Content         string `json:"content"`
	ParentCommentID *int64 `json:"parent_comment_id"`
}
