package service

import (
	"testing"
	"time"

	"github.com/buscavan/api/data"
	"github.com/buscavan/api/data/dto"
	"github.com/buscavan/api/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddComment(t *testing.T) {
	t.Run("creates a top-level comment with store-assigned fields", func(t *testing.T) {
		now := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
		repo := &mockRepo{
			createComment: func(comment *data.Comment) error {
				comment.ID = 3
				comment.CreatedAt = now
				return nil
			},
		}
		s := newTestService(repo, okBlob())

		comment, err := s.AddComment(42, dto.CreateCommentRequestBody{
			Author:  "Maria",
			Content: "Ainda tem vaga?",
		})

		require.NoError(t, err)
		assert.Equal(t, int64(3), comment.ID)
		assert.Equal(t, int64(42), comment.TripID)
		assert.Equal(t, int64(0), comment.ParentID)
		assert.Equal(t, now, comment.CreatedAt)
	})

	t.Run("threads a reply under its parent", func(t *testing.T) {
		var created *data.Comment
		repo := &mockRepo{
			createComment: func(comment *data.Comment) error {
				comment.ID = 4
				created = comment
				return nil
			},
		}
		s := newTestService(repo, okBlob())

		parentID := int64(3)
		_, err := s.AddComment(42, dto.CreateCommentRequestBody{
			Author:          "João",
			Content:         "Tem sim",
			ParentCommentID: &parentID,
		})

		require.NoError(t, err)
		require.NotNil(t, created)
		assert.Equal(t, int64(3), created.ParentID)
	})

	t.Run("maps a missing trip or parent to not found", func(t *testing.T) {
		repo := &mockRepo{
			createComment: func(comment *data.Comment) error {
				return repository.ErrForeignKeyViolation
			},
		}
		s := newTestService(repo, okBlob())

		_, err := s.AddComment(42, dto.CreateCommentRequestBody{
			Author:  "Maria",
			Content: "Ainda tem vaga?",
		})

		assert.ErrorIs(t, err, ErrRecordNotFound)
	})

	t.Run("rejects an empty comment", func(t *testing.T) {
		s := newTestService(&mockRepo{}, okBlob())

		_, err := s.AddComment(42, dto.CreateCommentRequestBody{Author: "Maria"})

		assert.ErrorIs(t, err, ErrFailedValidation)
	})
}

func TestListComments(t *testing.T) {
	repo := &mockRepo{
		getAllComments: func(tripID int64) ([]*data.Comment, error) {
			require.Equal(t, int64(42), tripID)
			return []*data.Comment{
				{ID: 3, TripID: 42, Author: "Maria", Content: "Ainda tem vaga?"},
				{ID: 4, TripID: 42, ParentID: 3, Author: "João", Content: "Tem sim"},
			}, nil
		},
	}
	s := newTestService(repo, okBlob())

	comments, err := s.ListComments(42)

	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, int64(3), comments[1].ParentID)
}
