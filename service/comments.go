package service

import (
	"errors"

	"github.com/buscavan/api/data"
	"github.com/buscavan/api/data/dto"
	"github.com/buscavan/api/internal/validator"
	"github.com/buscavan/api/repository"
)

type comments interface {
	AddComment(tripID int64, requestBody dto.CreateCommentRequestBody) (*data.Comment, error)
	ListComments(tripID int64) ([]*data.Comment, error)
}

// AddComment service creates a new comment on a trip, optionally replying to
// another comment. The creation timestamp is assigned by the store at call
// time, never taken from the client. The trip owner is notified by email in
// the background.
func (s *service) AddComment(tripID int64, requestBody dto.CreateCommentRequestBody) (*data.Comment, error) {
	comment := &data.Comment{
		TripID:  tripID,
		Author:  requestBody.Author,
		Content: requestBody.Content,
	}
	if requestBody.ParentCommentID != nil {
		comment.ParentID = *requestBody.ParentCommentID
	}
	v := validator.New()
	if data.ValidateComment(v, comment); !v.Valid() {
		return nil, s.failedValidation(v.Errors)
	}
	err := s.repo.CreateComment(comment)
	if err != nil {
		s.logger.PrintError(err, map[string]string{"operation": "add comment"})
		switch {
		// The trip or the parent comment does not exist.
		case errors.Is(err, repository.ErrForeignKeyViolation):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	s.notifyTripOwner(comment)
	return comment, nil
}

// ListComments service retrieves all comments for a trip.
func (s *service) ListComments(tripID int64) ([]*data.Comment, error) {
	comments, err := s.repo.GetAllComments(tripID)
	if err != nil {
		s.logger.PrintError(err, map[string]string{"operation": "list comments"})
		return nil, err
	}
	return comments, nil
}

// notifyTripOwner emails the trip owner about a new comment from a
// background goroutine. Failures are logged and otherwise ignored: the
// comment is already committed and the response must not depend on SMTP.
func (s *service) notifyTripOwner(comment *data.Comment) {
	if s.config.SMTP.Host == "" {
		return
	}
	s.background(func() {
		trip, err := s.repo.GetTrip(comment.TripID)
		if err != nil {
			s.logger.PrintError(err, map[string]string{"operation": "notify trip owner"})
			return
		}
		owner, err := s.repo.GetUser(trip.OwnerID)
		if err != nil {
			s.logger.PrintError(err, map[string]string{"operation": "notify trip owner"})
			return
		}
		mailData := map[string]interface{}{
			"ownerName": owner.Name,
			"tripID":    trip.ID,
			"author":    comment.Author,
			"content":   comment.Content,
		}
		err = s.mailer.Send(owner.Email, "new_comment.tmpl", mailData)
		if err != nil {
			s.logger.PrintError(err, map[string]string{"operation": "notify trip owner"})
		}
	})
}
