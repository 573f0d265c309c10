package service

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/buscavan/api/data"
	"github.com/buscavan/api/data/dto"
	"github.com/buscavan/api/internal/validator"
	"github.com/buscavan/api/repository"
)

type trips interface {
	CreateTrip(ownerID int64, r *http.Request) (*data.Trip, error)
	GetTrip(tripID int64) (*data.Trip, error)
	ListTripsByOwner(ownerID int64) ([]*data.Trip, error)
	UpdateTrip(tripID int64, requestBody dto.UpdateTripRequestBody) (*data.Trip, error)
	DeleteTrip(tripID int64) error
}

// supportedPhotoTypes lists the media types accepted for trip photos.
var supportedPhotoTypes = []string{
	"image/jpeg",
	"image/png",
	"image/webp",
}

// commentsFromBodies converts inline comment payloads to comment records,
// validating each one. An absent id is normalized to the 0 sentinel, which
// never matches a stored row and therefore always results in an insert.
func (s *service) commentsFromBodies(bodies []dto.TripCommentBody) ([]*data.Comment, error) {
	comments := make([]*data.Comment, 0, len(bodies))
	for _, body := range bodies {
		comment := &data.Comment{
			Author:  body.Author,
			Content: body.Content,
		}
		if body.ID != nil {
			comment.ID = *body.ID
		}
		if body.ParentCommentID != nil {
			comment.ParentID = *body.ParentCommentID
		}
		v := validator.New()
		if data.ValidateComment(v, comment); !v.Valid() {
			return nil, s.failedValidation(v.Errors)
		}
		comments = append(comments, comment)
	}
	return comments, nil
}

// CreateTrip service creates a new trip owned by the acting user. The
// multipart request carries a "data" part with the trip payload and a
// "photo" file part. The photo is uploaded and signed before anything is
// written to the database: when media attachment fails, no trip is
// persisted.
func (s *service) CreateTrip(ownerID int64, r *http.Request) (*data.Trip, error) {
	err := r.ParseMultipartForm(5000)
	if err != nil {
		var maxBytesError *http.MaxBytesError
		switch {
		case errors.As(err, &maxBytesError):
			return nil, ErrContentTooLarge
		default:
			return nil, ErrBadRequest
		}
	}
	var requestBody dto.CreateTripRequestBody
	err = json.Unmarshal([]byte(r.FormValue("data")), &requestBody)
	if err != nil {
		return nil, ErrBadRequest
	}
	file, fileHeader, err := r.FormFile("photo")
	if err != nil {
		return nil, ErrBadRequest
	}
	defer file.Close()
	buffer, mtype, err := s.detectMimeType(file, fileHeader)
	if err != nil {
		return nil, err
	}
	if validMime := validator.Mime(mtype, supportedPhotoTypes...); !validMime {
		return nil, ErrUnsupportedMediaType
	}

	trip := &data.Trip{
		OwnerID:          ownerID,
		OriginID:         requestBody.OriginID,
		DestinationID:    requestBody.DestinationID,
		VehicleID:        requestBody.VehicleID,
		StartDate:        requestBody.StartDate,
		EndDate:          requestBody.EndDate,
		Price:            requestBody.Price,
		OutboundBoarding: requestBody.OutboundBoarding,
		ReturnBoarding:   requestBody.ReturnBoarding,
		Description:      requestBody.Description,
	}
	v := validator.New()
	if data.ValidateTrip(v, trip); !v.Valid() {
		return nil, s.failedValidation(v.Errors)
	}
	comments, err := s.commentsFromBodies(requestBody.Comments)
	if err != nil {
		return nil, err
	}

	photoURL, err := s.attachTripPhoto(buffer, mtype, fileHeader, trip.VehicleID)
	if err != nil {
		s.logger.PrintError(err, map[string]string{"operation": "attach trip photo"})
		return nil, err
	}
	trip.PhotoURL = photoURL

	err = s.repo.CreateTrip(trip, comments)
	if err != nil {
		s.logger.PrintError(err, map[string]string{"operation": "create trip"})
		switch {
		case errors.Is(err, repository.ErrForeignKeyViolation):
			return nil, ErrInvalidReference
		default:
			return nil, err
		}
	}
	return trip, nil
}

// GetTrip service retrieves a trip joined with its vehicle and comments.
func (s *service) GetTrip(tripID int64) (*data.Trip, error) {
	trip, err := s.repo.GetTrip(tripID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return nil, ErrRecordNotFound
		default:
			s.logger.PrintError(err, map[string]string{"operation": "get trip"})
			return nil, err
		}
	}
	return trip, nil
}

// ListTripsByOwner service retrieves all trips owned by a user.
func (s *service) ListTripsByOwner(ownerID int64) ([]*data.Trip, error) {
	trips, err := s.repo.GetAllTripsByOwner(ownerID)
	if err != nil {
		s.logger.PrintError(err, map[string]string{"operation": "list trips by owner"})
		return nil, err
	}
	return trips, nil
}

// UpdateTrip service applies a partial update to a trip. Fields absent from
// the request body keep their stored values. A supplied comment list is
// reconciled by upsert: comments whose id matches an existing row under the
// trip are overwritten, all others are inserted.
func (s *service) UpdateTrip(tripID int64, requestBody dto.UpdateTripRequestBody) (*data.Trip, error) {
	trip, err := s.repo.GetTrip(tripID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return nil, ErrRecordNotFound
		default:
			s.logger.PrintError(err, map[string]string{"operation": "update trip"})
			return nil, err
		}
	}
	if requestBody.OriginID != nil {
		trip.OriginID = *requestBody.OriginID
	}
	if requestBody.DestinationID != nil {
		trip.DestinationID = *requestBody.DestinationID
	}
	if requestBody.VehicleID != nil {
		trip.VehicleID = *requestBody.VehicleID
	}
	if requestBody.StartDate != nil {
		trip.StartDate = *requestBody.StartDate
	}
	if requestBody.EndDate != nil {
		trip.EndDate = *requestBody.EndDate
	}
	if requestBody.Price != nil {
		trip.Price = *requestBody.Price
	}
	if requestBody.OutboundBoarding != nil {
		trip.OutboundBoarding = *requestBody.OutboundBoarding
	}
	if requestBody.ReturnBoarding != nil {
		trip.ReturnBoarding = *requestBody.ReturnBoarding
	}
	if requestBody.Description != nil {
		trip.Description = *requestBody.Description
	}
	if requestBody.PhotoURL != nil {
		trip.PhotoURL = *requestBody.PhotoURL
	}
	v := validator.New()
	if data.ValidateTrip(v, trip); !v.Valid() {
		return nil, s.failedValidation(v.Errors)
	}

	err = s.repo.UpdateTrip(trip)
	if err != nil {
		s.logger.PrintError(err, map[string]string{"operation": "update trip"})
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return nil, ErrRecordNotFound
		case errors.Is(err, repository.ErrForeignKeyViolation):
			return nil, ErrInvalidReference
		default:
			return nil, err
		}
	}

	if requestBody.Comments != nil {
		comments, err := s.commentsFromBodies(requestBody.Comments)
		if err != nil {
			return nil, err
		}
		err = s.repo.UpsertComments(tripID, comments)
		if err != nil {
			s.logger.PrintError(err, map[string]string{"operation": "upsert trip comments"})
			switch {
			case errors.Is(err, repository.ErrForeignKeyViolation):
				return nil, ErrInvalidReference
			default:
				return nil, err
			}
		}
	}

	// Re-read so the returned trip reflects the reconciled comment set.
	trip, err = s.repo.GetTrip(tripID)
	if err != nil {
		s.logger.PrintError(err, map[string]string{"operation": "update trip"})
		return nil, err
	}
	return trip, nil
}

// DeleteTrip service deletes a trip. The store cascades the delete to the
// trip's comments.
func (s *service) DeleteTrip(tripID int64) error {
	err := s.repo.DeleteTrip(tripID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return ErrRecordNotFound
		default:
			s.logger.PrintError(err, map[string]string{"operation": "delete trip"})
			return err
		}
	}
	return nil
}
