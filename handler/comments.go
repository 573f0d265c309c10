package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/buscavan/api/data/dto"
	"github.com/buscavan/api/service"
)

// CreateComment godoc
// @Summary Create a new trip comment
// @Description This endpoint creates a new comment on a trip, optionally replying to another comment
// @Tags comments
// @Accept  json
// @Produce json
// @Param tripId path int true "ID of trip for comment"
// @Param body body dto.CreateCommentRequestBody true "JSON payload required to create a trip comment"
// @Success 201 {object} data.Comment
// @Failure 400
// @Failure 404
// @Failure 422
// @Failure 500
// @Router /v1/trips/{tripId}/comments [post]
func (h *Handler) createCommentHandler(w http.ResponseWriter, r *http.Request) {
	tripID, err := h.readIDParam(r, "tripId")
	if err != nil {
		h.notFoundResponse(w, r)
		return
	}
	var requestBody dto.CreateCommentRequestBody
	err = h.decodeJSON(w, r, &requestBody)
	if err != nil {
		h.badRequestResponse(w, r, err)
		return
	}
	comment, err := h.service.AddComment(tripID, requestBody)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrFailedValidation):
			h.failedValidationResponse(w, r, err)
		case errors.Is(err, service.ErrRecordNotFound):
			h.notFoundResponse(w, r)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	headers := make(http.Header)
	headers.Set("Location", fmt.Sprintf("/v1/trips/%d/comments/%d", tripID, comment.ID))
	err = h.encodeJSON(w, http.StatusCreated, envelope{"comment": comment}, headers)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

// ListComments godoc
// @Summary List all comments of a trip
// @Description This endpoint lists all comments attached to a trip
// @Tags comments
// @Accept  json
// @Produce json
// @Param tripId path int true "ID of trip"
// @Success 200 {array} data.Comment
// @Failure 404
// @Failure 500
// @Router /v1/trips/{tripId}/comments [get]
func (h *Handler) listCommentsHandler(w http.ResponseWriter, r *http.Request) {
	tripID, err := h.readIDParam(r, "tripId")
	if err != nil {
		h.notFoundResponse(w, r)
		return
	}
	comments, err := h.service.ListComments(tripID)
	if err != nil {
		h.serverErrorResponse(w, r, err)
		return
	}
	err = h.encodeJSON(w, http.StatusOK, envelope{"comments": comments}, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}
