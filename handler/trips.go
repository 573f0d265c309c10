package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/buscavan/api/data/dto"
	"github.com/buscavan/api/service"
)

// CreateTrip godoc
// @Summary Create a new trip
// @Description This endpoint creates a new trip offer with a photo attachment
// @Tags trips
// @Accept  mpfd
// @Produce json
// @Param data formData string true "JSON payload with the trip fields"
// @Param photo formData file true "Trip destination photo"
// @Success 201 {object} data.Trip
// @Failure 400
// @Failure 401
// @Failure 413
// @Failure 415
// @Failure 422
// @Failure 500
// @Router /v1/trips [post]
func (h *Handler) createTripHandler(w http.ResponseWriter, r *http.Request) {
	// Set 10MB limit for request body size
	maxBytes := int64(10_485_760)
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
	actorID := h.contextGetActor(r)
	trip, err := h.service.CreateTrip(actorID, r)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrContentTooLarge):
			h.contentTooLargeResponse(w, r)
		case errors.Is(err, service.ErrBadRequest):
			h.badRequestResponse(w, r, err)
		case errors.Is(err, service.ErrUnsupportedMediaType):
			h.unsupportedMediaTypeResponse(w, r)
		case errors.Is(err, service.ErrFailedValidation):
			h.failedValidationResponse(w, r, err)
		case errors.Is(err, service.ErrInvalidReference):
			h.failedValidationResponse(w, r, err)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	headers := make(http.Header)
	headers.Set("Location", fmt.Sprintf("/v1/trips/%d", trip.ID))
	err = h.encodeJSON(w, http.StatusCreated, envelope{"trip": trip}, headers)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

func (h *Handler) showTripHandler(w http.ResponseWriter, r *http.Request) {
	tripID, err := h.readIDParam(r, "tripId")
	if err != nil {
		h.notFoundResponse(w, r)
		return
	}
	trip, err := h.service.GetTrip(tripID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRecordNotFound):
			h.notFoundResponse(w, r)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	err = h.encodeJSON(w, http.StatusOK, envelope{"trip": trip}, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

// listTripsHandler lists the acting user's trips.
func (h *Handler) listTripsHandler(w http.ResponseWriter, r *http.Request) {
	actorID := h.contextGetActor(r)
	trips, err := h.service.ListTripsByOwner(actorID)
	if err != nil {
		h.serverErrorResponse(w, r, err)
		return
	}
	err = h.encodeJSON(w, http.StatusOK, envelope{"trips": trips}, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

// UpdateTrip godoc
// @Summary Update the details of a trip
// @Description This endpoint partially updates a trip; absent fields keep their stored values
// @Tags trips
// @Accept  json
// @Produce json
// @Param tripId path int true "ID of trip to update"
// @Param body body dto.UpdateTripRequestBody true "JSON payload with the fields to update"
// @Success 200 {object} data.Trip
// @Failure 400
// @Failure 401
// @Failure 404
// @Failure 422
// @Failure 500
// @Router /v1/trips/{tripId} [patch]
func (h *Handler) updateTripHandler(w http.ResponseWriter, r *http.Request) {
	tripID, err := h.readIDParam(r, "tripId")
	if err != nil {
		h.notFoundResponse(w, r)
		return
	}
	var requestBody dto.UpdateTripRequestBody
	err = h.decodeJSON(w, r, &requestBody)
	if err != nil {
		h.badRequestResponse(w, r, err)
		return
	}
	trip, err := h.service.UpdateTrip(tripID, requestBody)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRecordNotFound):
			h.notFoundResponse(w, r)
		case errors.Is(err, service.ErrFailedValidation):
			h.failedValidationResponse(w, r, err)
		case errors.Is(err, service.ErrInvalidReference):
			h.failedValidationResponse(w, r, err)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	err = h.encodeJSON(w, http.StatusOK, envelope{"trip": trip}, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

func (h *Handler) deleteTripHandler(w http.ResponseWriter, r *http.Request) {
	tripID, err := h.readIDParam(r, "tripId")
	if err != nil {
		h.notFoundResponse(w, r)
		return
	}
	err = h.service.DeleteTrip(tripID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRecordNotFound):
			h.notFoundResponse(w, r)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	err = h.encodeJSON(w, http.StatusOK, envelope{"message": "trip deleted successfully"}, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}
