package handler

import (
	"net/http"

	"github.com/buscavan/api/internal/validator"
)

func (h *Handler) listStatesHandler(w http.ResponseWriter, r *http.Request) {
	states, err := h.service.ListStates()
	if err != nil {
		h.serverErrorResponse(w, r, err)
		return
	}
	err = h.encodeJSON(w, http.StatusOK, envelope{"states": states}, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

func (h *Handler) listCitiesHandler(w http.ResponseWriter, r *http.Request) {
	stateID, err := h.readIDParam(r, "stateId")
	if err != nil {
		h.notFoundResponse(w, r)
		return
	}
	v := validator.New()
	qs := r.URL.Query()
	page := h.readInt(qs, "page", 1, v)
	limit := h.readInt(qs, "limit", 20, v)
	v.Check(page > 0, "page", "must be a positive integer")
	v.Check(limit > 0 && limit <= 100, "limit", "must be between 1 and 100")
	if !v.Valid() {
		h.errorResponse(w, r, http.StatusUnprocessableEntity, v.Errors)
		return
	}
	cities, err := h.service.ListCitiesByState(stateID, page, limit)
	if err != nil {
		h.serverErrorResponse(w, r, err)
		return
	}
	err = h.encodeJSON(w, http.StatusOK, envelope{"cities": cities, "page": page, "limit": limit}, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}
