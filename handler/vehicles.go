package handler

import (
	"errors"
	"net/http"

	"github.com/buscavan/api/service"
)

func (h *Handler) showVehicleHandler(w http.ResponseWriter, r *http.Request) {
	plate := h.readStringParam(r, "plate")
	if plate == "" {
		h.notFoundResponse(w, r)
		return
	}
	vehicle, err := h.service.GetVehicleByPlate(plate)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRecordNotFound):
			h.notFoundResponse(w, r)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	err = h.encodeJSON(w, http.StatusOK, envelope{"vehicle": vehicle}, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}
