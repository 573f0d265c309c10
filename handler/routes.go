package handler

import (
	"expvar"
	"net/http"

	"github.com/julienschmidt/httprouter"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

func (h *Handler) Routes() http.Handler {
	router := httprouter.New()

	router.NotFound = http.HandlerFunc(h.notFoundResponse)
	router.MethodNotAllowed = http.HandlerFunc(h.methodNotAllowed)

	router.HandlerFunc(http.MethodGet, "/v1/trips", h.requireActor(h.listTripsHandler))
	router.HandlerFunc(http.MethodPost, "/v1/trips", h.requireActor(h.createTripHandler))
	router.HandlerFunc(http.MethodGet, "/v1/trips/:tripId", h.showTripHandler)
	router.HandlerFunc(http.MethodPatch, "/v1/trips/:tripId", h.requireActor(h.updateTripHandler))
	router.HandlerFunc(http.MethodDelete, "/v1/trips/:tripId", h.requireActor(h.deleteTripHandler))

	router.HandlerFunc(http.MethodGet, "/v1/trips/:tripId/comments", h.listCommentsHandler)
	router.HandlerFunc(http.MethodPost, "/v1/trips/:tripId/comments", h.requireActor(h.createCommentHandler))

	router.HandlerFunc(http.MethodGet, "/v1/vehicles/:plate", h.showVehicleHandler)

	router.HandlerFunc(http.MethodGet, "/v1/locations/states", h.listStatesHandler)
	router.HandlerFunc(http.MethodGet, "/v1/locations/states/:stateId/cities", h.listCitiesHandler)

	router.HandlerFunc(http.MethodGet, "/debug/vars", h.basicAuth(expvar.Handler().ServeHTTP))
	router.HandlerFunc(http.MethodGet, "/v1/healthcheck", h.healthcheckHandler)

	// Swagger routes
	router.HandlerFunc(http.MethodGet, "/spec", h.handleSwaggerFile())
	router.HandlerFunc(http.MethodGet, "/docs/*any", httpSwagger.Handler(httpSwagger.URL("/spec")))

	return h.recoverPanic(h.enableCORS(h.rateLimit(h.metrics(h.actorContext(router)))))
}
