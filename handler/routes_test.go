package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/buscavan/api/data"
	"github.com/buscavan/api/data/dto"
	"github.com/buscavan/api/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockService is a test double for service.Service with function fields, so
// a test only sets the operations it expects the router to reach.
type mockService struct {
	createTrip        func(ownerID int64, r *http.Request) (*data.Trip, error)
	getTrip           func(tripID int64) (*data.Trip, error)
	listTripsByOwner  func(ownerID int64) ([]*data.Trip, error)
	updateTrip        func(tripID int64, requestBody dto.UpdateTripRequestBody) (*data.Trip, error)
	deleteTrip        func(tripID int64) error
	addComment        func(tripID int64, requestBody dto.CreateCommentRequestBody) (*data.Comment, error)
	listComments      func(tripID int64) ([]*data.Comment, error)
	getVehicleByPlate func(plate string) (*data.Vehicle, error)
	listStates        func() ([]*data.State, error)
	listCitiesByState func(stateID int64, page, limit int) ([]*data.City, error)
}

func (m *mockService) CreateTrip(ownerID int64, r *http.Request) (*data.Trip, error) {
	return m.createTrip(ownerID, r)
}
func (m *mockService) GetTrip(tripID int64) (*data.Trip, error) {
	return m.getTrip(tripID)
}
func (m *mockService) ListTripsByOwner(ownerID int64) ([]*data.Trip, error) {
	return m.listTripsByOwner(ownerID)
}
func (m *mockService) UpdateTrip(tripID int64, requestBody dto.UpdateTripRequestBody) (*data.Trip, error) {
	return m.updateTrip(tripID, requestBody)
}
func (m *mockService) DeleteTrip(tripID int64) error {
	return m.deleteTrip(tripID)
}
func (m *mockService) AddComment(tripID int64, requestBody dto.CreateCommentRequestBody) (*data.Comment, error) {
	return m.addComment(tripID, requestBody)
}
func (m *mockService) ListComments(tripID int64) ([]*data.Comment, error) {
	return m.listComments(tripID)
}
func (m *mockService) GetVehicleByPlate(plate string) (*data.Vehicle, error) {
	return m.getVehicleByPlate(plate)
}
func (m *mockService) ListStates() ([]*data.State, error) {
	return m.listStates()
}
func (m *mockService) ListCitiesByState(stateID int64, page, limit int) ([]*data.City, error) {
	return m.listCitiesByState(stateID, page, limit)
}

var _ service.Service = (*mockService)(nil)

func TestRoutes(t *testing.T) {
	h := newTestHandler()
	h.service = &mockService{
		listStates: func() ([]*data.State, error) {
			return []*data.State{{ID: 35, Abbreviation: "SP", Name: "São Paulo"}}, nil
		},
		listCitiesByState: func(stateID int64, page, limit int) ([]*data.City, error) {
			require.Equal(t, int64(35), stateID)
			return []*data.City{{ID: 3550308, Name: "São Paulo"}}, nil
		},
	}
	routes := h.Routes()

	t.Run("serves the location directory routes", func(t *testing.T) {
		w := httptest.NewRecorder()
		routes.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/locations/states", nil))
		assert.Equal(t, http.StatusOK, w.Code)

		w = httptest.NewRecorder()
		routes.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/locations/states/35/cities", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("does not serve locations outside their prefix", func(t *testing.T) {
		w := httptest.NewRecorder()
		routes.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/states", nil))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("requires an actor for mutating trip routes", func(t *testing.T) {
		w := httptest.NewRecorder()
		routes.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/trips", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("serves the healthcheck", func(t *testing.T) {
		w := httptest.NewRecorder()
		routes.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/healthcheck", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	})
}
