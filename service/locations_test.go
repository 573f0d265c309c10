package service

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const statesJSON = `[
	{"id": 12, "sigla": "AC", "nome": "Acre"},
	{"id": 35, "sigla": "SP", "nome": "São Paulo"}
]`

const citiesJSON = `[
	{"id": 3509502, "nome": "Campinas"},
	{"id": 3543402, "nome": "Ribeirão Preto"},
	{"id": 3548500, "nome": "Santos"},
	{"id": 3550308, "nome": "São Paulo"},
	{"id": 3552205, "nome": "Sorocaba"}
]`

func newDirectoryServer(t *testing.T, calls *atomic.Int64) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/estados":
			w.Write([]byte(statesJSON))
		case "/estados/35/municipios":
			w.Write([]byte(citiesJSON))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestListStates(t *testing.T) {
	var calls atomic.Int64
	srv := newDirectoryServer(t, &calls)
	s := newTestService(&mockRepo{}, okBlob())
	s.config.Locations.BaseURL = srv.URL
	s.client = srv.Client()

	states, err := s.ListStates()

	require.NoError(t, err)
	require.Len(t, states, 2)
	assert.Equal(t, "AC", states[0].Abbreviation)
	assert.Equal(t, "São Paulo", states[1].Name)
}

func TestListStatesServesRepeatsFromCache(t *testing.T) {
	var calls atomic.Int64
	srv := newDirectoryServer(t, &calls)
	s := newTestService(&mockRepo{}, okBlob())
	s.config.Locations.BaseURL = srv.URL
	s.client = srv.Client()

	_, err := s.ListStates()
	require.NoError(t, err)
	_, err = s.ListStates()
	require.NoError(t, err)

	assert.Equal(t, int64(1), calls.Load())
}

func TestListCitiesByState(t *testing.T) {
	t.Run("pages through the state's cities", func(t *testing.T) {
		var calls atomic.Int64
		srv := newDirectoryServer(t, &calls)
		s := newTestService(&mockRepo{}, okBlob())
		s.config.Locations.BaseURL = srv.URL
		s.client = srv.Client()

		cities, err := s.ListCitiesByState(35, 2, 2)

		require.NoError(t, err)
		require.Len(t, cities, 2)
		assert.Equal(t, "Santos", cities[0].Name)
		assert.Equal(t, "São Paulo", cities[1].Name)
	})

	t.Run("returns an empty page past the end", func(t *testing.T) {
		var calls atomic.Int64
		srv := newDirectoryServer(t, &calls)
		s := newTestService(&mockRepo{}, okBlob())
		s.config.Locations.BaseURL = srv.URL
		s.client = srv.Client()

		cities, err := s.ListCitiesByState(35, 4, 2)

		require.NoError(t, err)
		assert.Empty(t, cities)
	})

	t.Run("defaults page and limit", func(t *testing.T) {
		var calls atomic.Int64
		srv := newDirectoryServer(t, &calls)
		s := newTestService(&mockRepo{}, okBlob())
		s.config.Locations.BaseURL = srv.URL
		s.client = srv.Client()

		cities, err := s.ListCitiesByState(35, 0, 0)

		require.NoError(t, err)
		assert.Len(t, cities, 5)
	})

	t.Run("fails when the directory is unreachable for the state", func(t *testing.T) {
		var calls atomic.Int64
		srv := newDirectoryServer(t, &calls)
		s := newTestService(&mockRepo{}, okBlob())
		s.config.Locations.BaseURL = srv.URL
		s.client = srv.Client()

		_, err := s.ListCitiesByState(99, 1, 20)

		assert.Error(t, err)
	})
}
