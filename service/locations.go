package service

import (
	"encoding/json"
	"fmt"

	"github.com/buscavan/api/data"
	"github.com/jellydator/ttlcache/v3"
)

type locations interface {
	ListStates() ([]*data.State, error)
	ListCitiesByState(stateID int64, page, limit int) ([]*data.City, error)
}

// fetchLocationResource fetches a location directory resource, serving
// repeated lookups from the TTL cache. The directory's data set changes
// rarely, so a cached payload is as good as a fresh one.
func (s *service) fetchLocationResource(path string) ([]byte, error) {
	if item := s.cache.Get(path); item != nil {
		s.logger.PrintDebug("location directory cache hit", map[string]string{"path": path})
		return item.Value(), nil
	}
	body, err := s.fetchRemoteResource(s.client, s.config.Locations.BaseURL+path)
	if err != nil {
		s.logger.PrintError(err, map[string]string{"operation": "fetch location resource", "path": path})
		return nil, err
	}
	s.cache.Set(path, body, ttlcache.DefaultTTL)
	return body, nil
}

// ListStates service retrieves all federative units from the external
// location directory, ordered by name.
func (s *service) ListStates() ([]*data.State, error) {
	body, err := s.fetchLocationResource("/estados?orderBy=nome")
	if err != nil {
		return nil, err
	}
	var payload []struct {
		ID   int64  `json:"id"`
		Abbr string `json:"sigla"`
		Name string `json:"nome"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, err
	}
	states := make([]*data.State, 0, len(payload))
	for _, entry := range payload {
		states = append(states, &data.State{
			ID:           entry.ID,
			Abbreviation: entry.Abbr,
			Name:         entry.Name,
		})
	}
	return states, nil
}

// ListCitiesByState service retrieves one page of a state's cities from the
// external location directory. The directory returns whole collections, so
// pagination is applied by slicing the (cached) result.
func (s *service) ListCitiesByState(stateID int64, page, limit int) ([]*data.City, error) {
	body, err := s.fetchLocationResource(fmt.Sprintf("/estados/%d/municipios?orderBy=nome", stateID))
	if err != nil {
		return nil, err
	}
	var payload []struct {
		ID   int64  `json:"id"`
		Name string `json:"nome"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, err
	}
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	start := (page - 1) * limit
	if start >= len(payload) {
		return []*data.City{}, nil
	}
	end := start + limit
	if end > len(payload) {
		end = len(payload)
	}
	cities := make([]*data.City, 0, end-start)
	for _, entry := range payload[start:end] {
		cities = append(cities, &data.City{
			ID:   entry.ID,
			Name: entry.Name,
		})
	}
	return cities, nil
}
