package service

import (
	"testing"

	"github.com/buscavan/api/data"
	"github.com/buscavan/api/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetVehicleByPlate(t *testing.T) {
	t.Run("returns the vehicle", func(t *testing.T) {
		repo := &mockRepo{
			getVehicleByPlate: func(plate string) (*data.Vehicle, error) {
				require.Equal(t, "ABC1D23", plate)
				return &data.Vehicle{ID: 7, Plate: "ABC1D23", Model: "Sprinter 415", Seats: 15}, nil
			},
		}
		s := newTestService(repo, okBlob())

		vehicle, err := s.GetVehicleByPlate("ABC1D23")

		require.NoError(t, err)
		assert.Equal(t, int64(7), vehicle.ID)
	})

	t.Run("maps a missing vehicle to not found", func(t *testing.T) {
		repo := &mockRepo{
			getVehicleByPlate: func(plate string) (*data.Vehicle, error) {
				return nil, repository.ErrRecordNotFound
			},
		}
		s := newTestService(repo, okBlob())

		_, err := s.GetVehicleByPlate("ZZZ0Z00")

		assert.ErrorIs(t, err, ErrRecordNotFound)
	})
}
