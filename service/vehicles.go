package service

import (
	"errors"

	"github.com/buscavan/api/data"
	"github.com/buscavan/api/repository"
)

type vehicles interface {
	GetVehicleByPlate(plate string) (*data.Vehicle, error)
}

// GetVehicleByPlate service retrieves a vehicle by its license plate.
func (s *service) GetVehicleByPlate(plate string) (*data.Vehicle, error) {
	vehicle, err := s.repo.GetVehicleByPlate(plate)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return nil, ErrRecordNotFound
		default:
			s.logger.PrintError(err, map[string]string{"operation": "get vehicle by plate"})
			return nil, err
		}
	}
	return vehicle, nil
}
