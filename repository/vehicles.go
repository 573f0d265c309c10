package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/buscavan/api/data"
)

type vehicles interface {
	GetVehicleByPlate(plate string) (*data.Vehicle, error)
}

// GetVehicleByPlate retrieves a vehicle record by its license plate.
func (r *repository) GetVehicleByPlate(plate string) (*data.Vehicle, error) {
	query := `
		SELECT id, plate, model, seats
		FROM vehicles
		WHERE plate = $1`
	var vehicle data.Vehicle
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	err := r.db.QueryRowContext(ctx, query, plate).Scan(
		&vehicle.ID,
		&vehicle.Plate,
		&vehicle.Model,
		&vehicle.Seats,
	)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	return &vehicle, nil
}
