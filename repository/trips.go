package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/buscavan/api/data"
)

type trips interface {
	CreateTrip(trip *data.Trip, comments []*data.Comment) error
	GetTrip(tripID int64) (*data.Trip, error)
	GetAllTripsByOwner(ownerID int64) ([]*data.Trip, error)
	UpdateTrip(trip *data.Trip) error
	UpsertComments(tripID int64, comments []*data.Comment) error
	DeleteTrip(tripID int64) error
}

// nullableID converts a 0 id (the "no parent" sentinel) to a SQL NULL so the
// self-referential foreign key on comments is only enforced for real parents.
func nullableID(id int64) interface{} {
	if id == 0 {
		return nil
	}
	return id
}

// CreateTrip creates a trip record together with any nested comments. The
// whole write runs in one transaction: a foreign key failure on any row
// (origin, destination, vehicle, owner or a comment's parent) leaves nothing
// behind.
func (r *repository) CreateTrip(trip *data.Trip, comments []*data.Comment) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `
		INSERT INTO trips (owner_id, origin_id, destination_id, vehicle_id, start_date, end_date, price, outbound_boarding, return_boarding, description, photo_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at`
	args := []interface{}{
		trip.OwnerID,
		trip.OriginID,
		trip.DestinationID,
		trip.VehicleID,
		trip.StartDate,
		trip.EndDate,
		trip.Price,
		trip.OutboundBoarding,
		trip.ReturnBoarding,
		trip.Description,
		trip.PhotoURL,
	}
	err = tx.QueryRowContext(ctx, query, args...).Scan(&trip.ID, &trip.CreatedAt)
	if err != nil {
		switch {
		case foreignKeyViolation(err):
			return ErrForeignKeyViolation
		default:
			return err
		}
	}
	for _, comment := range comments {
		err = insertComment(ctx, tx, trip.ID, comment)
		if err != nil {
			switch {
			case foreignKeyViolation(err):
				return ErrForeignKeyViolation
			default:
				return err
			}
		}
	}
	if err = tx.Commit(); err != nil {
		return err
	}
	trip.Comments = comments
	return nil
}

// GetTrip retrieves a trip record joined with its vehicle and its full set
// of comments.
func (r *repository) GetTrip(tripID int64) (*data.Trip, error) {
	if tripID < 1 {
		return nil, ErrRecordNotFound
	}
	query := `
		SELECT trips.id, trips.owner_id, trips.origin_id, trips.destination_id, trips.vehicle_id,
			trips.start_date, trips.end_date, trips.price, trips.outbound_boarding, trips.return_boarding,
			trips.description, trips.photo_url, trips.created_at,
			vehicles.id, vehicles.plate, vehicles.model, vehicles.seats
		FROM trips
		INNER JOIN vehicles ON trips.vehicle_id = vehicles.id
		WHERE trips.id = $1`
	var trip data.Trip
	var vehicle data.Vehicle
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	err := r.db.QueryRowContext(ctx, query, tripID).Scan(
		&trip.ID,
		&trip.OwnerID,
		&trip.OriginID,
		&trip.DestinationID,
		&trip.VehicleID,
		&trip.StartDate,
		&trip.EndDate,
		&trip.Price,
		&trip.OutboundBoarding,
		&trip.ReturnBoarding,
		&trip.Description,
		&trip.PhotoURL,
		&trip.CreatedAt,
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
	trip.Vehicle = &vehicle
	comments, err := r.GetAllComments(trip.ID)
	if err != nil {
		return nil, err
	}
	trip.Comments = comments
	return &trip, nil
}

// GetAllTripsByOwner retrieves all trip records owned by a user. The result
// is an empty slice, not an error, when the owner has no trips.
func (r *repository) GetAllTripsByOwner(ownerID int64) ([]*data.Trip, error) {
	query := `
		SELECT id, owner_id, origin_id, destination_id, vehicle_id, start_date, end_date,
			price, outbound_boarding, return_boarding, description, photo_url, created_at
		FROM trips
		WHERE owner_id = $1
		ORDER BY start_date`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	trips := []*data.Trip{}
	for rows.Next() {
		var trip data.Trip
		err := rows.Scan(
			&trip.ID,
			&trip.OwnerID,
			&trip.OriginID,
			&trip.DestinationID,
			&trip.VehicleID,
			&trip.StartDate,
			&trip.EndDate,
			&trip.Price,
			&trip.OutboundBoarding,
			&trip.ReturnBoarding,
			&trip.Description,
			&trip.PhotoURL,
			&trip.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		trips = append(trips, &trip)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return trips, nil
}

// UpdateTrip overwrites a trip record. Concurrent updates rely on the
// database's own transaction isolation: last write wins.
func (r *repository) UpdateTrip(trip *data.Trip) error {
	query := `
		UPDATE trips
		SET origin_id = $1, destination_id = $2, vehicle_id = $3, start_date = $4, end_date = $5,
			price = $6, outbound_boarding = $7, return_boarding = $8, description = $9, photo_url = $10
		WHERE id = $11`
	args := []interface{}{
		trip.OriginID,
		trip.DestinationID,
		trip.VehicleID,
		trip.StartDate,
		trip.EndDate,
		trip.Price,
		trip.OutboundBoarding,
		trip.ReturnBoarding,
		trip.Description,
		trip.PhotoURL,
		trip.ID,
	}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		switch {
		case foreignKeyViolation(err):
			return ErrForeignKeyViolation
		default:
			return err
		}
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

// UpsertComments reconciles a supplied comment list against the comments
// stored for a trip. A comment whose id matches an existing row under the
// trip is overwritten; any other comment (including the id 0 sentinel for
// "no id supplied") is inserted with a newly assigned id. All rows are
// written in one transaction.
func (r *repository) UpsertComments(tripID int64, comments []*data.Comment) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, comment := range comments {
		if comment.ID != 0 {
			query := `
				UPDATE comments
				SET author = $1, content = $2, parent_id = $3, created_at = now()
				WHERE id = $4 AND trip_id = $5
				RETURNING created_at`
			err := tx.QueryRowContext(ctx, query, comment.Author, comment.Content, nullableID(comment.ParentID), comment.ID, tripID).Scan(&comment.CreatedAt)
			if err == nil {
				continue
			}
			if !errors.Is(err, sql.ErrNoRows) {
				if foreignKeyViolation(err) {
					return ErrForeignKeyViolation
				}
				return err
			}
			// No row matched the supplied id under this trip: fall through to insert.
		}
		err := insertComment(ctx, tx, tripID, comment)
		if err != nil {
			switch {
			case foreignKeyViolation(err):
				return ErrForeignKeyViolation
			default:
				return err
			}
		}
	}
	return tx.Commit()
}

// DeleteTrip deletes a trip record. The schema cascades the delete to every
// comment owned by the trip.
func (r *repository) DeleteTrip(tripID int64) error {
	if tripID < 1 {
		return ErrRecordNotFound
	}
	query := `
		DELETE FROM trips
		WHERE id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	result, err := r.db.ExecContext(ctx, query, tripID)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}
