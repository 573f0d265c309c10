package data

import (
	"time"

	"github.com/buscavan/api/internal/validator"
)

// Trip defines a bookable trip offer between two cities.
type Trip struct {
	ID               int64      `json:"id"`
	OwnerID          int64      `json:"owner_id"`
	OriginID         int64      `json:"origin_id"`
	DestinationID    int64      `json:"destination_id"`
	VehicleID        int64      `json:"vehicle_id"`
	StartDate        time.Time  `json:"start_date"`
	EndDate          time.Time  `json:"end_date"`
	Price            float64    `json:"price"`
	OutboundBoarding string     `json:"outbound_boarding"`
	ReturnBoarding   string     `json:"return_boarding"`
	Description      string     `json:"description,omitempty"`
	PhotoURL         string     `json:"photo_url"`
	CreatedAt        time.Time  `json:"created_at"`
	Vehicle          *Vehicle   `json:"vehicle,omitempty"`
	Comments         []*Comment `json:"comments,omitempty"`
}

func ValidateTrip(v *validator.Validator, trip *Trip) {
	v.Check(trip.OriginID > 0, "origin_id", "must be provided")
	v.Check(trip.DestinationID > 0, "destination_id", "must be provided")
	v.Check(trip.OriginID != trip.DestinationID, "destination_id", "must differ from origin")
	v.Check(trip.VehicleID > 0, "vehicle_id", "must be provided")
	v.Check(!trip.StartDate.IsZero(), "start_date", "must be provided")
	v.Check(!trip.EndDate.IsZero(), "end_date", "must be provided")
	v.Check(!trip.EndDate.Before(trip.StartDate), "end_date", "must not be before start date")
	v.Check(trip.Price > 0, "price", "must be greater than zero")
	v.Check(trip.OutboundBoarding != "", "outbound_boarding", "must be provided")
	v.Check(trip.ReturnBoarding != "", "return_boarding", "must be provided")
	v.Check(len(trip.Description) <= 2000, "description", "must not be more than 2000 bytes long")
}
