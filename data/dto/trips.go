package dto

import "time"

// TripCommentBody defines a comment supplied inline with a trip create or
// update payload. A nil ID means the comment does not exist yet and will be
// inserted; a nil ParentCommentID means a top-level comment.
type TripCommentBody struct {
	ID              *int64 `json:"id"`
	Author          string `json:"author"`
	Content         string `json:"content"`
	ParentCommentID *int64 `json:"parent_comment_id"`
}

// CreateTripRequestBody defines the JSON part of the multipart payload for
// CreateTrip service. The photo itself travels as a separate file part.
type CreateTripRequestBody struct {
	OriginID         int64             `json:"origin_id"`
	DestinationID    int64             `json:"destination_id"`
	VehicleID        int64             `json:"vehicle_id"`
	StartDate        time.Time         `json:"start_date"`
	EndDate          time.Time         `json:"end_date"`
	Price            float64           `json:"price"`
	OutboundBoarding string            `json:"outbound_boarding"`
	ReturnBoarding   string            `json:"return_boarding"`
	Description      string            `json:"description"`
	Comments         []TripCommentBody `json:"comments"`
}

// UpdateTripRequestBody defines the request body for UpdateTrip service. The
// fields are set to a pointer type to allow partial updates based on whether
// the value is set to nil. A nil Comments slice leaves the comment set alone;
// a non-nil slice is reconciled by upsert.
type UpdateTripRequestBody struct {
	OriginID         *int64            `json:"origin_id"`
	DestinationID    *int64            `json:"destination_id"`
	VehicleID        *int64            `json:"vehicle_id"`
	StartDate        *time.Time        `json:"start_date"`
	EndDate          *time.Time        `json:"end_date"`
	Price            *float64          `json:"price"`
	OutboundBoarding *string           `json:"outbound_boarding"`
	ReturnBoarding   *string           `json:"return_boarding"`
	Description      *string           `json:"description"`
	PhotoURL         *string           `json:"photo_url"`
	Comments         []TripCommentBody `json:"comments"`
}
