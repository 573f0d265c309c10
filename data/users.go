package data

import "time"

// User defines a trip owner. Account management lives with an external
// identity collaborator; this record only mirrors what trips reference.
type User struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}
