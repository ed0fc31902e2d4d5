// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core account entity. Every world, location and uploaded file
// carries an optional reference back to the user who created it.
type User struct {
	ID             uuid.UUID // The unique identifier for the user.
	Username       string    // Unique login name, also accepted as a login identifier.
	Email          string    // Unique contact email, also accepted as a login identifier.
	Password       string    // The bcrypt hash of the user's password. Never exposed by the delivery layer.
	FirstName      string
	LastName       string
	AdditionalName *string    // Optional middle/patronymic name.
	PhoneNumber    *string    // Optional contact phone, at most 15 characters.
	DateOfBirth    time.Time  // Date component only; stored as a DATE column.
	AvatarImage    *string    // Stored filename of the avatar, nil when the user has none.
	CreatedAt      time.Time
}
