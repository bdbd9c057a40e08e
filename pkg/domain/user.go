package domain

import (
	"time"

	"github.com/google/uuid"
)

// UserID uniquely identifies an authenticated caller within the system.
// It is a thin wrapper around uuid.UUID to provide type safety at the domain layer.
type UserID uuid.UUID

func (id UserID) String() string { return uuid.UUID(id).String() }

func (id UserID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }

func (id *UserID) UnmarshalText(b []byte) error { return (*uuid.UUID)(id).UnmarshalText(b) }

// ProfileID uniquely identifies the profile owned by a user.
type ProfileID uuid.UUID

func (id ProfileID) String() string { return uuid.UUID(id).String() }

func (id ProfileID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }

func (id *ProfileID) UnmarshalText(b []byte) error { return (*uuid.UUID)(id).UnmarshalText(b) }

// Profile is the caller's account profile. Searches and search history are
// always attributed to a profile, never directly to a user.
type Profile struct {
	ID          ProfileID `json:"id"`
	UserID      UserID    `json:"userId"`
	DisplayName string    `json:"displayName"`
	CreatedAt   time.Time `json:"createdAt"`
}
