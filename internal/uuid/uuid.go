// Package uuid wraps google/uuid with the parameter unmarshalling gin
// needs to bind UUIDs from URIs and query strings.
package uuid

import (
	google_uuid "github.com/google/uuid"
)

type UUID struct {
	google_uuid.UUID
}

var Nil UUID

func New() UUID {
	return UUID{google_uuid.New()}
}

// UnmarshalParam implements gin's binding.BindUnmarshaler so that a
// UUID can be bound directly from a request parameter. An empty
// parameter binds to the Nil UUID.
func (u *UUID) UnmarshalParam(p string) error {
	if p == "" {
		*u = Nil
		return nil
	}

	parsed, err := google_uuid.Parse(p)
	if err != nil {
		return err
	}

	*u = UUID{parsed}
	return nil
}
