package uuid

import (
	"database/sql/driver"

	"github.com/gofrs/uuid/v5"
)

// UUID wraps gofrs uuid so that model and api packages share one type.
type UUID struct {
	uuid.UUID
}

var Nil = UUID{UUID: uuid.Nil}

func NewV4() UUID {
	return UUID{UUID: uuid.Must(uuid.NewV4())}
}

func FromString(s string) (UUID, error) {
	u, err := uuid.FromString(s)
	if err != nil {
		return Nil, err
	}
	return UUID{UUID: u}, nil
}

func MustFromString(s string) UUID {
	return UUID{UUID: uuid.Must(uuid.FromString(s))}
}

func (u UUID) IsNil() bool {
	return u.UUID == uuid.Nil
}

func (u UUID) Value() (driver.Value, error) {
	return u.UUID.String(), nil
}

func (u *UUID) Scan(src any) error {
	return u.UUID.Scan(src)
}

func (u UUID) MarshalText() ([]byte, error) {
	return u.UUID.MarshalText()
}

func (u *UUID) UnmarshalText(text []byte) error {
	return u.UUID.UnmarshalText(text)
}

// UnmarshalParam lets gin bind uuid values from query and form parameters.
func (u *UUID) UnmarshalParam(param string) error {
	return u.UUID.UnmarshalText([]byte(param))
}
