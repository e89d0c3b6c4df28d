package booking

import (
	"errors"

	"github.com/google/uuid"
)

var (
	ErrMissingStation = errors.New("intent requires a station")
	ErrMissingUser    = errors.New("intent requires a user")
	ErrMissingCar     = errors.New("intent requires a car")
	ErrEmptyRange     = errors.New("intent requires a committed range")
)

// Intent is the payload that crosses into payment and persistence. It is
// built only from a committed range, consumed by exactly one orchestration
// attempt, and its staged copy is cleared when the attempt ends either way.
type Intent struct {
	stationID uuid.UUID
	userID    uuid.UUID
	carID     uuid.UUID
	rng       Range
	price     Money
}

func NewIntent(stationID, userID, carID uuid.UUID, rng Range, price Money) (*Intent, error) {
	if stationID == uuid.Nil {
		return nil, ErrMissingStation
	}
	if userID == uuid.Nil {
		return nil, ErrMissingUser
	}
	if carID == uuid.Nil {
		return nil, ErrMissingCar
	}
	if rng.IsZero() {
		return nil, ErrEmptyRange
	}
	return &Intent{
		stationID: stationID,
		userID:    userID,
		carID:     carID,
		rng:       rng,
		price:     price,
	}, nil
}

func (i *Intent) StationID() uuid.UUID { return i.stationID }
func (i *Intent) UserID() uuid.UUID    { return i.userID }
func (i *Intent) CarID() uuid.UUID     { return i.carID }
func (i *Intent) Range() Range         { return i.rng }
func (i *Intent) Price() Money         { return i.price }
