package station

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidName = errors.New("station name must not be empty")
	ErrInvalidRate = errors.New("hourly rate must be positive")
)

// Station is the charging point a rider books time on. The marketplace
// backend owns the full record; this core only needs identity, pricing and
// the reservation snapshot for availability.
type Station struct {
	id              uuid.UUID
	name            string
	address         string
	hourlyRateCents int64
	powerKW         float64
	pictureURL      string
}

func NewStation(id uuid.UUID, name, address string, hourlyRateCents int64, powerKW float64, pictureURL string) (*Station, error) {
	if name == "" {
		return nil, ErrInvalidName
	}
	if hourlyRateCents <= 0 {
		return nil, ErrInvalidRate
	}
	return &Station{
		id:              id,
		name:            name,
		address:         address,
		hourlyRateCents: hourlyRateCents,
		powerKW:         powerKW,
		pictureURL:      pictureURL,
	}, nil
}

func (s *Station) ID() uuid.UUID          { return s.id }
func (s *Station) Name() string           { return s.name }
func (s *Station) Address() string        { return s.address }
func (s *Station) HourlyRateCents() int64 { return s.hourlyRateCents }
func (s *Station) PowerKW() float64       { return s.powerKW }
func (s *Station) PictureURL() string     { return s.pictureURL }

// ExistingReservation is a read-only slice of another rider's booking,
// as fetched with the station detail.
type ExistingReservation struct {
	StartTime time.Time
	EndTime   time.Time
}

// Overlaps reports whether the reservation intersects the half-open window
// [start, end).
func (r ExistingReservation) Overlaps(start, end time.Time) bool {
	return start.Before(r.EndTime) && end.After(r.StartTime)
}
