package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type StationView struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Address         string    `json:"address"`
	HourlyRateCents int64     `json:"hourly_rate_cents"`
	PowerKW         float64   `json:"power_kw"`
	PictureURL      string    `json:"picture_url,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

type ReservationView struct {
	ID          uuid.UUID `json:"id"`
	StationID   uuid.UUID `json:"station_id"`
	StationName string    `json:"station_name"`
	UserID      uuid.UUID `json:"user_id"`
	CarID       uuid.UUID `json:"car_id"`
	BookedAt    time.Time `json:"booked_at"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	PriceCents  int64     `json:"price_cents"`
	CreatedAt   time.Time `json:"created_at"`
}

type ReservationListItem struct {
	ID          uuid.UUID `json:"id"`
	StationID   uuid.UUID `json:"station_id"`
	StationName string    `json:"station_name"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	PriceCents  int64     `json:"price_cents"`
	CreatedAt   time.Time `json:"created_at"`
}

// BucketView is one hour of the availability grid as rendered by the client.
type BucketView struct {
	Start  time.Time `json:"start"`
	End    time.Time `json:"end"`
	Status string    `json:"status"`
}
