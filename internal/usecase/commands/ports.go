package commands

import (
	"context"
	"time"

	"voltshare-booking/internal/domain/station"

	"github.com/google/uuid"
)

// Write-side snapshots prevent dependency on read-side query types.
type StationSnapshot struct {
	ID              uuid.UUID
	Name            string
	Address         string
	HourlyRateCents int64
	PowerKW         float64
	PictureURL      string
	Reservations    []station.ExistingReservation
}

type UserSnapshot struct {
	ID    uuid.UUID
	Email string
	Cars  []CarSnapshot
}

type CarSnapshot struct {
	ID    uuid.UUID
	Model string
	Plate string
}

// NewReservationRecord is the write payload for a confirmed booking.
type NewReservationRecord struct {
	StationID  uuid.UUID
	UserID     uuid.UUID
	CarID      uuid.UUID
	BookedAt   time.Time
	StartTime  time.Time
	EndTime    time.Time
	PriceCents int64
}

type StationRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*StationSnapshot, error)
}

type UserRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*UserSnapshot, error)
}

type ReservationRepository interface {
	Create(ctx context.Context, rec NewReservationRecord) (uuid.UUID, error)
	// CountOverlapping counts confirmed reservations intersecting the
	// half-open window [start, end) on a station.
	CountOverlapping(ctx context.Context, stationID uuid.UUID, start, end time.Time) (int, error)
}

// PaymentOutcome is the result of the rider's external authenticated payment
// session. Dismiss covers every non-committal way of leaving the session
// (closed tab, timeout); only Success lets the booking proceed.
type PaymentOutcome string

const (
	OutcomeSuccess PaymentOutcome = "success"
	OutcomeCancel  PaymentOutcome = "cancel"
	OutcomeDismiss PaymentOutcome = "dismiss"
)

type CheckoutSessionParams struct {
	UserEmail   string
	ProductName string
	AmountCents int64
}

type CheckoutSession struct {
	ID  string
	URL string
}

type PaymentGateway interface {
	CreateCheckoutSession(ctx context.Context, params CheckoutSessionParams) (*CheckoutSession, error)
	// OpenAuthenticatedSession blocks until the external payment session
	// resolves and reports how the rider left it.
	OpenAuthenticatedSession(ctx context.Context, session CheckoutSession) (PaymentOutcome, error)
}

// TransientStore is scoped key-value staging that survives the external
// payment redirect boundary. Values are opaque bytes; the orchestrator owns
// the encoding.
type TransientStore interface {
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Get(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
}

// CacheRefresher rebuilds the caller-facing user and station caches after a
// successful booking.
type CacheRefresher interface {
	RefreshUserData(ctx context.Context, userID uuid.UUID) error
	RefreshStationData(ctx context.Context, stationID uuid.UUID) error
}
