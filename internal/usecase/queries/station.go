package queries

import (
	"context"
	"time"

	"voltshare-booking/internal/domain/station"

	"github.com/google/uuid"
)

type StationReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*StationView, error)
	// ListReservationWindows returns the confirmed reservation windows
	// intersecting [from, to) for a station, the availability snapshot.
	ListReservationWindows(ctx context.Context, stationID uuid.UUID, from, to time.Time) ([]station.ExistingReservation, error)
}

type StationQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*StationView, error)
}

type stationQueriesImpl struct {
	store StationReadStore
}

func NewStationQueries(store StationReadStore) StationQueries {
	return &stationQueriesImpl{store: store}
}

func (q *stationQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*StationView, error) {
	return q.store.FindByID(ctx, id)
}
