package queries

import (
	"context"
	"time"

	"voltshare-booking/internal/domain/schedule"
	"voltshare-booking/internal/pkg/clock"

	"github.com/google/uuid"
)

type AvailabilityQueries interface {
	// GetDay resolves the 24-bucket grid for one calendar day of a station.
	// The reservation snapshot is fetched fresh on every call; "now" comes
	// from the injected clock so past-marking advances between calls.
	GetDay(ctx context.Context, stationID uuid.UUID, day time.Time) ([]BucketView, error)
}

type availabilityQueriesImpl struct {
	store StationReadStore
	clock clock.Clock
}

func NewAvailabilityQueries(store StationReadStore, clk clock.Clock) AvailabilityQueries {
	return &availabilityQueriesImpl{store: store, clock: clk}
}

func (q *availabilityQueriesImpl) GetDay(ctx context.Context, stationID uuid.UUID, day time.Time) ([]BucketView, error) {
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	windows, err := q.store.ListReservationWindows(ctx, stationID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	buckets := schedule.ResolveDay(dayStart, windows, q.clock.Now())

	views := make([]BucketView, len(buckets))
	for i, b := range buckets {
		views[i] = BucketView{Start: b.Start, End: b.End, Status: b.Status.String()}
	}
	return views, nil
}
