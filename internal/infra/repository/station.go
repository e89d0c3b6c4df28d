package repository

import (
	"context"
	"errors"
	"time"

	"voltshare-booking/internal/domain/station"
	"voltshare-booking/internal/infra"
	"voltshare-booking/internal/usecase/commands"
	"voltshare-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type StationRepository struct {
	pool *pgxpool.Pool
}

func NewStationRepository(pool *pgxpool.Pool) *StationRepository {
	return &StationRepository{pool: pool}
}

var _ commands.StationRepository = (*StationRepository)(nil)

// FindByID loads the station together with its upcoming reservation windows,
// the snapshot the booking flow validates against.
func (r *StationRepository) FindByID(ctx context.Context, id uuid.UUID) (*commands.StationSnapshot, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, name, address, hourly_rate_cents, power_kw, COALESCE(picture_url, '')
		FROM stations WHERE id = $1
	`, id)

	var snap commands.StationSnapshot
	if err := row.Scan(&snap.ID, &snap.Name, &snap.Address, &snap.HourlyRateCents, &snap.PowerKW, &snap.PictureURL); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("station not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find station", err)
	}

	rows, err := r.pool.Query(ctx, `
		SELECT start_time, end_time
		FROM reservations
		WHERE station_id = $1 AND end_time > NOW()
		ORDER BY start_time
	`, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load station reservations", err)
	}
	defer rows.Close()

	for rows.Next() {
		var res station.ExistingReservation
		if err := rows.Scan(&res.StartTime, &res.EndTime); err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation window", err)
		}
		snap.Reservations = append(snap.Reservations, res)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate reservation windows", err)
	}

	return &snap, nil
}

// StationReadRepository serves the read side of the station aggregate.
type StationReadRepository struct {
	pool *pgxpool.Pool
}

func NewStationReadRepository(pool *pgxpool.Pool) *StationReadRepository {
	return &StationReadRepository{pool: pool}
}

var _ queries.StationReadStore = (*StationReadRepository)(nil)

func (r *StationReadRepository) FindByID(ctx context.Context, id uuid.UUID) (*queries.StationView, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, name, address, hourly_rate_cents, power_kw, COALESCE(picture_url, ''), created_at
		FROM stations WHERE id = $1
	`, id)

	var view queries.StationView
	err := row.Scan(&view.ID, &view.Name, &view.Address, &view.HourlyRateCents, &view.PowerKW, &view.PictureURL, &view.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("station not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find station", err)
	}
	return &view, nil
}

func (r *StationReadRepository) ListReservationWindows(ctx context.Context, stationID uuid.UUID, from, to time.Time) ([]station.ExistingReservation, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT start_time, end_time
		FROM reservations
		WHERE station_id = $1 AND start_time < $3 AND end_time > $2
		ORDER BY start_time
	`, stationID, from, to)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservation windows", err)
	}
	defer rows.Close()

	var windows []station.ExistingReservation
	for rows.Next() {
		var res station.ExistingReservation
		if err := rows.Scan(&res.StartTime, &res.EndTime); err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation window", err)
		}
		windows = append(windows, res)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate reservation windows", err)
	}
	return windows, nil
}
