package repository

import (
	"context"
	"errors"
	"time"

	"voltshare-booking/internal/infra"
	"voltshare-booking/internal/usecase/commands"
	"voltshare-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgUniqueViolation    = "23505"
	pgForeignKeyViolated = "23503"
	pgExclusionViolation = "23P01"
)

type ReservationRepository struct {
	pool *pgxpool.Pool
}

func NewReservationRepository(pool *pgxpool.Pool) *ReservationRepository {
	return &ReservationRepository{pool: pool}
}

var _ commands.ReservationRepository = (*ReservationRepository)(nil)

func (r *ReservationRepository) Create(ctx context.Context, rec commands.NewReservationRecord) (uuid.UUID, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO reservations (id, station_id, user_id, car_id, booked_at, start_time, end_time, price_cents)
		VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`, rec.StationID, rec.UserID, rec.CarID, rec.BookedAt, rec.StartTime, rec.EndTime, rec.PriceCents)

	var id uuid.UUID
	if err := row.Scan(&id); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case pgExclusionViolation:
				// The no_overlap constraint caught a concurrent booking.
				return uuid.Nil, infra.WrapRepoErr("reservation window already taken", err, infra.KindConflict)
			case pgUniqueViolation:
				return uuid.Nil, infra.WrapRepoErr("duplicate reservation", err, infra.KindDuplicateKey)
			case pgForeignKeyViolated:
				return uuid.Nil, infra.WrapRepoErr("reservation references missing row", err, infra.KindForeignKeyViolated)
			}
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create reservation", err)
	}
	return id, nil
}

func (r *ReservationRepository) CountOverlapping(ctx context.Context, stationID uuid.UUID, start, end time.Time) (int, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT COUNT(*)
		FROM reservations
		WHERE station_id = $1 AND start_time < $3 AND end_time > $2
	`, stationID, start, end)

	var count int
	if err := row.Scan(&count); err != nil {
		return 0, infra.WrapRepoErr("failed to count overlapping reservations", err)
	}
	return count, nil
}

// ReservationReadRepository serves reservation detail and listing queries.
type ReservationReadRepository struct {
	pool *pgxpool.Pool
}

func NewReservationReadRepository(pool *pgxpool.Pool) *ReservationReadRepository {
	return &ReservationReadRepository{pool: pool}
}

var _ queries.ReservationReadStore = (*ReservationReadRepository)(nil)

func (r *ReservationReadRepository) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT r.id, r.station_id, s.name, r.user_id, r.car_id, r.booked_at,
		       r.start_time, r.end_time, r.price_cents, r.created_at
		FROM reservations r
		JOIN stations s ON s.id = r.station_id
		WHERE r.id = $1
	`, id)

	var view queries.ReservationView
	err := row.Scan(
		&view.ID, &view.StationID, &view.StationName, &view.UserID, &view.CarID,
		&view.BookedAt, &view.StartTime, &view.EndTime, &view.PriceCents, &view.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation", err)
	}
	return &view, nil
}

func (r *ReservationReadRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*queries.ReservationListItem, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT r.id, r.station_id, s.name, r.start_time, r.end_time, r.price_cents, r.created_at
		FROM reservations r
		JOIN stations s ON s.id = r.station_id
		WHERE r.user_id = $1
		ORDER BY r.start_time DESC
	`, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}
	defer rows.Close()

	var items []*queries.ReservationListItem
	for rows.Next() {
		var item queries.ReservationListItem
		err := rows.Scan(&item.ID, &item.StationID, &item.StationName, &item.StartTime, &item.EndTime, &item.PriceCents, &item.CreatedAt)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation", err)
		}
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate reservations", err)
	}
	return items, nil
}
