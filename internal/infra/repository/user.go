package repository

import (
	"context"
	"errors"

	"voltshare-booking/internal/infra"
	"voltshare-booking/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

var _ commands.UserRepository = (*UserRepository)(nil)

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*commands.UserSnapshot, error) {
	row := r.pool.QueryRow(ctx, `SELECT id, email FROM users WHERE id = $1`, id)

	var snap commands.UserSnapshot
	if err := row.Scan(&snap.ID, &snap.Email); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user", err)
	}

	rows, err := r.pool.Query(ctx, `
		SELECT id, model, plate
		FROM cars
		WHERE user_id = $1
		ORDER BY created_at
	`, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load user cars", err)
	}
	defer rows.Close()

	for rows.Next() {
		var car commands.CarSnapshot
		if err := rows.Scan(&car.ID, &car.Model, &car.Plate); err != nil {
			return nil, infra.WrapRepoErr("failed to scan car", err)
		}
		snap.Cars = append(snap.Cars, car)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate cars", err)
	}

	return &snap, nil
}
