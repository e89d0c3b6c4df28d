package staging

import (
	"context"
	"encoding/json"
	"time"

	"voltshare-booking/internal/infra"
	"voltshare-booking/internal/usecase/commands"
	"voltshare-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// RedisStore parks booking intents in Redis so they survive the redirect to
// the external payment session. Keys expire on their own if the rider never
// comes back.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

var _ commands.TransientStore = (*RedisStore)(nil)

func (s *RedisStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := s.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return infra.WrapRepoErr("failed to stage value", err)
	}
	return nil
}

func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, error) {
	payload, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, infra.WrapRepoErr("staged value not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to read staged value", err)
	}
	return payload, nil
}

func (s *RedisStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, key).Err(); err != nil {
		return infra.WrapRepoErr("failed to delete staged value", err)
	}
	return nil
}

const cacheTTL = 15 * time.Minute

// RedisCacheRefresher re-primes the per-user and per-station cache entries
// that list views read, dropping the stale entry first so a failed re-prime
// cannot leave old data behind.
type RedisCacheRefresher struct {
	client           *redis.Client
	reservationStore queries.ReservationReadStore
	stationStore     queries.StationReadStore
}

func NewRedisCacheRefresher(
	client *redis.Client,
	reservationStore queries.ReservationReadStore,
	stationStore queries.StationReadStore,
) *RedisCacheRefresher {
	return &RedisCacheRefresher{
		client:           client,
		reservationStore: reservationStore,
		stationStore:     stationStore,
	}
}

var _ commands.CacheRefresher = (*RedisCacheRefresher)(nil)

func (r *RedisCacheRefresher) RefreshUserData(ctx context.Context, userID uuid.UUID) error {
	key := "cache:user:" + userID.String() + ":reservations"
	if err := r.client.Del(ctx, key).Err(); err != nil {
		return infra.WrapRepoErr("failed to drop user cache", err)
	}

	items, err := r.reservationStore.FindByUserID(ctx, userID)
	if err != nil {
		return err
	}
	payload, err := json.Marshal(items)
	if err != nil {
		return infra.WrapRepoErr("failed to encode user cache", err)
	}
	if err := r.client.Set(ctx, key, payload, cacheTTL).Err(); err != nil {
		return infra.WrapRepoErr("failed to prime user cache", err)
	}
	return nil
}

func (r *RedisCacheRefresher) RefreshStationData(ctx context.Context, stationID uuid.UUID) error {
	key := "cache:station:" + stationID.String()
	if err := r.client.Del(ctx, key).Err(); err != nil {
		return infra.WrapRepoErr("failed to drop station cache", err)
	}

	view, err := r.stationStore.FindByID(ctx, stationID)
	if err != nil {
		return err
	}
	payload, err := json.Marshal(view)
	if err != nil {
		return infra.WrapRepoErr("failed to encode station cache", err)
	}
	if err := r.client.Set(ctx, key, payload, cacheTTL).Err(); err != nil {
		return infra.WrapRepoErr("failed to prime station cache", err)
	}
	return nil
}
