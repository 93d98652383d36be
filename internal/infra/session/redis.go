package session

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"mesa-booking/internal/domain/booking"
	"mesa-booking/internal/pkg/errs"

	"github.com/go-redis/redis/v8"
)

const KeyPrefix = "bookingSession:"

// RedisStore shares widget state between instances. Every save refreshes the TTL.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func (r *RedisStore) Load(ctx context.Context, id string) (booking.State, error) {
	data, err := r.client.Get(ctx, KeyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return booking.State{}, errs.Mark(errs.New("session "+id+" not found"), errs.ErrSessionNotFound)
	}
	if err != nil {
		return booking.State{}, errs.Mark(errs.Wrap(err, "failed to load session"), errs.ErrSessionStore)
	}

	var state booking.State
	if err := json.Unmarshal(data, &state); err != nil {
		return booking.State{}, errs.Mark(errs.Wrap(err, "failed to unmarshal session"), errs.ErrSessionStore)
	}
	return state, nil
}

func (r *RedisStore) Save(ctx context.Context, id string, state booking.State) error {
	data, err := json.Marshal(state)
	if err != nil {
		return errs.Mark(errs.Wrap(err, "failed to marshal session"), errs.ErrSessionStore)
	}
	if err := r.client.Set(ctx, KeyPrefix+id, data, r.ttl).Err(); err != nil {
		return errs.Mark(errs.Wrap(err, "failed to save session"), errs.ErrSessionStore)
	}
	return nil
}

func (r *RedisStore) Delete(ctx context.Context, id string) error {
	if err := r.client.Del(ctx, KeyPrefix+id).Err(); err != nil {
		return errs.Mark(errs.Wrap(err, "failed to delete session"), errs.ErrSessionStore)
	}
	return nil
}
