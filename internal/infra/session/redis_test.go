//go:build e2e

package session_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"mesa-booking/internal/domain/booking"
	"mesa-booking/internal/domain/reservation"
	"mesa-booking/internal/domain/table"
	"mesa-booking/internal/infra/session"
	"mesa-booking/internal/pkg/errs"

	"github.com/docker/go-connections/nat"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func startRedis(t *testing.T) *redis.Client {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForListeningPort("6379/tcp").WithStartupTimeout(60 * time.Second),
			Labels:       map[string]string{"purpose": "e2e-tests"},
		},
		Started: true,
	})
	require.NoError(t, err, "failed to start redis container")
	t.Cleanup(func() {
		_ = container.Terminate(context.Background())
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, nat.Port("6379/tcp"))
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{Addr: fmt.Sprintf("%s:%s", host, port.Port())})
	t.Cleanup(func() { _ = client.Close() })
	require.NoError(t, client.Ping(ctx).Err())
	return client
}

func TestRedisStore(t *testing.T) {
	client := startRedis(t)
	store := session.NewRedisStore(client, time.Minute)
	ctx := context.Background()

	t.Run("round trips the widget state", func(t *testing.T) {
		resetAt := time.Date(2026, 5, 1, 12, 0, 2, 0, time.UTC)
		state := booking.State{
			Phase: booking.PhaseConfirmed,
			Request: &reservation.Request{
				Date:      "2026-05-02",
				Time:      reservation.NewTimeOfDay(19, 0),
				PartySize: 2,
			},
			Tables: []table.Availability{
				{ID: table.NewTableID("1"), Number: 1, Capacity: 2, Available: true},
				{ID: table.NewTableID("t-9"), Number: 9, Capacity: 6, Available: false},
			},
			Message: &booking.Message{Kind: booking.MessageSuccess, Text: "Reserva creada con éxito"},
			ResetAt: &resetAt,
		}

		require.NoError(t, store.Save(ctx, "s1", state))
		got, err := store.Load(ctx, "s1")

		require.NoError(t, err)
		assert.Equal(t, state.Phase, got.Phase)
		assert.Equal(t, state.Request, got.Request)
		assert.Equal(t, state.Tables, got.Tables)
		assert.Equal(t, state.Message, got.Message)
		require.NotNil(t, got.ResetAt)
		assert.True(t, resetAt.Equal(*got.ResetAt))
	})

	t.Run("ttl is applied", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, "s2", booking.NewState()))

		ttl, err := client.TTL(ctx, session.KeyPrefix+"s2").Result()

		require.NoError(t, err)
		assert.Greater(t, ttl, time.Duration(0))
		assert.LessOrEqual(t, ttl, time.Minute)
	})

	t.Run("missing and deleted sessions are not found", func(t *testing.T) {
		_, err := store.Load(ctx, "nope")
		assert.True(t, errs.Is(err, errs.ErrSessionNotFound))

		require.NoError(t, store.Save(ctx, "s3", booking.NewState()))
		require.NoError(t, store.Delete(ctx, "s3"))
		_, err = store.Load(ctx, "s3")
		assert.True(t, errs.Is(err, errs.ErrSessionNotFound))
	})
}
