package session

import (
	"context"
	"fmt"
	"time"

	"mesa-booking/internal/pkg/config"

	"github.com/go-redis/redis/v8"
)

func Connect(cfg config.SessionConfig) (*redis.Client, func(), error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.RedisAddr, err)
	}

	cleanup := func() {
		if err := client.Close(); err != nil {
			fmt.Printf("Error closing redis client: %v\n", err)
		}
	}

	return client, cleanup, nil
}
