package config

import (
	"context"
	"fmt"
	"log"

	"github.com/redis/go-redis/v9"
)

// InitRedis connects to the optional listing cache. Callers skip it
// entirely when no address is configured.
func InitRedis(addr, password string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	if _, err := client.Ping(context.Background()).Result(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %v", err)
	}
	log.Println("Connected to Redis")
	return client, nil
}
