package controllers

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	listingCacheKey = "models:all"
	listingCacheTTL = 10 * time.Minute
)

// deleteListingCache drops the cached catalog payload after a
// successful create so the next GET /models sees the new listing.
func deleteListingCache(redisClient *redis.Client) {
	if redisClient == nil {
		return
	}
	if err := redisClient.Del(context.Background(), listingCacheKey).Err(); err != nil {
		log.Printf("Error invalidating listing cache: %v", err)
	}
}
