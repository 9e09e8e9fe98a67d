package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// GeoCache caches doctor-search and weather responses in Redis, keyed by
// rounded coordinates so nearby requests share an entry.
type GeoCache struct {
	client *redis.Client
}

func NewGeoCache(redisURL string) (*GeoCache, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %v", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %v", err)
	}

	return &GeoCache{client: client}, nil
}

// DoctorKey buckets coordinates to ~100 m so adjacent lookups hit.
func DoctorKey(lat, lng float64) string {
	return fmt.Sprintf("doctors:%.3f:%.3f", lat, lng)
}

func WeatherKey(lat, lon float64) string {
	return fmt.Sprintf("weather:%.2f:%.2f", lat, lon)
}

func WeatherCityKey(city string) string {
	return fmt.Sprintf("weather:city:%s", city)
}

// Get unmarshals a cached value into dest. Returns false on a miss.
func (gc *GeoCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	data, err := gc.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read cache: %v", err)
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("failed to unmarshal cached value: %v", err)
	}
	return true, nil
}

func (gc *GeoCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal value: %v", err)
	}

	if err := gc.client.Set(ctx, key, data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache value: %v", err)
	}
	return nil
}
