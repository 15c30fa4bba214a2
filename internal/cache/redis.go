package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"procurehub/internal/recommend"
)

// Redis backs the suggestion cache with a shared redis instance so multiple
// service replicas see the same eviction after an apply.
type Redis struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedis(opt *redis.Options, ttl time.Duration) *Redis {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &Redis{Client: redis.NewClient(opt), TTL: ttl}
}

func (r *Redis) Get(ctx context.Context, tenantID string, productID uint64) (*recommend.SuggestionSet, bool, error) {
	b, err := r.Client.Get(ctx, key(tenantID, productID)).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var set recommend.SuggestionSet
	if err := json.Unmarshal(b, &set); err != nil {
		// A corrupt entry is treated as a miss; the next Set overwrites it.
		return nil, false, nil
	}
	return &set, true, nil
}

func (r *Redis) Set(ctx context.Context, tenantID string, productID uint64, set *recommend.SuggestionSet) error {
	b, err := json.Marshal(set)
	if err != nil {
		return err
	}
	return r.Client.Set(ctx, key(tenantID, productID), b, r.TTL).Err()
}

func (r *Redis) Delete(ctx context.Context, tenantID string, productID uint64) error {
	return r.Client.Del(ctx, key(tenantID, productID)).Err()
}
