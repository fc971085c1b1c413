package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/LavaJover/shvark-campaign-service/internal/domain"
	"github.com/redis/go-redis/v9"
)

const rankingKeyPrefix = "campaign:rankings:"

type RedisRankingCache struct {
	client redis.Cmdable
}

func NewRedisRankingCache(client redis.Cmdable) *RedisRankingCache {
	return &RedisRankingCache{client: client}
}

func rankingKey(brandID string) string {
	return rankingKeyPrefix + brandID
}

func (c *RedisRankingCache) GetRankings(ctx context.Context, brandID string) ([]domain.InfluencerRanking, bool, error) {
	raw, err := c.client.Get(ctx, rankingKey(brandID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get rankings: %w", err)
	}

	var rankings []domain.InfluencerRanking
	if err := json.Unmarshal(raw, &rankings); err != nil {
		return nil, false, fmt.Errorf("decode cached rankings: %w", err)
	}
	return rankings, true, nil
}

func (c *RedisRankingCache) SetRankings(ctx context.Context, brandID string, rankings []domain.InfluencerRanking, ttl time.Duration) error {
	raw, err := json.Marshal(rankings)
	if err != nil {
		return fmt.Errorf("encode rankings: %w", err)
	}
	if err := c.client.Set(ctx, rankingKey(brandID), raw, ttl).Err(); err != nil {
		return fmt.Errorf("redis set rankings: %w", err)
	}
	return nil
}

// Invalidate drops the cached ranking of a brand after revenue moved.
func (c *RedisRankingCache) Invalidate(ctx context.Context, brandID string) error {
	return c.client.Del(ctx, rankingKey(brandID)).Err()
}
