// api/util/cache_service.go

package util

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	logger "github.com/dev-mohitbeniwal/hazard/api/logging"
	"github.com/dev-mohitbeniwal/hazard/api/model"
)

// CacheService keeps rule records in Redis. A nil client turns every call into
// a miss so the services work without Redis.
type CacheService struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCacheService(client *redis.Client, ttl time.Duration) *CacheService {
	return &CacheService{client: client, ttl: ttl}
}

func ruleKey(ruleID string) string {
	return fmt.Sprintf("rule:%s", ruleID)
}

// GetRule returns nil, nil on a cache miss
func (c *CacheService) GetRule(ctx context.Context, ruleID string) (*model.Rule, error) {
	if c == nil || c.client == nil {
		return nil, nil
	}

	data, err := c.client.Get(ctx, ruleKey(ruleID)).Bytes()
	if errors.Is(err, redis.Nil) {
		logger.Debug("Rule not found in cache", zap.String("ruleID", ruleID))
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get rule from cache: %w", err)
	}

	var rule model.Rule
	if err := json.Unmarshal(data, &rule); err != nil {
		return nil, fmt.Errorf("failed to unmarshal rule: %w", err)
	}

	logger.Debug("Rule retrieved from cache", zap.String("ruleID", ruleID))
	return &rule, nil
}

func (c *CacheService) SetRule(ctx context.Context, rule model.Rule) error {
	if c == nil || c.client == nil {
		return nil
	}

	data, err := json.Marshal(rule)
	if err != nil {
		return fmt.Errorf("failed to marshal rule: %w", err)
	}
	if err := c.client.Set(ctx, ruleKey(rule.ID), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache rule: %w", err)
	}

	logger.Debug("Rule cached successfully", zap.String("ruleID", rule.ID))
	return nil
}

func (c *CacheService) DeleteRule(ctx context.Context, ruleID string) error {
	if c == nil || c.client == nil {
		return nil
	}

	if err := c.client.Del(ctx, ruleKey(ruleID)).Err(); err != nil {
		return fmt.Errorf("failed to delete rule from cache: %w", err)
	}
	logger.Debug("Rule deleted from cache", zap.String("ruleID", ruleID))
	return nil
}
