// README: Redis read-through cache around any toll lookup.
package tollguru

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"tollwise/internal/logging"
	"tollwise/internal/modules/estimate"
)

const cacheKeyPrefix = "tollguru:leg:"

// Cache decorates a TollLookup with a Redis read-through cache. Toll rates
// change rarely, so identical legs within the TTL reuse the first answer.
// Cache failures degrade to a direct lookup; they never fail the request.
type Cache struct {
	next  estimate.TollLookup
	redis *redis.Client
	ttl   time.Duration
}

func NewCache(next estimate.TollLookup, client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{next: next, redis: client, ttl: ttl}
}

func (c *Cache) Lookup(ctx context.Context, req estimate.LookupRequest) (estimate.LegTollCost, error) {
	key := cacheKey(req)

	if data, err := c.redis.Get(ctx, key).Bytes(); err == nil {
		var cost estimate.LegTollCost
		if jsonErr := json.Unmarshal(data, &cost); jsonErr == nil {
			return cost, nil
		}
	} else if err != redis.Nil {
		logging.Logger.Warn("toll cache read failed", zap.Error(err))
	}

	cost, err := c.next.Lookup(ctx, req)
	if err != nil {
		return estimate.LegTollCost{}, err
	}

	if data, err := json.Marshal(cost); err == nil {
		if err := c.redis.Set(ctx, key, data, c.ttl).Err(); err != nil {
			logging.Logger.Warn("toll cache write failed", zap.Error(err))
		}
	}
	return cost, nil
}

// cacheKey fingerprints a lookup at calendar-day granularity so every leg of
// the same corridor on the same day shares an entry.
func cacheKey(req estimate.LookupRequest) string {
	parts := []string{
		strings.ToLower(req.Origin),
		strings.ToLower(req.Destination),
		strings.ToLower(strings.Join(req.Waypoints, ";")),
		req.VehicleType,
		req.DepartureTime.UTC().Format("2006-01-02"),
		req.Currency,
	}
	sum := sha256.Sum256([]byte(strings.Join(parts, "|")))
	return fmt.Sprintf("%s%s", cacheKeyPrefix, hex.EncodeToString(sum[:16]))
}
