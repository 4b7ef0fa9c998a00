// README: Redis-backed single-flight guard (one generation run per user).
package planner

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const guardKeyPrefix = "planner:inflight:%s"

// guardTTL bounds lock leakage if the process dies mid-run; a generation
// call is itself bounded well under this.
const guardTTL = 2 * time.Minute

// Guard enforces that at most one generation run is in flight per user.
// The UI disables its submit control too, but the server-side guard holds
// across tabs and retried requests.
type Guard struct {
	redis *redis.Client
}

func NewGuard(redis *redis.Client) *Guard {
	return &Guard{redis: redis}
}

// Acquire returns false when a run is already in flight for uid.
func (g *Guard) Acquire(ctx context.Context, uid string) (bool, error) {
	return g.redis.SetNX(ctx, fmt.Sprintf(guardKeyPrefix, uid), 1, guardTTL).Result()
}

// Release frees the slot. Best effort: the TTL cleans up after a lost call.
func (g *Guard) Release(ctx context.Context, uid string) {
	_ = g.redis.Del(ctx, fmt.Sprintf(guardKeyPrefix, uid)).Err()
}
