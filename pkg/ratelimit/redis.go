package ratelimit

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

var _ Limiter = &Redis{}

// Redis counts admissions in fixed windows shared across instances.
// A failing Redis admits the request: the limiter is an abuse gate, not a
// correctness gate.
type Redis struct {
	client *redis.Client
	policy Policy

	prefix string
}

func NewRedis(client *redis.Client, policy Policy) *Redis {
	return &Redis{
		client: client,
		policy: policy,

		prefix: "ratelimit:",
	}
}

func (r *Redis) Allow(ctx context.Context, identifier string, now time.Time) bool {
	bucket := now.Unix() / int64(r.policy.Window/time.Second)
	key := r.prefix + identifier + ":" + strconv.FormatInt(bucket, 10)

	pipe := r.client.TxPipeline()

	count := pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, r.policy.Window)

	if _, err := pipe.Exec(ctx); err != nil {
		slog.WarnContext(ctx, "rate limit store unavailable, admitting request", "error", err)
		return true
	}

	return count.Val() <= int64(r.policy.Requests)
}
