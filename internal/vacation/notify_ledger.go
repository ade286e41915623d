package vacation

import (
	"context"

	"github.com/redis/go-redis/v9"
)

const notifiedSetKey = "vacations:notified"

// Ledger records which vacations already had their reminder fired, so a
// reminder goes out at most once per vacation until it is cleared.
type Ledger interface {
	HasNotified(ctx context.Context, vacationID string) (bool, error)
	MarkNotified(ctx context.Context, vacationID string) error
	Clear(ctx context.Context, vacationID string) error
	ClearAll(ctx context.Context) error
}

type redisLedger struct {
	rdb *redis.Client
}

func NewRedisLedger(rdb *redis.Client) Ledger {
	return &redisLedger{rdb: rdb}
}

func (l *redisLedger) HasNotified(ctx context.Context, vacationID string) (bool, error) {
	return l.rdb.SIsMember(ctx, notifiedSetKey, vacationID).Result()
}

func (l *redisLedger) MarkNotified(ctx context.Context, vacationID string) error {
	return l.rdb.SAdd(ctx, notifiedSetKey, vacationID).Err()
}

func (l *redisLedger) Clear(ctx context.Context, vacationID string) error {
	return l.rdb.SRem(ctx, notifiedSetKey, vacationID).Err()
}

func (l *redisLedger) ClearAll(ctx context.Context) error {
	return l.rdb.Del(ctx, notifiedSetKey).Err()
}
