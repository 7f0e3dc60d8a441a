package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"productivity_api/internal/domain/entities"
	"productivity_api/internal/infrastructure/logger"
	"productivity_api/internal/usecase/interfaces"

	goredis "github.com/redis/go-redis/v9"
)

type publishClient interface {
	Publish(ctx context.Context, channel string, message interface{}) *goredis.IntCmd
}

// RedisPublisher fans shopping list events out on a redis pub/sub channel so
// other sessions of the same user can refresh.
type RedisPublisher struct {
	rdb     publishClient
	closer  func() error
	channel string
	log     *logger.Logger
}

var _ interfaces.IShoppingListEventPublisher = (*RedisPublisher)(nil)

// NewRedisPublisher connects and pings redis before returning.
func NewRedisPublisher(ctx context.Context, addr, channel string, log *logger.Logger) (*RedisPublisher, error) {
	if addr == "" {
		return nil, fmt.Errorf("missing redis address")
	}
	if log == nil {
		log = logger.NewNop()
	}

	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		DialTimeout: 5 * time.Second,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &RedisPublisher{
		rdb:     rdb,
		closer:  rdb.Close,
		channel: channel,
		log:     log.With("service", "RedisPublisher", "channel", channel),
	}, nil
}

func (p *RedisPublisher) Publish(ctx context.Context, event entities.ShoppingListEvent) error {
	raw, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	receivers, err := p.rdb.Publish(ctx, p.channel, raw).Result()
	if err != nil {
		return fmt.Errorf("redis publish: %w", err)
	}
	p.log.Debug("event published", "type", event.Type, "list_id", event.ListID, "receivers", receivers)
	return nil
}

func (p *RedisPublisher) Close() error {
	if p.closer == nil {
		return nil
	}
	return p.closer()
}
