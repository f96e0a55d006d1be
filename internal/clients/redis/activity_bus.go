package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/shoplist-app/shoplist-backend/internal/pkg/logger"
	"github.com/shoplist-app/shoplist-backend/internal/services"
)

// ActivityBus publishes list activity events to a Redis channel so other
// instances (or a live feed) can react to mutations they did not serve.
type ActivityBus struct {
	log     *logger.Logger
	rdb     *goredis.Client
	channel string
}

var _ services.ActivityPublisher = (*ActivityBus)(nil)

func NewActivityBus(log *logger.Logger, addr, channel string) (*ActivityBus, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}
	addr = strings.TrimSpace(addr)
	if addr == "" {
		return nil, fmt.Errorf("missing redis address")
	}
	channel = strings.TrimSpace(channel)
	if channel == "" {
		channel = "shoplist.activity"
	}

	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		DialTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &ActivityBus{
		log:     log.With("service", "RedisActivityBus"),
		rdb:     rdb,
		channel: channel,
	}, nil
}

func (b *ActivityBus) Publish(ctx context.Context, event services.ActivityEvent) error {
	if b == nil || b.rdb == nil {
		return fmt.Errorf("activity bus not initialized")
	}
	raw, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return b.rdb.Publish(ctx, b.channel, raw).Err()
}

// Subscribe forwards published events to onEvent until ctx is cancelled.
func (b *ActivityBus) Subscribe(ctx context.Context, onEvent func(services.ActivityEvent)) error {
	if b == nil || b.rdb == nil {
		return fmt.Errorf("activity bus not initialized")
	}
	if onEvent == nil {
		return fmt.Errorf("onEvent callback required")
	}

	sub := b.rdb.Subscribe(ctx, b.channel)
	if _, err := sub.Receive(ctx); err != nil {
		_ = sub.Close()
		return fmt.Errorf("redis subscribe: %w", err)
	}

	go func() {
		ch := sub.Channel()
		for {
			select {
			case <-ctx.Done():
				_ = sub.Close()
				return
			case m, ok := <-ch:
				if !ok {
					return
				}
				var event services.ActivityEvent
				if err := json.Unmarshal([]byte(m.Payload), &event); err != nil {
					b.log.Warn("Dropping malformed activity payload", "error", err)
					continue
				}
				onEvent(event)
			}
		}
	}()
	return nil
}

func (b *ActivityBus) Close() error {
	if b == nil || b.rdb == nil {
		return nil
	}
	return b.rdb.Close()
}
