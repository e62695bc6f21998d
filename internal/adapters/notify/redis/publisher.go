package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"pet-health/internal/domain/store"
)

const DefaultChannel = "pet_health.changes"

// Client es la parte de *goredis.Client que usa Publisher.
type Client interface {
	Publish(ctx context.Context, channel string, message any) *goredis.IntCmd
	Close() error
}

// Publisher publica cada cambio como JSON en un canal pub/sub.
type Publisher struct {
	rdb     Client
	channel string
}

// Dial conecta a addr y verifica con PING.
func Dial(ctx context.Context, addr, channel string) (*Publisher, error) {
	addr = strings.TrimSpace(addr)
	if addr == "" {
		return nil, errors.New("redis addr required")
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
	return New(rdb, channel), nil
}

func New(rdb Client, channel string) *Publisher {
	channel = strings.TrimSpace(channel)
	if channel == "" {
		channel = DefaultChannel
	}
	return &Publisher{rdb: rdb, channel: channel}
}

func (p *Publisher) Name() string { return "redis" }

func (p *Publisher) Channel() string { return p.channel }

func (p *Publisher) Send(ctx context.Context, c store.Change) error {
	raw, err := json.Marshal(c)
	if err != nil {
		return err
	}
	return p.rdb.Publish(ctx, p.channel, raw).Err()
}

func (p *Publisher) Close() error { return p.rdb.Close() }
