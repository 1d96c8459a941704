package redisstore

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/alacase/backend/internal/domain/status"
)

var _ status.Store = (*Store)(nil)

// Documents live as hashes under status_checks:<id>; insertion order is kept
// in the status_checks:index list. Timestamps are stored as RFC 3339 text
// (the collection carries no temporal type).
const (
	collection = "status_checks"
	indexKey   = collection + ":index"
)

func docKey(id string) string { return collection + ":" + id }

type Config struct {
	Addr         string
	Password     string
	DB           int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	OpTimeout    time.Duration
}

type Store struct {
	client    *redis.Client
	opTimeout time.Duration
}

func New(ctx context.Context, cfg Config) (*Store, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	})

	hctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(hctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return &Store{client: client, opTimeout: cfg.OpTimeout}, nil
}

func (s *Store) Close() error { return s.client.Close() }

func (s *Store) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.opTimeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, s.opTimeout)
}

func (s *Store) Put(ctx context.Context, c *status.Check) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	pipe := s.client.TxPipeline()
	pipe.HSet(ctx, docKey(c.ID),
		"id", c.ID,
		"client_name", c.ClientName,
		"timestamp", c.Timestamp.Format(status.TimeLayout),
	)
	pipe.RPush(ctx, indexKey, c.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return &status.OpError{Op: "put", Err: err}
	}
	return nil
}

func (s *Store) List(ctx context.Context, limit int) ([]*status.Check, int, error) {
	if limit <= 0 {
		limit = 1000
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	ids, err := s.client.LRange(ctx, indexKey, 0, int64(limit)-1).Result()
	if err != nil {
		return nil, 0, &status.OpError{Op: "list", Err: err}
	}
	if len(ids) == 0 {
		return []*status.Check{}, 0, nil
	}

	pipe := s.client.Pipeline()
	cmds := make([]*redis.MapStringStringCmd, len(ids))
	for i, id := range ids {
		cmds[i] = pipe.HGetAll(ctx, docKey(id))
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, 0, &status.OpError{Op: "list", Err: err}
	}

	out := make([]*status.Check, 0, len(ids))
	skipped := 0
	for _, cmd := range cmds {
		c, err := decode(cmd.Val())
		if err != nil {
			skipped++
			continue
		}
		out = append(out, c)
	}
	return out, skipped, nil
}

func decode(doc map[string]string) (*status.Check, error) {
	if len(doc) == 0 {
		return nil, fmt.Errorf("document missing")
	}
	ts, err := time.Parse(status.TimeLayout, doc["timestamp"])
	if err != nil {
		return nil, fmt.Errorf("parse timestamp: %w", err)
	}
	return &status.Check{
		ID:         doc["id"],
		ClientName: doc["client_name"],
		Timestamp:  ts,
	}, nil
}

func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}
