// Package redis keeps renewal credentials in Redis. It only implements
// store.RenewalTokens; compose it over a SQL store with store.WithRenewalTokens.
package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/aussiebroadwan/notekeeper/internal/notes/domain"
	"github.com/aussiebroadwan/notekeeper/pkg/cryptox"
	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix    = "renewal:"
	fieldCount   = "n"
	fieldCreated = "created_at"
)

// RenewalTokens stores each credential as a hash at renewal:<token>. The "n"
// field counts how many times it was persisted, so revoke can report the
// number of records it removed.
type RenewalTokens struct {
	client *redis.Client
}

// New wraps an existing client.
func New(client *redis.Client) *RenewalTokens {
	return &RenewalTokens{client: client}
}

// Open connects using a redis:// URL and checks the server answers.
func Open(ctx context.Context, url string) (*RenewalTokens, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	rt := New(redis.NewClient(opts))
	if err := rt.Ping(ctx); err != nil {
		_ = rt.Close()
		return nil, err
	}
	return rt, nil
}

func key(token string) string { return keyPrefix + token }

func (r *RenewalTokens) Ping(ctx context.Context) error { return r.client.Ping(ctx).Err() }

func (r *RenewalTokens) Close() error { return r.client.Close() }

func (r *RenewalTokens) PersistRenewalToken(ctx context.Context, token string) (string, error) {
	var incr *redis.IntCmd
	_, err := r.client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		incr = p.HIncrBy(ctx, key(token), fieldCount, 1)
		p.HSetNX(ctx, key(token), fieldCreated, time.Now().UTC().Format(time.RFC3339Nano))
		return nil
	})
	if err != nil {
		return "", err
	}

	return cryptox.FingerprintToken(token) + "#" + strconv.FormatInt(incr.Val(), 10), nil
}

func (r *RenewalTokens) RenewalTokenExists(ctx context.Context, token string) (bool, error) {
	n, err := r.client.Exists(ctx, key(token)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *RenewalTokens) RevokeRenewalToken(ctx context.Context, token string) (int64, error) {
	var count *redis.StringCmd
	_, err := r.client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		count = p.HGet(ctx, key(token), fieldCount)
		p.Del(ctx, key(token))
		return nil
	})
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	return count.Int64()
}

// ListRenewalTokens walks the keyspace with SCAN. The cursor is the SCAN
// cursor; a page may hold more or fewer than limit entries.
func (r *RenewalTokens) ListRenewalTokens(
	ctx context.Context,
	cursor string,
	limit int,
) ([]domain.RenewalToken, string, error) {
	if limit <= 0 {
		limit = 100
	}

	var from uint64
	if cursor != "" {
		var err error
		from, err = strconv.ParseUint(cursor, 10, 64)
		if err != nil {
			return nil, "", fmt.Errorf("invalid cursor %q: %w", cursor, err)
		}
	}

	keys, next, err := r.client.Scan(ctx, from, keyPrefix+"*", int64(limit)).Result()
	if err != nil {
		return nil, "", err
	}

	created := make([]*redis.StringCmd, len(keys))
	if len(keys) > 0 {
		_, err = r.client.Pipelined(ctx, func(p redis.Pipeliner) error {
			for i, k := range keys {
				created[i] = p.HGet(ctx, k, fieldCreated)
			}
			return nil
		})
		if err != nil && !errors.Is(err, redis.Nil) {
			return nil, "", err
		}
	}

	page := make([]domain.RenewalToken, 0, len(keys))
	for i, k := range keys {
		token := strings.TrimPrefix(k, keyPrefix)
		rec := domain.RenewalToken{
			ID:    cryptox.FingerprintToken(token),
			Token: token,
		}
		if ts, err := time.Parse(time.RFC3339Nano, created[i].Val()); err == nil {
			rec.CreatedAt = ts
		}
		page = append(page, rec)
	}

	nextCursor := ""
	if next != 0 {
		nextCursor = strconv.FormatUint(next, 10)
	}
	return page, nextCursor, nil
}
