// Package leaderboard keeps a live raid damage ranking in a Redis sorted set.
//
// The database stays the source of truth. A missing key is rebuilt from it, and
// RaidAttacked events raise a player's score to the cumulative damage they carry,
// so replayed or reordered events never lower a score.
package leaderboard

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/osse101/RewardEngine_Go/internal/domain"
	"github.com/osse101/RewardEngine_Go/internal/event"
	"github.com/osse101/RewardEngine_Go/internal/logger"
)

// Source loads the authoritative ranking.
type Source interface {
	TopContributors(ctx context.Context, raidID int64, limit int) ([]domain.LeaderboardEntry, error)
}

// RedisRanking implements raid.Ranking on a Redis sorted set.
type RedisRanking struct {
	client redis.UniversalClient
	source Source
	ttl    time.Duration
}

// NewRedisClient connects and pings Redis.
func NewRedisClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	if addr == "" {
		return nil, errors.New(ErrMsgRedisAddrRequired)
	}
	client := redis.NewClient(&redis.Options{
		Addr:            addr,
		Password:        password,
		DB:              db,
		MaxRetries:      DefaultMaxRetries,
		MinRetryBackoff: DefaultMinRetryBackoff,
		MaxRetryBackoff: DefaultMaxRetryBackoff,
		DialTimeout:     DefaultDialTimeout,
		ReadTimeout:     DefaultIOTimeout,
		WriteTimeout:    DefaultIOTimeout,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgPingFailed, err)
	}
	return client, nil
}

// NewRedisRanking creates a ranking. A non-positive ttl uses DefaultTTL.
func NewRedisRanking(client redis.UniversalClient, source Source, ttl time.Duration) *RedisRanking {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RedisRanking{client: client, source: source, ttl: ttl}
}

func key(raidID int64) string {
	return fmt.Sprintf(KeyRaidDamageFormat, raidID)
}

// Top returns the highest-damage contributors, rebuilding the set on a miss.
func (r *RedisRanking) Top(ctx context.Context, raidID int64, limit int) ([]domain.LeaderboardEntry, error) {
	k := key(raidID)
	n, err := r.client.Exists(ctx, k).Result()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgReadFailed, err)
	}
	if n == 0 {
		return r.rebuild(ctx, raidID, limit)
	}

	zs, err := r.client.ZRevRangeWithScores(ctx, k, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgReadFailed, err)
	}
	entries := make([]domain.LeaderboardEntry, 0, len(zs))
	for i, z := range zs {
		member, ok := z.Member.(string)
		if !ok {
			return nil, fmt.Errorf(ErrMsgInvalidMember, z.Member)
		}
		playerID, err := uuid.Parse(member)
		if err != nil {
			return nil, fmt.Errorf(ErrMsgInvalidMember+": %w", z.Member, err)
		}
		entries = append(entries, domain.LeaderboardEntry{Rank: i + 1, PlayerID: playerID, Damage: int64(z.Score)})
	}
	return entries, nil
}

func (r *RedisRanking) rebuild(ctx context.Context, raidID int64, limit int) ([]domain.LeaderboardEntry, error) {
	all, err := r.source.TopContributors(ctx, raidID, RebuildLimit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgRebuildFailed, err)
	}
	if len(all) > 0 {
		members := make([]redis.Z, 0, len(all))
		for _, e := range all {
			members = append(members, redis.Z{Score: float64(e.Damage), Member: e.PlayerID.String()})
		}
		k := key(raidID)
		_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.ZAddArgs(ctx, k, redis.ZAddArgs{GT: true, Members: members})
			pipe.Expire(ctx, k, r.ttl)
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgRebuildFailed, err)
		}
		logger.FromContext(ctx).Debug(LogMsgRankingRebuilt, "raid_id", raidID, "entries", len(all))
	}

	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

// Register keeps the ranking in step with raid events.
func (r *RedisRanking) Register(bus event.Bus) {
	bus.Subscribe(event.RaidAttacked, r.handleAttack)
	bus.Subscribe(event.RaidStarted, r.handleLifecycle)
	bus.Subscribe(event.RaidEnded, r.handleLifecycle)
}

func (r *RedisRanking) handleAttack(ctx context.Context, evt event.Event) error {
	p, err := event.DecodePayload[event.RaidAttackedPayloadV1](evt.Payload)
	if err != nil {
		return err
	}
	if p.TotalDamage <= 0 {
		return nil
	}

	// Only touch a live set; a missing one is rebuilt on the next read.
	k := key(p.RaidID)
	n, err := r.client.Exists(ctx, k).Result()
	if err != nil || n == 0 {
		return r.logFailure(ctx, p.RaidID, err)
	}
	err = r.client.ZAddArgs(ctx, k, redis.ZAddArgs{
		GT:      true,
		Members: []redis.Z{{Score: float64(p.TotalDamage), Member: p.PlayerID.String()}},
	}).Err()
	return r.logFailure(ctx, p.RaidID, err)
}

func (r *RedisRanking) handleLifecycle(ctx context.Context, evt event.Event) error {
	p, err := event.DecodePayload[event.RaidLifecyclePayloadV1](evt.Payload)
	if err != nil {
		return err
	}
	if err := r.client.Del(ctx, key(p.RaidID)).Err(); err != nil {
		return r.logFailure(ctx, p.RaidID, err)
	}
	logger.FromContext(ctx).Debug(LogMsgRankingCleared, "raid_id", p.RaidID, "event", evt.Type)
	return nil
}

// logFailure swallows Redis errors; reads fall back to the database.
func (r *RedisRanking) logFailure(ctx context.Context, raidID int64, err error) error {
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgRankingUpdateFailed, "raid_id", raidID, "error", err)
	}
	return nil
}
