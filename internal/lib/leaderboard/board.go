// Package leaderboard ranks accounts by their latest average ladder rank
// in a Redis sorted set. A lower average rank is a better position.
package leaderboard

import (
	"context"
	"fmt"

	"github.com/deppfellow/ladder-stats/internal/model"
	"github.com/redis/go-redis/v9"
)

const key = "leaderboard:avg_rank"

// Commander is the subset of *redis.Client the board needs.
type Commander interface {
	ZAdd(ctx context.Context, key string, members ...redis.Z) *redis.IntCmd
	ZRangeWithScores(ctx context.Context, key string, start, stop int64) *redis.ZSliceCmd
}

type Board struct {
	rdb Commander
}

func New(rdb Commander) *Board {
	return &Board{rdb: rdb}
}

// Record replaces the score of accountName.
func (b *Board) Record(ctx context.Context, accountName string, avgRank float64) error {
	if err := b.rdb.ZAdd(ctx, key, redis.Z{Score: avgRank, Member: accountName}).Err(); err != nil {
		return fmt.Errorf("failed to update leaderboard: %w", err)
	}
	return nil
}

// Top returns up to limit accounts, best first, with 1-based positions.
func (b *Board) Top(ctx context.Context, limit int) ([]model.LeaderboardEntry, error) {
	members, err := b.rdb.ZRangeWithScores(ctx, key, 0, int64(limit)-1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read leaderboard: %w", err)
	}

	entries := make([]model.LeaderboardEntry, 0, len(members))
	for i, m := range members {
		entries = append(entries, model.LeaderboardEntry{
			AccountName: fmt.Sprint(m.Member),
			AvgRank:     m.Score,
			Position:    int64(i) + 1,
		})
	}
	return entries, nil
}
