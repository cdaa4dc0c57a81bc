package service

import (
	"context"
	"fmt"

	"github.com/deppfellow/ladder-stats/internal/errs"
	"github.com/deppfellow/ladder-stats/internal/lib/job"
	"github.com/deppfellow/ladder-stats/internal/model"
	"github.com/deppfellow/ladder-stats/internal/validation"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
)

const maxLeaderboardSize = 100

// LadderFetcher reads the public ladder for one account in one league.
type LadderFetcher interface {
	FetchEntries(ctx context.Context, leagueName, accountName string) ([]model.LadderEntry, error)
}

// RankBoard keeps the latest average rank per account, best first.
type RankBoard interface {
	Record(ctx context.Context, accountName string, avgRank float64) error
	Top(ctx context.Context, limit int) ([]model.LeaderboardEntry, error)
}

// TaskEnqueuer is satisfied by *asynq.Client.
type TaskEnqueuer interface {
	Enqueue(task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// IngestResult is what one ladder ingest produced.
type IngestResult struct {
	Entries       int             `json:"entries"`
	LastCharacter model.Character `json:"lastCharacter"`
	Stat          model.Stat      `json:"stat"`
}

// LadderService pulls ladder snapshots and feeds them through character
// persistence and stat aggregation.
type LadderService struct {
	chars   *CharacterService
	stats   *StatService
	fetcher LadderFetcher
	board   RankBoard
	jobs    TaskEnqueuer
}

func NewLadderService(chars *CharacterService, stats *StatService, fetcher LadderFetcher, board RankBoard, jobs TaskEnqueuer) *LadderService {
	return &LadderService{
		chars:   chars,
		stats:   stats,
		fetcher: fetcher,
		board:   board,
		jobs:    jobs,
	}
}

// Ingest fetches the ladder of accountName in leagueName, stores one
// character per entry and appends a stat rollup over the same entries.
func (s *LadderService) Ingest(ctx context.Context, accountName, leagueName string) (IngestResult, error) {
	logger := zerolog.Ctx(ctx).With().
		Str("account_name", accountName).
		Str("league_name", leagueName).
		Logger()

	if !validation.IsValidStrings(accountName, leagueName) {
		return IngestResult{}, errs.NewBadRequestError("Account name and league name are required.", true, nil, nil, nil)
	}

	entries, err := s.fetcher.FetchEntries(ctx, leagueName, accountName)
	if err != nil {
		return IngestResult{}, err
	}

	if len(entries) == 0 {
		return IngestResult{}, errs.NewNotFoundError("No ladder entries found for provided account.", true, nil)
	}

	last, err := s.chars.AddNewChar(ctx, entries, accountName, leagueName)
	if err != nil {
		return IngestResult{}, err
	}

	stat, err := s.stats.AddStats(ctx, entries, accountName)
	if err != nil {
		return IngestResult{}, err
	}

	// The rollup is already persisted; a stale leaderboard is recoverable.
	if err := s.board.Record(ctx, accountName, stat.AvgRank); err != nil {
		logger.Warn().Err(err).Msg("failed to update leaderboard")
	}

	logger.Info().Int("entries", len(entries)).Msg("ladder ingest completed")

	return IngestResult{
		Entries:       len(entries),
		LastCharacter: last,
		Stat:          stat,
	}, nil
}

// ScheduleIngest queues an Ingest to run on the job server and returns
// the task id.
func (s *LadderService) ScheduleIngest(ctx context.Context, accountName, leagueName string) (string, error) {
	if !validation.IsValidStrings(accountName, leagueName) {
		return "", errs.NewBadRequestError("Account name and league name are required.", true, nil, nil, nil)
	}

	task, err := job.NewLadderIngestTask(accountName, leagueName)
	if err != nil {
		return "", fmt.Errorf("building ladder ingest task: %w", err)
	}

	info, err := s.jobs.Enqueue(task)
	if err != nil {
		return "", fmt.Errorf("enqueueing ladder ingest task: %w", err)
	}

	zerolog.Ctx(ctx).Info().
		Str("task_id", info.ID).
		Str("account_name", accountName).
		Msg("scheduled ladder ingest")

	return info.ID, nil
}

// Leaderboard returns the best limit accounts by latest average rank.
func (s *LadderService) Leaderboard(ctx context.Context, limit int) ([]model.LeaderboardEntry, error) {
	if limit < 1 || limit > maxLeaderboardSize {
		return nil, errs.NewBadRequestError(
			fmt.Sprintf("Limit must be between 1 and %d.", maxLeaderboardSize), true, nil, nil, nil)
	}

	entries, err := s.board.Top(ctx, limit)
	if err != nil {
		return nil, err
	}

	if len(entries) == 0 {
		return nil, errs.NewNotFoundError("Leaderboard is empty.", true, nil)
	}

	return entries, nil
}
