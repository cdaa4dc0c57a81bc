package service

import (
	"context"
	"strconv"

	"github.com/deppfellow/ladder-stats/internal/errs"
	"github.com/deppfellow/ladder-stats/internal/model"
	"github.com/deppfellow/ladder-stats/internal/validation"
	"github.com/rs/zerolog"
)

// StatService reduces ladder batches into persisted rollups and serves
// the rollup history.
type StatService struct {
	store StatStore
}

func NewStatService(store StatStore) *StatService {
	return &StatService{store: store}
}

func (s *StatService) GetAllStats(ctx context.Context) ([]model.Stat, error) {
	stats, err := s.store.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	if len(stats) == 0 {
		return nil, errs.NewNotFoundError("Table is empty.", true, nil)
	}

	return stats, nil
}

// GetStatByUniqueKey resolves the owner a rollup would belong to. The
// query is checked against User fields, not Stat fields.
func (s *StatService) GetStatByUniqueKey(ctx context.Context, query model.Query) (model.User, error) {
	key, value, err := singleKey(query, model.User{})
	if err != nil {
		return model.User{}, err
	}

	if key == "id" {
		id, ok := validation.ParseID(value)
		if !ok {
			return model.User{}, invalidIDError()
		}
		value = strconv.Itoa(id)
	} else if !validation.IsValidStrings(value) {
		return model.User{}, invalidValueError(key)
	}

	owner, found, err := s.store.GetOwnerByUniqueKey(ctx, key, value)
	if err != nil {
		return model.User{}, err
	}

	if !found {
		return model.User{}, errs.NewNotFoundError("No account found with provided "+key+".", true, nil)
	}

	return model.RemovePassword(owner), nil
}

// GetStatsByOwner returns the rollup history of one account, oldest first.
func (s *StatService) GetStatsByOwner(ctx context.Context, accountName string) ([]model.Stat, error) {
	owner, err := s.GetStatByUniqueKey(ctx, model.Query{"accountName": accountName})
	if err != nil {
		return nil, err
	}

	stats, err := s.store.GetByID(ctx, owner.ID)
	if err != nil {
		return nil, err
	}

	if len(stats) == 0 {
		return nil, errs.NewNotFoundError("No stats recorded for provided account.", true, nil)
	}

	return stats, nil
}

// AddStats averages rank and character level over entries and appends
// the rollup for accountName. An empty batch is rejected before any store
// call.
func (s *StatService) AddStats(ctx context.Context, entries []model.LadderEntry, accountName string) (model.Stat, error) {
	if len(entries) == 0 {
		return model.Stat{}, errs.NewBadRequestError("At least one ladder entry is required to compute stats.", true, nil, nil, nil)
	}

	owner, err := s.GetStatByUniqueKey(ctx, model.Query{"accountName": accountName})
	if err != nil {
		return model.Stat{}, err
	}

	avgRank, avgCharLevel := averages(entries)

	stat, err := s.store.Save(ctx, owner, avgRank, avgCharLevel)
	if err != nil {
		return model.Stat{}, err
	}

	zerolog.Ctx(ctx).Info().
		Str("account_name", accountName).
		Float64("avg_rank", avgRank).
		Float64("avg_char_level", avgCharLevel).
		Msg("persisted stat rollup")

	return stat, nil
}

// averages must only be called with a non-empty batch.
func averages(entries []model.LadderEntry) (avgRank, avgCharLevel float64) {
	var rankSum, levelSum float64
	count := 0
	for _, entry := range entries {
		count++
		rankSum += float64(entry.Rank)
		levelSum += float64(entry.Character.Level)
	}
	return rankSum / float64(count), levelSum / float64(count)
}
