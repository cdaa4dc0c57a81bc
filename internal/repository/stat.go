package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/deppfellow/ladder-stats/internal/model"
	"github.com/jackc/pgx/v5"
)

const statBaseQuery = `
	SELECT s.stat_id, s.user_id, u.account_name, s.avg_rank, s.avg_char_level, s.improved, s.created_on
	FROM stats s
	JOIN app_users u ON s.user_id = u.user_id`

type statRow struct {
	StatID       int       `db:"stat_id"`
	UserID       int       `db:"user_id"`
	AccountName  string    `db:"account_name"`
	AvgRank      float64   `db:"avg_rank"`
	AvgCharLevel float64   `db:"avg_char_level"`
	Improved     bool      `db:"improved"`
	CreatedOn    time.Time `db:"created_on"`
}

func scanStat(row pgx.CollectableRow) (model.Stat, error) {
	r, err := pgx.RowToStructByName[statRow](row)
	if err != nil {
		return model.Stat{}, err
	}
	return model.Stat{
		ID:           r.StatID,
		UserID:       r.UserID,
		AccountName:  r.AccountName,
		AvgRank:      r.AvgRank,
		AvgCharLevel: r.AvgCharLevel,
		Improved:     r.Improved,
		CreatedOn:    r.CreatedOn,
	}, nil
}

type StatRepository struct {
	db DBTX
}

func NewStatRepository(db DBTX) *StatRepository {
	return &StatRepository{db: db}
}

func (r *StatRepository) GetAll(ctx context.Context) ([]model.Stat, error) {
	return r.list(ctx, statBaseQuery+` ORDER BY s.created_on, s.stat_id`)
}

func (r *StatRepository) GetByID(ctx context.Context, ownerID int) ([]model.Stat, error) {
	return r.list(ctx, statBaseQuery+` WHERE s.user_id = $1 ORDER BY s.created_on, s.stat_id`, ownerID)
}

func (r *StatRepository) GetOwnerByUniqueKey(ctx context.Context, field, value string) (model.User, bool, error) {
	return findUser(ctx, r.db, field, value)
}

// Save appends a rollup for owner. The rollup counts as improved when its
// average rank is lower than the owner's previous one.
func (r *StatRepository) Save(ctx context.Context, owner model.User, avgRank, avgCharLevel float64) (model.Stat, error) {
	stat := model.Stat{
		UserID:       owner.ID,
		AccountName:  owner.AccountName,
		AvgRank:      avgRank,
		AvgCharLevel: avgCharLevel,
	}

	err := r.db.QueryRow(ctx, `
		INSERT INTO stats (user_id, avg_rank, avg_char_level, improved)
		VALUES ($1, $2::double precision, $3, COALESCE((
			SELECT $2::double precision < p.avg_rank
			FROM stats p
			WHERE p.user_id = $1
			ORDER BY p.created_on DESC, p.stat_id DESC
			LIMIT 1
		), FALSE))
		RETURNING stat_id, improved, created_on`,
		owner.ID, avgRank, avgCharLevel,
	).Scan(&stat.ID, &stat.Improved, &stat.CreatedOn)
	if err != nil {
		return model.Stat{}, fmt.Errorf("inserting stat: %w", err)
	}
	return stat, nil
}

func (r *StatRepository) list(ctx context.Context, query string, args ...any) ([]model.Stat, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying stats: %w", err)
	}

	stats, err := pgx.CollectRows(rows, scanStat)
	if err != nil {
		return nil, fmt.Errorf("scanning stats: %w", err)
	}
	return stats, nil
}
