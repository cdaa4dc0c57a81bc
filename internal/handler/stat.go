package handler

import (
	"bytes"
	"encoding/csv"
	"strconv"
	"time"

	"github.com/deppfellow/ladder-stats/internal/model"
	"github.com/deppfellow/ladder-stats/internal/server"
	"github.com/deppfellow/ladder-stats/internal/service"
	"github.com/deppfellow/ladder-stats/internal/validation"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const defaultLeaderboardLimit = 10

type ListStatsRequest struct{}

func (r *ListStatsRequest) Validate() error {
	return nil
}

// StatOwnerRequest resolves the account a rollup belongs to by one of its
// user fields.
type StatOwnerRequest struct {
	ID          string `query:"id"`
	Username    string `query:"username"`
	AccountName string `query:"accountName"`
}

func (r *StatOwnerRequest) Validate() error {
	return nil
}

type StatHistoryRequest struct {
	AccountName string `query:"accountName" validate:"required"`
}

func (r *StatHistoryRequest) Validate() error {
	return validation.Struct(r)
}

type LeaderboardRequest struct {
	Limit int `query:"limit"`
}

func (r *LeaderboardRequest) Validate() error {
	return nil
}

type StatHandler struct {
	Handler
	stats  *service.StatService
	ladder *service.LadderService
}

func NewStatHandler(s *server.Server, stats *service.StatService, ladder *service.LadderService) *StatHandler {
	return &StatHandler{
		Handler: NewHandler(s),
		stats:   stats,
		ladder:  ladder,
	}
}

func (h *StatHandler) ListStats(c echo.Context, req *ListStatsRequest) ([]model.Stat, error) {
	return h.stats.GetAllStats(c.Request().Context())
}

func (h *StatHandler) GetOwner(c echo.Context, req *StatOwnerRequest) (model.User, error) {
	return h.stats.GetStatByUniqueKey(c.Request().Context(), filters(map[string]string{
		"id":          req.ID,
		"username":    req.Username,
		"accountName": req.AccountName,
	}))
}

func (h *StatHandler) GetHistory(c echo.Context, req *StatHistoryRequest) ([]model.Stat, error) {
	return h.stats.GetStatsByOwner(c.Request().Context(), req.AccountName)
}

// ExportHistory renders the rollup history of one account as CSV.
func (h *StatHandler) ExportHistory(c echo.Context, req *StatHistoryRequest) ([]byte, error) {
	stats, err := h.stats.GetStatsByOwner(c.Request().Context(), req.AccountName)
	if err != nil {
		return nil, err
	}
	return statsCSV(stats)
}

func (h *StatHandler) Leaderboard(c echo.Context, req *LeaderboardRequest) ([]model.LeaderboardEntry, error) {
	limit := req.Limit
	if limit == 0 {
		limit = defaultLeaderboardLimit
	}
	return h.ladder.Leaderboard(c.Request().Context(), limit)
}

func statsCSV(stats []model.Stat) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	rows := [][]string{{"id", "accountName", "avgRank", "avgCharLevel", "improved", "createdOn"}}
	for _, s := range stats {
		rows = append(rows, []string{
			strconv.Itoa(s.ID),
			s.AccountName,
			strconv.FormatFloat(s.AvgRank, 'f', 2, 64),
			strconv.FormatFloat(s.AvgCharLevel, 'f', 2, 64),
			strconv.FormatBool(s.Improved),
			s.CreatedOn.UTC().Format(time.RFC3339),
		})
	}

	if err := w.WriteAll(rows); err != nil {
		return nil, errors.Wrap(err, "writing stats csv")
	}

	return buf.Bytes(), nil
}
