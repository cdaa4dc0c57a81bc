package model

import "time"

// Stat is a point-in-time rollup of an account's ladder characters.
// Improved and CreatedOn are assigned by the store.
type Stat struct {
	ID           int       `json:"id"`
	UserID       int       `json:"userId"`
	AccountName  string    `json:"accountName"`
	AvgRank      float64   `json:"avgRank"`
	AvgCharLevel float64   `json:"avgCharLevel"`
	Improved     bool      `json:"improved"`
	CreatedOn    time.Time `json:"createdOn"`
}

// LeaderboardEntry is an account's position on the average-rank board.
type LeaderboardEntry struct {
	AccountName string  `json:"accountName"`
	AvgRank     float64 `json:"avgRank"`
	Position    int64   `json:"position"`
}
