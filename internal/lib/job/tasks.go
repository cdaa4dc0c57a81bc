package job

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
)

const (
	TaskLadderIngest      = "ladder:ingest"
	TaskAccountRegistered = "email:account_registered"
)

type LadderIngestPayload struct {
	AccountName string `json:"account_name"`
	LeagueName  string `json:"league_name"`
}

type AccountRegisteredPayload struct {
	UserID      int    `json:"user_id"`
	Username    string `json:"username"`
	AccountName string `json:"account_name"`
}

// NewLadderIngestTask builds a task that re-reads the ladder of one
// account. Ingest runs are not idempotent, so retries are limited.
func NewLadderIngestTask(accountName, leagueName string) (*asynq.Task, error) {
	payload, err := json.Marshal(LadderIngestPayload{
		AccountName: accountName,
		LeagueName:  leagueName,
	})
	if err != nil {
		return nil, err
	}

	return asynq.NewTask(
		TaskLadderIngest,
		payload,
		asynq.MaxRetry(1),
		asynq.Queue("default"),
		asynq.Timeout(2*time.Minute),
	), nil
}

// NewAccountRegisteredTask builds the admin notification sent after a
// user registers.
func NewAccountRegisteredTask(userID int, username, accountName string) (*asynq.Task, error) {
	payload, err := json.Marshal(AccountRegisteredPayload{
		UserID:      userID,
		Username:    username,
		AccountName: accountName,
	})
	if err != nil {
		return nil, err
	}

	return asynq.NewTask(
		TaskAccountRegistered,
		payload,
		asynq.MaxRetry(3),
		asynq.Queue("low"),
		asynq.Timeout(30*time.Second),
	), nil
}
