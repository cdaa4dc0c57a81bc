package job

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/deppfellow/ladder-stats/internal/config"
	"github.com/deppfellow/ladder-stats/internal/lib/email"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
)

// IngestFunc runs one ladder ingest. The service layer provides it, since
// this package cannot import it.
type IngestFunc func(ctx context.Context, accountName, leagueName string) error

// Notifier sends the admin notification for a new registration.
type Notifier interface {
	SendAccountRegisteredEmail(to string, userID int, username, accountName string) error
}

// InitHandlers sets up the dependencies the task handlers need. It must
// run before Start.
func (j *JobService) InitHandlers(cfg *config.Config, logger *zerolog.Logger, ingest IngestFunc) {
	j.ingest = ingest
	j.adminEmail = cfg.Admin.Email
	if cfg.Integration.ResendAPIKey != "" {
		j.notifier = email.NewClient(cfg, logger)
	}
}

func (j *JobService) handleLadderIngestTask(ctx context.Context, t *asynq.Task) error {
	var p LadderIngestPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return fmt.Errorf("failed to unmarshal ladder ingest payload: %w: %w", err, asynq.SkipRetry)
	}

	logger := j.logger.With().
		Str("type", TaskLadderIngest).
		Str("account_name", p.AccountName).
		Str("league_name", p.LeagueName).
		Logger()

	if j.ingest == nil {
		return fmt.Errorf("ladder ingest handler not initialized: %w", asynq.SkipRetry)
	}

	logger.Info().Msg("Processing ladder ingest task")

	if err := j.ingest(logger.WithContext(ctx), p.AccountName, p.LeagueName); err != nil {
		logger.Error().Err(err).Msg("Failed to ingest ladder")
		return err
	}

	logger.Info().Msg("Successfully ingested ladder")

	return nil
}

func (j *JobService) handleAccountRegisteredTask(ctx context.Context, t *asynq.Task) error {
	var p AccountRegisteredPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return fmt.Errorf("failed to unmarshal account registered payload: %w: %w", err, asynq.SkipRetry)
	}

	logger := j.logger.With().
		Str("type", TaskAccountRegistered).
		Int("user_id", p.UserID).
		Logger()

	if j.notifier == nil || j.adminEmail == "" {
		logger.Debug().Msg("Email notifications disabled, skipping")
		return nil
	}

	if err := j.notifier.SendAccountRegisteredEmail(j.adminEmail, p.UserID, p.Username, p.AccountName); err != nil {
		logger.Error().Err(err).Msg("Failed to send account registered email")
		return err
	}

	logger.Info().Msg("Successfully sent account registered email")

	return nil
}
