package job

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingNotifier struct {
	to          string
	userID      int
	accountName string
	err         error
}

func (n *recordingNotifier) SendAccountRegisteredEmail(to string, userID int, _ string, accountName string) error {
	n.to, n.userID, n.accountName = to, userID, accountName
	return n.err
}

func newTestJobService() *JobService {
	logger := zerolog.Nop()
	return &JobService{logger: &logger}
}

func TestNewLadderIngestTask(t *testing.T) {
	task, err := NewLadderIngestTask("Exile", "Standard")
	require.NoError(t, err)

	assert.Equal(t, TaskLadderIngest, task.Type())

	var p LadderIngestPayload
	require.NoError(t, json.Unmarshal(task.Payload(), &p))
	assert.Equal(t, LadderIngestPayload{AccountName: "Exile", LeagueName: "Standard"}, p)
}

func TestHandleLadderIngestTask(t *testing.T) {
	t.Run("runs the ingest with the payload", func(t *testing.T) {
		j := newTestJobService()

		var gotAccount, gotLeague string
		j.ingest = func(ctx context.Context, accountName, leagueName string) error {
			gotAccount, gotLeague = accountName, leagueName
			assert.NotNil(t, zerolog.Ctx(ctx))
			return nil
		}

		task, err := NewLadderIngestTask("Exile", "Standard")
		require.NoError(t, err)

		require.NoError(t, j.handleLadderIngestTask(context.Background(), task))
		assert.Equal(t, "Exile", gotAccount)
		assert.Equal(t, "Standard", gotLeague)
	})

	t.Run("ingest failure is returned for retry", func(t *testing.T) {
		j := newTestJobService()
		boom := errors.New("ladder api down")
		j.ingest = func(context.Context, string, string) error { return boom }

		task, err := NewLadderIngestTask("Exile", "Standard")
		require.NoError(t, err)

		assert.ErrorIs(t, j.handleLadderIngestTask(context.Background(), task), boom)
	})

	t.Run("malformed payload is not retried", func(t *testing.T) {
		j := newTestJobService()
		j.ingest = func(context.Context, string, string) error { return nil }

		err := j.handleLadderIngestTask(context.Background(), asynq.NewTask(TaskLadderIngest, []byte("{")))
		assert.ErrorIs(t, err, asynq.SkipRetry)
	})
}

func TestHandleAccountRegisteredTask(t *testing.T) {
	task, err := NewAccountRegisteredTask(7, "aanderson", "AndersonExile")
	require.NoError(t, err)

	t.Run("notifies the admin", func(t *testing.T) {
		j := newTestJobService()
		notifier := &recordingNotifier{}
		j.notifier = notifier
		j.adminEmail = "admin@example.com"

		require.NoError(t, j.handleAccountRegisteredTask(context.Background(), task))
		assert.Equal(t, "admin@example.com", notifier.to)
		assert.Equal(t, 7, notifier.userID)
		assert.Equal(t, "AndersonExile", notifier.accountName)
	})

	t.Run("skips without a configured notifier", func(t *testing.T) {
		assert.NoError(t, newTestJobService().handleAccountRegisteredTask(context.Background(), task))
	})

	t.Run("send failure is returned", func(t *testing.T) {
		j := newTestJobService()
		j.notifier = &recordingNotifier{err: errors.New("rejected")}
		j.adminEmail = "admin@example.com"

		assert.Error(t, j.handleAccountRegisteredTask(context.Background(), task))
	})
}
