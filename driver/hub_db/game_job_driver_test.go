package hub_db

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gameshub/domain"
)

var gameJobRowColumns = []string{
	"id", "project_id", "article_id", "game_type", "language", "status", "attempts", "last_error", "created_at", "updated_at",
}

func TestEnqueueGameJobs_CountsInsertedRows(t *testing.T) {
	mock, repo := newMockRepo(t)

	projectID := uuid.New()
	articleID := uuid.New()
	jobs := []domain.NewGameJob{
		{ProjectID: projectID, ArticleID: articleID, GameType: domain.GameTypeQuiz, Language: "en"},
		{ProjectID: projectID, ArticleID: articleID, GameType: domain.GameTypeHangman, Language: "en"},
	}

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO game_jobs").
		WithArgs(pgxmock.AnyArg(), projectID, articleID, "quiz", "en", pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec("INSERT INTO game_jobs").
		WithArgs(pgxmock.AnyArg(), projectID, articleID, "hangman", "en", pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 0))
	mock.ExpectCommit()

	n, err := repo.EnqueueGameJobs(context.Background(), jobs)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAcquireNextJob(t *testing.T) {
	mock, repo := newMockRepo(t)

	jobID := uuid.New()
	now := time.Now().UTC()

	mock.ExpectQuery("WITH next_job AS").
		WillReturnRows(pgxmock.NewRows(gameJobRowColumns).
			AddRow(jobID, uuid.New(), uuid.New(), "quiz", "en", "processing", 1, "", now, now))

	job, err := repo.AcquireNextJob(context.Background())
	require.NoError(t, err)
	require.NotNil(t, job)
	assert.Equal(t, jobID, job.ID)
	assert.Equal(t, domain.GameJobProcessing, job.Status)
	assert.Equal(t, domain.GameTypeQuiz, job.GameType)
	assert.Equal(t, 1, job.Attempts)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAcquireNextJob_EmptyQueue(t *testing.T) {
	mock, repo := newMockRepo(t)

	mock.ExpectQuery("WITH next_job AS").WillReturnError(pgx.ErrNoRows)

	job, err := repo.AcquireNextJob(context.Background())
	require.NoError(t, err)
	assert.Nil(t, job)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFailJob(t *testing.T) {
	mock, repo := newMockRepo(t)

	jobID := uuid.New()
	mock.ExpectQuery("UPDATE game_jobs").
		WithArgs(jobID, "provider returned invalid JSON", 3).
		WillReturnRows(pgxmock.NewRows([]string{"status"}).AddRow("pending"))

	status, err := repo.FailJob(context.Background(), jobID, errors.New("provider returned invalid JSON"), 3)
	require.NoError(t, err)
	assert.Equal(t, domain.GameJobPending, status)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRequeueStaleJobs(t *testing.T) {
	mock, repo := newMockRepo(t)

	cutoff := time.Now().Add(-10 * time.Minute)
	mock.ExpectExec(`SET status = CASE WHEN attempts >= \$2 THEN 'failed' ELSE 'pending' END`).
		WithArgs(cutoff, 3).
		WillReturnResult(pgxmock.NewResult("UPDATE", 2))

	n, err := repo.RequeueStaleJobs(context.Background(), cutoff, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertGame(t *testing.T) {
	mock, repo := newMockRepo(t)

	now := time.Now().UTC()
	game := &domain.Game{
		ID:        uuid.New(),
		ProjectID: uuid.New(),
		ArticleID: uuid.New(),
		Type:      domain.GameTypeHangman,
		Status:    domain.GameStatusDraft,
		Payload:   []byte(`{"words":[{"word":"orbit","hint":"path around a planet"}]}`),
		Provider:  "vertex",
		Model:     "gemini-2.5-flash",
		CreatedAt: now,
	}

	mock.ExpectQuery("INSERT INTO games").
		WithArgs(game.ID, game.ProjectID, game.ArticleID, "hangman", "draft", []byte(game.Payload), "vertex", "gemini-2.5-flash", now).
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "project_id", "article_id", "game_type", "status", "payload", "provider", "model", "created_at", "updated_at",
		}).AddRow(game.ID, game.ProjectID, game.ArticleID, "hangman", "draft", []byte(game.Payload), "vertex", "gemini-2.5-flash", now, now))

	stored, err := repo.UpsertGame(context.Background(), game)
	require.NoError(t, err)
	assert.Equal(t, domain.GameTypeHangman, stored.Type)
	assert.JSONEq(t, string(game.Payload), string(stored.Payload))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertGame_KeepsPublishedStatus(t *testing.T) {
	mock, repo := newMockRepo(t)

	now := time.Now().UTC()
	game := &domain.Game{
		ID:        uuid.New(),
		ProjectID: uuid.New(),
		ArticleID: uuid.New(),
		Type:      domain.GameTypeHangman,
		Status:    domain.GameStatusDraft,
		Payload:   []byte(`{"words":[{"word":"comet","hint":"icy visitor"}]}`),
		Provider:  "vertex",
		Model:     "gemini-2.5-flash",
		CreatedAt: now,
	}
	storedID := uuid.New()

	mock.ExpectQuery(`status = CASE WHEN games\.status = 'published' THEN games\.status ELSE EXCLUDED\.status END`).
		WithArgs(game.ID, game.ProjectID, game.ArticleID, "hangman", "draft", []byte(game.Payload), "vertex", "gemini-2.5-flash", now).
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "project_id", "article_id", "game_type", "status", "payload", "provider", "model", "created_at", "updated_at",
		}).AddRow(storedID, game.ProjectID, game.ArticleID, "hangman", "published", []byte(game.Payload), "vertex", "gemini-2.5-flash", now.Add(-time.Hour), now))

	stored, err := repo.UpsertGame(context.Background(), game)
	require.NoError(t, err)
	assert.Equal(t, storedID, stored.ID)
	assert.Equal(t, domain.GameStatusPublished, stored.Status)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTopScores_RanksInOrder(t *testing.T) {
	mock, repo := newMockRepo(t)

	projectID := uuid.New()
	mock.ExpectQuery("SELECT player_id, player_name, score FROM").
		WithArgs(projectID, "weekly-quiz", time.Time{}, 3).
		WillReturnRows(pgxmock.NewRows([]string{"player_id", "player_name", "score"}).
			AddRow("p1", "Ada", int64(90)).
			AddRow("p2", "Lin", int64(75)))

	entries, err := repo.TopScores(context.Background(), projectID, "weekly-quiz", time.Time{}, 3)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, int64(1), entries[0].Rank)
	assert.Equal(t, int64(2), entries[1].Rank)
	assert.Equal(t, "Lin", entries[1].PlayerName)
	require.NoError(t, mock.ExpectationsWereMet())
}
