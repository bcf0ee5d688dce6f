package hub_db

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"gameshub/domain"
)

const gameJobColumns = `id, project_id, article_id, game_type, language, status, attempts, last_error, created_at, updated_at`

func scanGameJob(row pgx.Row) (*domain.GameJob, error) {
	var j domain.GameJob
	var gameType, status string
	if err := row.Scan(&j.ID, &j.ProjectID, &j.ArticleID, &gameType, &j.Language, &status,
		&j.Attempts, &j.LastError, &j.CreatedAt, &j.UpdatedAt); err != nil {
		return nil, err
	}
	j.GameType = domain.GameType(gameType)
	j.Status = domain.GameJobStatus(status)
	return &j, nil
}

// EnqueueGameJobs inserts pending jobs and returns how many were created.
// A job that is already pending or processing for the same article and type
// is not duplicated.
func (r *HubDBRepository) EnqueueGameJobs(ctx context.Context, jobs []domain.NewGameJob) (int, error) {
	if len(jobs) == 0 {
		return 0, nil
	}

	query := `
		INSERT INTO game_jobs (id, project_id, article_id, game_type, language, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, 'pending', $6, $6)
		ON CONFLICT (article_id, game_type) WHERE status IN ('pending', 'processing') DO NOTHING
	`

	created := 0
	now := time.Now().UTC()
	err := r.RunInTx(ctx, func(ctx context.Context) error {
		for _, j := range jobs {
			tag, err := r.q(ctx).Exec(ctx, query, uuid.New(), j.ProjectID, j.ArticleID, string(j.GameType), j.Language, now)
			if err != nil {
				return mapError(err, "enqueue game job")
			}
			created += int(tag.RowsAffected())
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return created, nil
}

// AcquireNextJob claims the oldest pending job. It returns nil, nil when the
// queue is empty.
func (r *HubDBRepository) AcquireNextJob(ctx context.Context) (*domain.GameJob, error) {
	query := `
		WITH next_job AS (
			SELECT id FROM game_jobs
			WHERE status = 'pending'
			ORDER BY created_at
			LIMIT 1
			FOR UPDATE SKIP LOCKED
		)
		UPDATE game_jobs
		SET status = 'processing', attempts = attempts + 1, updated_at = NOW()
		FROM next_job
		WHERE game_jobs.id = next_job.id
		RETURNING game_jobs.id, game_jobs.project_id, game_jobs.article_id, game_jobs.game_type, game_jobs.language,
			game_jobs.status, game_jobs.attempts, game_jobs.last_error, game_jobs.created_at, game_jobs.updated_at
	`
	job, err := scanGameJob(r.q(ctx).QueryRow(ctx, query))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, mapError(err, "acquire next job")
	}
	return job, nil
}

func (r *HubDBRepository) CompleteJob(ctx context.Context, id uuid.UUID) error {
	_, err := r.q(ctx).Exec(ctx,
		`UPDATE game_jobs SET status = 'completed', last_error = '', updated_at = NOW() WHERE id = $1`, id)
	return mapError(err, "complete job")
}

// FailJob records the error. The job goes back to pending while attempts
// remain below maxAttempts, and is marked failed otherwise.
func (r *HubDBRepository) FailJob(ctx context.Context, id uuid.UUID, cause error, maxAttempts int) (domain.GameJobStatus, error) {
	query := `
		UPDATE game_jobs
		SET status = CASE WHEN attempts >= $3 THEN 'failed' ELSE 'pending' END,
		    last_error = $2,
		    updated_at = NOW()
		WHERE id = $1
		RETURNING status
	`
	var status string
	if err := r.q(ctx).QueryRow(ctx, query, id, truncateError(cause.Error()), maxAttempts).Scan(&status); err != nil {
		return "", mapError(err, "fail job")
	}
	return domain.GameJobStatus(status), nil
}

// RequeueStaleJobs moves jobs stuck in processing since before cutoff back to
// pending. Jobs that already used maxAttempts claims are marked failed instead.
func (r *HubDBRepository) RequeueStaleJobs(ctx context.Context, cutoff time.Time, maxAttempts int) (int64, error) {
	tag, err := r.q(ctx).Exec(ctx, `
		UPDATE game_jobs
		SET status = CASE WHEN attempts >= $2 THEN 'failed' ELSE 'pending' END,
		    last_error = CASE WHEN attempts >= $2 THEN 'abandoned while processing' ELSE last_error END,
		    updated_at = NOW()
		WHERE status = 'processing' AND updated_at < $1
	`, cutoff, maxAttempts)
	if err != nil {
		return 0, mapError(err, "requeue stale jobs")
	}
	if n := tag.RowsAffected(); n > 0 {
		slog.WarnContext(ctx, "requeued stale game jobs", "count", n)
	}
	return tag.RowsAffected(), nil
}

// CountJobsByStatus reports queue depth per status for a project.
func (r *HubDBRepository) CountJobsByStatus(ctx context.Context, projectID uuid.UUID) (map[domain.GameJobStatus]int64, error) {
	rows, err := r.q(ctx).Query(ctx,
		`SELECT status, COUNT(*) FROM game_jobs WHERE project_id = $1 GROUP BY status`, projectID)
	if err != nil {
		return nil, mapError(err, "count jobs")
	}
	defer rows.Close()

	counts := map[domain.GameJobStatus]int64{}
	for rows.Next() {
		var status string
		var n int64
		if err := rows.Scan(&status, &n); err != nil {
			return nil, mapError(err, "scan job count")
		}
		counts[domain.GameJobStatus(status)] = n
	}
	return counts, mapError(rows.Err(), "iterate job counts")
}
