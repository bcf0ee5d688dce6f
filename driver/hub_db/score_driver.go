package hub_db

import (
	"context"
	"time"

	"github.com/google/uuid"

	"gameshub/domain"
)

func (r *HubDBRepository) InsertScore(ctx context.Context, s domain.ScoreSubmission) error {
	query := `
		INSERT INTO scores (project_id, board, player_id, player_name, score, game_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.q(ctx).Exec(ctx, query, s.ProjectID, s.Board, s.PlayerID, s.PlayerName, s.Score, s.GameID, s.At)
	return mapError(err, "insert score")
}

// TopScores returns each player's best score on the board, highest first.
// A non-zero since restricts to scores recorded at or after it.
func (r *HubDBRepository) TopScores(ctx context.Context, projectID uuid.UUID, board string, since time.Time, limit int) ([]domain.LeaderboardEntry, error) {
	query := `
		SELECT player_id, player_name, score FROM (
			SELECT DISTINCT ON (player_id) player_id, player_name, score, created_at
			FROM scores
			WHERE project_id = $1 AND board = $2 AND created_at >= $3
			ORDER BY player_id, score DESC, created_at
		) best
		ORDER BY score DESC, created_at
		LIMIT $4
	`
	rows, err := r.q(ctx).Query(ctx, query, projectID, board, since, limit)
	if err != nil {
		return nil, mapError(err, "top scores")
	}
	defer rows.Close()

	entries := []domain.LeaderboardEntry{}
	for rows.Next() {
		var e domain.LeaderboardEntry
		if err := rows.Scan(&e.PlayerID, &e.PlayerName, &e.Score); err != nil {
			return nil, mapError(err, "scan score")
		}
		e.Rank = int64(len(entries) + 1)
		entries = append(entries, e)
	}
	return entries, mapError(rows.Err(), "iterate scores")
}

// Rank counts the players whose best score on the board is above score.
func (r *HubDBRepository) Rank(ctx context.Context, projectID uuid.UUID, board string, score int64) (int64, error) {
	var above int64
	err := r.q(ctx).QueryRow(ctx, `
		SELECT COUNT(*) FROM (
			SELECT player_id FROM scores
			WHERE project_id = $1 AND board = $2
			GROUP BY player_id
			HAVING MAX(score) > $3
		) better
	`, projectID, board, score).Scan(&above)
	if err != nil {
		return 0, mapError(err, "score rank")
	}
	return above + 1, nil
}

// BestScore returns the player's highest score on the board, or 0 if none.
func (r *HubDBRepository) BestScore(ctx context.Context, projectID uuid.UUID, board, playerID string) (int64, error) {
	var best int64
	err := r.q(ctx).QueryRow(ctx,
		`SELECT COALESCE(MAX(score), 0) FROM scores WHERE project_id = $1 AND board = $2 AND player_id = $3`,
		projectID, board, playerID).Scan(&best)
	if err != nil {
		return 0, mapError(err, "best score")
	}
	return best, nil
}
