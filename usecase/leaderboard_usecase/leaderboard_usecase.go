package leaderboard_usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"gameshub/domain"
	"gameshub/port/leaderboard_port"
	apperrors "gameshub/utils/errors"
)

const (
	DefaultTopLimit = 10
	MaxTopLimit     = 100

	maxPlayerIDLength   = 128
	maxPlayerNameLength = 64
)

type SubmitScoreInput struct {
	PlayerID   string
	PlayerName string
	Score      int64
	GameID     *uuid.UUID
}

// LeaderboardUsecase keeps each player's best score per board. Postgres holds
// every submission; the stack's Redis holds the ranked boards.
type LeaderboardUsecase struct {
	scores leaderboard_port.ScoreStorePort
	boards leaderboard_port.LeaderboardCachePort
	now    func() time.Time
}

func NewLeaderboardUsecase(scores leaderboard_port.ScoreStorePort, boards leaderboard_port.LeaderboardCachePort) *LeaderboardUsecase {
	return &LeaderboardUsecase{scores: scores, boards: boards, now: time.Now}
}

func (u *LeaderboardUsecase) Submit(ctx context.Context, project *domain.Project, board string, in SubmitScoreInput) (*domain.SubmitResult, error) {
	if !domain.ValidBoardName(board) {
		return nil, fmt.Errorf("%w: invalid board name %q", apperrors.ErrInvalidInput, board)
	}
	playerID := strings.TrimSpace(in.PlayerID)
	if playerID == "" || len(playerID) > maxPlayerIDLength {
		return nil, fmt.Errorf("%w: player_id must be 1-%d characters", apperrors.ErrInvalidInput, maxPlayerIDLength)
	}
	if in.Score < 0 {
		return nil, fmt.Errorf("%w: score must not be negative", apperrors.ErrInvalidInput)
	}
	name := strings.TrimSpace(in.PlayerName)
	if utf8.RuneCountInString(name) > maxPlayerNameLength {
		name = string([]rune(name)[:maxPlayerNameLength])
	}

	score := domain.ScoreSubmission{
		ProjectID:  project.ID,
		Board:      board,
		PlayerID:   playerID,
		PlayerName: name,
		Score:      in.Score,
		GameID:     in.GameID,
		At:         u.now().UTC(),
	}
	if err := u.scores.InsertScore(ctx, score); err != nil {
		return nil, err
	}

	result := &domain.SubmitResult{Board: board}
	best, rank, err := u.boards.SubmitBest(ctx, project, domain.PeriodAllTime, score)
	if err != nil {
		slog.WarnContext(ctx, "leaderboard cache unavailable, ranking from stored scores", "board", board, "error", err)
		if best, err = u.scores.BestScore(ctx, project.ID, board, playerID); err != nil {
			return nil, err
		}
		if rank, err = u.scores.Rank(ctx, project.ID, board, best); err != nil {
			return nil, err
		}
	}
	result.BestScore = best
	result.Rank = rank

	if _, dailyRank, err := u.boards.SubmitBest(ctx, project, domain.PeriodDaily, score); err != nil {
		slog.WarnContext(ctx, "failed to update daily leaderboard", "board", board, "error", err)
	} else {
		result.DailyRank = dailyRank
	}
	return result, nil
}

// Top returns the highest scores of a board. Redis answers when it holds the
// board; otherwise the entries are rebuilt from stored submissions.
func (u *LeaderboardUsecase) Top(ctx context.Context, project *domain.Project, board string, period domain.LeaderboardPeriod, limit int) ([]domain.LeaderboardEntry, error) {
	if !domain.ValidBoardName(board) {
		return nil, fmt.Errorf("%w: invalid board name %q", apperrors.ErrInvalidInput, board)
	}
	if limit <= 0 {
		limit = DefaultTopLimit
	}
	if limit > MaxTopLimit {
		limit = MaxTopLimit
	}

	now := u.now().UTC()
	entries, err := u.boards.Top(ctx, project, board, period, now, limit)
	if err == nil && len(entries) > 0 {
		return entries, nil
	}
	if err != nil {
		slog.WarnContext(ctx, "leaderboard cache read failed, falling back to database", "board", board, "error", err)
	}

	var since time.Time
	if period == domain.PeriodDaily {
		since = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	}
	return u.scores.TopScores(ctx, project.ID, board, since, limit)
}
