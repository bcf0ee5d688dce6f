package domain

import (
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"
)

var boardPattern = regexp.MustCompile(`^[a-zA-Z0-9_.:-]{1,64}$`)

// ValidBoardName reports whether name can be used as a leaderboard identifier.
func ValidBoardName(name string) bool {
	return boardPattern.MatchString(name)
}

type LeaderboardPeriod string

const (
	PeriodAllTime LeaderboardPeriod = "all"
	PeriodDaily   LeaderboardPeriod = "daily"
)

func ParsePeriod(s string) (LeaderboardPeriod, error) {
	switch LeaderboardPeriod(s) {
	case "", PeriodAllTime:
		return PeriodAllTime, nil
	case PeriodDaily:
		return PeriodDaily, nil
	}
	return "", fmt.Errorf("unknown period %q", s)
}

// Bucket returns the storage suffix for the period at t (UTC day for daily).
func (p LeaderboardPeriod) Bucket(t time.Time) string {
	if p == PeriodDaily {
		return t.UTC().Format("20060102")
	}
	return "all"
}

// ScoreSubmission is a player's result for a board.
type ScoreSubmission struct {
	ProjectID  uuid.UUID
	Board      string
	PlayerID   string
	PlayerName string
	Score      int64
	GameID     *uuid.UUID
	At         time.Time
}

type LeaderboardEntry struct {
	Rank       int64  `json:"rank"`
	PlayerID   string `json:"player_id"`
	PlayerName string `json:"player_name"`
	Score      int64  `json:"score"`
}

// SubmitResult is returned after a score submission.
type SubmitResult struct {
	Board     string `json:"board"`
	BestScore int64  `json:"best_score"`
	Rank      int64  `json:"rank"`
	DailyRank int64  `json:"daily_rank"`
}
