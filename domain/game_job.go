package domain

import (
	"time"

	"github.com/google/uuid"
)

type GameJobStatus string

const (
	GameJobPending    GameJobStatus = "pending"
	GameJobProcessing GameJobStatus = "processing"
	GameJobCompleted  GameJobStatus = "completed"
	GameJobFailed     GameJobStatus = "failed"
)

// GameJob asks the worker to generate one game type for one article.
type GameJob struct {
	ID        uuid.UUID     `json:"id"`
	ProjectID uuid.UUID     `json:"project_id"`
	ArticleID uuid.UUID     `json:"article_id"`
	GameType  GameType      `json:"game_type"`
	Language  string        `json:"language"`
	Status    GameJobStatus `json:"status"`
	Attempts  int           `json:"attempts"`
	LastError string        `json:"last_error,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// NewGameJob is an enqueue request.
type NewGameJob struct {
	ProjectID uuid.UUID
	ArticleID uuid.UUID
	GameType  GameType
	Language  string
}
