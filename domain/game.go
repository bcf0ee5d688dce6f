package domain

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type GameType string

const (
	GameTypeQuiz             GameType = "quiz"
	GameTypeHangman          GameType = "hangman"
	GameTypeHeadlineScramble GameType = "headline_scramble"
)

var AllGameTypes = []GameType{GameTypeQuiz, GameTypeHangman, GameTypeHeadlineScramble}

func (t GameType) Valid() bool {
	switch t {
	case GameTypeQuiz, GameTypeHangman, GameTypeHeadlineScramble:
		return true
	}
	return false
}

// NeedsProvider reports whether generating t calls the GenAI helper.
func (t GameType) NeedsProvider() bool {
	return t == GameTypeQuiz || t == GameTypeHangman
}

// GameSettings is the per-feed game generation configuration.
type GameSettings struct {
	Enabled           bool       `json:"enabled"`
	GameTypes         []GameType `json:"game_types"`
	MaxArticlesPerRun int        `json:"max_articles_per_run"`
	Language          string     `json:"language"`
}

const DefaultMaxArticlesPerRun = 10

// Normalize fills defaults and removes duplicate types.
func (s GameSettings) Normalize() GameSettings {
	if s.MaxArticlesPerRun <= 0 {
		s.MaxArticlesPerRun = DefaultMaxArticlesPerRun
	}
	if s.Language == "" {
		s.Language = "en"
	}
	seen := make(map[GameType]bool, len(s.GameTypes))
	types := make([]GameType, 0, len(s.GameTypes))
	for _, t := range s.GameTypes {
		if !seen[t] {
			seen[t] = true
			types = append(types, t)
		}
	}
	s.GameTypes = types
	return s
}

func (s GameSettings) Validate() error {
	if s.MaxArticlesPerRun > 100 {
		return fmt.Errorf("max_articles_per_run must not exceed 100, got %d", s.MaxArticlesPerRun)
	}
	for _, t := range s.GameTypes {
		if !t.Valid() {
			return fmt.Errorf("unknown game type %q", t)
		}
	}
	if s.Enabled && len(s.GameTypes) == 0 {
		return fmt.Errorf("game_types must not be empty when game generation is enabled")
	}
	return nil
}

type GameStatus string

const (
	GameStatusDraft     GameStatus = "draft"
	GameStatusPublished GameStatus = "published"
	GameStatusRejected  GameStatus = "rejected"
)

func (s GameStatus) Valid() bool {
	return s == GameStatusDraft || s == GameStatusPublished || s == GameStatusRejected
}

// Game is one generated mini-game for an article.
type Game struct {
	ID        uuid.UUID       `json:"id"`
	ProjectID uuid.UUID       `json:"project_id"`
	ArticleID uuid.UUID       `json:"article_id"`
	Type      GameType        `json:"type"`
	Status    GameStatus      `json:"status"`
	Payload   json.RawMessage `json:"payload"`
	Provider  string          `json:"provider"`
	Model     string          `json:"model,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

type QuizQuestion struct {
	Question    string   `json:"question"`
	Options     []string `json:"options"`
	AnswerIndex int      `json:"answer_index"`
	Explanation string   `json:"explanation,omitempty"`
}

type QuizPayload struct {
	Title     string         `json:"title"`
	Questions []QuizQuestion `json:"questions"`
}

type HangmanWord struct {
	Word string `json:"word"`
	Hint string `json:"hint"`
}

type HangmanPayload struct {
	Words []HangmanWord `json:"words"`
}

type HeadlineScramblePayload struct {
	Words     []string `json:"words"`
	Answer    string   `json:"answer"`
	Hint      string   `json:"hint,omitempty"`
	WordCount int      `json:"word_count"`
}

// GameArticle is the article content handed to generators.
type GameArticle struct {
	ID          uuid.UUID
	Title       string
	Description string
	Content     string
	Language    string
}

// GeneratedGame is a validated payload ready to be stored.
type GeneratedGame struct {
	Type     GameType
	Payload  json.RawMessage
	Provider string
	Model    string
}

// GameFilter narrows game listings. Zero values match everything.
type GameFilter struct {
	ArticleID *uuid.UUID
	Type      GameType
	Status    GameStatus
}
