package genai_driver

import (
	"bytes"
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"text/template"
	"time"
	"unicode"

	gobreaker "github.com/sony/gobreaker/v2"

	"gameshub/domain"
	apperrors "gameshub/utils/errors"
	"gameshub/utils/metrics"
	"gameshub/utils/resilience"
)

//go:embed prompts/*.tmpl
var promptFS embed.FS

var prompts = template.Must(template.ParseFS(promptFS, "prompts/*.tmpl"))

// GeneratorOptions sizes the generated games.
type GeneratorOptions struct {
	QuizQuestions  int
	HangmanWords   int
	MaxInputChars  int
	Timeout        time.Duration
	BreakerTrips   uint32
	BreakerTimeout time.Duration
}

// GameGenerator produces validated payloads for every game type. provider may
// be nil, in which case only locally built games are available.
type GameGenerator struct {
	provider Provider
	breaker  *gobreaker.CircuitBreaker[string]
	opts     GeneratorOptions
}

func NewGameGenerator(provider Provider, opts GeneratorOptions) *GameGenerator {
	if opts.QuizQuestions <= 0 {
		opts.QuizQuestions = 5
	}
	if opts.HangmanWords <= 0 {
		opts.HangmanWords = 3
	}
	if opts.MaxInputChars <= 0 {
		opts.MaxInputChars = 8000
	}

	g := &GameGenerator{provider: provider, opts: opts}
	if provider != nil {
		g.breaker = resilience.NewBreaker[string](resilience.BreakerSettings{
			Name:                "genai-" + provider.Name(),
			ConsecutiveFailures: opts.BreakerTrips,
			OpenTimeout:         opts.BreakerTimeout,
			IsSuccessful: func(err error) bool {
				return err == nil || errors.Is(err, context.Canceled)
			},
		})
	}
	return g
}

// ProviderName reports the configured provider, or "none".
func (g *GameGenerator) ProviderName() string {
	if g.provider == nil {
		return ProviderNone
	}
	return g.provider.Name()
}

type promptData struct {
	Title       string
	Description string
	Content     string
	Language    string
	Count       int
}

// Generate builds one game of gameType for article.
func (g *GameGenerator) Generate(ctx context.Context, gameType domain.GameType, article domain.GameArticle) (*domain.GeneratedGame, error) {
	switch gameType {
	case domain.GameTypeHeadlineScramble:
		payload, err := BuildHeadlineScramble(article.ID, article.Title, article.Description)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
		}
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		return &domain.GeneratedGame{Type: gameType, Payload: raw, Provider: "local"}, nil
	case domain.GameTypeQuiz, domain.GameTypeHangman:
		return g.generateWithProvider(ctx, gameType, article)
	}
	return nil, fmt.Errorf("%w: unknown game type %q", apperrors.ErrInvalidInput, gameType)
}

func (g *GameGenerator) generateWithProvider(ctx context.Context, gameType domain.GameType, article domain.GameArticle) (*domain.GeneratedGame, error) {
	if g.provider == nil {
		return nil, apperrors.ErrProviderDisabled
	}

	system, prompt, err := g.renderPrompts(gameType, article)
	if err != nil {
		return nil, err
	}

	if g.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.opts.Timeout)
		defer cancel()
	}

	start := time.Now()
	reply, err := g.breaker.Execute(func() (string, error) {
		return g.provider.GenerateJSON(ctx, system, prompt)
	})
	duration := time.Since(start).Seconds()
	if err != nil {
		metrics.RecordGenAIRequest(g.provider.Name(), "error", duration)
		if resilience.IsOpen(err) {
			return nil, fmt.Errorf("%w: %s circuit open", apperrors.ErrExternalServiceUnavailable, g.provider.Name())
		}
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrOperationTimeout, err)
		}
		return nil, fmt.Errorf("%w: %v", apperrors.ErrExternalServiceUnavailable, err)
	}
	metrics.RecordGenAIRequest(g.provider.Name(), "ok", duration)

	payload, err := g.parsePayload(gameType, reply)
	if err != nil {
		slog.WarnContext(ctx, "genai reply rejected",
			"game_type", gameType, "provider", g.provider.Name(), "error", err)
		return nil, fmt.Errorf("%w: %v", apperrors.ErrProviderOutputInvalid, err)
	}

	return &domain.GeneratedGame{
		Type:     gameType,
		Payload:  payload,
		Provider: g.provider.Name(),
		Model:    g.provider.Model(),
	}, nil
}

func (g *GameGenerator) renderPrompts(gameType domain.GameType, article domain.GameArticle) (string, string, error) {
	data := promptData{
		Title:       article.Title,
		Description: article.Description,
		Content:     truncateRunes(article.Content, g.opts.MaxInputChars),
		Language:    article.Language,
		Count:       g.opts.QuizQuestions,
	}
	if data.Language == "" {
		data.Language = "en"
	}
	if gameType == domain.GameTypeHangman {
		data.Count = g.opts.HangmanWords
	}

	var system, prompt bytes.Buffer
	if err := prompts.ExecuteTemplate(&system, "system", data); err != nil {
		return "", "", fmt.Errorf("render system prompt: %w", err)
	}
	if err := prompts.ExecuteTemplate(&prompt, string(gameType), data); err != nil {
		return "", "", fmt.Errorf("render %s prompt: %w", gameType, err)
	}
	return system.String(), prompt.String(), nil
}

// parsePayload strips code fences, checks the schema, then the rules a
// schema cannot express, and returns the normalized payload.
func (g *GameGenerator) parsePayload(gameType domain.GameType, reply string) (json.RawMessage, error) {
	raw := []byte(stripCodeFence(reply))
	if err := validateAgainstSchema(gameType, raw); err != nil {
		return nil, err
	}

	switch gameType {
	case domain.GameTypeQuiz:
		var quiz domain.QuizPayload
		if err := json.Unmarshal(raw, &quiz); err != nil {
			return nil, err
		}
		if err := checkQuiz(&quiz); err != nil {
			return nil, err
		}
		if len(quiz.Questions) > g.opts.QuizQuestions {
			quiz.Questions = quiz.Questions[:g.opts.QuizQuestions]
		}
		return json.Marshal(quiz)
	case domain.GameTypeHangman:
		var hangman domain.HangmanPayload
		if err := json.Unmarshal(raw, &hangman); err != nil {
			return nil, err
		}
		if err := checkHangman(&hangman); err != nil {
			return nil, err
		}
		if len(hangman.Words) > g.opts.HangmanWords {
			hangman.Words = hangman.Words[:g.opts.HangmanWords]
		}
		return json.Marshal(hangman)
	}
	return nil, fmt.Errorf("unsupported game type %q", gameType)
}

func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if nl := strings.IndexByte(s, '\n'); nl >= 0 {
		s = s[nl+1:]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

func checkQuiz(q *domain.QuizPayload) error {
	for i, question := range q.Questions {
		if question.AnswerIndex < 0 || question.AnswerIndex >= len(question.Options) {
			return fmt.Errorf("question %d: answer_index %d out of range", i, question.AnswerIndex)
		}
		seen := make(map[string]bool, len(question.Options))
		for _, opt := range question.Options {
			key := strings.ToLower(strings.TrimSpace(opt))
			if seen[key] {
				return fmt.Errorf("question %d: duplicate option %q", i, opt)
			}
			seen[key] = true
		}
	}
	return nil
}

func checkHangman(h *domain.HangmanPayload) error {
	seen := make(map[string]bool, len(h.Words))
	for i, w := range h.Words {
		for _, r := range w.Word {
			if !unicode.IsLetter(r) {
				return fmt.Errorf("word %d: %q contains non-letters", i, w.Word)
			}
		}
		key := strings.ToLower(w.Word)
		if seen[key] {
			return fmt.Errorf("word %d: duplicate %q", i, w.Word)
		}
		seen[key] = true
		if strings.Contains(strings.ToLower(w.Hint), key) {
			return fmt.Errorf("word %d: hint reveals the word", i)
		}
	}
	return nil
}
