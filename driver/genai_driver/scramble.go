package genai_driver

import (
	"encoding/binary"
	"errors"
	"math/rand/v2"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"gameshub/domain"
)

var ErrHeadlineTooShort = errors.New("headline needs at least two distinct words")

const maxHintRunes = 140

// BuildHeadlineScramble shuffles the headline words with a shuffle seeded by
// the article ID, so the same article always yields the same puzzle. The
// shuffled order never equals the original.
func BuildHeadlineScramble(articleID uuid.UUID, title, description string) (*domain.HeadlineScramblePayload, error) {
	words := strings.Fields(title)
	if !hasDistinctWords(words) {
		return nil, ErrHeadlineTooShort
	}

	seed1 := binary.BigEndian.Uint64(articleID[:8])
	seed2 := binary.BigEndian.Uint64(articleID[8:])
	rng := rand.New(rand.NewPCG(seed1, seed2))

	shuffled := slices.Clone(words)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	if slices.Equal(shuffled, words) {
		// A one-step rotation differs from the original whenever two words differ.
		shuffled = append(shuffled[1:], shuffled[0])
	}

	return &domain.HeadlineScramblePayload{
		Words:     shuffled,
		Answer:    strings.Join(words, " "),
		Hint:      truncateRunes(strings.TrimSpace(description), maxHintRunes),
		WordCount: len(words),
	}, nil
}

func hasDistinctWords(words []string) bool {
	for _, w := range words[min(1, len(words)):] {
		if w != words[0] {
			return true
		}
	}
	return false
}

func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return strings.TrimSpace(string(runes[:n])) + "…"
}
