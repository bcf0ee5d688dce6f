package leaderboard_usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"gameshub/domain"
	"gameshub/mocks"
	apperrors "gameshub/utils/errors"
)

type fixture struct {
	scores *mocks.MockScoreStorePort
	boards *mocks.MockLeaderboardCachePort
}

var fixedNow = time.Date(2026, 5, 4, 15, 30, 0, 0, time.UTC)

func newUsecase(t *testing.T) (*LeaderboardUsecase, *fixture) {
	ctrl := gomock.NewController(t)
	f := &fixture{
		scores: mocks.NewMockScoreStorePort(ctrl),
		boards: mocks.NewMockLeaderboardCachePort(ctrl),
	}
	u := NewLeaderboardUsecase(f.scores, f.boards)
	u.now = func() time.Time { return fixedNow }
	return u, f
}

func TestSubmit(t *testing.T) {
	project := &domain.Project{ID: uuid.New(), ServiceStack: "default"}

	tests := []struct {
		name      string
		board     string
		input     SubmitScoreInput
		mockSetup func(f *fixture)
		want      *domain.SubmitResult
		wantErr   error
	}{
		{
			name:  "ranked on both boards",
			board: "daily-quiz",
			input: SubmitScoreInput{PlayerID: " p1 ", PlayerName: "Ann", Score: 40},
			mockSetup: func(f *fixture) {
				f.scores.EXPECT().InsertScore(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, s domain.ScoreSubmission) error {
						assert.Equal(t, "p1", s.PlayerID)
						assert.Equal(t, project.ID, s.ProjectID)
						assert.Equal(t, fixedNow, s.At)
						return nil
					})
				f.boards.EXPECT().SubmitBest(gomock.Any(), project, domain.PeriodAllTime, gomock.Any()).Return(int64(55), int64(3), nil)
				f.boards.EXPECT().SubmitBest(gomock.Any(), project, domain.PeriodDaily, gomock.Any()).Return(int64(40), int64(1), nil)
			},
			want: &domain.SubmitResult{Board: "daily-quiz", BestScore: 55, Rank: 3, DailyRank: 1},
		},
		{
			name:  "cache down falls back to stored best",
			board: "quiz",
			input: SubmitScoreInput{PlayerID: "p1", Score: 10},
			mockSetup: func(f *fixture) {
				f.scores.EXPECT().InsertScore(gomock.Any(), gomock.Any()).Return(nil)
				f.boards.EXPECT().SubmitBest(gomock.Any(), project, domain.PeriodAllTime, gomock.Any()).Return(int64(0), int64(0), errors.New("redis down"))
				f.scores.EXPECT().BestScore(gomock.Any(), project.ID, "quiz", "p1").Return(int64(70), nil)
				f.scores.EXPECT().Rank(gomock.Any(), project.ID, "quiz", int64(70)).Return(int64(4), nil)
				f.boards.EXPECT().SubmitBest(gomock.Any(), project, domain.PeriodDaily, gomock.Any()).Return(int64(0), int64(0), errors.New("redis down"))
			},
			want: &domain.SubmitResult{Board: "quiz", BestScore: 70, Rank: 4},
		},
		{
			name:  "cache down and rank query fails",
			board: "quiz",
			input: SubmitScoreInput{PlayerID: "p1", Score: 10},
			mockSetup: func(f *fixture) {
				f.scores.EXPECT().InsertScore(gomock.Any(), gomock.Any()).Return(nil)
				f.boards.EXPECT().SubmitBest(gomock.Any(), project, domain.PeriodAllTime, gomock.Any()).Return(int64(0), int64(0), errors.New("redis down"))
				f.scores.EXPECT().BestScore(gomock.Any(), project.ID, "quiz", "p1").Return(int64(70), nil)
				f.scores.EXPECT().Rank(gomock.Any(), project.ID, "quiz", int64(70)).Return(int64(0), apperrors.ErrDatabaseUnavailable)
			},
			wantErr: apperrors.ErrDatabaseUnavailable,
		},
		{
			name:      "invalid board",
			board:     "bad board!",
			input:     SubmitScoreInput{PlayerID: "p1", Score: 1},
			mockSetup: func(f *fixture) {},
			wantErr:   apperrors.ErrInvalidInput,
		},
		{
			name:      "missing player",
			board:     "quiz",
			input:     SubmitScoreInput{PlayerID: "  ", Score: 1},
			mockSetup: func(f *fixture) {},
			wantErr:   apperrors.ErrInvalidInput,
		},
		{
			name:      "player id too long",
			board:     "quiz",
			input:     SubmitScoreInput{PlayerID: strings.Repeat("x", 129), Score: 1},
			mockSetup: func(f *fixture) {},
			wantErr:   apperrors.ErrInvalidInput,
		},
		{
			name:      "negative score",
			board:     "quiz",
			input:     SubmitScoreInput{PlayerID: "p1", Score: -1},
			mockSetup: func(f *fixture) {},
			wantErr:   apperrors.ErrInvalidInput,
		},
		{
			name:  "store failure is returned",
			board: "quiz",
			input: SubmitScoreInput{PlayerID: "p1", Score: 1},
			mockSetup: func(f *fixture) {
				f.scores.EXPECT().InsertScore(gomock.Any(), gomock.Any()).Return(apperrors.ErrDatabaseUnavailable)
			},
			wantErr: apperrors.ErrDatabaseUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, f := newUsecase(t)
			tt.mockSetup(f)

			got, err := u.Submit(context.Background(), project, tt.board, tt.input)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTop(t *testing.T) {
	project := &domain.Project{ID: uuid.New()}
	cached := []domain.LeaderboardEntry{{Rank: 1, PlayerID: "p1", Score: 9}}
	stored := []domain.LeaderboardEntry{{PlayerID: "p2", Score: 4}}

	t.Run("served from cache with default limit", func(t *testing.T) {
		u, f := newUsecase(t)
		f.boards.EXPECT().Top(gomock.Any(), project, "quiz", domain.PeriodAllTime, fixedNow, DefaultTopLimit).Return(cached, nil)

		got, err := u.Top(context.Background(), project, "quiz", domain.PeriodAllTime, 0)
		require.NoError(t, err)
		assert.Equal(t, cached, got)
	})

	t.Run("empty cache falls back with start of day", func(t *testing.T) {
		u, f := newUsecase(t)
		f.boards.EXPECT().Top(gomock.Any(), project, "quiz", domain.PeriodDaily, fixedNow, MaxTopLimit).Return(nil, nil)
		f.scores.EXPECT().TopScores(gomock.Any(), project.ID, "quiz", time.Date(2026, 5, 4, 0, 0, 0, 0, time.UTC), MaxTopLimit).Return(stored, nil)

		got, err := u.Top(context.Background(), project, "quiz", domain.PeriodDaily, 500)
		require.NoError(t, err)
		assert.Equal(t, stored, got)
	})

	t.Run("cache error falls back to all time", func(t *testing.T) {
		u, f := newUsecase(t)
		f.boards.EXPECT().Top(gomock.Any(), project, "quiz", domain.PeriodAllTime, fixedNow, 5).Return(nil, errors.New("redis down"))
		f.scores.EXPECT().TopScores(gomock.Any(), project.ID, "quiz", time.Time{}, 5).Return(stored, nil)

		got, err := u.Top(context.Background(), project, "quiz", domain.PeriodAllTime, 5)
		require.NoError(t, err)
		assert.Equal(t, stored, got)
	})

	t.Run("invalid board", func(t *testing.T) {
		u, _ := newUsecase(t)
		_, err := u.Top(context.Background(), project, "", domain.PeriodAllTime, 5)
		assert.True(t, errors.Is(err, apperrors.ErrInvalidInput))
	})
}
