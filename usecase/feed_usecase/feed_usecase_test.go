package feed_usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"gameshub/config"
	"gameshub/domain"
	"gameshub/mocks"
	apperrors "gameshub/utils/errors"
	"gameshub/utils/security"
)

type fixture struct {
	feeds     *mocks.MockFeedPort
	articles  *mocks.MockArticlePort
	projects  *mocks.MockProjectPort
	scheduler *mocks.MockFeedSchedulerPort
	uc        *FeedUsecase
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	f := &fixture{
		feeds:     mocks.NewMockFeedPort(ctrl),
		articles:  mocks.NewMockArticlePort(ctrl),
		projects:  mocks.NewMockProjectPort(ctrl),
		scheduler: mocks.NewMockFeedSchedulerPort(ctrl),
	}
	f.uc = NewFeedUsecase(f.feeds, f.articles, f.projects, f.scheduler, security.NewURLValidator(), config.SchedulerConfig{
		DefaultInterval: 30 * time.Minute,
		MinInterval:     5 * time.Minute,
		MaxInterval:     24 * time.Hour,
	})
	return f
}

func intPtr(v int) *int { return &v }

func TestCreateFeed(t *testing.T) {
	projectID := uuid.New()

	tests := []struct {
		name         string
		input        CreateFeedInput
		mockSetup    func(f *fixture)
		wantErr      error
		wantInterval int
	}{
		{
			name:  "enabled feed is scheduled with the default interval",
			input: CreateFeedInput{URL: "https://news.example.com/rss", Title: "News", Enabled: true},
			mockSetup: func(f *fixture) {
				f.projects.EXPECT().GetProject(gomock.Any(), projectID).Return(&domain.Project{ID: projectID}, nil)
				f.feeds.EXPECT().CreateFeed(gomock.Any(), gomock.Any()).Return(nil)
				f.scheduler.EXPECT().Schedule(gomock.Any()).Return(nil)
			},
			wantInterval: 30,
		},
		{
			name:  "disabled feed is not scheduled",
			input: CreateFeedInput{URL: "https://news.example.com/rss", IntervalMinutes: intPtr(60)},
			mockSetup: func(f *fixture) {
				f.projects.EXPECT().GetProject(gomock.Any(), projectID).Return(&domain.Project{ID: projectID}, nil)
				f.feeds.EXPECT().CreateFeed(gomock.Any(), gomock.Any()).Return(nil)
				f.scheduler.EXPECT().Unschedule(gomock.Any())
			},
			wantInterval: 60,
		},
		{
			name:  "private address is refused",
			input: CreateFeedInput{URL: "http://169.254.169.254/latest/meta-data"},
			mockSetup: func(f *fixture) {
				f.projects.EXPECT().GetProject(gomock.Any(), projectID).Return(&domain.Project{ID: projectID}, nil)
			},
			wantErr: apperrors.ErrInvalidInput,
		},
		{
			name:  "non http scheme",
			input: CreateFeedInput{URL: "file:///etc/passwd"},
			mockSetup: func(f *fixture) {
				f.projects.EXPECT().GetProject(gomock.Any(), projectID).Return(&domain.Project{ID: projectID}, nil)
			},
			wantErr: apperrors.ErrInvalidInput,
		},
		{
			name:  "interval below minimum",
			input: CreateFeedInput{URL: "https://news.example.com/rss", IntervalMinutes: intPtr(1)},
			mockSetup: func(f *fixture) {
				f.projects.EXPECT().GetProject(gomock.Any(), projectID).Return(&domain.Project{ID: projectID}, nil)
			},
			wantErr: apperrors.ErrInvalidInput,
		},
		{
			name: "games enabled without types",
			input: CreateFeedInput{URL: "https://news.example.com/rss",
				GameSettings: domain.GameSettings{Enabled: true}},
			mockSetup: func(f *fixture) {
				f.projects.EXPECT().GetProject(gomock.Any(), projectID).Return(&domain.Project{ID: projectID}, nil)
			},
			wantErr: apperrors.ErrInvalidInput,
		},
		{
			name:  "unknown project",
			input: CreateFeedInput{URL: "https://news.example.com/rss"},
			mockSetup: func(f *fixture) {
				f.projects.EXPECT().GetProject(gomock.Any(), projectID).Return(nil, apperrors.ErrNotFound)
			},
			wantErr: apperrors.ErrNotFound,
		},
		{
			name:  "duplicate url",
			input: CreateFeedInput{URL: "https://news.example.com/rss"},
			mockSetup: func(f *fixture) {
				f.projects.EXPECT().GetProject(gomock.Any(), projectID).Return(&domain.Project{ID: projectID}, nil)
				f.feeds.EXPECT().CreateFeed(gomock.Any(), gomock.Any()).Return(apperrors.ErrConflict)
			},
			wantErr: apperrors.ErrConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.mockSetup(f)

			feed, err := f.uc.CreateFeed(context.Background(), projectID, tt.input)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantInterval, feed.IntervalMinutes)
			assert.Equal(t, "en", feed.GameSettings.Language)
		})
	}
}

func TestGetFeed_OtherProject(t *testing.T) {
	f := newFixture(t)
	feedID := uuid.New()
	f.feeds.EXPECT().GetFeed(gomock.Any(), feedID).Return(&domain.Feed{ID: feedID, ProjectID: uuid.New()}, nil)

	_, err := f.uc.GetFeed(context.Background(), uuid.New(), feedID)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}

func TestUpdateFeed_ReschedulesOnIntervalChange(t *testing.T) {
	f := newFixture(t)
	projectID, feedID := uuid.New(), uuid.New()
	f.feeds.EXPECT().GetFeed(gomock.Any(), feedID).
		Return(&domain.Feed{ID: feedID, ProjectID: projectID, Enabled: true, IntervalMinutes: 30}, nil)
	f.feeds.EXPECT().UpdateFeed(gomock.Any(), gomock.Any()).Return(nil)
	f.scheduler.EXPECT().Schedule(gomock.Any()).DoAndReturn(func(feed *domain.Feed) error {
		assert.Equal(t, 15, feed.IntervalMinutes)
		return nil
	})

	feed, err := f.uc.UpdateFeed(context.Background(), projectID, feedID, domain.FeedUpdate{IntervalMinutes: intPtr(15)})
	require.NoError(t, err)
	assert.Equal(t, 15, feed.IntervalMinutes)
}

func TestStartStopFeed(t *testing.T) {
	projectID, feedID := uuid.New(), uuid.New()

	t.Run("start enables and schedules", func(t *testing.T) {
		f := newFixture(t)
		f.feeds.EXPECT().GetFeed(gomock.Any(), feedID).Return(&domain.Feed{ID: feedID, ProjectID: projectID}, nil)
		f.feeds.EXPECT().UpdateFeed(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, feed *domain.Feed) error {
			assert.True(t, feed.Enabled)
			return nil
		})
		f.scheduler.EXPECT().Schedule(gomock.Any()).Return(nil)

		feed, err := f.uc.StartFeed(context.Background(), projectID, feedID)
		require.NoError(t, err)
		assert.True(t, feed.Enabled)
	})

	t.Run("stop disables and unschedules", func(t *testing.T) {
		f := newFixture(t)
		f.feeds.EXPECT().GetFeed(gomock.Any(), feedID).Return(&domain.Feed{ID: feedID, ProjectID: projectID, Enabled: true}, nil)
		f.feeds.EXPECT().UpdateFeed(gomock.Any(), gomock.Any()).Return(nil)
		f.scheduler.EXPECT().Unschedule(feedID)

		feed, err := f.uc.StopFeed(context.Background(), projectID, feedID)
		require.NoError(t, err)
		assert.False(t, feed.Enabled)
	})

	t.Run("start on an enabled feed only re-schedules", func(t *testing.T) {
		f := newFixture(t)
		f.feeds.EXPECT().GetFeed(gomock.Any(), feedID).Return(&domain.Feed{ID: feedID, ProjectID: projectID, Enabled: true}, nil)
		f.scheduler.EXPECT().Schedule(gomock.Any()).Return(nil)

		_, err := f.uc.StartFeed(context.Background(), projectID, feedID)
		require.NoError(t, err)
	})
}

func TestDeleteFeed_Unschedules(t *testing.T) {
	f := newFixture(t)
	projectID, feedID := uuid.New(), uuid.New()
	f.feeds.EXPECT().GetFeed(gomock.Any(), feedID).Return(&domain.Feed{ID: feedID, ProjectID: projectID}, nil)
	f.feeds.EXPECT().DeleteFeed(gomock.Any(), feedID).Return(nil)
	f.scheduler.EXPECT().Unschedule(feedID)

	require.NoError(t, f.uc.DeleteFeed(context.Background(), projectID, feedID))
}

func TestRefreshFeed(t *testing.T) {
	f := newFixture(t)
	projectID, feedID := uuid.New(), uuid.New()
	f.feeds.EXPECT().GetFeed(gomock.Any(), feedID).Return(&domain.Feed{ID: feedID, ProjectID: projectID}, nil)
	f.scheduler.EXPECT().Refresh(gomock.Any(), feedID).Return(nil)

	_, err := f.uc.RefreshFeed(context.Background(), projectID, feedID)
	require.NoError(t, err)
}
