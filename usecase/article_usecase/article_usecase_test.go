package article_usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"gameshub/domain"
	"gameshub/mocks"
	apperrors "gameshub/utils/errors"
)

func TestSearch(t *testing.T) {
	project := &domain.Project{ID: uuid.New()}
	page := domain.NewPage(1, 10)

	tests := []struct {
		name      string
		query     string
		mockSetup func(s *mocks.MockSearchPort)
		wantTotal int64
		wantErr   error
	}{
		{
			name:  "trimmed query",
			query: "  election  ",
			mockSetup: func(s *mocks.MockSearchPort) {
				s.EXPECT().SearchArticles(gomock.Any(), project, "election", page).
					Return([]domain.SearchHit{{ArticleID: "a1"}}, int64(7), nil)
			},
			wantTotal: 7,
		},
		{
			name:      "empty query",
			query:     "   ",
			mockSetup: func(s *mocks.MockSearchPort) {},
			wantErr:   apperrors.ErrInvalidInput,
		},
		{
			name:      "query too long",
			query:     strings.Repeat("a", 201),
			mockSetup: func(s *mocks.MockSearchPort) {},
			wantErr:   apperrors.ErrInvalidInput,
		},
		{
			name:  "search backend down",
			query: "x",
			mockSetup: func(s *mocks.MockSearchPort) {
				s.EXPECT().SearchArticles(gomock.Any(), project, "x", page).Return(nil, int64(0), apperrors.ErrExternalServiceUnavailable)
			},
			wantErr: apperrors.ErrExternalServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			search := mocks.NewMockSearchPort(ctrl)
			tt.mockSetup(search)
			u := NewArticleUsecase(mocks.NewMockArticlePort(ctrl), search)

			result, err := u.Search(context.Background(), project, tt.query, page)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantTotal, result.Total)
			assert.Len(t, result.Items, 1)
		})
	}
}

func TestListLatest(t *testing.T) {
	ctrl := gomock.NewController(t)
	articles := mocks.NewMockArticlePort(ctrl)
	u := NewArticleUsecase(articles, mocks.NewMockSearchPort(ctrl))
	project := &domain.Project{ID: uuid.New()}
	page := domain.NewPage(3, 5)

	articles.EXPECT().ListProjectArticles(gomock.Any(), project.ID, page).Return(nil, int64(11), nil)

	result, err := u.ListLatest(context.Background(), project, page)
	require.NoError(t, err)
	assert.Empty(t, result.Items)
	assert.NotNil(t, result.Items)
	assert.Equal(t, 3, result.Page)
	assert.Equal(t, int64(11), result.Total)
}
