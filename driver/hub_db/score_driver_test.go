package hub_db

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRank(t *testing.T) {
	tests := []struct {
		name  string
		above int64
		want  int64
	}{
		{name: "top score ranks first", above: 0, want: 1},
		{name: "three players ahead", above: 3, want: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock, repo := newMockRepo(t)
			projectID := uuid.New()

			mock.ExpectQuery(`SELECT COUNT\(\*\) FROM \(`).
				WithArgs(projectID, "quiz", int64(90)).
				WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(tt.above))

			rank, err := repo.Rank(context.Background(), projectID, "quiz", 90)
			require.NoError(t, err)
			assert.Equal(t, tt.want, rank)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
