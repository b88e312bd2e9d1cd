package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/errorkid/examquizbot.git/internal/models"
	mock_repository "github.com/errorkid/examquizbot.git/internal/repository/mock"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStatsMock(ctrl *gomock.Controller, setupMock func(*mock_repository.MockQueryI)) *StatsR {
	db := mock_repository.NewMockQueryI(ctrl)
	if setupMock != nil {
		setupMock(db)
	}
	return &StatsR{db: db}
}

func TestStatsR_RecordAnswer(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		correct bool
		f       func(*mock_repository.MockQueryI)
		wantErr bool
	}{
		{
			name:    "correct increments the correct column",
			correct: true,
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().ExecContext(gomock.Any(), gomock.Any(),
					int64(456), "BSEB", "Math", 1, 0).Return(nil, nil)
			},
		},
		{
			name:    "wrong increments the wrong column",
			correct: false,
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().ExecContext(gomock.Any(), gomock.Any(),
					int64(456), "BSEB", "Math", 0, 1).Return(nil, nil)
			},
		},
		{
			name:    "failed exec",
			correct: true,
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().ExecContext(gomock.Any(), gomock.Any(),
					int64(456), "BSEB", "Math", 1, 0).Return(nil, errors.New("exec error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			statsR := newStatsMock(ctrl, tt.f)

			err := statsR.RecordAnswer(context.Background(), 456, "BSEB", "Math", tt.correct)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestStatsR_Stats(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	statsR := newStatsMock(ctrl, func(mqi *mock_repository.MockQueryI) {
		mqi.EXPECT().SelectContext(gomock.Any(), gomock.Any(), gomock.Any(), int64(456)).
			DoAndReturn(func(_ context.Context, dest interface{}, _ string, _ ...interface{}) error {
				stats := dest.(*[]models.SubjectStats)
				*stats = []models.SubjectStats{
					{Category: "BSEB", Subject: "Math", Total: 10, Correct: 8, Wrong: 2},
				}
				return nil
			})
	})

	stats, err := statsR.Stats(context.Background(), 456)
	require.NoError(t, err)
	require.Len(t, stats, 1)
	assert.Equal(t, 8, stats[0].Correct)
}
