package service

import (
	"context"
	"testing"

	"github.com/errorkid/examquizbot.git/internal/models"
	mock_service "github.com/errorkid/examquizbot.git/internal/service/mock"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newContentServiceMock(ctrl *gomock.Controller, setupMock func(*mock_service.MockRepositoryI)) *ContentS {
	repo := mock_service.NewMockRepositoryI(ctrl)
	if setupMock != nil {
		setupMock(repo)
	}
	return NewContentService(repo, zap.NewNop())
}

func questionPool(n int) []models.Question {
	pool := make([]models.Question, 0, n)
	for i := 0; i < n; i++ {
		pool = append(pool, models.Question{
			Text:         string(rune('a' + i)),
			Options:      []string{"1", "2"},
			CorrectIndex: 0,
		})
	}
	return pool
}

func TestContentS_SampleQuestions(t *testing.T) {
	t.Parallel()

	type args struct {
		chapters []string
		count    int
	}

	tests := []struct {
		name    string
		args    args
		f       func(*mock_service.MockRepositoryI)
		wantLen int
		wantErr bool
	}{
		{
			name: "sample is capped by count",
			args: args{chapters: []string{"Algebra"}, count: 3},
			f: func(mr *mock_service.MockRepositoryI) {
				mr.EXPECT().QuestionsByChapters(gomock.Any(), "BSEB", "Math", []string{"Algebra"}).
					Return(questionPool(10), nil)
			},
			wantLen: 3,
		},
		{
			name: "over-asking returns the whole pool",
			args: args{chapters: []string{"Algebra"}, count: 120},
			f: func(mr *mock_service.MockRepositoryI) {
				mr.EXPECT().QuestionsByChapters(gomock.Any(), "BSEB", "Math", []string{"Algebra"}).
					Return(questionPool(5), nil)
			},
			wantLen: 5,
		},
		{
			name: "empty pool yields nothing",
			args: args{chapters: []string{"Empty"}, count: 15},
			f: func(mr *mock_service.MockRepositoryI) {
				mr.EXPECT().QuestionsByChapters(gomock.Any(), "BSEB", "Math", []string{"Empty"}).
					Return(nil, nil)
			},
			wantLen: 0,
		},
		{
			name: "repository error propagates",
			args: args{chapters: []string{"Algebra"}, count: 15},
			f: func(mr *mock_service.MockRepositoryI) {
				mr.EXPECT().QuestionsByChapters(gomock.Any(), "BSEB", "Math", []string{"Algebra"}).
					Return(nil, assert.AnError)
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

			s := newContentServiceMock(ctrl, tt.f)

			got, err := s.SampleQuestions(context.Background(), "BSEB", "Math", tt.args.chapters, tt.args.count)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			require.Len(t, got, tt.wantLen)

			// without replacement: no question may repeat
			seen := make(map[string]bool, len(got))
			for _, q := range got {
				assert.False(t, seen[q.Text], "question %q sampled twice", q.Text)
				seen[q.Text] = true
			}
		})
	}
}

func TestContentS_ImportQuestions(t *testing.T) {
	t.Parallel()

	t.Run("malformed lines are skipped, good ones stored", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		text := "What is 2+2? | 3 | 4 | 1\n" +
			"missing parts | 1\n" +
			"\n" +
			"Capital of India? | Delhi | Mumbai | Patna | 0\n" +
			"bad index | a | b | twelve\n" +
			"Out of range | a | b | 7\n" +
			"Speed of light? | 3e8 m/s | 3e6 m/s | 0"

		s := newContentServiceMock(ctrl, func(mr *mock_service.MockRepositoryI) {
			mr.EXPECT().AddQuestion(gomock.Any(), "BSEB", "Physics", "Units", models.Question{
				Text: "What is 2+2?", Options: []string{"3", "4"}, CorrectIndex: 1,
			}).Return(nil)
			mr.EXPECT().AddQuestion(gomock.Any(), "BSEB", "Physics", "Units", models.Question{
				Text: "Capital of India?", Options: []string{"Delhi", "Mumbai", "Patna"}, CorrectIndex: 0,
			}).Return(nil)
			mr.EXPECT().AddQuestion(gomock.Any(), "BSEB", "Physics", "Units", models.Question{
				Text: "Speed of light?", Options: []string{"3e8 m/s", "3e6 m/s"}, CorrectIndex: 0,
			}).Return(nil)
		})

		imported, err := s.ImportQuestions(context.Background(), "BSEB", "Physics", "Units", text)
		require.NoError(t, err)
		assert.Equal(t, 3, imported)
	})

	t.Run("storage failure stops the import with the partial count", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		text := "Q1? | a | b | 0\nQ2? | a | b | 1"

		s := newContentServiceMock(ctrl, func(mr *mock_service.MockRepositoryI) {
			mr.EXPECT().AddQuestion(gomock.Any(), "BSEB", "Physics", "Units", gomock.Any()).Return(nil)
			mr.EXPECT().AddQuestion(gomock.Any(), "BSEB", "Physics", "Units", gomock.Any()).Return(assert.AnError)
		})

		imported, err := s.ImportQuestions(context.Background(), "BSEB", "Physics", "Units", text)
		require.Error(t, err)
		assert.Equal(t, 1, imported)
	})
}

func TestContentS_CreateChapter(t *testing.T) {
	t.Parallel()

	t.Run("name is trimmed", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		s := newContentServiceMock(ctrl, func(mr *mock_service.MockRepositoryI) {
			mr.EXPECT().CreateChapter(gomock.Any(), "BSEB", "Math", "Algebra").Return(nil)
		})

		require.NoError(t, s.CreateChapter(context.Background(), "BSEB", "Math", "  Algebra  "))
	})

	t.Run("blank name is rejected before the repository", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		s := newContentServiceMock(ctrl, nil)

		require.Error(t, s.CreateChapter(context.Background(), "BSEB", "Math", "   "))
	})
}

func TestContentS_AddQuestion(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := newContentServiceMock(ctrl, nil)

	err := s.AddQuestion(context.Background(), "BSEB", "Math", "Algebra", models.Question{
		Text:         "only one option",
		Options:      []string{"alone"},
		CorrectIndex: 0,
	})
	require.Error(t, err)

	err = s.AddQuestion(context.Background(), "BSEB", "Math", "Algebra", models.Question{
		Text:         "index out of range",
		Options:      []string{"a", "b"},
		CorrectIndex: 5,
	})
	require.Error(t, err)
}
