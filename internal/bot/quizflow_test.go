package bot

import (
	"testing"
	"time"

	mock_bot "github.com/errorkid/examquizbot.git/internal/bot/mock"
	"github.com/errorkid/examquizbot.git/internal/models"
	"github.com/errorkid/examquizbot.git/internal/quiz"
	"github.com/errorkid/examquizbot.git/internal/storage/cache"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeMenuRenderer struct {
	rendered chan int64
}

func (f *fakeMenuRenderer) SendMainMenu(chatID, userID int64) {
	f.rendered <- userID
}

func newQuizTMock(ctrl *gomock.Controller, setupMock func(*mock_bot.MockServiceI)) (*QuizT, *mock_bot.MockBot, *fakeMenuRenderer) {
	mockService := mock_bot.NewMockServiceI(ctrl)
	mockBot := &mock_bot.MockBot{}
	menu := &fakeMenuRenderer{rendered: make(chan int64, 1)}

	if setupMock != nil {
		setupMock(mockService)
	}

	quizT := NewQuizTAPI(mockBot, cache.NewCache(), mockService)
	quizT.engine = quiz.NewEngine(quizT, menu, mockService, zap.NewNop())
	return quizT, mockBot, menu
}

func TestQuizT_launchClearsSelectionBeforeResolving(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	question := models.Question{
		Text:         "What is 2+2?",
		Options:      []string{"3", "4", "5"},
		CorrectIndex: 1,
	}

	quizT, mb, menu := newQuizTMock(ctrl, func(ms *mock_bot.MockServiceI) {
		ms.EXPECT().SampleQuestions(gomock.Any(), "BSEB", "Math", []string{"Algebra"}, 15).
			Return([]models.Question{question}, nil)
		ms.EXPECT().RecordAnswer(gomock.Any(), int64(456), "BSEB", "Math",
			models.ModeNormal, gomock.Any(), true).Return(nil)
	})

	quizT.cache.Update(456, func(s *models.Session) {
		s.Category = "BSEB"
		s.Subject = "Math"
		s.FinalChapters = []string{"Algebra"}
		s.Selected["Algebra"] = true
		s.TimeLimit = 15
		s.Count = 15
	})

	quizT.launch(menuQuery(456))

	// the selection is gone before the run even starts
	session := quizT.cache.Session(456)
	assert.Empty(t, session.FinalChapters)
	assert.Empty(t, session.Selected)
	assert.Zero(t, session.TimeLimit)
	assert.Zero(t, session.Count)
	assert.Equal(t, models.ModeNormal, session.Mode)

	// wait for the engine to register the outstanding poll, then answer it
	deadline := time.Now().Add(2 * time.Second)
	for quizT.engine.Outstanding() == 0 {
		if time.Now().After(deadline) {
			t.Fatal("poll never registered")
		}
		time.Sleep(10 * time.Millisecond)
	}

	quizT.handlePollAnswer(&tgbotapi.PollAnswer{
		PollID:    "poll-1",
		User:      tgbotapi.User{ID: 456},
		OptionIDs: []int{1},
	})

	select {
	case userID := <-menu.rendered:
		assert.Equal(t, int64(456), userID)
	case <-time.After(3 * time.Second):
		t.Fatal("run never completed")
	}

	assert.Equal(t, 0, quizT.engine.Outstanding())

	require.NotEmpty(t, mb.SentMessages)
	edit := mb.SentMessages[0].(tgbotapi.EditMessageTextConfig)
	assert.Contains(t, edit.Text, "Starting Quiz")
	assert.Contains(t, edit.Text, "Qs: 1")
}

func TestQuizT_launchReviewUsesLedger(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	quizT, mb, _ := newQuizTMock(ctrl, func(ms *mock_bot.MockServiceI) {
		ms.EXPECT().ReviewQuestions(gomock.Any(), int64(456), "NEET", "Biology").Return(nil, nil)
	})

	quizT.cache.Update(456, func(s *models.Session) {
		s.Mode = models.ModeReview
		s.Category = "NEET"
		s.Subject = "Biology"
	})

	quizT.launch(menuQuery(456))

	require.Len(t, mb.SentMessages, 1)
	edit := mb.SentMessages[0].(tgbotapi.EditMessageTextConfig)
	assert.Equal(t, "❌ No questions found.", edit.Text)
}

func TestQuizT_launchResolveError(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	quizT, mb, _ := newQuizTMock(ctrl, func(ms *mock_bot.MockServiceI) {
		ms.EXPECT().SampleQuestions(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, assert.AnError)
	})

	quizT.launch(menuQuery(456))

	require.Len(t, mb.SentMessages, 1)
	edit := mb.SentMessages[0].(tgbotapi.EditMessageTextConfig)
	assert.Contains(t, edit.Text, "Failed to load questions")
}

func TestQuizT_handleStop(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	quizT, mb, _ := newQuizTMock(ctrl, nil)

	quizT.handleStop(&tgbotapi.Message{
		Chat: &tgbotapi.Chat{ID: 123},
		From: &tgbotapi.User{ID: 456},
	})

	require.Len(t, mb.SentMessages, 1)
	msg := mb.SentMessages[0].(tgbotapi.MessageConfig)
	assert.Contains(t, msg.Text, "Stopping")
}

func TestQuizT_handlePollAnswerIgnoresRetractions(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	quizT, mb, _ := newQuizTMock(ctrl, nil)

	quizT.handlePollAnswer(&tgbotapi.PollAnswer{
		PollID:    "poll-1",
		User:      tgbotapi.User{ID: 456},
		OptionIDs: nil,
	})

	assert.Empty(t, mb.SentMessages)
}

func TestQuizT_SendQuizPoll(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	quizT, mb, _ := newQuizTMock(ctrl, nil)

	pollID, err := quizT.SendQuizPoll(123, "[1/5] What is 2+2?", []string{"3", "4"}, 1, 30)
	require.NoError(t, err)
	assert.Equal(t, "poll-1", pollID)

	require.Len(t, mb.SentMessages, 1)
	poll := mb.SentMessages[0].(tgbotapi.SendPollConfig)
	assert.Equal(t, "quiz", poll.Type)
	assert.Equal(t, int64(1), poll.CorrectOptionID)
	assert.Equal(t, 30, poll.OpenPeriod)
	assert.False(t, poll.IsAnonymous)
	assert.Equal(t, []string{"3", "4"}, poll.Options)
}
