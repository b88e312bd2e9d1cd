package bot

import (
	"testing"

	mock_bot "github.com/errorkid/examquizbot.git/internal/bot/mock"
	"github.com/errorkid/examquizbot.git/internal/models"
	"github.com/errorkid/examquizbot.git/internal/storage/cache"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAdminTMock(ctrl *gomock.Controller, setupMock func(*mock_bot.MockServiceI)) (*AdminT, *mock_bot.MockBot) {
	mockService := mock_bot.NewMockServiceI(ctrl)
	mockBot := &mock_bot.MockBot{}

	if setupMock != nil {
		setupMock(mockService)
	}

	c := cache.NewCache()
	quizT := NewQuizTAPI(mockBot, c, mockService)
	return NewAdminTAPI(mockBot, c, mockService, quizT), mockBot
}

func adminMessage(text string) *tgbotapi.Message {
	return &tgbotapi.Message{
		Chat: &tgbotapi.Chat{ID: 123},
		From: &tgbotapi.User{ID: 456},
		Text: text,
	}
}

func TestAdminT_handleActionDeniesNonAdmins(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	adminT, mb := newAdminTMock(ctrl, func(ms *mock_bot.MockServiceI) {
		ms.EXPECT().IsAdmin(gomock.Any(), int64(456)).Return(false)
	})

	adminT.handleAction(menuQuery(456), Action{Kind: ActAdminMenu})

	require.Len(t, mb.Requests, 1)
	alert := mb.Requests[0].(tgbotapi.CallbackConfig)
	assert.Equal(t, "⛔ Access Denied!", alert.Text)
	assert.Empty(t, mb.SentMessages)
}

func TestAdminT_panelHidesBroadcastFromPlainAdmins(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	adminT, mb := newAdminTMock(ctrl, func(ms *mock_bot.MockServiceI) {
		ms.EXPECT().IsAdmin(gomock.Any(), int64(456)).Return(true)
		ms.EXPECT().Categories(gomock.Any()).Return([]string{"BSEB"}, nil)
		ms.EXPECT().IsOwner(int64(456)).Return(false)
	})

	adminT.handleAction(menuQuery(456), Action{Kind: ActAdminMenu})

	require.Len(t, mb.SentMessages, 1)
	edit := mb.SentMessages[0].(tgbotapi.EditMessageTextConfig)
	assert.Contains(t, edit.Text, "Admin Panel")
	for _, row := range edit.ReplyMarkup.InlineKeyboard {
		for _, button := range row {
			assert.NotEqual(t, "📣 Broadcast", button.Text)
		}
	}
}

func TestAdminT_panelShowsLiveUsers(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	adminT, mb := newAdminTMock(ctrl, func(ms *mock_bot.MockServiceI) {
		ms.EXPECT().IsAdmin(gomock.Any(), int64(456)).Return(true)
		ms.EXPECT().Categories(gomock.Any()).Return([]string{"BSEB"}, nil)
		ms.EXPECT().IsOwner(int64(456)).Return(false)
	})

	adminT.cache.Touch(456)
	adminT.cache.Touch(789)

	adminT.handleAction(menuQuery(456), Action{Kind: ActAdminMenu})

	require.Len(t, mb.SentMessages, 1)
	edit := mb.SentMessages[0].(tgbotapi.EditMessageTextConfig)
	assert.Contains(t, edit.Text, "Live Users: 2")
}

func TestAdminT_chapterSelectionActivatesIngest(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	adminT, mb := newAdminTMock(ctrl, func(ms *mock_bot.MockServiceI) {
		ms.EXPECT().IsAdmin(gomock.Any(), int64(456)).Return(true).AnyTimes()
	})

	adminT.cache.Update(456, func(s *models.Session) {
		s.AdminCategory = "BSEB"
		s.AdminSubject = "Math"
	})

	adminT.handleAction(menuQuery(456), Action{Kind: ActAdminChapter, Chapter: "Algebra"})

	session := adminT.cache.Session(456)
	assert.True(t, session.IngestActive)
	assert.Equal(t, "Algebra", session.AdminChapter)

	require.Len(t, mb.SentMessages, 1)
	edit := mb.SentMessages[0].(tgbotapi.EditMessageTextConfig)
	assert.Contains(t, edit.Text, "BSEB > Algebra")
}

func TestAdminT_handlePollUpload(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	adminT, mb := newAdminTMock(ctrl, func(ms *mock_bot.MockServiceI) {
		ms.EXPECT().IsAdmin(gomock.Any(), int64(456)).Return(true)
		ms.EXPECT().AddQuestion(gomock.Any(), "BSEB", "Math", "Algebra", models.Question{
			Text:         "What is 2+2?",
			Options:      []string{"3", "4"},
			CorrectIndex: 1,
		}).Return(nil)
	})

	adminT.cache.Update(456, func(s *models.Session) {
		s.AdminCategory = "BSEB"
		s.AdminSubject = "Math"
		s.AdminChapter = "Algebra"
		s.IngestActive = true
	})

	message := adminMessage("")
	message.Poll = &tgbotapi.Poll{
		Question: "What is 2+2?",
		Options: []tgbotapi.PollOption{
			{Text: "3"},
			{Text: "4"},
		},
		CorrectOptionID: 1,
	}

	adminT.handlePollUpload(message)

	require.Len(t, mb.SentMessages, 1)
	msg := mb.SentMessages[0].(tgbotapi.MessageConfig)
	assert.Equal(t, "✅ Saved!", msg.Text)
}

func TestAdminT_handlePollUploadIgnoredWithoutIngest(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	adminT, mb := newAdminTMock(ctrl, nil)

	message := adminMessage("")
	message.Poll = &tgbotapi.Poll{Question: "stray poll"}

	adminT.handlePollUpload(message)

	assert.Empty(t, mb.SentMessages)
}

func TestAdminT_handleTextInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		text     string
		session  func(*models.Session)
		f        func(*mock_bot.MockServiceI)
		handled  bool
		reply    string
		postCond func(*testing.T, models.Session)
	}{
		{
			name: "chapter name creates chapter and clears flag",
			text: "  Trigonometry ",
			session: func(s *models.Session) {
				s.AwaitingChapterName = true
				s.AdminCategory = "BSEB"
				s.AdminSubject = "Math"
			},
			f: func(ms *mock_bot.MockServiceI) {
				ms.EXPECT().IsOwner(int64(456)).Return(false).AnyTimes()
				ms.EXPECT().IsAdmin(gomock.Any(), int64(456)).Return(true)
				ms.EXPECT().CreateChapter(gomock.Any(), "BSEB", "Math", "Trigonometry").Return(nil)
			},
			handled:  true,
			reply:    "✅ Chapter 'Trigonometry' added.",
			postCond: func(t *testing.T, s models.Session) { assert.False(t, s.AwaitingChapterName) },
		},
		{
			name: "owner grants admin by id",
			text: "789",
			session: func(s *models.Session) {
				s.AwaitingAdminID = true
			},
			f: func(ms *mock_bot.MockServiceI) {
				ms.EXPECT().IsOwner(int64(456)).Return(true)
				ms.EXPECT().AddAdmin(gomock.Any(), int64(789)).Return(nil)
			},
			handled:  true,
			reply:    "✅ User 789 is now Admin.",
			postCond: func(t *testing.T, s models.Session) { assert.False(t, s.AwaitingAdminID) },
		},
		{
			name: "garbage admin id is rejected",
			text: "not-a-number",
			session: func(s *models.Session) {
				s.AwaitingAdminID = true
			},
			f: func(ms *mock_bot.MockServiceI) {
				ms.EXPECT().IsOwner(int64(456)).Return(true)
			},
			handled:  true,
			reply:    "Invalid ID.",
			postCond: func(t *testing.T, s models.Session) { assert.False(t, s.AwaitingAdminID) },
		},
		{
			name: "interval input updates the target group",
			text: "900",
			session: func(s *models.Session) {
				s.AwaitingInterval = true
				s.TargetGroup = -100555
			},
			f: func(ms *mock_bot.MockServiceI) {
				ms.EXPECT().IsOwner(int64(456)).Return(false).AnyTimes()
				ms.EXPECT().IsAdmin(gomock.Any(), int64(456)).Return(true)
				ms.EXPECT().SetInterval(gomock.Any(), int64(-100555), 900).Return(nil)
			},
			handled:  true,
			reply:    "✅ Interval: 900s.",
			postCond: func(t *testing.T, s models.Session) { assert.False(t, s.AwaitingInterval) },
		},
		{
			name: "bulk import lines while ingest is active",
			text: "What is 2+2? | 3 | 4 | 1",
			session: func(s *models.Session) {
				s.IngestActive = true
				s.AdminCategory = "BSEB"
				s.AdminSubject = "Math"
				s.AdminChapter = "Algebra"
			},
			f: func(ms *mock_bot.MockServiceI) {
				ms.EXPECT().IsOwner(int64(456)).Return(false).AnyTimes()
				ms.EXPECT().IsAdmin(gomock.Any(), int64(456)).Return(true)
				ms.EXPECT().ImportQuestions(gomock.Any(), "BSEB", "Math", "Algebra",
					"What is 2+2? | 3 | 4 | 1").Return(1, nil)
			},
			handled: true,
			reply:   "✅ Imported 1 questions.",
		},
		{
			name:    "plain text with nothing pending is not consumed",
			text:    "hello there",
			session: func(s *models.Session) {},
			f: func(ms *mock_bot.MockServiceI) {
				ms.EXPECT().IsOwner(int64(456)).Return(false).AnyTimes()
			},
			handled: false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			adminT, mb := newAdminTMock(ctrl, tt.f)
			adminT.cache.Update(456, tt.session)

			handled := adminT.handleTextInput(adminMessage(tt.text))
			assert.Equal(t, tt.handled, handled)

			if tt.reply != "" {
				require.Len(t, mb.SentMessages, 1)
				msg := mb.SentMessages[0].(tgbotapi.MessageConfig)
				assert.Equal(t, tt.reply, msg.Text)
			}

			if tt.postCond != nil {
				tt.postCond(t, adminT.cache.Session(456))
			}
		})
	}
}

func TestAdminT_broadcastReportsDeliveries(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	adminT, mb := newAdminTMock(ctrl, func(ms *mock_bot.MockServiceI) {
		ms.EXPECT().IsOwner(int64(456)).Return(true)
		ms.EXPECT().Groups(gomock.Any()).Return([]models.GroupSettings{
			{ChatID: -100111},
			{ChatID: -100222},
		}, nil)
	})

	adminT.cache.Update(456, func(s *models.Session) {
		s.AwaitingBroadcast = true
	})

	handled := adminT.handleTextInput(adminMessage("Exam tomorrow at 10am!"))
	assert.True(t, handled)

	// one message per group, plus the delivery report
	require.Len(t, mb.SentMessages, 3)
	first := mb.SentMessages[0].(tgbotapi.MessageConfig)
	assert.Equal(t, int64(-100111), first.ChatID)
	assert.Equal(t, "Exam tomorrow at 10am!", first.Text)
	report := mb.SentMessages[2].(tgbotapi.MessageConfig)
	assert.Equal(t, "📣 Broadcast sent to 2 groups.", report.Text)

	session := adminT.cache.Session(456)
	assert.False(t, session.AwaitingBroadcast)
}

func TestAdminT_groupCommands(t *testing.T) {
	t.Parallel()

	t.Run("register upserts the chat", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		adminT, mb := newAdminTMock(ctrl, func(ms *mock_bot.MockServiceI) {
			ms.EXPECT().Register(gomock.Any(), int64(123), "Exam Prep").Return(nil)
		})

		message := adminMessage("/register")
		message.Chat.Title = "Exam Prep"
		adminT.handleRegister(message)

		require.Len(t, mb.SentMessages, 1)
		msg := mb.SentMessages[0].(tgbotapi.MessageConfig)
		assert.Equal(t, "✅ Registered!", msg.Text)
	})

	t.Run("start in unregistered chat points at /register", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		adminT, mb := newAdminTMock(ctrl, func(ms *mock_bot.MockServiceI) {
			ms.EXPECT().Group(gomock.Any(), int64(123)).Return(models.GroupSettings{}, assert.AnError)
		})

		adminT.handleStartGroupQuiz(adminMessage("/start_quiz"))

		require.Len(t, mb.SentMessages, 1)
		msg := mb.SentMessages[0].(tgbotapi.MessageConfig)
		assert.Contains(t, msg.Text, "/register")
	})

	t.Run("start with power off refuses", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		adminT, mb := newAdminTMock(ctrl, func(ms *mock_bot.MockServiceI) {
			ms.EXPECT().Group(gomock.Any(), int64(123)).Return(models.GroupSettings{
				ChatID: 123, Active: false, IntervalSeconds: 600,
			}, nil)
		})

		adminT.handleStartGroupQuiz(adminMessage("/start_quiz"))

		require.Len(t, mb.SentMessages, 1)
		msg := mb.SentMessages[0].(tgbotapi.MessageConfig)
		assert.Contains(t, msg.Text, "OFF")
	})

	t.Run("second start reports already running", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		adminT, mb := newAdminTMock(ctrl, func(ms *mock_bot.MockServiceI) {
			ms.EXPECT().Group(gomock.Any(), int64(123)).Return(models.GroupSettings{
				ChatID: 123, Active: true, IntervalSeconds: 600,
			}, nil).Times(2)
		})

		adminT.handleStartGroupQuiz(adminMessage("/start_quiz"))
		adminT.handleStartGroupQuiz(adminMessage("/start_quiz"))
		adminT.handleStopGroupQuiz(adminMessage("/stop_quiz"))

		require.Len(t, mb.SentMessages, 3)
		second := mb.SentMessages[1].(tgbotapi.MessageConfig)
		assert.Contains(t, second.Text, "Already running")
		third := mb.SentMessages[2].(tgbotapi.MessageConfig)
		assert.Contains(t, third.Text, "stopped")
	})

	t.Run("stop without a running job", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		adminT, mb := newAdminTMock(ctrl, nil)

		adminT.handleStopGroupQuiz(adminMessage("/stop_quiz"))

		require.Len(t, mb.SentMessages, 1)
		msg := mb.SentMessages[0].(tgbotapi.MessageConfig)
		assert.Equal(t, "Nothing to stop.", msg.Text)
	})
}

func TestAdminT_handleCancelClearsPendingInput(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	adminT, mb := newAdminTMock(ctrl, nil)

	adminT.cache.Update(456, func(s *models.Session) {
		s.AwaitingChapterName = true
		s.AwaitingAdminID = true
		s.AwaitingInterval = true
		s.AwaitingBroadcast = true
		s.IngestActive = true
	})

	adminT.handleCancel(adminMessage("/cancel"))

	session := adminT.cache.Session(456)
	assert.False(t, session.AwaitingChapterName)
	assert.False(t, session.AwaitingAdminID)
	assert.False(t, session.AwaitingInterval)
	assert.False(t, session.AwaitingBroadcast)
	assert.False(t, session.IngestActive)

	require.Len(t, mb.SentMessages, 1)
	msg := mb.SentMessages[0].(tgbotapi.MessageConfig)
	assert.Equal(t, "❌ Cancelled.", msg.Text)
}
